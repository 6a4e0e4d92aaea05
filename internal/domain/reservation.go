package domain

import (
	"fmt"
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

const DateLayout = "2006-01-02"

type ReservationContact struct {
	Name            string `bson:"name" json:"name"`
	Email           string `bson:"email" json:"email"`
	Phone           string `bson:"phone" json:"phone"`
	SpecialRequests string `bson:"special_requests" json:"specialRequests"`
}

type Reservation struct {
	ID           primitive.ObjectID  `bson:"_id,omitempty" json:"_id"`
	UserID       *primitive.ObjectID `bson:"user_id" json:"userId"`
	Date         time.Time           `bson:"date" json:"date"`
	Time         string              `bson:"time" json:"time"`
	PartySize    int                 `bson:"party_size" json:"partySize"`
	Status       ReservationStatus   `bson:"status" json:"status"`
	CustomerInfo ReservationContact  `bson:"customer_info" json:"customerInfo"`
	CreatedAt    time.Time           `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time           `bson:"updated_at" json:"updatedAt"`

	User *AccountSummary `bson:"-" json:"user,omitempty"`
}

func (r *Reservation) Validate() error {
	if r.Date.IsZero() {
		return NewValidationError("date", "date is required")
	}
	r.Time = strings.TrimSpace(r.Time)
	if r.Time == "" {
		return NewValidationError("time", "time is required")
	}
	if r.PartySize < 1 {
		return NewValidationError("partySize", "party size must be at least 1")
	}
	if !r.Status.Valid() {
		return NewValidationError("status", "unknown reservation status "+string(r.Status))
	}
	return nil
}

// ParseReservationDate accepts a plain calendar date or a full RFC 3339 instant.
// Only the calendar date is kept.
func ParseReservationDate(s string) (time.Time, error) {
	s = strings.TrimSpace(s)
	if s == "" {
		return time.Time{}, NewValidationError("date", "date is required")
	}
	if d, err := time.Parse(DateLayout, s); err == nil {
		return d, nil
	}
	t, err := time.Parse(time.RFC3339, s)
	if err != nil {
		return time.Time{}, NewValidationError("date", fmt.Sprintf("invalid date %q", s))
	}
	return time.Date(t.Year(), t.Month(), t.Day(), 0, 0, 0, 0, time.UTC), nil
}

func indexed(field string, i int, sub string) string {
	return fmt.Sprintf("%s[%d].%s", field, i, sub)
}
