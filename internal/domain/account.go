package domain

import (
	"strings"
	"time"

	"go.mongodb.org/mongo-driver/bson/primitive"
)

type Role string

const (
	RoleCustomer Role = "customer"
	RoleStaff    Role = "staff"
	RoleAdmin    Role = "admin"
)

func (r Role) Valid() bool {
	switch r {
	case RoleCustomer, RoleStaff, RoleAdmin:
		return true
	}
	return false
}

// Privileged roles may run catalog maintenance such as seeding and imports.
func (r Role) Privileged() bool {
	return r == RoleStaff || r == RoleAdmin
}

type Account struct {
	ID           primitive.ObjectID `bson:"_id,omitempty" json:"_id"`
	Name         string             `bson:"name" json:"name"`
	Email        string             `bson:"email" json:"email"`
	PasswordHash string             `bson:"password_hash" json:"-"`
	Role         Role               `bson:"role" json:"role"`
	CreatedAt    time.Time          `bson:"created_at" json:"createdAt"`
	UpdatedAt    time.Time          `bson:"updated_at" json:"updatedAt"`
}

type AccountView struct {
	ID    primitive.ObjectID `json:"id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
	Role  Role               `json:"role"`
}

func (a *Account) View() AccountView {
	return AccountView{ID: a.ID, Name: a.Name, Email: a.Email, Role: a.Role}
}

// AccountSummary is the restricted owner view embedded in admin listings.
type AccountSummary struct {
	ID    primitive.ObjectID `json:"_id"`
	Name  string             `json:"name"`
	Email string             `json:"email"`
}

func (a *Account) Summary() *AccountSummary {
	return &AccountSummary{ID: a.ID, Name: a.Name, Email: a.Email}
}

func NormalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

// ParseOwnerRef keeps a caller-supplied account reference only when it is a
// well-formed ObjectID. Anything else makes the record anonymous.
func ParseOwnerRef(ref string) *primitive.ObjectID {
	if ref == "" {
		return nil
	}
	id, err := primitive.ObjectIDFromHex(ref)
	if err != nil {
		return nil
	}
	return &id
}
