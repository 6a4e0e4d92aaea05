package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type ReservationService struct {
	reservationRepo repo.ReservationRepository
	expand          *expander
	events          *statusPublisher
	logger          *zap.SugaredLogger
	transitions     domain.TransitionPolicy
}

func NewReservationService(
	reservationRepo repo.ReservationRepository,
	accountRepo repo.AccountRepository,
	broker queue.Broker,
	logger *zap.SugaredLogger,
	transitions domain.TransitionPolicy,
) *ReservationService {
	return &ReservationService{
		reservationRepo: reservationRepo,
		expand:          &expander{accountRepo: accountRepo},
		events:          &statusPublisher{broker: broker, logger: logger, now: time.Now},
		logger:          logger,
		transitions:     transitions,
	}
}

type CreateReservationInput struct {
	UserID          string
	Date            string
	Time            string
	PartySize       int
	Name            string
	Email           string
	Phone           string
	SpecialRequests string
}

// Create books a table. Availability and overlapping bookings are not
// checked.
func (s *ReservationService) Create(ctx context.Context, in CreateReservationInput) (*domain.Reservation, error) {
	date, err := domain.ParseReservationDate(in.Date)
	if err != nil {
		return nil, err
	}

	reservation := &domain.Reservation{
		UserID:    domain.ParseOwnerRef(in.UserID),
		Date:      date,
		Time:      in.Time,
		PartySize: in.PartySize,
		Status:    domain.ReservationPending,
		CustomerInfo: domain.ReservationContact{
			Name:            in.Name,
			Email:           strings.TrimSpace(in.Email),
			Phone:           in.Phone,
			SpecialRequests: in.SpecialRequests,
		},
	}

	if err := reservation.Validate(); err != nil {
		return nil, err
	}

	if err := s.reservationRepo.Create(ctx, reservation); err != nil {
		return nil, err
	}

	s.logger.Infow("reservation created",
		"reservation_id", reservation.ID.Hex(),
		"date", reservation.Date.Format(domain.DateLayout),
		"time", reservation.Time,
		"party_size", reservation.PartySize,
	)

	return reservation, nil
}

// ListAll returns every reservation with owners expanded.
func (s *ReservationService) ListAll(ctx context.Context) ([]domain.Reservation, error) {
	reservations, err := s.find(ctx, repo.ReservationFilter{})
	if err != nil {
		return nil, err
	}

	if err := s.expand.reservationOwners(ctx, reservations); err != nil {
		return nil, err
	}

	return reservations, nil
}

func (s *ReservationService) ListByOwner(ctx context.Context, ownerID primitive.ObjectID) ([]domain.Reservation, error) {
	return s.find(ctx, repo.ReservationFilter{UserID: &ownerID})
}

func (s *ReservationService) ListByContactEmail(ctx context.Context, email string) ([]domain.Reservation, error) {
	email = strings.TrimSpace(email)
	if email == "" {
		return []domain.Reservation{}, nil
	}
	return s.find(ctx, repo.ReservationFilter{ContactEmail: email})
}

func (s *ReservationService) find(ctx context.Context, filter repo.ReservationFilter) ([]domain.Reservation, error) {
	reservations, err := s.reservationRepo.Find(ctx, filter)
	if err != nil {
		return nil, fmt.Errorf("failed to list reservations: %w", err)
	}
	return reservations, nil
}

func (s *ReservationService) GetOne(ctx context.Context, id primitive.ObjectID) (*domain.Reservation, error) {
	return s.reservationRepo.GetByID(ctx, id)
}

func (s *ReservationService) UpdateStatus(ctx context.Context, id primitive.ObjectID, status, actorID string) (*domain.Reservation, error) {
	target := domain.ReservationStatus(status)
	if !target.Valid() {
		return nil, domain.NewValidationError("status", fmt.Sprintf("unknown reservation status %q", status))
	}

	current, err := s.reservationRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}

	if !s.transitions.AllowReservation(current.Status, target) {
		return nil, fmt.Errorf("reservation %s: %s -> %s: %w", id.Hex(), current.Status, target, domain.ErrInvalidTransition)
	}

	updated, err := s.reservationRepo.UpdateStatus(ctx, id, target, s.transitions.ReservationSources(target))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) && s.transitions == domain.Strict {
			return nil, fmt.Errorf("reservation %s: %w", id.Hex(), domain.ErrInvalidTransition)
		}
		return nil, err
	}

	if current.Status != updated.Status {
		s.events.publish(ctx, queue.QueueReservationStatus, domain.StatusChangedEvent{
			EventType:  domain.EventReservationStatusChanged,
			EntityType: domain.EntityReservation,
			EntityID:   id.Hex(),
			OldStatus:  string(current.Status),
			NewStatus:  string(updated.Status),
			ActorID:    actorID,
		})
	}

	s.logger.Infow("reservation status updated",
		"reservation_id", id.Hex(),
		"old_status", current.Status,
		"new_status", updated.Status,
	)

	return updated, nil
}
