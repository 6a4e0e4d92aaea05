package service

import (
	"context"
	"testing"
	"time"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/DarshanRT1/Hotel-Booking/internal/queue"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

func TestReservationService_Create(t *testing.T) {
	ctx := context.Background()

	tests := []struct {
		name      string
		input     CreateReservationInput
		wantField string
	}{
		{
			name: "success",
			input: CreateReservationInput{
				Date: "2025-03-14", Time: "19:30", PartySize: 4,
				Name: "Meera", Email: "meera@example.com", Phone: "555-0101",
				SpecialRequests: "window seat",
			},
		},
		{
			name:      "party size zero",
			input:     CreateReservationInput{Date: "2025-03-14", Time: "19:30", PartySize: 0},
			wantField: "partySize",
		},
		{
			name:      "missing date",
			input:     CreateReservationInput{Time: "19:30", PartySize: 2},
			wantField: "date",
		},
		{
			name:      "bad date",
			input:     CreateReservationInput{Date: "tomorrow", Time: "19:30", PartySize: 2},
			wantField: "date",
		},
		{
			name:      "missing time",
			input:     CreateReservationInput{Date: "2025-03-14", PartySize: 2},
			wantField: "time",
		},
	}

	for _, tc := range tests {
		t.Run(tc.name, func(t *testing.T) {
			reservations := mocks.NewReservationRepository(t)
			svc := NewReservationService(reservations, mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), domain.Permissive)

			if tc.wantField == "" {
				reservations.On("Create", ctx, mock.AnythingOfType("*domain.Reservation")).Return(nil).Once()
			}

			reservation, err := svc.Create(ctx, tc.input)
			if tc.wantField != "" {
				var ve *domain.ValidationError
				require.ErrorAs(t, err, &ve)
				assert.Equal(t, tc.wantField, ve.Field)
				return
			}

			require.NoError(t, err)
			assert.Equal(t, domain.ReservationPending, reservation.Status)
			assert.Equal(t, time.Date(2025, 3, 14, 0, 0, 0, 0, time.UTC), reservation.Date)
			assert.Equal(t, "window seat", reservation.CustomerInfo.SpecialRequests)
			assert.Nil(t, reservation.UserID)
		})
	}
}

func TestReservationService_ListAllExpandsOwners(t *testing.T) {
	ctx := context.Background()
	reservations := mocks.NewReservationRepository(t)
	accounts := mocks.NewAccountRepository(t)
	svc := NewReservationService(reservations, accounts, nil, zap.NewNop().Sugar(), domain.Permissive)

	owner := domain.Account{ID: primitive.NewObjectID(), Name: "Meera", Email: "meera@example.com"}
	reservations.On("Find", ctx, repo.ReservationFilter{}).Return([]domain.Reservation{
		{ID: primitive.NewObjectID(), UserID: &owner.ID},
		{ID: primitive.NewObjectID()},
	}, nil).Once()
	accounts.On("GetByIDs", ctx, []primitive.ObjectID{owner.ID}).Return([]domain.Account{owner}, nil).Once()

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	require.Len(t, list, 2)
	require.NotNil(t, list[0].User)
	assert.Equal(t, "Meera", list[0].User.Name)
	assert.Nil(t, list[1].User)
}

func TestReservationService_ListWithoutOwners(t *testing.T) {
	ctx := context.Background()
	reservations := mocks.NewReservationRepository(t)
	svc := NewReservationService(reservations, mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), domain.Permissive)

	reservations.On("Find", ctx, repo.ReservationFilter{}).Return([]domain.Reservation{}, nil).Once()

	list, err := svc.ListAll(ctx)
	require.NoError(t, err)
	assert.Empty(t, list)
}

func TestReservationService_UpdateStatus(t *testing.T) {
	ctx := context.Background()
	id := primitive.NewObjectID()

	t.Run("confirm publishes event", func(t *testing.T) {
		reservations := mocks.NewReservationRepository(t)
		broker := mocks.NewBroker(t)
		svc := NewReservationService(reservations, mocks.NewAccountRepository(t), broker, zap.NewNop().Sugar(), domain.Strict)

		reservations.On("GetByID", ctx, id).Return(&domain.Reservation{ID: id, Status: domain.ReservationPending}, nil).Once()
		reservations.On("UpdateStatus", ctx, id, domain.ReservationConfirmed, mock.Anything).
			Return(&domain.Reservation{ID: id, Status: domain.ReservationConfirmed}, nil).Once()
		broker.On("Publish", ctx, queue.QueueReservationStatus, mock.Anything).Return(nil).Once()

		reservation, err := svc.UpdateStatus(ctx, id, "confirmed", "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationConfirmed, reservation.Status)
	})

	t.Run("strict rejects reopening", func(t *testing.T) {
		reservations := mocks.NewReservationRepository(t)
		svc := NewReservationService(reservations, mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), domain.Strict)

		reservations.On("GetByID", ctx, id).Return(&domain.Reservation{ID: id, Status: domain.ReservationCancelled}, nil).Once()

		_, err := svc.UpdateStatus(ctx, id, "confirmed", "")
		assert.ErrorIs(t, err, domain.ErrInvalidTransition)
	})

	t.Run("permissive allows reopening", func(t *testing.T) {
		reservations := mocks.NewReservationRepository(t)
		svc := NewReservationService(reservations, mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), domain.Permissive)

		reservations.On("GetByID", ctx, id).Return(&domain.Reservation{ID: id, Status: domain.ReservationCancelled}, nil).Once()
		reservations.On("UpdateStatus", ctx, id, domain.ReservationPending, []domain.ReservationStatus(nil)).
			Return(&domain.Reservation{ID: id, Status: domain.ReservationPending}, nil).Once()

		reservation, err := svc.UpdateStatus(ctx, id, "pending", "")
		require.NoError(t, err)
		assert.Equal(t, domain.ReservationPending, reservation.Status)
	})

	t.Run("unknown status", func(t *testing.T) {
		svc := NewReservationService(mocks.NewReservationRepository(t), mocks.NewAccountRepository(t), nil, zap.NewNop().Sugar(), domain.Permissive)

		_, err := svc.UpdateStatus(ctx, id, "seated", "")
		assert.True(t, domain.IsValidationError(err))
	})
}
