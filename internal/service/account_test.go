package service

import (
	"context"
	"testing"

	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/mocks"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/mock"
	"github.com/stretchr/testify/require"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

func newAccountService(t *testing.T, accounts *mocks.AccountRepository, allowRoleSignup bool) (*AccountService, *auth.JWTAuthenticator) {
	t.Helper()
	tokens, err := auth.NewJWTAuthenticator("test-secret", 0, "test")
	require.NoError(t, err)
	hasher := auth.NewBcryptHasher(bcrypt.MinCost)
	return NewAccountService(accounts, hasher, tokens, zap.NewNop().Sugar(), allowRoleSignup), tokens
}

func TestAccountService_Register(t *testing.T) {
	ctx := context.Background()

	t.Run("success", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, tokens := newAccountService(t, accounts, false)

		accounts.On("GetByEmail", ctx, "asha@example.com").Return(nil, domain.ErrNotFound).Once()
		accounts.On("Create", ctx, mock.MatchedBy(func(a *domain.Account) bool {
			return a.Email == "asha@example.com" && a.Role == domain.RoleCustomer && a.PasswordHash != "hunter2"
		})).Run(func(args mock.Arguments) {
			args.Get(1).(*domain.Account).ID = primitive.NewObjectID()
		}).Return(nil).Once()

		session, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: " Asha@Example.com ", Password: "hunter2"})
		require.NoError(t, err)
		assert.Equal(t, "asha@example.com", session.User.Email)
		assert.Equal(t, domain.RoleCustomer, session.User.Role)

		claims, err := tokens.ValidateToken(session.Token)
		require.NoError(t, err)
		assert.Equal(t, session.User.ID, claims.AccountID())
	})

	t.Run("duplicate email", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)

		accounts.On("GetByEmail", ctx, "asha@example.com").Return(&domain.Account{Email: "asha@example.com"}, nil).Once()

		_, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("lost insert race", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)

		accounts.On("GetByEmail", ctx, "asha@example.com").Return(nil, domain.ErrNotFound).Once()
		accounts.On("Create", ctx, mock.Anything).Return(domain.ErrConflict).Once()

		_, err := svc.Register(ctx, RegisterInput{Name: "Asha", Email: "asha@example.com", Password: "x"})
		assert.ErrorIs(t, err, domain.ErrConflict)
	})

	t.Run("privileged role refused", func(t *testing.T) {
		svc, _ := newAccountService(t, mocks.NewAccountRepository(t), false)

		_, err := svc.Register(ctx, RegisterInput{Name: "Eve", Email: "eve@example.com", Password: "x", Role: "admin"})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "role", ve.Field)
	})

	t.Run("privileged role allowed by config", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, true)

		accounts.On("GetByEmail", ctx, "chef@example.com").Return(nil, domain.ErrNotFound).Once()
		accounts.On("Create", ctx, mock.Anything).Return(nil).Once()

		session, err := svc.Register(ctx, RegisterInput{Name: "Chef", Email: "chef@example.com", Password: "x", Role: "staff"})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, session.User.Role)
	})

	t.Run("admin caller may assign a role", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)

		accounts.On("GetByEmail", ctx, "chef@example.com").Return(nil, domain.ErrNotFound).Once()
		accounts.On("Create", ctx, mock.MatchedBy(func(a *domain.Account) bool {
			return a.Role == domain.RoleStaff
		})).Return(nil).Once()

		session, err := svc.Register(ctx, RegisterInput{
			Name: "Chef", Email: "chef@example.com", Password: "x", Role: "staff", GrantedBy: domain.RoleAdmin,
		})
		require.NoError(t, err)
		assert.Equal(t, domain.RoleStaff, session.User.Role)
	})

	t.Run("staff caller may not assign a role", func(t *testing.T) {
		svc, _ := newAccountService(t, mocks.NewAccountRepository(t), false)

		_, err := svc.Register(ctx, RegisterInput{
			Name: "Eve", Email: "eve@example.com", Password: "x", Role: "admin", GrantedBy: domain.RoleStaff,
		})
		var ve *domain.ValidationError
		require.ErrorAs(t, err, &ve)
		assert.Equal(t, "role", ve.Field)
	})

	t.Run("missing fields", func(t *testing.T) {
		svc, _ := newAccountService(t, mocks.NewAccountRepository(t), false)

		for field, in := range map[string]RegisterInput{
			"name":     {Email: "a@example.com", Password: "x"},
			"email":    {Name: "A", Password: "x"},
			"password": {Name: "A", Email: "a@example.com"},
			"role":     {Name: "A", Email: "a@example.com", Password: "x", Role: "chef"},
		} {
			_, err := svc.Register(ctx, in)
			var ve *domain.ValidationError
			require.ErrorAs(t, err, &ve, field)
			assert.Equal(t, field, ve.Field)
		}
	})
}

func TestAccountService_Login(t *testing.T) {
	ctx := context.Background()
	hash, err := bcrypt.GenerateFromPassword([]byte("hunter2"), bcrypt.MinCost)
	require.NoError(t, err)
	stored := &domain.Account{ID: primitive.NewObjectID(), Name: "Asha", Email: "asha@example.com", PasswordHash: string(hash), Role: domain.RoleCustomer}

	t.Run("success", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)
		accounts.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		session, err := svc.Login(ctx, "ASHA@example.com", "hunter2")
		require.NoError(t, err)
		assert.NotEmpty(t, session.Token)
		assert.Equal(t, stored.ID, session.User.ID)
	})

	t.Run("wrong password", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)
		accounts.On("GetByEmail", ctx, "asha@example.com").Return(stored, nil).Once()

		_, err := svc.Login(ctx, "asha@example.com", "hunter3")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})

	t.Run("unknown email", func(t *testing.T) {
		accounts := mocks.NewAccountRepository(t)
		svc, _ := newAccountService(t, accounts, false)
		accounts.On("GetByEmail", ctx, "nobody@example.com").Return(nil, domain.ErrNotFound).Once()

		_, err := svc.Login(ctx, "nobody@example.com", "hunter2")
		assert.ErrorIs(t, err, domain.ErrInvalidCredentials)
	})
}

func TestAccountService_Me(t *testing.T) {
	ctx := context.Background()
	accounts := mocks.NewAccountRepository(t)
	svc, _ := newAccountService(t, accounts, false)
	id := primitive.NewObjectID()

	accounts.On("GetByID", ctx, id).Return(&domain.Account{ID: id, Name: "Asha", Role: domain.RoleAdmin}, nil).Once()

	view, err := svc.Me(ctx, id)
	require.NoError(t, err)
	assert.Equal(t, domain.RoleAdmin, view.Role)
}
