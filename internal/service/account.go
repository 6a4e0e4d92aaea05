package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/DarshanRT1/Hotel-Booking/internal/auth"
	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/repo"
	"go.mongodb.org/mongo-driver/bson/primitive"
	"go.uber.org/zap"
)

type AccountService struct {
	accountRepo repo.AccountRepository
	hasher      auth.PasswordHasher
	tokens      auth.Authenticator
	logger      *zap.SugaredLogger
	// allowRoleSignup lets self-registration pick staff or admin.
	allowRoleSignup bool
}

func NewAccountService(
	accountRepo repo.AccountRepository,
	hasher auth.PasswordHasher,
	tokens auth.Authenticator,
	logger *zap.SugaredLogger,
	allowRoleSignup bool,
) *AccountService {
	return &AccountService{
		accountRepo:     accountRepo,
		hasher:          hasher,
		tokens:          tokens,
		logger:          logger,
		allowRoleSignup: allowRoleSignup,
	}
}

type RegisterInput struct {
	Name     string
	Email    string
	Password string
	Role     string

	// GrantedBy is the role of the authenticated caller, empty when
	// anonymous. Admins may assign any role.
	GrantedBy domain.Role
}

type Session struct {
	Token string             `json:"token"`
	User  domain.AccountView `json:"user"`
}

// Register creates an account and opens a session for it. The requested
// role is honored when the caller is an admin or role sign up is enabled;
// otherwise only customer accounts can be created.
func (s *AccountService) Register(ctx context.Context, in RegisterInput) (*Session, error) {
	account, err := s.create(ctx, in, s.allowRoleSignup || in.GrantedBy == domain.RoleAdmin)
	if err != nil {
		return nil, err
	}
	return s.session(account)
}

// CreateAccount is the operator path: any role may be assigned and no
// session is opened.
func (s *AccountService) CreateAccount(ctx context.Context, in RegisterInput) (*domain.Account, error) {
	return s.create(ctx, in, true)
}

func (s *AccountService) create(ctx context.Context, in RegisterInput, anyRole bool) (*domain.Account, error) {
	name := strings.TrimSpace(in.Name)
	if name == "" {
		return nil, domain.NewValidationError("name", "name is required")
	}
	email := domain.NormalizeEmail(in.Email)
	if email == "" {
		return nil, domain.NewValidationError("email", "email is required")
	}
	if in.Password == "" {
		return nil, domain.NewValidationError("password", "password is required")
	}

	role := domain.RoleCustomer
	if in.Role != "" {
		role = domain.Role(in.Role)
	}
	if !role.Valid() {
		return nil, domain.NewValidationError("role", fmt.Sprintf("unknown role %q", in.Role))
	}
	if role != domain.RoleCustomer && !anyRole {
		return nil, domain.NewValidationError("role", "role cannot be chosen at sign up")
	}

	_, err := s.accountRepo.GetByEmail(ctx, email)
	switch {
	case err == nil:
		return nil, fmt.Errorf("user already exists: %w", domain.ErrConflict)
	case !errors.Is(err, domain.ErrNotFound):
		return nil, err
	}

	hash, err := s.hasher.Hash(in.Password)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	account := &domain.Account{
		Name:         name,
		Email:        email,
		PasswordHash: hash,
		Role:         role,
	}
	if err := s.accountRepo.Create(ctx, account); err != nil {
		if errors.Is(err, domain.ErrConflict) {
			return nil, fmt.Errorf("user already exists: %w", domain.ErrConflict)
		}
		return nil, err
	}

	s.logger.Infow("account registered", "account_id", account.ID.Hex(), "role", account.Role)

	return account, nil
}

// Login checks credentials. Unknown email and wrong password are reported
// the same way.
func (s *AccountService) Login(ctx context.Context, email, password string) (*Session, error) {
	account, err := s.accountRepo.GetByEmail(ctx, domain.NormalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, domain.ErrInvalidCredentials
		}
		return nil, err
	}

	if !s.hasher.Compare(account.PasswordHash, password) {
		return nil, domain.ErrInvalidCredentials
	}

	return s.session(account)
}

func (s *AccountService) Me(ctx context.Context, id primitive.ObjectID) (*domain.AccountView, error) {
	account, err := s.accountRepo.GetByID(ctx, id)
	if err != nil {
		return nil, err
	}
	view := account.View()
	return &view, nil
}

func (s *AccountService) session(account *domain.Account) (*Session, error) {
	token, err := s.tokens.GenerateToken(account.ID, account.Role)
	if err != nil {
		return nil, fmt.Errorf("failed to issue token: %w", err)
	}
	return &Session{Token: token, User: account.View()}, nil
}
