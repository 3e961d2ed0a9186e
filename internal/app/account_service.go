package app

import (
	"context"
	"crypto/subtle"
	"errors"
	"fmt"
	"log/slog"
	"strconv"
	"strings"
	"unicode/utf8"

	"github.com/go-playground/validator/v10"

	"github.com/jsamuelsen/feedback-analyzer/internal/domain"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/logging"
	"github.com/jsamuelsen/feedback-analyzer/internal/platform/session"
	"github.com/jsamuelsen/feedback-analyzer/internal/ports"
)

// Account field limits. bcrypt ignores input past 72 bytes.
const (
	MinPasswordLength = 8
	MaxPasswordBytes  = 72
	MaxNameLength     = 100
)

const invalidCredentials = "invalid credentials"

var fieldValidator = validator.New(validator.WithRequiredStructEnabled())

// SignupInput is a new account request.
type SignupInput struct {
	Name     string
	Email    string
	Password string
}

// AccountService handles user accounts and the administrator login.
type AccountService struct {
	users     ports.UserRepository
	adminUser string
	adminHash string
	cost      int
	dummyHash string
	logger    *slog.Logger
}

// AccountServiceConfig contains the dependencies of the account service.
type AccountServiceConfig struct {
	Users ports.UserRepository

	// AdminUsername and AdminPassword are the configured administrator
	// credential. The password is hashed on construction and not retained.
	AdminUsername string
	AdminPassword string

	// BcryptCost of 0 uses bcrypt's default.
	BcryptCost int

	Logger *slog.Logger
}

// NewAccountService creates an account service. It panics without a user
// repository and fails when the admin password cannot be hashed.
func NewAccountService(cfg AccountServiceConfig) (*AccountService, error) {
	if cfg.Users == nil {
		panic("app: user repository is required")
	}

	if cfg.AdminUsername == "" || cfg.AdminPassword == "" {
		return nil, errors.New("app: admin credential is required")
	}

	adminHash, err := session.HashPassword(cfg.AdminPassword, cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing admin password: %w", err)
	}

	// Compared against when an email is unknown, so both paths cost a bcrypt round.
	dummyHash, err := session.HashPassword("feedbackd-unknown-account", cfg.BcryptCost)
	if err != nil {
		return nil, fmt.Errorf("hashing placeholder password: %w", err)
	}

	logger := cfg.Logger
	if logger == nil {
		logger = slog.Default()
	}

	return &AccountService{
		users:     cfg.Users,
		adminUser: cfg.AdminUsername,
		adminHash: adminHash,
		cost:      cfg.BcryptCost,
		dummyHash: dummyHash,
		logger:    logger.With(slog.String("component", "app.AccountService")),
	}, nil
}

// Signup registers a user account. Emails are compared case-insensitively.
func (s *AccountService) Signup(ctx context.Context, in SignupInput) (domain.User, error) {
	name := strings.TrimSpace(in.Name)
	email := normalizeEmail(in.Email)

	err := validateSignup(name, email, in.Password)
	if err != nil {
		return domain.User{}, fmt.Errorf("validating signup: %w", err)
	}

	hash, err := session.HashPassword(in.Password, s.cost)
	if err != nil {
		return domain.User{}, fmt.Errorf("signing up: %w", err)
	}

	user, err := s.users.Create(ctx, domain.User{Name: name, Email: email, PasswordHash: hash})
	if err != nil {
		return domain.User{}, fmt.Errorf("signing up: %w", err)
	}

	logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "user signed up",
		slog.Uint64("user_id", user.ID),
	)

	return user, nil
}

func validateSignup(name, email, password string) error {
	if name == "" {
		return domain.NewValidationError("name", "is required")
	}

	if utf8.RuneCountInString(name) > MaxNameLength {
		return domain.NewValidationError("name", fmt.Sprintf("must be at most %d characters", MaxNameLength))
	}

	if fieldValidator.Var(email, "required,email") != nil {
		return domain.NewValidationError("email", "must be a valid email address")
	}

	if utf8.RuneCountInString(password) < MinPasswordLength {
		return domain.NewValidationError("password", fmt.Sprintf("must be at least %d characters", MinPasswordLength))
	}

	if len(password) > MaxPasswordBytes {
		return domain.NewValidationError("password", fmt.Sprintf("must be at most %d bytes", MaxPasswordBytes))
	}

	return nil
}

// Login checks a user's credentials and returns the user principal.
func (s *AccountService) Login(ctx context.Context, email, password string) (domain.Principal, error) {
	user, err := s.users.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if !domain.IsNotFound(err) {
			return domain.Principal{}, fmt.Errorf("looking up account: %w", err)
		}

		session.CheckPassword(s.dummyHash, password)

		return domain.Principal{}, domain.NewUnauthorizedError(invalidCredentials)
	}

	if !session.CheckPassword(user.PasswordHash, password) {
		logging.FromContextOr(ctx, s.logger).InfoContext(ctx, "user login rejected",
			slog.Uint64("user_id", user.ID),
		)

		return domain.Principal{}, domain.NewUnauthorizedError(invalidCredentials)
	}

	return domain.Principal{
		Subject: strconv.FormatUint(user.ID, 10),
		Name:    user.Name,
		Role:    domain.RoleUser,
	}, nil
}

// AdminLogin checks the administrator credential and returns the admin principal.
func (s *AccountService) AdminLogin(ctx context.Context, username, password string) (domain.Principal, error) {
	userOK := subtle.ConstantTimeCompare([]byte(username), []byte(s.adminUser)) == 1
	passOK := session.CheckPassword(s.adminHash, password)

	if !userOK || !passOK {
		logging.FromContextOr(ctx, s.logger).WarnContext(ctx, "admin login rejected")
		return domain.Principal{}, domain.NewUnauthorizedError(invalidCredentials)
	}

	return domain.Principal{
		Subject: s.adminUser,
		Name:    s.adminUser,
		Role:    domain.RoleAdmin,
	}, nil
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}
