package auth

import (
	"context"
	"errors"
	"fmt"
	"log/slog"

	"github.com/phrazzld/taskr-api/internal/domain"
	"github.com/phrazzld/taskr-api/internal/events"
	"github.com/phrazzld/taskr-api/internal/platform/logger"
	"github.com/phrazzld/taskr-api/internal/redact"
	"github.com/phrazzld/taskr-api/internal/store"
)

// Credentials is the username/password pair used for both sign-up and sign-in.
type Credentials struct {
	Username string `json:"username" validate:"required,max=64"`
	Password string `json:"password" validate:"required,max=72"`
}

// AccessToken is the result of a successful sign-in.
type AccessToken struct {
	AccessToken string `json:"accessToken"`
}

// Service registers users and exchanges credentials for access tokens.
type Service interface {
	// SignUp creates a user. Returns store.ErrUsernameExists when the username
	// is taken and store.ErrInternal on storage failure.
	SignUp(ctx context.Context, creds Credentials) error

	// SignIn verifies the credentials and issues a signed access token.
	// An unknown username and a wrong password both yield ErrInvalidCredentials.
	SignIn(ctx context.Context, creds Credentials) (AccessToken, error)
}

type authService struct {
	users    store.UserStore
	tokens   JWTService
	verifier PasswordVerifier
	emitter  events.EventEmitter
	logger   *slog.Logger
}

var _ Service = (*authService)(nil)

// NewService creates the sign-up/sign-in service.
// It returns an error if any required dependency is nil. A nil emitter
// discards events.
func NewService(
	users store.UserStore,
	tokens JWTService,
	verifier PasswordVerifier,
	emitter events.EventEmitter,
	logger *slog.Logger,
) (Service, error) {
	if users == nil {
		return nil, errors.New("users cannot be nil")
	}
	if tokens == nil {
		return nil, errors.New("tokens cannot be nil")
	}
	if verifier == nil {
		return nil, errors.New("verifier cannot be nil")
	}
	if emitter == nil {
		emitter = events.NopEmitter{}
	}
	if logger == nil {
		logger = slog.Default()
	}

	return &authService{
		users:    users,
		tokens:   tokens,
		verifier: verifier,
		emitter:  emitter,
		logger:   logger.With(slog.String("component", "auth_service")),
	}, nil
}

// SignUp implements Service.SignUp.
func (s *authService) SignUp(ctx context.Context, creds Credentials) error {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := domain.NewUser(creds.Username, creds.Password)
	if err != nil {
		return err
	}

	if err := s.users.Create(ctx, user); err != nil {
		if !store.IsDuplicateError(err) {
			log.Error("sign-up failed",
				slog.String("username", creds.Username),
				redact.ErrorAttr(err))
		}
		return err
	}

	log.Info("user signed up",
		slog.String("user_id", user.ID.String()),
		slog.String("username", user.Username))

	event, err := events.NewEvent(events.TypeUserSignedUp, events.UserSignedUpPayload{
		UserID:   user.ID,
		Username: user.Username,
	})
	if err == nil {
		err = s.emitter.EmitEvent(ctx, event)
	}
	if err != nil {
		log.Warn("failed to emit user.signed_up event", redact.ErrorAttr(err))
	}
	return nil
}

// SignIn implements Service.SignIn.
func (s *authService) SignIn(ctx context.Context, creds Credentials) (AccessToken, error) {
	log := logger.FromContextOrDefault(ctx, s.logger)

	user, err := s.users.FindByUsername(ctx, creds.Username)
	if err != nil {
		return AccessToken{}, fmt.Errorf("sign-in lookup failed: %w", err)
	}

	if user == nil {
		log.Debug("sign-in rejected: unknown username", slog.String("username", creds.Username))
		return AccessToken{}, ErrInvalidCredentials
	}

	if err := s.verifier.Compare(user.HashedPassword, creds.Password); err != nil {
		log.Debug("sign-in rejected: password mismatch", slog.String("username", creds.Username))
		return AccessToken{}, ErrInvalidCredentials
	}

	token, err := s.tokens.GenerateToken(ctx, user)
	if err != nil {
		return AccessToken{}, fmt.Errorf("failed to issue access token: %w", err)
	}

	log.Info("user signed in", slog.String("user_id", user.ID.String()))
	return AccessToken{AccessToken: token}, nil
}
