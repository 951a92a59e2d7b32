package userapp

import (
	"context"
	"errors"
	"time"

	"codepulse/internal/core/auth"
	userEntity "codepulse/internal/core/user"
	userPort "codepulse/internal/ports/user"

	"github.com/gofrs/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

var ErrInvalidCredentials = errors.New("invalid credentials")

// UserService manages editor accounts and hands authenticated
// identities to the token issuer.
type UserService struct {
	UserRepository userPort.UserRepository
	TokenIssuer    *auth.TokenIssuer
	Logger         *zap.Logger
}

func NewUserService(repo userPort.UserRepository, issuer *auth.TokenIssuer, logger *zap.Logger) *UserService {
	return &UserService{
		UserRepository: repo,
		TokenIssuer:    issuer,
		Logger:         logger,
	}
}

// RegisterUser creates an editor account with a bcrypt-hashed password.
func (s *UserService) RegisterUser(ctx context.Context, email, password string, roles []string) (*userPort.UserDTO, error) {
	existing, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if existing != nil {
		return nil, errors.New("email already taken")
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return nil, err
	}

	u := &userEntity.User{
		ID:       uuid.Must(uuid.NewV4()),
		Email:    email,
		Password: string(hashed),
		Roles:    userEntity.JoinRoles(roles),
	}

	created, err := s.UserRepository.Create(ctx, u)
	if err != nil {
		return nil, err
	}

	return &userPort.UserDTO{
		ID:    created.ID.String(),
		Email: created.Email,
		Roles: created.RoleList(),
	}, nil
}

// LoginUser checks the password hash and issues a signed token for the
// identity. Lookup and hash failures both collapse to
// ErrInvalidCredentials so callers cannot probe for accounts.
func (s *UserService) LoginUser(ctx context.Context, email, password string) (*userPort.LoginResponse, error) {
	u, err := s.UserRepository.FindByEmail(ctx, email)
	if err != nil {
		return nil, err
	}
	if u == nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(u.Password), []byte(password)); err != nil {
		s.Logger.Info("login rejected", zap.String("email", email))
		return nil, ErrInvalidCredentials
	}

	roles := u.RoleList()
	token, err := s.TokenIssuer.Issue(u.Email, roles)
	if err != nil {
		s.Logger.Error("could not issue token", zap.Error(err))
		return nil, errors.New("could not generate token")
	}

	return &userPort.LoginResponse{
		Email:     u.Email,
		Roles:     roles,
		Token:     token,
		ExpiresAt: time.Now().Add(s.TokenIssuer.TTL()).Unix(),
	}, nil
}
