package application

import (
	"context"
	"errors"
	"time"

	"github.com/sirupsen/logrus"

	"github.com/oksasatya/cloud-gallery/internal/domain/entity"
	"github.com/oksasatya/cloud-gallery/internal/domain/repository"
	"github.com/oksasatya/cloud-gallery/pkg/helpers"
)

var (
	// ErrInvalidCredentials is returned for both unknown emails and wrong
	// passwords so responses cannot be used to probe which emails exist.
	ErrInvalidCredentials = errors.New("invalid credentials")
	ErrEmailTaken         = errors.New("email already exists")
)

// AuthService orchestrates signup and login. There is no session state beyond
// the issued token itself; logout is a client-side discard.
type AuthService struct {
	Repo       repository.UserRepository
	JWT        *helpers.JWTManager
	Logger     *logrus.Logger
	BcryptCost int
}

func NewAuthService(repo repository.UserRepository, jwt *helpers.JWTManager, logger *logrus.Logger, bcryptCost int) *AuthService {
	return &AuthService{Repo: repo, JWT: jwt, Logger: logger, BcryptCost: bcryptCost}
}

// Signup hashes the password and persists the user. It does not log the user
// in; the caller still has to go through Login.
func (s *AuthService) Signup(ctx context.Context, email, password string) (*entity.User, error) {
	hash, err := helpers.HashPassword(password, s.BcryptCost)
	if err != nil {
		return nil, err
	}
	u := &entity.User{Email: email, Password: hash}
	if err := s.Repo.Create(ctx, u); err != nil {
		if errors.Is(err, repository.ErrDuplicateEmail) {
			return nil, ErrEmailTaken
		}
		return nil, err
	}
	return u, nil
}

// Login validates the credentials and issues a bearer token. Lookup failure
// and hash mismatch are deliberately indistinguishable.
func (s *AuthService) Login(ctx context.Context, email, password string) (*entity.User, string, time.Time, error) {
	u, err := s.Repo.GetByEmail(ctx, email)
	if err != nil || u == nil {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	if !helpers.CompareHashAndPassword(u.Password, password) {
		return nil, "", time.Time{}, ErrInvalidCredentials
	}
	token, exp, err := s.JWT.Generate(u.ID)
	if err != nil {
		if s.Logger != nil {
			s.Logger.WithError(err).WithField("user_id", u.ID).Error("generate token failed")
		}
		return nil, "", time.Time{}, err
	}
	return u, token, exp, nil
}
