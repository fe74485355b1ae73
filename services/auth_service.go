package services

import (
	"context"
	"crypto/rand"
	"encoding/hex"
	"time"

	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"

	"github.com/clubcaddy/backend/apperrors"
	"github.com/clubcaddy/backend/models"
	"github.com/clubcaddy/backend/repository"
)

// loginTokenTTL is the magic-link validity window.
const loginTokenTTL = 15 * time.Minute

// AuthSession is what a successful verification or login yields.
type AuthSession struct {
	Token string       `json:"token"`
	User  *UserSummary `json:"user"`
}

type UserSummary struct {
	ID    string `json:"id"`
	Email string `json:"email"`
}

// AuthService implements the magic-link and password login flows.
type AuthService struct {
	users     repository.UserRepo
	tokens    repository.LoginTokenStore
	jwt       *TokenService
	mailer    Mailer
	clientURL string
}

func NewAuthService(users repository.UserRepo, tokens repository.LoginTokenStore, jwt *TokenService, mailer Mailer, clientURL string) *AuthService {
	return &AuthService{
		users:     users,
		tokens:    tokens,
		jwt:       jwt,
		mailer:    mailer,
		clientURL: clientURL,
	}
}

// RequestMagicLink creates the user on first contact, stores a single-use
// login token and mails the verification link. The link is also returned so
// clients without a mailbox in the loop (and tests) can follow it.
func (s *AuthService) RequestMagicLink(ctx context.Context, email string) (string, error) {
	email = repository.NormalizeEmail(email)
	if email == "" {
		return "", apperrors.BadRequest("email is required")
	}

	user, err := s.users.FindOrCreateByEmail(ctx, email)
	if err != nil {
		return "", apperrors.Internal(err)
	}

	token, err := generateLoginToken()
	if err != nil {
		return "", apperrors.Internal(err)
	}
	if err := s.tokens.Save(ctx, token, user.Email, loginTokenTTL); err != nil {
		return "", apperrors.Internal(err)
	}

	link := s.clientURL + "/verify?token=" + token
	if s.mailer != nil {
		if err := s.mailer.SendMagicLink(user.Email, link); err != nil {
			zap.L().Error("failed to send magic link email",
				zap.String("email", user.Email),
				zap.Error(err),
			)
		}
	} else {
		zap.L().Info("magic link issued (no mailer configured)",
			zap.String("email", user.Email),
			zap.String("link", link),
		)
	}
	return link, nil
}

// Verify consumes a login token, marks the user verified and issues the
// bearer token. Consumption is atomic in the store; a missing token means
// expired, never issued or already used, indistinguishably.
func (s *AuthService) Verify(ctx context.Context, token string) (*AuthSession, error) {
	if token == "" {
		return nil, apperrors.BadRequest("token is required")
	}

	email, err := s.tokens.Consume(ctx, token)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if email == "" {
		return nil, apperrors.BadRequest("Invalid or expired token")
	}

	user, err := s.users.MarkVerified(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil {
		return nil, apperrors.BadRequest("Invalid or expired token")
	}

	return s.issueSession(user)
}

// Login authenticates a user that has a password set.
func (s *AuthService) Login(ctx context.Context, email, password string) (*AuthSession, error) {
	user, err := s.users.FindByEmail(ctx, email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	if user == nil || user.PasswordHash == "" {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}
	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)); err != nil {
		return nil, apperrors.Unauthorized("Invalid email or password")
	}
	return s.issueSession(user)
}

func (s *AuthService) issueSession(user *models.User) (*AuthSession, error) {
	signed, err := s.jwt.Generate(user.ID.Hex(), user.Email)
	if err != nil {
		return nil, apperrors.Internal(err)
	}
	return &AuthSession{
		Token: signed,
		User:  &UserSummary{ID: user.ID.Hex(), Email: user.Email},
	}, nil
}

func generateLoginToken() (string, error) {
	buf := make([]byte, 32)
	if _, err := rand.Read(buf); err != nil {
		return "", err
	}
	return hex.EncodeToString(buf), nil
}
