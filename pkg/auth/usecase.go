package auth

import (
	"context"
	"fmt"
	"time"

	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"
)

// AuthUseCase describes authentication/registration behavior.
type AuthUseCase interface {
	// Register creates an unverified account and sends the verification link.
	// No session token is issued until the email is verified.
	Register(ctx context.Context, email, password string) (User, error)
	Login(ctx context.Context, email, password string) (AuthResult, error)
	Verify(ctx context.Context, token string) (User, error)
}

type AuthResult struct {
	User  User
	Token string
}

type authService struct {
	repo    UserRepository
	tokens  TokenGenerator
	mailer  Mailer
	baseURL string
}

// NewAuthService returns default implementation of AuthUseCase.
func NewAuthService(repo UserRepository, tokens TokenGenerator, mailer Mailer, baseURL string) AuthUseCase {
	return &authService{repo: repo, tokens: tokens, mailer: mailer, baseURL: baseURL}
}

func (s *authService) Register(ctx context.Context, email, password string) (User, error) {
	if email == "" || password == "" {
		return User{}, ErrInvalidCredentials
	}

	// If user exists, fail fast (best-effort check)
	if _, err := s.repo.GetByEmail(ctx, email); err == nil {
		return User{}, ErrUserAlreadyExists
	}

	passwordHash, err := bcrypt.GenerateFromPassword([]byte(password), bcrypt.DefaultCost)
	if err != nil {
		return User{}, err
	}

	user := User{
		ID:           uuid.New(),
		Email:        email,
		PasswordHash: string(passwordHash),
		Verified:     false,
		VerifyToken:  uuid.NewString(),
		CreatedAt:    time.Now().UTC(),
	}
	if err := s.repo.Create(ctx, user); err != nil {
		return User{}, err
	}

	link := fmt.Sprintf("%s/api/v1/auth/verify?token=%s", s.baseURL, user.VerifyToken)
	if err := s.mailer.SendVerification(ctx, user.Email, link); err != nil {
		return User{}, err
	}
	return user, nil
}

func (s *authService) Login(ctx context.Context, email, password string) (AuthResult, error) {
	user, err := s.repo.GetByEmail(ctx, email)
	if err != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(password)) != nil {
		return AuthResult{}, ErrInvalidCredentials
	}
	if !user.Verified {
		return AuthResult{}, ErrEmailNotVerified
	}
	token, err := s.tokens.Generate(ctx, user)
	if err != nil {
		return AuthResult{}, err
	}
	return AuthResult{User: user, Token: token}, nil
}

func (s *authService) Verify(ctx context.Context, token string) (User, error) {
	if token == "" {
		return User{}, ErrInvalidVerifyToken
	}
	return s.repo.MarkVerified(ctx, token)
}
