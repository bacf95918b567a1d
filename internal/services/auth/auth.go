package auth

import (
	"context"
	"errors"
	"fmt"
	"time"

	"github.com/golang-jwt/jwt/v5"
	"github.com/google/uuid"
	"golang.org/x/crypto/bcrypt"

	"github.com/sanctuary-tracker/api/internal/database"
	"github.com/sanctuary-tracker/api/internal/models"
)

const tokenIssuer = "sanctuary-tracker"

// ErrInvalidCredentials is returned when a login or token check fails. The
// handler maps it to 401 without leaking which part was wrong.
var ErrInvalidCredentials = errors.New("invalid credentials")

// ErrUserExists is returned when registration collides with an existing account
var ErrUserExists = errors.New("user already exists")

// RegisterRequest carries a new account registration
type RegisterRequest struct {
	Username string `json:"username" validate:"required,min=3,max=32,alphanum"`
	Email    string `json:"email" validate:"required,email,max=254"`
	Password string `json:"password" validate:"required,min=8,max=128"`
}

// LoginRequest carries a login attempt. Login accepts email or username.
type LoginRequest struct {
	Login    string `json:"login" validate:"required,max=254"`
	Password string `json:"password" validate:"required,max=128"`
}

// Service issues and verifies JWT bearer tokens for registered users
type Service struct {
	users  database.UserRepositoryInterface
	secret []byte
	expiry time.Duration
}

// NewService creates an auth service
func NewService(users database.UserRepositoryInterface, secret string, expiry time.Duration) *Service {
	return &Service{
		users:  users,
		secret: []byte(secret),
		expiry: expiry,
	}
}

// Register creates a new account with a bcrypt password hash
func (s *Service) Register(ctx context.Context, req RegisterRequest) (*models.User, error) {
	exists, err := s.users.Exists(ctx, req.Email, req.Username)
	if err != nil {
		return nil, fmt.Errorf("failed to check existing users: %w", err)
	}
	if exists {
		return nil, ErrUserExists
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(req.Password), bcrypt.DefaultCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		ID:           uuid.New(),
		Username:     req.Username,
		Email:        req.Email,
		PasswordHash: string(hash),
	}

	if err := s.users.Create(ctx, user); err != nil {
		return nil, err
	}

	return user, nil
}

// Login verifies credentials and returns the user. The login field matches
// either email or username.
func (s *Service) Login(ctx context.Context, req LoginRequest) (*models.User, error) {
	user, err := s.users.GetByLogin(ctx, req.Login)
	if err != nil {
		return nil, ErrInvalidCredentials
	}

	if err := bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(req.Password)); err != nil {
		return nil, ErrInvalidCredentials
	}

	return user, nil
}

// GenerateToken issues a signed HS256 token for the user
func (s *Service) GenerateToken(user *models.User) (string, error) {
	now := time.Now()
	claims := jwt.RegisteredClaims{
		Issuer:    tokenIssuer,
		Subject:   user.ID.String(),
		IssuedAt:  jwt.NewNumericDate(now),
		ExpiresAt: jwt.NewNumericDate(now.Add(s.expiry)),
	}

	token := jwt.NewWithClaims(jwt.SigningMethodHS256, claims)
	signed, err := token.SignedString(s.secret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}

	return signed, nil
}

// VerifyToken validates a bearer token and returns the user ID it names
func (s *Service) VerifyToken(tokenString string) (uuid.UUID, error) {
	claims := &jwt.RegisteredClaims{}
	token, err := jwt.ParseWithClaims(tokenString, claims, func(t *jwt.Token) (any, error) {
		if _, ok := t.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", t.Header["alg"])
		}
		return s.secret, nil
	}, jwt.WithIssuer(tokenIssuer), jwt.WithExpirationRequired())

	if err != nil || !token.Valid {
		return uuid.Nil, ErrInvalidCredentials
	}

	userID, err := uuid.Parse(claims.Subject)
	if err != nil {
		return uuid.Nil, ErrInvalidCredentials
	}

	return userID, nil
}
