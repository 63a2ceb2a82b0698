package services

import (
	"context"
	"fmt"
	"time"

	"github.com/dgrijalva/jwt-go"
	"github.com/google/uuid"
	"github.com/sirupsen/logrus"
	"golang.org/x/crypto/bcrypt"

	"melodia/internal/apperrors"
	"melodia/internal/models"
	"melodia/internal/repositories"
	"melodia/pkg/tokenstore"
)

// Identity is the verified subject of a bearer token.
type Identity struct {
	UserID uint
	RoleID uint
}

// AuthService handles registration, token issuance, and token verification.
// It is deliberately separate from the generic user CRUD: registration
// performs uniqueness checks that the generic create path does not.
type AuthService struct {
	userRepo   repositories.UserRepository
	revoked    *tokenstore.Store
	jwtSecret  []byte
	tokenDurat time.Duration
	bcryptCost int
}

// NewAuthService creates a new AuthService. A nil revocation store disables
// logout-based revocation but leaves every other check intact.
func NewAuthService(userRepo repositories.UserRepository, revoked *tokenstore.Store, jwtSecret string, tokenTTL time.Duration, bcryptCost int) *AuthService {
	if tokenTTL <= 0 {
		tokenTTL = 24 * time.Hour
	}
	if bcryptCost < bcrypt.MinCost {
		bcryptCost = bcrypt.DefaultCost
	}
	return &AuthService{
		userRepo:   userRepo,
		revoked:    revoked,
		jwtSecret:  []byte(jwtSecret),
		tokenDurat: tokenTTL,
		bcryptCost: bcryptCost,
	}
}

// Register creates an account after checking email and username are free,
// storing only the bcrypt hash of the password. The plaintext is never
// persisted or logged. The role is optional so the first account can be
// registered before any role exists.
func (s *AuthService) Register(email, username, password string, roleID *uint) (*models.User, error) {
	if existing, err := s.userRepo.GetByEmail(email); err == nil && existing != nil {
		return nil, fmt.Errorf("email '%s' already registered: %w", email, apperrors.ErrConflict)
	}
	if existing, err := s.userRepo.GetByUsername(username); err == nil && existing != nil {
		return nil, fmt.Errorf("username '%s' already taken: %w", username, apperrors.ErrConflict)
	}

	hashed, err := bcrypt.GenerateFromPassword([]byte(password), s.bcryptCost)
	if err != nil {
		return nil, fmt.Errorf("failed to hash password: %w", err)
	}

	user := &models.User{
		Email:          email,
		Username:       username,
		RoleID:         roleID,
		HashedPassword: string(hashed),
		IsActive:       true,
	}
	if err := s.userRepo.Create(user); err != nil {
		return nil, fmt.Errorf("failed to register user: %w", err)
	}
	return user, nil
}

// Login verifies credentials and issues a signed bearer token. The login
// may be an email address or a username. Unknown accounts and wrong
// passwords produce the same error so callers cannot enumerate users.
func (s *AuthService) Login(login, password string) (string, error) {
	user, err := s.userRepo.GetByEmail(login)
	if err != nil {
		user, err = s.userRepo.GetByUsername(login)
	}
	if err != nil {
		return "", fmt.Errorf("%w", apperrors.ErrInvalidCredentials)
	}

	// bcrypt's comparison is constant-time for a given cost factor.
	if err := bcrypt.CompareHashAndPassword([]byte(user.HashedPassword), []byte(password)); err != nil {
		return "", fmt.Errorf("%w", apperrors.ErrInvalidCredentials)
	}

	now := time.Now()
	token := jwt.NewWithClaims(jwt.SigningMethodHS256, jwt.MapClaims{
		"user_id": user.ID,
		"role_id": user.RoleID,
		"jti":     uuid.New().String(),
		"iat":     now.Unix(),
		"exp":     now.Add(s.tokenDurat).Unix(),
	})

	tokenString, err := token.SignedString(s.jwtSecret)
	if err != nil {
		return "", fmt.Errorf("failed to sign token: %w", err)
	}
	return tokenString, nil
}

// ValidateToken parses and verifies a bearer token, rejecting expired,
// malformed, and revoked tokens, and returns the identity it proves.
func (s *AuthService) ValidateToken(ctx context.Context, tokenString string) (*Identity, error) {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return nil, err
	}

	if s.revoked != nil {
		jti, _ := claims["jti"].(string)
		if jti != "" {
			revoked, err := s.revoked.IsRevoked(ctx, jti)
			if err != nil {
				return nil, fmt.Errorf("failed to check token revocation: %w", err)
			}
			if revoked {
				return nil, fmt.Errorf("token revoked: %w", apperrors.ErrInvalidCredentials)
			}
		}
	}

	userID, ok := claims["user_id"].(float64)
	if !ok {
		return nil, fmt.Errorf("malformed token subject: %w", apperrors.ErrInvalidCredentials)
	}
	roleID, _ := claims["role_id"].(float64)

	return &Identity{
		UserID: uint(userID),
		RoleID: uint(roleID),
	}, nil
}

// RevokeToken invalidates a still-valid token for the remainder of its
// lifetime. Without a revocation store this is a logged no-op.
func (s *AuthService) RevokeToken(ctx context.Context, tokenString string) error {
	claims, err := s.parseClaims(tokenString)
	if err != nil {
		return err
	}
	if s.revoked == nil {
		logrus.Warn("no revocation store configured, logout leaves the token valid until expiry")
		return nil
	}

	jti, _ := claims["jti"].(string)
	if jti == "" {
		return fmt.Errorf("token has no id: %w", apperrors.ErrInvalidCredentials)
	}
	exp, _ := claims["exp"].(float64)
	ttl := time.Until(time.Unix(int64(exp), 0))
	return s.revoked.Revoke(ctx, jti, ttl)
}

func (s *AuthService) parseClaims(tokenString string) (jwt.MapClaims, error) {
	token, err := jwt.Parse(tokenString, func(token *jwt.Token) (interface{}, error) {
		if _, ok := token.Method.(*jwt.SigningMethodHMAC); !ok {
			return nil, fmt.Errorf("unexpected signing method: %v", token.Header["alg"])
		}
		return s.jwtSecret, nil
	})
	if err != nil {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrInvalidCredentials)
	}
	claims, ok := token.Claims.(jwt.MapClaims)
	if !ok || !token.Valid {
		return nil, fmt.Errorf("invalid token: %w", apperrors.ErrInvalidCredentials)
	}
	return claims, nil
}
