package identity

import (
	"context"

	"github.com/farmstore/backend/internal/domain/identity"
	"github.com/farmstore/backend/internal/domain/shared"
	"github.com/farmstore/backend/internal/infrastructure/auth"
	"github.com/google/uuid"
	"go.uber.org/zap"
	"golang.org/x/crypto/bcrypt"
)

const minPasswordLength = 8

// AuthService handles registration, login and token refresh.
type AuthService struct {
	users      identity.UserRepository
	jwtService *auth.JWTService
	logger     *zap.Logger
}

// NewAuthService creates a new authentication service
func NewAuthService(users identity.UserRepository, jwtService *auth.JWTService, logger *zap.Logger) *AuthService {
	return &AuthService{
		users:      users,
		jwtService: jwtService,
		logger:     logger,
	}
}

// Register creates an account keyed by the normalized phone number and logs
// it in. "8 (900) 123-45-67" and "+7 900 123 45 67" are the same account.
func (s *AuthService) Register(ctx context.Context, input RegisterInput) (*AuthResult, error) {
	if len(input.Password) < minPasswordLength {
		return nil, shared.NewDomainError("INVALID_INPUT", "Password must be at least 8 characters")
	}

	phone, err := identity.NormalizePhone(input.Phone)
	if err != nil {
		return nil, err
	}
	taken, err := s.users.ExistsByPhone(ctx, phone)
	if err != nil {
		return nil, err
	}
	if taken {
		return nil, shared.NewDomainError("ALREADY_EXISTS", "An account with this phone number already exists")
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(input.Password), bcrypt.DefaultCost)
	if err != nil {
		s.logger.Error("Failed to hash password", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to create account")
	}

	user, err := identity.NewUser(phone, input.Username, string(hash))
	if err != nil {
		return nil, err
	}
	if err := s.users.Save(ctx, user); err != nil {
		return nil, err
	}

	s.logger.Info("User registered", zap.String("user_id", user.ID.String()))

	return s.authResult(user)
}

// Login authenticates by phone number and password.
func (s *AuthService) Login(ctx context.Context, input LoginInput) (*AuthResult, error) {
	phone, err := identity.NormalizePhone(input.Phone)
	if err != nil {
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid phone number or password")
	}

	user, err := s.users.FindByPhone(ctx, phone)
	if err != nil {
		s.logger.Warn("Login for unknown phone", zap.String("phone", phone))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid phone number or password")
	}

	if bcrypt.CompareHashAndPassword([]byte(user.PasswordHash), []byte(input.Password)) != nil {
		s.logger.Warn("Invalid password attempt", zap.String("user_id", user.ID.String()))
		return nil, shared.NewDomainError("INVALID_CREDENTIALS", "Invalid phone number or password")
	}

	s.logger.Info("User logged in", zap.String("user_id", user.ID.String()))

	return s.authResult(user)
}

// RefreshToken exchanges a valid refresh token for a new pair.
func (s *AuthService) RefreshToken(ctx context.Context, input RefreshTokenInput) (*RefreshTokenResult, error) {
	claims, err := s.jwtService.ValidateRefreshToken(input.RefreshToken)
	if err != nil {
		return nil, mapTokenError(err)
	}

	userID, err := uuid.Parse(claims.UserID)
	if err != nil {
		return nil, shared.NewDomainError("TOKEN_INVALID", "Invalid user ID in token")
	}
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, shared.NewDomainError("NOT_FOUND", "User not found")
	}

	pair, err := s.jwtService.RefreshTokenPair(input.RefreshToken, auth.GenerateTokenInput{
		UserID:   user.ID,
		Phone:    user.Phone,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		return nil, mapTokenError(err)
	}

	return &RefreshTokenResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
	}, nil
}

// GetCurrentUser returns the account behind an access token's user ID.
func (s *AuthService) GetCurrentUser(ctx context.Context, userID uuid.UUID) (*UserInfo, error) {
	user, err := s.users.FindByID(ctx, userID)
	if err != nil {
		return nil, err
	}
	return &UserInfo{
		ID:       user.ID,
		Phone:    user.Phone,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	}, nil
}

func (s *AuthService) authResult(user *identity.User) (*AuthResult, error) {
	pair, err := s.jwtService.GenerateTokenPair(auth.GenerateTokenInput{
		UserID:   user.ID,
		Phone:    user.Phone,
		Username: user.Username,
		IsAdmin:  user.IsAdmin,
	})
	if err != nil {
		s.logger.Error("Failed to generate token pair", zap.Error(err))
		return nil, shared.NewDomainError("INTERNAL_ERROR", "Failed to generate authentication tokens")
	}

	return &AuthResult{
		AccessToken:           pair.AccessToken,
		RefreshToken:          pair.RefreshToken,
		AccessTokenExpiresAt:  pair.AccessTokenExpiresAt,
		RefreshTokenExpiresAt: pair.RefreshTokenExpiresAt,
		TokenType:             pair.TokenType,
		User: UserInfo{
			ID:       user.ID,
			Phone:    user.Phone,
			Username: user.Username,
			IsAdmin:  user.IsAdmin,
		},
	}, nil
}

func mapTokenError(err error) error {
	switch err {
	case auth.ErrExpiredToken:
		return shared.NewDomainError("TOKEN_EXPIRED", "Refresh token has expired")
	case auth.ErrMaxRefreshExceeded:
		return shared.NewDomainError("TOKEN_MAX_REFRESH", "Maximum token refresh count exceeded. Please log in again")
	default:
		return shared.NewDomainError("TOKEN_INVALID", "Invalid refresh token")
	}
}
