package service

import (
	"context"
	"errors"
	"fmt"
	"strings"
	"time"

	"github.com/lash-app/backend/internal/domain"
	"github.com/lash-app/backend/internal/repository"
	"github.com/lash-app/backend/pkg/auth"
	"github.com/lash-app/backend/pkg/hash"
	"github.com/lash-app/backend/pkg/logger"
	"github.com/lash-app/backend/pkg/otp"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type userService struct {
	userRepository    repository.Users
	pendingRepository repository.PendingRegistrations
	hasher            hash.PasswordHasher
	tokenManager      auth.TokenManager
	otpGenerator      otp.Generator
	emails            Emails
}

func newUserService(userRepository repository.Users,
	pendingRepository repository.PendingRegistrations,
	hasher hash.PasswordHasher,
	tokenManager auth.TokenManager,
	otpGenerator otp.Generator,
	emails Emails,
) *userService {
	return &userService{
		userRepository:    userRepository,
		pendingRepository: pendingRepository,
		hasher:            hasher,
		tokenManager:      tokenManager,
		otpGenerator:      otpGenerator,
		emails:            emails,
	}
}

type RegisterInput struct {
	Name      string
	Email     string
	BirthDate time.Time
	Phone     string
	Password  string
}

type LoginResult struct {
	Token    string
	TokenTTL time.Duration
	Name     string
	UserID   uuid.UUID
}

func normalizeEmail(email string) string {
	return strings.ToLower(strings.TrimSpace(email))
}

func (s *userService) Register(ctx context.Context, input RegisterInput) error {
	input.Email = normalizeEmail(input.Email)
	input.Name = strings.TrimSpace(input.Name)
	input.Phone = strings.TrimSpace(input.Phone)

	if input.Name == "" || input.Email == "" || input.Phone == "" || input.Password == "" || input.BirthDate.IsZero() {
		return ErrValidation
	}

	_, err := s.userRepository.GetByEmail(ctx, input.Email)
	if err == nil {
		return ErrUserAlreadyExist
	}
	if !errors.Is(err, domain.ErrNotFound) {
		return fmt.Errorf("get user by email failed: %w", err)
	}

	passwordHash, err := s.hasher.Hash(input.Password)
	if err != nil {
		return fmt.Errorf("hash password failed: %w", err)
	}

	pending := &domain.PendingRegistration{
		Name:         input.Name,
		Email:        input.Email,
		BirthDate:    input.BirthDate,
		Phone:        input.Phone,
		PasswordHash: passwordHash,
		Code:         s.otpGenerator.RandomCode(),
		CreatedAt:    now(),
	}

	if err := s.pendingRepository.Save(ctx, pending); err != nil {
		return fmt.Errorf("save pending registration failed: %w", err)
	}

	err = s.emails.SendUserVerificationEmail(ctx, VerificationEmailInput{
		Email:            pending.Email,
		VerificationCode: pending.Code,
	})
	if err != nil {
		logger.Error("verification email scheduling failed", zap.String("email", pending.Email), zap.Error(err))

		if delErr := s.pendingRepository.Delete(ctx, pending.Email); delErr != nil {
			logger.Error("pending registration cleanup failed", zap.String("email", pending.Email), zap.Error(delErr))
		}
		return fmt.Errorf("%w: %w", ErrNotificationFailed, err)
	}

	return nil
}

// VerifyCode turns the pending registration for email into a verified user.
// The pending entry is consumed only after the user row is written.
func (s *userService) VerifyCode(ctx context.Context, email string, code string) (uuid.UUID, error) {
	email = normalizeEmail(email)

	pending, err := s.pendingRepository.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return uuid.Nil, ErrPendingRegistrationNotFound
		}
		return uuid.Nil, fmt.Errorf("get pending registration failed: %w", err)
	}

	if pending.Code != code {
		return uuid.Nil, ErrInvalidVerificationCode
	}

	userID, err := uuid.NewV7()
	if err != nil {
		return uuid.Nil, fmt.Errorf("generate user id failed: %w", err)
	}

	user := &domain.User{
		ID:           userID,
		Name:         pending.Name,
		Email:        pending.Email,
		BirthDate:    pending.BirthDate,
		Phone:        pending.Phone,
		PasswordHash: pending.PasswordHash,
		IsVerified:   true,
	}

	if err := s.userRepository.Create(ctx, user); err != nil {
		if errors.Is(err, domain.ErrDuplicateEntry) {
			return uuid.Nil, ErrUserAlreadyExist
		}
		return uuid.Nil, fmt.Errorf("create user failed: %w", err)
	}

	if err := s.pendingRepository.Delete(ctx, email); err != nil {
		logger.Warn("pending registration delete failed", zap.String("email", email), zap.Error(err))
	}

	return userID, nil
}

func (s *userService) Login(ctx context.Context, email string, password string) (*LoginResult, error) {
	user, err := s.userRepository.GetByEmail(ctx, normalizeEmail(email))
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, ErrUserNotFound
		}
		return nil, fmt.Errorf("get user by email failed: %w", err)
	}

	// unverified accounts are rejected whatever the password
	if !user.IsVerified {
		return nil, ErrUserNotVerified
	}

	if err := s.hasher.Compare(user.PasswordHash, password); err != nil {
		if errors.Is(err, hash.ErrMismatchedPassword) {
			return nil, ErrInvalidPassword
		}
		return nil, fmt.Errorf("compare password failed: %w", err)
	}

	token, ttl, err := s.tokenManager.NewJWT(user.ID)
	if err != nil {
		return nil, fmt.Errorf("generate access token failed: %w", err)
	}

	return &LoginResult{
		Token:    token,
		TokenTTL: ttl,
		Name:     user.Name,
		UserID:   user.ID,
	}, nil
}
