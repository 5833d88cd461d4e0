package usecases

import (
	"context"
	"errors"
	"time"

	"github.com/google/uuid"
	"cep.backend/internal/domain/entities"
	domainerrors "cep.backend/internal/domain/errors"
	"cep.backend/internal/domain/repositories"
	"cep.backend/internal/infrastructure/mail"
	"cep.backend/pkg/crypto"
	"cep.backend/pkg/jwt"
)

// AuthUsecase handles authentication business logic
type AuthUsecase struct {
	userRepo         repositories.UserRepository
	otpRepo          repositories.OtpRepository
	notificationRepo repositories.NotificationRepository
	uow              repositories.UnitOfWork
	jwtService       *jwt.JWTService
}

// NewAuthUsecase creates a new auth usecase
func NewAuthUsecase(
	userRepo repositories.UserRepository,
	otpRepo repositories.OtpRepository,
	notificationRepo repositories.NotificationRepository,
	uow repositories.UnitOfWork,
	jwtService *jwt.JWTService,
) *AuthUsecase {
	return &AuthUsecase{
		userRepo:         userRepo,
		otpRepo:          otpRepo,
		notificationRepo: notificationRepo,
		uow:              uow,
		jwtService:       jwtService,
	}
}

// Login authenticates a user and issues a token
func (u *AuthUsecase) Login(ctx context.Context, input *entities.LoginInput) (*entities.AuthResponse, error) {
	user, err := u.userRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return nil, domainerrors.ErrInvalidCredentials
		}
		return nil, err
	}

	if !crypto.CheckPassword(input.Password, user.PasswordHash) {
		return nil, domainerrors.ErrInvalidCredentials
	}

	token, err := u.jwtService.GenerateToken(user.ID, user.Email, string(user.Role))
	if err != nil {
		return nil, err
	}

	return &entities.AuthResponse{
		Token: token,
		User:  user,
	}, nil
}

// GetUserByID gets a user by ID
func (u *AuthUsecase) GetUserByID(ctx context.Context, id uuid.UUID) (*entities.User, error) {
	return u.userRepo.GetByID(ctx, id)
}

// RequestPasswordReset generates a reset code for the user and enqueues
// the email carrying it. A repeat request overwrites the outstanding
// code, so at most one is valid per email at any time.
func (u *AuthUsecase) RequestPasswordReset(ctx context.Context, email string) error {
	if _, err := u.userRepo.GetByEmail(ctx, email); err != nil {
		return err
	}

	code, err := crypto.GenerateOTPCode()
	if err != nil {
		return err
	}

	otp := &entities.Otp{
		Email:     email,
		Code:      code,
		ExpiresAt: time.Now().Add(entities.OTPTTL),
	}

	subject, body := mail.OTPBody(code)

	// Code and email intent commit together; the dispatcher retries
	// delivery, so a transport failure never loses the code silently.
	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.otpRepo.Upsert(txCtx, otp); err != nil {
			return err
		}
		return u.notificationRepo.Create(txCtx, &entities.Notification{
			Kind:    entities.NotificationKindPasswordResetOTP,
			To:      []string{email},
			Subject: subject,
			Body:    body,
		})
	})
}

// ResetPassword validates the code and stores the new password.
// The code is single use: it is deleted on success.
func (u *AuthUsecase) ResetPassword(ctx context.Context, input *entities.ResetPasswordInput) error {
	otp, err := u.otpRepo.GetByEmail(ctx, input.Email)
	if err != nil {
		if errors.Is(err, domainerrors.ErrNotFound) {
			return domainerrors.ErrInvalidOTP
		}
		return err
	}

	if otp.Code != input.OTP || otp.Expired(time.Now()) {
		return domainerrors.ErrInvalidOTP
	}

	hash, err := crypto.HashPassword(input.NewPassword)
	if err != nil {
		return err
	}

	return u.uow.Do(ctx, func(txCtx context.Context) error {
		if err := u.userRepo.UpdatePassword(txCtx, input.Email, hash); err != nil {
			return err
		}
		return u.otpRepo.Delete(txCtx, input.Email)
	})
}
