package usecase

import (
	"context"
	"errors"

	"grh-backend/internal/domain"
	"grh-backend/pkg/apperror"
	"grh-backend/pkg/auth"
)

type authUsecase struct {
	userRepo domain.UserRepository
}

func NewAuthUsecase(userRepo domain.UserRepository) domain.AuthUsecase {
	return &authUsecase{userRepo: userRepo}
}

func (u *authUsecase) Authenticate(ctx context.Context, email, password string) (*domain.User, error) {
	if email == "" || password == "" {
		return nil, apperror.BadRequest("Email and password are required")
	}

	user, err := u.userRepo.GetByEmail(ctx, email)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.Unauthorized("Invalid credentials")
		}
		return nil, err
	}

	if !auth.ComparePassword(password, user.PasswordHash) {
		return nil, apperror.Unauthorized("Invalid credentials")
	}

	return user, nil
}

func (u *authUsecase) GetCurrentUser(ctx context.Context, id int64) (*domain.User, error) {
	user, err := u.userRepo.GetByID(ctx, id)
	if err != nil {
		if errors.Is(err, domain.ErrNotFound) {
			return nil, apperror.NotFound("Utilisateur non trouvé")
		}
		return nil, err
	}
	return user, nil
}
