package usecase

import (
	"context"
	"fmt"
	"time"

	"smart-highway/internal/data/repository"
	"smart-highway/internal/dto/request"
	"smart-highway/internal/dto/response"
	"smart-highway/pkg/utils"

	"github.com/google/uuid"
	"go.uber.org/zap"
)

type UserService interface {
	GetProfile(ctx context.Context, userID string) (*response.UserResponse, error)
	UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error)

	// Credit ledger
	GetCredits(ctx context.Context, userID string) (*response.CreditsResponse, error)
	TopUpCredits(ctx context.Context, userID string, req *request.TopUpCreditsRequest) (*response.CreditsResponse, error)
}

type userService struct {
	userRepo repository.UserRepository
	log      *zap.Logger
}

func NewUserService(userRepo repository.UserRepository, log *zap.Logger) UserService {
	return &userService{
		userRepo: userRepo,
		log:      log.With(zap.String("service", "user")),
	}
}

func (us *userService) GetProfile(ctx context.Context, userID string) (*response.UserResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		us.log.Warn("Invalid user ID", zap.String("user_id", userID), zap.Error(err))
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) UpdateProfile(ctx context.Context, userID string, req *request.UpdateProfileRequest) (*response.UserResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Update profile validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for update", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get profile")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	if req.Username != nil && *req.Username != user.Username {
		existing, err := us.userRepo.FindByUsername(ctx, *req.Username)
		if err != nil {
			us.log.Error("Failed to check username", zap.Error(err), zap.String("username", *req.Username))
			return nil, fmt.Errorf("failed to check username")
		}
		if existing != nil {
			return nil, fmt.Errorf("username already taken")
		}
		user.Username = *req.Username
	}
	if req.Phone != nil {
		user.Phone = req.Phone
	}
	user.UpdatedAt = time.Now()

	if err := us.userRepo.Update(ctx, user); err != nil {
		us.log.Error("Failed to update profile", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to update profile")
	}

	us.log.Info("Profile updated", zap.String("user_id", user.ID.String()))

	resp := response.UserToResponse(user)
	return &resp, nil
}

func (us *userService) GetCredits(ctx context.Context, userID string) (*response.CreditsResponse, error) {
	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to get credits", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to get credits")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	return &response.CreditsResponse{
		UserID:  user.ID.String(),
		Credits: user.Credits,
	}, nil
}

func (us *userService) TopUpCredits(ctx context.Context, userID string, req *request.TopUpCreditsRequest) (*response.CreditsResponse, error) {
	if errs := utils.ValidateStruct(req); len(errs) > 0 {
		us.log.Warn("Top up validation failed", zap.Any("errors", errs))
		return nil, fmt.Errorf("validation failed: %s", utils.FormatValidationErrors(errs))
	}

	id, err := uuid.Parse(userID)
	if err != nil {
		return nil, fmt.Errorf("invalid user ID")
	}

	user, err := us.userRepo.FindByID(ctx, id)
	if err != nil {
		us.log.Error("Failed to find user for top up", zap.Error(err), zap.String("user_id", userID))
		return nil, fmt.Errorf("failed to top up credits")
	}
	if user == nil {
		return nil, fmt.Errorf("user not found")
	}

	balance, err := us.userRepo.AddCredits(ctx, id, req.Amount)
	if err != nil {
		us.log.Error("Failed to top up credits",
			zap.Error(err),
			zap.String("user_id", userID),
			zap.Float64("amount", req.Amount),
		)
		return nil, fmt.Errorf("failed to top up credits")
	}

	us.log.Info("Credits topped up",
		zap.String("user_id", userID),
		zap.Float64("amount", req.Amount),
		zap.Float64("balance", balance),
	)

	return &response.CreditsResponse{
		UserID:  userID,
		Credits: balance,
	}, nil
}
