package user

import (
	"context"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// profileRepo defines the profile repository interface needed by user service.
type profileRepo interface {
	GetByUserID(ctx context.Context, userID uuid.UUID) (*domain.Profile, error)
	UpsertNickname(ctx context.Context, userID uuid.UUID, nickname string) (*domain.Profile, error)
}

// Service implements user profile operations.
type Service struct {
	log      *slog.Logger
	profiles profileRepo
}

// NewService creates a new user service instance.
func NewService(logger *slog.Logger, profiles profileRepo) *Service {
	return &Service{
		log:      logger.With("service", "user"),
		profiles: profiles,
	}
}
