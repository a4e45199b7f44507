package user

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/pkg/ctxutil"
)

// GetProfile returns the authenticated user's profile.
// Returns ErrUnauthorized if no userID is found in context.
func (s *Service) GetProfile(ctx context.Context) (*domain.Profile, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.GetByUserID(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("user.GetProfile: %w", err)
	}

	return profile, nil
}

// UpdateNickname sets the authenticated user's nickname.
// The input is validated before the repository is touched.
func (s *Service) UpdateNickname(ctx context.Context, input UpdateNicknameInput) (*domain.Profile, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	profile, err := s.profiles.UpsertNickname(ctx, userID, input.Nickname)
	if err != nil {
		return nil, fmt.Errorf("user.UpdateNickname: %w", err)
	}

	s.log.InfoContext(ctx, "nickname updated",
		slog.String("user_id", userID.String()))

	return profile, nil
}
