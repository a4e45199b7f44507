package library

import (
	"context"
	"fmt"
	"log/slog"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
	"github.com/heartmarshall/vocamemo-backend/pkg/ctxutil"
)

// ListLibraries returns the authenticated user's libraries.
func (s *Service) ListLibraries(ctx context.Context) ([]domain.Library, error) {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	libs, err := s.libraries.ListByUser(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("list libraries: %w", err)
	}
	return libs, nil
}

// CreateLibrary creates a library owned by the authenticated user.
func (s *Service) CreateLibrary(ctx context.Context, input CreateLibraryInput) (*domain.Library, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}

	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return nil, domain.ErrUnauthorized
	}

	now := s.clock().UTC()
	lib, err := s.libraries.Create(ctx, domain.Library{
		ID:          uuid.New(),
		UserID:      userID,
		Title:       input.Title,
		Description: input.Description,
		CreatedAt:   now,
		UpdatedAt:   now,
	})
	if err != nil {
		return nil, fmt.Errorf("create library: %w", err)
	}

	s.log.InfoContext(ctx, "library created",
		slog.String("user_id", userID.String()),
		slog.String("library_id", lib.ID.String()),
	)
	return lib, nil
}

// DeleteLibrary removes a library together with its sections and items.
func (s *Service) DeleteLibrary(ctx context.Context, libraryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if libraryID == uuid.Nil {
		return domain.NewValidationError("library_id", "required")
	}

	if err := s.libraries.Delete(ctx, userID, libraryID); err != nil {
		return fmt.Errorf("delete library: %w", err)
	}

	s.log.InfoContext(ctx, "library deleted",
		slog.String("user_id", userID.String()),
		slog.String("library_id", libraryID.String()),
	)
	return nil
}

// ownLibrary resolves the caller and checks they own libraryID.
func (s *Service) ownLibrary(ctx context.Context, libraryID uuid.UUID) error {
	userID, ok := ctxutil.UserIDFromCtx(ctx)
	if !ok {
		return domain.ErrUnauthorized
	}
	if libraryID == uuid.Nil {
		return domain.NewValidationError("library_id", "required")
	}
	if _, err := s.libraries.GetByID(ctx, userID, libraryID); err != nil {
		return fmt.Errorf("get library: %w", err)
	}
	return nil
}
