// Package library manages user libraries, their sections and items.
package library

import (
	"context"
	"log/slog"
	"time"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// ---------------------------------------------------------------------------
// Consumer-defined interfaces (private)
// ---------------------------------------------------------------------------

type libraryRepo interface {
	GetByID(ctx context.Context, userID, id uuid.UUID) (*domain.Library, error)
	ListByUser(ctx context.Context, userID uuid.UUID) ([]domain.Library, error)
	Create(ctx context.Context, lib domain.Library) (*domain.Library, error)
	Delete(ctx context.Context, userID, id uuid.UUID) error
}

type sectionRepo interface {
	ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error)
	Create(ctx context.Context, s domain.Section) (*domain.Section, error)
}

type itemRepo interface {
	ListByLibrary(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error)
	Create(ctx context.Context, it domain.Item) (*domain.Item, error)
}

type txManager interface {
	RunInTx(ctx context.Context, fn func(ctx context.Context) error) error
}

// ---------------------------------------------------------------------------
// Service
// ---------------------------------------------------------------------------

// Service implements the library catalog.
type Service struct {
	libraries libraryRepo
	sections  sectionRepo
	items     itemRepo
	tx        txManager
	log       *slog.Logger
	clock     func() time.Time
}

// NewService creates a new library service.
func NewService(log *slog.Logger, libraries libraryRepo, sections sectionRepo, items itemRepo, tx txManager) *Service {
	return &Service{
		libraries: libraries,
		sections:  sections,
		items:     items,
		tx:        tx,
		log:       log.With("service", "library"),
		clock:     time.Now,
	}
}
