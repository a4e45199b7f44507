package library

import (
	"context"
	"fmt"

	"github.com/google/uuid"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// ListSections returns the sections of a library in display order.
func (s *Service) ListSections(ctx context.Context, libraryID uuid.UUID) ([]domain.Section, error) {
	if err := s.ownLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	sections, err := s.sections.ListByLibrary(ctx, libraryID)
	if err != nil {
		return nil, fmt.Errorf("list sections: %w", err)
	}
	return sections, nil
}

// CreateSection appends a section to a library.
func (s *Service) CreateSection(ctx context.Context, input CreateSectionInput) (*domain.Section, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	// ownership check and display order assignment share one transaction
	var section *domain.Section
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ownLibrary(ctx, input.LibraryID); err != nil {
			return err
		}
		created, err := s.sections.Create(ctx, domain.Section{
			ID:        uuid.New(),
			LibraryID: input.LibraryID,
			Title:     input.Title,
			CreatedAt: s.clock().UTC(),
		})
		if err != nil {
			return fmt.Errorf("create section: %w", err)
		}
		section = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return section, nil
}

// ListItems returns the items of a library in display order.
func (s *Service) ListItems(ctx context.Context, libraryID uuid.UUID) ([]domain.Item, error) {
	if err := s.ownLibrary(ctx, libraryID); err != nil {
		return nil, err
	}

	items, err := s.items.ListByLibrary(ctx, libraryID)
	if err != nil {
		return nil, fmt.Errorf("list items: %w", err)
	}
	return items, nil
}

// CreateItem appends an undecided item to a library. A section, when given,
// must belong to the same library.
func (s *Service) CreateItem(ctx context.Context, input CreateItemInput) (*domain.Item, error) {
	input.Normalize()
	if err := input.Validate(); err != nil {
		return nil, err
	}
	var item *domain.Item
	err := s.tx.RunInTx(ctx, func(ctx context.Context) error {
		if err := s.ownLibrary(ctx, input.LibraryID); err != nil {
			return err
		}
		if input.SectionID != nil {
			if err := s.checkSection(ctx, input.LibraryID, *input.SectionID); err != nil {
				return err
			}
		}

		now := s.clock().UTC()
		created, err := s.items.Create(ctx, domain.Item{
			ID:          uuid.New(),
			LibraryID:   input.LibraryID,
			SectionID:   input.SectionID,
			Question:    input.Question,
			Answer:      input.Answer,
			Memo:        input.Memo,
			StudyStatus: domain.StudyStatusUndecided,
			CreatedAt:   now,
			UpdatedAt:   now,
		})
		if err != nil {
			return fmt.Errorf("create item: %w", err)
		}
		item = created
		return nil
	})
	if err != nil {
		return nil, err
	}
	return item, nil
}

func (s *Service) checkSection(ctx context.Context, libraryID, sectionID uuid.UUID) error {
	sections, err := s.sections.ListByLibrary(ctx, libraryID)
	if err != nil {
		return fmt.Errorf("list sections: %w", err)
	}
	for _, sec := range sections {
		if sec.ID == sectionID {
			return nil
		}
	}
	return domain.NewValidationError("section_id", "not in library")
}
