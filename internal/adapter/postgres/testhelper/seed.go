package testhelper

import (
	"context"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgxpool"

	"github.com/heartmarshall/vocamemo-backend/internal/domain"
)

// uniqueSuffix returns a short unique string for generating non-conflicting test data.
func uniqueSuffix() string {
	return uuid.New().String()[:8]
}

// SeedLibrary creates a library owned by a fresh random user.
func SeedLibrary(t *testing.T, pool *pgxpool.Pool) domain.Library {
	t.Helper()
	return SeedLibraryForUser(t, pool, uuid.New())
}

// SeedLibraryForUser creates a library owned by userID.
func SeedLibraryForUser(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID) domain.Library {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	lib := domain.Library{
		ID:        uuid.New(),
		UserID:    userID,
		Title:     "Library " + uniqueSuffix(),
		CreatedAt: now,
		UpdatedAt: now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO libraries (id, user_id, title, description, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		lib.ID, lib.UserID, lib.Title, lib.Description, lib.CreatedAt, lib.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedLibrary: %v", err)
	}

	return lib
}

// SeedItem creates an item in libraryID with the given study status.
func SeedItem(t *testing.T, pool *pgxpool.Pool, libraryID uuid.UUID, status string) domain.Item {
	t.Helper()

	now := time.Now().UTC().Truncate(time.Microsecond)
	suffix := uniqueSuffix()
	item := domain.Item{
		ID:          uuid.New(),
		LibraryID:   libraryID,
		Question:    "question " + suffix,
		Answer:      "answer " + suffix,
		StudyStatus: domain.ParseStudyStatus(status),
		CreatedAt:   now,
		UpdatedAt:   now,
	}

	_, err := pool.Exec(context.Background(),
		`INSERT INTO items (id, library_id, question, answer, study_status, created_at, updated_at)
		 VALUES ($1, $2, $3, $4, $5, $6, $7)`,
		item.ID, item.LibraryID, item.Question, item.Answer, status, item.CreatedAt, item.UpdatedAt,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedItem: %v", err)
	}

	return item
}

// SeedStudyLog inserts a study log row for userID on date.
func SeedStudyLog(t *testing.T, pool *pgxpool.Pool, userID uuid.UUID, date time.Time, items, correct, seconds int) {
	t.Helper()

	_, err := pool.Exec(context.Background(),
		`INSERT INTO study_logs (id, user_id, study_date, items_count, correct_count, study_time_seconds)
		 VALUES ($1, $2, $3, $4, $5, $6)`,
		uuid.New(), userID, date, items, correct, seconds,
	)
	if err != nil {
		t.Fatalf("testhelper: SeedStudyLog: %v", err)
	}
}
