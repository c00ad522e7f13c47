package persistence_test

import (
	"context"
	"fmt"
	"path/filepath"
	"testing"
	"time"

	"github.com/kartinke/kartinke/internal/domain/entity"
	"github.com/kartinke/kartinke/internal/domain/repository"
	"github.com/kartinke/kartinke/internal/infrastructure/config"
	"github.com/kartinke/kartinke/internal/infrastructure/persistence"
)

// newMemoryRepo and newSQLiteRepo build the two backends the contract
// suite runs against. Postgres is exercised by the same GORM repository
// code path, so the suite covers it transitively.
func newMemoryRepo(t *testing.T) repository.PhotoRepository {
	t.Helper()
	return persistence.NewMemoryPhotoRepository()
}

func newSQLiteRepo(t *testing.T) repository.PhotoRepository {
	t.Helper()
	db, err := persistence.NewDBConnection(&config.DatabaseConfig{
		Path: filepath.Join(t.TempDir(), "photos.db"),
	})
	if err != nil {
		t.Fatalf("failed to open sqlite database: %v", err)
	}
	repo := persistence.NewGormPhotoRepository(db)
	if err := repo.Init(context.Background()); err != nil {
		t.Fatalf("failed to init repository: %v", err)
	}
	return repo
}

func TestMemoryPhotoRepository(t *testing.T) {
	runPhotoRepositoryContract(t, newMemoryRepo)
}

func TestGormPhotoRepositorySQLite(t *testing.T) {
	runPhotoRepositoryContract(t, newSQLiteRepo)
}

// TestBackendEquivalence feeds both backends the same scenario and demands
// identical ordered results.
func TestBackendEquivalence(t *testing.T) {
	ctx := context.Background()
	memory := newMemoryRepo(t)
	sqlite := newSQLiteRepo(t)

	photos := []entity.Photo{
		{MessageID: 1, FileID: "f1", Caption: "Beautiful Sunset", Tags: "Sunset"},
		{MessageID: 2, FileID: "f2", Caption: "", Tags: "beach2024"},
		{MessageID: 3, FileID: "f3", Caption: "sunset at the beach", Tags: "sunset beach"},
		{MessageID: 4, FileID: "f4", Caption: "mountains", Tags: ""},
	}
	for i := range photos {
		if err := memory.Upsert(ctx, &photos[i]); err != nil {
			t.Fatalf("memory upsert: %v", err)
		}
		if err := sqlite.Upsert(ctx, &photos[i]); err != nil {
			t.Fatalf("sqlite upsert: %v", err)
		}
	}

	for _, query := range []string{"sunset", "SUNSET", "beach", "set", "nothing"} {
		fromMemory, err := memory.Search(ctx, query, 0)
		if err != nil {
			t.Fatalf("memory search %q: %v", query, err)
		}
		fromSQLite, err := sqlite.Search(ctx, query, 0)
		if err != nil {
			t.Fatalf("sqlite search %q: %v", query, err)
		}
		if len(fromMemory) != len(fromSQLite) {
			t.Fatalf("query %q: memory returned %d rows, sqlite %d", query, len(fromMemory), len(fromSQLite))
		}
		for i := range fromMemory {
			if fromMemory[i].MessageID != fromSQLite[i].MessageID ||
				fromMemory[i].FileID != fromSQLite[i].FileID ||
				fromMemory[i].Caption != fromSQLite[i].Caption {
				t.Errorf("query %q row %d differs: memory=%+v sqlite=%+v",
					query, i, fromMemory[i], fromSQLite[i])
			}
		}
	}
}

// runPhotoRepositoryContract is the behavior every PhotoRepository
// implementation must satisfy.
func runPhotoRepositoryContract(t *testing.T, newRepo func(t *testing.T) repository.PhotoRepository) {
	t.Run("upsert is idempotent per message id", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		posted := time.Date(2024, 7, 1, 12, 0, 0, 0, time.UTC)
		first := &entity.Photo{MessageID: 10, FileID: "file-a", Caption: "first #draft", Tags: "draft", CreatedAt: &posted}
		if err := repo.Upsert(ctx, first); err != nil {
			t.Fatalf("first upsert: %v", err)
		}
		second := &entity.Photo{MessageID: 10, FileID: "file-b", Caption: "second #final", Tags: "final", CreatedAt: &posted}
		if err := repo.Upsert(ctx, second); err != nil {
			t.Fatalf("second upsert: %v", err)
		}

		rows, err := repo.Search(ctx, "f", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("expected exactly one row after re-upsert, got %d", len(rows))
		}
		if rows[0].FileID != "file-b" || rows[0].Caption != "second #final" || rows[0].Tags != "final" {
			t.Errorf("row kept stale fields: %+v", rows[0])
		}
	})

	t.Run("search is case-insensitive", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		photo := &entity.Photo{MessageID: 1, FileID: "f1", Caption: "Beautiful Sunset"}
		if err := repo.Upsert(ctx, photo); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		for _, query := range []string{"sunset", "SUNSET", "set"} {
			rows, err := repo.Search(ctx, query, 0)
			if err != nil {
				t.Fatalf("search %q: %v", query, err)
			}
			if len(rows) != 1 {
				t.Errorf("search %q returned %d rows, want 1", query, len(rows))
			}
		}
	})

	t.Run("search matches tags with empty caption", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		photo := &entity.Photo{MessageID: 1, FileID: "f1", Caption: "", Tags: "beach2024"}
		if err := repo.Upsert(ctx, photo); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		rows, err := repo.Search(ctx, "beach", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("search by tag returned %d rows, want 1", len(rows))
		}
	})

	t.Run("search matches inner substrings", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		photo := &entity.Photo{MessageID: 1, FileID: "f1", Caption: "how to concatenate strings"}
		if err := repo.Upsert(ctx, photo); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		rows, err := repo.Search(ctx, "cat", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != 1 {
			t.Fatalf("substring search returned %d rows, want 1", len(rows))
		}
	})

	t.Run("search returns newest message first", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		for id := int64(1); id <= 3; id++ {
			photo := &entity.Photo{MessageID: id, FileID: fmt.Sprintf("f%d", id), Caption: "same caption"}
			if err := repo.Upsert(ctx, photo); err != nil {
				t.Fatalf("upsert %d: %v", id, err)
			}
		}
		rows, err := repo.Search(ctx, "same", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		want := []int64{3, 2, 1}
		if len(rows) != len(want) {
			t.Fatalf("got %d rows, want %d", len(rows), len(want))
		}
		for i, id := range want {
			if rows[i].MessageID != id {
				t.Errorf("row %d has message id %d, want %d", i, rows[i].MessageID, id)
			}
		}
	})

	t.Run("search enforces the limit", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		for id := int64(1); id <= 60; id++ {
			photo := &entity.Photo{MessageID: id, FileID: fmt.Sprintf("f%d", id), Caption: "crowd"}
			if err := repo.Upsert(ctx, photo); err != nil {
				t.Fatalf("upsert %d: %v", id, err)
			}
		}
		rows, err := repo.Search(ctx, "crowd", repository.DefaultSearchLimit)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != repository.DefaultSearchLimit {
			t.Fatalf("got %d rows, want %d", len(rows), repository.DefaultSearchLimit)
		}
		// Newest 50 of the 60, still descending.
		if rows[0].MessageID != 60 || rows[len(rows)-1].MessageID != 11 {
			t.Errorf("limit window wrong: first=%d last=%d", rows[0].MessageID, rows[len(rows)-1].MessageID)
		}
	})

	t.Run("no match is an empty result, not an error", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		rows, err := repo.Search(ctx, "anything", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != 0 {
			t.Errorf("expected empty result, got %d rows", len(rows))
		}
	})

	t.Run("init is idempotent", func(t *testing.T) {
		ctx := context.Background()
		repo := newRepo(t)

		photo := &entity.Photo{MessageID: 1, FileID: "f1", Caption: "kept"}
		if err := repo.Upsert(ctx, photo); err != nil {
			t.Fatalf("upsert: %v", err)
		}
		if err := repo.Init(ctx); err != nil {
			t.Fatalf("second init: %v", err)
		}
		rows, err := repo.Search(ctx, "kept", 0)
		if err != nil {
			t.Fatalf("search: %v", err)
		}
		if len(rows) != 1 {
			t.Errorf("init mutated data: %d rows left", len(rows))
		}
	})
}
