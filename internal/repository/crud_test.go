package repository

import (
	"errors"
	"testing"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func setupTestDB(t *testing.T) *gorm.DB {
	t.Helper()
	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	if err != nil {
		t.Fatalf("open sqlite: %v", err)
	}
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Prompt{},
		&domain.Guide{},
		&domain.Agent{},
		&domain.Ruleset{},
		&domain.Proposal{},
	); err != nil {
		t.Fatalf("migrate: %v", err)
	}
	return db
}

func createPrompt(t *testing.T, repo PromptRepository, title string, status domain.ContentStatus) *domain.Prompt {
	t.Helper()
	p := &domain.Prompt{
		Title:       title,
		Description: "about " + title,
		Copies:      "0",
		Tags:        domain.StringList{},
		Status:      status,
	}
	if err := repo.Create(p); err != nil {
		t.Fatalf("create prompt: %v", err)
	}
	return p
}

func TestSoftDeleteHidesFromReads(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	kept := createPrompt(t, repo, "kept", domain.StatusPublished)
	doomed := createPrompt(t, repo, "doomed", domain.StatusPublished)

	if err := repo.SoftDelete(doomed.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}

	if _, err := repo.FindByID(doomed.ID, false); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("deleted row visible without includeDeleted: err=%v", err)
	}

	got, err := repo.FindByID(doomed.ID, true)
	if err != nil {
		t.Fatalf("includeDeleted lookup: %v", err)
	}
	if !got.DeletedAt.Valid {
		t.Error("tombstone not set on deleted row")
	}

	items, total, err := repo.List(false, 1, 20)
	if err != nil {
		t.Fatalf("list: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].ID != kept.ID {
		t.Errorf("default list = %d items (total %d), want only the kept row", len(items), total)
	}

	_, total, err = repo.List(true, 1, 20)
	if err != nil {
		t.Fatalf("list includeDeleted: %v", err)
	}
	if total != 2 {
		t.Errorf("includeDeleted list total = %d, want 2", total)
	}
}

func TestSoftDeleteNotIdempotent(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	p := createPrompt(t, repo, "once", domain.StatusPublished)

	if err := repo.SoftDelete(p.ID); err != nil {
		t.Fatalf("first delete: %v", err)
	}
	if err := repo.SoftDelete(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second delete err = %v, want ErrRecordNotFound", err)
	}
	if err := repo.SoftDelete(9999); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("delete of missing row err = %v, want ErrRecordNotFound", err)
	}
}

func TestRestoreLifecycle(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	p := createPrompt(t, repo, "phoenix", domain.StatusPublished)

	// Restoring a live row must fail, not no-op
	if err := repo.Restore(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("restore of live row err = %v, want ErrRecordNotFound", err)
	}

	if err := repo.SoftDelete(p.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}
	if err := repo.Restore(p.ID); err != nil {
		t.Fatalf("restore: %v", err)
	}

	got, err := repo.FindByID(p.ID, false)
	if err != nil {
		t.Fatalf("restored row not visible: %v", err)
	}
	if got.DeletedAt.Valid {
		t.Error("tombstone still set after restore")
	}

	// Restore twice: second call finds no tombstone
	if err := repo.Restore(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("second restore err = %v, want ErrRecordNotFound", err)
	}

	// Full cycle again: delete works after restore
	if err := repo.SoftDelete(p.ID); err != nil {
		t.Errorf("re-delete after restore: %v", err)
	}
}

func TestHardDeleteIsFinal(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	p := createPrompt(t, repo, "gone", domain.StatusPublished)

	if err := repo.HardDelete(p.ID); err != nil {
		t.Fatalf("hard delete: %v", err)
	}
	if _, err := repo.FindByID(p.ID, true); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("row still present after hard delete: err=%v", err)
	}
	if err := repo.Restore(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("restore after hard delete err = %v, want ErrRecordNotFound", err)
	}
}

func TestHardDeleteSkipsTombstonedRows(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	p := createPrompt(t, repo, "buried", domain.StatusPublished)

	if err := repo.SoftDelete(p.ID); err != nil {
		t.Fatalf("soft delete: %v", err)
	}
	if err := repo.HardDelete(p.ID); !errors.Is(err, gorm.ErrRecordNotFound) {
		t.Errorf("hard delete of tombstoned row err = %v, want ErrRecordNotFound", err)
	}
	// Still restorable
	if err := repo.Restore(p.ID); err != nil {
		t.Errorf("restore after refused hard delete: %v", err)
	}
}

func TestSearchCaseInsensitiveSubstring(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	createPrompt(t, repo, "Competitor Analysis", domain.StatusPublished)
	createPrompt(t, repo, "Code Review", domain.StatusPublished)
	pending := createPrompt(t, repo, "Compliance Checklist", domain.StatusPending)
	deleted := createPrompt(t, repo, "Comparative Study", domain.StatusPublished)
	if err := repo.SoftDelete(deleted.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	items, total, err := repo.Search("comp", domain.StatusPublished, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || len(items) != 1 || items[0].Title != "Competitor Analysis" {
		t.Errorf("search(comp, published) = %v (total %d), want only Competitor Analysis", titles(items), total)
	}

	// Matches description too
	items, total, err = repo.Search("about code", domain.StatusPublished, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 1 || items[0].Title != "Code Review" {
		t.Errorf("description search = %v, want Code Review", titles(items))
	}

	// Status filter isolates the pending queue
	items, _, err = repo.Search("", domain.StatusPending, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].ID != pending.ID {
		t.Errorf("pending queue = %v, want Compliance Checklist", titles(items))
	}

	// Tombstoned rows never surface, whatever the filters
	items, _, err = repo.Search("comparative", "", 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 0 {
		t.Errorf("deleted row surfaced in search: %v", titles(items))
	}
}

func TestSearchPagination(t *testing.T) {
	repo := NewPromptRepository(setupTestDB(t))
	for i := 0; i < 5; i++ {
		createPrompt(t, repo, "Entry", domain.StatusPublished)
	}

	items, total, err := repo.Search("", domain.StatusPublished, 2, 2)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if total != 5 {
		t.Errorf("total = %d, want 5", total)
	}
	if len(items) != 2 {
		t.Errorf("page size = %d, want 2", len(items))
	}

	// Ordering is newest first, ids break the tie
	items, _, _ = repo.Search("", domain.StatusPublished, 1, 5)
	for i := 1; i < len(items); i++ {
		if items[i-1].ID < items[i].ID {
			t.Errorf("ordering not newest-first: %d before %d", items[i-1].ID, items[i].ID)
		}
	}
}

func TestUserEmailReservedWhileTombstoned(t *testing.T) {
	repo := NewUserRepository(setupTestDB(t))
	u := &domain.User{Email: "kept@example.com", Name: "Kept", Role: domain.RoleUser, IsActive: true}
	if err := repo.Create(u); err != nil {
		t.Fatalf("create: %v", err)
	}
	if err := repo.SoftDelete(u.ID); err != nil {
		t.Fatalf("delete: %v", err)
	}

	exists, err := repo.ExistsByEmail("kept@example.com")
	if err != nil {
		t.Fatalf("exists: %v", err)
	}
	if !exists {
		t.Error("tombstoned account must still reserve its email")
	}
}

func titles(items []*domain.Prompt) []string {
	out := make([]string, len(items))
	for i, p := range items {
		out[i] = p.Title
	}
	return out
}
