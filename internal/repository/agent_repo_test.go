package repository

import (
	"testing"

	"github.com/promptdeck/promptdeck-backend/internal/domain"
)

func createAgent(t *testing.T, repo AgentRepository, title string, status domain.AgentStatus, contentStatus domain.ContentStatus) *domain.Agent {
	t.Helper()
	a := &domain.Agent{
		Title:         title,
		Description:   "agent " + title,
		Status:        status,
		ContentStatus: contentStatus,
	}
	if err := repo.Create(a); err != nil {
		t.Fatalf("create agent: %v", err)
	}
	return a
}

func TestAgentSearchFiltersAxesIndependently(t *testing.T) {
	repo := NewAgentRepository(setupTestDB(t))
	createAgent(t, repo, "Reviewer", domain.AgentActive, domain.StatusPublished)
	createAgent(t, repo, "Docs Writer", domain.AgentBeta, domain.StatusPublished)
	createAgent(t, repo, "Prototype", domain.AgentActive, domain.StatusPending)
	deprecated := createAgent(t, repo, "Legacy", domain.AgentDeprecated, domain.StatusPublished)

	// Published + active: the deprecated-but-published agent stays out
	items, _, err := repo.Search(AgentFilter{Status: domain.AgentActive, ContentStatus: domain.StatusPublished}, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 1 || items[0].Title != "Reviewer" {
		t.Errorf("active+published = %d items, want only Reviewer", len(items))
	}

	// Operational filter alone spans moderation states
	items, _, err = repo.Search(AgentFilter{Status: domain.AgentActive}, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	if len(items) != 2 {
		t.Errorf("active = %d items, want 2 (published and pending)", len(items))
	}

	// A deprecated agent can still be published
	items, _, err = repo.Search(AgentFilter{ContentStatus: domain.StatusPublished}, 1, 20)
	if err != nil {
		t.Fatalf("search: %v", err)
	}
	found := false
	for _, a := range items {
		if a.ID == deprecated.ID {
			found = true
		}
	}
	if !found {
		t.Error("deprecated published agent missing from published listing")
	}
}
