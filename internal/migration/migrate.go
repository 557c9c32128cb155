package migration

import (
	"golang.org/x/crypto/bcrypt"
	"gorm.io/gorm"

	"github.com/promptdeck/promptdeck-backend/internal/config"
	"github.com/promptdeck/promptdeck-backend/internal/domain"
	"github.com/promptdeck/promptdeck-backend/pkg/logger"
)

// Run executes AutoMigrate for all tables and seeds initial data.
// Safe to run repeatedly.
func Run(db *gorm.DB, seed config.SeedConfig) error {
	if err := db.AutoMigrate(
		&domain.User{},
		&domain.Prompt{},
		&domain.Guide{},
		&domain.Agent{},
		&domain.Ruleset{},
		&domain.Proposal{},
	); err != nil {
		return err
	}

	if err := seedAdmin(db, seed); err != nil {
		return err
	}
	return seedContent(db)
}

// seedAdmin creates the configured admin account when it does not exist
func seedAdmin(db *gorm.DB, seed config.SeedConfig) error {
	if seed.AdminEmail == "" || seed.AdminPassword == "" {
		return nil
	}

	var count int64
	if err := db.Model(&domain.User{}).Where("email = ?", seed.AdminEmail).Count(&count).Error; err != nil {
		return err
	}
	if count > 0 {
		return nil
	}

	hash, err := bcrypt.GenerateFromPassword([]byte(seed.AdminPassword), bcrypt.DefaultCost)
	if err != nil {
		return err
	}

	name := seed.AdminName
	if name == "" {
		name = "Administrator"
	}
	admin := &domain.User{
		Email:            seed.AdminEmail,
		PasswordHash:     string(hash),
		Name:             name,
		Role:             domain.RoleAdmin,
		RequiresApproval: false,
		IsActive:         true,
	}
	if err := db.Create(admin).Error; err != nil {
		return err
	}
	logger.Info("seeded admin user: %s", seed.AdminEmail)
	return nil
}

// seedContent inserts a small published catalog on first run so a fresh
// install is not empty
func seedContent(db *gorm.DB) error {
	var count int64
	if err := db.Model(&domain.Prompt{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		prompts := []domain.Prompt{
			{
				Title:       "Competitor Analysis",
				Description: "Deep competitive landscape analysis framework focused on value propositions and growth.",
				AuthorName:  "Alex M.",
				Copies:      "1,837",
				Tags:        domain.StringList{"RESEARCH", "STRATEGY"},
				Tech:        "GPT-4 / CLAUDE",
				Content:     "Run a comprehensive competitor analysis: study their value propositions, growth strategies, market positioning and key advantages. Identify differentiation opportunities.",
				Status:      domain.StatusPublished,
			},
			{
				Title:       "Code Review Agent",
				Description: "Automated review focused on security, performance and team standards.",
				AuthorName:  "Dmitry S.",
				Copies:      "1,481",
				Tags:        domain.StringList{"DEVELOPMENT", "QUALITY"},
				Tech:        "CURSOR / COPILOT",
				Content:     "Analyze the code for security, performance, team standards and best practices. Suggest concrete improvements with examples.",
				Status:      domain.StatusPublished,
			},
		}
		if err := db.Create(&prompts).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&domain.Guide{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		guides := []domain.Guide{
			{
				Title:        "Environment Setup from Scratch",
				Description:  "Complete walkthrough for a working assisted-coding environment.",
				AuthorName:   "Alex M.",
				Category:     "CLAUDE CODE",
				TimeEstimate: "15 MIN",
				Views:        "3,245",
				Status:       domain.StatusPublished,
			},
			{
				Title:        "Repository Configuration",
				Description:  "Folder structure, agent configuration and editor rules.",
				AuthorName:   "Dmitry S.",
				Category:     "CURSOR",
				TimeEstimate: "10 MIN",
				Views:        "2,156",
				Status:       domain.StatusPublished,
			},
		}
		if err := db.Create(&guides).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&domain.Agent{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		agents := []domain.Agent{
			{
				Number:        "01",
				Title:         "Reviewer",
				Description:   "Reviews incoming changes against team conventions.",
				Status:        domain.AgentActive,
				ContentStatus: domain.StatusPublished,
			},
			{
				Number:        "02",
				Title:         "Docs Writer",
				Description:   "Keeps reference documentation in sync with the code.",
				Status:        domain.AgentBeta,
				ContentStatus: domain.StatusPublished,
			},
		}
		if err := db.Create(&agents).Error; err != nil {
			return err
		}
	}

	if err := db.Model(&domain.Ruleset{}).Count(&count).Error; err != nil {
		return err
	}
	if count == 0 {
		rulesets := []domain.Ruleset{
			{
				Title:         "Go Service Rules",
				Description:   "House rules for backend services.",
				Language:      "Go",
				Content:       "Accept interfaces, return structs. Wrap errors with context. No package-level state.",
				ContentStatus: domain.StatusPublished,
			},
		}
		if err := db.Create(&rulesets).Error; err != nil {
			return err
		}
	}

	return nil
}
