package main

import (
	"fmt"
	"io/fs"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"promptvault-backend/internal/config"
	"promptvault-backend/internal/database"
	"promptvault-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Simple structures that directly match DB schema
type TeamData struct {
	Name string `yaml:"name"`
}

type ProfileData struct {
	ID       string `yaml:"id"`
	Email    string `yaml:"email"`
	FullName string `yaml:"full_name,omitempty"`
	Role     string `yaml:"role,omitempty"`
	TeamName string `yaml:"team_name,omitempty"`
	TeamRole string `yaml:"team_role,omitempty"`
}

type PromptData struct {
	Title       string   `yaml:"title"`
	Description string   `yaml:"description"`
	Content     string   `yaml:"content"`
	Category    string   `yaml:"category"`
	Tags        []string `yaml:"tags,omitempty"`
	TeamName    string   `yaml:"team_name,omitempty"`
	AuthorEmail string   `yaml:"author_email,omitempty"`
	IsPublic    bool     `yaml:"is_public"`
	UseCount    int      `yaml:"use_count"`
}

// File structures
type TeamsFile struct {
	Teams []TeamData `yaml:"teams"`
}

type ProfilesFile struct {
	Profiles []ProfileData `yaml:"profiles"`
}

type PromptsFile struct {
	Prompts []PromptData `yaml:"prompts"`
}

func main() {
	log.Println("🚀 Loading initial data from YAML files...")

	// Load configuration
	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	// Connect to database with retry (for dockerized Postgres startup)
	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	// Load data from YAML files
	if err := loadDataFromYAMLFiles(db, "scripts/data"); err != nil {
		log.Fatalf("Failed to load data from YAML files: %v", err)
	}

	log.Println("✅ Initial data loaded successfully!")
}

// connectWithRetry attempts to initialize the DB with retries to wait for Postgres readiness.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	// Configure database options to suppress verbose logging during data loading
	opts := &database.Options{
		LogLevel: logger.Silent, // Suppress all GORM logs including SQL queries and "record not found"
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		// Only log every 10 attempts to reduce noise
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadDataFromYAMLFiles(db *gorm.DB, dataDir string) error {
	teams, err := loadTeams(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load teams: %w", err)
	}

	profiles, err := loadProfiles(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load profiles: %w", err)
	}

	prompts, err := loadPrompts(dataDir)
	if err != nil {
		return fmt.Errorf("failed to load prompts: %w", err)
	}

	// Create teams first
	teamMap := make(map[string]*models.Team)
	teamCreated := 0
	for _, teamData := range teams {
		team, created, err := createTeam(db, teamData)
		if err != nil {
			return fmt.Errorf("failed to create team %s: %w", teamData.Name, err)
		}
		teamMap[teamData.Name] = team
		if created {
			teamCreated++
		}
	}
	log.Printf("📋 Teams: %d created, %d total", teamCreated, len(teams))

	// Create profiles and their team memberships
	profileMap := make(map[string]*models.Profile)
	profileCreated := 0
	for _, profileData := range profiles {
		profile, created, err := createProfile(db, profileData, teamMap)
		if err != nil {
			return fmt.Errorf("failed to create profile %s: %w", profileData.Email, err)
		}
		profileMap[profileData.Email] = profile
		if created {
			profileCreated++
		}
	}
	log.Printf("📋 Profiles: %d created, %d total", profileCreated, len(profiles))

	// Create prompts
	promptCreated := 0
	for _, promptData := range prompts {
		_, created, err := createPrompt(db, promptData, teamMap, profileMap)
		if err != nil {
			log.Printf("⚠️  Warning: failed to create prompt %s: %v", promptData.Title, err)
			continue // Continue with other prompts
		}
		if created {
			promptCreated++
		}
	}
	log.Printf("📋 Prompts: %d created, %d total", promptCreated, len(prompts))

	return nil
}

func loadTeams(dataDir string) ([]TeamData, error) {
	var allTeams []TeamData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "teams") {
			var file TeamsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allTeams = append(allTeams, file.Teams...)
		}
		return nil
	})

	return allTeams, err
}

func loadProfiles(dataDir string) ([]ProfileData, error) {
	var allProfiles []ProfileData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "profiles") {
			var file ProfilesFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allProfiles = append(allProfiles, file.Profiles...)
		}
		return nil
	})

	return allProfiles, err
}

func loadPrompts(dataDir string) ([]PromptData, error) {
	var allPrompts []PromptData

	err := filepath.WalkDir(dataDir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}

		if !d.IsDir() && strings.HasSuffix(path, ".yaml") && strings.Contains(path, "prompts") {
			var file PromptsFile
			data, err := os.ReadFile(path)
			if err != nil {
				return err
			}

			if err := yaml.Unmarshal(data, &file); err != nil {
				return err
			}

			allPrompts = append(allPrompts, file.Prompts...)
		}
		return nil
	})

	return allPrompts, err
}

func createTeam(db *gorm.DB, teamData TeamData) (*models.Team, bool, error) {
	var team models.Team
	if err := db.Where("name = ?", teamData.Name).First(&team).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			team = models.Team{
				Name: teamData.Name,
			}

			if err := db.Create(&team).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create team: %w", err)
			}
			return &team, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query team: %w", err)
		}
	}

	return &team, false, nil // created = false (existing)
}

func createProfile(db *gorm.DB, profileData ProfileData, teamMap map[string]*models.Team) (*models.Profile, bool, error) {
	var profile models.Profile
	if err := db.Where("email = ?", profileData.Email).First(&profile).Error; err != nil {
		if err != gorm.ErrRecordNotFound {
			return nil, false, fmt.Errorf("failed to query profile: %w", err)
		}

		// Profile ids come from Supabase auth in production; seed data pins
		// them so tokens minted against the seed users resolve correctly.
		id := uuid.New()
		if profileData.ID != "" {
			parsed, err := uuid.Parse(profileData.ID)
			if err != nil {
				return nil, false, fmt.Errorf("invalid profile id %q: %w", profileData.ID, err)
			}
			id = parsed
		}

		profile = models.Profile{
			ID:    id,
			Email: profileData.Email,
		}
		if profileData.FullName != "" {
			profile.FullName = &profileData.FullName
		}
		if profileData.Role != "" {
			profile.Role = &profileData.Role
		}

		if err := db.Create(&profile).Error; err != nil {
			return nil, false, fmt.Errorf("failed to create profile: %w", err)
		}

		// Attach to a team when one is named
		if profileData.TeamName != "" {
			team := teamMap[profileData.TeamName]
			if team == nil {
				log.Printf("⚠️  Warning: team %s not found for profile %s", profileData.TeamName, profileData.Email)
			} else {
				role := models.TeamRoleMember
				if profileData.TeamRole != "" {
					role = models.TeamRole(profileData.TeamRole)
				}
				membership := models.TeamMember{
					TeamID: team.ID,
					UserID: profile.ID,
					Role:   role,
				}
				if err := db.Where("team_id = ? AND user_id = ?", team.ID, profile.ID).FirstOrCreate(&membership, membership).Error; err != nil {
					log.Printf("⚠️  Warning: failed to create team membership: %v", err)
				}
			}
		}
		return &profile, true, nil // created = true
	}

	return &profile, false, nil // created = false (existing)
}

func createPrompt(db *gorm.DB, promptData PromptData, teamMap map[string]*models.Team, profileMap map[string]*models.Profile) (*models.Prompt, bool, error) {
	var teamID *uuid.UUID
	if promptData.TeamName != "" {
		team := teamMap[promptData.TeamName]
		if team == nil {
			return nil, false, fmt.Errorf("team %s not found for prompt %s", promptData.TeamName, promptData.Title)
		}
		teamID = &team.ID
	}

	var authorID *uuid.UUID
	if promptData.AuthorEmail != "" {
		if author := profileMap[promptData.AuthorEmail]; author != nil {
			authorID = &author.ID
		} else {
			log.Printf("⚠️  Warning: author %s not found for prompt %s", promptData.AuthorEmail, promptData.Title)
		}
	}

	var prompt models.Prompt
	if err := db.Where("title = ? AND category = ?", promptData.Title, promptData.Category).First(&prompt).Error; err != nil {
		if err == gorm.ErrRecordNotFound {
			prompt = models.Prompt{
				Title:       promptData.Title,
				Description: promptData.Description,
				Content:     promptData.Content,
				Category:    promptData.Category,
				Tags:        promptData.Tags,
				AuthorID:    authorID,
				TeamID:      teamID,
				IsPublic:    promptData.IsPublic,
				UseCount:    promptData.UseCount,
			}

			if err := db.Create(&prompt).Error; err != nil {
				return nil, false, fmt.Errorf("failed to create prompt: %w", err)
			}
			return &prompt, true, nil // created = true
		} else {
			return nil, false, fmt.Errorf("failed to query prompt: %w", err)
		}
	}

	return &prompt, false, nil // created = false (existing)
}
