package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"time"

	"boatlog-backend/internal/config"
	"boatlog-backend/internal/database"
	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"gopkg.in/yaml.v3"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// Flat structures matching the YAML seed files. References between records
// go by name/email, resolved to IDs at load time.
type UserData struct {
	Subject string `yaml:"subject"`
	Email   string `yaml:"email"`
	Name    string `yaml:"name"`
}

type BoatData struct {
	OwnerEmail   string `yaml:"owner_email"`
	Name         string `yaml:"name"`
	Make         string `yaml:"make,omitempty"`
	Model        string `yaml:"model,omitempty"`
	Year         *int   `yaml:"year,omitempty"`
	Registration string `yaml:"registration,omitempty"`
}

type ComponentData struct {
	BoatName             string  `yaml:"boat_name"`
	Name                 string  `yaml:"name"`
	Category             string  `yaml:"category,omitempty"`
	Manufacturer         string  `yaml:"manufacturer,omitempty"`
	ServiceName          string  `yaml:"service_name,omitempty"`
	NextServiceDate      *string `yaml:"next_service_date,omitempty"`
	ServiceIntervalDays  *int    `yaml:"service_interval_days,omitempty"`
	CurrentHours         *int    `yaml:"current_hours,omitempty"`
	NextServiceHours     *int    `yaml:"next_service_hours,omitempty"`
	ServiceIntervalHours *int    `yaml:"service_interval_hours,omitempty"`
}

type DocumentData struct {
	BoatName     string  `yaml:"boat_name"`
	Title        string  `yaml:"title"`
	ExpiryDate   *string `yaml:"expiry_date,omitempty"`
	ReminderDays *int    `yaml:"reminder_days,omitempty"`
}

type FleetFile struct {
	Users      []UserData      `yaml:"users"`
	Boats      []BoatData      `yaml:"boats"`
	Components []ComponentData `yaml:"components"`
	Documents  []DocumentData  `yaml:"documents"`
}

func main() {
	log.Println("Loading demo fleet data from YAML...")

	cfg, err := config.Load()
	if err != nil {
		log.Fatalf("Failed to load config: %v", err)
	}

	db, err := connectWithRetry(cfg.DatabaseURL, 60, time.Second)
	if err != nil {
		log.Fatalf("Failed to connect to database: %v", err)
	}

	if err := loadFleet(db, "scripts/data/fleet.yaml"); err != nil {
		log.Fatalf("Failed to load demo data: %v", err)
	}

	log.Println("Demo data loaded successfully")
}

// connectWithRetry waits for a dockerized Postgres to come up.
func connectWithRetry(dsn string, maxAttempts int, delay time.Duration) (*gorm.DB, error) {
	opts := &database.Options{
		LogLevel: logger.Silent,
	}

	for attempt := 1; attempt <= maxAttempts; attempt++ {
		db, err := database.Initialize(dsn, opts)
		if err == nil {
			return db, nil
		}
		if attempt%10 == 0 || attempt == maxAttempts {
			log.Printf("Database not ready (%d/%d): %v", attempt, maxAttempts, err)
		}
		time.Sleep(delay)
	}
	return nil, fmt.Errorf("database not ready after %d attempts", maxAttempts)
}

func loadFleet(db *gorm.DB, path string) error {
	data, err := os.ReadFile(filepath.Clean(path))
	if err != nil {
		return fmt.Errorf("failed to read %s: %w", path, err)
	}

	var fleet FleetFile
	if err := yaml.Unmarshal(data, &fleet); err != nil {
		return fmt.Errorf("failed to parse %s: %w", path, err)
	}

	userByEmail := make(map[string]*models.User)
	created := 0
	for _, u := range fleet.Users {
		user, wasCreated, err := findOrCreateUser(db, u)
		if err != nil {
			return fmt.Errorf("failed to create user %s: %w", u.Email, err)
		}
		userByEmail[u.Email] = user
		if wasCreated {
			created++
		}
	}
	log.Printf("Users: %d created, %d total", created, len(fleet.Users))

	boatByName := make(map[string]*models.Boat)
	created = 0
	for _, b := range fleet.Boats {
		owner, ok := userByEmail[b.OwnerEmail]
		if !ok {
			return fmt.Errorf("boat %q references unknown owner %q", b.Name, b.OwnerEmail)
		}
		boat, wasCreated, err := findOrCreateBoat(db, b, owner.ID)
		if err != nil {
			return fmt.Errorf("failed to create boat %s: %w", b.Name, err)
		}
		boatByName[b.Name] = boat
		if wasCreated {
			created++
		}
	}
	log.Printf("Boats: %d created, %d total", created, len(fleet.Boats))

	created = 0
	for _, c := range fleet.Components {
		boat, ok := boatByName[c.BoatName]
		if !ok {
			return fmt.Errorf("component %q references unknown boat %q", c.Name, c.BoatName)
		}
		wasCreated, err := findOrCreateComponent(db, c, boat.ID)
		if err != nil {
			return fmt.Errorf("failed to create component %s: %w", c.Name, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Components: %d created, %d total", created, len(fleet.Components))

	created = 0
	for _, d := range fleet.Documents {
		boat, ok := boatByName[d.BoatName]
		if !ok {
			return fmt.Errorf("document %q references unknown boat %q", d.Title, d.BoatName)
		}
		wasCreated, err := findOrCreateDocument(db, d, boat.ID)
		if err != nil {
			return fmt.Errorf("failed to create document %s: %w", d.Title, err)
		}
		if wasCreated {
			created++
		}
	}
	log.Printf("Documents: %d created, %d total", created, len(fleet.Documents))

	return nil
}

func findOrCreateUser(db *gorm.DB, data UserData) (*models.User, bool, error) {
	var existing models.User
	err := db.Where("subject = ?", data.Subject).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	user := &models.User{
		Subject: data.Subject,
		Email:   data.Email,
		Name:    data.Name,
	}
	if err := db.Create(user).Error; err != nil {
		return nil, false, err
	}
	return user, true, nil
}

func findOrCreateBoat(db *gorm.DB, data BoatData, ownerID uuid.UUID) (*models.Boat, bool, error) {
	var existing models.Boat
	err := db.Where("owner_id = ? AND name = ?", ownerID, data.Name).First(&existing).Error
	if err == nil {
		return &existing, false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return nil, false, err
	}

	boat := &models.Boat{
		OwnerID:      ownerID,
		Name:         data.Name,
		Make:         data.Make,
		Model:        data.Model,
		Year:         data.Year,
		Registration: data.Registration,
	}
	if err := db.Create(boat).Error; err != nil {
		return nil, false, err
	}
	return boat, true, nil
}

func findOrCreateComponent(db *gorm.DB, data ComponentData, boatID uuid.UUID) (bool, error) {
	var existing models.Component
	err := db.Where("boat_id = ? AND name = ?", boatID, data.Name).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	nextDate, err := parseDate(data.NextServiceDate)
	if err != nil {
		return false, err
	}

	category := models.ComponentCategory(data.Category)
	if !category.IsValid() {
		category = models.ComponentCategoryOther
	}

	component := &models.Component{
		BoatID:               boatID,
		Name:                 data.Name,
		Category:             category,
		Manufacturer:         data.Manufacturer,
		ServiceName:          data.ServiceName,
		NextServiceDate:      nextDate,
		ServiceIntervalDays:  data.ServiceIntervalDays,
		CurrentHours:         data.CurrentHours,
		NextServiceHours:     data.NextServiceHours,
		ServiceIntervalHours: data.ServiceIntervalHours,
	}
	if err := db.Create(component).Error; err != nil {
		return false, err
	}
	return true, nil
}

func findOrCreateDocument(db *gorm.DB, data DocumentData, boatID uuid.UUID) (bool, error) {
	var existing models.Document
	err := db.Where("boat_id = ? AND title = ?", boatID, data.Title).First(&existing).Error
	if err == nil {
		return false, nil
	}
	if err != gorm.ErrRecordNotFound {
		return false, err
	}

	expiry, err := parseDate(data.ExpiryDate)
	if err != nil {
		return false, err
	}

	document := &models.Document{
		BoatID:       boatID,
		Title:        data.Title,
		ExpiryDate:   expiry,
		ReminderDays: data.ReminderDays,
	}
	if err := db.Create(document).Error; err != nil {
		return false, err
	}
	return true, nil
}

func parseDate(s *string) (*time.Time, error) {
	if s == nil || *s == "" {
		return nil, nil
	}
	t, err := time.ParseInLocation("2006-01-02", *s, time.UTC)
	if err != nil {
		return nil, fmt.Errorf("invalid date %q: %w", *s, err)
	}
	return &t, nil
}
