package service

import (
	"fmt"
	"sort"
	"time"

	"boatlog-backend/internal/database/models"
	"boatlog-backend/internal/repository"

	"github.com/google/uuid"
)

// ActivityItemType distinguishes which source table an activity item came from
type ActivityItemType string

const (
	ActivityTypeMaintenanceLog ActivityItemType = "maintenance_log"
	ActivityTypeHealthCheck    ActivityItemType = "health_check"
	ActivityTypeDocument       ActivityItemType = "document"
)

// Fetch and cap limits for the activity feed
const (
	activityLogLimit      = 20
	activityCheckLimit    = 10
	activityDocumentLimit = 10
	activityFeedCap       = 15
)

// ActivityItem is a computed projection of a log entry, health check, or
// document upload for the recent-activity feed
type ActivityItem struct {
	ID            uuid.UUID        `json:"id"`
	Type          ActivityItemType `json:"type"`
	Title         string           `json:"title"`
	Description   string           `json:"description,omitempty"`
	Date          string           `json:"date"`
	BoatID        uuid.UUID        `json:"boatId"`
	BoatName      string           `json:"boatName"`
	ComponentName string           `json:"componentName,omitempty"`

	at time.Time
}

// ActivityResponse represents the response for the activity endpoint
type ActivityResponse struct {
	Activity []ActivityItem `json:"activity"`
}

// ActivityService computes the recent-activity feed for an account
type ActivityService struct {
	boatRepo     *repository.BoatRepository
	logRepo      *repository.MaintenanceLogRepository
	checkRepo    *repository.HealthCheckRepository
	documentRepo *repository.DocumentRepository
}

// NewActivityService creates a new activity service
func NewActivityService(boatRepo *repository.BoatRepository, logRepo *repository.MaintenanceLogRepository, checkRepo *repository.HealthCheckRepository, documentRepo *repository.DocumentRepository) *ActivityService {
	return &ActivityService{
		boatRepo:     boatRepo,
		logRepo:      logRepo,
		checkRepo:    checkRepo,
		documentRepo: documentRepo,
	}
}

// GetActivityForUser merges recent maintenance logs, health checks, and
// document uploads across the account's boats into one capped feed
func (s *ActivityService) GetActivityForUser(userID uuid.UUID) (*ActivityResponse, error) {
	boats, err := s.boatRepo.GetByOwnerID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get boats: %w", err)
	}
	if len(boats) == 0 {
		return &ActivityResponse{Activity: []ActivityItem{}}, nil
	}

	boatIDs := make([]uuid.UUID, len(boats))
	for i, b := range boats {
		boatIDs[i] = b.ID
	}

	logs, err := s.logRepo.GetRecentByBoatIDs(boatIDs, activityLogLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get maintenance logs: %w", err)
	}

	checks, err := s.checkRepo.GetRecentByBoatIDs(boatIDs, activityCheckLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get health checks: %w", err)
	}

	documents, err := s.documentRepo.GetRecentByBoatIDs(boatIDs, activityDocumentLimit)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	items := make([]ActivityItem, 0, len(logs)+len(checks)+len(documents))
	for i := range logs {
		items = append(items, logActivityItem(&logs[i]))
	}
	for i := range checks {
		items = append(items, checkActivityItem(&checks[i]))
	}
	for i := range documents {
		items = append(items, documentActivityItem(&documents[i]))
	}

	return &ActivityResponse{Activity: assembleFeed(items)}, nil
}

// assembleFeed sorts mixed activity items by date descending and truncates to
// the feed cap. The sort is stable so same-day items keep insertion order.
func assembleFeed(items []ActivityItem) []ActivityItem {
	sort.SliceStable(items, func(i, j int) bool {
		return items[i].at.After(items[j].at)
	})
	if len(items) > activityFeedCap {
		items = items[:activityFeedCap]
	}
	return items
}

func logActivityItem(log *models.MaintenanceLog) ActivityItem {
	item := ActivityItem{
		ID:          log.ID,
		Type:        ActivityTypeMaintenanceLog,
		Title:       log.Title,
		Description: log.Description,
		Date:        log.PerformedAt.Format("2006-01-02"),
		BoatID:      log.BoatID,
		at:          log.PerformedAt,
	}
	if log.Boat != nil {
		item.BoatName = log.Boat.Name
	}
	if log.Component != nil {
		item.ComponentName = log.Component.Name
	}
	return item
}

func checkActivityItem(check *models.HealthCheck) ActivityItem {
	item := ActivityItem{
		ID:          check.ID,
		Type:        ActivityTypeHealthCheck,
		Title:       fmt.Sprintf("Health check: %s", check.CheckType),
		Description: check.Notes,
		Date:        check.CheckedAt.Format("2006-01-02"),
		BoatID:      check.BoatID,
		at:          check.CheckedAt,
	}
	if check.Boat != nil {
		item.BoatName = check.Boat.Name
	}
	if check.Component != nil {
		item.ComponentName = check.Component.Name
	}
	return item
}

// documentActivityItem stamps the item with the date portion of the upload
// time so same-day uploads compare equal to dated log entries.
func documentActivityItem(doc *models.Document) ActivityItem {
	uploaded := doc.CreatedAt.UTC()
	day := time.Date(uploaded.Year(), uploaded.Month(), uploaded.Day(), 0, 0, 0, 0, time.UTC)
	item := ActivityItem{
		ID:     doc.ID,
		Type:   ActivityTypeDocument,
		Title:  fmt.Sprintf("Document uploaded: %s", doc.Title),
		Date:   day.Format("2006-01-02"),
		BoatID: doc.BoatID,
		at:     day,
	}
	if doc.Boat != nil {
		item.BoatName = doc.Boat.Name
	}
	return item
}
