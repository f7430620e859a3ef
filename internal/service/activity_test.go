package service

import (
	"fmt"
	"testing"
	"time"

	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
)

func TestAssembleFeedCapsAtFifteen(t *testing.T) {
	items := make([]ActivityItem, 0, 25)
	base := time.Date(2026, 3, 1, 0, 0, 0, 0, time.UTC)
	for i := 0; i < 25; i++ {
		items = append(items, ActivityItem{
			ID:   uuid.New(),
			Type: ActivityTypeMaintenanceLog,
			at:   base.AddDate(0, 0, i),
		})
	}

	feed := assembleFeed(items)

	assert.Len(t, feed, 15)
	for i := 1; i < len(feed); i++ {
		assert.False(t, feed[i].at.After(feed[i-1].at), "feed must be date descending")
	}
}

func TestAssembleFeedSortsMixedTypesByDate(t *testing.T) {
	day := func(s string) time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return d
	}

	items := []ActivityItem{
		{ID: uuid.New(), Type: ActivityTypeMaintenanceLog, Title: "Oil change", at: day("2026-03-01")},
		{ID: uuid.New(), Type: ActivityTypeHealthCheck, Title: "Bilge check", at: day("2026-03-05")},
		{ID: uuid.New(), Type: ActivityTypeDocument, Title: "Insurance", at: day("2026-03-03")},
	}

	feed := assembleFeed(items)

	assert.Equal(t, "Bilge check", feed[0].Title)
	assert.Equal(t, "Insurance", feed[1].Title)
	assert.Equal(t, "Oil change", feed[2].Title)
}

func TestAssembleFeedStableOnTies(t *testing.T) {
	when := time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC)
	items := []ActivityItem{
		{Title: "first", at: when},
		{Title: "second", at: when},
		{Title: "third", at: when},
	}

	feed := assembleFeed(items)

	assert.Equal(t, "first", feed[0].Title)
	assert.Equal(t, "second", feed[1].Title)
	assert.Equal(t, "third", feed[2].Title)
}

func TestDocumentActivityItemStripsTimeOfDay(t *testing.T) {
	doc := &models.Document{
		BoatID: uuid.New(),
		Title:  "Registration",
	}
	doc.ID = uuid.New()
	doc.CreatedAt = time.Date(2026, 3, 5, 17, 42, 11, 0, time.UTC)

	item := documentActivityItem(doc)

	assert.Equal(t, "2026-03-05", item.Date)
	assert.Equal(t, time.Date(2026, 3, 5, 0, 0, 0, 0, time.UTC), item.at)
	assert.Equal(t, ActivityTypeDocument, item.Type)
}

func TestLogActivityItemAnnotations(t *testing.T) {
	boat := &models.Boat{Name: "Wanderer"}
	component := &models.Component{Name: "Port Engine"}
	log := &models.MaintenanceLog{
		BoatID:      uuid.New(),
		Title:       "Impeller replaced",
		PerformedAt: time.Date(2026, 2, 20, 0, 0, 0, 0, time.UTC),
		Boat:        boat,
		Component:   component,
	}
	log.ID = uuid.New()

	item := logActivityItem(log)

	assert.Equal(t, "Impeller replaced", item.Title)
	assert.Equal(t, "Wanderer", item.BoatName)
	assert.Equal(t, "Port Engine", item.ComponentName)
	assert.Equal(t, "2026-02-20", item.Date)
}

func TestCheckActivityItemTitle(t *testing.T) {
	check := &models.HealthCheck{
		BoatID:    uuid.New(),
		CheckType: models.HealthCheckTypeOilLevel,
		Status:    models.HealthCheckStatusOK,
		CheckedAt: time.Date(2026, 2, 22, 0, 0, 0, 0, time.UTC),
	}
	check.ID = uuid.New()

	item := checkActivityItem(check)

	assert.Equal(t, fmt.Sprintf("Health check: %s", models.HealthCheckTypeOilLevel), item.Title)
	assert.Equal(t, ActivityTypeHealthCheck, item.Type)
}
