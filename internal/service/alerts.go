package service

import (
	"fmt"
	"sort"
	"time"

	"boatlog-backend/internal/database/models"
	"boatlog-backend/internal/repository"

	"github.com/google/uuid"
)

// AlertType distinguishes what kind of due item produced an alert
type AlertType string

const (
	AlertTypeMaintenanceDate  AlertType = "maintenance_date"
	AlertTypeMaintenanceHours AlertType = "maintenance_hours"
	AlertTypeDocumentExpiry   AlertType = "document_expiry"
)

// IsValid checks if the alert type is valid
func (t AlertType) IsValid() bool {
	switch t {
	case AlertTypeMaintenanceDate, AlertTypeMaintenanceHours, AlertTypeDocumentExpiry:
		return true
	}
	return false
}

// Alert is a computed projection of component or document state. Alerts are
// never persisted, every request rebuilds them from current rows.
type Alert struct {
	ID          string     `json:"id"`
	Type        AlertType  `json:"type"`
	Severity    Severity   `json:"severity"`
	Title       string     `json:"title"`
	Description string     `json:"description"`
	DueDate     string     `json:"dueDate,omitempty"`
	DueHours    *int       `json:"dueHours,omitempty"`
	ComponentID *uuid.UUID `json:"componentId,omitempty"`
	DocumentID  *uuid.UUID `json:"documentId,omitempty"`
	BoatID      uuid.UUID  `json:"boatId"`
	BoatName    string     `json:"boatName"`

	dueAt *time.Time
}

// AlertsResponse represents the response for the alerts endpoint
type AlertsResponse struct {
	Alerts []Alert `json:"alerts"`
}

// AlertsService computes the alert feed for an account
type AlertsService struct {
	boatRepo      *repository.BoatRepository
	componentRepo *repository.ComponentRepository
	documentRepo  *repository.DocumentRepository
}

// NewAlertsService creates a new alerts service
func NewAlertsService(boatRepo *repository.BoatRepository, componentRepo *repository.ComponentRepository, documentRepo *repository.DocumentRepository) *AlertsService {
	return &AlertsService{
		boatRepo:      boatRepo,
		componentRepo: componentRepo,
		documentRepo:  documentRepo,
	}
}

// GetAlertsForUser scans every boat the account owns and returns the sorted
// alert feed. An account with no boats gets an empty list, not an error.
func (s *AlertsService) GetAlertsForUser(userID uuid.UUID) (*AlertsResponse, error) {
	boats, err := s.boatRepo.GetByOwnerID(userID)
	if err != nil {
		return nil, fmt.Errorf("failed to get boats: %w", err)
	}
	if len(boats) == 0 {
		return &AlertsResponse{Alerts: []Alert{}}, nil
	}

	boatIDs := make([]uuid.UUID, len(boats))
	boatNames := make(map[uuid.UUID]string, len(boats))
	for i, b := range boats {
		boatIDs[i] = b.ID
		boatNames[b.ID] = b.Name
	}

	components, err := s.componentRepo.GetByBoatIDs(boatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get components: %w", err)
	}

	documents, err := s.documentRepo.GetExpiringByBoatIDs(boatIDs)
	if err != nil {
		return nil, fmt.Errorf("failed to get documents: %w", err)
	}

	now := time.Now().UTC()
	alerts := make([]Alert, 0)
	for i := range components {
		alerts = append(alerts, componentAlerts(&components[i], boatNames[components[i].BoatID], now)...)
	}
	for i := range documents {
		if a := documentAlert(&documents[i], boatNames[documents[i].BoatID], now); a != nil {
			alerts = append(alerts, *a)
		}
	}

	sortAlerts(alerts)
	return &AlertsResponse{Alerts: alerts}, nil
}

// componentAlerts emits zero, one, or two alerts for a component. The date
// and hours cadences trigger independently.
func componentAlerts(c *models.Component, boatName string, now time.Time) []Alert {
	var alerts []Alert

	if c.NextServiceDate != nil {
		days := daysUntil(*c.NextServiceDate, now)
		if days <= upcomingDays {
			componentID := c.ID
			due := *c.NextServiceDate
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("comp-date-%s", c.ID),
				Type:        AlertTypeMaintenanceDate,
				Severity:    CalculateSeverity(days),
				Title:       fmt.Sprintf("Service due: %s", c.Name),
				Description: dateAlertDescription(c.Name, due, days),
				DueDate:     due.Format("2006-01-02"),
				ComponentID: &componentID,
				BoatID:      c.BoatID,
				BoatName:    boatName,
				dueAt:       &due,
			})
		}
	}

	if c.NextServiceHours != nil && c.CurrentHours != nil {
		remaining := *c.NextServiceHours - *c.CurrentHours
		if remaining <= upcomingHours {
			componentID := c.ID
			dueHours := *c.NextServiceHours
			alerts = append(alerts, Alert{
				ID:          fmt.Sprintf("comp-hours-%s", c.ID),
				Type:        AlertTypeMaintenanceHours,
				Severity:    CalculateHoursSeverity(remaining),
				Title:       fmt.Sprintf("Service due: %s", c.Name),
				Description: hoursAlertDescription(c.Name, remaining),
				DueHours:    &dueHours,
				ComponentID: &componentID,
				BoatID:      c.BoatID,
				BoatName:    boatName,
			})
		}
	}

	return alerts
}

// documentAlert emits an expiry alert when the document's reminder window has
// opened. The window is per document, a 60-day window fires well before the
// 30-day default would.
func documentAlert(d *models.Document, boatName string, now time.Time) *Alert {
	if d.ExpiryDate == nil {
		return nil
	}

	days := daysUntil(*d.ExpiryDate, now)
	if days > d.ReminderWindow() {
		return nil
	}

	documentID := d.ID
	expiry := *d.ExpiryDate
	return &Alert{
		ID:          fmt.Sprintf("doc-%s", d.ID),
		Type:        AlertTypeDocumentExpiry,
		Severity:    CalculateSeverity(days),
		Title:       fmt.Sprintf("Document expiring: %s", d.Title),
		Description: expiryAlertDescription(d.Title, expiry, days),
		DueDate:     expiry.Format("2006-01-02"),
		DocumentID:  &documentID,
		BoatID:      d.BoatID,
		BoatName:    boatName,
		dueAt:       &expiry,
	}
}

// sortAlerts orders the feed by severity rank, then chronologically when both
// alerts carry a due date. Alerts without one keep their arrival order among
// equal-severity peers.
func sortAlerts(alerts []Alert) {
	sort.SliceStable(alerts, func(i, j int) bool {
		ri, rj := severityRank(alerts[i].Severity), severityRank(alerts[j].Severity)
		if ri != rj {
			return ri < rj
		}
		if alerts[i].dueAt != nil && alerts[j].dueAt != nil {
			return alerts[i].dueAt.Before(*alerts[j].dueAt)
		}
		return false
	})
}

func dateAlertDescription(name string, due time.Time, days int) string {
	if days < 0 {
		return fmt.Sprintf("%s service was due on %s", name, due.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s service is due on %s", name, due.Format("2006-01-02"))
}

func hoursAlertDescription(name string, remaining int) string {
	if remaining < 0 {
		return fmt.Sprintf("%s is %d engine hours past its service point", name, -remaining)
	}
	return fmt.Sprintf("%s is due for service in %d engine hours", name, remaining)
}

func expiryAlertDescription(title string, expiry time.Time, days int) string {
	if days < 0 {
		return fmt.Sprintf("%s expired on %s", title, expiry.Format("2006-01-02"))
	}
	return fmt.Sprintf("%s expires on %s", title, expiry.Format("2006-01-02"))
}
