package service

import (
	"fmt"
	"testing"
	"time"

	"boatlog-backend/internal/database/models"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/suite"
)

type AlertScannerTestSuite struct {
	suite.Suite
	now    time.Time
	boatID uuid.UUID
}

func (s *AlertScannerTestSuite) SetupTest() {
	s.now = time.Date(2026, 3, 10, 9, 30, 0, 0, time.UTC)
	s.boatID = uuid.New()
}

func (s *AlertScannerTestSuite) component(mutate func(*models.Component)) *models.Component {
	c := &models.Component{
		BoatID: s.boatID,
		Name:   "Port Engine",
	}
	c.ID = uuid.New()
	if mutate != nil {
		mutate(c)
	}
	return c
}

func (s *AlertScannerTestSuite) dateIn(days int) *time.Time {
	d := time.Date(2026, 3, 10, 0, 0, 0, 0, time.UTC).AddDate(0, 0, days)
	return &d
}

func (s *AlertScannerTestSuite) TestNoCadenceNoAlert() {
	alerts := componentAlerts(s.component(nil), "Wanderer", s.now)
	s.Empty(alerts)
}

func (s *AlertScannerTestSuite) TestDateAlertAtThirtyDays() {
	c := s.component(func(c *models.Component) {
		c.NextServiceDate = s.dateIn(30)
	})

	alerts := componentAlerts(c, "Wanderer", s.now)
	s.Require().Len(alerts, 1)
	s.Equal(fmt.Sprintf("comp-date-%s", c.ID), alerts[0].ID)
	s.Equal(AlertTypeMaintenanceDate, alerts[0].Type)
	s.Equal(SeverityUpcoming, alerts[0].Severity)
	s.Equal("Wanderer", alerts[0].BoatName)
	s.Equal(s.boatID, alerts[0].BoatID)
}

func (s *AlertScannerTestSuite) TestDateAlertSuppressedAtThirtyOneDays() {
	c := s.component(func(c *models.Component) {
		c.NextServiceDate = s.dateIn(31)
	})
	s.Empty(componentAlerts(c, "Wanderer", s.now))
}

func (s *AlertScannerTestSuite) TestOverdueDateAlert() {
	c := s.component(func(c *models.Component) {
		c.NextServiceDate = s.dateIn(-5)
	})

	alerts := componentAlerts(c, "Wanderer", s.now)
	s.Require().Len(alerts, 1)
	s.Equal(SeverityOverdue, alerts[0].Severity)
}

func (s *AlertScannerTestSuite) TestHoursAlertNeedsBothCounters() {
	next := 500
	c := s.component(func(c *models.Component) {
		c.NextServiceHours = &next
	})
	s.Empty(componentAlerts(c, "Wanderer", s.now), "no current hours, no alert")
}

func (s *AlertScannerTestSuite) TestHoursAlertWithinWindow() {
	next, current := 500, 460
	c := s.component(func(c *models.Component) {
		c.NextServiceHours = &next
		c.CurrentHours = &current
	})

	alerts := componentAlerts(c, "Wanderer", s.now)
	s.Require().Len(alerts, 1)
	s.Equal(fmt.Sprintf("comp-hours-%s", c.ID), alerts[0].ID)
	s.Equal(AlertTypeMaintenanceHours, alerts[0].Type)
	s.Equal(SeverityUpcoming, alerts[0].Severity)
	s.Require().NotNil(alerts[0].DueHours)
	s.Equal(500, *alerts[0].DueHours)
}

func (s *AlertScannerTestSuite) TestHoursAlertSuppressedAboveWindow() {
	next, current := 500, 449
	c := s.component(func(c *models.Component) {
		c.NextServiceHours = &next
		c.CurrentHours = &current
	})
	s.Empty(componentAlerts(c, "Wanderer", s.now))
}

func (s *AlertScannerTestSuite) TestBothCadencesEmitIndependently() {
	next, current := 500, 495
	c := s.component(func(c *models.Component) {
		c.NextServiceDate = s.dateIn(3)
		c.NextServiceHours = &next
		c.CurrentHours = &current
	})

	alerts := componentAlerts(c, "Wanderer", s.now)
	s.Require().Len(alerts, 2)
	s.Equal(AlertTypeMaintenanceDate, alerts[0].Type)
	s.Equal(AlertTypeMaintenanceHours, alerts[1].Type)
}

func (s *AlertScannerTestSuite) TestDocumentDefaultWindow() {
	doc := &models.Document{
		BoatID:     s.boatID,
		Title:      "Insurance Certificate",
		ExpiryDate: s.dateIn(45),
	}
	doc.ID = uuid.New()

	s.Nil(documentAlert(doc, "Wanderer", s.now), "45 days out is outside the 30-day default")
}

func (s *AlertScannerTestSuite) TestDocumentCustomWindow() {
	window := 60
	doc := &models.Document{
		BoatID:       s.boatID,
		Title:        "Insurance Certificate",
		ExpiryDate:   s.dateIn(45),
		ReminderDays: &window,
	}
	doc.ID = uuid.New()

	alert := documentAlert(doc, "Wanderer", s.now)
	s.Require().NotNil(alert)
	s.Equal(fmt.Sprintf("doc-%s", doc.ID), alert.ID)
	s.Equal(AlertTypeDocumentExpiry, alert.Type)
	s.Equal(SeverityInfo, alert.Severity)
	s.Require().NotNil(alert.DocumentID)
	s.Equal(doc.ID, *alert.DocumentID)
}

func (s *AlertScannerTestSuite) TestDocumentWithoutExpirySkipped() {
	doc := &models.Document{BoatID: s.boatID, Title: "Owner Manual"}
	doc.ID = uuid.New()
	s.Nil(documentAlert(doc, "Wanderer", s.now))
}

func TestAlertScannerTestSuite(t *testing.T) {
	suite.Run(t, new(AlertScannerTestSuite))
}

func TestSortAlerts(t *testing.T) {
	day := func(s string) *time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return &d
	}

	alerts := []Alert{
		{ID: "a", Severity: SeverityUrgent, dueAt: day("2024-02-01")},
		{ID: "b", Severity: SeverityOverdue, dueAt: day("2024-03-01")},
		{ID: "c", Severity: SeverityUrgent, dueAt: day("2024-01-01")},
	}

	sortAlerts(alerts)

	assert.Equal(t, "b", alerts[0].ID, "overdue outranks urgent regardless of date")
	assert.Equal(t, "c", alerts[1].ID)
	assert.Equal(t, "a", alerts[2].ID)
}

func TestSortAlertsKeepsArrivalOrderWithoutDates(t *testing.T) {
	day := func(s string) *time.Time {
		d, _ := time.Parse("2006-01-02", s)
		return &d
	}

	// Hours-only alerts carry no due date; they keep their arrival order
	// among equal-severity peers.
	alerts := []Alert{
		{ID: "hours-1", Severity: SeverityUrgent},
		{ID: "dated", Severity: SeverityUrgent, dueAt: day("2024-01-01")},
		{ID: "hours-2", Severity: SeverityUrgent},
		{ID: "later", Severity: SeverityInfo, dueAt: day("2024-01-01")},
	}

	sortAlerts(alerts)

	assert.Equal(t, "hours-1", alerts[0].ID)
	assert.Equal(t, "dated", alerts[1].ID)
	assert.Equal(t, "hours-2", alerts[2].ID)
	assert.Equal(t, "later", alerts[3].ID)
}
