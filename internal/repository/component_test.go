//go:build integration
// +build integration

package repository

import (
	"testing"
	"time"

	"boatlog-backend/internal/database/models"
	"boatlog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// ComponentRepositoryTestSuite tests the ComponentRepository
type ComponentRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *ComponentRepository
	boatRepo      *BoatRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *ComponentRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewComponentRepository(suite.baseTestSuite.DB)
	suite.boatRepo = NewBoatRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *ComponentRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *ComponentRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *ComponentRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createBoat persists an owner and boat to satisfy foreign keys
func (suite *ComponentRepositoryTestSuite) createBoat() *models.Boat {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	boat := suite.factories.Boat.WithOwner(user.ID)
	suite.NoError(suite.boatRepo.Create(boat))
	return boat
}

// TestCreate tests creating a new component
func (suite *ComponentRepositoryTestSuite) TestCreate() {
	boat := suite.createBoat()
	component := suite.factories.Component.WithBoat(boat.ID)

	err := suite.repo.Create(component)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, component.ID)
}

// TestGetWithBoat tests retrieving a component with its boat preloaded
func (suite *ComponentRepositoryTestSuite) TestGetWithBoat() {
	boat := suite.createBoat()
	component := suite.factories.Component.WithBoat(boat.ID)
	suite.NoError(suite.repo.Create(component))

	retrieved, err := suite.repo.GetWithBoat(component.ID)

	suite.NoError(err)
	suite.NotNil(retrieved.Boat)
	suite.Equal(boat.OwnerID, retrieved.Boat.OwnerID)
}

// TestGetByBoatIDOrdersByName tests that listing sorts components by name
func (suite *ComponentRepositoryTestSuite) TestGetByBoatIDOrdersByName() {
	boat := suite.createBoat()

	second := suite.factories.Component.WithBoat(boat.ID)
	second.Name = "Watermaker"
	suite.NoError(suite.repo.Create(second))

	first := suite.factories.Component.WithBoat(boat.ID)
	first.Name = "Anchor Windlass"
	suite.NoError(suite.repo.Create(first))

	components, err := suite.repo.GetByBoatID(boat.ID)

	suite.NoError(err)
	suite.Len(components, 2)
	suite.Equal("Anchor Windlass", components[0].Name)
	suite.Equal("Watermaker", components[1].Name)
}

// TestGetByBoatIDsEmpty tests the empty-slice guard
func (suite *ComponentRepositoryTestSuite) TestGetByBoatIDsEmpty() {
	components, err := suite.repo.GetByBoatIDs(nil)

	suite.NoError(err)
	suite.Empty(components)
}

// TestGetByBoatIDs tests fetching components across several boats
func (suite *ComponentRepositoryTestSuite) TestGetByBoatIDs() {
	boatA := suite.createBoat()
	boatB := suite.createBoat()

	suite.NoError(suite.repo.Create(suite.factories.Component.WithBoat(boatA.ID)))
	suite.NoError(suite.repo.Create(suite.factories.Component.WithBoat(boatB.ID)))

	components, err := suite.repo.GetByBoatIDs([]uuid.UUID{boatA.ID, boatB.ID})

	suite.NoError(err)
	suite.Len(components, 2)
}

// TestUpdateFieldsWritesNull tests that a nil map value clears the column
func (suite *ComponentRepositoryTestSuite) TestUpdateFieldsWritesNull() {
	boat := suite.createBoat()
	next := time.Date(2026, 6, 1, 0, 0, 0, 0, time.UTC)
	component := suite.factories.Component.WithBoat(boat.ID)
	component.NextServiceDate = &next
	suite.NoError(suite.repo.Create(component))

	err := suite.repo.UpdateFields(component.ID, map[string]interface{}{
		"next_service_date": nil,
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.Nil(retrieved.NextServiceDate)
}

// TestUpdateFieldsPartial tests that untouched columns survive a field update
func (suite *ComponentRepositoryTestSuite) TestUpdateFieldsPartial() {
	boat := suite.createBoat()
	hours := 480
	component := suite.factories.Component.WithBoat(boat.ID)
	component.CurrentHours = &hours
	suite.NoError(suite.repo.Create(component))

	next := time.Date(2026, 9, 1, 0, 0, 0, 0, time.UTC)
	err := suite.repo.UpdateFields(component.ID, map[string]interface{}{
		"next_service_date": next,
	})
	suite.NoError(err)

	retrieved, err := suite.repo.GetByID(component.ID)
	suite.NoError(err)
	suite.NotNil(retrieved.CurrentHours)
	suite.Equal(480, *retrieved.CurrentHours)
	suite.NotNil(retrieved.NextServiceDate)
}

// TestDelete tests deleting a component
func (suite *ComponentRepositoryTestSuite) TestDelete() {
	boat := suite.createBoat()
	component := suite.factories.Component.WithBoat(boat.ID)
	suite.NoError(suite.repo.Create(component))

	suite.NoError(suite.repo.Delete(component.ID))

	_, err := suite.repo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestComponentRepositoryTestSuite runs the test suite
func TestComponentRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(ComponentRepositoryTestSuite))
}
