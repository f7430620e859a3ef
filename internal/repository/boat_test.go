//go:build integration
// +build integration

package repository

import (
	"testing"

	"boatlog-backend/internal/database/models"
	"boatlog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// BoatRepositoryTestSuite tests the BoatRepository
type BoatRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *BoatRepository
	userRepo      *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *BoatRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewBoatRepository(suite.baseTestSuite.DB)
	suite.userRepo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *BoatRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *BoatRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *BoatRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// createOwner persists a user to satisfy the owner foreign key
func (suite *BoatRepositoryTestSuite) createOwner() *models.User {
	user := suite.factories.User.Create()
	suite.NoError(suite.userRepo.Create(user))
	return user
}

// TestCreate tests creating a new boat
func (suite *BoatRepositoryTestSuite) TestCreate() {
	owner := suite.createOwner()
	boat := suite.factories.Boat.WithOwner(owner.ID)

	err := suite.repo.Create(boat)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, boat.ID)
	suite.NotZero(boat.CreatedAt)
}

// TestGetByID tests retrieving a boat by ID
func (suite *BoatRepositoryTestSuite) TestGetByID() {
	owner := suite.createOwner()
	boat := suite.factories.Boat.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(boat))

	retrieved, err := suite.repo.GetByID(boat.ID)

	suite.NoError(err)
	suite.NotNil(retrieved)
	suite.Equal(boat.ID, retrieved.ID)
	suite.Equal(boat.Name, retrieved.Name)
}

// TestGetByIDNotFound tests retrieving a non-existent boat
func (suite *BoatRepositoryTestSuite) TestGetByIDNotFound() {
	_, err := suite.repo.GetByID(uuid.New())

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetOwned tests retrieving a boat scoped to its owner
func (suite *BoatRepositoryTestSuite) TestGetOwned() {
	owner := suite.createOwner()
	boat := suite.factories.Boat.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(boat))

	retrieved, err := suite.repo.GetOwned(boat.ID, owner.ID)

	suite.NoError(err)
	suite.Equal(boat.ID, retrieved.ID)
}

// TestGetOwnedWrongOwner tests that another account's boat reads as missing
func (suite *BoatRepositoryTestSuite) TestGetOwnedWrongOwner() {
	owner := suite.createOwner()
	other := suite.createOwner()
	boat := suite.factories.Boat.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(boat))

	_, err := suite.repo.GetOwned(boat.ID, other.ID)

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetByOwnerID tests listing boats for an owner
func (suite *BoatRepositoryTestSuite) TestGetByOwnerID() {
	owner := suite.createOwner()
	other := suite.createOwner()

	mine := suite.factories.Boat.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(mine))
	theirs := suite.factories.Boat.WithOwner(other.ID)
	suite.NoError(suite.repo.Create(theirs))

	boats, err := suite.repo.GetByOwnerID(owner.ID)

	suite.NoError(err)
	suite.Len(boats, 1)
	suite.Equal(mine.ID, boats[0].ID)
}

// TestGetByOwnerIDEmpty tests listing boats for an owner with none
func (suite *BoatRepositoryTestSuite) TestGetByOwnerIDEmpty() {
	owner := suite.createOwner()

	boats, err := suite.repo.GetByOwnerID(owner.ID)

	suite.NoError(err)
	suite.Empty(boats)
}

// TestDeleteCascades tests that deleting a boat removes its components
func (suite *BoatRepositoryTestSuite) TestDeleteCascades() {
	owner := suite.createOwner()
	boat := suite.factories.Boat.WithOwner(owner.ID)
	suite.NoError(suite.repo.Create(boat))

	component := suite.factories.Component.WithBoat(boat.ID)
	componentRepo := NewComponentRepository(suite.baseTestSuite.DB)
	suite.NoError(componentRepo.Create(component))

	suite.NoError(suite.repo.Delete(boat.ID))

	_, err := suite.repo.GetByID(boat.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)

	_, err = componentRepo.GetByID(component.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestBoatRepositoryTestSuite runs the test suite
func TestBoatRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(BoatRepositoryTestSuite))
}
