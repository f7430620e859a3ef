//go:build integration
// +build integration

package repository

import (
	"testing"

	"boatlog-backend/internal/testutils"

	"github.com/google/uuid"
	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// UserRepositoryTestSuite tests the UserRepository
type UserRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *UserRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *UserRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewUserRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *UserRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *UserRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *UserRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new user
func (suite *UserRepositoryTestSuite) TestCreate() {
	user := suite.factories.User.Create()

	err := suite.repo.Create(user)

	suite.NoError(err)
	suite.NotEqual(uuid.Nil, user.ID)
}

// TestCreateDuplicateSubject tests the unique index on subject
func (suite *UserRepositoryTestSuite) TestCreateDuplicateSubject() {
	first := suite.factories.User.WithSubject("auth0|dup-subject")
	suite.NoError(suite.repo.Create(first))

	second := suite.factories.User.WithSubject("auth0|dup-subject")
	err := suite.repo.Create(second)

	suite.Error(err)
	suite.True(IsUniqueViolation(err))
}

// TestGetBySubject tests retrieving a user by identity subject
func (suite *UserRepositoryTestSuite) TestGetBySubject() {
	user := suite.factories.User.WithSubject("auth0|lookup-me")
	suite.NoError(suite.repo.Create(user))

	retrieved, err := suite.repo.GetBySubject("auth0|lookup-me")

	suite.NoError(err)
	suite.Equal(user.ID, retrieved.ID)
	suite.Equal(user.Email, retrieved.Email)
}

// TestGetBySubjectNotFound tests looking up an unknown subject
func (suite *UserRepositoryTestSuite) TestGetBySubjectNotFound() {
	_, err := suite.repo.GetBySubject("auth0|nobody")

	suite.Error(err)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestList tests paginated listing with a total count
func (suite *UserRepositoryTestSuite) TestList() {
	for i := 0; i < 3; i++ {
		suite.NoError(suite.repo.Create(suite.factories.User.Create()))
	}

	users, total, err := suite.repo.List(2, 0)

	suite.NoError(err)
	suite.Equal(int64(3), total)
	suite.Len(users, 2)
}

// TestDelete tests deleting a user
func (suite *UserRepositoryTestSuite) TestDelete() {
	user := suite.factories.User.Create()
	suite.NoError(suite.repo.Create(user))

	suite.NoError(suite.repo.Delete(user.ID))

	_, err := suite.repo.GetByID(user.ID)
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestUserRepositoryTestSuite runs the test suite
func TestUserRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(UserRepositoryTestSuite))
}
