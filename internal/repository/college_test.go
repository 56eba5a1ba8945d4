//go:build integration
// +build integration

package repository

import (
	"testing"

	"event-registration-backend/internal/testutils"

	"github.com/stretchr/testify/suite"
	"gorm.io/gorm"
)

// CollegeRepositoryTestSuite tests the CollegeRepository
type CollegeRepositoryTestSuite struct {
	suite.Suite
	baseTestSuite *testutils.BaseTestSuite
	repo          *CollegeRepository
	factories     *testutils.FactorySet
}

// SetupSuite runs before all tests in the suite
func (suite *CollegeRepositoryTestSuite) SetupSuite() {
	suite.baseTestSuite = testutils.SetupTestSuite(suite.T())

	suite.repo = NewCollegeRepository(suite.baseTestSuite.DB)
	suite.factories = testutils.NewFactorySet()
}

// TearDownSuite runs after all tests in the suite
func (suite *CollegeRepositoryTestSuite) TearDownSuite() {
	suite.baseTestSuite.TeardownTestSuite()
}

// SetupTest runs before each test
func (suite *CollegeRepositoryTestSuite) SetupTest() {
	suite.baseTestSuite.SetupTest()
}

// TearDownTest runs after each test
func (suite *CollegeRepositoryTestSuite) TearDownTest() {
	suite.baseTestSuite.TearDownTest()
}

// TestCreate tests creating a new college
func (suite *CollegeRepositoryTestSuite) TestCreate() {
	college := suite.factories.College.Create()

	err := suite.repo.Create(college)

	suite.NoError(err)
	suite.NotZero(college.ID)
	suite.NotZero(college.CreatedAt)
}

// TestGetByID tests retrieving a college by ID
func (suite *CollegeRepositoryTestSuite) TestGetByID() {
	college := suite.factories.College.Create()
	suite.NoError(suite.repo.Create(college))

	found, err := suite.repo.GetByID(college.ID)

	suite.NoError(err)
	suite.Equal(college.Name, found.Name)
}

// TestGetByIDNotFound tests retrieving a nonexistent college
func (suite *CollegeRepositoryTestSuite) TestGetByIDNotFound() {
	found, err := suite.repo.GetByID(9999)

	suite.ErrorIs(err, gorm.ErrRecordNotFound)
	suite.Nil(found)
}

// TestGetByName tests exact-name lookup
func (suite *CollegeRepositoryTestSuite) TestGetByName() {
	college := suite.factories.College.WithName("New Horizon University")
	suite.NoError(suite.repo.Create(college))

	found, err := suite.repo.GetByName("New Horizon University")

	suite.NoError(err)
	suite.Equal(college.ID, found.ID)

	_, err = suite.repo.GetByName("new horizon university")
	suite.ErrorIs(err, gorm.ErrRecordNotFound)
}

// TestGetAll tests listing colleges ordered by name
func (suite *CollegeRepositoryTestSuite) TestGetAll() {
	suite.NoError(suite.repo.Create(suite.factories.College.WithName("Zeta College")))
	suite.NoError(suite.repo.Create(suite.factories.College.WithName("Alpha College")))

	colleges, total, err := suite.repo.GetAll(10, 0)

	suite.NoError(err)
	suite.Equal(int64(2), total)
	suite.Len(colleges, 2)
	suite.Equal("Alpha College", colleges[0].Name)
	suite.Equal("Zeta College", colleges[1].Name)
}

// TestCreateDuplicateName tests the unique constraint on college names
func (suite *CollegeRepositoryTestSuite) TestCreateDuplicateName() {
	suite.NoError(suite.repo.Create(suite.factories.College.WithName("ABC Engineering College")))

	err := suite.repo.Create(suite.factories.College.WithName("ABC Engineering College"))

	suite.Error(err)
}

// TestCollegeRepositoryTestSuite runs the test suite
func TestCollegeRepositoryTestSuite(t *testing.T) {
	suite.Run(t, new(CollegeRepositoryTestSuite))
}
