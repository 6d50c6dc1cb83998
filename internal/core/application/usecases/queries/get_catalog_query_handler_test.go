package queries_test

import (
	"context"
	"testing"
	"time"

	"github.com/Amman-Khan-17/Paperless-profits/internal/adapters/out/postgres/catalogrepo"
	"github.com/Amman-Khan-17/Paperless-profits/internal/adapters/out/postgres/customerrepo"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/application/usecases/queries"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/catalog"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/customer"
	"github.com/Amman-Khan-17/Paperless-profits/internal/core/domain/model/kernel"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	"github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	postgresdriver "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

// CatalogAndCustomersQueryTestSuite covers the two picker queries: the
// catalog listing and the customer listing. They share one container since
// both only read reference tables.
type CatalogAndCustomersQueryTestSuite struct {
	suite.Suite
	container        *postgres.PostgresContainer
	db               *gorm.DB
	catalogHandler   queries.GetCatalogQueryHandler
	customersHandler queries.GetCustomersQueryHandler
}

func (suite *CatalogAndCustomersQueryTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := postgres.Run(ctx,
		"postgres:15-alpine",
		postgres.WithDatabase("testdb"),
		postgres.WithUsername("testuser"),
		postgres.WithPassword("testpass"),
		testcontainers.WithWaitStrategy(
			wait.ForLog("database system is ready to accept connections").
				WithOccurrence(2).
				WithStartupTimeout(30*time.Second),
		),
	)
	suite.Require().NoError(err)
	suite.container = container

	dsn, err := container.ConnectionString(ctx, "sslmode=disable")
	suite.Require().NoError(err)

	db, err := gorm.Open(postgresdriver.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	suite.Require().NoError(db.AutoMigrate(
		&catalogrepo.BookDTO{},
		&catalogrepo.StationeryDTO{},
		&catalogrepo.SupplierDTO{},
		&customerrepo.CustomerDTO{},
	))

	suite.catalogHandler = queries.NewGetCatalogQueryHandler(db)
	suite.customersHandler = queries.NewGetCustomersQueryHandler(db)
}

func (suite *CatalogAndCustomersQueryTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *CatalogAndCustomersQueryTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("TRUNCATE TABLE books, stationary, customers").Error)
}

func (suite *CatalogAndCustomersQueryTestSuite) addBook(name, price string) uuid.UUID {
	dto := catalogrepo.BookDTO{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: 10,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *CatalogAndCustomersQueryTestSuite) addStationery(name, price string) uuid.UUID {
	dto := catalogrepo.StationeryDTO{
		ID:    uuid.New(),
		Name:  name,
		Price: decimal.RequireFromString(price),
		Stock: 50,
	}
	suite.Require().NoError(suite.db.Create(&dto).Error)
	return dto.ID
}

func (suite *CatalogAndCustomersQueryTestSuite) TestCatalog_EmptyKind_ReturnsEmptySlice() {
	query, err := queries.NewGetCatalogQuery(catalog.Book)
	suite.Require().NoError(err)

	result, err := suite.catalogHandler.Handle(context.Background(), query)

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func (suite *CatalogAndCustomersQueryTestSuite) TestCatalog_ReturnsOnlyRequestedKind() {
	suite.addBook("Clean Code", "45.99")
	suite.addBook("The Go Programming Language", "39.99")
	suite.addStationery("A4 Paper Pack", "12.99")

	bookQuery, err := queries.NewGetCatalogQuery(catalog.Book)
	suite.Require().NoError(err)

	books, err := suite.catalogHandler.Handle(context.Background(), bookQuery)
	suite.Require().NoError(err)
	suite.Require().Len(books, 2)
	suite.Equal("Clean Code", books[0].Name)
	suite.Equal("The Go Programming Language", books[1].Name)

	stationeryQuery, err := queries.NewGetCatalogQuery(catalog.Stationery)
	suite.Require().NoError(err)

	stationery, err := suite.catalogHandler.Handle(context.Background(), stationeryQuery)
	suite.Require().NoError(err)
	suite.Require().Len(stationery, 1)
	suite.Equal("A4 Paper Pack", stationery[0].Name)
	suite.True(stationery[0].Price.Equal(decimal.RequireFromString("12.99")))
}

func (suite *CatalogAndCustomersQueryTestSuite) TestCatalog_InvalidQuery_ReturnsError() {
	invalidQuery := queries.GetCatalogQuery{}

	_, err := suite.catalogHandler.Handle(context.Background(), invalidQuery)

	suite.Require().Error(err)
	suite.Contains(err.Error(), "must be created via NewGetCatalogQuery constructor")
}

func (suite *CatalogAndCustomersQueryTestSuite) TestCustomers_ReturnsSortedByName() {
	repo := customerrepo.NewGormCustomerRepository(suite.db)
	for _, name := range []string{"Walter", "Alice", "John Smith"} {
		buyer, err := customer.NewCustomer(kernel.NewUUID(), name, "", "")
		suite.Require().NoError(err)
		suite.Require().NoError(repo.Add(context.Background(), buyer))
	}

	result, err := suite.customersHandler.Handle(context.Background(), queries.NewGetCustomersQuery())

	suite.Require().NoError(err)
	suite.Require().Len(result, 3)
	suite.Equal("Alice", result[0].Name)
	suite.Equal("John Smith", result[1].Name)
	suite.Equal("Walter", result[2].Name)
}

func (suite *CatalogAndCustomersQueryTestSuite) TestCustomers_EmptyDatabase_ReturnsEmptySlice() {
	result, err := suite.customersHandler.Handle(context.Background(), queries.NewGetCustomersQuery())

	suite.Require().NoError(err)
	suite.NotNil(result)
	suite.Empty(result)
}

func TestCatalogAndCustomersQueryTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(CatalogAndCustomersQueryTestSuite))
}
