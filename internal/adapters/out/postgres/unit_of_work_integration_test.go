package postgres_test

import (
	"context"
	"testing"
	"time"

	"lytefood/internal/adapters/out/postgres"
	"lytefood/internal/adapters/out/postgres/cartrepo"
	"lytefood/internal/adapters/out/postgres/sessionrepo"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/session"
	"lytefood/internal/pkg/errs"

	"github.com/stretchr/testify/suite"
	"github.com/testcontainers/testcontainers-go"
	tcpostgres "github.com/testcontainers/testcontainers-go/modules/postgres"
	"github.com/testcontainers/testcontainers-go/wait"
	gorm_postgres "gorm.io/driver/postgres"
	"gorm.io/gorm"
)

type UnitOfWorkTestSuite struct {
	suite.Suite
	container *tcpostgres.PostgresContainer
	db        *gorm.DB
	factory   *postgres.GormUnitOfWorkFactory
}

func (suite *UnitOfWorkTestSuite) SetupSuite() {
	ctx := context.Background()

	container, err := tcpostgres.Run(ctx,
		"postgres:15-alpine",
		tcpostgres.WithDatabase("testdb"),
		tcpostgres.WithUsername("testuser"),
		tcpostgres.WithPassword("testpass"),
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

	db, err := gorm.Open(gorm_postgres.Open(dsn), &gorm.Config{})
	suite.Require().NoError(err)
	suite.db = db

	err = db.AutoMigrate(&sessionrepo.SessionDTO{}, &cartrepo.CartDTO{}, &cartrepo.CartItemDTO{})
	suite.Require().NoError(err)

	suite.factory = postgres.NewGormUnitOfWorkFactory(db)
}

func (suite *UnitOfWorkTestSuite) TearDownSuite() {
	if suite.container != nil {
		suite.Require().NoError(suite.container.Terminate(context.Background()))
	}
}

func (suite *UnitOfWorkTestSuite) SetupTest() {
	suite.Require().NoError(suite.db.Exec("DELETE FROM cart_items").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM carts").Error)
	suite.Require().NoError(suite.db.Exec("DELETE FROM sessions").Error)
}

func (suite *UnitOfWorkTestSuite) newUser() *session.User {
	user, err := session.NewUser(
		kernel.NewUUID(),
		"ama@example.bj",
		"tok",
		session.Roles{Courier: true},
		session.Profile{
			FirstName:       "Ama",
			LastName:        "Dossou",
			PhoneNumber:     "+229 97 00 00 00",
			DeliveryAddress: "12 Rue des Manguiers, Cotonou",
		},
	)
	suite.Require().NoError(err)
	return user
}

func (suite *UnitOfWorkTestSuite) newCartWithLine(customerID kernel.UUID) *cart.Cart {
	price, err := kernel.MoneyFromString("3500.00")
	suite.Require().NoError(err)
	line, err := cart.NewItem(kernel.NewUUID(), "Poulet braisé", 2, price)
	suite.Require().NoError(err)

	aggregate, err := cart.NewCart(kernel.NewUUID(), customerID, time.Now())
	suite.Require().NoError(err)
	suite.Require().NoError(aggregate.AddItem(line, time.Now()))
	return aggregate
}

func (suite *UnitOfWorkTestSuite) commitSession(id kernel.UUID, user *session.User) {
	ctx := context.Background()
	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SessionRepository().Add(ctx, id, user))
	suite.Require().NoError(uow.Commit(ctx))
}

func (suite *UnitOfWorkTestSuite) TestSessionRoundTrip() {
	ctx := context.Background()
	sessionID := kernel.NewUUID()
	user := suite.newUser()

	suite.commitSession(sessionID, user)

	restored, err := suite.factory.Create().SessionRepository().Get(ctx, sessionID)
	suite.Require().NoError(err)
	suite.True(restored.ID().IsEqual(user.ID()))
	suite.Equal(user.Email(), restored.Email())
	suite.Equal(user.Token(), restored.Token())
	suite.Equal(user.Roles(), restored.Roles())
	suite.Equal(user.Profile(), restored.Profile())

	// Storing the restored user again must not change what comes back.
	secondID := kernel.NewUUID()
	suite.commitSession(secondID, restored)

	again, err := suite.factory.Create().SessionRepository().Get(ctx, secondID)
	suite.Require().NoError(err)
	suite.Equal(restored.Email(), again.Email())
	suite.Equal(restored.Roles(), again.Roles())
	suite.Equal(restored.Profile(), again.Profile())
}

func (suite *UnitOfWorkTestSuite) TestSessionNotFound() {
	_, err := suite.factory.Create().SessionRepository().Get(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestCorruptSessionPayloadReportsNotFound() {
	ctx := context.Background()
	sessionID := kernel.NewUUID()
	suite.commitSession(sessionID, suite.newUser())

	err := suite.db.Exec(
		`UPDATE sessions SET "user" = '{"id": "not-a-uuid"}' WHERE id = ?`,
		sessionID.Value(),
	).Error
	suite.Require().NoError(err)

	_, err = suite.factory.Create().SessionRepository().Get(ctx, sessionID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestSessionDeleteIsIdempotent() {
	ctx := context.Background()
	sessionID := kernel.NewUUID()
	suite.commitSession(sessionID, suite.newUser())

	repo := suite.factory.Create().SessionRepository()
	suite.Require().NoError(repo.Delete(ctx, sessionID))
	suite.Require().NoError(repo.Delete(ctx, sessionID))

	_, err := repo.Get(ctx, sessionID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestCartAddUpdateGet() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	aggregate := suite.newCartWithLine(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	restored, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.Require().Len(restored.Items(), 1)
	suite.Equal("Poulet braisé", restored.Items()[0].Name())
	suite.Equal(2, restored.Items()[0].Quantity())
	suite.Equal("7000.00", restored.Total().String())

	restored.Clear(time.Now())

	uow = suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Update(ctx, restored))
	suite.Require().NoError(uow.Commit(ctx))

	cleared, err := suite.factory.Create().CartRepository().GetByCustomer(ctx, customerID)
	suite.Require().NoError(err)
	suite.True(cleared.IsEmpty())
}

func (suite *UnitOfWorkTestSuite) TestCartNotFound() {
	_, err := suite.factory.Create().CartRepository().GetByCustomer(context.Background(), kernel.NewUUID())

	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestRollbackDiscardsChanges() {
	ctx := context.Background()
	sessionID := kernel.NewUUID()

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.SessionRepository().Add(ctx, sessionID, suite.newUser()))
	suite.Require().NoError(uow.Rollback(ctx))

	_, err := suite.factory.Create().SessionRepository().Get(ctx, sessionID)
	suite.Require().ErrorIs(err, errs.ErrObjectNotFound)
}

func (suite *UnitOfWorkTestSuite) TestGetCartQueryHandler() {
	ctx := context.Background()
	customerID := kernel.NewUUID()
	aggregate := suite.newCartWithLine(customerID)

	uow := suite.factory.Create()
	suite.Require().NoError(uow.Begin(ctx))
	suite.Require().NoError(uow.CartRepository().Add(ctx, aggregate))
	suite.Require().NoError(uow.Commit(ctx))

	handler := queries.NewGetCartQueryHandler(suite.db)
	query, err := queries.NewGetCartQuery(customerID)
	suite.Require().NoError(err)

	response, err := handler.Handle(ctx, query)
	suite.Require().NoError(err)
	suite.Require().Len(response.Lines, 1)
	suite.Equal("Poulet braisé", response.Lines[0].Name)
	suite.Equal("7000.00", response.Lines[0].Subtotal)
	suite.Equal("7000.00", response.Total)

	empty, err := queries.NewGetCartQuery(kernel.NewUUID())
	suite.Require().NoError(err)

	response, err = handler.Handle(ctx, empty)
	suite.Require().NoError(err)
	suite.Empty(response.Lines)
	suite.Equal("0.00", response.Total)
}

func TestUnitOfWorkTestSuite(t *testing.T) {
	if testing.Short() {
		t.Skip("skipping integration test in short mode")
	}
	suite.Run(t, new(UnitOfWorkTestSuite))
}
