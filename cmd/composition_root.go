package cmd

import (
	"log/slog"

	"gorm.io/gorm"

	httpin "lytefood/internal/adapters/in/http"
	"lytefood/internal/adapters/out/backend"
	"lytefood/internal/adapters/out/cache"
	"lytefood/internal/adapters/out/postgres"
	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/services"
	"lytefood/internal/jobs"
)

type CompositionRoot struct {
	config     Config
	gormDB     *gorm.DB
	uowFactory *postgres.GormUnitOfWorkFactory
	logger     *slog.Logger

	authClient    *backend.HTTPAuthClient
	menuClient    *backend.HTTPMenuClient
	orderClient   *backend.HTTPOrderClient
	paymentClient *backend.HTTPPaymentClient
	userClient    *backend.HTTPUserClient
	boardCache    *cache.InMemoryCourierBoardCache
}

func NewCompositionRoot(config Config, gormDB *gorm.DB, logger *slog.Logger) CompositionRoot {
	return CompositionRoot{
		config:        config,
		gormDB:        gormDB,
		uowFactory:    postgres.NewGormUnitOfWorkFactory(gormDB),
		logger:        logger,
		authClient:    backend.NewHTTPAuthClient(config.AuthServiceURL, nil),
		menuClient:    backend.NewHTTPMenuClient(config.MenuServiceURL, nil),
		orderClient:   backend.NewHTTPOrderClient(config.OrderServiceURL, nil),
		paymentClient: backend.NewHTTPPaymentClient(config.PaymentServiceURL, nil),
		userClient:    backend.NewHTTPUserClient(config.UserServiceURL, nil),
		boardCache:    cache.NewInMemoryCourierBoardCache(),
	}
}

func (c *CompositionRoot) sessionUoWFactory() commands.SessionUoWFactory {
	return FuncSessionUoWFactory(func() commands.SessionUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) cartUoWFactory() commands.CartUoWFactory {
	return FuncCartUoWFactory(func() commands.CartUoW {
		return c.uowFactory.Create()
	})
}

func (c *CompositionRoot) CreateLoginCommandHandler() commands.LoginCommandHandler {
	return commands.NewLoginCommandHandler(c.sessionUoWFactory(), c.authClient)
}

func (c *CompositionRoot) CreateLogoutCommandHandler() commands.LogoutCommandHandler {
	return commands.NewLogoutCommandHandler(c.sessionUoWFactory(), c.authClient, c.logger)
}

func (c *CompositionRoot) CreateAddCartItemCommandHandler() commands.AddCartItemCommandHandler {
	return commands.NewAddCartItemCommandHandler(c.cartUoWFactory(), c.menuClient)
}

func (c *CompositionRoot) CreateRemoveCartItemCommandHandler() commands.RemoveCartItemCommandHandler {
	return commands.NewRemoveCartItemCommandHandler(c.cartUoWFactory())
}

func (c *CompositionRoot) CreateCheckoutCommandHandler() commands.CheckoutCommandHandler {
	return commands.NewCheckoutCommandHandler(c.cartUoWFactory(), c.orderClient, c.paymentClient)
}

func (c *CompositionRoot) CreateChangeOrderStatusCommandHandler() commands.ChangeOrderStatusCommandHandler {
	return commands.NewChangeOrderStatusCommandHandler(
		c.orderClient,
		c.paymentClient,
		services.NewTransitionPlanner(),
		c.logger,
	)
}

func (c *CompositionRoot) CreateClaimOrderCommandHandler() commands.ClaimOrderCommandHandler {
	return commands.NewClaimOrderCommandHandler(c.orderClient)
}

func (c *CompositionRoot) CreateDeliverOrderCommandHandler() commands.DeliverOrderCommandHandler {
	return commands.NewDeliverOrderCommandHandler(c.orderClient, services.NewTransitionPlanner())
}

func (c *CompositionRoot) CreateRefreshCourierBoardCommandHandler() commands.RefreshCourierBoardCommandHandler {
	return commands.NewRefreshCourierBoardCommandHandler(c.orderClient, c.boardCache)
}

func (c *CompositionRoot) CreateGetMenuQueryHandler() queries.GetMenuQueryHandler {
	return queries.NewGetMenuQueryHandler(c.menuClient)
}

func (c *CompositionRoot) CreateGetCartQueryHandler() queries.GetCartQueryHandler {
	return queries.NewGetCartQueryHandler(c.gormDB)
}

func (c *CompositionRoot) CreateTrackOrderQueryHandler() queries.TrackOrderQueryHandler {
	return queries.NewTrackOrderQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetActiveOrdersQueryHandler() queries.GetActiveOrdersQueryHandler {
	return queries.NewGetActiveOrdersQueryHandler(c.orderClient)
}

func (c *CompositionRoot) CreateGetCourierBoardQueryHandler() queries.GetCourierBoardQueryHandler {
	return queries.NewGetCourierBoardQueryHandler(c.boardCache)
}

func (c *CompositionRoot) CreateGetUsersQueryHandler() queries.GetUsersQueryHandler {
	return queries.NewGetUsersQueryHandler(c.userClient)
}

func (c *CompositionRoot) CreateHTTPServer() *httpin.Server {
	return httpin.NewServer(
		c.CreateLoginCommandHandler(),
		c.CreateLogoutCommandHandler(),
		c.CreateAddCartItemCommandHandler(),
		c.CreateRemoveCartItemCommandHandler(),
		c.CreateCheckoutCommandHandler(),
		c.CreateChangeOrderStatusCommandHandler(),
		c.CreateClaimOrderCommandHandler(),
		c.CreateDeliverOrderCommandHandler(),
		c.CreateGetMenuQueryHandler(),
		c.CreateGetCartQueryHandler(),
		c.CreateTrackOrderQueryHandler(),
		c.CreateGetActiveOrdersQueryHandler(),
		c.CreateGetCourierBoardQueryHandler(),
		c.CreateGetUsersQueryHandler(),
	)
}

func (c *CompositionRoot) CreateGuardMiddleware() *httpin.GuardMiddleware {
	return httpin.NewGuardMiddleware(c.uowFactory.Create().SessionRepository())
}

func (c *CompositionRoot) CreateJobManager() *jobs.JobManager {
	return jobs.NewJobManager(
		c.CreateRefreshCourierBoardCommandHandler(),
		c.config.ServiceToken,
		c.logger,
	)
}

type FuncSessionUoWFactory func() commands.SessionUoW

func (f FuncSessionUoWFactory) Create() commands.SessionUoW {
	return f()
}

type FuncCartUoWFactory func() commands.CartUoW

func (f FuncCartUoWFactory) Create() commands.CartUoW {
	return f()
}
