// Package http implements the inbound HTTP adapter: the echo server behind
// the generated OpenAPI server interface, plus the session guard middleware.
package http

import (
	"errors"
	"net/http"

	"github.com/google/uuid"
	"github.com/labstack/echo/v4"

	"lytefood/internal/core/application/usecases/commands"
	"lytefood/internal/core/application/usecases/queries"
	"lytefood/internal/core/domain/model/cart"
	"lytefood/internal/core/domain/model/kernel"
	"lytefood/internal/core/domain/model/order"
	"lytefood/internal/generated/servers"
	"lytefood/internal/pkg/errs"
)

// Server implements the ServerInterface for handling HTTP requests.
// It coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	loginHandler             commands.LoginCommandHandler
	logoutHandler            commands.LogoutCommandHandler
	addCartItemHandler       commands.AddCartItemCommandHandler
	removeCartItemHandler    commands.RemoveCartItemCommandHandler
	checkoutHandler          commands.CheckoutCommandHandler
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler
	claimOrderHandler        commands.ClaimOrderCommandHandler
	deliverOrderHandler      commands.DeliverOrderCommandHandler

	// Query handlers
	getMenuHandler         queries.GetMenuQueryHandler
	getCartHandler         queries.GetCartQueryHandler
	trackOrderHandler      queries.TrackOrderQueryHandler
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler
	getCourierBoardHandler queries.GetCourierBoardQueryHandler
	getUsersHandler        queries.GetUsersQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	loginHandler commands.LoginCommandHandler,
	logoutHandler commands.LogoutCommandHandler,
	addCartItemHandler commands.AddCartItemCommandHandler,
	removeCartItemHandler commands.RemoveCartItemCommandHandler,
	checkoutHandler commands.CheckoutCommandHandler,
	changeOrderStatusHandler commands.ChangeOrderStatusCommandHandler,
	claimOrderHandler commands.ClaimOrderCommandHandler,
	deliverOrderHandler commands.DeliverOrderCommandHandler,
	getMenuHandler queries.GetMenuQueryHandler,
	getCartHandler queries.GetCartQueryHandler,
	trackOrderHandler queries.TrackOrderQueryHandler,
	getActiveOrdersHandler queries.GetActiveOrdersQueryHandler,
	getCourierBoardHandler queries.GetCourierBoardQueryHandler,
	getUsersHandler queries.GetUsersQueryHandler,
) *Server {
	return &Server{
		loginHandler:             loginHandler,
		logoutHandler:            logoutHandler,
		addCartItemHandler:       addCartItemHandler,
		removeCartItemHandler:    removeCartItemHandler,
		checkoutHandler:          checkoutHandler,
		changeOrderStatusHandler: changeOrderStatusHandler,
		claimOrderHandler:        claimOrderHandler,
		deliverOrderHandler:      deliverOrderHandler,
		getMenuHandler:           getMenuHandler,
		getCartHandler:           getCartHandler,
		trackOrderHandler:        trackOrderHandler,
		getActiveOrdersHandler:   getActiveOrdersHandler,
		getCourierBoardHandler:   getCourierBoardHandler,
		getUsersHandler:          getUsersHandler,
	}
}

// Login handles POST /api/v1/auth/login - signs in and stores a session.
func (s *Server) Login(ctx echo.Context) error {
	var req servers.LoginRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	cmd, err := commands.NewLoginCommand(req.Email, req.Password)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid credentials payload: "+err.Error())
	}

	sessionID, user, err := s.loginHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusUnauthorized, "Invalid email or password")
		}
		return jsonError(ctx, http.StatusBadGateway, "Sign-in is temporarily unavailable")
	}

	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    sessionID.String(),
		Path:     "/",
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.JSON(http.StatusOK, servers.SessionUser{
		Id:              user.ID().Value(),
		Email:           user.Email(),
		FirstName:       user.Profile().FirstName,
		LastName:        user.Profile().LastName,
		PhoneNumber:     user.Profile().PhoneNumber,
		DeliveryAddress: user.Profile().DeliveryAddress,
		IsAdmin:         user.Roles().Admin,
		IsSuperAdmin:    user.Roles().SuperAdmin,
		IsLivreur:       user.Roles().Courier,
	})
}

// Logout handles POST /api/v1/auth/logout - clears the stored session.
func (s *Server) Logout(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	cmd, err := commands.NewLogoutCommand(auth.SessionID, auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid logout request: "+err.Error())
	}

	if handleErr := s.logoutHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to sign out")
	}

	ctx.SetCookie(&http.Cookie{
		Name:     SessionCookieName,
		Value:    "",
		Path:     "/",
		MaxAge:   -1,
		HttpOnly: true,
		SameSite: http.SameSiteLaxMode,
	})

	return ctx.NoContent(http.StatusNoContent)
}

// GetMenu handles GET /api/v1/menu - lists the menu.
func (s *Server) GetMenu(ctx echo.Context) error {
	items, err := s.getMenuHandler.Handle(ctx.Request().Context(), queries.NewGetMenuQuery())
	if err != nil {
		return jsonError(ctx, http.StatusBadGateway, "Failed to retrieve menu")
	}

	response := make([]servers.MenuItem, len(items))
	for i, item := range items {
		id, parseErr := uuid.Parse(item.ID)
		if parseErr != nil {
			return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve menu")
		}

		response[i] = servers.MenuItem{
			Id:          id,
			Name:        item.Name,
			Description: item.Description,
			Price:       item.Price,
			ImageUrl:    item.ImageURL,
			Available:   item.Available,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCart handles GET /api/v1/cart - renders the signed-in customer's cart.
func (s *Server) GetCart(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	query, err := queries.NewGetCartQuery(auth.User.ID())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid cart request: "+err.Error())
	}

	response, err := s.getCartHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve cart")
	}

	lines := make([]servers.CartLine, len(response.Lines))
	for i, line := range response.Lines {
		menuItemID, parseErr := uuid.Parse(line.MenuItemID)
		if parseErr != nil {
			return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve cart")
		}

		lines[i] = servers.CartLine{
			MenuItemId: menuItemID,
			Name:       line.Name,
			Quantity:   line.Quantity,
			UnitPrice:  line.UnitPrice,
			Subtotal:   line.Subtotal,
		}
	}

	return ctx.JSON(http.StatusOK, servers.Cart{Lines: lines, Total: response.Total})
}

// AddCartItem handles POST /api/v1/cart/items - adds a menu item to the cart.
func (s *Server) AddCartItem(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	var req servers.AddCartItemRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	menuItemID, err := kernel.UUIDFromString(req.MenuItemId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid menu item id")
	}

	cmd, err := commands.NewAddCartItemCommand(auth.User.ID(), menuItemID, req.Quantity)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid cart item: "+err.Error())
	}

	if handleErr := s.addCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Menu item not found")
		case errors.Is(handleErr, errs.ErrValueIsInvalid), errors.Is(handleErr, errs.ErrValueIsOutOfRange):
			return jsonError(ctx, http.StatusConflict, "Menu item cannot be added: "+handleErr.Error())
		default:
			return jsonError(ctx, http.StatusInternalServerError, "Failed to add cart item")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RemoveCartItem handles DELETE /api/v1/cart/items/{menuItemId} - removes a
// whole cart line.
func (s *Server) RemoveCartItem(ctx echo.Context, menuItemId uuid.UUID) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	menuItemID, err := kernel.UUIDFromString(menuItemId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid menu item id")
	}

	cmd, err := commands.NewRemoveCartItemCommand(auth.User.ID(), menuItemID)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid cart request: "+err.Error())
	}

	if handleErr := s.removeCartItemHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		if errors.Is(handleErr, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Cart line not found")
		}
		return jsonError(ctx, http.StatusInternalServerError, "Failed to remove cart item")
	}

	return ctx.NoContent(http.StatusNoContent)
}

// Checkout handles POST /api/v1/checkout - turns the cart into an order and
// starts the payment flow. An empty delivery address falls back to the
// customer's stored one.
func (s *Server) Checkout(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	var req servers.CheckoutRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	deliveryAddress := req.DeliveryAddress
	if deliveryAddress == "" {
		deliveryAddress = auth.User.Profile().DeliveryAddress
	}

	cmd, err := commands.NewCheckoutCommand(auth.User.ID(), auth.User.Token(), deliveryAddress)
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid checkout request: "+err.Error())
	}

	result, err := s.checkoutHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		if errors.Is(err, cart.ErrCartIsEmpty) {
			return jsonError(ctx, http.StatusConflict, "Cart is empty")
		}
		return jsonError(ctx, http.StatusBadGateway, "Checkout failed")
	}

	return ctx.JSON(http.StatusCreated, servers.CheckoutResponse{
		OrderId:    result.OrderID.Value(),
		PaymentUrl: result.PaymentURL,
	})
}

// TrackOrder handles GET /api/v1/orders/{orderId} - the customer-facing
// order tracking view.
func (s *Server) TrackOrder(ctx echo.Context, orderId uuid.UUID) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	query, err := queries.NewTrackOrderQuery(orderID, auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid tracking request: "+err.Error())
	}

	response, err := s.trackOrderHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		if errors.Is(err, errs.ErrObjectNotFound) {
			return jsonError(ctx, http.StatusNotFound, "Order not found")
		}
		return jsonError(ctx, http.StatusBadGateway, "Failed to retrieve order")
	}

	id, err := uuid.Parse(response.ID)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve order")
	}

	return ctx.JSON(http.StatusOK, servers.TrackedOrder{
		Id:              id,
		Status:          response.Status,
		StatusLabel:     response.StatusLabel,
		StatusCategory:  response.StatusCategory,
		Total:           response.Total,
		DeliveryAddress: response.DeliveryAddress,
		CreatedAt:       response.CreatedAt,
	})
}

// GetActiveOrders handles GET /api/v1/orders/active - the admin dashboard's
// paid and in-preparation orders.
func (s *Server) GetActiveOrders(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	query, err := queries.NewGetActiveOrdersQuery(auth.User.Roles(), auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid dashboard request: "+err.Error())
	}

	orders, err := s.getActiveOrdersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusBadGateway, "Failed to retrieve orders")
	}

	response := make([]servers.ActiveOrder, len(orders))
	for i, row := range orders {
		id, parseErr := uuid.Parse(row.ID)
		if parseErr != nil {
			return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve orders")
		}

		response[i] = servers.ActiveOrder{
			Id:              id,
			Status:          row.Status,
			StatusLabel:     row.StatusLabel,
			StatusCategory:  row.StatusCategory,
			AllowedNext:     row.AllowedNext,
			Total:           row.Total,
			DeliveryAddress: row.DeliveryAddress,
			CreatedAt:       row.CreatedAt,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ChangeOrderStatus handles PUT /api/v1/orders/{orderId}/status - moves an
// order through its lifecycle on behalf of an operator.
func (s *Server) ChangeOrderStatus(ctx echo.Context, orderId uuid.UUID) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	var req servers.ChangeOrderStatusRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewChangeOrderStatusCommand(orderID, order.Status(req.Status), auth.User.Roles(), auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid status change: "+err.Error())
	}

	if handleErr := s.changeOrderStatusHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, order.ErrTransitionNotAllowed):
			return jsonError(ctx, http.StatusConflict, "Status transition is not allowed")
		default:
			return jsonError(ctx, http.StatusBadGateway, "Failed to change order status")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// GetUsers handles GET /api/v1/admin/users - the super-admin user
// management directory, proxied from the external user service.
func (s *Server) GetUsers(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	query, err := queries.NewGetUsersQuery(auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid directory request: "+err.Error())
	}

	accounts, err := s.getUsersHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusBadGateway, "Failed to retrieve users")
	}

	response := make([]servers.Account, len(accounts))
	for i, row := range accounts {
		id, parseErr := uuid.Parse(row.ID)
		if parseErr != nil {
			return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve users")
		}

		response[i] = servers.Account{
			Id:              id,
			Email:           row.Email,
			FirstName:       row.FirstName,
			LastName:        row.LastName,
			PhoneNumber:     row.PhoneNumber,
			DeliveryAddress: row.DeliveryAddress,
			IsActive:        row.Active,
			IsAdmin:         row.IsAdmin,
			IsSuperAdmin:    row.IsSuperAdmin,
			IsLivreur:       row.IsCourier,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetCourierBoard handles GET /api/v1/courier/board - the courier dashboard
// served from the 30-second refresh cache.
func (s *Server) GetCourierBoard(ctx echo.Context) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	query := queries.NewGetCourierBoardQuery(auth.User.Roles())

	board, err := s.getCourierBoardHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve courier board")
	}

	available, err := boardOrdersResponse(board.Available)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve courier board")
	}
	enRoute, err := boardOrdersResponse(board.EnRoute)
	if err != nil {
		return jsonError(ctx, http.StatusInternalServerError, "Failed to retrieve courier board")
	}

	return ctx.JSON(http.StatusOK, servers.CourierBoard{
		Available:   available,
		EnRoute:     enRoute,
		RefreshedAt: board.RefreshedAt,
	})
}

// ClaimOrder handles POST /api/v1/courier/orders/{orderId}/claim - a courier
// takes a ready order on the road.
func (s *Server) ClaimOrder(ctx echo.Context, orderId uuid.UUID) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewClaimOrderCommand(orderID, auth.User.ID(), auth.User.Roles(), auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid claim request: "+err.Error())
	}

	if handleErr := s.claimOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, errs.ErrValueIsInvalid):
			return jsonError(ctx, http.StatusConflict, "Order is no longer available")
		default:
			return jsonError(ctx, http.StatusBadGateway, "Failed to claim order")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeliverOrder handles POST /api/v1/courier/orders/{orderId}/deliver - a
// courier reports the delivery outcome.
func (s *Server) DeliverOrder(ctx echo.Context, orderId uuid.UUID) error {
	auth, ok := currentAuth(ctx)
	if !ok {
		return jsonError(ctx, http.StatusUnauthorized, "Not signed in")
	}

	var req servers.DeliverOrderRequest
	if err := ctx.Bind(&req); err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid request body")
	}

	orderID, err := kernel.UUIDFromString(orderId.String())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid order id")
	}

	cmd, err := commands.NewDeliverOrderCommand(orderID, req.Delivered, auth.User.Roles(), auth.User.Token())
	if err != nil {
		return jsonError(ctx, http.StatusBadRequest, "Invalid delivery report: "+err.Error())
	}

	if handleErr := s.deliverOrderHandler.Handle(ctx.Request().Context(), cmd); handleErr != nil {
		switch {
		case errors.Is(handleErr, errs.ErrObjectNotFound):
			return jsonError(ctx, http.StatusNotFound, "Order not found")
		case errors.Is(handleErr, order.ErrTransitionNotAllowed):
			return jsonError(ctx, http.StatusConflict, "Delivery cannot be reported from this status")
		default:
			return jsonError(ctx, http.StatusBadGateway, "Failed to report delivery")
		}
	}

	return ctx.NoContent(http.StatusNoContent)
}

func boardOrdersResponse(rows []queries.GetCourierBoardQueryOrderResponse) ([]servers.BoardOrder, error) {
	response := make([]servers.BoardOrder, len(rows))
	for i, row := range rows {
		id, err := uuid.Parse(row.ID)
		if err != nil {
			return nil, err
		}

		response[i] = servers.BoardOrder{
			Id:              id,
			Status:          row.Status,
			StatusLabel:     row.StatusLabel,
			StatusCategory:  row.StatusCategory,
			AllowedNext:     row.AllowedNext,
			DeliveryAddress: row.DeliveryAddress,
		}
	}

	return response, nil
}

func jsonError(ctx echo.Context, code int, message string) error {
	return ctx.JSON(code, servers.Error{Code: code, Message: message})
}
