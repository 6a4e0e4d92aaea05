package main

import (
	"context"
	"net/http"

	"github.com/DarshanRT1/Hotel-Booking/internal/domain"
	"github.com/DarshanRT1/Hotel-Booking/internal/service"
	"go.mongodb.org/mongo-driver/bson/primitive"
)

type OrderItemRequest struct {
	ItemID   string `json:"itemId" validate:"required"`
	Quantity int    `json:"quantity" validate:"gte=1"`
}

type OrderContactRequest struct {
	Name    string `json:"name"`
	Email   string `json:"email" validate:"omitempty,email"`
	Phone   string `json:"phone"`
	Address string `json:"address"`
}

type CreateOrderRequest struct {
	UserID       string              `json:"userId"`
	Items        []OrderItemRequest  `json:"items" validate:"dive"`
	TotalAmount  float64             `json:"totalAmount" validate:"gte=0"`
	CustomerInfo OrderContactRequest `json:"customerInfo"`
}

type UpdateStatusRequest struct {
	Status string `json:"status" validate:"required"`
}

// createOrderHandler godoc
//
//	@Summary		Place an order
//	@Description	Guests may order without an account. A bearer token fills user_id when it is omitted.
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			request	body		CreateOrderRequest	true	"Order"
//	@Success		201		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders [post]
func (app *application) createOrderHandler(w http.ResponseWriter, r *http.Request) {
	var req CreateOrderRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	userID := req.UserID
	if userID == "" {
		userID = actorID(r)
	}

	items := make([]service.OrderItemInput, 0, len(req.Items))
	for _, item := range req.Items {
		items = append(items, service.OrderItemInput{ItemID: item.ItemID, Quantity: item.Quantity})
	}

	order, err := app.orderService.Create(r.Context(), service.CreateOrderInput{
		UserID:      userID,
		Items:       items,
		TotalAmount: req.TotalAmount,
		CustomerInfo: domain.OrderContact{
			Name:    req.CustomerInfo.Name,
			Email:   req.CustomerInfo.Email,
			Phone:   req.CustomerInfo.Phone,
			Address: req.CustomerInfo.Address,
		},
	})
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusCreated, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersHandler godoc
//
//	@Summary		List all orders
//	@Description	Items and owners are expanded
//	@Tags			orders
//	@Produce		json
//	@Success		200	{array}		domain.Order
//	@Failure		500	{object}	map[string]string
//	@Router			/orders [get]
func (app *application) listOrdersHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListAll(r.Context())
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersByUserHandler godoc
//
//	@Summary		List orders of an account
//	@Tags			orders
//	@Produce		json
//	@Param			userId	path		string	true	"Account ID"
//	@Success		200		{array}		domain.Order
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/user/{userId} [get]
func (app *application) listOrdersByUserHandler(w http.ResponseWriter, r *http.Request) {
	ownerID, err := primitive.ObjectIDFromHex(pathParam(r, "userId"))
	if err != nil {
		// no account can own records under a malformed id
		if err := app.jsonRespone(w, http.StatusOK, []domain.Order{}); err != nil {
			app.internalServerError(w, r, err)
		}
		return
	}

	orders, err := app.orderService.ListByOwner(r.Context(), ownerID)
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// listOrdersByEmailHandler godoc
//
//	@Summary		List orders by contact email
//	@Tags			orders
//	@Produce		json
//	@Param			email	path		string	true	"Contact email"
//	@Success		200		{array}		domain.Order
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/email/{email} [get]
func (app *application) listOrdersByEmailHandler(w http.ResponseWriter, r *http.Request) {
	orders, err := app.orderService.ListByContactEmail(r.Context(), pathParam(r, "email"))
	if err != nil {
		app.internalServerError(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, orders); err != nil {
		app.internalServerError(w, r, err)
	}
}

// getOrderHandler godoc
//
//	@Summary		Get order
//	@Tags			orders
//	@Produce		json
//	@Param			id	path		string	true	"Order ID"
//	@Success		200	{object}	domain.Order
//	@Failure		404	{object}	map[string]string
//	@Failure		500	{object}	map[string]string
//	@Router			/orders/{id} [get]
func (app *application) getOrderHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	order, err := app.orderService.GetOne(r.Context(), id)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// updateOrderStatusHandler godoc
//
//	@Summary		Set order status
//	@Tags			orders
//	@Accept			json
//	@Produce		json
//	@Param			id		path		string				true	"Order ID"
//	@Param			request	body		UpdateStatusRequest	true	"new, preparing or completed"
//	@Success		200		{object}	domain.Order
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		409		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/{id}/status [patch]
func (app *application) updateOrderStatusHandler(w http.ResponseWriter, r *http.Request) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	var req UpdateStatusRequest
	if err := readJson(w, r, &req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	if err := Validate.Struct(req); err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	order, err := app.orderService.UpdateStatus(r.Context(), id, req.Status, actorID(r))
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, order); err != nil {
		app.internalServerError(w, r, err)
	}
}

// orderHistoryHandler godoc
//
//	@Summary		Order status history
//	@Description	Recorded status changes, newest first
//	@Tags			orders
//	@Produce		json
//	@Param			id		path		string	true	"Order ID"
//	@Param			limit	query		int		false	"Maximum entries (default 50)"
//	@Success		200		{array}		domain.StatusAudit
//	@Failure		400		{object}	map[string]string
//	@Failure		404		{object}	map[string]string
//	@Failure		500		{object}	map[string]string
//	@Router			/orders/{id}/history [get]
func (app *application) orderHistoryHandler(w http.ResponseWriter, r *http.Request) {
	app.historyHandler(w, r, domain.EntityOrder, func(ctx context.Context, id primitive.ObjectID) error {
		_, err := app.orderService.GetOne(ctx, id)
		return err
	})
}

// historyHandler serves the audit trail of an entity; lookup reports
// whether the entity exists.
func (app *application) historyHandler(
	w http.ResponseWriter,
	r *http.Request,
	entityType domain.EntityType,
	lookup func(ctx context.Context, id primitive.ObjectID) error,
) {
	id, err := objectIDParam(r, "id")
	if err != nil {
		app.notFoundError(w, r, err)
		return
	}

	if err := lookup(r.Context(), id); err != nil {
		app.errorResponse(w, r, err)
		return
	}

	limit, err := limitQuery(r)
	if err != nil {
		app.badRequestResponse(w, r, err)
		return
	}

	history, err := app.auditService.History(r.Context(), entityType, id, limit)
	if err != nil {
		app.errorResponse(w, r, err)
		return
	}

	if err := app.jsonRespone(w, http.StatusOK, history); err != nil {
		app.internalServerError(w, r, err)
	}
}
