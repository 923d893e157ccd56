// Package http exposes the shipment use cases over a JSON REST API.
// Authentication is delegated to an upstream gateway; this layer only
// translates between the wire and the application's commands and queries.
package http

import (
	"errors"
	"fmt"
	"net/http"
	"strconv"

	"shiptrack/internal/core/application/usecases/commands"
	"shiptrack/internal/core/application/usecases/queries"
	"shiptrack/internal/core/domain/model/shipment"
	"shiptrack/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createShipmentHandler commands.CreateShipmentCommandHandler
	updateShipmentHandler commands.UpdateShipmentCommandHandler
	deleteShipmentHandler commands.DeleteShipmentCommandHandler

	// Query handlers
	getShipmentHandler   queries.GetShipmentByIDQueryHandler
	trackShipmentHandler queries.GetShipmentByTrackingNumberQueryHandler
	listShipmentsHandler queries.ListShipmentsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createShipmentHandler commands.CreateShipmentCommandHandler,
	updateShipmentHandler commands.UpdateShipmentCommandHandler,
	deleteShipmentHandler commands.DeleteShipmentCommandHandler,
	getShipmentHandler queries.GetShipmentByIDQueryHandler,
	trackShipmentHandler queries.GetShipmentByTrackingNumberQueryHandler,
	listShipmentsHandler queries.ListShipmentsQueryHandler,
) *Server {
	return &Server{
		createShipmentHandler: createShipmentHandler,
		updateShipmentHandler: updateShipmentHandler,
		deleteShipmentHandler: deleteShipmentHandler,
		getShipmentHandler:    getShipmentHandler,
		trackShipmentHandler:  trackShipmentHandler,
		listShipmentsHandler:  listShipmentsHandler,
	}
}

// RegisterRoutes attaches all endpoints to the echo instance.
// The tracking and health endpoints are public; everything else expects the
// gateway identity headers.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api")
	api.POST("/shipments", s.CreateShipment)
	api.GET("/shipments", s.ListShipments)
	api.GET("/shipments/:id", s.GetShipment)
	api.PATCH("/shipments/:id", s.UpdateShipment)
	api.DELETE("/shipments/:id", s.DeleteShipment)
	api.GET("/track/:tracking_number", s.TrackShipment)

	e.GET("/health", s.Health)
}

// CreateShipment handles POST /api/shipments - registers a new shipment.
func (s *Server) CreateShipment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "authentication required")
	}

	var req createShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	items := make([]shipment.Item, 0, len(req.Items))
	for _, itemReq := range req.Items {
		item, err := shipment.NewItem(itemReq.ProductID, itemReq.Quantity)
		if err != nil {
			return writeError(ctx, err)
		}
		items = append(items, item)
	}

	// Customers creating for themselves may omit the owner id.
	customerID := principal.UserID()
	if req.CustomerID != nil {
		customerID = *req.CustomerID
	}

	cmd, err := commands.NewCreateShipmentCommand(
		principal,
		req.Origin, req.Destination, req.Recipient,
		req.Weight, req.Notes,
		customerID, req.DriverID, items,
	)
	if err != nil {
		return writeError(ctx, err)
	}

	created, err := s.createShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, shipmentResponseFromAggregate(created))
}

// ListShipments handles GET /api/shipments - lists the caller's visible shipments.
func (s *Server) ListShipments(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "authentication required")
	}

	query, err := queries.NewListShipmentsQuery(principal)
	if err != nil {
		return writeError(ctx, err)
	}

	shipments, err := s.listShipmentsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	response := make([]shipmentResponse, 0, len(shipments))
	for _, item := range shipments {
		response = append(response, shipmentResponseFromReadModel(item))
	}

	return ctx.JSON(http.StatusOK, response)
}

// GetShipment handles GET /api/shipments/:id - retrieves one shipment.
func (s *Server) GetShipment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "authentication required")
	}

	shipmentID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	query, err := queries.NewGetShipmentByIDQuery(principal, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.getShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// UpdateShipment handles PATCH /api/shipments/:id - updates status, payment
// status or driver assignment.
func (s *Server) UpdateShipment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "authentication required")
	}

	shipmentID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	var req updateShipmentRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "invalid request body")
	}

	var status *shipment.Status
	if req.Status != nil {
		parsed, parseErr := shipment.ParseStatus(*req.Status)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		status = &parsed
	}

	var paymentStatus *shipment.PaymentStatus
	if req.PaymentStatus != nil {
		parsed, parseErr := shipment.ParsePaymentStatus(*req.PaymentStatus)
		if parseErr != nil {
			return writeError(ctx, parseErr)
		}
		paymentStatus = &parsed
	}

	cmd, err := commands.NewUpdateShipmentCommand(principal, shipmentID, status, paymentStatus, req.DriverID)
	if err != nil {
		return writeError(ctx, err)
	}

	updated, err := s.updateShipmentHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromAggregate(updated))
}

// DeleteShipment handles DELETE /api/shipments/:id - removes a shipment and
// its items.
func (s *Server) DeleteShipment(ctx echo.Context) error {
	principal, ok := principalFrom(ctx)
	if !ok {
		return unauthorized(ctx, "authentication required")
	}

	shipmentID, err := parseID(ctx.Param("id"))
	if err != nil {
		return badRequest(ctx, "invalid shipment id")
	}

	cmd, err := commands.NewDeleteShipmentCommand(principal, shipmentID)
	if err != nil {
		return writeError(ctx, err)
	}

	if err := s.deleteShipmentHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return writeError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TrackShipment handles GET /api/track/:tracking_number - public lookup by
// tracking number, no authentication required.
func (s *Server) TrackShipment(ctx echo.Context) error {
	query, err := queries.NewGetShipmentByTrackingNumberQuery(ctx.Param("tracking_number"))
	if err != nil {
		return writeError(ctx, err)
	}

	result, err := s.trackShipmentHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return writeError(ctx, err)
	}

	return ctx.JSON(http.StatusOK, shipmentResponseFromReadModel(result))
}

// Health handles GET /health - liveness probe.
func (s *Server) Health(ctx echo.Context) error {
	return ctx.JSON(http.StatusOK, map[string]string{"status": "ok"})
}

// parseID parses a positive integer id from its string form.
func parseID(raw string) (int64, error) {
	id, err := strconv.ParseInt(raw, 10, 64)
	if err != nil || id <= 0 {
		return 0, fmt.Errorf("%q is not a valid id", raw)
	}
	return id, nil
}

func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, errorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// writeError maps application errors onto HTTP statuses. Validation problems
// become 400, authorization denials 403, missing objects 404, broken
// references 409 and business rule rejections 422.
func writeError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errs.ErrValueIsRequired),
		errors.Is(err, errs.ErrValueIsInvalid),
		errors.Is(err, errs.ErrValueIsOutOfRange):
		status = http.StatusBadRequest
	case errors.Is(err, errs.ErrAccessForbidden):
		status = http.StatusForbidden
	case errors.Is(err, errs.ErrObjectNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errs.ErrIntegrityViolation):
		status = http.StatusConflict
	case errors.Is(err, errs.ErrDomainRule):
		status = http.StatusUnprocessableEntity
	}

	message := err.Error()
	if status == http.StatusInternalServerError {
		message = "internal server error"
	}

	return ctx.JSON(status, errorResponse{Code: status, Message: message})
}
