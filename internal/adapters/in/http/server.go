// Package http exposes the application use cases over a REST API.
// Handlers translate JSON requests into commands and queries, and map domain
// errors onto HTTP status codes.
package http

import (
	"errors"
	"net/http"
	"time"

	"marketplace/internal/core/application/usecases/commands"
	"marketplace/internal/core/application/usecases/queries"
	"marketplace/internal/core/domain/model/booking"
	"marketplace/internal/core/domain/model/contract"
	"marketplace/internal/core/domain/model/kernel"
	"marketplace/internal/core/domain/model/rental"
	"marketplace/internal/pkg/errs"

	"github.com/labstack/echo/v4"
)

// Server coordinates between HTTP handlers and application use cases.
type Server struct {
	// Command handlers
	createParcelHandler        commands.CreateParcelCommandHandler
	deleteParcelHandler        commands.DeleteParcelCommandHandler
	createBookingHandler       commands.CreateBookingCommandHandler
	transitionBookingHandler   commands.TransitionBookingCommandHandler
	rescheduleBookingHandler   commands.RescheduleBookingCommandHandler
	rateBookingHandler         commands.RateBookingCommandHandler
	createRentalHandler        commands.CreateRentalCommandHandler
	transitionRentalHandler    commands.TransitionRentalCommandHandler
	deleteRentalHandler        commands.DeleteRentalCommandHandler
	createContractHandler      commands.CreateContractCommandHandler
	updateContractDraftHandler commands.UpdateContractDraftCommandHandler
	deleteContractDraftHandler commands.DeleteContractDraftCommandHandler
	transitionContractHandler  commands.TransitionContractCommandHandler

	// Query handlers
	getAvailableBoxesHandler   queries.GetAvailableBoxesQueryHandler
	getProviderBookingsHandler queries.GetProviderBookingsQueryHandler
}

// NewServer creates a new HTTP server with the required command and query handlers.
func NewServer(
	createParcelHandler commands.CreateParcelCommandHandler,
	deleteParcelHandler commands.DeleteParcelCommandHandler,
	createBookingHandler commands.CreateBookingCommandHandler,
	transitionBookingHandler commands.TransitionBookingCommandHandler,
	rescheduleBookingHandler commands.RescheduleBookingCommandHandler,
	rateBookingHandler commands.RateBookingCommandHandler,
	createRentalHandler commands.CreateRentalCommandHandler,
	transitionRentalHandler commands.TransitionRentalCommandHandler,
	deleteRentalHandler commands.DeleteRentalCommandHandler,
	createContractHandler commands.CreateContractCommandHandler,
	updateContractDraftHandler commands.UpdateContractDraftCommandHandler,
	deleteContractDraftHandler commands.DeleteContractDraftCommandHandler,
	transitionContractHandler commands.TransitionContractCommandHandler,
	getAvailableBoxesHandler queries.GetAvailableBoxesQueryHandler,
	getProviderBookingsHandler queries.GetProviderBookingsQueryHandler,
) *Server {
	return &Server{
		createParcelHandler:        createParcelHandler,
		deleteParcelHandler:        deleteParcelHandler,
		createBookingHandler:       createBookingHandler,
		transitionBookingHandler:   transitionBookingHandler,
		rescheduleBookingHandler:   rescheduleBookingHandler,
		rateBookingHandler:         rateBookingHandler,
		createRentalHandler:        createRentalHandler,
		transitionRentalHandler:    transitionRentalHandler,
		deleteRentalHandler:        deleteRentalHandler,
		createContractHandler:      createContractHandler,
		updateContractDraftHandler: updateContractDraftHandler,
		deleteContractDraftHandler: deleteContractDraftHandler,
		transitionContractHandler:  transitionContractHandler,
		getAvailableBoxesHandler:   getAvailableBoxesHandler,
		getProviderBookingsHandler: getProviderBookingsHandler,
	}
}

// RegisterRoutes attaches all API routes to the echo instance.
func (s *Server) RegisterRoutes(e *echo.Echo) {
	api := e.Group("/api/v1")

	api.POST("/parcels", s.CreateParcel)
	api.DELETE("/parcels/:id", s.DeleteParcel)

	api.POST("/bookings", s.CreateBooking)
	api.POST("/bookings/:id/transition", s.TransitionBooking)
	api.POST("/bookings/:id/reschedule", s.RescheduleBooking)
	api.POST("/bookings/:id/rating", s.RateBooking)

	api.POST("/rentals", s.CreateRental)
	api.POST("/rentals/:id/transition", s.TransitionRental)
	api.DELETE("/rentals/:id", s.DeleteRental)

	api.POST("/contracts", s.CreateContract)
	api.PUT("/contracts/:id", s.UpdateContractDraft)
	api.DELETE("/contracts/:id", s.DeleteContractDraft)
	api.POST("/contracts/:id/transition", s.TransitionContract)

	api.GET("/boxes/available", s.GetAvailableBoxes)
	api.GET("/providers/:id/bookings", s.GetProviderBookings)
}

// ErrorResponse is the JSON body returned for failed requests.
type ErrorResponse struct {
	Code    int    `json:"code"`
	Message string `json:"message"`
}

// respondError maps domain errors onto HTTP status codes.
func respondError(ctx echo.Context, err error) error {
	status := http.StatusInternalServerError

	var notFound *errs.ObjectNotFoundError
	var invalid *errs.ValueIsInvalidError
	var required *errs.ValueIsRequiredError
	var outOfRange *errs.ValueIsOutOfRangeError
	var conflict *errs.ResourceConflictError
	var forbidden *errs.TransitionForbiddenError

	switch {
	case errors.As(err, &notFound):
		status = http.StatusNotFound
	case errors.As(err, &conflict):
		status = http.StatusConflict
	case errors.As(err, &forbidden):
		status = http.StatusForbidden
	case errors.As(err, &invalid), errors.As(err, &required), errors.As(err, &outOfRange):
		status = http.StatusBadRequest
	}

	return ctx.JSON(status, ErrorResponse{
		Code:    status,
		Message: err.Error(),
	})
}

// badRequest returns a 400 response with the given message.
func badRequest(ctx echo.Context, message string) error {
	return ctx.JSON(http.StatusBadRequest, ErrorResponse{
		Code:    http.StatusBadRequest,
		Message: message,
	})
}

// pathID parses the :id path parameter as a UUID.
func pathID(ctx echo.Context) (kernel.UUID, error) {
	return kernel.UUIDFromString(ctx.Param("id"))
}

// CreateParcelRequest is the body of POST /api/v1/parcels.
type CreateParcelRequest struct {
	WeightKg        float64 `json:"weightKg"`
	Dimensions      string  `json:"dimensions"`
	PickupAddress   string  `json:"pickupAddress"`
	DeliveryAddress string  `json:"deliveryAddress"`
}

// CreateParcelResponse carries the quote computed for the new parcel.
type CreateParcelResponse struct {
	ID         string  `json:"id"`
	Size       string  `json:"size"`
	DistanceKm float64 `json:"distanceKm"`
	Price      float64 `json:"price"`
	Degraded   bool    `json:"degraded"`
}

// CreateParcel handles POST /api/v1/parcels - registers a parcel and quotes it.
func (s *Server) CreateParcel(ctx echo.Context) error {
	var req CreateParcelRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	parcelID := kernel.NewUUID()
	cmd, err := commands.NewCreateParcelCommand(parcelID, req.WeightKg,
		req.Dimensions, req.PickupAddress, req.DeliveryAddress)
	if err != nil {
		return respondError(ctx, err)
	}

	result, err := s.createParcelHandler.Handle(ctx.Request().Context(), cmd)
	if err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreateParcelResponse{
		ID:         parcelID.String(),
		Size:       string(result.Size),
		DistanceKm: result.DistanceKm,
		Price:      result.Price,
		Degraded:   result.Degraded,
	})
}

// DeleteParcel handles DELETE /api/v1/parcels/:id - removes a parcel and its quote.
func (s *Server) DeleteParcel(ctx echo.Context) error {
	parcelID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteParcelCommand(parcelID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteParcelHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateBookingRequest is the body of POST /api/v1/bookings.
type CreateBookingRequest struct {
	ServiceID       string    `json:"serviceId"`
	CustomerID      string    `json:"customerId"`
	ScheduledAt     time.Time `json:"scheduledAt"`
	DurationMinutes int       `json:"durationMinutes"`
}

// CreatedResponse carries the identifier of a newly created resource.
type CreatedResponse struct {
	ID string `json:"id"`
}

// CreateBooking handles POST /api/v1/bookings - schedules a service booking.
func (s *Server) CreateBooking(ctx echo.Context) error {
	var req CreateBookingRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	serviceID, err := kernel.UUIDFromString(req.ServiceID)
	if err != nil {
		return respondError(ctx, err)
	}
	customerID, err := kernel.UUIDFromString(req.CustomerID)
	if err != nil {
		return respondError(ctx, err)
	}

	bookingID := kernel.NewUUID()
	cmd, err := commands.NewCreateBookingCommand(bookingID, serviceID, customerID,
		req.ScheduledAt, req.DurationMinutes)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: bookingID.String()})
}

// TransitionRequest is the body of lifecycle transition endpoints.
type TransitionRequest struct {
	Target string `json:"target"`
	Actor  string `json:"actor"`
}

// TransitionBooking handles POST /api/v1/bookings/:id/transition.
func (s *Server) TransitionBooking(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := booking.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionBookingCommand(bookingID, target, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RescheduleBookingRequest is the body of POST /api/v1/bookings/:id/reschedule.
type RescheduleBookingRequest struct {
	NewStart time.Time `json:"newStart"`
	Actor    string    `json:"actor"`
}

// RescheduleBooking handles POST /api/v1/bookings/:id/reschedule.
func (s *Server) RescheduleBooking(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req RescheduleBookingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRescheduleBookingCommand(bookingID, req.NewStart, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rescheduleBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// RateBookingRequest is the body of POST /api/v1/bookings/:id/rating.
type RateBookingRequest struct {
	Rating int    `json:"rating"`
	Review string `json:"review"`
	Actor  string `json:"actor"`
}

// RateBooking handles POST /api/v1/bookings/:id/rating.
func (s *Server) RateBooking(ctx echo.Context) error {
	bookingID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req RateBookingRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewRateBookingCommand(bookingID, req.Rating, req.Review, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.rateBookingHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateRentalRequest is the body of POST /api/v1/rentals.
type CreateRentalRequest struct {
	UserID       string     `json:"userId"`
	StorageBoxID string     `json:"storageBoxId"`
	StartDate    time.Time  `json:"startDate"`
	EndDate      *time.Time `json:"endDate,omitempty"`
}

// CreateRental handles POST /api/v1/rentals - requests a storage box rental.
func (s *Server) CreateRental(ctx echo.Context) error {
	var req CreateRentalRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	userID, err := kernel.UUIDFromString(req.UserID)
	if err != nil {
		return respondError(ctx, err)
	}
	storageBoxID, err := kernel.UUIDFromString(req.StorageBoxID)
	if err != nil {
		return respondError(ctx, err)
	}

	rentalID := kernel.NewUUID()
	cmd, err := commands.NewCreateRentalCommand(rentalID, userID, storageBoxID,
		req.StartDate, req.EndDate)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createRentalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: rentalID.String()})
}

// TransitionRental handles POST /api/v1/rentals/:id/transition.
func (s *Server) TransitionRental(ctx echo.Context) error {
	rentalID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := rental.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionRentalCommand(rentalID, target, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionRentalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteRental handles DELETE /api/v1/rentals/:id - removes a non-active rental.
func (s *Server) DeleteRental(ctx echo.Context) error {
	rentalID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteRentalCommand(rentalID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteRentalHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// CreateContractRequest is the body of POST /api/v1/contracts.
type CreateContractRequest struct {
	MerchantID string     `json:"merchantId"`
	Title      string     `json:"title"`
	Value      float64    `json:"value"`
	Currency   string     `json:"currency"`
	ExpiresAt  *time.Time `json:"expiresAt,omitempty"`
}

// CreateContract handles POST /api/v1/contracts - opens a contract draft.
func (s *Server) CreateContract(ctx echo.Context) error {
	var req CreateContractRequest
	if err := ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	merchantID, err := kernel.UUIDFromString(req.MerchantID)
	if err != nil {
		return respondError(ctx, err)
	}

	contractID := kernel.NewUUID()
	cmd, err := commands.NewCreateContractCommand(contractID, merchantID,
		req.Title, req.Value, req.Currency, req.ExpiresAt)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.createContractHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.JSON(http.StatusCreated, CreatedResponse{ID: contractID.String()})
}

// UpdateContractDraftRequest is the body of PUT /api/v1/contracts/:id.
type UpdateContractDraftRequest struct {
	Title    string  `json:"title"`
	Value    float64 `json:"value"`
	Currency string  `json:"currency"`
	Actor    string  `json:"actor"`
}

// UpdateContractDraft handles PUT /api/v1/contracts/:id - edits a draft contract.
func (s *Server) UpdateContractDraft(ctx echo.Context) error {
	contractID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req UpdateContractDraftRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	cmd, err := commands.NewUpdateContractDraftCommand(contractID,
		req.Title, req.Value, req.Currency, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.updateContractDraftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// DeleteContractDraft handles DELETE /api/v1/contracts/:id - removes a draft contract.
func (s *Server) DeleteContractDraft(ctx echo.Context) error {
	contractID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewDeleteContractDraftCommand(contractID)
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.deleteContractDraftHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// TransitionContract handles POST /api/v1/contracts/:id/transition.
func (s *Server) TransitionContract(ctx echo.Context) error {
	contractID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	var req TransitionRequest
	if err = ctx.Bind(&req); err != nil {
		return badRequest(ctx, "Invalid request body")
	}

	target, err := contract.StatusFromString(req.Target)
	if err != nil {
		return respondError(ctx, err)
	}

	cmd, err := commands.NewTransitionContractCommand(contractID, target, kernel.Role(req.Actor))
	if err != nil {
		return respondError(ctx, err)
	}

	if err = s.transitionContractHandler.Handle(ctx.Request().Context(), cmd); err != nil {
		return respondError(ctx, err)
	}

	return ctx.NoContent(http.StatusNoContent)
}

// AvailableBox is one entry of GET /api/v1/boxes/available.
type AvailableBox struct {
	ID          string  `json:"id"`
	Location    string  `json:"location"`
	Size        string  `json:"size"`
	PricePerDay float64 `json:"pricePerDay"`
}

// GetAvailableBoxes handles GET /api/v1/boxes/available.
func (s *Server) GetAvailableBoxes(ctx echo.Context) error {
	query := queries.NewGetAvailableBoxesQuery()

	boxes, err := s.getAvailableBoxesHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]AvailableBox, len(boxes))
	for i, box := range boxes {
		response[i] = AvailableBox{
			ID:          box.ID.String(),
			Location:    box.Location,
			Size:        box.Size,
			PricePerDay: box.PricePerDay,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}

// ProviderBooking is one entry of GET /api/v1/providers/:id/bookings.
type ProviderBooking struct {
	ID              string    `json:"id"`
	ServiceID       string    `json:"serviceId"`
	CustomerID      string    `json:"customerId"`
	StartsAt        time.Time `json:"startsAt"`
	DurationMinutes int       `json:"durationMinutes"`
	Price           float64   `json:"price"`
	Status          string    `json:"status"`
	Rating          *int      `json:"rating,omitempty"`
}

// GetProviderBookings handles GET /api/v1/providers/:id/bookings.
func (s *Server) GetProviderBookings(ctx echo.Context) error {
	providerID, err := pathID(ctx)
	if err != nil {
		return respondError(ctx, err)
	}

	query, err := queries.NewGetProviderBookingsQuery(providerID)
	if err != nil {
		return respondError(ctx, err)
	}

	bookings, err := s.getProviderBookingsHandler.Handle(ctx.Request().Context(), query)
	if err != nil {
		return respondError(ctx, err)
	}

	response := make([]ProviderBooking, len(bookings))
	for i, b := range bookings {
		response[i] = ProviderBooking{
			ID:              b.ID.String(),
			ServiceID:       b.ServiceID.String(),
			CustomerID:      b.CustomerID.String(),
			StartsAt:        b.StartsAt,
			DurationMinutes: b.DurationMinutes,
			Price:           b.Price,
			Status:          b.Status,
			Rating:          b.Rating,
		}
	}

	return ctx.JSON(http.StatusOK, response)
}
