package returns

import (
	"fleet/infras/otel"
	"fleet/internal/domains/returns/model"
	"fleet/internal/domains/returns/model/dto"
	"fleet/internal/domains/returns/service"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/validator"
	"fleet/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Return
	otel    otel.Otel
}

func New(service service.Return, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/returns", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RecordReturn)
		routerGroup.Get("/", handler.GetReturns)
		routerGroup.Get("/{id}", handler.GetReturnByID)
		routerGroup.Patch("/{id}", handler.UpdateReturn)
		routerGroup.Delete("/{id}", handler.DeleteReturn)
	})
}

// RecordReturn records the return of a rented vehicle.
// @Summary Record a return
// @Description Record the return of a reservation's vehicle and accrue the reservation price plus upcharge onto the branch ledger. Only one return may exist per reservation.
// @Tags Return
// @Accept json
// @Produce json
// @Param request body dto.CreateReturnRequest true "Record Return Request"
// @Success 201 {object} response.Message "Return recorded successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/returns [post]
// @Security BearerAuth
func (handler *Handler) RecordReturn(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RecordReturn")
	defer scope.End()

	req := dto.CreateReturnRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Record(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to record return")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Return recorded successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Return recorded successfully")
}

// GetReturns retrieves all return records based on query parameters.
// @Summary Get all returns
// @Description Retrieve all return records with optional filtering and pagination.
// @Tags Return
// @Accept json
// @Produce json
// @Param reservation_id query string false "Filter by reservation"
// @Param employee_id query string false "Filter by employee"
// @Success 200 {object} dto.GetReturnsResponse "List of returns"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/returns [get]
func (handler *Handler) GetReturns(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReturns")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if reservationID := r.URL.Query().Get(model.FieldReservationID); reservationID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldReservationID,
			Operator: gDto.FilterOperatorEq,
			Value:    reservationID,
			Table:    model.TableName,
		})
	}

	if employeeID := r.URL.Query().Get(model.FieldEmployeeID); employeeID != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldEmployeeID,
			Operator: gDto.FilterOperatorEq,
			Value:    employeeID,
			Table:    model.TableName,
		})
	}

	returns, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get returns")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Returns retrieved successfully")

	response.WithJSON(w, http.StatusOK, returns)
}

// GetReturnByID retrieves a return record by its ID.
// @Summary Get a return by ID
// @Description Retrieve a return record by its unique identifier.
// @Tags Return
// @Accept json
// @Produce json
// @Param id path string true "Return ID"
// @Success 200 {object} dto.ReturnResponse "Return details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/returns/{id} [get]
func (handler *Handler) GetReturnByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetReturnByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	record, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get return by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Return retrieved successfully")

	response.WithJSON(w, http.StatusOK, record)
}

// UpdateReturn updates an existing return record by its ID.
// @Summary Update a return by ID
// @Description Update the details of an existing return record.
// @Tags Return
// @Accept json
// @Produce json
// @Param id path string true "Return ID"
// @Param request body dto.UpdateReturnRequest true "Update Return Request"
// @Success 200 {object} response.Message "Return updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/returns/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateReturn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateReturn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateReturnRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update return")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Return updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Return updated successfully")
}

// DeleteReturn deletes a return record by its ID.
// @Summary Delete a return by ID @SuperAdmin
// @Description Delete a return record using its unique identifier.
// @Tags Return
// @Accept json
// @Produce json
// @Param id path string true "Return ID"
// @Success 200 {object} response.Message "Return deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/returns/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteReturn(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteReturn")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete return")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Return deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Return deleted successfully")
}
