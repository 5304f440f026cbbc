package revenue

import (
	"fleet/infras/otel"
	"fleet/internal/domains/revenue/model/dto"
	"fleet/internal/domains/revenue/service"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/validator"
	"fleet/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Revenue
	otel    otel.Otel
}

func New(service service.Revenue, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/revenues", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.AddRevenue)
		routerGroup.Get("/", handler.GetRevenues)
		routerGroup.Get("/{id}", handler.GetRevenueByID)
		routerGroup.Patch("/{id}", handler.UpdateRevenue)
		routerGroup.Post("/{id}/accrue", handler.AccrueRevenue)
		routerGroup.Put("/{id}/branch/{branch_id}", handler.AssignToBranch)
		routerGroup.Delete("/{id}", handler.DeleteRevenue)
	})
}

// AddRevenue creates a new revenue ledger.
// @Summary Add a revenue ledger
// @Description Create a new revenue ledger, optionally seeded with an opening total.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param request body dto.CreateRevenueRequest true "Add Revenue Request"
// @Success 201 {object} response.Message "Revenue ledger added successfully"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues [post]
// @Security BearerAuth
func (handler *Handler) AddRevenue(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AddRevenue")
	defer scope.End()

	req := dto.CreateRevenueRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Add(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to add revenue ledger")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Revenue ledger added successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Revenue ledger added successfully")
}

// GetRevenues retrieves all revenue ledgers based on query parameters.
// @Summary Get all revenue ledgers
// @Description Retrieve all revenue ledgers with pagination.
// @Tags Revenue
// @Accept json
// @Produce json
// @Success 200 {object} dto.GetRevenuesResponse "List of revenue ledgers"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues [get]
func (handler *Handler) GetRevenues(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenues")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	revenues, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue ledgers")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue ledgers retrieved successfully")

	response.WithJSON(w, http.StatusOK, revenues)
}

// GetRevenueByID retrieves a revenue ledger by its ID.
// @Summary Get a revenue ledger by ID
// @Description Retrieve a revenue ledger by its unique identifier.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Success 200 {object} dto.RevenueResponse "Revenue ledger details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues/{id} [get]
func (handler *Handler) GetRevenueByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetRevenueByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	revenue, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get revenue ledger by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Revenue ledger retrieved successfully")

	response.WithJSON(w, http.StatusOK, revenue)
}

// UpdateRevenue updates an existing revenue ledger by its ID.
// @Summary Update a revenue ledger by ID
// @Description Overwrite the details of an existing revenue ledger.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Param request body dto.UpdateRevenueRequest true "Update Revenue Request"
// @Success 200 {object} response.Message "Revenue ledger updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateRevenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateRevenueRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update revenue ledger")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Revenue ledger updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Revenue ledger updated successfully")
}

// AccrueRevenue adds an amount to a ledger's running total.
// @Summary Accrue revenue
// @Description Add an amount on top of the ledger's running total. The total only ever grows through this operation.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Param request body dto.AccrueRevenueRequest true "Accrue Revenue Request"
// @Success 200 {object} response.Message "Revenue accrued successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues/{id}/accrue [post]
// @Security BearerAuth
func (handler *Handler) AccrueRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AccrueRevenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.AccrueRevenueRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Accrue(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to accrue revenue")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Revenue accrued successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Revenue accrued successfully")
}

// AssignToBranch links a revenue ledger to a branch.
// @Summary Assign a revenue ledger to a branch
// @Description Link the ledger to a branch that does not have one yet.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Param branch_id path string true "Branch ID"
// @Success 200 {object} response.Message "Revenue ledger assigned successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues/{id}/branch/{branch_id} [put]
// @Security BearerAuth
func (handler *Handler) AssignToBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignToBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	branchID := chi.URLParam(r, constant.RequestParamBranchID)

	if err := handler.service.AssignToBranch(ctx, id, branchID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign revenue ledger to branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Revenue ledger assigned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Revenue ledger assigned successfully")
}

// DeleteRevenue deletes a revenue ledger by its ID.
// @Summary Delete a revenue ledger by ID @SuperAdmin
// @Description Delete a revenue ledger and detach it from any branch that references it.
// @Tags Revenue
// @Accept json
// @Produce json
// @Param id path string true "Revenue ID"
// @Success 200 {object} response.Message "Revenue ledger deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/revenues/{id} [delete]
// @Security BearerAuth
func (handler *Handler) DeleteRevenue(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteRevenue")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Delete(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete revenue ledger")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Revenue ledger deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Revenue ledger deleted successfully")
}
