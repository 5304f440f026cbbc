package branch

import (
	"fleet/infras/otel"
	"fleet/internal/domains/branch/model"
	"fleet/internal/domains/branch/model/dto"
	"fleet/internal/domains/branch/service"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/validator"
	"fleet/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Branch
	otel    otel.Otel
}

func New(service service.Branch, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/branches", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.OpenBranch)
		routerGroup.Get("/", handler.GetBranches)
		routerGroup.Get("/{id}", handler.GetBranchByID)
		routerGroup.Patch("/{id}", handler.UpdateBranch)
		routerGroup.Delete("/{id}", handler.CloseBranch)
		routerGroup.Put("/{id}/manager", handler.SetManager)
		routerGroup.Delete("/{id}/manager", handler.ClearManager)
		routerGroup.Put("/{id}/vehicles/{vehicle_id}", handler.AssignVehicle)
		routerGroup.Delete("/{id}/vehicles/{vehicle_id}", handler.RemoveVehicle)
		routerGroup.Put("/{id}/employees/{employee_id}", handler.AssignEmployee)
		routerGroup.Delete("/{id}/employees/{employee_id}", handler.RemoveEmployee)
		routerGroup.Put("/{id}/customers/{customer_id}", handler.AssignCustomer)
		routerGroup.Delete("/{id}/customers/{customer_id}", handler.RemoveCustomer)
	})
}

// OpenBranch handles the opening of a new branch.
// @Summary Open a new branch
// @Description Open a new branch at an address where none exists yet.
// @Tags Branch
// @Accept json
// @Produce json
// @Param request body dto.OpenBranchRequest true "Open Branch Request"
// @Success 201 {object} response.Message "Branch opened successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches [post]
// @Security BearerAuth
func (handler *Handler) OpenBranch(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".OpenBranch")
	defer scope.End()

	req := dto.OpenBranchRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Open(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to open branch")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch opened successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Branch opened successfully")
}

// GetBranches retrieves all branches based on query parameters.
// @Summary Get all branches
// @Description Retrieve all branches with optional filtering and pagination.
// @Tags Branch
// @Accept json
// @Produce json
// @Param name query string false "Filter by name"
// @Param address query string false "Filter by address"
// @Success 200 {object} dto.GetBranchesResponse "List of branches"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches [get]
func (handler *Handler) GetBranches(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranches")
	defer scope.End()

	queryParams := gDto.QueryParams{}
	queryParams.FromRequest(r, true)

	name := r.URL.Query().Get(model.FieldName)
	address := r.URL.Query().Get(model.FieldAddress)

	filterGroup := gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters:  []any{},
	}

	if name != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldName,
			Operator: gDto.FilterOperatorLike,
			Value:    name,
			Table:    model.TableName,
		})
	}

	if address != "" {
		filterGroup.Filters = append(filterGroup.Filters, gDto.Filter{
			Field:    model.FieldAddress,
			Operator: gDto.FilterOperatorLike,
			Value:    address,
			Table:    model.TableName,
		})
	}

	branches, err := handler.service.GetAll(ctx, queryParams, filterGroup)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branches")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branches retrieved successfully")

	response.WithJSON(w, http.StatusOK, branches)
}

// GetBranchByID retrieves a branch by its ID.
// @Summary Get a branch by ID
// @Description Retrieve a branch by its unique identifier.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} dto.BranchResponse "Branch details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id} [get]
func (handler *Handler) GetBranchByID(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetBranchByID")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	branch, err := handler.service.Get(ctx, id)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get branch by ID")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Branch retrieved successfully")

	response.WithJSON(w, http.StatusOK, branch)
}

// UpdateBranch updates an existing branch by its ID.
// @Summary Update a branch by ID
// @Description Update the details of an existing branch.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param request body dto.UpdateBranchRequest true "Update Branch Request"
// @Success 200 {object} response.Message "Branch updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id} [patch]
// @Security BearerAuth
func (handler *Handler) UpdateBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.UpdateBranchRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch updated successfully")
}

// CloseBranch closes a branch by its ID.
// @Summary Close a branch by ID @SuperAdmin
// @Description Close a branch and release its vehicles, employees and customers.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} response.Message "Branch closed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id} [delete]
// @Security BearerAuth
func (handler *Handler) CloseBranch(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".CloseBranch")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.Close(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to close branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch closed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch closed successfully")
}

// SetManager sets the manager of a branch.
// @Summary Set the branch manager
// @Description Store the given employee id as the branch manager.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param request body dto.SetManagerRequest true "Set Manager Request"
// @Success 200 {object} response.Message "Branch manager set successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/manager [put]
// @Security BearerAuth
func (handler *Handler) SetManager(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".SetManager")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	req := dto.SetManagerRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.SetManager(ctx, id, req.EmployeeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to set branch manager")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch manager set successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch manager set successfully")
}

// ClearManager clears the manager of a branch.
// @Summary Clear the branch manager
// @Description Remove the manager reference from the branch.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Success 200 {object} response.Message "Branch manager cleared successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/manager [delete]
// @Security BearerAuth
func (handler *Handler) ClearManager(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".ClearManager")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)

	if err := handler.service.ClearManager(ctx, id); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to clear branch manager")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Branch manager cleared successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Branch manager cleared successfully")
}

// AssignVehicle assigns a vehicle to a branch.
// @Summary Assign a vehicle to a branch
// @Description Attach an unassigned vehicle to the branch fleet.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param vehicle_id path string true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle assigned successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/vehicles/{vehicle_id} [put]
// @Security BearerAuth
func (handler *Handler) AssignVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	vehicleID := chi.URLParam(r, constant.RequestParamVehicleID)

	if err := handler.service.AssignVehicle(ctx, id, vehicleID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign vehicle to branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle assigned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle assigned successfully")
}

// RemoveVehicle removes a vehicle from a branch.
// @Summary Remove a vehicle from a branch
// @Description Detach a vehicle from the branch fleet.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param vehicle_id path string true "Vehicle ID"
// @Success 200 {object} response.Message "Vehicle removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/vehicles/{vehicle_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveVehicle(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveVehicle")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	vehicleID := chi.URLParam(r, constant.RequestParamVehicleID)

	if err := handler.service.RemoveVehicle(ctx, id, vehicleID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove vehicle from branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Vehicle removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Vehicle removed successfully")
}

// AssignEmployee assigns an employee to a branch.
// @Summary Assign an employee to a branch
// @Description Attach an unassigned employee to the branch staff.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee assigned successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/employees/{employee_id} [put]
// @Security BearerAuth
func (handler *Handler) AssignEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	employeeID := chi.URLParam(r, constant.RequestParamEmployeeID)

	if err := handler.service.AssignEmployee(ctx, id, employeeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign employee to branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee assigned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee assigned successfully")
}

// RemoveEmployee removes an employee from a branch.
// @Summary Remove an employee from a branch
// @Description Detach an employee from the branch staff.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param employee_id path string true "Employee ID"
// @Success 200 {object} response.Message "Employee removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/employees/{employee_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveEmployee(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveEmployee")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	employeeID := chi.URLParam(r, constant.RequestParamEmployeeID)

	if err := handler.service.RemoveEmployee(ctx, id, employeeID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove employee from branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Employee removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Employee removed successfully")
}

// AssignCustomer assigns a customer to a branch.
// @Summary Assign a customer to a branch
// @Description Attach an unassigned customer to the branch.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} response.Message "Customer assigned successfully"
// @Failure 404 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/customers/{customer_id} [put]
// @Security BearerAuth
func (handler *Handler) AssignCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".AssignCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	customerID := chi.URLParam(r, constant.RequestParamCustomerID)

	if err := handler.service.AssignCustomer(ctx, id, customerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to assign customer to branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer assigned successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Customer assigned successfully")
}

// RemoveCustomer removes a customer from a branch.
// @Summary Remove a customer from a branch
// @Description Detach a customer from the branch.
// @Tags Branch
// @Accept json
// @Produce json
// @Param id path string true "Branch ID"
// @Param customer_id path string true "Customer ID"
// @Success 200 {object} response.Message "Customer removed successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/branches/{id}/customers/{customer_id} [delete]
// @Security BearerAuth
func (handler *Handler) RemoveCustomer(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RemoveCustomer")
	defer scope.End()

	id := chi.URLParam(r, constant.RequestParamID)
	customerID := chi.URLParam(r, constant.RequestParamCustomerID)

	if err := handler.service.RemoveCustomer(ctx, id, customerID); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to remove customer from branch")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Customer removed successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Customer removed successfully")
}
