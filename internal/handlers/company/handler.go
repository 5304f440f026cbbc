package company

import (
	"fleet/infras/otel"
	"fleet/internal/domains/company/model/dto"
	"fleet/internal/domains/company/service"
	"fleet/shared/constant"
	"fleet/shared/validator"
	"fleet/transport/http/response"
	"net/http"

	"github.com/go-chi/chi/v5"
	"github.com/rs/zerolog/log"
)

type Handler struct {
	service service.Company
	otel    otel.Otel
}

func New(service service.Company, otel otel.Otel) Handler {
	return Handler{
		service: service,
		otel:    otel,
	}
}

func (handler *Handler) Router(router chi.Router) {
	router.Route("/company", func(routerGroup chi.Router) {
		routerGroup.Post("/", handler.RegisterCompany)
		routerGroup.Get("/", handler.GetCompany)
		routerGroup.Patch("/", handler.UpdateCompany)
		routerGroup.Delete("/", handler.DeleteCompany)
		routerGroup.Post("/logo", handler.UploadLogo)
	})
}

// RegisterCompany handles the registration of the company.
// @Summary Register the company
// @Description Register the single rental company. Fails if one already exists.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.CreateCompanyRequest true "Register Company Request"
// @Success 201 {object} response.Message "Company registered successfully"
// @Failure 400 {object} response.Error
// @Failure 409 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/company [post]
// @Security BearerAuth
func (handler *Handler) RegisterCompany(writer http.ResponseWriter, request *http.Request) {
	ctx, scope := handler.otel.NewScope(request.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".RegisterCompany")
	defer scope.End()

	req := dto.CreateCompanyRequest{}

	if err := validator.Validate(request.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(writer, err)

		return
	}

	if err := handler.service.Register(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to register company")

		response.WithError(writer, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company registered successfully by user " + user)

	response.WithMessage(writer, http.StatusCreated, "Company registered successfully")
}

// GetCompany retrieves the company profile.
// @Summary Get the company
// @Description Retrieve the registered company's profile.
// @Tags Company
// @Accept json
// @Produce json
// @Success 200 {object} dto.CompanyResponse "Company details"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/company [get]
func (handler *Handler) GetCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".GetCompany")
	defer scope.End()

	company, err := handler.service.Get(ctx)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to get company")

		response.WithError(w, err)

		return
	}

	scope.AddEvent("Company retrieved successfully")

	response.WithJSON(w, http.StatusOK, company)
}

// UpdateCompany updates the company profile.
// @Summary Update the company
// @Description Update the registered company's profile.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.UpdateCompanyRequest true "Update Company Request"
// @Success 200 {object} response.Message "Company updated successfully"
// @Failure 400 {object} response.Error
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/company [patch]
// @Security BearerAuth
func (handler *Handler) UpdateCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UpdateCompany")
	defer scope.End()

	req := dto.UpdateCompanyRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	if err := handler.service.Update(ctx, req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to update company")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company updated successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Company updated successfully")
}

// DeleteCompany deletes the company and everything beneath it.
// @Summary Delete the company @SuperAdmin
// @Description Delete the company together with all branches, vehicles, employees, customers and reservations.
// @Tags Company
// @Accept json
// @Produce json
// @Success 200 {object} response.Message "Company deleted successfully"
// @Failure 404 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/company [delete]
// @Security BearerAuth
func (handler *Handler) DeleteCompany(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".DeleteCompany")
	defer scope.End()

	if err := handler.service.Delete(ctx); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to delete company")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company deleted successfully by user " + user)

	response.WithMessage(w, http.StatusOK, "Company deleted successfully")
}

// UploadLogo uploads the company logo.
// @Summary Upload the company logo
// @Description Upload a base64 encoded logo image and store it on object storage.
// @Tags Company
// @Accept json
// @Produce json
// @Param request body dto.UploadLogoRequest true "Upload Logo Request"
// @Success 200 {object} response.Data[string] "Logo URL"
// @Failure 400 {object} response.Error
// @Failure 500 {object} response.Error
// @Router /v1/company/logo [post]
// @Security BearerAuth
func (handler *Handler) UploadLogo(w http.ResponseWriter, r *http.Request) {
	ctx, scope := handler.otel.NewScope(r.Context(), constant.OtelHandlerScopeName, constant.OtelHandlerScopeName+".UploadLogo")
	defer scope.End()

	req := dto.UploadLogoRequest{}
	if err := validator.Validate(r.Body, &req); err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to validate request body")

		response.WithError(w, err)

		return
	}

	url, err := handler.service.UploadLogo(ctx, req)
	if err != nil {
		scope.TraceError(err)
		log.Error().Err(err).Msg("failed to upload company logo")

		response.WithError(w, err)

		return
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	scope.AddEvent("Company logo uploaded successfully by user " + user)

	response.WithJSON(w, http.StatusOK, url)
}
