package service

import (
	"context"
	"encoding/base64"
	"fmt"

	"fleet/config"
	"fleet/infras/otel"
	"fleet/infras/postgres"
	"fleet/infras/s3"
	branchModel "fleet/internal/domains/branch/model"
	branchRepo "fleet/internal/domains/branch/repository"
	"fleet/internal/domains/company/model"
	"fleet/internal/domains/company/model/dto"
	"fleet/internal/domains/company/repository"
	customerModel "fleet/internal/domains/customer/model"
	customerRepo "fleet/internal/domains/customer/repository"
	employeeModel "fleet/internal/domains/employee/model"
	employeeRepo "fleet/internal/domains/employee/repository"
	reservationModel "fleet/internal/domains/reservation/model"
	reservationRepo "fleet/internal/domains/reservation/repository"
	vehicleModel "fleet/internal/domains/vehicle/model"
	vehicleRepo "fleet/internal/domains/vehicle/repository"
	"fleet/shared"
	sharedBase64 "fleet/shared/base64"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"
	"fleet/shared/timezone"

	"github.com/google/uuid"
	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const logoDirectory = "company/logo"

type Company interface {
	Register(ctx context.Context, req dto.CreateCompanyRequest) error
	Get(ctx context.Context) (dto.CompanyResponse, error)
	Update(ctx context.Context, req dto.UpdateCompanyRequest) error
	Delete(ctx context.Context) error
	UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (string, error)
}

type serviceImpl struct {
	repo            repository.Company
	branchRepo      branchRepo.Branch
	vehicleRepo     vehicleRepo.Vehicle
	employeeRepo    employeeRepo.Employee
	customerRepo    customerRepo.Customer
	reservationRepo reservationRepo.Reservation
	txn             postgres.Transactor
	s3              s3.S3
	cfg             *config.Config
	otel            otel.Otel
}

func New(
	repo repository.Company,
	branchRepo branchRepo.Branch,
	vehicleRepo vehicleRepo.Vehicle,
	employeeRepo employeeRepo.Employee,
	customerRepo customerRepo.Customer,
	reservationRepo reservationRepo.Reservation,
	txn postgres.Transactor,
	s3Client s3.S3,
	cfg *config.Config,
	otel otel.Otel,
) Company {
	return &serviceImpl{
		repo:            repo,
		branchRepo:      branchRepo,
		vehicleRepo:     vehicleRepo,
		employeeRepo:    employeeRepo,
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		txn:             txn,
		s3:              s3Client,
		cfg:             cfg,
		otel:            otel,
	}
}

// Register creates the single company record. The table holds at most one
// row, so a non-zero count means the company is already registered.
func (s *serviceImpl) Register(ctx context.Context, req dto.CreateCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Register")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	count, err := s.repo.Count(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to count companies")

		return fmt.Errorf("failed to count companies: %w", err)
	}

	if count > 0 {
		return failure.Conflict("company already registered") // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to register company")

		return fmt.Errorf("failed to register company: %w", err)
	}

	return nil
}

func (s *serviceImpl) Get(ctx context.Context) (res dto.CompanyResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return res, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return res, failure.NotFound("company not found") // nolint:wrapcheck
	}

	res.FromModel(company)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateCompanyRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateCompanyRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	company, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(company.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update company")

		return fmt.Errorf("failed to update company: %w", err)
	}

	return nil
}

// Delete removes the company and everything hanging off it: every branch's
// reservations, vehicles, employees and customers, then the branches, then
// the company row. The cascade is deliberate and manual, one transaction.
func (s *serviceImpl) Delete(ctx context.Context) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	company, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	branches, err := s.branchRepo.GetAll(ctx, gDto.QueryParams{}, gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				Field:    branchModel.FieldCompanyID,
				Value:    company.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    branchModel.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company branches")

		return fmt.Errorf("failed to get company branches: %w", err)
	}

	branchIDs := make([]string, len(branches))
	for i, branch := range branches {
		branchIDs[i] = branch.ID
	}

	err = s.txn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if len(branchIDs) > 0 {
			reservationFilter := gDto.FilterGroup{
				Operator: gDto.FilterGroupOperatorOr,
				Filters: []any{
					gDto.Filter{
						ArgName:  "start_branch_ids",
						Field:    reservationModel.FieldStartBranchID,
						Value:    branchIDs,
						Operator: gDto.FilterOperatorIn,
						Table:    reservationModel.TableName,
					},
					gDto.Filter{
						ArgName:  "end_branch_ids",
						Field:    reservationModel.FieldEndBranchID,
						Value:    branchIDs,
						Operator: gDto.FilterOperatorIn,
						Table:    reservationModel.TableName,
					},
				},
			}

			if err := s.reservationRepo.DeleteTx(ctx, tx, reservationFilter); err != nil {
				return fmt.Errorf("failed to delete company reservations: %w", err)
			}

			if err := s.vehicleRepo.DeleteTx(ctx, tx, filterByBranchIDs(branchIDs, vehicleModel.FieldBranchID, vehicleModel.TableName)); err != nil {
				return fmt.Errorf("failed to delete company vehicles: %w", err)
			}

			if err := s.employeeRepo.DeleteTx(ctx, tx, filterByBranchIDs(branchIDs, employeeModel.FieldBranchID, employeeModel.TableName)); err != nil {
				return fmt.Errorf("failed to delete company employees: %w", err)
			}

			if err := s.customerRepo.DeleteTx(ctx, tx, filterByBranchIDs(branchIDs, customerModel.FieldBranchID, customerModel.TableName)); err != nil {
				return fmt.Errorf("failed to delete company customers: %w", err)
			}

			if err := s.branchRepo.DeleteTx(ctx, tx, gDto.FilterGroup{
				Filters: []any{
					gDto.Filter{
						Field:    branchModel.FieldCompanyID,
						Value:    company.ID,
						Operator: gDto.FilterOperatorEq,
						Table:    branchModel.TableName,
					},
				},
			}); err != nil {
				return fmt.Errorf("failed to delete company branches: %w", err)
			}
		}

		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(company.ID, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete company: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete company")

		return fmt.Errorf("failed to delete company: %w", err)
	}

	return nil
}

func (s *serviceImpl) UploadLogo(ctx context.Context, req dto.UploadLogoRequest) (url string, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".UploadLogo")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	company, err := s.repo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return constant.Empty, fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return constant.Empty, failure.NotFound("company not found") // nolint:wrapcheck
	}

	contentType := sharedBase64.GetContentType(req.Logo)

	fileData, err := base64.StdEncoding.DecodeString(sharedBase64.StripPrefix(req.Logo))
	if err != nil {
		log.Error().Err(err).Msg("failed to decode logo payload")

		return constant.Empty, failure.BadRequestFromString("logo must be a valid base64 payload") // nolint:wrapcheck
	}

	url, err = s.s3.UploadFileBytes(ctx, constant.Empty, logoDirectory, uuid.NewString(), contentType, fileData)
	if err != nil {
		log.Error().Err(err).Msg("failed to upload logo")

		return constant.Empty, fmt.Errorf("failed to upload logo: %w", err)
	}

	updatedFields := map[string]any{
		model.FieldLogoURL:       url,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(company.ID, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to store logo url")

		return constant.Empty, fmt.Errorf("failed to store logo url: %w", err)
	}

	return url, nil
}

func filterByBranchIDs(branchIDs []string, field, table string) gDto.FilterGroup {
	return gDto.FilterGroup{
		Filters: []any{
			gDto.Filter{
				ArgName:  "branch_ids",
				Field:    field,
				Value:    branchIDs,
				Operator: gDto.FilterOperatorIn,
				Table:    table,
			},
		},
	}
}
