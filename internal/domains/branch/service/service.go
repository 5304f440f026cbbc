package service

import (
	"context"
	"fmt"

	"fleet/config"
	"fleet/infras/otel"
	"fleet/infras/postgres"
	"fleet/internal/domains/branch/model"
	"fleet/internal/domains/branch/model/dto"
	"fleet/internal/domains/branch/repository"
	companyRepo "fleet/internal/domains/company/repository"
	customerModel "fleet/internal/domains/customer/model"
	customerRepo "fleet/internal/domains/customer/repository"
	employeeModel "fleet/internal/domains/employee/model"
	employeeRepo "fleet/internal/domains/employee/repository"
	reservationModel "fleet/internal/domains/reservation/model"
	reservationRepo "fleet/internal/domains/reservation/repository"
	vehicleModel "fleet/internal/domains/vehicle/model"
	vehicleRepo "fleet/internal/domains/vehicle/repository"
	"fleet/shared"
	"fleet/shared/cache"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"
	"fleet/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

const (
	cacheGetBranch    = "branch:get"
	cacheGetAllBranch = "branch:gets"
	cacheCountBranch  = "branch:count"

	cacheGetAllVehicle  = "vehicle:gets"
	cacheGetAllEmployee = "employee:gets"
	cacheGetAllCustomer = "customer:gets"
)

type Branch interface {
	Open(ctx context.Context, req dto.OpenBranchRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetBranchesResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.BranchResponse, error)
	Update(ctx context.Context, req dto.UpdateBranchRequest, id string) error
	Close(ctx context.Context, id string) error
	SetManager(ctx context.Context, id, employeeID string) error
	ClearManager(ctx context.Context, id string) error
	AssignVehicle(ctx context.Context, id, vehicleID string) error
	RemoveVehicle(ctx context.Context, id, vehicleID string) error
	AssignEmployee(ctx context.Context, id, employeeID string) error
	RemoveEmployee(ctx context.Context, id, employeeID string) error
	AssignCustomer(ctx context.Context, id, customerID string) error
	RemoveCustomer(ctx context.Context, id, customerID string) error
}

type serviceImpl struct {
	repo            repository.Branch
	companyRepo     companyRepo.Company
	vehicleRepo     vehicleRepo.Vehicle
	employeeRepo    employeeRepo.Employee
	customerRepo    customerRepo.Customer
	reservationRepo reservationRepo.Reservation
	txn             postgres.Transactor
	cfg             *config.Config
	cache           cache.RedisCache
	otel            otel.Otel
}

func New(
	repo repository.Branch,
	companyRepo companyRepo.Company,
	vehicleRepo vehicleRepo.Vehicle,
	employeeRepo employeeRepo.Employee,
	customerRepo customerRepo.Customer,
	reservationRepo reservationRepo.Reservation,
	txn postgres.Transactor,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Branch {
	return &serviceImpl{
		repo:            repo,
		companyRepo:     companyRepo,
		vehicleRepo:     vehicleRepo,
		employeeRepo:    employeeRepo,
		customerRepo:    customerRepo,
		reservationRepo: reservationRepo,
		txn:             txn,
		cfg:             cfg,
		cache:           cache,
		otel:            otel,
	}
}

// Open creates a branch under the company. The address must not collide with
// any existing branch of the company, compared as an exact string.
func (s *serviceImpl) Open(ctx context.Context, req dto.OpenBranchRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Open")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	company, err := s.companyRepo.Get(ctx, gDto.FilterGroup{})
	if err != nil {
		log.Error().Err(err).Msg("failed to get company")

		return fmt.Errorf("failed to get company: %w", err)
	}

	if company.ID == constant.Empty {
		return failure.NotFound("company not found") // nolint:wrapcheck
	}

	duplicate, err := s.repo.Exist(ctx, gDto.FilterGroup{
		Operator: gDto.FilterGroupOperatorAnd,
		Filters: []any{
			gDto.Filter{
				Field:    model.FieldCompanyID,
				Value:    company.ID,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
			gDto.Filter{
				Field:    model.FieldAddress,
				Value:    req.Address,
				Operator: gDto.FilterOperatorEq,
				Table:    model.TableName,
			},
		},
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to check branch address")

		return fmt.Errorf("failed to check branch address: %w", err)
	}

	if duplicate {
		return failure.Conflict(fmt.Sprintf("branch already open in city %s", req.Address)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, req.ToModel(company.ID, user)); err != nil {
		log.Error().Err(err).Msg("failed to open branch")

		return fmt.Errorf("failed to open branch: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllBranch)
		shared.InvalidateCaches(c, s.cache, cacheCountBranch)
	}()

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetBranchesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllBranch, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for branches")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count branches")

		return res, fmt.Errorf("failed to count branches: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get branches")

		return res, fmt.Errorf("failed to get branches: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save branches to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountBranch, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for branch count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count branches")

		return res, fmt.Errorf("failed to count branches: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save branch count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.BranchResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetBranch, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for branch")

		return res, nil
	}

	branch, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get branch")

		return res, fmt.Errorf("failed to get branch: %w", err)
	}

	if branch.ID == constant.Empty {
		return res, failure.NotFound("branch not found") // nolint:wrapcheck
	}

	res.FromModel(branch)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save branch to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateBranchRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateBranchRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update branch")

		return fmt.Errorf("failed to update branch: %w", err)
	}

	s.invalidateBranch(ctx, id)

	return nil
}

// Close deletes the branch together with its member vehicles, employees and
// customers, and any reservation that starts or ends at it. The cascade is
// manual and runs in one transaction; the branch's ledger entry is left in
// place, only the link dies with the row.
func (s *serviceImpl) Close(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Close")
	defer scope.End()
	defer scope.TraceIfError(err)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	err = s.txn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		reservationFilter := gDto.FilterGroup{
			Operator: gDto.FilterGroupOperatorOr,
			Filters: []any{
				gDto.Filter{
					ArgName:  "start_branch_id",
					Field:    reservationModel.FieldStartBranchID,
					Value:    id,
					Operator: gDto.FilterOperatorEq,
					Table:    reservationModel.TableName,
				},
				gDto.Filter{
					ArgName:  "end_branch_id",
					Field:    reservationModel.FieldEndBranchID,
					Value:    id,
					Operator: gDto.FilterOperatorEq,
					Table:    reservationModel.TableName,
				},
			},
		}

		if err := s.reservationRepo.DeleteTx(ctx, tx, reservationFilter); err != nil {
			return fmt.Errorf("failed to delete branch reservations: %w", err)
		}

		if err := s.vehicleRepo.DeleteTx(ctx, tx, shared.FilterByID(id, vehicleModel.FieldBranchID, vehicleModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete branch vehicles: %w", err)
		}

		if err := s.employeeRepo.DeleteTx(ctx, tx, shared.FilterByID(id, employeeModel.FieldBranchID, employeeModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete branch employees: %w", err)
		}

		if err := s.customerRepo.DeleteTx(ctx, tx, shared.FilterByID(id, customerModel.FieldBranchID, customerModel.TableName)); err != nil {
			return fmt.Errorf("failed to delete branch customers: %w", err)
		}

		if err := s.repo.DeleteTx(ctx, tx, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
			return fmt.Errorf("failed to delete branch: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to close branch")

		return fmt.Errorf("failed to close branch: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBranch, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete branch from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBranch)
		shared.InvalidateCaches(c, s.cache, cacheCountBranch)
		shared.InvalidateCaches(c, s.cache, cacheGetAllVehicle)
		shared.InvalidateCaches(c, s.cache, cacheGetAllEmployee)
		shared.InvalidateCaches(c, s.cache, cacheGetAllCustomer)
	}()

	return nil
}

// SetManager stores a bare employee id on the branch. The id is deliberately
// not checked against the employee table; setting a nonexistent manager
// succeeds.
func (s *serviceImpl) SetManager(ctx context.Context, id, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".SetManager")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setManagerField(ctx, id, employeeID)
}

func (s *serviceImpl) ClearManager(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ClearManager")
	defer scope.End()
	defer scope.TraceIfError(err)

	return s.setManagerField(ctx, id, nil)
}

func (s *serviceImpl) setManagerField(ctx context.Context, id string, managerID any) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldManagerID:     managerID,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update branch manager")

		return fmt.Errorf("failed to update branch manager: %w", err)
	}

	s.invalidateBranch(ctx, id)

	return nil
}

func (s *serviceImpl) AssignVehicle(ctx context.Context, id, vehicleID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignVehicle")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return failure.NotFoundEntity(vehicleModel.EntityName, vehicleID) // nolint:wrapcheck
	}

	if err = s.assign(ctx, id, vehicle.BranchID, vehicleModel.EntityName, func(fields map[string]any) error {
		return s.vehicleRepo.Update(ctx, fields, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllVehicle)

	return nil
}

func (s *serviceImpl) RemoveVehicle(ctx context.Context, id, vehicleID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveVehicle")
	defer scope.End()
	defer scope.TraceIfError(err)

	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return failure.NotFoundEntity(vehicleModel.EntityName, vehicleID) // nolint:wrapcheck
	}

	if err = s.remove(ctx, id, vehicle.BranchID, vehicleModel.EntityName, func(fields map[string]any) error {
		return s.vehicleRepo.Update(ctx, fields, shared.FilterByID(vehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllVehicle)

	return nil
}

func (s *serviceImpl) AssignEmployee(ctx context.Context, id, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return failure.NotFoundEntity(employeeModel.EntityName, employeeID) // nolint:wrapcheck
	}

	if err = s.assign(ctx, id, employee.BranchID, employeeModel.EntityName, func(fields map[string]any) error {
		return s.employeeRepo.Update(ctx, fields, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllEmployee)

	return nil
}

func (s *serviceImpl) RemoveEmployee(ctx context.Context, id, employeeID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return failure.NotFoundEntity(employeeModel.EntityName, employeeID) // nolint:wrapcheck
	}

	if err = s.remove(ctx, id, employee.BranchID, employeeModel.EntityName, func(fields map[string]any) error {
		return s.employeeRepo.Update(ctx, fields, shared.FilterByID(employeeID, employeeModel.FieldID, employeeModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllEmployee)

	return nil
}

func (s *serviceImpl) AssignCustomer(ctx context.Context, id, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return failure.NotFoundEntity(customerModel.EntityName, customerID) // nolint:wrapcheck
	}

	if err = s.assign(ctx, id, customer.BranchID, customerModel.EntityName, func(fields map[string]any) error {
		return s.customerRepo.Update(ctx, fields, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllCustomer)

	return nil
}

func (s *serviceImpl) RemoveCustomer(ctx context.Context, id, customerID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RemoveCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return failure.NotFoundEntity(customerModel.EntityName, customerID) // nolint:wrapcheck
	}

	if err = s.remove(ctx, id, customer.BranchID, customerModel.EntityName, func(fields map[string]any) error {
		return s.customerRepo.Update(ctx, fields, shared.FilterByID(customerID, customerModel.FieldID, customerModel.TableName))
	}); err != nil {
		return err
	}

	s.invalidateAssets(ctx, cacheGetAllCustomer)

	return nil
}

// assign binds an asset to the branch. An asset already holding a branch
// reference must be explicitly detached first, whichever branch it points at.
func (s *serviceImpl) assign(ctx context.Context, id string, currentBranchID *string, entityName string, update func(fields map[string]any) error) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	if currentBranchID != nil {
		return failure.Conflict(fmt.Sprintf("%s already assigned to a branch", entityName)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		"branch_id":              id,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = update(updatedFields); err != nil {
		log.Error().Err(err).Str("entity", entityName).Msg("failed to assign asset to branch")

		return fmt.Errorf("failed to assign %s to branch: %w", entityName, err)
	}

	return nil
}

// remove detaches an asset from the branch; the asset must currently be a
// member of exactly this branch.
func (s *serviceImpl) remove(ctx context.Context, id string, currentBranchID *string, entityName string, update func(fields map[string]any) error) error {
	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFound("branch not found") // nolint:wrapcheck
	}

	if currentBranchID == nil || *currentBranchID != id {
		return failure.NotFound(fmt.Sprintf("%s is not a member of this branch", entityName)) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		"branch_id":              nil,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = update(updatedFields); err != nil {
		log.Error().Err(err).Str("entity", entityName).Msg("failed to remove asset from branch")

		return fmt.Errorf("failed to remove %s from branch: %w", entityName, err)
	}

	return nil
}

func (s *serviceImpl) invalidateBranch(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetBranch, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete branch from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllBranch)
		shared.InvalidateCaches(c, s.cache, cacheCountBranch)
	}()
}

func (s *serviceImpl) invalidateAssets(ctx context.Context, prefix string) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, prefix)
	}()
}
