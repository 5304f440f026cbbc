package service

import (
	"context"
	"fmt"

	"fleet/infras/otel"
	"fleet/infras/postgres"
	branchModel "fleet/internal/domains/branch/model"
	branchRepo "fleet/internal/domains/branch/repository"
	"fleet/internal/domains/revenue/model"
	"fleet/internal/domains/revenue/model/dto"
	"fleet/internal/domains/revenue/repository"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"
	"fleet/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Revenue interface {
	Add(ctx context.Context, req dto.CreateRevenueRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRevenuesResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RevenueResponse, error)
	Update(ctx context.Context, req dto.UpdateRevenueRequest, id string) error
	Accrue(ctx context.Context, req dto.AccrueRevenueRequest, id string) error
	AssignToBranch(ctx context.Context, id, branchID string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo       repository.Revenue
	branchRepo branchRepo.Branch
	txn        postgres.Transactor
	otel       otel.Otel
}

func New(repo repository.Revenue, branchRepo branchRepo.Branch, txn postgres.Transactor, otel otel.Otel) Revenue {
	return &serviceImpl{
		repo:       repo,
		branchRepo: branchRepo,
		txn:        txn,
		otel:       otel,
	}
}

func (s *serviceImpl) Add(ctx context.Context, req dto.CreateRevenueRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Add")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.repo.Insert(ctx, req.ToModel(user)); err != nil {
		log.Error().Err(err).Msg("failed to create revenue ledger")

		return fmt.Errorf("failed to create revenue ledger: %w", err)
	}

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRevenuesResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count revenue ledgers")

		return res, fmt.Errorf("failed to count revenue ledgers: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue ledgers")

		return res, fmt.Errorf("failed to get revenue ledgers: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count revenue ledgers")

		return res, fmt.Errorf("failed to count revenue ledgers: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RevenueResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	revenue, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue ledger")

		return res, fmt.Errorf("failed to get revenue ledger: %w", err)
	}

	if revenue.ID == constant.Empty {
		return res, failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	res.FromModel(revenue)

	return res, nil
}

func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRevenueRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRevenueRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if revenue ledger exists")

		return fmt.Errorf("failed to check if revenue ledger exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	updatedFields := shared.TransformFields(req, user)
	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update revenue ledger")

		return fmt.Errorf("failed to update revenue ledger: %w", err)
	}

	return nil
}

// Accrue adds the amount to the ledger's running total. The total is never
// replaced through this path.
func (s *serviceImpl) Accrue(ctx context.Context, req dto.AccrueRevenueRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Accrue")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	revenue, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get revenue ledger")

		return fmt.Errorf("failed to get revenue ledger: %w", err)
	}

	if revenue.ID == constant.Empty {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		model.FieldTotal:         revenue.Total + req.Amount,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to accrue revenue")

		return fmt.Errorf("failed to accrue revenue: %w", err)
	}

	return nil
}

// AssignToBranch attaches the ledger to a branch. A branch carries at most
// one ledger; attaching to a branch that already has one is a conflict.
func (s *serviceImpl) AssignToBranch(ctx context.Context, id, branchID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".AssignToBranch")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	exist, err := s.repo.Exist(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if revenue ledger exists")

		return fmt.Errorf("failed to check if revenue ledger exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	branch, err := s.branchRepo.Get(ctx, shared.FilterByID(branchID, branchModel.FieldID, branchModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get branch")

		return fmt.Errorf("failed to get branch: %w", err)
	}

	if branch.ID == constant.Empty {
		return failure.NotFoundEntity(branchModel.EntityName, branchID) // nolint:wrapcheck
	}

	if branch.RevenueID != nil {
		return failure.Conflict("branch already has a revenue ledger") // nolint:wrapcheck
	}

	updatedFields := map[string]any{
		branchModel.FieldRevenueID: id,
		constant.FieldModifiedAt:   timezone.Now(),
		constant.FieldModifiedBy:   user,
	}

	if err = s.branchRepo.Update(ctx, updatedFields, shared.FilterByID(branchID, branchModel.FieldID, branchModel.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to assign revenue ledger to branch")

		return fmt.Errorf("failed to assign revenue ledger to branch: %w", err)
	}

	return nil
}

// Delete detaches the ledger from any branch pointing at it before removing
// the ledger row, both inside one transaction.
func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if revenue ledger exists")

		return fmt.Errorf("failed to check if revenue ledger exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	err = s.txn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		detachFields := map[string]any{
			branchModel.FieldRevenueID: nil,
			constant.FieldModifiedAt:   timezone.Now(),
			constant.FieldModifiedBy:   user,
		}

		linked, err := s.branchRepo.Exist(ctx, shared.FilterByID(id, branchModel.FieldRevenueID, branchModel.TableName))
		if err != nil {
			return fmt.Errorf("failed to check branch ledger link: %w", err)
		}

		if linked {
			if err := s.branchRepo.UpdateTx(ctx, tx, detachFields, shared.FilterByID(id, branchModel.FieldRevenueID, branchModel.TableName)); err != nil {
				return fmt.Errorf("failed to detach revenue ledger from branch: %w", err)
			}
		}

		if err := s.repo.DeleteTx(ctx, tx, filter); err != nil {
			return fmt.Errorf("failed to delete revenue ledger: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to delete revenue ledger")

		return fmt.Errorf("failed to delete revenue ledger: %w", err)
	}

	return nil
}
