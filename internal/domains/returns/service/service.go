package service

import (
	"context"
	"fmt"
	"time"

	"fleet/infras/kafka"
	"fleet/infras/otel"
	"fleet/infras/postgres"
	branchModel "fleet/internal/domains/branch/model"
	branchRepo "fleet/internal/domains/branch/repository"
	employeeModel "fleet/internal/domains/employee/model"
	employeeRepo "fleet/internal/domains/employee/repository"
	reservationModel "fleet/internal/domains/reservation/model"
	reservationRepo "fleet/internal/domains/reservation/repository"
	"fleet/internal/domains/returns/model"
	"fleet/internal/domains/returns/model/dto"
	"fleet/internal/domains/returns/repository"
	revenueModel "fleet/internal/domains/revenue/model"
	revenueRepo "fleet/internal/domains/revenue/repository"
	vehicleModel "fleet/internal/domains/vehicle/model"
	vehicleRepo "fleet/internal/domains/vehicle/repository"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"
	"fleet/shared/timezone"

	"github.com/jmoiron/sqlx"
	"github.com/rs/zerolog/log"
)

type Return interface {
	Record(ctx context.Context, req dto.CreateReturnRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReturnsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReturnResponse, error)
	Update(ctx context.Context, req dto.UpdateReturnRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Return
	employeeRepo    employeeRepo.Employee
	reservationRepo reservationRepo.Reservation
	vehicleRepo     vehicleRepo.Vehicle
	branchRepo      branchRepo.Branch
	revenueRepo     revenueRepo.Revenue
	txn             postgres.Transactor
	broker          kafka.Client
	otel            otel.Otel
}

func New(
	repo repository.Return,
	employeeRepo employeeRepo.Employee,
	reservationRepo reservationRepo.Reservation,
	vehicleRepo vehicleRepo.Vehicle,
	branchRepo branchRepo.Branch,
	revenueRepo revenueRepo.Revenue,
	txn postgres.Transactor,
	broker kafka.Client,
	otel otel.Otel,
) Return {
	return &serviceImpl{
		repo:            repo,
		employeeRepo:    employeeRepo,
		reservationRepo: reservationRepo,
		vehicleRepo:     vehicleRepo,
		branchRepo:      branchRepo,
		revenueRepo:     revenueRepo,
		txn:             txn,
		broker:          broker,
		otel:            otel,
	}
}

// Record closes out a reservation: it writes the return record and, in the
// same transaction, accrues reservation price plus upcharge onto the ledger
// reached through vehicle -> branch -> revenue. A break anywhere in that
// chain (unassigned vehicle, branch without a ledger) skips the accrual and
// still records the return.
func (s *serviceImpl) Record(ctx context.Context, req dto.CreateReturnRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureNoReturnFor(ctx, req.ReservationID); err != nil {
		return err
	}

	if err = s.resolveEmployee(ctx, req.EmployeeID); err != nil {
		return err
	}

	reservation, err := s.reservationRepo.Get(ctx, shared.FilterByID(req.ReservationID, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFoundEntity(reservationModel.EntityName, req.ReservationID) // nolint:wrapcheck
	}

	record, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build return record")

		return failure.BadRequestFromString(fmt.Sprintf("invalid return date: %s", req.ReturnDate)) // nolint:wrapcheck
	}

	amount := reservation.Price + req.Upcharge

	revenue, found := s.resolveLedger(ctx, reservation)

	err = s.txn.WithTransaction(ctx, func(tx *sqlx.Tx) error {
		if err := s.repo.InsertTx(ctx, tx, record); err != nil {
			return fmt.Errorf("failed to record return: %w", err)
		}

		if !found {
			return nil
		}

		updatedFields := map[string]any{
			revenueModel.FieldTotal:  revenue.Total + amount,
			constant.FieldModifiedAt: timezone.Now(),
			constant.FieldModifiedBy: user,
		}

		if err := s.revenueRepo.UpdateTx(ctx, tx, updatedFields, shared.FilterByID(revenue.ID, revenueModel.FieldID, revenueModel.TableName)); err != nil {
			return fmt.Errorf("failed to accrue revenue: %w", err)
		}

		return nil
	})
	if err != nil {
		log.Error().Err(err).Msg("failed to record return")

		return fmt.Errorf("failed to record return: %w", err)
	}

	accrued := float64(0)
	if found {
		accrued = amount
	}

	s.publishRecorded(ctx, record, accrued)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReturnsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count return records")

		return res, fmt.Errorf("failed to count return records: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get return records")

		return res, fmt.Errorf("failed to get return records: %w", err)
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
		log.Error().Err(err).Msg("failed to count return records")

		return res, fmt.Errorf("failed to count return records: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReturnResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	record, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get return record")

		return res, fmt.Errorf("failed to get return record: %w", err)
	}

	if record.ID == constant.Empty {
		return res, failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	res.FromModel(record)

	return res, nil
}

// Update re-runs the duplicate guard against the record's reservation without
// excluding the record being edited, mirroring the rental side.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReturnRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateReturnRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	record, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get return record")

		return fmt.Errorf("failed to get return record: %w", err)
	}

	if record.ID == constant.Empty {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	if err = s.ensureNoReturnFor(ctx, record.ReservationID); err != nil {
		return err
	}

	if req.EmployeeID != constant.Empty {
		if err = s.resolveEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if req.ReturnDate != constant.Empty {
		returnDate, err := time.Parse(constant.DateOnlyLayout, req.ReturnDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid return date: %s", req.ReturnDate)) // nolint:wrapcheck
		}

		updatedFields[model.FieldReturnDate] = returnDate
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update return record")

		return fmt.Errorf("failed to update return record: %w", err)
	}

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if return record exists")

		return fmt.Errorf("failed to check if return record exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete return record")

		return fmt.Errorf("failed to delete return record: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureNoReturnFor(ctx context.Context, reservationID string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(reservationID, model.FieldReservationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check return record for reservation")

		return fmt.Errorf("failed to check return record for reservation: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("Return already exists for reservation #%s", reservationID)) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) resolveEmployee(ctx context.Context, id string) error {
	exist, err := s.employeeRepo.Exist(ctx, shared.FilterByID(id, employeeModel.FieldID, employeeModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if employee exists")

		return fmt.Errorf("failed to check if employee exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(employeeModel.EntityName, id) // nolint:wrapcheck
	}

	return nil
}

// resolveLedger walks reservation -> vehicle -> branch -> revenue and
// reports whether the branch has a ledger attached. Lookup errors and broken
// links both surface as "no ledger"; the return itself must never fail on
// accounting.
func (s *serviceImpl) resolveLedger(ctx context.Context, reservation reservationModel.Reservation) (revenueModel.Revenue, bool) {
	var none revenueModel.Revenue

	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(reservation.VehicleID, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil || vehicle.ID == constant.Empty {
		log.Debug().Err(err).Str("reservationID", reservation.ID).Msg("skipping accrual: vehicle not found")

		return none, false
	}

	if vehicle.BranchID == nil {
		log.Debug().Str("vehicleID", vehicle.ID).Msg("skipping accrual: vehicle not assigned to a branch")

		return none, false
	}

	branch, err := s.branchRepo.Get(ctx, shared.FilterByID(*vehicle.BranchID, branchModel.FieldID, branchModel.TableName))
	if err != nil || branch.ID == constant.Empty {
		log.Debug().Err(err).Str("vehicleID", vehicle.ID).Msg("skipping accrual: branch not found")

		return none, false
	}

	if branch.RevenueID == nil {
		log.Debug().Str("branchID", branch.ID).Msg("skipping accrual: branch has no revenue ledger")

		return none, false
	}

	revenue, err := s.revenueRepo.Get(ctx, shared.FilterByID(*branch.RevenueID, revenueModel.FieldID, revenueModel.TableName))
	if err != nil || revenue.ID == constant.Empty {
		log.Debug().Err(err).Str("branchID", branch.ID).Msg("skipping accrual: revenue ledger not found")

		return none, false
	}

	return revenue, true
}

func (s *serviceImpl) publishRecorded(ctx context.Context, record model.ReturnRecord, accrued float64) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.ReturnRecordedEvent{
			ReturnID:      record.ID,
			ReservationID: record.ReservationID,
			EmployeeID:    record.EmployeeID,
			ReturnDate:    record.ReturnDate.Format(constant.DateOnlyLayout),
			Upcharge:      record.Upcharge,
			Accrued:       accrued,
		}

		message := kafka.Message{
			Key:   record.ID,
			Value: event,
		}

		if err := s.broker.SendMessages(c, constant.KafkaTopicReturns, message); err != nil {
			log.Error().Err(err).Str("returnID", record.ID).Msg("failed to publish return recorded event")
		}
	}()
}
