package service

import (
	"context"
	"fmt"
	"time"

	"fleet/infras/kafka"
	"fleet/infras/otel"
	employeeModel "fleet/internal/domains/employee/model"
	employeeRepo "fleet/internal/domains/employee/repository"
	"fleet/internal/domains/rentals/model"
	"fleet/internal/domains/rentals/model/dto"
	"fleet/internal/domains/rentals/repository"
	reservationModel "fleet/internal/domains/reservation/model"
	reservationRepo "fleet/internal/domains/reservation/repository"
	"fleet/shared"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"

	"github.com/rs/zerolog/log"
)

type Rental interface {
	Record(ctx context.Context, req dto.CreateRentalRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetRentalsResponse, error)
	Count(ctx context.Context, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.RentalResponse, error)
	Update(ctx context.Context, req dto.UpdateRentalRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo            repository.Rental
	employeeRepo    employeeRepo.Employee
	reservationRepo reservationRepo.Reservation
	broker          kafka.Client
	otel            otel.Otel
}

func New(
	repo repository.Rental,
	employeeRepo employeeRepo.Employee,
	reservationRepo reservationRepo.Reservation,
	broker kafka.Client,
	otel otel.Otel,
) Rental {
	return &serviceImpl{
		repo:            repo,
		employeeRepo:    employeeRepo,
		reservationRepo: reservationRepo,
		broker:          broker,
		otel:            otel,
	}
}

// Record opens the rental agreement for a reservation. A reservation can be
// handed over at most once.
func (s *serviceImpl) Record(ctx context.Context, req dto.CreateRentalRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Record")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.ensureNoRentalFor(ctx, req.ReservationID); err != nil {
		return err
	}

	if err = s.resolveEmployee(ctx, req.EmployeeID); err != nil {
		return err
	}

	if err = s.resolveReservation(ctx, req.ReservationID); err != nil {
		return err
	}

	rental, err := req.ToModel(user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build rental agreement")

		return failure.BadRequestFromString(fmt.Sprintf("invalid rental date: %s", req.RentalDate)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, rental); err != nil {
		log.Error().Err(err).Msg("failed to record rental agreement")

		return fmt.Errorf("failed to record rental agreement: %w", err)
	}

	s.publishRecorded(ctx, rental)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetRentalsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	total, err := s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count rental agreements")

		return res, fmt.Errorf("failed to count rental agreements: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental agreements")

		return res, fmt.Errorf("failed to get rental agreements: %w", err)
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
		log.Error().Err(err).Msg("failed to count rental agreements")

		return res, fmt.Errorf("failed to count rental agreements: %w", err)
	}

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.RentalResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	rental, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental agreement")

		return res, fmt.Errorf("failed to get rental agreement: %w", err)
	}

	if rental.ID == constant.Empty {
		return res, failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	res.FromModel(rental)

	return res, nil
}

// Update re-runs the duplicate guard against the rental's reservation without
// excluding the record being edited, so editing an existing agreement always
// reports the conflict. Callers work around it by delete-and-record.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateRentalRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	if req == (dto.UpdateRentalRequest{}) {
		return failure.BadRequestFromString("update request cannot be empty") // nolint:wrapcheck
	}

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)
	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	rental, err := s.repo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get rental agreement")

		return fmt.Errorf("failed to get rental agreement: %w", err)
	}

	if rental.ID == constant.Empty {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	if err = s.ensureNoRentalFor(ctx, rental.ReservationID); err != nil {
		return err
	}

	if req.EmployeeID != constant.Empty {
		if err = s.resolveEmployee(ctx, req.EmployeeID); err != nil {
			return err
		}
	}

	updatedFields := shared.TransformFields(req, user)

	if req.RentalDate != constant.Empty {
		rentalDate, err := time.Parse(constant.DateOnlyLayout, req.RentalDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid rental date: %s", req.RentalDate)) // nolint:wrapcheck
		}

		updatedFields[model.FieldRentalDate] = rentalDate
	}

	if err = s.repo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update rental agreement")

		return fmt.Errorf("failed to update rental agreement: %w", err)
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
		log.Error().Err(err).Msg("failed to check if rental agreement exists")

		return fmt.Errorf("failed to check if rental agreement exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete rental agreement")

		return fmt.Errorf("failed to delete rental agreement: %w", err)
	}

	return nil
}

func (s *serviceImpl) ensureNoRentalFor(ctx context.Context, reservationID string) error {
	exist, err := s.repo.Exist(ctx, shared.FilterByID(reservationID, model.FieldReservationID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check rental agreement for reservation")

		return fmt.Errorf("failed to check rental agreement for reservation: %w", err)
	}

	if exist {
		return failure.Conflict(fmt.Sprintf("Rent already exists for reservation #%s", reservationID)) // nolint:wrapcheck
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

func (s *serviceImpl) resolveReservation(ctx context.Context, id string) error {
	exist, err := s.reservationRepo.Exist(ctx, shared.FilterByID(id, reservationModel.FieldID, reservationModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(reservationModel.EntityName, id) // nolint:wrapcheck
	}

	return nil
}

// publishRecorded emits the hand-over event. Publishing is best effort; the
// agreement is already persisted when this runs.
func (s *serviceImpl) publishRecorded(ctx context.Context, rental model.RentalAgreement) {
	go func() {
		c := context.WithoutCancel(ctx)

		event := dto.RentalRecordedEvent{
			RentalID:      rental.ID,
			ReservationID: rental.ReservationID,
			EmployeeID:    rental.EmployeeID,
			RentalDate:    rental.RentalDate.Format(constant.DateOnlyLayout),
		}

		message := kafka.Message{
			Key:   rental.ID,
			Value: event,
		}

		if err := s.broker.SendMessages(c, constant.KafkaTopicRentals, message); err != nil {
			log.Error().Err(err).Str("rentalID", rental.ID).Msg("failed to publish rental recorded event")
		}
	}()
}
