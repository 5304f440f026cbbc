package service

import (
	"context"
	"fmt"
	"time"

	"fleet/config"
	"fleet/infras/otel"
	branchModel "fleet/internal/domains/branch/model"
	branchRepo "fleet/internal/domains/branch/repository"
	customerModel "fleet/internal/domains/customer/model"
	customerRepo "fleet/internal/domains/customer/repository"
	"fleet/internal/domains/reservation/model"
	"fleet/internal/domains/reservation/model/dto"
	"fleet/internal/domains/reservation/repository"
	vehicleModel "fleet/internal/domains/vehicle/model"
	vehicleRepo "fleet/internal/domains/vehicle/repository"
	"fleet/shared"
	"fleet/shared/cache"
	"fleet/shared/constant"
	gDto "fleet/shared/dto"
	"fleet/shared/failure"
	"fleet/shared/timezone"

	"github.com/rs/zerolog/log"
)

const (
	cacheGetReservation    = "reservation:get"
	cacheGetAllReservation = "reservation:gets"
	cacheCountReservation  = "reservation:count"
)

type Reservation interface {
	Create(ctx context.Context, req dto.CreateReservationRequest) error
	GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (dto.GetReservationsResponse, error)
	Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (int, error)
	Get(ctx context.Context, id string) (dto.ReservationResponse, error)
	Update(ctx context.Context, req dto.UpdateReservationRequest, id string) error
	Delete(ctx context.Context, id string) error
}

type serviceImpl struct {
	repo         repository.Reservation
	customerRepo customerRepo.Customer
	vehicleRepo  vehicleRepo.Vehicle
	branchRepo   branchRepo.Branch
	cfg          *config.Config
	cache        cache.RedisCache
	otel         otel.Otel
}

func New(
	repo repository.Reservation,
	customerRepo customerRepo.Customer,
	vehicleRepo vehicleRepo.Vehicle,
	branchRepo branchRepo.Branch,
	cfg *config.Config,
	cache cache.RedisCache,
	otel otel.Otel,
) Reservation {
	return &serviceImpl{
		repo:         repo,
		customerRepo: customerRepo,
		vehicleRepo:  vehicleRepo,
		branchRepo:   branchRepo,
		cfg:          cfg,
		cache:        cache,
		otel:         otel,
	}
}

// Create resolves every reference against the registry and derives the price
// from the vehicle day-rate and the whole days between the dates. A price
// supplied by the client is discarded.
func (s *serviceImpl) Create(ctx context.Context, req dto.CreateReservationRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Create")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	if err = s.resolveCustomer(ctx, req.CustomerID); err != nil {
		return err
	}

	vehicle, err := s.resolveVehicle(ctx, req.VehicleID)
	if err != nil {
		return err
	}

	if err = s.resolveBranch(ctx, req.StartBranchID); err != nil {
		return err
	}

	if err = s.resolveBranch(ctx, req.EndBranchID); err != nil {
		return err
	}

	startDate, endDate, err := parseDateRange(req.StartDate, req.EndDate)
	if err != nil {
		return err
	}

	price := vehicle.DayRate * float64(daysBetween(startDate, endDate))

	reservation, err := req.ToModel(price, user)
	if err != nil {
		log.Error().Err(err).Msg("failed to build reservation")

		return failure.BadRequestFromString(fmt.Sprintf("invalid date format: %v", err)) // nolint:wrapcheck
	}

	if err = s.repo.Insert(ctx, reservation); err != nil {
		log.Error().Err(err).Msg("failed to create reservation")

		return fmt.Errorf("failed to create reservation: %w", err)
	}

	s.invalidateLists(ctx)

	return nil
}

func (s *serviceImpl) GetAll(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res dto.GetReservationsResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".GetAll")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheGetAllReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservations")

		return res, nil
	}

	total, err := s.Count(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	models, err := s.repo.GetAll(ctx, req, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservations")

		return res, fmt.Errorf("failed to get reservations: %w", err)
	}

	res.FromModels(models, total, req.Limit)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservations to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Count(ctx context.Context, req gDto.QueryParams, filter gDto.FilterGroup) (res int, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Count")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKeyWithQuery(cacheCountReservation, req, filter)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation count")

		return res, nil
	}

	res, err = s.repo.Count(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to count reservations")

		return res, fmt.Errorf("failed to count reservations: %w", err)
	}

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation count to cache")
		}
	}()

	return res, nil
}

func (s *serviceImpl) Get(ctx context.Context, id string) (res dto.ReservationResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Get")
	defer scope.End()
	defer scope.TraceIfError(err)

	cacheKey := shared.BuildCacheKey(cacheGetReservation, id)

	err = s.cache.Get(ctx, cacheKey, &res)
	if err == nil {
		log.Info().Str("cacheKey", cacheKey).Msg("cache hit for reservation")

		return res, nil
	}

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return res, fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return res, failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	res.FromModel(reservation)

	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Save(c, cacheKey, res, s.cfg.Cache.TTL); err != nil {
			log.Error().Err(err).Msg("failed to save reservation to cache")
		}
	}()

	return res, nil
}

// Update overlays the supplied fields on the stored reservation, re-resolves
// every reference, and recomputes the price from the resulting vehicle and
// date range. Editing dates therefore always reprices the reservation.
func (s *serviceImpl) Update(ctx context.Context, req dto.UpdateReservationRequest, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Update")
	defer scope.End()
	defer scope.TraceIfError(err)

	user, _ := ctx.Value(constant.ContextKeyUserID).(string)

	reservation, err := s.repo.Get(ctx, shared.FilterByID(id, model.FieldID, model.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get reservation")

		return fmt.Errorf("failed to get reservation: %w", err)
	}

	if reservation.ID == constant.Empty {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	customerID := reservation.CustomerID
	if req.CustomerID != constant.Empty {
		customerID = req.CustomerID
	}

	vehicleID := reservation.VehicleID
	if req.VehicleID != constant.Empty {
		vehicleID = req.VehicleID
	}

	startBranchID := reservation.StartBranchID
	if req.StartBranchID != constant.Empty {
		startBranchID = req.StartBranchID
	}

	endBranchID := reservation.EndBranchID
	if req.EndBranchID != constant.Empty {
		endBranchID = req.EndBranchID
	}

	if err = s.resolveCustomer(ctx, customerID); err != nil {
		return err
	}

	vehicle, err := s.resolveVehicle(ctx, vehicleID)
	if err != nil {
		return err
	}

	if err = s.resolveBranch(ctx, startBranchID); err != nil {
		return err
	}

	if err = s.resolveBranch(ctx, endBranchID); err != nil {
		return err
	}

	startDate := reservation.StartDate
	if req.StartDate != constant.Empty {
		startDate, err = time.Parse(constant.DateOnlyLayout, req.StartDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid start date: %s", req.StartDate)) // nolint:wrapcheck
		}
	}

	endDate := reservation.EndDate
	if req.EndDate != constant.Empty {
		endDate, err = time.Parse(constant.DateOnlyLayout, req.EndDate)
		if err != nil {
			return failure.BadRequestFromString(fmt.Sprintf("invalid end date: %s", req.EndDate)) // nolint:wrapcheck
		}
	}

	if endDate.Before(startDate) {
		return failure.UnprocessableEntity("end date must not precede start date") // nolint:wrapcheck
	}

	price := vehicle.DayRate * float64(daysBetween(startDate, endDate))

	updatedFields := map[string]any{
		model.FieldCustomerID:    customerID,
		model.FieldVehicleID:     vehicleID,
		model.FieldStartBranchID: startBranchID,
		model.FieldEndBranchID:   endBranchID,
		model.FieldStartDate:     startDate,
		model.FieldEndDate:       endDate,
		model.FieldPrice:         price,
		constant.FieldModifiedAt: timezone.Now(),
		constant.FieldModifiedBy: user,
	}

	if err = s.repo.Update(ctx, updatedFields, shared.FilterByID(id, model.FieldID, model.TableName)); err != nil {
		log.Error().Err(err).Msg("failed to update reservation")

		return fmt.Errorf("failed to update reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) Delete(ctx context.Context, id string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".Delete")
	defer scope.End()
	defer scope.TraceIfError(err)

	filter := shared.FilterByID(id, model.FieldID, model.TableName)

	exist, err := s.repo.Exist(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to check if reservation exists")

		return fmt.Errorf("failed to check if reservation exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(model.EntityName, id) // nolint:wrapcheck
	}

	if err = s.repo.Delete(ctx, filter); err != nil {
		log.Error().Err(err).Msg("failed to delete reservation")

		return fmt.Errorf("failed to delete reservation: %w", err)
	}

	s.invalidate(ctx, id)

	return nil
}

func (s *serviceImpl) resolveCustomer(ctx context.Context, id string) error {
	exist, err := s.customerRepo.Exist(ctx, shared.FilterByID(id, customerModel.FieldID, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if customer exists")

		return fmt.Errorf("failed to check if customer exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(customerModel.EntityName, id) // nolint:wrapcheck
	}

	return nil
}

func (s *serviceImpl) resolveVehicle(ctx context.Context, id string) (vehicleModel.Vehicle, error) {
	vehicle, err := s.vehicleRepo.Get(ctx, shared.FilterByID(id, vehicleModel.FieldID, vehicleModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to get vehicle")

		return vehicle, fmt.Errorf("failed to get vehicle: %w", err)
	}

	if vehicle.ID == constant.Empty {
		return vehicle, failure.NotFoundEntity(vehicleModel.EntityName, id) // nolint:wrapcheck
	}

	return vehicle, nil
}

func (s *serviceImpl) resolveBranch(ctx context.Context, id string) error {
	exist, err := s.branchRepo.Exist(ctx, shared.FilterByID(id, branchModel.FieldID, branchModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check if branch exists")

		return fmt.Errorf("failed to check if branch exists: %w", err)
	}

	if !exist {
		return failure.NotFoundEntity(branchModel.EntityName, id) // nolint:wrapcheck
	}

	return nil
}

func parseDateRange(start, end string) (time.Time, time.Time, error) {
	startDate, err := time.Parse(constant.DateOnlyLayout, start)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid start date: %s", start)) // nolint:wrapcheck
	}

	endDate, err := time.Parse(constant.DateOnlyLayout, end)
	if err != nil {
		return time.Time{}, time.Time{}, failure.BadRequestFromString(fmt.Sprintf("invalid end date: %s", end)) // nolint:wrapcheck
	}

	if endDate.Before(startDate) {
		return time.Time{}, time.Time{}, failure.UnprocessableEntity("end date must not precede start date") // nolint:wrapcheck
	}

	return startDate, endDate, nil
}

// daysBetween counts the whole days between two dates; a reservation from
// 2024-01-01 to 2024-01-05 spans 4 billable days.
func daysBetween(start, end time.Time) int {
	return int(end.Sub(start).Hours() / constant.HoursPerDay)
}

func (s *serviceImpl) invalidate(ctx context.Context, id string) {
	go func() {
		c := context.WithoutCancel(ctx)

		if err := s.cache.Delete(c, shared.BuildCacheKey(cacheGetReservation, id)); err != nil {
			log.Error().Err(err).Msg("failed to delete reservation from cache")
		}

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}

func (s *serviceImpl) invalidateLists(ctx context.Context) {
	go func() {
		c := context.WithoutCancel(ctx)

		shared.InvalidateCaches(c, s.cache, cacheGetAllReservation)
		shared.InvalidateCaches(c, s.cache, cacheCountReservation)
	}()
}
