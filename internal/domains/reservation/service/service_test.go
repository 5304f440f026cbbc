package service_test

import (
	"context"
	"errors"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fleet/config"
	otelMocks "fleet/infras/otel/mocks"
	branchMocks "fleet/internal/domains/branch/mocks"
	customerMocks "fleet/internal/domains/customer/mocks"
	reservationMocks "fleet/internal/domains/reservation/mocks"
	"fleet/internal/domains/reservation/model"
	"fleet/internal/domains/reservation/model/dto"
	"fleet/internal/domains/reservation/service"
	vehicleMocks "fleet/internal/domains/vehicle/mocks"
	vehicleModel "fleet/internal/domains/vehicle/model"
	cacheMocks "fleet/shared/cache/mocks"
	"fleet/shared/constant"
)

type reservationServiceMocks struct {
	repo         *reservationMocks.MockReservation
	customerRepo *customerMocks.MockCustomer
	vehicleRepo  *vehicleMocks.MockVehicle
	branchRepo   *branchMocks.MockBranch
	cache        *cacheMocks.MockRedisCache
}

func newReservationService(ctrl *gomock.Controller) (service.Reservation, reservationServiceMocks) {
	m := reservationServiceMocks{
		repo:         reservationMocks.NewMockReservation(ctrl),
		customerRepo: customerMocks.NewMockCustomer(ctrl),
		vehicleRepo:  vehicleMocks.NewMockVehicle(ctrl),
		branchRepo:   branchMocks.NewMockBranch(ctrl),
		cache:        cacheMocks.NewMockRedisCache(ctrl),
	}

	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(m.repo, m.customerRepo, m.vehicleRepo, m.branchRepo, cfg, m.cache, otelMocks.NewOtel())

	return svc, m
}

func TestReservationService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl)

	expectResolvedRefs := func() {
		m.customerRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil)

		m.vehicleRepo.EXPECT().
			Get(gomock.Any(), gomock.Any()).
			Return(vehicleModel.Vehicle{ID: "vehicle-id", DayRate: 100}, nil)

		m.branchRepo.EXPECT().
			Exist(gomock.Any(), gomock.Any()).
			Return(true, nil).
			Times(2)
	}

	tests := []struct {
		name      string
		req       dto.CreateReservationRequest
		setupMock func()
		wantErr   bool
	}{
		{
			// 100 a day over four whole days prices at 400; the supplied
			// price is discarded.
			name: "price derived from day rate and range",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-b",
				StartDate:     "2024-01-01",
				EndDate:       "2024-01-05",
				Price:         9999,
			},
			setupMock: func() {
				expectResolvedRefs()

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
						assert.Equal(t, float64(400), reservation.Price)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "same day reservation prices at zero",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-a",
				StartDate:     "2024-01-01",
				EndDate:       "2024-01-01",
			},
			setupMock: func() {
				expectResolvedRefs()

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, reservation model.Reservation) error {
						assert.Equal(t, float64(0), reservation.Price)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "end date before start date",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-b",
				StartDate:     "2024-01-05",
				EndDate:       "2024-01-01",
			},
			setupMock: expectResolvedRefs,
			wantErr:   true,
		},
		{
			name: "customer not found",
			req: dto.CreateReservationRequest{
				CustomerID:    "nonexistent-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-b",
				StartDate:     "2024-01-01",
				EndDate:       "2024-01-05",
			},
			setupMock: func() {
				m.customerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "vehicle not found",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "nonexistent-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-b",
				StartDate:     "2024-01-01",
				EndDate:       "2024-01-05",
			},
			setupMock: func() {
				m.customerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{}, nil)
			},
			wantErr: true,
		},
		{
			name: "branch not found",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "nonexistent-id",
				EndBranchID:   "branch-b",
				StartDate:     "2024-01-01",
				EndDate:       "2024-01-05",
			},
			setupMock: func() {
				m.customerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", DayRate: 100}, nil)

				m.branchRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid start date",
			req: dto.CreateReservationRequest{
				CustomerID:    "customer-id",
				VehicleID:     "vehicle-id",
				StartBranchID: "branch-a",
				EndBranchID:   "branch-b",
				StartDate:     "01-01-2024",
				EndDate:       "2024-01-05",
			},
			setupMock: expectResolvedRefs,
			wantErr:   true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Create(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl)

	stored := model.Reservation{
		ID:            "reservation-id",
		StartDate:     time.Date(2024, 1, 1, 0, 0, 0, 0, time.UTC),
		EndDate:       time.Date(2024, 1, 5, 0, 0, 0, 0, time.UTC),
		Price:         400,
		StartBranchID: "branch-a",
		EndBranchID:   "branch-b",
		VehicleID:     "vehicle-id",
		CustomerID:    "customer-id",
	}

	tests := []struct {
		name      string
		req       dto.UpdateReservationRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			// Extending the range to six whole days reprices at 600.
			name: "date change reprices the reservation",
			req:  dto.UpdateReservationRequest{EndDate: "2024-01-07"},
			id:   "reservation-id",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.customerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", DayRate: 100}, nil)

				m.branchRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil).
					Times(2)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, fields map[string]any, _ any) error {
						assert.Equal(t, float64(600), fields[model.FieldPrice])

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			req:  dto.UpdateReservationRequest{EndDate: "2024-01-07"},
			id:   "nonexistent-id",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
		{
			name: "end date moved before start date",
			req:  dto.UpdateReservationRequest{EndDate: "2023-12-30"},
			id:   "reservation-id",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.customerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", DayRate: 100}, nil)

				m.branchRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil).
					Times(2)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			id:   "reservation-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "reservation-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{ID: "reservation-id"}, nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Reservation{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.Get(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestReservationService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newReservationService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "reservation-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Delete(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "reservation not found",
			id:   "nonexistent-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.Delete(context.Background(), tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
