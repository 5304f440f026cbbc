package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fleet/config"
	otelMocks "fleet/infras/otel/mocks"
	txnMocks "fleet/infras/postgres/mocks"
	branchMocks "fleet/internal/domains/branch/mocks"
	"fleet/internal/domains/branch/model"
	"fleet/internal/domains/branch/model/dto"
	"fleet/internal/domains/branch/service"
	companyMocks "fleet/internal/domains/company/mocks"
	companyModel "fleet/internal/domains/company/model"
	customerMocks "fleet/internal/domains/customer/mocks"
	customerModel "fleet/internal/domains/customer/model"
	employeeMocks "fleet/internal/domains/employee/mocks"
	reservationMocks "fleet/internal/domains/reservation/mocks"
	vehicleMocks "fleet/internal/domains/vehicle/mocks"
	vehicleModel "fleet/internal/domains/vehicle/model"
	cacheMocks "fleet/shared/cache/mocks"
	"fleet/shared/constant"
)

type branchServiceMocks struct {
	repo            *branchMocks.MockBranch
	companyRepo     *companyMocks.MockCompany
	vehicleRepo     *vehicleMocks.MockVehicle
	employeeRepo    *employeeMocks.MockEmployee
	customerRepo    *customerMocks.MockCustomer
	reservationRepo *reservationMocks.MockReservation
	cache           *cacheMocks.MockRedisCache
}

func newBranchService(ctrl *gomock.Controller) (service.Branch, branchServiceMocks) {
	m := branchServiceMocks{
		repo:            branchMocks.NewMockBranch(ctrl),
		companyRepo:     companyMocks.NewMockCompany(ctrl),
		vehicleRepo:     vehicleMocks.NewMockVehicle(ctrl),
		employeeRepo:    employeeMocks.NewMockEmployee(ctrl),
		customerRepo:    customerMocks.NewMockCustomer(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		cache:           cacheMocks.NewMockRedisCache(ctrl),
	}

	// Invalidation runs on background goroutines.
	m.cache.EXPECT().Clear(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Delete(gomock.Any(), gomock.Any()).Return(nil).AnyTimes()
	m.cache.EXPECT().Save(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).Return(nil).AnyTimes()

	cfg := &config.Config{}
	cfg.Cache.TTL = 3600

	svc := service.New(
		m.repo,
		m.companyRepo,
		m.vehicleRepo,
		m.employeeRepo,
		m.customerRepo,
		m.reservationRepo,
		txnMocks.NewTransactor(),
		cfg,
		m.cache,
		otelMocks.NewOtel(),
	)

	return svc, m
}

func TestBranchService_Open(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	tests := []struct {
		name      string
		req       dto.OpenBranchRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful open",
			req:  dto.OpenBranchRequest{Name: "Downtown", Address: "12 Harbour Road"},
			setupMock: func() {
				m.companyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(companyModel.Company{ID: "company-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "duplicate address",
			req:  dto.OpenBranchRequest{Name: "Downtown Two", Address: "12 Harbour Road"},
			setupMock: func() {
				m.companyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(companyModel.Company{ID: "company-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "company not registered",
			req:  dto.OpenBranchRequest{Name: "Downtown", Address: "12 Harbour Road"},
			setupMock: func() {
				m.companyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(companyModel.Company{}, nil)
			},
			wantErr: true,
		},
		{
			name: "exist check error",
			req:  dto.OpenBranchRequest{Name: "Downtown", Address: "12 Harbour Road"},
			setupMock: func() {
				m.companyRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(companyModel.Company{ID: "company-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Open(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cache hit",
			id:   "branch-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "cache miss, successful get from db",
			id:   "branch-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Branch{ID: "branch-id", Name: "Downtown"}, nil)
			},
			wantErr: false,
		},
		{
			name: "branch not found",
			id:   "nonexistent-id",
			setupMock: func() {
				m.cache.EXPECT().
					Get(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("cache miss"))

				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Branch{}, nil)
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

func TestBranchService_Close(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cascade through members",
			id:   "branch-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.vehicleRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.employeeRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.customerRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				m.repo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "branch not found",
			id:   "nonexistent-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "cascade failure rolls up",
			id:   "branch-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(errors.New("delete error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Close(ctx, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_SetManager(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	tests := []struct {
		name       string
		id         string
		employeeID string
		setupMock  func()
		wantErr    bool
	}{
		{
			// The manager id is stored without checking the employee table.
			name:       "manager id stored without employee lookup",
			id:         "branch-id",
			employeeID: "ghost-employee-id",
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "branch not found",
			id:         "nonexistent-id",
			employeeID: "employee-id",
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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.SetManager(ctx, tt.id, tt.employeeID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_AssignVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	otherBranch := "other-branch-id"

	tests := []struct {
		name      string
		vehicleID string
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "successful assignment",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "vehicle already assigned",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", BranchID: &otherBranch}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:      "vehicle not found",
			vehicleID: "nonexistent-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "branch not found",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id"}, nil)

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

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.AssignVehicle(ctx, "branch-id", tt.vehicleID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_RemoveVehicle(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	memberBranch := "branch-id"
	otherBranch := "other-branch-id"

	tests := []struct {
		name      string
		vehicleID string
		setupMock func()
		wantErr   bool
	}{
		{
			name:      "successful removal",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", BranchID: &memberBranch}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.vehicleRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "vehicle not a member",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name:      "vehicle member of another branch",
			vehicleID: "vehicle-id",
			setupMock: func() {
				m.vehicleRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(vehicleModel.Vehicle{ID: "vehicle-id", BranchID: &otherBranch}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.RemoveVehicle(ctx, "branch-id", tt.vehicleID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestBranchService_AssignCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newBranchService(ctrl)

	otherBranch := "other-branch-id"

	tests := []struct {
		name       string
		customerID string
		setupMock  func()
		wantErr    bool
	}{
		{
			name:       "successful assignment",
			customerID: "customer-id",
			setupMock: func() {
				m.customerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-id"}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.customerRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:       "customer already assigned",
			customerID: "customer-id",
			setupMock: func() {
				m.customerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{ID: "customer-id", BranchID: &otherBranch}, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.AssignCustomer(ctx, "branch-id", tt.customerID)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
