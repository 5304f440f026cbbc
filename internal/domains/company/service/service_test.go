package service_test

import (
	"context"
	"encoding/base64"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fleet/config"
	otelMocks "fleet/infras/otel/mocks"
	txnMocks "fleet/infras/postgres/mocks"
	s3Mocks "fleet/infras/s3/mocks"
	branchMocks "fleet/internal/domains/branch/mocks"
	branchModel "fleet/internal/domains/branch/model"
	companyMocks "fleet/internal/domains/company/mocks"
	"fleet/internal/domains/company/model"
	"fleet/internal/domains/company/model/dto"
	"fleet/internal/domains/company/service"
	customerMocks "fleet/internal/domains/customer/mocks"
	employeeMocks "fleet/internal/domains/employee/mocks"
	reservationMocks "fleet/internal/domains/reservation/mocks"
	vehicleMocks "fleet/internal/domains/vehicle/mocks"
	"fleet/shared/constant"
	gModel "fleet/shared/model"
	"fleet/shared/timezone"
)

func newCompanyService(ctrl *gomock.Controller) (
	service.Company,
	*companyMocks.MockCompany,
	*branchMocks.MockBranch,
	*vehicleMocks.MockVehicle,
	*employeeMocks.MockEmployee,
	*customerMocks.MockCustomer,
	*reservationMocks.MockReservation,
	*s3Mocks.MockS3,
) {
	mockRepo := companyMocks.NewMockCompany(ctrl)
	mockBranchRepo := branchMocks.NewMockBranch(ctrl)
	mockVehicleRepo := vehicleMocks.NewMockVehicle(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockReservationRepo := reservationMocks.NewMockReservation(ctrl)
	mockS3 := s3Mocks.NewMockS3(ctrl)
	mockOtel := otelMocks.NewOtel()

	cfg := &config.Config{}

	svc := service.New(
		mockRepo,
		mockBranchRepo,
		mockVehicleRepo,
		mockEmployeeRepo,
		mockCustomerRepo,
		mockReservationRepo,
		txnMocks.NewTransactor(),
		mockS3,
		cfg,
		mockOtel,
	)

	return svc, mockRepo, mockBranchRepo, mockVehicleRepo, mockEmployeeRepo, mockCustomerRepo, mockReservationRepo, mockS3
}

func TestCompanyService_Register(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, _, _, _ := newCompanyService(ctrl)

	tests := []struct {
		name      string
		req       dto.CreateCompanyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.CreateCompanyRequest{
				Name:    "Roadrunner Rentals",
				Address: "1 Main Street",
				Owner:   "W. E. Coyote",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "company already registered",
			req: dto.CreateCompanyRequest{
				Name:    "Second Company",
				Address: "2 Main Street",
				Owner:   "Someone Else",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(1, nil)
			},
			wantErr: true,
		},
		{
			name: "count error",
			req: dto.CreateCompanyRequest{
				Name:    "Roadrunner Rentals",
				Address: "1 Main Street",
				Owner:   "W. E. Coyote",
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Count(gomock.Any(), gomock.Any()).
					Return(0, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Register(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompanyService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, _, _, _ := newCompanyService(ctrl)

	company := model.Company{
		ID:      "company-id",
		Name:    "Roadrunner Rentals",
		Address: "1 Main Street",
		Owner:   "W. E. Coyote",
		Metadata: gModel.Metadata{
			CreatedAt:  timezone.Now(),
			ModifiedAt: timezone.Now(),
			CreatedBy:  "test-user",
			ModifiedBy: "test-user",
		},
	}

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
		wantID    string
	}{
		{
			name: "successful get",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(company, nil)
			},
			wantErr: false,
			wantID:  "company-id",
		},
		{
			name: "company not registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, errors.New("database error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			result, err := svc.Get(context.Background())

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.Equal(t, tt.wantID, result.ID)
			}
		})
	}
}

func TestCompanyService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, _, _, _ := newCompanyService(ctrl)

	tests := []struct {
		name      string
		req       dto.UpdateCompanyRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateCompanyRequest{Name: "Renamed Rentals"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateCompanyRequest{},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "company not registered",
			req:  dto.UpdateCompanyRequest{Name: "Renamed Rentals"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			err := svc.Update(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompanyService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, mockBranchRepo, mockVehicleRepo, mockEmployeeRepo, mockCustomerRepo, mockReservationRepo, _ := newCompanyService(ctrl)

	tests := []struct {
		name      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "cascade through branches",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockBranchRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]branchModel.Branch{{ID: "branch-1"}, {ID: "branch-2"}}, nil)

				mockReservationRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockVehicleRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockEmployeeRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockCustomerRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockBranchRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)

				mockRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "no branches, company row only",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockBranchRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]branchModel.Branch{}, nil)

				mockRepo.EXPECT().
					DeleteTx(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "company not registered",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{}, nil)
			},
			wantErr: true,
		},
		{
			name: "cascade failure rolls up",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockBranchRepo.EXPECT().
					GetAll(gomock.Any(), gomock.Any(), gomock.Any()).
					Return([]branchModel.Branch{{ID: "branch-1"}}, nil)

				mockReservationRepo.EXPECT().
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
			err := svc.Delete(ctx)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestCompanyService_UploadLogo(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockRepo, _, _, _, _, _, mockS3 := newCompanyService(ctrl)

	logo := "data:image/png;base64," + base64.StdEncoding.EncodeToString([]byte("png-bytes"))

	tests := []struct {
		name      string
		req       dto.UploadLogoRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful upload",
			req:  dto.UploadLogoRequest{Logo: logo},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("https://cdn.example.com/company/logo/logo.png", nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid base64 payload",
			req:  dto.UploadLogoRequest{Logo: "data:image/png;base64,not-base64!!!"},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)
			},
			wantErr: true,
		},
		{
			name: "upload error",
			req:  dto.UploadLogoRequest{Logo: logo},
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Company{ID: "company-id"}, nil)

				mockS3.EXPECT().
					UploadFileBytes(gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any(), gomock.Any()).
					Return("", errors.New("upload error"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserID, "test-user-id")
			url, err := svc.UploadLogo(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, url)
			}
		})
	}
}
