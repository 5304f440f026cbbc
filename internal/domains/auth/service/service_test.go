package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	"fleet/config"
	"fleet/infras/jwt"
	jwtMocks "fleet/infras/jwt/mocks"
	otelMocks "fleet/infras/otel/mocks"
	"fleet/internal/domains/auth/model/dto"
	"fleet/internal/domains/auth/service"
	customerMocks "fleet/internal/domains/customer/mocks"
	customerModel "fleet/internal/domains/customer/model"
	employeeMocks "fleet/internal/domains/employee/mocks"
	employeeModel "fleet/internal/domains/employee/model"
	"fleet/shared/constant"
	gModel "fleet/shared/model"
)

// bcrypt hash of "password".
const passwordHash = "$2a$10$92IXUNpkjO0rOQ5byMi.Ye4oKoEa3Ro9llC/.og/at2.uheWG/igi"

func newAuthService(ctrl *gomock.Controller) (service.Auth, *customerMocks.MockCustomer, *employeeMocks.MockEmployee, *jwtMocks.MockJWT) {
	mockCustomerRepo := customerMocks.NewMockCustomer(ctrl)
	mockEmployeeRepo := employeeMocks.NewMockEmployee(ctrl)
	mockJWT := jwtMocks.NewMockJWT(ctrl)

	cfg := &config.Config{}

	svc := service.New(mockCustomerRepo, mockEmployeeRepo, cfg, otelMocks.NewOtel(), mockJWT)

	return svc, mockCustomerRepo, mockEmployeeRepo, mockJWT
}

func TestAuthService_RegisterCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomerRepo, _, _ := newAuthService(ctrl)

	tests := []struct {
		name      string
		req       dto.RegisterCustomerRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful registration",
			req: dto.RegisterCustomerRequest{
				Email:    "jane@example.com",
				Password: "secret-password",
				FullName: "Jane Doe",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockCustomerRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					DoAndReturn(func(_ context.Context, customer customerModel.Customer) error {
						assert.Equal(t, "Jane", customer.Name)
						assert.Equal(t, "Doe", customer.Surname)

						return nil
					})
			},
			wantErr: false,
		},
		{
			name: "single word full name",
			req: dto.RegisterCustomerRequest{
				Email:    "jane@example.com",
				Password: "secret-password",
				FullName: "Jane",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "email already registered",
			req: dto.RegisterCustomerRequest{
				Email:    "jane@example.com",
				Password: "secret-password",
				FullName: "Jane Doe",
			},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			err := svc.RegisterCustomer(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_LoginCustomer(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomerRepo, _, mockJWT := newAuthService(ctrl)

	customer := customerModel.Customer{
		ID:    "customer-id",
		Email: "jane@example.com",
		Person: gModel.Person{
			Name:     "Jane",
			Surname:  "Doe",
			Password: passwordHash,
		},
	}

	tests := []struct {
		name      string
		req       dto.LoginCustomerRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login",
			req:  dto.LoginCustomerRequest{Email: "jane@example.com", Password: "password"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("customer-id", "jane@example.com", constant.RoleCustomer).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil)
			},
			wantErr: false,
		},
		{
			name: "wrong password",
			req:  dto.LoginCustomerRequest{Email: "jane@example.com", Password: "wrong-password"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customer, nil)
			},
			wantErr: true,
		},
		{
			name: "unknown email",
			req:  dto.LoginCustomerRequest{Email: "ghost@example.com", Password: "password"},
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.LoginCustomer(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
			}
		})
	}
}

func TestAuthService_LoginEmployee(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, mockEmployeeRepo, mockJWT := newAuthService(ctrl)

	employee := employeeModel.Employee{
		ID:       "employee-id",
		Username: "jdoe",
		Person: gModel.Person{
			Name:     "John",
			Surname:  "Doe",
			Password: passwordHash,
		},
		Position: constant.RoleAgent,
	}

	tests := []struct {
		name      string
		req       dto.LoginEmployeeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful login carries position as role",
			req:  dto.LoginEmployeeRequest{Username: "jdoe", Password: "password"},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employee, nil)

				mockJWT.EXPECT().
					GenerateTokenPair("employee-id", "jdoe", constant.RoleAgent).
					Return(&jwt.TokenPair{AccessToken: "access", RefreshToken: "refresh", ExpiresIn: 3600}, nil)
			},
			wantErr: false,
		},
		{
			name: "unknown username",
			req:  dto.LoginEmployeeRequest{Username: "ghost", Password: "password"},
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			res, err := svc.LoginEmployee(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
				assert.NotEmpty(t, res.AccessToken)
			}
		})
	}
}

func TestAuthService_RefreshToken(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, _, _, mockJWT := newAuthService(ctrl)

	tests := []struct {
		name      string
		req       dto.RefreshTokenRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful refresh",
			req:  dto.RefreshTokenRequest{RefreshToken: "valid-refresh-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("valid-refresh-token").
					Return(&jwt.TokenPair{AccessToken: "new-access", RefreshToken: "new-refresh", ExpiresIn: 3600}, nil)
			},
			wantErr: false,
		},
		{
			name: "invalid refresh token",
			req:  dto.RefreshTokenRequest{RefreshToken: "expired-token"},
			setupMock: func() {
				mockJWT.EXPECT().
					RefreshTokens("expired-token").
					Return(nil, errors.New("token expired"))
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			_, err := svc.RefreshToken(context.Background(), tt.req)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestAuthService_ChangePassword(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, mockCustomerRepo, mockEmployeeRepo, _ := newAuthService(ctrl)

	tests := []struct {
		name      string
		role      string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "customer password change",
			role: constant.RoleCustomer,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{
						ID:     "user-id",
						Person: gModel.Person{Password: passwordHash},
					}, nil)

				mockCustomerRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "employee password change",
			role: constant.RoleAgent,
			setupMock: func() {
				mockEmployeeRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(employeeModel.Employee{
						ID:     "user-id",
						Person: gModel.Person{Password: passwordHash},
					}, nil)

				mockEmployeeRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "wrong current password",
			role: constant.RoleCustomer,
			setupMock: func() {
				mockCustomerRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(customerModel.Customer{
						ID:     "user-id",
						Person: gModel.Person{Password: passwordHash},
					}, nil)
			},
			wantErr: true,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tt.setupMock()

			req := dto.ChangePasswordRequest{CurrentPassword: "password", NewPassword: "brand-new-password"}
			if tt.wantErr {
				req.CurrentPassword = "wrong-password"
			}

			ctx := context.WithValue(context.Background(), constant.ContextKeyUserRole, tt.role)
			err := svc.ChangePassword(ctx, req, "user-id")

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}
