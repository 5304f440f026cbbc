package service_test

import (
	"context"
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	otelMocks "fleet/infras/otel/mocks"
	employeeMocks "fleet/internal/domains/employee/mocks"
	"fleet/internal/domains/employee/model"
	"fleet/internal/domains/employee/model/dto"
	"fleet/internal/domains/employee/service"
	"fleet/shared/constant"
)

func TestEmployeeService_Create(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.CreateEmployeeRequest
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful creation",
			req: dto.CreateEmployeeRequest{
				Username: "jdoe",
				Password: "secret-password",
				Name:     "John",
				Surname:  "Doe",
				Position: constant.RoleAgent,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "invalid position",
			req: dto.CreateEmployeeRequest{
				Username: "jdoe",
				Password: "secret-password",
				Name:     "John",
				Surname:  "Doe",
				Position: "janitor",
			},
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "username taken",
			req: dto.CreateEmployeeRequest{
				Username: "jdoe",
				Password: "secret-password",
				Name:     "John",
				Surname:  "Doe",
				Position: constant.RoleManager,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "repository error",
			req: dto.CreateEmployeeRequest{
				Username: "jdoe",
				Password: "secret-password",
				Name:     "John",
				Surname:  "Doe",
				Position: constant.RoleMechanic,
			},
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				mockRepo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("database error"))
			},
			wantErr: true,
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

func TestEmployeeService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	tests := []struct {
		name      string
		req       dto.UpdateEmployeeRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful update",
			req:  dto.UpdateEmployeeRequest{Position: constant.RoleManager},
			id:   "employee-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				mockRepo.EXPECT().
					Update(gomock.Any(), gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name:      "invalid position",
			req:       dto.UpdateEmployeeRequest{Position: "janitor"},
			id:        "employee-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateEmployeeRequest{},
			id:        "employee-id",
			setupMock: func() {},
			wantErr:   true,
		},
		{
			name: "employee not found",
			req:  dto.UpdateEmployeeRequest{Name: "Jane"},
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
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
			err := svc.Update(ctx, tt.req, tt.id)

			if tt.wantErr {
				assert.Error(t, err)
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestEmployeeService_Get(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	mockRepo := employeeMocks.NewMockEmployee(ctrl)
	svc := service.New(mockRepo, otelMocks.NewOtel())

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful get",
			id:   "employee-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Employee{ID: "employee-id", Username: "jdoe"}, nil)
			},
			wantErr: false,
		},
		{
			name: "employee not found",
			id:   "nonexistent-id",
			setupMock: func() {
				mockRepo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.Employee{}, nil)
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
