package service_test

import (
	"context"
	"errors"
	"net/http"
	"testing"

	"github.com/stretchr/testify/assert"
	"go.uber.org/mock/gomock"

	kafkaMocks "fleet/infras/kafka/mocks"
	otelMocks "fleet/infras/otel/mocks"
	employeeMocks "fleet/internal/domains/employee/mocks"
	rentalMocks "fleet/internal/domains/rentals/mocks"
	"fleet/internal/domains/rentals/model"
	"fleet/internal/domains/rentals/model/dto"
	"fleet/internal/domains/rentals/service"
	reservationMocks "fleet/internal/domains/reservation/mocks"
	"fleet/shared/constant"
	"fleet/shared/failure"
)

type rentalServiceMocks struct {
	repo            *rentalMocks.MockRental
	employeeRepo    *employeeMocks.MockEmployee
	reservationRepo *reservationMocks.MockReservation
	broker          *kafkaMocks.MockClient
}

func newRentalService(ctrl *gomock.Controller) (service.Rental, rentalServiceMocks) {
	m := rentalServiceMocks{
		repo:            rentalMocks.NewMockRental(ctrl),
		employeeRepo:    employeeMocks.NewMockEmployee(ctrl),
		reservationRepo: reservationMocks.NewMockReservation(ctrl),
		broker:          kafkaMocks.NewMockClient(ctrl),
	}

	// Event publishing runs on a background goroutine.
	m.broker.EXPECT().
		SendMessages(gomock.Any(), gomock.Any(), gomock.Any()).
		Return(nil).
		AnyTimes()

	svc := service.New(m.repo, m.employeeRepo, m.reservationRepo, m.broker, otelMocks.NewOtel())

	return svc, m
}

func TestRentalService_Record(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRentalService(ctrl)

	req := dto.CreateRentalRequest{
		ReservationID: "reservation-id",
		EmployeeID:    "employee-id",
		Comments:      "keys handed over",
		RentalDate:    "2024-01-01",
	}

	tests := []struct {
		name        string
		req         dto.CreateRentalRequest
		setupMock   func()
		wantErr     bool
		wantMessage string
	}{
		{
			name: "successful hand-over",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.employeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(nil)
			},
			wantErr: false,
		},
		{
			name: "rent already exists for reservation",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr:     true,
			wantMessage: "Rent already exists for reservation #reservation-id",
		},
		{
			name: "repository error",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.employeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.repo.EXPECT().
					Insert(gomock.Any(), gomock.Any()).
					Return(errors.New("insert error"))
			},
			wantErr: true,
		},
		{
			name: "employee not found",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.employeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "reservation not found",
			req:  req,
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.employeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)
			},
			wantErr: true,
		},
		{
			name: "invalid rental date",
			req: dto.CreateRentalRequest{
				ReservationID: "reservation-id",
				EmployeeID:    "employee-id",
				RentalDate:    "01-01-2024",
			},
			setupMock: func() {
				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(false, nil)

				m.employeeRepo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)

				m.reservationRepo.EXPECT().
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
			err := svc.Record(ctx, tt.req)

			if tt.wantErr {
				assert.Error(t, err)

				if tt.wantMessage != "" {
					var fail *failure.Failure
					assert.True(t, errors.As(err, &fail))
					assert.Equal(t, http.StatusConflict, fail.Code)
					assert.Equal(t, tt.wantMessage, fail.Message)
				}
			} else {
				assert.NoError(t, err)
			}
		})
	}
}

func TestRentalService_Update(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRentalService(ctrl)

	stored := model.RentalAgreement{
		ID:            "rental-id",
		ReservationID: "reservation-id",
		EmployeeID:    "employee-id",
	}

	tests := []struct {
		name      string
		req       dto.UpdateRentalRequest
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			// The duplicate guard does not exclude the record being edited,
			// so editing an existing agreement always conflicts.
			name: "edit conflicts with own reservation",
			req:  dto.UpdateRentalRequest{Comments: "late pickup"},
			id:   "rental-id",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(stored, nil)

				m.repo.EXPECT().
					Exist(gomock.Any(), gomock.Any()).
					Return(true, nil)
			},
			wantErr: true,
		},
		{
			name: "rental not found",
			req:  dto.UpdateRentalRequest{Comments: "late pickup"},
			id:   "nonexistent-id",
			setupMock: func() {
				m.repo.EXPECT().
					Get(gomock.Any(), gomock.Any()).
					Return(model.RentalAgreement{}, nil)
			},
			wantErr: true,
		},
		{
			name:      "empty update request",
			req:       dto.UpdateRentalRequest{},
			id:        "rental-id",
			setupMock: func() {},
			wantErr:   true,
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

func TestRentalService_Delete(t *testing.T) {
	ctrl := gomock.NewController(t)
	defer ctrl.Finish()

	svc, m := newRentalService(ctrl)

	tests := []struct {
		name      string
		id        string
		setupMock func()
		wantErr   bool
	}{
		{
			name: "successful deletion",
			id:   "rental-id",
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
			name: "rental not found",
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
