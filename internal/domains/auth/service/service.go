package service

import (
	"context"
	"fmt"
	"strings"

	"fleet/config"
	"fleet/infras/jwt"
	"fleet/infras/otel"
	"fleet/internal/domains/auth/model/dto"
	customerModel "fleet/internal/domains/customer/model"
	customerRepo "fleet/internal/domains/customer/repository"
	employeeModel "fleet/internal/domains/employee/model"
	employeeRepo "fleet/internal/domains/employee/repository"
	"fleet/shared"
	"fleet/shared/constant"
	"fleet/shared/failure"
	"fleet/shared/password"

	"github.com/rs/zerolog/log"
)

type Auth interface {
	RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) error
	LoginCustomer(ctx context.Context, req dto.LoginCustomerRequest) (dto.LoginResponse, error)
	LoginEmployee(ctx context.Context, req dto.LoginEmployeeRequest) (dto.LoginResponse, error)
	RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (dto.RefreshTokenResponse, error)
	ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error
}

type serviceImpl struct {
	customerRepo customerRepo.Customer
	employeeRepo employeeRepo.Employee
	cfg          *config.Config
	otel         otel.Otel
	jwtService   jwt.JWT
}

func New(customerRepo customerRepo.Customer, employeeRepo employeeRepo.Employee, cfg *config.Config, otel otel.Otel, jwt jwt.JWT) Auth {
	return &serviceImpl{
		customerRepo: customerRepo,
		employeeRepo: employeeRepo,
		cfg:          cfg,
		otel:         otel,
		jwtService:   jwt,
	}
}

// RegisterCustomer self-registers a customer. The full name is split on the
// first space into name and surname; a single-word name is rejected.
func (s *serviceImpl) RegisterCustomer(ctx context.Context, req dto.RegisterCustomerRequest) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RegisterCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	name, surname, ok := strings.Cut(strings.TrimSpace(req.FullName), " ")
	if !ok {
		return failure.UnprocessableEntity("full name must contain a name and a surname") // nolint:wrapcheck
	}

	taken, err := s.customerRepo.Exist(ctx, shared.FilterByID(req.Email, customerModel.FieldEmail, customerModel.TableName))
	if err != nil {
		log.Error().Err(err).Msg("failed to check customer email")

		return fmt.Errorf("failed to check customer email: %w", err)
	}

	if taken {
		return failure.Conflict(fmt.Sprintf("email %s already registered", req.Email)) // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.Password)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash password")

		return fmt.Errorf("failed to hash password: %w", err)
	}

	if err = s.customerRepo.Insert(ctx, req.ToCustomerModel(name, strings.TrimSpace(surname), hashed)); err != nil {
		log.Error().Err(err).Msg("failed to register customer")

		return fmt.Errorf("failed to register customer: %w", err)
	}

	return nil
}

func (s *serviceImpl) LoginCustomer(ctx context.Context, req dto.LoginCustomerRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginCustomer")
	defer scope.End()
	defer scope.TraceIfError(err)

	customer, err := s.customerRepo.Get(ctx, shared.FilterByID(req.Email, customerModel.FieldEmail, customerModel.TableName))
	if err != nil || customer.ID == constant.Empty {
		log.Warn().Str("email", req.Email).Msg("login attempt with non-existent email")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, customer.Password); err != nil {
		log.Warn().Str("email", req.Email).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid email or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(customer.ID, customer.Email, constant.RoleCustomer)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) LoginEmployee(ctx context.Context, req dto.LoginEmployeeRequest) (res dto.LoginResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".LoginEmployee")
	defer scope.End()
	defer scope.TraceIfError(err)

	employee, err := s.employeeRepo.Get(ctx, shared.FilterByID(req.Username, employeeModel.FieldUsername, employeeModel.TableName))
	if err != nil || employee.ID == constant.Empty {
		log.Warn().Str("username", req.Username).Msg("login attempt with non-existent username")

		return res, failure.BadRequestFromString("invalid username or password") // nolint:wrapcheck
	}

	if err := password.Verify(req.Password, employee.Password); err != nil {
		log.Warn().Str("username", req.Username).Msg("login attempt with wrong password")

		return res, failure.BadRequestFromString("invalid username or password") // nolint:wrapcheck
	}

	tokenPair, err := s.jwtService.GenerateTokenPair(employee.ID, employee.Username, employee.Position)
	if err != nil {
		log.Error().Err(err).Msg("failed to generate tokens")

		return res, fmt.Errorf("failed to generate tokens: %w", err)
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

func (s *serviceImpl) RefreshToken(ctx context.Context, req dto.RefreshTokenRequest) (res dto.RefreshTokenResponse, err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".RefreshToken")
	defer scope.End()
	defer scope.TraceIfError(err)

	tokenPair, err := s.jwtService.RefreshTokens(req.RefreshToken)
	if err != nil {
		log.Warn().Err(err).Msg("failed to refresh tokens")

		return res, failure.Unauthorized("invalid refresh token") // nolint:wrapcheck
	}

	res.FromTokenPair(tokenPair)

	return res, nil
}

// ChangePassword routes to the customer or employee table based on the
// caller's role claim.
func (s *serviceImpl) ChangePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) (err error) {
	ctx, scope := s.otel.NewScope(ctx, constant.OtelServiceScopeName, constant.OtelServiceScopeName+".ChangePassword")
	defer scope.End()
	defer scope.TraceIfError(err)

	role, _ := ctx.Value(constant.ContextKeyUserRole).(string)

	if role == constant.RoleCustomer {
		return s.changeCustomerPassword(ctx, req, userID)
	}

	return s.changeEmployeePassword(ctx, req, userID)
}

func (s *serviceImpl) changeCustomerPassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error {
	filter := shared.FilterByID(userID, customerModel.FieldID, customerModel.TableName)

	customer, err := s.customerRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get customer")

		return fmt.Errorf("failed to get customer: %w", err)
	}

	if customer.ID == constant.Empty {
		return failure.NotFoundEntity(customerModel.EntityName, userID) // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, customer.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, userID)

	if err = s.customerRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update customer password")

		return fmt.Errorf("failed to update customer password: %w", err)
	}

	return nil
}

func (s *serviceImpl) changeEmployeePassword(ctx context.Context, req dto.ChangePasswordRequest, userID string) error {
	filter := shared.FilterByID(userID, employeeModel.FieldID, employeeModel.TableName)

	employee, err := s.employeeRepo.Get(ctx, filter)
	if err != nil {
		log.Error().Err(err).Msg("failed to get employee")

		return fmt.Errorf("failed to get employee: %w", err)
	}

	if employee.ID == constant.Empty {
		return failure.NotFoundEntity(employeeModel.EntityName, userID) // nolint:wrapcheck
	}

	if err := password.Verify(req.CurrentPassword, employee.Password); err != nil {
		return failure.BadRequestFromString("current password is incorrect") // nolint:wrapcheck
	}

	hashed, err := password.Hash(req.NewPassword)
	if err != nil {
		log.Error().Err(err).Msg("failed to hash new password")

		return fmt.Errorf("failed to hash new password: %w", err)
	}

	updatedFields := shared.TransformFields(dto.UpdatePasswordRequest{Password: hashed}, userID)

	if err = s.employeeRepo.Update(ctx, updatedFields, filter); err != nil {
		log.Error().Err(err).Msg("failed to update employee password")

		return fmt.Errorf("failed to update employee password: %w", err)
	}

	return nil
}
