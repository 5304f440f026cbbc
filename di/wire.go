//go:build wireinject
// +build wireinject

package di

import (
	"fleet/config"
	"fleet/infras/jwt"
	"fleet/infras/kafka"
	"fleet/infras/otel"
	"fleet/infras/postgres"
	"fleet/infras/redis"
	"fleet/infras/s3"
	"fleet/permissions"
	"fleet/shared/cache"
	"fleet/transport/http"
	"fleet/transport/http/middleware"
	"fleet/transport/http/router"

	"github.com/google/wire"

	authService "fleet/internal/domains/auth/service"
	branchRepository "fleet/internal/domains/branch/repository"
	branchService "fleet/internal/domains/branch/service"
	companyRepository "fleet/internal/domains/company/repository"
	companyService "fleet/internal/domains/company/service"
	customerRepository "fleet/internal/domains/customer/repository"
	customerService "fleet/internal/domains/customer/service"
	employeeRepository "fleet/internal/domains/employee/repository"
	employeeService "fleet/internal/domains/employee/service"
	rentalRepository "fleet/internal/domains/rentals/repository"
	rentalService "fleet/internal/domains/rentals/service"
	reservationRepository "fleet/internal/domains/reservation/repository"
	reservationService "fleet/internal/domains/reservation/service"
	returnRepository "fleet/internal/domains/returns/repository"
	returnService "fleet/internal/domains/returns/service"
	revenueRepository "fleet/internal/domains/revenue/repository"
	revenueService "fleet/internal/domains/revenue/service"
	vehicleRepository "fleet/internal/domains/vehicle/repository"
	vehicleService "fleet/internal/domains/vehicle/service"

	authHandler "fleet/internal/handlers/auth"
	branchHandler "fleet/internal/handlers/branch"
	companyHandler "fleet/internal/handlers/company"
	customerHandler "fleet/internal/handlers/customer"
	employeeHandler "fleet/internal/handlers/employee"
	rentalHandler "fleet/internal/handlers/rentals"
	reservationHandler "fleet/internal/handlers/reservation"
	returnHandler "fleet/internal/handlers/returns"
	revenueHandler "fleet/internal/handlers/revenue"
	vehicleHandler "fleet/internal/handlers/vehicle"
)

var configurations = wire.NewSet(
	config.Get,
	permissions.Get,
)

var infrastructures = wire.NewSet(
	postgres.New,
	wire.Bind(new(postgres.Transactor), new(*postgres.Connection)),
	otel.New,
	redis.New,
	jwt.New,
	kafka.New,
	s3.New,
)

var middlewares = wire.NewSet(
	middleware.NewAppMiddleware,
	middleware.NewAuthRoleMiddleware,
)

var sharedHelpers = wire.NewSet(
	cache.NewRedisCache,
)

var companyDomain = wire.NewSet(
	companyRepository.New,
	companyService.New,
)

var branchDomain = wire.NewSet(
	branchRepository.New,
	branchService.New,
)

var vehicleDomain = wire.NewSet(
	vehicleRepository.New,
	vehicleService.New,
)

var employeeDomain = wire.NewSet(
	employeeRepository.New,
	employeeService.New,
)

var customerDomain = wire.NewSet(
	customerRepository.New,
	customerService.New,
)

var reservationDomain = wire.NewSet(
	reservationRepository.New,
	reservationService.New,
)

var rentalDomain = wire.NewSet(
	rentalRepository.New,
	rentalService.New,
)

var returnDomain = wire.NewSet(
	returnRepository.New,
	returnService.New,
)

var revenueDomain = wire.NewSet(
	revenueRepository.New,
	revenueService.New,
)

var authDomain = wire.NewSet(
	authService.New,
)

var domains = wire.NewSet(
	companyDomain,
	branchDomain,
	vehicleDomain,
	employeeDomain,
	customerDomain,
	reservationDomain,
	rentalDomain,
	returnDomain,
	revenueDomain,
	authDomain,
)

var routing = wire.NewSet(
	wire.Struct(new(router.DomainHandlers), "*"),
	authHandler.New,
	companyHandler.New,
	branchHandler.New,
	vehicleHandler.New,
	employeeHandler.New,
	customerHandler.New,
	reservationHandler.New,
	rentalHandler.New,
	returnHandler.New,
	revenueHandler.New,
	router.New,
)

func InitializeService() *http.HTTP {
	wire.Build(
		configurations,
		infrastructures,
		middlewares,
		sharedHelpers,
		domains,
		routing,
		http.New,
	)

	return &http.HTTP{}
}
