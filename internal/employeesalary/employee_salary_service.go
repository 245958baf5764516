package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"ksa-hris/internal/employee"
	employeeerrors "ksa-hris/internal/employee/errors"
	employeesalaryerrors "ksa-hris/internal/employeesalary/errors"
	"ksa-hris/internal/shared/contextutil"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
	"go.uber.org/zap"
)

// EmployeeLookup is satisfied by employee.Repository.
type EmployeeLookup interface {
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error)
}

//go:generate mockgen -source=employee_salary_service.go -destination=mock/employee_salary_service_mock.go -package=mock
type Service interface {
	Create(ctx context.Context, companyID, actorID string, req CreateEmployeeSalaryRequest) (EmployeeSalaryResponse, error)
	GetAll(ctx context.Context, companyID string) ([]EmployeeSalaryResponse, error)
	GetByID(ctx context.Context, companyID, id string) (EmployeeSalaryResponse, error)
}

type service struct {
	db        *sql.DB
	repo      Repository
	employees EmployeeLookup
	logger    *zap.Logger
}

func NewService(db *sql.DB, repo Repository, employees EmployeeLookup, logger ...*zap.Logger) Service {
	l := zap.L().Named("employeesalary.service")
	if len(logger) > 0 && logger[0] != nil {
		l = logger[0].Named("employeesalary.service")
	}
	return &service{db: db, repo: repo, employees: employees, logger: l}
}

func (s *service) Create(
	ctx context.Context,
	companyID, actorID string,
	req CreateEmployeeSalaryRequest,
) (EmployeeSalaryResponse, error) {
	log := contextutil.GetLogger(ctx, s.logger)

	employeeID, err := uuid.Parse(req.EmployeeID)
	if err != nil {
		return EmployeeSalaryResponse{}, employeeerrors.ErrInvalidEmployeeID
	}

	effectiveFrom, err := time.Parse("2006-01-02", req.EffectiveFrom)
	if err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrInvalidEffectiveDate
	}

	basic := decimal.Zero
	if req.BasicSalary != nil {
		basic = *req.BasicSalary
	}
	for _, amount := range []decimal.Decimal{basic, req.HousingAllowance, req.TransportationAllowance, req.OtherAllowances} {
		if amount.IsNegative() {
			return EmployeeSalaryResponse{}, employeesalaryerrors.ErrNegativeAmount
		}
	}

	tx, err := s.db.BeginTx(ctx, nil)
	if err != nil {
		return EmployeeSalaryResponse{}, err
	}
	defer tx.Rollback()

	emp, err := s.employees.FindByIDAndCompany(ctx, companyID, employeeID.String())
	if err != nil {
		return EmployeeSalaryResponse{}, employee.MapRepositoryError(err)
	}

	salary := &SalaryComponents{
		ID:                      uuid.New(),
		CompanyID:               emp.CompanyID,
		EmployeeID:              employeeID,
		BasicSalary:             basic.Round(2),
		HousingAllowance:        req.HousingAllowance.Round(2),
		TransportationAllowance: req.TransportationAllowance.Round(2),
		OtherAllowances:         req.OtherAllowances.Round(2),
		EffectiveFrom:           effectiveFrom,
	}
	if actor, err := uuid.Parse(actorID); err == nil {
		salary.CreatedBy = &actor
	}

	qtx := s.repo.WithTx(tx)
	if err := qtx.Create(ctx, salary); err != nil {
		log.Warn("create salary record failed", zap.String("employee_id", req.EmployeeID), zap.Error(err))
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	created, err := qtx.FindByIDAndCompany(ctx, companyID, salary.ID.String())
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	if err := tx.Commit(); err != nil {
		return EmployeeSalaryResponse{}, err
	}

	log.Info("salary record created",
		zap.String("salary_id", salary.ID.String()),
		zap.String("employee_id", req.EmployeeID),
		zap.String("effective_from", req.EffectiveFrom),
	)

	return mapToResponse(*created), nil
}

func (s *service) GetAll(
	ctx context.Context,
	companyID string,
) ([]EmployeeSalaryResponse, error) {
	salaries, err := s.repo.FindAllByCompany(ctx, companyID)
	if err != nil {
		return nil, mapRepositoryError(err)
	}

	return mapToListResponse(salaries), nil
}

func (s *service) GetByID(
	ctx context.Context,
	companyID, id string,
) (EmployeeSalaryResponse, error) {
	if _, err := uuid.Parse(id); err != nil {
		return EmployeeSalaryResponse{}, employeesalaryerrors.ErrSalaryNotFound
	}

	salary, err := s.repo.FindByIDAndCompany(ctx, companyID, id)
	if err != nil {
		return EmployeeSalaryResponse{}, mapRepositoryError(err)
	}

	return mapToResponse(*salary), nil
}
