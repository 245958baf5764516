package employeesalary_test

import (
	"context"
	"database/sql"
	"errors"
	"testing"
	"time"

	"ksa-hris/internal/employee"
	employeeerrors "ksa-hris/internal/employee/errors"
	"ksa-hris/internal/employeesalary"
	employeesalaryerrors "ksa-hris/internal/employeesalary/errors"

	"github.com/DATA-DOG/go-sqlmock"
	"github.com/google/uuid"
	"github.com/jackc/pgx/v5/pgconn"
	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
	"go.uber.org/zap"
	"gorm.io/gorm"
)

type fakeSalaryRepository struct {
	withTxFn              func(tx *sql.Tx) employeesalary.Repository
	createFn              func(ctx context.Context, salary *employeesalary.SalaryComponents) error
	findAllByCompanyFn    func(ctx context.Context, companyID string) ([]employeesalary.SalaryComponents, error)
	findByIDAndCompanyFn  func(ctx context.Context, companyID string, id string) (*employeesalary.SalaryComponents, error)
	findLatestByCompanyFn func(ctx context.Context, companyID string, asOf time.Time) ([]employeesalary.SalaryComponents, error)
}

func (f *fakeSalaryRepository) WithTx(tx *sql.Tx) employeesalary.Repository {
	if f.withTxFn != nil {
		return f.withTxFn(tx)
	}
	return f
}

func (f *fakeSalaryRepository) Create(ctx context.Context, salary *employeesalary.SalaryComponents) error {
	if f.createFn != nil {
		return f.createFn(ctx, salary)
	}
	return nil
}

func (f *fakeSalaryRepository) FindAllByCompany(ctx context.Context, companyID string) ([]employeesalary.SalaryComponents, error) {
	if f.findAllByCompanyFn != nil {
		return f.findAllByCompanyFn(ctx, companyID)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employeesalary.SalaryComponents, error) {
	if f.findByIDAndCompanyFn != nil {
		return f.findByIDAndCompanyFn(ctx, companyID, id)
	}
	return nil, nil
}

func (f *fakeSalaryRepository) FindLatestByCompany(ctx context.Context, companyID string, asOf time.Time) ([]employeesalary.SalaryComponents, error) {
	if f.findLatestByCompanyFn != nil {
		return f.findLatestByCompanyFn(ctx, companyID, asOf)
	}
	return nil, nil
}

type fakeEmployeeLookup struct {
	employees map[string]*employee.Employee
}

func (f *fakeEmployeeLookup) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*employee.Employee, error) {
	e, ok := f.employees[id]
	if !ok || e.CompanyID.String() != companyID {
		return nil, gorm.ErrRecordNotFound
	}
	return e, nil
}

type serviceDeps struct {
	db        *sql.DB
	sqlMock   sqlmock.Sqlmock
	service   employeesalary.Service
	repo      *fakeSalaryRepository
	employees *fakeEmployeeLookup
}

func setupServiceTest(t *testing.T) *serviceDeps {
	t.Helper()

	db, sqlMock, err := sqlmock.New()
	assert.NoError(t, err)

	repo := &fakeSalaryRepository{}
	employees := &fakeEmployeeLookup{employees: map[string]*employee.Employee{}}
	svc := employeesalary.NewService(db, repo, employees, zap.NewNop())

	return &serviceDeps{
		db:        db,
		sqlMock:   sqlMock,
		service:   svc,
		repo:      repo,
		employees: employees,
	}
}

func expectTx(t *testing.T, mock sqlmock.Sqlmock, commit bool) {
	t.Helper()
	mock.ExpectBegin()
	if commit {
		mock.ExpectCommit()
	} else {
		mock.ExpectRollback()
	}
}

func dec(s string) *decimal.Decimal {
	v := decimal.RequireFromString(s)
	return &v
}

func TestEmployeeSalaryService_Create(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyUUID := uuid.New()
	companyID := companyUUID.String()
	employeeID := uuid.New()
	actorID := uuid.New().String()
	deps.employees.employees[employeeID.String()] = &employee.Employee{ID: employeeID, CompanyID: companyUUID, FullName: "Noura Al-Harbi"}

	validReq := func() employeesalary.CreateEmployeeSalaryRequest {
		return employeesalary.CreateEmployeeSalaryRequest{
			EmployeeID:              employeeID.String(),
			BasicSalary:             dec("9000"),
			HousingAllowance:        decimal.RequireFromString("2250"),
			TransportationAllowance: decimal.RequireFromString("900"),
			EffectiveFrom:           "2026-02-01",
		}
	}

	t.Run("success", func(t *testing.T) {
		expectTx(t, deps.sqlMock, true)

		deps.repo.createFn = func(ctx context.Context, salary *employeesalary.SalaryComponents) error {
			assert.Equal(t, employeeID, salary.EmployeeID)
			assert.Equal(t, companyUUID, salary.CompanyID)
			assert.True(t, decimal.RequireFromString("9000").Equal(salary.BasicSalary))
			assert.Equal(t, "2026-02-01", salary.EffectiveFrom.Format("2006-01-02"))
			assert.Equal(t, actorID, salary.CreatedBy.String())
			return nil
		}
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid string, id string) (*employeesalary.SalaryComponents, error) {
			assert.Equal(t, companyID, cid)
			return &employeesalary.SalaryComponents{
				ID:                      uuid.MustParse(id),
				EmployeeID:              employeeID,
				EmployeeName:            "Noura Al-Harbi",
				BasicSalary:             decimal.RequireFromString("9000"),
				HousingAllowance:        decimal.RequireFromString("2250"),
				TransportationAllowance: decimal.RequireFromString("900"),
				EffectiveFrom:           time.Date(2026, 2, 1, 0, 0, 0, 0, time.UTC),
			}, nil
		}

		resp, err := deps.service.Create(ctx, companyID, actorID, validReq())

		assert.NoError(t, err)
		assert.Equal(t, employeeID.String(), resp.EmployeeID)
		assert.Equal(t, "Noura Al-Harbi", resp.EmployeeName)
		assert.True(t, decimal.RequireFromString("12150").Equal(resp.TotalEarnings))
		assert.Equal(t, "2026-02-01", resp.EffectiveFrom)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("invalid employee id", func(t *testing.T) {
		req := validReq()
		req.EmployeeID = "invalid-uuid"

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, employeeerrors.ErrInvalidEmployeeID)
	})

	t.Run("negative allowance", func(t *testing.T) {
		req := validReq()
		req.OtherAllowances = decimal.RequireFromString("-1")

		_, err := deps.service.Create(ctx, companyID, actorID, req)

		assert.ErrorIs(t, err, employeesalaryerrors.ErrNegativeAmount)
	})

	t.Run("employee of another company", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		_, err := deps.service.Create(ctx, uuid.New().String(), actorID, validReq())

		assert.ErrorIs(t, err, employeeerrors.ErrEmployeeNotFound)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("duplicate effective date", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, salary *employeesalary.SalaryComponents) error {
			return &pgconn.PgError{Code: "23505", ConstraintName: "uq_employee_salary_effective"}
		}

		_, err := deps.service.Create(ctx, companyID, actorID, validReq())

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryEffectiveDateAlreadyExists)
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})

	t.Run("repo create error", func(t *testing.T) {
		expectTx(t, deps.sqlMock, false)

		deps.repo.createFn = func(ctx context.Context, salary *employeesalary.SalaryComponents) error {
			return errors.New("db error")
		}

		_, err := deps.service.Create(ctx, companyID, actorID, validReq())

		assert.EqualError(t, err, "db error")
		assert.NoError(t, deps.sqlMock.ExpectationsWereMet())
	})
}

func TestEmployeeSalaryService_GetAll(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()
	employeeID := uuid.New()

	t.Run("success", func(t *testing.T) {
		deps.repo.findAllByCompanyFn = func(ctx context.Context, cid string) ([]employeesalary.SalaryComponents, error) {
			assert.Equal(t, companyID, cid)
			return []employeesalary.SalaryComponents{
				{
					ID:            uuid.New(),
					EmployeeID:    employeeID,
					BasicSalary:   decimal.RequireFromString("10000"),
					EffectiveFrom: time.Date(2026, 1, 1, 0, 0, 0, 0, time.UTC),
				},
			}, nil
		}

		resp, err := deps.service.GetAll(ctx, companyID)

		assert.NoError(t, err)
		assert.Len(t, resp, 1)
		assert.Equal(t, employeeID.String(), resp[0].EmployeeID)
		assert.True(t, decimal.RequireFromString("10000").Equal(resp[0].TotalEarnings))
	})

	t.Run("repo error", func(t *testing.T) {
		deps.repo.findAllByCompanyFn = func(ctx context.Context, cid string) ([]employeesalary.SalaryComponents, error) {
			return nil, errors.New("db error")
		}

		_, err := deps.service.GetAll(ctx, companyID)

		assert.Error(t, err)
	})
}

func TestEmployeeSalaryService_GetByID(t *testing.T) {
	deps := setupServiceTest(t)
	defer deps.db.Close()

	ctx := context.Background()
	companyID := uuid.New().String()

	t.Run("not found", func(t *testing.T) {
		deps.repo.findByIDAndCompanyFn = func(ctx context.Context, cid string, id string) (*employeesalary.SalaryComponents, error) {
			return nil, gorm.ErrRecordNotFound
		}

		_, err := deps.service.GetByID(ctx, companyID, uuid.New().String())

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
	})

	t.Run("malformed id", func(t *testing.T) {
		_, err := deps.service.GetByID(ctx, companyID, "abc")

		assert.ErrorIs(t, err, employeesalaryerrors.ErrSalaryNotFound)
	})
}
