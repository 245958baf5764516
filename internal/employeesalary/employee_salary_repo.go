package employeesalary

import (
	"context"
	"database/sql"
	"time"

	"ksa-hris/internal/shared/txdb"

	"gorm.io/gorm"
)

//go:generate mockgen -source=employee_salary_repo.go -destination=mock/employee_salary_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	Create(ctx context.Context, salary *SalaryComponents) error
	FindAllByCompany(ctx context.Context, companyID string) ([]SalaryComponents, error)
	FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryComponents, error)
	// FindLatestByCompany returns, per employee, the record with the greatest
	// effective_from not after asOf.
	FindLatestByCompany(ctx context.Context, companyID string, asOf time.Time) ([]SalaryComponents, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{
		db: r.db,
		tx: tx,
	}
}

func (r *repository) Create(ctx context.Context, salary *SalaryComponents) error {
	return txdb.Conn(ctx, r.db, r.tx).Create(salary).Error
}

func (r *repository) FindAllByCompany(ctx context.Context, companyID string) ([]SalaryComponents, error) {
	var salaries []SalaryComponents
	query := `
SELECT
	employee_salaries.*,
	employees.full_name AS employee_name
FROM employee_salaries
JOIN employees ON employees.id = employee_salaries.employee_id
WHERE employee_salaries.company_id = ?
ORDER BY
	employees.full_name ASC,
	employee_salaries.effective_from DESC,
	employee_salaries.created_at DESC
`

	err := txdb.Conn(ctx, r.db, r.tx).Raw(query, companyID).Scan(&salaries).Error
	return salaries, err
}

func (r *repository) FindByIDAndCompany(ctx context.Context, companyID string, id string) (*SalaryComponents, error) {
	var salary SalaryComponents
	err := txdb.Conn(ctx, r.db, r.tx).
		Table("employee_salaries").
		Select("employee_salaries.*, employees.full_name AS employee_name").
		Joins("JOIN employees ON employees.id = employee_salaries.employee_id").
		Where("employee_salaries.id = ?", id).
		Where("employee_salaries.company_id = ?", companyID).
		Take(&salary).Error
	if err != nil {
		return nil, err
	}
	return &salary, nil
}

func (r *repository) FindLatestByCompany(ctx context.Context, companyID string, asOf time.Time) ([]SalaryComponents, error) {
	var salaries []SalaryComponents
	query := `
SELECT DISTINCT ON (employee_id) *
FROM employee_salaries
WHERE company_id = ? AND effective_from <= ?
ORDER BY employee_id, effective_from DESC, created_at DESC
`

	err := txdb.Conn(ctx, r.db, r.tx).Raw(query, companyID, asOf).Scan(&salaries).Error
	return salaries, err
}
