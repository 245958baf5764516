package debt

import (
	"context"
	"database/sql"

	"ksa-hris/internal/shared/txdb"
	"ksa-hris/internal/tenant"

	"gorm.io/gorm"
)

var (
	activeLoanStatuses    = []string{StatusActive}
	activeAdvanceStatuses = []string{StatusActive, StatusApproved}
)

//go:generate mockgen -source=debt_repo.go -destination=mock/debt_repo_mock.go -package=mock
type Repository interface {
	WithTx(tx *sql.Tx) Repository
	// An empty employeeIDs means every employee of the company.
	FindActiveLoans(ctx context.Context, companyID string, employeeIDs []string) ([]Loan, error)
	FindActiveAdvances(ctx context.Context, companyID string, employeeIDs []string) ([]Advance, error)
}

type repository struct {
	db *gorm.DB
	tx *sql.Tx
}

func NewRepository(db *gorm.DB) Repository {
	return &repository{db: db}
}

func (r *repository) WithTx(tx *sql.Tx) Repository {
	return &repository{db: r.db, tx: tx}
}

func (r *repository) FindActiveLoans(ctx context.Context, companyID string, employeeIDs []string) ([]Loan, error) {
	var loans []Loan
	q := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", activeLoanStatuses).
		Where("remaining_amount > 0")
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}
	err := q.Order("created_at ASC").Find(&loans).Error
	return loans, err
}

func (r *repository) FindActiveAdvances(ctx context.Context, companyID string, employeeIDs []string) ([]Advance, error) {
	var advances []Advance
	q := txdb.Conn(ctx, r.db, r.tx).
		Scopes(tenant.Scope(companyID)).
		Where("status IN ?", activeAdvanceStatuses).
		Where("remaining_amount > 0")
	if len(employeeIDs) > 0 {
		q = q.Where("employee_id IN ?", employeeIDs)
	}
	err := q.Order("created_at ASC").Find(&advances).Error
	return advances, err
}

// LoadSnapshot reads loans and advances for the given employees.
func LoadSnapshot(ctx context.Context, repo Repository, companyID string, employeeIDs []string) (Snapshot, error) {
	loans, err := repo.FindActiveLoans(ctx, companyID, employeeIDs)
	if err != nil {
		return Snapshot{}, err
	}
	advances, err := repo.FindActiveAdvances(ctx, companyID, employeeIDs)
	if err != nil {
		return Snapshot{}, err
	}

	snap := Snapshot{
		Loans:    make([]Outstanding, 0, len(loans)),
		Advances: make([]Outstanding, 0, len(advances)),
	}
	for _, l := range loans {
		snap.Loans = append(snap.Loans, l.Outstanding())
	}
	for _, a := range advances {
		snap.Advances = append(snap.Advances, a.Outstanding())
	}
	return snap, nil
}
