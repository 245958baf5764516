// Package debt reads employee loan and salary-advance ledgers. Balances are
// maintained by the finance workflow; this service never writes them.
package debt

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusPending   = "pending"
	StatusActive    = "active"
	StatusApproved  = "approved"
	StatusCompleted = "completed"
	StatusCancelled = "cancelled"
)

type Loan struct {
	ID                 uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID          uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID         uuid.UUID       `gorm:"type:uuid;index"`
	PrincipalAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	RemainingAmount    decimal.Decimal `gorm:"type:numeric(14,2)"`
	MonthlyInstallment decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status             string
	CreatedAt          time.Time
	UpdatedAt          time.Time
}

func (Loan) TableName() string {
	return "employee_loans"
}

type Advance struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;index"`
	EmployeeID      uuid.UUID       `gorm:"type:uuid;index"`
	Amount          decimal.Decimal `gorm:"type:numeric(14,2)"`
	RemainingAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	DeductionAmount decimal.Decimal `gorm:"type:numeric(14,2)"`
	Status          string
	CreatedAt       time.Time
	UpdatedAt       time.Time
}

func (Advance) TableName() string {
	return "salary_advances"
}

// Outstanding is the common view EOS and payroll work with.
type Outstanding struct {
	ID                uuid.UUID
	EmployeeID        uuid.UUID
	RemainingAmount   decimal.Decimal
	InstallmentAmount decimal.Decimal
}

func (l Loan) Outstanding() Outstanding {
	return Outstanding{
		ID:                l.ID,
		EmployeeID:        l.EmployeeID,
		RemainingAmount:   l.RemainingAmount,
		InstallmentAmount: l.MonthlyInstallment,
	}
}

func (a Advance) Outstanding() Outstanding {
	return Outstanding{
		ID:                a.ID,
		EmployeeID:        a.EmployeeID,
		RemainingAmount:   a.RemainingAmount,
		InstallmentAmount: a.DeductionAmount,
	}
}

// Installment is what one payroll run collects: the scheduled amount, never
// more than what is still owed.
func (o Outstanding) Installment() decimal.Decimal {
	if o.RemainingAmount.LessThan(o.InstallmentAmount) {
		return o.RemainingAmount
	}
	return o.InstallmentAmount
}

// Snapshot is every active loan and advance of a set of employees.
type Snapshot struct {
	Loans    []Outstanding
	Advances []Outstanding
}

// ForEmployee filters the snapshot to one employee.
func (s Snapshot) ForEmployee(employeeID uuid.UUID) (loans, advances []Outstanding) {
	for _, l := range s.Loans {
		if l.EmployeeID == employeeID {
			loans = append(loans, l)
		}
	}
	for _, a := range s.Advances {
		if a.EmployeeID == employeeID {
			advances = append(advances, a)
		}
	}
	return loans, advances
}
