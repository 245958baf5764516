package eos

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft    = "draft"
	StatusApproved = "approved"
	StatusPaid     = "paid"
)

// Calculation is a persisted gratuity. Status only moves forward.
type Calculation struct {
	ID                uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID         uuid.UUID       `gorm:"type:uuid;not null;index:idx_eos_company_status"`
	EmployeeID        uuid.UUID       `gorm:"type:uuid;not null;index"`
	HireDate          time.Time       `gorm:"type:date;not null"`
	TerminationDate   time.Time       `gorm:"type:date;not null"`
	ContractType      string          `gorm:"type:varchar(20);not null"`
	TerminationReason string          `gorm:"type:varchar(40);not null"`
	BasicSalary       decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	ServiceYears      int
	ServiceMonths     int
	ServiceDays       int
	AccrualPolicy     string          `gorm:"type:varchar(20);not null"`
	GrossBenefit      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	LoansDeduction    decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AdvancesDeduction decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetBenefit        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	Status            string          `gorm:"type:varchar(20);not null;default:'draft';index:idx_eos_company_status"`
	CreatedBy         *uuid.UUID      `gorm:"type:uuid"`
	ApprovedBy        *uuid.UUID      `gorm:"type:uuid"`
	ApprovedAt        *time.Time
	PaidAt            *time.Time
	CreatedAt         time.Time
	UpdatedAt         time.Time

	Breakdown []BreakdownEntry `gorm:"foreignKey:CalculationID"`
}

func (Calculation) TableName() string {
	return "eos_calculations"
}

type BreakdownEntry struct {
	ID            uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CalculationID uuid.UUID       `gorm:"type:uuid;not null;index"`
	Year          int             `gorm:"not null"`
	Months        int             `gorm:"not null"`
	Rate          decimal.Decimal `gorm:"type:numeric(4,2);not null"`
	Amount        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
}

func (BreakdownEntry) TableName() string {
	return "eos_breakdowns"
}

// nextStatus lists the only transition allowed out of each status.
var nextStatus = map[string]string{
	StatusDraft:    StatusApproved,
	StatusApproved: StatusPaid,
}

func canTransition(from, to string) bool {
	return nextStatus[from] == to
}
