package payroll

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	StatusDraft           = "draft"
	StatusPendingApproval = "pending_approval"
	StatusApproved        = "approved"
	StatusProcessed       = "processed"
	StatusPaid            = "paid"
)

// BatchUniqueConstraint guards one batch per company and month.
const BatchUniqueConstraint = "uq_payroll_batch_company_month"

// nextStatus is the whole lifecycle; there is no way back.
var nextStatus = map[string]string{
	StatusDraft:           StatusPendingApproval,
	StatusPendingApproval: StatusApproved,
	StatusApproved:        StatusProcessed,
	StatusProcessed:       StatusPaid,
}

func CanTransition(from, to string) bool {
	return nextStatus[from] == to
}

type Batch struct {
	ID              uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID       uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_payroll_batch_company_month"`
	Month           string          `gorm:"type:varchar(7);not null;uniqueIndex:uq_payroll_batch_company_month"`
	PeriodStart     time.Time       `gorm:"type:date;not null"`
	PeriodEnd       time.Time       `gorm:"type:date;not null"`
	Status          string          `gorm:"type:varchar(20);not null;default:'draft';index"`
	TotalGross      decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalNet        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalEmployees  int             `gorm:"not null"`

	CreatedBy   *uuid.UUID `gorm:"type:uuid"`
	SubmittedAt *time.Time
	ApprovedBy  *uuid.UUID `gorm:"type:uuid"`
	ApprovedAt  *time.Time
	ProcessedAt *time.Time
	PaidAt      *time.Time
	CreatedAt   time.Time
	UpdatedAt   time.Time

	Items []Item `gorm:"foreignKey:BatchID"`
}

func (Batch) TableName() string {
	return "payroll_batches"
}

// Item is one employee's pay for the batch month.
// NetSalary == TotalEarnings - TotalDeductions always holds.
type Item struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	BatchID                 uuid.UUID       `gorm:"type:uuid;not null;index"`
	CompanyID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID              uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeName            string          `gorm:"type:varchar(200)"`
	BasicSalary             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HousingAllowance        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TransportationAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	OtherAllowances         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalEarnings           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	GOSIEmployee            decimal.Decimal `gorm:"column:gosi_employee;type:numeric(14,2);not null"`
	GOSIEmployer            decimal.Decimal `gorm:"column:gosi_employer;type:numeric(14,2);not null"`
	LoanDeduction           decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	AdvanceDeduction        decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	TotalDeductions         decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	NetSalary               decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	CreatedAt               time.Time
}

func (Item) TableName() string {
	return "payroll_items"
}

type Payslip struct {
	ID            uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID     uuid.UUID `gorm:"type:uuid;not null;index"`
	BatchID       uuid.UUID `gorm:"type:uuid;not null;index"`
	ItemID        uuid.UUID `gorm:"type:uuid;not null;uniqueIndex:uq_payslip_item"`
	EmployeeID    uuid.UUID `gorm:"type:uuid;not null;index"`
	PayslipNumber string    `gorm:"type:varchar(40);not null"`
	FileURL       *string
	GeneratedAt   *time.Time
	CreatedAt     time.Time
}

func (Payslip) TableName() string {
	return "payslips"
}
