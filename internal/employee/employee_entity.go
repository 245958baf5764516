package employee

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

const (
	ContractLimited   = "limited"
	ContractUnlimited = "unlimited"
)

const (
	StatusActive     = "active"
	StatusOnLeave    = "on_leave"
	StatusTerminated = "terminated"
)

// Employee is owned by the HR records workflow; this service only reads it.
type Employee struct {
	ID             uuid.UUID `gorm:"type:uuid;primaryKey"`
	CompanyID      uuid.UUID `gorm:"type:uuid;index"`
	EmployeeNumber string
	FullName       string
	IsSaudi        bool
	HasDisability  bool
	BasicSalary    decimal.Decimal `gorm:"type:numeric(14,2)"`
	HireDate       time.Time       `gorm:"type:date"`
	ContractType   string
	Status         string
	CreatedAt      time.Time
	UpdatedAt      time.Time
}

func (Employee) TableName() string {
	return "employees"
}
