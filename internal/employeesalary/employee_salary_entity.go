package employeesalary

import (
	"time"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

// SalaryComponents is one time-scoped salary record. A change in pay is a new
// row with a later EffectiveFrom; rows are never edited in place.
type SalaryComponents struct {
	ID                      uuid.UUID       `gorm:"type:uuid;primaryKey"`
	CompanyID               uuid.UUID       `gorm:"type:uuid;not null;index"`
	EmployeeID              uuid.UUID       `gorm:"type:uuid;not null;uniqueIndex:uq_employee_salary_effective"`
	BasicSalary             decimal.Decimal `gorm:"type:numeric(14,2);not null"`
	HousingAllowance        decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	TransportationAllowance decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	OtherAllowances         decimal.Decimal `gorm:"type:numeric(14,2);not null;default:0"`
	EffectiveFrom           time.Time       `gorm:"type:date;not null;uniqueIndex:uq_employee_salary_effective"`
	CreatedBy               *uuid.UUID      `gorm:"type:uuid"`
	CreatedAt               time.Time
	UpdatedAt               time.Time

	EmployeeName string `gorm:"->;-:migration"`
}

func (SalaryComponents) TableName() string {
	return "employee_salaries"
}

// Earnings is basic plus every allowance.
func (s SalaryComponents) Earnings() decimal.Decimal {
	return s.BasicSalary.
		Add(s.HousingAllowance).
		Add(s.TransportationAllowance).
		Add(s.OtherAllowances)
}
