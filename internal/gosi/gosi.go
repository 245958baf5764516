// Package gosi computes monthly GOSI social-insurance contributions.
package gosi

import (
	gosierrors "ksa-hris/internal/gosi/errors"

	"github.com/shopspring/decimal"
)

var (
	// MaxWageBase is the monthly contribution ceiling in SAR.
	MaxWageBase = decimal.NewFromInt(45000)

	saudiEmployeeRate    = decimal.RequireFromString("0.10")
	saudiEmployerRate    = decimal.RequireFromString("0.12")
	nonSaudiEmployerRate = decimal.RequireFromString("0.02")
)

type Input struct {
	BasicSalary      decimal.Decimal
	HousingAllowance decimal.Decimal
	IsSaudi          bool
}

// Validate rejects inputs Calculate is not defined for.
func (in Input) Validate() error {
	if in.BasicSalary.IsNegative() {
		return gosierrors.ErrNegativeBasicSalary
	}
	if in.HousingAllowance.IsNegative() {
		return gosierrors.ErrNegativeHousing
	}
	return nil
}

type Contribution struct {
	WageBase decimal.Decimal
	Capped   bool
	Employee decimal.Decimal
	Employer decimal.Decimal
}

func (c Contribution) Total() decimal.Decimal {
	return c.Employee.Add(c.Employer)
}

// Calculate assumes a validated Input. Amounts are rounded half-up to 2 dp.
func Calculate(in Input) Contribution {
	base := in.BasicSalary.Add(in.HousingAllowance)
	capped := base.GreaterThan(MaxWageBase)
	if capped {
		base = MaxWageBase
	}

	c := Contribution{
		WageBase: base.Round(2),
		Capped:   capped,
		Employee: decimal.Zero,
	}

	if in.IsSaudi {
		c.Employee = base.Mul(saudiEmployeeRate).Round(2)
		c.Employer = base.Mul(saudiEmployerRate).Round(2)
	} else {
		c.Employer = base.Mul(nonSaudiEmployerRate).Round(2)
	}

	return c
}
