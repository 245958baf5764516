package gosi

import "github.com/shopspring/decimal"

type CalculateRequest struct {
	BasicSalary      *decimal.Decimal `json:"basic_salary" binding:"required"`
	HousingAllowance decimal.Decimal  `json:"housing_allowance"`
	IsSaudi          *bool            `json:"is_saudi" binding:"required"`
}

type ContributionResponse struct {
	WageBase          decimal.Decimal `json:"wage_base"`
	Capped            bool            `json:"capped"`
	EmployeeShare     decimal.Decimal `json:"employee_contribution"`
	EmployerShare     decimal.Decimal `json:"employer_contribution"`
	TotalContribution decimal.Decimal `json:"total_contribution"`
}

func (r CalculateRequest) toInput() Input {
	return Input{
		BasicSalary:      *r.BasicSalary,
		HousingAllowance: r.HousingAllowance,
		IsSaudi:          r.IsSaudi != nil && *r.IsSaudi,
	}
}

func toResponse(c Contribution) ContributionResponse {
	return ContributionResponse{
		WageBase:          c.WageBase,
		Capped:            c.Capped,
		EmployeeShare:     c.Employee,
		EmployerShare:     c.Employer,
		TotalContribution: c.Total(),
	}
}
