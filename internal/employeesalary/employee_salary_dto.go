package employeesalary

import "github.com/shopspring/decimal"

type CreateEmployeeSalaryRequest struct {
	EmployeeID              string           `json:"employee_id" binding:"required,uuid"`
	BasicSalary             *decimal.Decimal `json:"basic_salary" binding:"required"`
	HousingAllowance        decimal.Decimal  `json:"housing_allowance"`
	TransportationAllowance decimal.Decimal  `json:"transportation_allowance"`
	OtherAllowances         decimal.Decimal  `json:"other_allowances"`
	EffectiveFrom           string           `json:"effective_from" binding:"required,datetime=2006-01-02"`
}

type EmployeeSalaryResponse struct {
	ID                      string          `json:"id"`
	EmployeeID              string          `json:"employee_id"`
	EmployeeName            string          `json:"employee_name,omitempty"`
	BasicSalary             decimal.Decimal `json:"basic_salary"`
	HousingAllowance        decimal.Decimal `json:"housing_allowance"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`
	OtherAllowances         decimal.Decimal `json:"other_allowances"`
	TotalEarnings           decimal.Decimal `json:"total_earnings"`
	EffectiveFrom           string          `json:"effective_from"`
}

func mapToResponse(salary SalaryComponents) EmployeeSalaryResponse {
	return EmployeeSalaryResponse{
		ID:                      salary.ID.String(),
		EmployeeID:              salary.EmployeeID.String(),
		EmployeeName:            salary.EmployeeName,
		BasicSalary:             salary.BasicSalary,
		HousingAllowance:        salary.HousingAllowance,
		TransportationAllowance: salary.TransportationAllowance,
		OtherAllowances:         salary.OtherAllowances,
		TotalEarnings:           salary.Earnings(),
		EffectiveFrom:           salary.EffectiveFrom.Format("2006-01-02"),
	}
}

func mapToListResponse(salaries []SalaryComponents) []EmployeeSalaryResponse {
	res := make([]EmployeeSalaryResponse, len(salaries))
	for i, salary := range salaries {
		res[i] = mapToResponse(salary)
	}
	return res
}
