package eos

import (
	"time"

	"github.com/shopspring/decimal"
)

// CalculationRequest leaves HireDate, BasicSalary and ContractType optional;
// missing values come from the employee record.
type CalculationRequest struct {
	EmployeeID        string           `json:"employee_id" binding:"required,uuid"`
	TerminationDate   string           `json:"termination_date" binding:"required,datetime=2006-01-02"`
	TerminationReason string           `json:"termination_reason" binding:"required"`
	HireDate          string           `json:"hire_date" binding:"omitempty,datetime=2006-01-02"`
	BasicSalary       *decimal.Decimal `json:"basic_salary"`
	ContractType      string           `json:"contract_type" binding:"omitempty,oneof=limited unlimited"`
}

type BreakdownResponse struct {
	Year   int             `json:"year"`
	Months int             `json:"months"`
	Rate   decimal.Decimal `json:"rate"`
	Amount decimal.Decimal `json:"amount"`
}

type ServiceResponse struct {
	Years  int `json:"years"`
	Months int `json:"months"`
	Days   int `json:"days"`
}

type CalculationResponse struct {
	ID                  string              `json:"id,omitempty"`
	EmployeeID          string              `json:"employee_id"`
	HireDate            string              `json:"hire_date"`
	TerminationDate     string              `json:"termination_date"`
	ContractType        string              `json:"contract_type"`
	TerminationReason   string              `json:"termination_reason"`
	BasicSalary         decimal.Decimal     `json:"basic_salary"`
	Service             ServiceResponse     `json:"service"`
	AccrualPolicy       string              `json:"accrual_policy"`
	FullBenefitEligible bool                `json:"full_benefit_eligible"`
	Breakdown           []BreakdownResponse `json:"breakdown"`
	GrossBenefit        decimal.Decimal     `json:"gross_benefit"`
	LoansDeduction      decimal.Decimal     `json:"loans_deduction"`
	AdvancesDeduction   decimal.Decimal     `json:"advances_deduction"`
	NetBenefit          decimal.Decimal     `json:"net_benefit"`
	Status              string              `json:"status,omitempty"`
	ApprovedAt          *string             `json:"approved_at,omitempty"`
	PaidAt              *string             `json:"paid_at,omitempty"`
	CreatedAt           string              `json:"created_at,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	s := t.Format(time.RFC3339)
	return &s
}

func mapToResponse(c Calculation) CalculationResponse {
	policy, _ := LookupReason(Reason(c.TerminationReason))

	breakdown := make([]BreakdownResponse, 0, len(c.Breakdown))
	for _, b := range c.Breakdown {
		breakdown = append(breakdown, BreakdownResponse{Year: b.Year, Months: b.Months, Rate: b.Rate, Amount: b.Amount})
	}

	resp := CalculationResponse{
		ID:                  c.ID.String(),
		EmployeeID:          c.EmployeeID.String(),
		HireDate:            c.HireDate.Format("2006-01-02"),
		TerminationDate:     c.TerminationDate.Format("2006-01-02"),
		ContractType:        c.ContractType,
		TerminationReason:   c.TerminationReason,
		BasicSalary:         c.BasicSalary,
		Service:             ServiceResponse{Years: c.ServiceYears, Months: c.ServiceMonths, Days: c.ServiceDays},
		AccrualPolicy:       c.AccrualPolicy,
		FullBenefitEligible: policy.FullBenefitEligible,
		Breakdown:           breakdown,
		GrossBenefit:        c.GrossBenefit,
		LoansDeduction:      c.LoansDeduction,
		AdvancesDeduction:   c.AdvancesDeduction,
		NetBenefit:          c.NetBenefit,
		Status:              c.Status,
		ApprovedAt:          formatTime(c.ApprovedAt),
		PaidAt:              formatTime(c.PaidAt),
	}
	if !c.CreatedAt.IsZero() {
		resp.CreatedAt = c.CreatedAt.Format(time.RFC3339)
	}
	return resp
}

func mapToListResponse(calcs []Calculation) []CalculationResponse {
	resp := make([]CalculationResponse, 0, len(calcs))
	for _, c := range calcs {
		resp = append(resp, mapToResponse(c))
	}
	return resp
}
