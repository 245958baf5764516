package payroll

import (
	"time"

	"github.com/shopspring/decimal"
)

type CreateBatchRequest struct {
	Month string `json:"month" binding:"required"`
}

type ListBatchesRequest struct {
	Status string `form:"status" binding:"omitempty,oneof=draft pending_approval approved processed paid"`
	Year   string `form:"year" binding:"omitempty,len=4,numeric"`
}

type ItemResponse struct {
	ID                      string          `json:"id"`
	EmployeeID              string          `json:"employee_id"`
	EmployeeName            string          `json:"employee_name,omitempty"`
	BasicSalary             decimal.Decimal `json:"basic_salary"`
	HousingAllowance        decimal.Decimal `json:"housing_allowance"`
	TransportationAllowance decimal.Decimal `json:"transportation_allowance"`
	OtherAllowances         decimal.Decimal `json:"other_allowances"`
	TotalEarnings           decimal.Decimal `json:"total_earnings"`
	GOSIEmployee            decimal.Decimal `json:"gosi_employee"`
	GOSIEmployer            decimal.Decimal `json:"gosi_employer"`
	LoanDeduction           decimal.Decimal `json:"loan_deduction"`
	AdvanceDeduction        decimal.Decimal `json:"advance_deduction"`
	TotalDeductions         decimal.Decimal `json:"total_deductions"`
	NetSalary               decimal.Decimal `json:"net_salary"`
}

type BatchResponse struct {
	ID              string          `json:"id"`
	CompanyID       string          `json:"company_id"`
	Month           string          `json:"month"`
	PeriodStart     string          `json:"period_start"`
	PeriodEnd       string          `json:"period_end"`
	Status          string          `json:"status"`
	TotalGross      decimal.Decimal `json:"total_gross"`
	TotalNet        decimal.Decimal `json:"total_net"`
	TotalDeductions decimal.Decimal `json:"total_deductions"`
	TotalEmployees  int             `json:"total_employees"`
	CreatedBy       *string         `json:"created_by,omitempty"`
	ApprovedBy      *string         `json:"approved_by,omitempty"`
	SubmittedAt     *string         `json:"submitted_at,omitempty"`
	ApprovedAt      *string         `json:"approved_at,omitempty"`
	ProcessedAt     *string         `json:"processed_at,omitempty"`
	PaidAt          *string         `json:"paid_at,omitempty"`
	Items           []ItemResponse  `json:"items,omitempty"`
}

type PayslipResponse struct {
	ID            string  `json:"id"`
	BatchID       string  `json:"batch_id"`
	ItemID        string  `json:"item_id"`
	EmployeeID    string  `json:"employee_id"`
	PayslipNumber string  `json:"payslip_number"`
	FileURL       *string `json:"file_url,omitempty"`
	GeneratedAt   *string `json:"generated_at,omitempty"`
}

func formatTime(t *time.Time) *string {
	if t == nil {
		return nil
	}
	v := t.Format(time.RFC3339)
	return &v
}

func mapItemToResponse(item Item) ItemResponse {
	return ItemResponse{
		ID:                      item.ID.String(),
		EmployeeID:              item.EmployeeID.String(),
		EmployeeName:            item.EmployeeName,
		BasicSalary:             item.BasicSalary,
		HousingAllowance:        item.HousingAllowance,
		TransportationAllowance: item.TransportationAllowance,
		OtherAllowances:         item.OtherAllowances,
		TotalEarnings:           item.TotalEarnings,
		GOSIEmployee:            item.GOSIEmployee,
		GOSIEmployer:            item.GOSIEmployer,
		LoanDeduction:           item.LoanDeduction,
		AdvanceDeduction:        item.AdvanceDeduction,
		TotalDeductions:         item.TotalDeductions,
		NetSalary:               item.NetSalary,
	}
}

func mapToResponse(batch Batch) BatchResponse {
	resp := BatchResponse{
		ID:              batch.ID.String(),
		CompanyID:       batch.CompanyID.String(),
		Month:           batch.Month,
		PeriodStart:     batch.PeriodStart.Format("2006-01-02"),
		PeriodEnd:       batch.PeriodEnd.Format("2006-01-02"),
		Status:          batch.Status,
		TotalGross:      batch.TotalGross,
		TotalNet:        batch.TotalNet,
		TotalDeductions: batch.TotalDeductions,
		TotalEmployees:  batch.TotalEmployees,
		SubmittedAt:     formatTime(batch.SubmittedAt),
		ApprovedAt:      formatTime(batch.ApprovedAt),
		ProcessedAt:     formatTime(batch.ProcessedAt),
		PaidAt:          formatTime(batch.PaidAt),
	}

	if batch.CreatedBy != nil {
		v := batch.CreatedBy.String()
		resp.CreatedBy = &v
	}
	if batch.ApprovedBy != nil {
		v := batch.ApprovedBy.String()
		resp.ApprovedBy = &v
	}
	if len(batch.Items) > 0 {
		resp.Items = make([]ItemResponse, 0, len(batch.Items))
		for _, item := range batch.Items {
			resp.Items = append(resp.Items, mapItemToResponse(item))
		}
	}

	return resp
}

func mapToListResponse(batches []Batch) []BatchResponse {
	resp := make([]BatchResponse, len(batches))
	for i, batch := range batches {
		resp[i] = mapToResponse(batch)
	}
	return resp
}

func mapPayslipToResponse(p Payslip) PayslipResponse {
	return PayslipResponse{
		ID:            p.ID.String(),
		BatchID:       p.BatchID.String(),
		ItemID:        p.ItemID.String(),
		EmployeeID:    p.EmployeeID.String(),
		PayslipNumber: p.PayslipNumber,
		FileURL:       p.FileURL,
		GeneratedAt:   formatTime(p.GeneratedAt),
	}
}
