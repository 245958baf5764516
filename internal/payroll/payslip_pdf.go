package payroll

import (
	"bytes"
	"fmt"

	"github.com/jung-kurt/gofpdf"
	"github.com/shopspring/decimal"
)

type payslipDocument struct {
	Number   string
	Month    string
	Employee string
	Item     Item
}

func money(d decimal.Decimal) string {
	return d.StringFixed(2) + " SAR"
}

func renderPayslipPDF(doc payslipDocument) ([]byte, error) {
	pdf := gofpdf.New("P", "mm", "A4", "")
	pdf.AddPage()

	pdf.SetFont("Helvetica", "B", 16)
	pdf.Cell(40, 10, "Payslip")
	pdf.Ln(12)

	pdf.SetFont("Helvetica", "", 11)
	pdf.Cell(0, 7, fmt.Sprintf("Payslip No: %s", doc.Number))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Employee: %s", doc.Employee))
	pdf.Ln(6)
	pdf.Cell(0, 7, fmt.Sprintf("Period: %s", doc.Month))
	pdf.Ln(10)

	row := func(label string, amount decimal.Decimal) {
		pdf.CellFormat(90, 7, label, "1", 0, "L", false, 0, "")
		pdf.CellFormat(60, 7, money(amount), "1", 1, "R", false, 0, "")
	}

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Earnings")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	row("Basic salary", doc.Item.BasicSalary)
	row("Housing allowance", doc.Item.HousingAllowance)
	row("Transportation allowance", doc.Item.TransportationAllowance)
	row("Other allowances", doc.Item.OtherAllowances)
	row("Total earnings", doc.Item.TotalEarnings)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	pdf.Cell(0, 8, "Deductions")
	pdf.Ln(8)
	pdf.SetFont("Helvetica", "", 11)
	row("GOSI (employee share)", doc.Item.GOSIEmployee)
	row("Loan installment", doc.Item.LoanDeduction)
	row("Salary advance", doc.Item.AdvanceDeduction)
	row("Total deductions", doc.Item.TotalDeductions)
	pdf.Ln(4)

	pdf.SetFont("Helvetica", "B", 12)
	row("Net salary", doc.Item.NetSalary)

	var buf bytes.Buffer
	if err := pdf.Output(&buf); err != nil {
		return nil, fmt.Errorf("render payslip pdf: %w", err)
	}
	return buf.Bytes(), nil
}
