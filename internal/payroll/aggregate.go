package payroll

import (
	"regexp"
	"time"

	"ksa-hris/internal/debt"
	"ksa-hris/internal/employee"
	"ksa-hris/internal/employeesalary"
	"ksa-hris/internal/gosi"
	payrollerrors "ksa-hris/internal/payroll/errors"

	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

var monthPattern = regexp.MustCompile(`^\d{4}-(0[1-9]|1[0-2])$`)

// ParseMonth returns the first and last day of a YYYY-MM month.
func ParseMonth(month string) (time.Time, time.Time, error) {
	if month == "" {
		return time.Time{}, time.Time{}, payrollerrors.ErrMonthRequired
	}
	if !monthPattern.MatchString(month) {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidMonth
	}
	start, err := time.Parse("2006-01", month)
	if err != nil {
		return time.Time{}, time.Time{}, payrollerrors.ErrInvalidMonth
	}
	return start, start.AddDate(0, 1, -1), nil
}

// Snapshot is everything a batch is computed from, read up front.
type Snapshot struct {
	CompanyID uuid.UUID
	Month     string
	Employees []employee.Employee
	// Latest salary record per employee. A missing entry pays zero.
	Salaries map[uuid.UUID]employeesalary.SalaryComponents
	Debts    debt.Snapshot
}

func sumInstallments(items []debt.Outstanding) decimal.Decimal {
	total := decimal.Zero
	for _, o := range items {
		total = total.Add(o.Installment())
	}
	return total.Round(2)
}

// Aggregate computes one item per employee plus the batch rollups. It does
// not touch storage; the returned batch is in draft with fresh IDs.
func Aggregate(snap Snapshot) (*Batch, error) {
	start, end, err := ParseMonth(snap.Month)
	if err != nil {
		return nil, err
	}

	batch := &Batch{
		ID:              uuid.New(),
		CompanyID:       snap.CompanyID,
		Month:           snap.Month,
		PeriodStart:     start,
		PeriodEnd:       end,
		Status:          StatusDraft,
		TotalGross:      decimal.Zero,
		TotalNet:        decimal.Zero,
		TotalDeductions: decimal.Zero,
		Items:           make([]Item, 0, len(snap.Employees)),
	}

	for _, emp := range snap.Employees {
		salary := snap.Salaries[emp.ID]
		basic := salary.BasicSalary.Round(2)
		housing := salary.HousingAllowance.Round(2)
		transportation := salary.TransportationAllowance.Round(2)
		other := salary.OtherAllowances.Round(2)

		in := gosi.Input{BasicSalary: basic, HousingAllowance: housing, IsSaudi: emp.IsSaudi}
		if err := in.Validate(); err != nil {
			return nil, payrollerrors.ErrInvalidSalaryRecord
		}
		if transportation.IsNegative() || other.IsNegative() {
			return nil, payrollerrors.ErrInvalidSalaryRecord
		}
		contribution := gosi.Calculate(in)

		loans, advances := snap.Debts.ForEmployee(emp.ID)
		loanDeduction := sumInstallments(loans)
		advanceDeduction := sumInstallments(advances)

		earnings := basic.Add(housing).Add(transportation).Add(other)
		deductions := contribution.Employee.Add(loanDeduction).Add(advanceDeduction)

		item := Item{
			ID:                      uuid.New(),
			BatchID:                 batch.ID,
			CompanyID:               snap.CompanyID,
			EmployeeID:              emp.ID,
			EmployeeName:            emp.FullName,
			BasicSalary:             basic,
			HousingAllowance:        housing,
			TransportationAllowance: transportation,
			OtherAllowances:         other,
			TotalEarnings:           earnings,
			GOSIEmployee:            contribution.Employee,
			GOSIEmployer:            contribution.Employer,
			LoanDeduction:           loanDeduction,
			AdvanceDeduction:        advanceDeduction,
			TotalDeductions:         deductions,
			NetSalary:               earnings.Sub(deductions),
		}

		batch.Items = append(batch.Items, item)
		batch.TotalGross = batch.TotalGross.Add(item.TotalEarnings)
		batch.TotalDeductions = batch.TotalDeductions.Add(item.TotalDeductions)
		batch.TotalNet = batch.TotalNet.Add(item.NetSalary)
	}
	batch.TotalEmployees = len(batch.Items)

	return batch, nil
}
