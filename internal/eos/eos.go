// Package eos computes statutory end-of-service gratuity.
package eos

import (
	"time"

	eoserrors "ksa-hris/internal/eos/errors"

	"github.com/shopspring/decimal"
)

const (
	ContractLimited   = "limited"
	ContractUnlimited = "unlimited"
)

// AccrualPolicy decides how tenures of ten years or more accrue for
// full-benefit-eligible reasons on unlimited contracts.
type AccrualPolicy string

const (
	// AccrualTiered keeps the first five years at half rate for every tenure,
	// so the benefit grows continuously across year ten.
	AccrualTiered AccrualPolicy = "tiered"
	// AccrualLegacy pays every year at the full rate once tenure reaches ten.
	AccrualLegacy AccrualPolicy = "legacy"
)

func ParseAccrualPolicy(s string) AccrualPolicy {
	if AccrualPolicy(s) == AccrualLegacy {
		return AccrualLegacy
	}
	return AccrualTiered
}

const (
	minUnlimitedYears = 2
	halfRateYears     = 5
	legacyFullYears   = 10
)

var (
	RateHalf = decimal.RequireFromString("0.5")
	RateFull = decimal.NewFromInt(1)

	twelve = decimal.NewFromInt(12)
)

type Input struct {
	HireDate          time.Time
	TerminationDate   time.Time
	BasicSalary       decimal.Decimal
	ContractType      string
	TerminationReason Reason
	// Remaining balances of active loans and active or approved advances.
	Loans    []decimal.Decimal
	Advances []decimal.Decimal
	Policy   AccrualPolicy
}

func (in Input) Validate() error {
	if in.TerminationReason == "" {
		return eoserrors.ErrReasonRequired
	}
	if _, ok := LookupReason(in.TerminationReason); !ok {
		return eoserrors.ErrUnknownReason
	}
	if in.ContractType != ContractLimited && in.ContractType != ContractUnlimited {
		return eoserrors.ErrUnknownContractType
	}
	if in.TerminationDate.Before(in.HireDate) {
		return eoserrors.ErrTerminationBeforeHire
	}
	if in.BasicSalary.IsNegative() {
		return eoserrors.ErrNegativeSalary
	}
	for _, amounts := range [][]decimal.Decimal{in.Loans, in.Advances} {
		for _, a := range amounts {
			if a.IsNegative() {
				return eoserrors.ErrNegativeDebt
			}
		}
	}
	return nil
}

// BreakdownRow is one service year. A trailing row with Months < 12 holds the
// partial year.
type BreakdownRow struct {
	Year   int
	Months int
	Rate   decimal.Decimal
	Amount decimal.Decimal
}

type Result struct {
	Service             ServicePeriod
	FullBenefitEligible bool
	Disqualified        bool
	Breakdown           []BreakdownRow
	GrossBenefit        decimal.Decimal
	LoansDeduction      decimal.Decimal
	AdvancesDeduction   decimal.Decimal
	NetBenefit          decimal.Decimal
}

// Calculate validates in and computes the gratuity. It has no side effects.
func Calculate(in Input) (Result, error) {
	if err := in.Validate(); err != nil {
		return Result{}, err
	}

	policy, _ := LookupReason(in.TerminationReason)
	period := ServicePeriodBetween(in.HireDate, in.TerminationDate)

	res := Result{
		Service:             period,
		FullBenefitEligible: policy.FullBenefitEligible,
		Disqualified:        policy.Disqualifying,
		Breakdown:           []BreakdownRow{},
		GrossBenefit:        decimal.Zero,
	}

	if !policy.Disqualifying {
		rate := rateSchedule(in, policy, period)
		if rate != nil {
			res.Breakdown, res.GrossBenefit = accrue(period, in.BasicSalary, rate)
		}
	}

	res.LoansDeduction = sum(in.Loans).Round(2)
	res.AdvancesDeduction = sum(in.Advances).Round(2)

	net := res.GrossBenefit.Sub(res.LoansDeduction).Sub(res.AdvancesDeduction)
	if net.IsNegative() {
		net = decimal.Zero
	}
	res.NetBenefit = net.Round(2)

	return res, nil
}

// rateSchedule returns the accrual rate for a 1-based service year, or nil
// when the tenure earns nothing.
func rateSchedule(in Input, policy ReasonPolicy, period ServicePeriod) func(year int) decimal.Decimal {
	if in.ContractType == ContractLimited {
		rate := RateFull
		if in.TerminationReason == ReasonEmployeeResignation {
			rate = RateHalf
		}
		return func(int) decimal.Decimal { return rate }
	}

	if period.Years < minUnlimitedYears {
		return nil
	}

	if policy.FullBenefitEligible && in.Policy == AccrualLegacy && period.Years >= legacyFullYears {
		return func(int) decimal.Decimal { return RateFull }
	}

	return func(year int) decimal.Decimal {
		if year <= halfRateYears || !policy.FullBenefitEligible {
			return RateHalf
		}
		return RateFull
	}
}

func accrue(period ServicePeriod, salary decimal.Decimal, rate func(int) decimal.Decimal) ([]BreakdownRow, decimal.Decimal) {
	rows := make([]BreakdownRow, 0, period.Years+1)
	gross := decimal.Zero

	for year := 1; year <= period.Years; year++ {
		amount := salary.Mul(rate(year))
		gross = gross.Add(amount)
		rows = append(rows, BreakdownRow{Year: year, Months: 12, Rate: rate(year), Amount: amount.Round(2)})
	}

	if period.Months > 0 {
		year := period.Years + 1
		amount := salary.Mul(decimal.NewFromInt(int64(period.Months))).Div(twelve).Mul(rate(year))
		gross = gross.Add(amount)
		rows = append(rows, BreakdownRow{Year: year, Months: period.Months, Rate: rate(year), Amount: amount.Round(2)})
	}

	gross = gross.Round(2)

	// Rows are rounded one by one; the last row absorbs the remainder so the
	// schedule adds up to gross.
	if n := len(rows); n > 0 {
		remainder := gross
		for _, row := range rows {
			remainder = remainder.Sub(row.Amount)
		}
		rows[n-1].Amount = rows[n-1].Amount.Add(remainder)
	}

	return rows, gross
}

func sum(amounts []decimal.Decimal) decimal.Decimal {
	total := decimal.Zero
	for _, a := range amounts {
		total = total.Add(a)
	}
	return total
}
