package eos_test

import (
	"testing"
	"time"

	"ksa-hris/internal/eos"
	eoserrors "ksa-hris/internal/eos/errors"

	"github.com/shopspring/decimal"
	"github.com/stretchr/testify/assert"
)

func d(s string) decimal.Decimal {
	return decimal.RequireFromString(s)
}

func date(s string) time.Time {
	t, err := time.Parse("2006-01-02", s)
	if err != nil {
		panic(err)
	}
	return t
}

func assertDecimal(t *testing.T, want string, got decimal.Decimal, msgAndArgs ...any) {
	t.Helper()
	assert.True(t, d(want).Equal(got), append([]any{"want %s got %s", want, got}, msgAndArgs...)...)
}

func TestServicePeriodBetween(t *testing.T) {
	tests := []struct {
		hire, end string
		want      eos.ServicePeriod
	}{
		{"2020-01-15", "2026-01-15", eos.ServicePeriod{Years: 6}},
		{"2020-01-15", "2026-01-14", eos.ServicePeriod{Years: 5, Months: 11, Days: 30}},
		{"2020-03-31", "2020-04-30", eos.ServicePeriod{Months: 0, Days: 30}},
		{"2020-01-31", "2020-03-01", eos.ServicePeriod{Months: 1, Days: 1}},
		{"2023-01-31", "2023-03-01", eos.ServicePeriod{Months: 1, Days: 1}},
		{"2015-03-31", "2025-03-30", eos.ServicePeriod{Years: 9, Months: 11, Days: 30}},
		{"2024-02-29", "2025-02-28", eos.ServicePeriod{Months: 11, Days: 28}},
		{"2019-02-28", "2024-02-29", eos.ServicePeriod{Years: 5, Days: 1}},
		{"2024-05-10", "2024-05-10", eos.ServicePeriod{}},
		{"2015-07-01", "2026-10-18", eos.ServicePeriod{Years: 11, Months: 3, Days: 17}},
	}

	for _, tt := range tests {
		t.Run(tt.hire+"_"+tt.end, func(t *testing.T) {
			assert.Equal(t, tt.want, eos.ServicePeriodBetween(date(tt.hire), date(tt.end)))
		})
	}
}

func TestCalculate_Scenarios(t *testing.T) {
	t.Run("unlimited six years eligible", func(t *testing.T) {
		res, err := eos.Calculate(eos.Input{
			HireDate:          date("2019-03-01"),
			TerminationDate:   date("2025-03-01"),
			BasicSalary:       d("4000"),
			ContractType:      eos.ContractUnlimited,
			TerminationReason: eos.ReasonEmployerTermination,
		})

		assert.NoError(t, err)
		assertDecimal(t, "14000", res.GrossBenefit)
		assertDecimal(t, "14000", res.NetBenefit)
		if assert.Len(t, res.Breakdown, 6) {
			for i := 0; i < 5; i++ {
				assertDecimal(t, "0.5", res.Breakdown[i].Rate)
				assertDecimal(t, "2000", res.Breakdown[i].Amount)
			}
			assert.Equal(t, 6, res.Breakdown[5].Year)
			assertDecimal(t, "1", res.Breakdown[5].Rate)
			assertDecimal(t, "4000", res.Breakdown[5].Amount)
		}
	})

	t.Run("limited resignation three years", func(t *testing.T) {
		res, err := eos.Calculate(eos.Input{
			HireDate:          date("2021-06-01"),
			TerminationDate:   date("2024-06-01"),
			BasicSalary:       d("3000"),
			ContractType:      eos.ContractLimited,
			TerminationReason: eos.ReasonEmployeeResignation,
		})

		assert.NoError(t, err)
		assertDecimal(t, "4500", res.GrossBenefit)
		assert.False(t, res.FullBenefitEligible)
		assert.Len(t, res.Breakdown, 3)
	})
}

func TestCalculate_Brackets(t *testing.T) {
	tests := []struct {
		name     string
		hire     string
		end      string
		contract string
		reason   eos.Reason
		policy   eos.AccrualPolicy
		gross    string
		rows     int
	}{
		{"unlimited under two years", "2024-01-01", "2025-12-31", eos.ContractUnlimited, eos.ReasonRetirement, "", "0", 0},
		{"unlimited 3y6m half rate", "2021-01-01", "2024-07-01", eos.ContractUnlimited, eos.ReasonRetirement, "", "7000", 4},
		{"unlimited 7y resignation all half", "2018-01-01", "2025-01-01", eos.ContractUnlimited, eos.ReasonEmployeeResignation, "", "14000", 7},
		{"unlimited 7y6m eligible", "2017-07-01", "2025-01-01", eos.ContractUnlimited, eos.ReasonMutualAgreement, "", "20000", 8},
		{"unlimited 12y tiered", "2013-01-01", "2025-01-01", eos.ContractUnlimited, eos.ReasonRetirement, eos.AccrualTiered, "38000", 12},
		{"unlimited 12y legacy", "2013-01-01", "2025-01-01", eos.ContractUnlimited, eos.ReasonRetirement, eos.AccrualLegacy, "48000", 12},
		{"unlimited 12y legacy resignation", "2013-01-01", "2025-01-01", eos.ContractUnlimited, eos.ReasonEmployeeResignation, eos.AccrualLegacy, "24000", 12},
		{"limited 1y3m eligible", "2023-10-01", "2025-01-01", eos.ContractLimited, eos.ReasonContractCompletion, "", "5000", 2},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			res, err := eos.Calculate(eos.Input{
				HireDate:          date(tt.hire),
				TerminationDate:   date(tt.end),
				BasicSalary:       d("4000"),
				ContractType:      tt.contract,
				TerminationReason: tt.reason,
				Policy:            tt.policy,
			})

			assert.NoError(t, err)
			assertDecimal(t, tt.gross, res.GrossBenefit)
			assert.Len(t, res.Breakdown, tt.rows)
		})
	}
}

func TestCalculate_TieredIsContinuousAtTenYears(t *testing.T) {
	calc := func(end string) decimal.Decimal {
		res, err := eos.Calculate(eos.Input{
			HireDate:          date("2010-01-01"),
			TerminationDate:   date(end),
			BasicSalary:       d("4000"),
			ContractType:      eos.ContractUnlimited,
			TerminationReason: eos.ReasonRetirement,
		})
		assert.NoError(t, err)
		return res.GrossBenefit
	}

	before := calc("2019-12-01") // 9y11m
	at := calc("2020-01-01")     // 10y
	assert.True(t, at.Sub(before).LessThanOrEqual(d("333.34")), "jump %s", at.Sub(before))
}

func TestCalculate_GrossEqualsBreakdownSum(t *testing.T) {
	res, err := eos.Calculate(eos.Input{
		HireDate:          date("2016-02-10"),
		TerminationDate:   date("2025-09-25"),
		BasicSalary:       d("7333.34"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonDeath,
	})
	assert.NoError(t, err)

	total := decimal.Zero
	for _, row := range res.Breakdown {
		total = total.Add(row.Amount)
	}
	assertDecimal(t, res.GrossBenefit.String(), total)
	assert.Equal(t, 9, res.Service.Years)
	assert.Equal(t, 7, res.Service.Months)
}

func TestCalculate_BreakdownAbsorbsRoundingRemainder(t *testing.T) {
	res, err := eos.Calculate(eos.Input{
		HireDate:          date("2012-07-01"),
		TerminationDate:   date("2025-01-01"),
		BasicSalary:       d("3333.33"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonEmployeeResignation,
	})
	assert.NoError(t, err)

	assertDecimal(t, "20833.31", res.GrossBenefit)
	if assert.Len(t, res.Breakdown, 13) {
		for _, row := range res.Breakdown[:12] {
			assertDecimal(t, "1666.67", row.Amount)
		}
		assert.Equal(t, 6, res.Breakdown[12].Months)
		assertDecimal(t, "833.27", res.Breakdown[12].Amount)
	}

	total := decimal.Zero
	for _, row := range res.Breakdown {
		total = total.Add(row.Amount)
	}
	assertDecimal(t, "20833.31", total)
}

func TestCalculate_MonthEndHireCountsCalendarMonths(t *testing.T) {
	res, err := eos.Calculate(eos.Input{
		HireDate:          date("2019-01-31"),
		TerminationDate:   date("2021-03-01"),
		BasicSalary:       d("1000"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonRetirement,
	})
	assert.NoError(t, err)

	assert.Equal(t, eos.ServicePeriod{Years: 2, Months: 1, Days: 1}, res.Service)
	assertDecimal(t, "1041.67", res.GrossBenefit)
	if assert.Len(t, res.Breakdown, 3) {
		assertDecimal(t, "41.67", res.Breakdown[2].Amount)
	}
}

func TestCalculate_DisqualifyingReasonsPayNothing(t *testing.T) {
	for _, reason := range []eos.Reason{eos.ReasonTerminationForCause, eos.ReasonProbationPeriod} {
		for _, contract := range []string{eos.ContractLimited, eos.ContractUnlimited} {
			for _, hire := range []string{"2024-11-01", "2019-01-01", "2000-01-01"} {
				for _, policy := range []eos.AccrualPolicy{eos.AccrualTiered, eos.AccrualLegacy} {
					res, err := eos.Calculate(eos.Input{
						HireDate:          date(hire),
						TerminationDate:   date("2025-01-01"),
						BasicSalary:       d("25000"),
						ContractType:      contract,
						TerminationReason: reason,
						Policy:            policy,
					})

					assert.NoError(t, err)
					assert.True(t, res.Disqualified)
					assert.True(t, res.GrossBenefit.IsZero())
					assert.True(t, res.NetBenefit.IsZero())
					assert.Empty(t, res.Breakdown)
				}
			}
		}
	}
}

func TestCalculate_UnlimitedUnderTwoYearsIsZero(t *testing.T) {
	for _, end := range []string{"2023-01-01", "2023-06-30", "2024-12-31"} {
		for _, reason := range eos.Reasons() {
			res, err := eos.Calculate(eos.Input{
				HireDate:          date("2023-01-01"),
				TerminationDate:   date(end),
				BasicSalary:       d("15000"),
				ContractType:      eos.ContractUnlimited,
				TerminationReason: reason,
			})

			assert.NoError(t, err)
			assert.True(t, res.GrossBenefit.IsZero(), "%s %s", end, reason)
		}
	}
}

func TestCalculate_NetNeverNegative(t *testing.T) {
	res, err := eos.Calculate(eos.Input{
		HireDate:          date("2019-03-01"),
		TerminationDate:   date("2025-03-01"),
		BasicSalary:       d("4000"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonEmployerTermination,
		Loans:             []decimal.Decimal{d("9000"), d("3000")},
		Advances:          []decimal.Decimal{d("2500.50")},
	})

	assert.NoError(t, err)
	assertDecimal(t, "14000", res.GrossBenefit)
	assertDecimal(t, "12000", res.LoansDeduction)
	assertDecimal(t, "2500.50", res.AdvancesDeduction)
	assert.True(t, res.NetBenefit.IsZero())

	res, err = eos.Calculate(eos.Input{
		HireDate:          date("2019-03-01"),
		TerminationDate:   date("2025-03-01"),
		BasicSalary:       d("4000"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonEmployerTermination,
		Loans:             []decimal.Decimal{d("1000")},
		Advances:          []decimal.Decimal{d("500")},
	})
	assert.NoError(t, err)
	assertDecimal(t, "12500", res.NetBenefit)
}

func TestCalculate_Validation(t *testing.T) {
	base := eos.Input{
		HireDate:          date("2020-01-01"),
		TerminationDate:   date("2025-01-01"),
		BasicSalary:       d("4000"),
		ContractType:      eos.ContractUnlimited,
		TerminationReason: eos.ReasonRetirement,
	}

	tests := []struct {
		name   string
		mutate func(in *eos.Input)
		want   error
	}{
		{"missing reason", func(in *eos.Input) { in.TerminationReason = "" }, eoserrors.ErrReasonRequired},
		{"unknown reason", func(in *eos.Input) { in.TerminationReason = "layoff" }, eoserrors.ErrUnknownReason},
		{"unknown contract", func(in *eos.Input) { in.ContractType = "freelance" }, eoserrors.ErrUnknownContractType},
		{"termination before hire", func(in *eos.Input) { in.TerminationDate = date("2019-12-31") }, eoserrors.ErrTerminationBeforeHire},
		{"negative salary", func(in *eos.Input) { in.BasicSalary = d("-1") }, eoserrors.ErrNegativeSalary},
		{"negative loan", func(in *eos.Input) { in.Loans = []decimal.Decimal{d("-5")} }, eoserrors.ErrNegativeDebt},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			in := base
			tt.mutate(&in)

			_, err := eos.Calculate(in)
			assert.ErrorIs(t, err, tt.want)
		})
	}
}

func TestReasonTable(t *testing.T) {
	assert.Len(t, eos.Reasons(), 10)
	for _, r := range eos.Reasons() {
		p, ok := eos.LookupReason(r)
		assert.True(t, ok, r)
		switch r {
		case eos.ReasonTerminationForCause, eos.ReasonProbationPeriod:
			assert.True(t, p.Disqualifying)
		case eos.ReasonEmployeeResignation:
			assert.False(t, p.FullBenefitEligible)
			assert.False(t, p.Disqualifying)
		default:
			assert.True(t, p.FullBenefitEligible)
		}
	}
}
