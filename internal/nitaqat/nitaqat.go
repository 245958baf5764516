// Package nitaqat classifies a company's Saudization level into a Nitaqat zone.
package nitaqat

import (
	"github.com/google/uuid"
	"github.com/shopspring/decimal"
)

type Zone string

const (
	ZoneExempt    Zone = "exempt"
	ZoneRed       Zone = "red"
	ZoneLowGreen  Zone = "low_green"
	ZoneMidGreen  Zone = "mid_green"
	ZoneHighGreen Zone = "high_green"
	ZonePlatinum  Zone = "platinum"
)

type EntitySize string

const (
	EntityExempt EntitySize = "exempt"
	EntitySmall  EntitySize = "small"
	EntityMedium EntitySize = "medium"
	EntityLarge  EntitySize = "large"
)

// MinClassifiedHeadcount is the smallest roster that gets a colour zone.
const MinClassifiedHeadcount = 6

// Band is an inclusive percentage range on 2-dp values. Max is nil for the top band.
type Band struct {
	Zone Zone
	Min  decimal.Decimal
	Max  *decimal.Decimal
}

var (
	fullCountSalary = decimal.NewFromInt(4000)
	hundred         = decimal.NewFromInt(100)

	weightDisabled = decimal.NewFromInt(4)
	weightFull     = decimal.NewFromInt(1)
	weightHalf     = decimal.RequireFromString("0.5")

	bands = []Band{
		{Zone: ZoneRed, Min: decimal.Zero, Max: ptr("16.21")},
		{Zone: ZoneLowGreen, Min: decimal.RequireFromString("16.22"), Max: ptr("19.25")},
		{Zone: ZoneMidGreen, Min: decimal.RequireFromString("19.26"), Max: ptr("23.11")},
		{Zone: ZoneHighGreen, Min: decimal.RequireFromString("23.12"), Max: ptr("26.51")},
		{Zone: ZonePlatinum, Min: decimal.RequireFromString("26.52")},
	}
)

func ptr(s string) *decimal.Decimal {
	d := decimal.RequireFromString(s)
	return &d
}

// Bands returns a copy of the zone table, lowest first.
func Bands() []Band {
	out := make([]Band, len(bands))
	copy(out, bands)
	return out
}

type RosterEntry struct {
	EmployeeID    uuid.UUID
	IsSaudi       bool
	HasDisability bool
	BasicSalary   decimal.Decimal
}

type Result struct {
	TotalEmployees        int
	SaudiEmployees        int
	EffectiveSaudiCount   decimal.Decimal
	Percentage            decimal.Decimal
	Zone                  Zone
	EntitySize            EntitySize
	NextZone              *Zone
	EmployeesNeeded       *decimal.Decimal
	RequiresSaudiEmployee bool
}

// Weight is how much one employee counts toward the Saudi headcount.
func Weight(e RosterEntry) decimal.Decimal {
	if !e.IsSaudi {
		return decimal.Zero
	}
	switch {
	case e.BasicSalary.GreaterThanOrEqual(fullCountSalary) && e.HasDisability:
		return weightDisabled
	case e.BasicSalary.GreaterThanOrEqual(fullCountSalary):
		return weightFull
	case e.BasicSalary.IsPositive():
		return weightHalf
	default:
		return decimal.Zero
	}
}

// ZoneFor places a percentage in its band after rounding it half-up to 2 dp,
// so values between two bands' printed bounds still land in exactly one.
func ZoneFor(percentage decimal.Decimal) Zone {
	p := percentage.Round(2)
	for i := len(bands) - 1; i >= 0; i-- {
		if p.GreaterThanOrEqual(bands[i].Min) {
			return bands[i].Zone
		}
	}
	return ZoneRed
}

func EntitySizeFor(total int) EntitySize {
	switch {
	case total < MinClassifiedHeadcount:
		return EntityExempt
	case total < 50:
		return EntitySmall
	case total < 500:
		return EntityMedium
	default:
		return EntityLarge
	}
}

func nextBand(z Zone) (Band, bool) {
	for i, b := range bands {
		if b.Zone == z && i+1 < len(bands) {
			return bands[i+1], true
		}
	}
	return Band{}, false
}

// Classify computes the Saudization figures for an active roster.
func Classify(roster []RosterEntry) Result {
	total := len(roster)
	effective := decimal.Zero
	saudis := 0
	for _, e := range roster {
		if e.IsSaudi {
			saudis++
		}
		effective = effective.Add(Weight(e))
	}

	percentage := decimal.Zero
	if total > 0 {
		percentage = effective.Div(decimal.NewFromInt(int64(total))).Mul(hundred)
	}

	res := Result{
		TotalEmployees:      total,
		SaudiEmployees:      saudis,
		EffectiveSaudiCount: effective,
		Percentage:          percentage.Round(2),
		EntitySize:          EntitySizeFor(total),
	}

	if total < MinClassifiedHeadcount {
		res.Zone = ZoneExempt
		res.RequiresSaudiEmployee = saudis == 0
		return res
	}

	res.Zone = ZoneFor(percentage)
	if next, ok := nextBand(res.Zone); ok {
		needed := decimal.NewFromInt(int64(total)).Mul(next.Min).Div(hundred).Ceil().Sub(effective)
		if needed.IsNegative() {
			needed = decimal.Zero
		}
		nz := next.Zone
		res.NextZone = &nz
		res.EmployeesNeeded = &needed
	}

	return res
}
