package eos

import "time"

// ServicePeriod is a calendar difference: Months is 0-11 and Days is less
// than the length of the hire month.
type ServicePeriod struct {
	Years  int
	Months int
	Days   int
}

func daysIn(year int, month time.Month) int {
	return time.Date(year, month+1, 0, 0, 0, 0, 0, time.UTC).Day()
}

// ServicePeriodBetween counts whole years, months and days from hire to end
// the way SQL age() does: a negative day count borrows the length of the
// hire month, so Jan 31 to Mar 1 is 1 month and 1 day.
func ServicePeriodBetween(hire, end time.Time) ServicePeriod {
	hy, hm, hd := hire.Date()
	ey, em, ed := end.Date()

	years := ey - hy
	months := int(em) - int(hm)
	days := ed - hd

	for days < 0 {
		days += daysIn(hy, hm)
		months--
	}

	for months < 0 {
		months += 12
		years--
	}

	return ServicePeriod{Years: years, Months: months, Days: days}
}
