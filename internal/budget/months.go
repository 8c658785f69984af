package budget

import (
	"errors"
	"fmt"
	"time"
)

// MonthYear identifies a calendar month.
type MonthYear struct {
	Month int // 1..12
	Year  int
}

// Year bounds accepted for new budgets.
const (
	MinYear = 2020
	MaxYear = 2100
)

// defaultScanMonths bounds the forward scan in DefaultMonthYear.
const defaultScanMonths = 24

func (m MonthYear) key() int { return m.Year*100 + m.Month }

// String renders the month as e.g. "March 2025".
func (m MonthYear) String() string {
	if m.Month >= 1 && m.Month <= 12 {
		return fmt.Sprintf("%s %d", time.Month(m.Month), m.Year)
	}
	return fmt.Sprintf("%02d/%d", m.Month, m.Year)
}

// Next returns the following calendar month.
func (m MonthYear) Next() MonthYear {
	if m.Month >= 12 {
		return MonthYear{Month: 1, Year: m.Year + 1}
	}
	return MonthYear{Month: m.Month + 1, Year: m.Year}
}

// ExistsForMonth reports whether a budget already exists for the given month.
func ExistsForMonth(month, year int, existing []MonthYear) bool {
	for _, e := range existing {
		if e.Month == month && e.Year == year {
			return true
		}
	}
	return false
}

// TooOld reports whether the candidate month is rejected for being in the
// past relative to the most recent budget. Months at or after the most
// recent are never too old. Strictly older months are allowed only when
// they fill a gap, i.e. no budget exists for them yet.
func TooOld(month, year int, mostRecent *MonthYear, existing []MonthYear) bool {
	if mostRecent == nil {
		return false
	}
	if year*100+month >= mostRecent.key() {
		return false
	}
	return ExistsForMonth(month, year, existing)
}

// MostRecent returns the latest existing month, or nil if there are none.
func MostRecent(existing []MonthYear) *MonthYear {
	var best *MonthYear
	for i := range existing {
		if best == nil || existing[i].key() > best.key() {
			best = &existing[i]
		}
	}
	if best == nil {
		return nil
	}
	out := *best
	return &out
}

// DefaultMonthYear picks the month to preselect for a new budget: the
// first month at or after next calendar month that has no budget yet.
// The scan is bounded to 24 candidates; if every one of them is taken the
// last candidate scanned is returned even though it collides.
func DefaultMonthYear(existing []MonthYear, now time.Time) MonthYear {
	cand := MonthYear{Month: int(now.Month()), Year: now.Year()}.Next()
	for i := 0; i < defaultScanMonths; i++ {
		if !ExistsForMonth(cand.Month, cand.Year, existing) {
			return cand
		}
		if i == defaultScanMonths-1 {
			break
		}
		cand = cand.Next()
	}
	return cand
}

// ValidateMonthYear is the composite gate for the month/year choice on a
// new budget. The checks run in a fixed order so the user always sees the
// most relevant message: an unlocked budget elsewhere, then an exact
// collision, then the gap-fill rule, then month and year bounds.
// Returns nil when the choice is acceptable.
func ValidateMonthYear(month, year int, existing []MonthYear, mostRecent *MonthYear, hasUnlocked bool) error {
	if hasUnlocked {
		return errors.New("you already have an unlocked budget, finish or remove it first")
	}
	if ExistsForMonth(month, year, existing) {
		return fmt.Errorf("a budget for %s already exists", MonthYear{Month: month, Year: year})
	}
	if TooOld(month, year, mostRecent, existing) {
		return fmt.Errorf("%s is before your most recent budget and is not an open gap", MonthYear{Month: month, Year: year})
	}
	if month < 1 || month > 12 {
		return errors.New("month must be between 1 and 12")
	}
	if year < MinYear || year > MaxYear {
		return fmt.Errorf("year must be between %d and %d", MinYear, MaxYear)
	}
	return nil
}
