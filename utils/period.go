package utils

import (
	"fmt"
	"time"
)

// Period is a calendar month of a given year.
type Period struct {
	Month int `json:"month"`
	Year  int `json:"year"`
}

func NewPeriod(month, year int) (Period, error) {
	p := Period{Month: month, Year: year}
	return p, p.Validate()
}

// CurrentPeriod returns the period containing now in loc.
func CurrentPeriod(now time.Time, loc *time.Location) Period {
	now = now.In(loc)
	return Period{Month: int(now.Month()), Year: now.Year()}
}

func (p Period) Validate() error {
	if p.Month < 1 || p.Month > 12 {
		return fmt.Errorf("month must be between 1 and 12, got %d", p.Month)
	}
	if p.Year < 1 {
		return fmt.Errorf("year must be positive, got %d", p.Year)
	}
	return nil
}

// Window returns the first and the last calendar day of the month, both at midnight in loc.
func (p Period) Window(loc *time.Location) (start, end time.Time) {
	start = time.Date(p.Year, time.Month(p.Month), 1, 0, 0, 0, 0, loc)
	// day 0 of the next month normalizes to the last day of this one
	end = time.Date(p.Year, time.Month(p.Month)+1, 0, 0, 0, 0, 0, loc)
	return start, end
}

// Bounds returns the half-open range [start, end+1day) covering the whole last day.
func (p Period) Bounds(loc *time.Location) (from, to time.Time) {
	from, end := p.Window(loc)
	return from, end.AddDate(0, 0, 1)
}

func (p Period) Previous() Period {
	if p.Month == 1 {
		return Period{Month: 12, Year: p.Year - 1}
	}
	return Period{Month: p.Month - 1, Year: p.Year}
}

func (p Period) String() string {
	return fmt.Sprintf("%04d-%02d", p.Year, p.Month)
}
