package engine_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/tartampluch/go-birthday-wheel/internal/engine"
)

func TestDaysIn(t *testing.T) {
	tests := []struct {
		month, year, want int
	}{
		{1, 2023, 31},
		{2, 2023, 28},
		{2, 2024, 29},
		{2, 1900, 28}, // Divisible by 100, not by 400
		{2, 2000, 29}, // Divisible by 400
		{4, 2023, 30},
		{6, 2023, 30},
		{9, 2023, 30},
		{11, 2023, 30},
		{12, 2023, 31},
	}

	for _, tt := range tests {
		assert.Equalf(t, tt.want, engine.DaysIn(tt.month, tt.year), "DaysIn(%d, %d)", tt.month, tt.year)
	}

	assert.True(t, engine.IsLeapYear(2024))
	assert.False(t, engine.IsLeapYear(2100))
}

func TestDate_Normalize(t *testing.T) {
	tests := []struct {
		name        string
		in          engine.Date
		want        string
		wantClamped bool
	}{
		{"Valid date untouched", engine.Date{Day: 15, Month: 8, Year: 1995}, "August 15, 1995", false},
		{"April 31 clamps to 30", engine.Date{Day: 31, Month: 4, Year: 2023}, "April 30, 2023", true},
		{"Feb 29 common year clamps to 28", engine.Date{Day: 29, Month: 2, Year: 2023}, "February 28, 2023", true},
		{"Feb 29 leap year accepted", engine.Date{Day: 29, Month: 2, Year: 2024}, "February 29, 2024", false},
		{"Feb 31 leap year clamps to 29", engine.Date{Day: 31, Month: 2, Year: 2000}, "February 29, 2000", true},
		{"Last day of year", engine.Date{Day: 31, Month: 12, Year: 1900}, "December 31, 1900", false},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, clamped := tt.in.Normalize()
			assert.Equal(t, tt.wantClamped, clamped)
			assert.Equal(t, tt.want, got.Format())
		})
	}
}

// TestDate_Format_NoClampForValidDays walks every valid day of a few years
// and checks the rendered text is exactly "<MonthName> <day>, <year>".
func TestDate_Format_NoClampForValidDays(t *testing.T) {
	for _, year := range []int{1900, 1999, 2000, 2023, 2024} {
		for month := 1; month <= 12; month++ {
			for day := 1; day <= engine.DaysIn(month, year); day++ {
				d := engine.Date{Day: day, Month: month, Year: year}
				got, clamped := d.Normalize()
				if clamped {
					t.Fatalf("%v should not be clamped", d)
				}
				want := time.Date(year, time.Month(month), day, 0, 0, 0, 0, time.UTC).Format("January 2, 2006")
				if got.Format() != want {
					t.Fatalf("Format() = %q, want %q", got.Format(), want)
				}
			}
		}
	}
}

func TestDate_Fields(t *testing.T) {
	d := engine.DefaultDate()
	assert.Equal(t, engine.Date{Day: 1, Month: 1, Year: 2000}, d)

	d = d.WithField(engine.ColumnDay, 31).WithField(engine.ColumnMonth, 4).WithField(engine.ColumnYear, 2023)
	assert.Equal(t, 31, d.Field(engine.ColumnDay))
	assert.Equal(t, 4, d.Field(engine.ColumnMonth))
	assert.Equal(t, 2023, d.Field(engine.ColumnYear))

	assert.Equal(t, engine.Date{Day: 14, Month: 7, Year: 1984},
		engine.DateFromTime(time.Date(1984, 7, 14, 8, 0, 0, 0, time.UTC)))
}

func TestMonthName(t *testing.T) {
	assert.Equal(t, "January", engine.MonthName(1))
	assert.Equal(t, "December", engine.MonthName(12))
	assert.Empty(t, engine.MonthName(0))
	assert.Empty(t, engine.MonthName(13))
}

func TestColumn_String(t *testing.T) {
	assert.Equal(t, "day", engine.ColumnDay.String())
	assert.Equal(t, "month", engine.ColumnMonth.String())
	assert.Equal(t, "year", engine.ColumnYear.String())
	assert.Equal(t, "column(7)", engine.Column(7).String())
}
