package datefmt_test

import (
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssoma/internal/datefmt"
	"ssoma/internal/domain"
)

func TestFormat_Absent(t *testing.T) {
	var nilTime *time.Time
	var nilDate *domain.Date
	for _, v := range []any{nil, "", 0, int64(0), 0.0, false, time.Time{}, nilTime, nilDate} {
		assert.Equal(t, datefmt.Placeholder, datefmt.Format(v), "%#v", v)
	}
}

func TestFormat_DateOnlyKeepsCalendarDay(t *testing.T) {
	// A zone west of UTC must not shift a plain date to the previous day.
	lima := time.FixedZone("PET", -5*3600)
	f, err := datefmt.New("es-ES", lima)
	require.NoError(t, err)

	assert.Equal(t, "05/03/2024", f.Format("2024-03-05"))
	assert.Equal(t, "05/03/2024", datefmt.Format("2024-03-05"))
	assert.Equal(t, "01/03/2024", f.Format("2024-03"))
	assert.Equal(t, "01/01/2024", f.Format("2024"))
}

func TestFormatter_Inputs(t *testing.T) {
	f, err := datefmt.New("es-ES", time.UTC)
	require.NoError(t, err)

	ts := time.Date(2024, time.December, 31, 22, 30, 0, 0, time.UTC)
	d := domain.NewDate(2023, time.January, 9)
	tests := []struct {
		name string
		in   any
		want string
	}{
		{"rfc3339 with offset", "2024-03-05T23:30:00-05:00", "06/03/2024"},
		{"local datetime", "2024-03-05T10:15:30.123456", "05/03/2024"},
		{"space separated", "2024-03-05 10:15:30", "05/03/2024"},
		{"time value", ts, "31/12/2024"},
		{"time pointer", &ts, "31/12/2024"},
		{"millis int64", ts.UnixMilli(), "31/12/2024"},
		{"millis float", float64(ts.UnixMilli()), "31/12/2024"},
		{"domain date", d, "09/01/2023"},
		{"domain date pointer", &d, "09/01/2023"},
		{"garbage", "not a date", datefmt.Invalid},
		{"impossible day", "2024-02-30", datefmt.Invalid},
		{"year month", "2024-03", "01/03/2024"},
		{"year only", " 2024 ", "01/01/2024"},
		{"impossible month", "2024-13", datefmt.Invalid},
		{"two digit year", "24", datefmt.Invalid},
		{"out of range millis", 9e15, datefmt.Invalid},
		{"true", true, datefmt.Invalid},
		{"unsupported type", struct{}{}, datefmt.Invalid},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, f.Format(tt.in))
		})
	}
}

func TestNew_Locales(t *testing.T) {
	tests := []struct {
		locale string
		want   string
	}{
		{"es-ES", "05/03/2024"},
		{"es-PE", "05/03/2024"},
		{"en-US", "03/05/2024"},
		{"en-GB", "05/03/2024"},
		{"de-DE", "05.03.2024"},
		{"ja-JP", "2024/03/05"},
	}
	for _, tt := range tests {
		t.Run(tt.locale, func(t *testing.T) {
			f, err := datefmt.New(tt.locale, time.UTC)
			require.NoError(t, err)
			assert.Equal(t, tt.want, f.Format("2024-03-05"))
		})
	}

	_, err := datefmt.New("not_a_locale!", nil)
	assert.Error(t, err)
}

func TestFormatLocale_FallsBackToSpanish(t *testing.T) {
	assert.Equal(t, "05/03/2024", datefmt.FormatLocale("2024-03-05", "%%%"))
	assert.Equal(t, "03/05/2024", datefmt.FormatLocale("2024-03-05", "en-US"))
}
