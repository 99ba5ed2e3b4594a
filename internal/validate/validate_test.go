package validate_test

import (
	"math"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"

	"ssoma/internal/validate"
)

func TestTaxID(t *testing.T) {
	empty := ""
	good := "20123456789"
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil is optional", nil, true},
		{"empty is optional", "", true},
		{"nil pointer", (*string)(nil), true},
		{"empty pointer", &empty, true},
		{"eleven digits", "12345678901", true},
		{"pointer to eleven digits", &good, true},
		{"ten digits", "1234567890", false},
		{"twelve digits", "123456789012", false},
		{"trailing letter", "1234567890a", false},
		{"leading space", " 12345678901", false},
		{"trailing newline", "12345678901\n", false},
		{"non-ascii digits", "١٢٣٤٥٦٧٨٩٠١", false},
		{"integer value", 12345678901, true},
		{"short integer", int64(12345), false},
		{"whole float", float64(12345678901), true},
		{"fractional float", 1234567890.5, false},
		{"float zero is optional", 0.0, true},
		{"float in exponent range", 1.2345678901e21, false},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.TaxID(tt.in))
		})
	}
}

func TestTaxID_DigitStringsOfOtherLengthsFail(t *testing.T) {
	for n := 1; n <= 20; n++ {
		s := strings.Repeat("7", n)
		assert.Equal(t, n == validate.TaxIDLength, validate.TaxID(s), "length %d", n)
	}
}

func TestScore(t *testing.T) {
	ten := 10
	tests := []struct {
		name string
		in   any
		want bool
	}{
		{"nil is optional", nil, true},
		{"empty is optional", "", true},
		{"zero is treated as absent", 0, true},
		{"false is treated as absent", false, true},
		{"NaN is treated as absent", math.NaN(), true},
		{"zero string", "0", true},
		{"fifty", "50", true},
		{"upper bound", "100", true},
		{"above range", "101", false},
		{"negative", "-1", false},
		{"fraction truncated", "99.9", true},
		{"trailing text ignored", "42abc", true},
		{"leading whitespace", "  7", true},
		{"hex prefix", "0x10", true},
		{"hex above range", "0xff", false},
		{"not a number", "abc", false},
		{"sign only", "-", false},
		{"huge", "99999999999999999999999999", false},
		{"int in range", 100, true},
		{"int above range", 150, false},
		{"float truncated", 100.5, true},
		{"negative fraction truncates to zero", -0.5, true},
		{"infinity", math.Inf(1), false},
		{"large float prints in exponent form", 1e21, true},
		{"large negative float", -1e21, false},
		{"large float below exponent form", 1e20, false},
		{"tiny float reads its mantissa", 5e-7, true},
		{"true", true, false},
		{"int pointer", &ten, true},
		{"nil int pointer", (*int)(nil), true},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, validate.Score(tt.in))
		})
	}
}

func TestParseInt(t *testing.T) {
	tests := []struct {
		in     string
		want   int64
		wantOK bool
	}{
		{"12", 12, true},
		{"+12", 12, true},
		{"-12px", -12, true},
		{"\t\n 3", 3, true},
		{"0X1A", 26, true},
		{"0x", 0, false},
		{"", 0, false},
		{"x1", 0, false},
	}
	for _, tt := range tests {
		got, ok := validate.ParseInt(tt.in)
		assert.Equal(t, tt.wantOK, ok, "%q", tt.in)
		if tt.wantOK {
			assert.Equal(t, tt.want, got, "%q", tt.in)
		}
	}
}
