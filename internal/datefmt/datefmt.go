// Package datefmt renders optional date values for display in a given
// locale. Absent values render as "-" and unparsable ones as
// "Invalid Date"; formatting never fails.
package datefmt

import (
	"fmt"
	"math"
	"reflect"
	"strings"
	"time"

	"golang.org/x/text/language"
)

const (
	// DefaultLocale is the locale used by Format.
	DefaultLocale = "es-ES"

	// Placeholder is rendered for absent dates.
	Placeholder = "-"
	// Invalid is rendered for values that do not parse as a date.
	Invalid = "Invalid Date"
)

// supported locales and their numeric short-date layouts. Order matters:
// the first entry is the matcher's fallback.
var (
	supported = []language.Tag{
		language.MustParse("es-ES"),
		language.AmericanEnglish,
		language.BritishEnglish,
		language.MustParse("de-DE"),
		language.MustParse("fr-FR"),
		language.MustParse("pt-BR"),
		language.MustParse("it-IT"),
		language.MustParse("ja-JP"),
		language.MustParse("zh-CN"),
	}
	layouts = []string{
		"02/01/2006",
		"01/02/2006",
		"02/01/2006",
		"02.01.2006",
		"02/01/2006",
		"02/01/2006",
		"02/01/2006",
		"2006/01/02",
		"2006/01/02",
	}
	matcher = language.NewMatcher(supported)
)

// Date-only forms name a calendar date, not an instant, so they skip the
// zone conversion. Missing month or day means the first.
var dateOnlyLayouts = []string{time.DateOnly, "2006-01", "2006"}

// input layouts tried, in order, for string values.
var parseLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05.999999999",
	"2006-01-02T15:04",
	"2006-01-02 15:04:05",
	time.RFC1123,
	time.RFC1123Z,
}

// Formatter renders dates with one locale layout in one time zone.
type Formatter struct {
	Locale string
	Layout string
	Loc    *time.Location
}

var std = &Formatter{Locale: DefaultLocale, Layout: layouts[0], Loc: time.Local}

// New returns a Formatter for locale rendering instants in loc. A nil loc
// means time.Local.
func New(locale string, loc *time.Location) (*Formatter, error) {
	tag, err := language.Parse(locale)
	if err != nil {
		return nil, fmt.Errorf("datefmt: locale %q: %w", locale, err)
	}
	_, idx, conf := matcher.Match(tag)
	if conf == language.No {
		return nil, fmt.Errorf("datefmt: unsupported locale %q", locale)
	}
	if loc == nil {
		loc = time.Local
	}
	return &Formatter{Locale: supported[idx].String(), Layout: layouts[idx], Loc: loc}, nil
}

// Format renders v with the es-ES layout in the local time zone.
func Format(v any) string { return std.Format(v) }

// FormatLocale renders v with locale, falling back to es-ES when the
// locale is not supported.
func FormatLocale(v any, locale string) string {
	f, err := New(locale, nil)
	if err != nil {
		f = std
	}
	return f.Format(v)
}

// Format renders v. Accepted inputs are nil, strings, time.Time values
// and pointers, and integer or float millisecond timestamps. Date-only
// strings (YYYY-MM-DD, YYYY-MM, YYYY) are rendered as that calendar date regardless of
// the zone.
func (f *Formatter) Format(v any) string {
	switch x := v.(type) {
	case nil:
		return Placeholder
	case string:
		return f.formatString(x)
	case *string:
		if x == nil {
			return Placeholder
		}
		return f.formatString(*x)
	case time.Time:
		if x.IsZero() {
			return Placeholder
		}
		return f.inZone(x)
	case *time.Time:
		if x == nil || x.IsZero() {
			return Placeholder
		}
		return f.inZone(*x)
	case int:
		return f.formatMillis(float64(x))
	case int64:
		return f.formatMillis(float64(x))
	case float64:
		return f.formatMillis(x)
	case bool:
		if !x {
			return Placeholder
		}
		return Invalid
	}
	if rv := reflect.ValueOf(v); rv.Kind() == reflect.Pointer && rv.IsNil() {
		return Placeholder
	}
	if z, ok := v.(interface{ IsZero() bool }); ok && z.IsZero() {
		return Placeholder
	}
	if s, ok := v.(fmt.Stringer); ok {
		return f.formatString(s.String())
	}
	return Invalid
}

func (f *Formatter) formatString(s string) string {
	if s == "" {
		return Placeholder
	}
	s = strings.TrimSpace(s)
	for _, layout := range dateOnlyLayouts {
		if t, err := time.Parse(layout, s); err == nil {
			return t.Format(f.Layout)
		}
	}
	for _, layout := range parseLayouts {
		t, err := time.ParseInLocation(layout, s, f.Loc)
		if err == nil {
			return f.inZone(t)
		}
	}
	return Invalid
}

func (f *Formatter) formatMillis(ms float64) string {
	if ms == 0 || math.IsNaN(ms) {
		return Placeholder
	}
	// Outside the ±8.64e15 ms range a browser Date is invalid too.
	if math.Abs(ms) > 8.64e15 {
		return Invalid
	}
	return f.inZone(time.UnixMilli(int64(ms)))
}

func (f *Formatter) inZone(t time.Time) string {
	return t.In(f.Loc).Format(f.Layout)
}
