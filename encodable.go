package tesira

import (
	"fmt"
	"strconv"
	"time"
)

// Encodable is implemented by any Go value the typed command surface
// (spec.md §4.4) can turn into a pre-encoded TTP value token for a
// Command's Values slice. This is the capability spec.md's Unbounded
// ValueSpec refers to as "any type implementing the 'encodable as TTP'
// capability".
type Encodable interface {
	EncodeTTP() string
}

// EncodeFloat renders f in the default f64 textual form spec.md §4.2
// requires of value tokens.
func EncodeFloat(f float64) string { return encodeFloat(f) }

// EncodeBool renders b as the bare TTP boolean token.
func EncodeBool(b bool) string {
	if b {
		return "true"
	}
	return "false"
}

// EncodeString quotes s as a TTP string token. s must not contain a
// double quote (spec.md §3).
func EncodeString(s string) string { return `"` + s + `"` }

// EncodeConstant renders s as a bare TTP constant token.
func EncodeConstant(s string) string { return s }

// EncodeDuration renders d as a whole number of milliseconds, the form
// spec.md §4.2 requires for subscribe's minimum-rate argument.
func EncodeDuration(d time.Duration) string {
	return strconv.FormatInt(d.Milliseconds(), 10)
}

// EncodeDate renders t as the TTP date-time form spec.md §4.2/§8
// pins: "HH:MM:SS:M:DD:YYYY", with the month emitted unpadded and the
// day zero-padded to two digits. This asymmetry is observed device
// behavior, not resolved further (spec.md §9).
func EncodeDate(t time.Time) string {
	return fmt.Sprintf("%02d:%02d:%02d:%d:%02d:%04d",
		t.Hour(), t.Minute(), t.Second(), int(t.Month()), t.Day(), t.Year())
}

// DateValue adapts time.Time to Encodable for use as a Date ValueSpec
// argument in the typed surface.
type DateValue time.Time

func (d DateValue) EncodeTTP() string { return EncodeDate(time.Time(d)) }

// DelayUnit is the unit tag of a DelayValue's structured token.
type DelayUnit string

const (
	Milliseconds DelayUnit = "Milliseconds"
	Centimeters  DelayUnit = "Centimeters"
	Meters       DelayUnit = "Meters"
	Inches       DelayUnit = "Inches"
	Feet         DelayUnit = "Feet"
)

// DelayValue is the tagged union spec.md §4.4 requires for the Delay
// ValueSpec: a delay expressed in milliseconds or in one of four
// distance units.
type DelayValue struct {
	unit   DelayUnit
	amount float64
}

// NewDelayMilliseconds builds a DelayValue from a time.Duration.
func NewDelayMilliseconds(d time.Duration) DelayValue {
	return DelayValue{unit: Milliseconds, amount: float64(d.Milliseconds())}
}

// NewDelayCentimeters builds a DelayValue in centimeters.
func NewDelayCentimeters(v float64) DelayValue { return DelayValue{unit: Centimeters, amount: v} }

// NewDelayMeters builds a DelayValue in meters.
func NewDelayMeters(v float64) DelayValue { return DelayValue{unit: Meters, amount: v} }

// NewDelayInches builds a DelayValue in inches.
func NewDelayInches(v float64) DelayValue { return DelayValue{unit: Inches, amount: v} }

// NewDelayFeet builds a DelayValue in feet.
func NewDelayFeet(v float64) DelayValue { return DelayValue{unit: Feet, amount: v} }

// EncodeTTP renders the DelayValue as the brace-delimited, space
// separated structured token spec.md §4.2/§8 describes, e.g.
// `{"units":Milliseconds "delay":42}`. Milliseconds are rendered as a
// whole number; every other unit uses the default f64 form.
func (d DelayValue) EncodeTTP() string {
	var amount string
	if d.unit == Milliseconds {
		amount = strconv.FormatInt(int64(d.amount), 10)
	} else {
		amount = encodeFloat(d.amount)
	}
	return fmt.Sprintf(`{"units":%s "delay":%s}`, d.unit, amount)
}

// FilterType is the filter family of a TypeSlope ValueSpec argument.
type FilterType string

const (
	Butterworth   FilterType = "Butterworth"
	LinkwitzRiley FilterType = "Linkwitz-Riley"
	Bessel        FilterType = "Bessel"
)

// validSlopes enumerates the only filter slopes the device accepts.
var validSlopes = [...]uint{6, 12, 18, 24, 30, 36, 42, 48}

// FilterSlope is a filter slope in dB/octave, restricted at
// construction time to the device's supported set (spec.md §4.4/§7:
// "invalid filter slopes raise a construction-time error, never an
// on-wire failure").
type FilterSlope struct {
	value uint
}

// Named constants for every valid slope, mirroring the original
// source's FilterSlope::SIX/TWELVE/... associated constants.
var (
	FilterSlopeSix        = FilterSlope{6}
	FilterSlopeTwelve     = FilterSlope{12}
	FilterSlopeEighteen   = FilterSlope{18}
	FilterSlopeTwentyFour = FilterSlope{24}
	FilterSlopeThirty     = FilterSlope{30}
	FilterSlopeThirtySix  = FilterSlope{36}
	FilterSlopeFortyTwo   = FilterSlope{42}
	FilterSlopeFortyEight = FilterSlope{48}
)

// NewFilterSlope validates slope against the device's supported set.
func NewFilterSlope(slope uint) (FilterSlope, error) {
	for _, v := range validSlopes {
		if v == slope {
			return FilterSlope{value: slope}, nil
		}
	}
	return FilterSlope{}, fmt.Errorf("tesira: invalid filter slope %d, allowed slopes are %v", slope, validSlopes)
}

// Value returns the numeric slope.
func (s FilterSlope) Value() uint { return s.value }

// TypeSlope is the ValueSpec pair spec.md §4.4 requires: a filter type
// and its slope, rendered as a structured brace-delimited token.
type TypeSlope struct {
	Type  FilterType
	Slope FilterSlope
}

func (t TypeSlope) EncodeTTP() string {
	return fmt.Sprintf(`{"type":%s "slope":%d}`, t.Type, t.Slope.value)
}

// FreqGain is the ValueSpec pair spec.md §4.4 requires: a frequency in
// Hz and a gain in dB, rendered as a structured brace-delimited token.
type FreqGain struct {
	Frequency float64
	Gain      float64
}

func (f FreqGain) EncodeTTP() string {
	return fmt.Sprintf(`{"frequency":%s "gain":%s}`, encodeFloat(f.Frequency), encodeFloat(f.Gain))
}
