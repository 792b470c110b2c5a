package tesira

import "strconv"

// ValueKind distinguishes the variants of the TTP value language (spec.md
// §3/§4.1): numbers, booleans, quoted strings, bare constants, and the
// two container shapes, arrays and maps.
type ValueKind int

const (
	// Number is a finite float64, e.g. the device's "0.000000".
	Number ValueKind = iota
	// Boolean is "true" or "false".
	Boolean
	// String is a double-quoted string; its content cannot itself
	// contain a double quote.
	String
	// Constant is a bare alphanumeric/underscore identifier such as
	// LINK_1_GB or DHCP.
	Constant
	// Array is a heterogeneous, space-separated, bracket-delimited
	// sequence of values.
	Array
	// Map is a brace-delimited, space-separated set of quoted-key
	// entries; key order on the wire carries no meaning.
	Map
)

// Value is a tagged union over the TTP value language. Exactly one of
// the fields matching Kind is meaningful; the others are zero.
//
// Value is a plain struct rather than an interface so that Go's
// built-in equality helpers (reflect.DeepEqual, testify's
// require.Equal) work on it directly, map entries included.
type Value struct {
	Kind ValueKind

	num  float64
	bl   bool
	str  string // used by both String and Constant, disambiguated by Kind
	arr  []Value
	mmap map[string]Value
}

// NewNumber builds a Number value.
func NewNumber(v float64) Value { return Value{Kind: Number, num: v} }

// NewBoolean builds a Boolean value.
func NewBoolean(v bool) Value { return Value{Kind: Boolean, bl: v} }

// NewString builds a String value. s must not contain a double quote.
func NewString(s string) Value { return Value{Kind: String, str: s} }

// NewConstant builds a Constant (bare identifier) value.
func NewConstant(s string) Value { return Value{Kind: Constant, str: s} }

// NewArray builds an Array value from its elements.
func NewArray(items ...Value) Value {
	if items == nil {
		items = []Value{}
	}
	return Value{Kind: Array, arr: items}
}

// NewMap builds a Map value. Key order is not preserved; the TTP map
// grammar does not ascribe meaning to wire order.
func NewMap(entries map[string]Value) Value {
	if entries == nil {
		entries = map[string]Value{}
	}
	return Value{Kind: Map, mmap: entries}
}

// AsNumber returns the numeric payload and whether Kind == Number.
func (v Value) AsNumber() (float64, bool) { return v.num, v.Kind == Number }

// AsBoolean returns the boolean payload and whether Kind == Boolean.
func (v Value) AsBoolean() (bool, bool) { return v.bl, v.Kind == Boolean }

// AsString returns the string payload and whether Kind == String.
func (v Value) AsString() (string, bool) { return v.str, v.Kind == String }

// AsConstant returns the constant payload and whether Kind == Constant.
func (v Value) AsConstant() (string, bool) { return v.str, v.Kind == Constant }

// AsArray returns the element slice and whether Kind == Array.
func (v Value) AsArray() ([]Value, bool) { return v.arr, v.Kind == Array }

// AsMap returns the entry map and whether Kind == Map.
func (v Value) AsMap() (map[string]Value, bool) { return v.mmap, v.Kind == Map }

// Encode renders v back to its TTP wire token. Round-tripping a parsed
// Value through Encode and back through the parser yields an equal
// Value, modulo map key order and float precision (spec.md §8).
func (v Value) Encode() string {
	switch v.Kind {
	case Number:
		return encodeFloat(v.num)
	case Boolean:
		if v.bl {
			return "true"
		}
		return "false"
	case String:
		return `"` + v.str + `"`
	case Constant:
		return v.str
	case Array:
		out := "["
		for i, it := range v.arr {
			if i > 0 {
				out += " "
			}
			out += it.Encode()
		}
		return out + "]"
	case Map:
		out := "{"
		first := true
		for k, it := range v.mmap {
			if !first {
				out += " "
			}
			first = false
			out += `"` + k + `":` + it.Encode()
		}
		return out + "}"
	default:
		return ""
	}
}

// encodeFloat renders a float64 in the "default textual form" spec.md
// §4.2 requires of value tokens: the shortest decimal representation
// that round-trips exactly, with no locale-specific separators.
func encodeFloat(f float64) string {
	return strconv.FormatFloat(f, 'f', -1, 64)
}
