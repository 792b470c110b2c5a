// Package block is the hand-authored "generated-style" typed command
// surface spec.md §4.4/§9 describes as the alternative to build-time
// code generation: one builder type per block family, one method per
// (attribute, verb) pair, synthesized by hand from the attribute
// catalog below instead of by a build.rs-equivalent.
package block

import "github.com/biamp-oss/tesira-ttp"

// ValueKind identifies which argument shape an AttributeSpec's value
// takes, mirroring spec.md §4.4's ValueSpec variants.
type ValueKind int

const (
	// VNone is a status attribute with no Set-side argument (Get and
	// Subscribe only).
	VNone ValueKind = iota
	// VRange is a bounded float64, e.g. a level in dB.
	VRange
	// VDiscrete is a closed set of named string values. A two-value
	// {"false","true"} set collapses to a Go bool in the builder.
	VDiscrete
	// VDelay is the DelayValue tagged union (tesira.DelayValue).
	VDelay
	// VUnbounded is a value the catalog does not constrain further.
	// The builder methods for the VUnbounded attributes in this catalog
	// take a Go string and send it as a quoted TTP string; other
	// tesira.Encodable values reach these attributes only through
	// tesira.AttributeRef.Set.
	VUnbounded
	// VTypeSlope is the filter type/slope pair (tesira.TypeSlope).
	VTypeSlope
	// VFreqGain is the frequency/gain pair (tesira.FreqGain).
	VFreqGain
	// VDate is a timestamp (tesira.DateValue).
	VDate
)

// IndexRole names what a positional index on a command selects, for
// documentation purposes; the builder methods take plain
// tesira.IndexValue parameters in this order.
type IndexRole int

const (
	IdxChannel IndexRole = iota
	IdxBand
	IdxInput
	IdxOutput
	IdxSource
)

// AttributeSpec documents one attribute of a Block: its name on the
// wire, which verbs apply to it, how many indices it takes, and the
// shape of its value argument. The hand-written builder methods in
// builder.go implement exactly what this catalog describes; it is
// reference documentation for that surface; synthesizing builder
// methods mechanically from it is future work (spec.md §9 notes
// build-time codegen is out of scope, not prohibited).
type AttributeSpec struct {
	Name      string
	Verbs     []tesira.Verb
	Indexes   []IndexRole
	Value     ValueKind
	Discrete  []string // populated when Value == VDiscrete
}

// Block documents one catalog family: a functional block type and the
// attributes it exposes.
type Block struct {
	Group      string
	Attributes []AttributeSpec
}

// Catalog is the reference attribute catalog backing the builder
// types in builder.go. It is not read at runtime by the builders; it exists so
// the surface can be audited attribute-by-attribute against spec.md's
// worked examples and the device's published attribute tables.
var Catalog = map[string]Block{
	"Level": {
		Group: "Level",
		Attributes: []AttributeSpec{
			{Name: "level", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Increment, tesira.Decrement, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VRange},
			{Name: "mute", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Toggle, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VDiscrete, Discrete: []string{"false", "true"}},
			{Name: "label", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxChannel}, Value: VUnbounded},
			{Name: "rampInterval", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: nil, Value: VRange},
		},
	},
	"Mixer": {
		Group: "Mixer",
		Attributes: []AttributeSpec{
			{Name: "crosspointGain", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Increment, tesira.Decrement, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxInput, IdxOutput}, Value: VRange},
			{Name: "crosspointMute", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Toggle, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxInput, IdxOutput}, Value: VDiscrete, Discrete: []string{"false", "true"}},
			{Name: "crosspointState", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxInput, IdxOutput}, Value: VDiscrete, Discrete: []string{"Enabled", "Disabled", "Muted"}},
		},
	},
	"Router": {
		Group: "Router",
		Attributes: []AttributeSpec{
			{Name: "select", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxOutput}, Value: VUnbounded},
			{Name: "priority", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxOutput}, Value: VDiscrete, Discrete: []string{"A", "B", "C"}},
		},
	},
	"Audio Meter": {
		Group: "Audio Meter",
		Attributes: []AttributeSpec{
			{Name: "level", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VRange},
			{Name: "peak", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VRange},
			{Name: "overload", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VDiscrete, Discrete: []string{"false", "true"}},
		},
	},
	"Logic Meter": {
		Group: "Logic Meter",
		Attributes: []AttributeSpec{
			{Name: "state", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VDiscrete, Discrete: []string{"false", "true"}},
		},
	},
	"VoIP Control Status": {
		Group: "VoIP Control Status",
		Attributes: []AttributeSpec{
			{Name: "callState", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: nil, Value: VDiscrete, Discrete: []string{"Idle", "Dialing", "Ringing", "Connected", "Hold"}},
			{Name: "registrationState", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: nil, Value: VDiscrete, Discrete: []string{"Registered", "Unregistered", "Failed"}},
		},
	},
	"Dante AES67 Receiver": {
		Group: "Dante AES67 Receiver",
		Attributes: []AttributeSpec{
			{Name: "rxChannelLabel", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxChannel}, Value: VUnbounded},
			{Name: "rxChannelStatus", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: []IndexRole{IdxChannel}, Value: VDiscrete, Discrete: []string{"Unconnected", "Connected", "Error"}},
			{Name: "syncStatus", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: nil, Value: VDiscrete, Discrete: []string{"false", "true"}},
		},
	},
	"Dante AES67 Transmitter": {
		Group: "Dante AES67 Transmitter",
		Attributes: []AttributeSpec{
			{Name: "txChannelLabel", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxChannel}, Value: VUnbounded},
			{Name: "txChannelEnable", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Toggle}, Indexes: []IndexRole{IdxChannel}, Value: VDiscrete, Discrete: []string{"false", "true"}},
		},
	},
	"Tone Generator": {
		Group: "Tone Generator",
		Attributes: []AttributeSpec{
			{Name: "level", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: nil, Value: VRange},
			{Name: "enable", Verbs: []tesira.Verb{tesira.Get, tesira.Set, tesira.Toggle}, Indexes: nil, Value: VDiscrete, Discrete: []string{"false", "true"}},
			{Name: "toneFrequencyGain", Verbs: []tesira.Verb{tesira.Set}, Indexes: nil, Value: VFreqGain},
		},
	},
	"Crossover": {
		Group: "Crossover",
		Attributes: []AttributeSpec{
			{Name: "filterTypeSlope", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxBand}, Value: VTypeSlope},
		},
	},
	"Delay Matrix": {
		Group: "Delay Matrix",
		Attributes: []AttributeSpec{
			{Name: "delay", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: []IndexRole{IdxChannel}, Value: VDelay},
		},
	},
	"Network Status": {
		Group: "Network Status",
		Attributes: []AttributeSpec{
			{Name: "networkStatus", Verbs: []tesira.Verb{tesira.Get}, Indexes: nil, Value: VNone},
			{Name: "linkState", Verbs: []tesira.Verb{tesira.Get, tesira.Subscribe, tesira.Unsubscribe}, Indexes: nil, Value: VDiscrete, Discrete: []string{"Up", "Down"}},
		},
	},
	"Session Services": {
		Group: "Session Services",
		Attributes: []AttributeSpec{
			{Name: "aliases", Verbs: []tesira.Verb{tesira.Get}, Indexes: nil, Value: VNone},
		},
	},
	"Device Services": {
		Group: "Device Services",
		Attributes: []AttributeSpec{
			{Name: "time", Verbs: []tesira.Verb{tesira.Get, tesira.Set}, Indexes: nil, Value: VDate},
			{Name: "version", Verbs: []tesira.Verb{tesira.Get}, Indexes: nil, Value: VNone},
		},
	},
}
