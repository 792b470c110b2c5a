package tesira

import "strconv"

// InstanceTag names a block instance on the device, or one of the two
// reserved device-scoped services, SESSION and DEVICE (spec.md §3).
type InstanceTag string

// Reserved instance tags addressing device-scoped services.
const (
	SessionTag InstanceTag = "SESSION"
	DeviceTag  InstanceTag = "DEVICE"
)

// IndexValue selects a channel, band, input, or similar; indices are
// 1-origin on the device (spec.md §3).
type IndexValue uint

// Verb is the command verb emitted as the second field of a TTP
// request line (spec.md §3). Most verbs are the lowercase form of
// their name; speedDial and offHook/onHook keep internal camelCase.
type Verb int

const (
	Get Verb = iota
	Set
	Increment
	Decrement
	Toggle
	Subscribe
	Unsubscribe
	Dial
	SpeedDial
	Redial
	End
	Flash
	Send
	Dtmf
	Answer
	Lconf
	Resume
	Hold
	OffHook
	OnHook
)

var verbText = map[Verb]string{
	Get:         "get",
	Set:         "set",
	Increment:   "increment",
	Decrement:   "decrement",
	Toggle:      "toggle",
	Subscribe:   "subscribe",
	Unsubscribe: "unsubscribe",
	Dial:        "dial",
	SpeedDial:   "speedDial",
	Redial:      "redial",
	End:         "end",
	Flash:       "flash",
	Send:        "send",
	Dtmf:        "dtmf",
	Answer:      "answer",
	Lconf:       "lconf",
	Resume:      "resume",
	Hold:        "hold",
	OffHook:     "offHook",
	OnHook:      "onHook",
}

func (v Verb) String() string {
	if s, ok := verbText[v]; ok {
		return s
	}
	return "unknown"
}

// Command is the logical request record spec.md §3 defines: an
// instance tag, a verb, an attribute name, an ordered (possibly empty)
// sequence of indices, and an ordered (possibly empty) sequence of
// already-encoded TTP value tokens.
type Command struct {
	InstanceTag InstanceTag
	Verb        Verb
	Attribute   string
	Indexes     []IndexValue
	Values      []string
}

// Encode serializes cmd to a single TTP request line, without a
// trailing line terminator (spec.md §4.2). The session appends the
// "\n" when writing to the wire.
func (c Command) Encode() string {
	out := string(c.InstanceTag) + " " + c.Verb.String() + " " + c.Attribute
	for _, idx := range c.Indexes {
		out += " " + strconv.FormatUint(uint64(idx), 10)
	}
	for _, v := range c.Values {
		out += " " + v
	}
	return out
}

// NewGetCommand builds a "get" command.
func NewGetCommand(tag InstanceTag, attribute string, indexes ...IndexValue) Command {
	return Command{InstanceTag: tag, Verb: Get, Attribute: attribute, Indexes: indexes}
}

// NewSetCommand builds a "set" command. value must already be an
// encoded TTP token (see Encodable).
func NewSetCommand(tag InstanceTag, attribute string, indexes []IndexValue, value string) Command {
	return Command{InstanceTag: tag, Verb: Set, Attribute: attribute, Indexes: indexes, Values: []string{value}}
}

// NewIncrementCommand builds an "increment" command.
func NewIncrementCommand(tag InstanceTag, attribute string, indexes []IndexValue, amount string) Command {
	values := []string(nil)
	if amount != "" {
		values = []string{amount}
	}
	return Command{InstanceTag: tag, Verb: Increment, Attribute: attribute, Indexes: indexes, Values: values}
}

// NewDecrementCommand builds a "decrement" command.
func NewDecrementCommand(tag InstanceTag, attribute string, indexes []IndexValue, amount string) Command {
	values := []string(nil)
	if amount != "" {
		values = []string{amount}
	}
	return Command{InstanceTag: tag, Verb: Decrement, Attribute: attribute, Indexes: indexes, Values: values}
}

// NewToggleCommand builds a "toggle" command.
func NewToggleCommand(tag InstanceTag, attribute string, indexes ...IndexValue) Command {
	return Command{InstanceTag: tag, Verb: Toggle, Attribute: attribute, Indexes: indexes}
}

// NewSubscribeCommand builds a "subscribe" command. label is the
// subscription identifier the device will echo on every publish
// token; minimumRateMs, if non-empty, is appended as the minimum
// publish interval in milliseconds.
func NewSubscribeCommand(tag InstanceTag, attribute string, indexes []IndexValue, label string, minimumRateMs string) Command {
	values := []string{label}
	if minimumRateMs != "" {
		values = append(values, minimumRateMs)
	}
	return Command{InstanceTag: tag, Verb: Subscribe, Attribute: attribute, Indexes: indexes, Values: values}
}

// NewUnsubscribeCommand builds an "unsubscribe" command cancelling the
// subscription identified by label.
func NewUnsubscribeCommand(tag InstanceTag, attribute string, indexes []IndexValue, label string) Command {
	return Command{InstanceTag: tag, Verb: Unsubscribe, Attribute: attribute, Indexes: indexes, Values: []string{label}}
}

// AsUnsubscribe builds the "unsubscribe" command matching a
// "subscribe" command c: same instance tag, attribute, and indices,
// with the subscription label carried over and any minimum-rate value
// dropped. Calling it on a Command whose Verb isn't Subscribe panics.
//
// This mirrors the original Rust source's
// `impl From<SubscribeCommand> for UnsubscribeCommand` (src/proto.rs),
// dropped from the distilled typed surface but restored here as a
// convenience for subscription teardown.
func (c Command) AsUnsubscribe() Command {
	if c.Verb != Subscribe {
		panic("tesira: AsUnsubscribe called on a non-subscribe Command")
	}
	label := ""
	if len(c.Values) > 0 {
		label = c.Values[0]
	}
	return NewUnsubscribeCommand(c.InstanceTag, c.Attribute, c.Indexes, label)
}
