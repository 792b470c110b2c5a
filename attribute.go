package tesira

import "time"

// AttributeRef is a reference to one attribute on one block instance,
// the generic fallback spec.md §4.4 requires behind every typed method
// the block catalog surface exposes: any attribute outside the
// hand-authored subset in the block subpackage can still be reached
// through Attribute.
type AttributeRef struct {
	tag       InstanceTag
	attribute string
}

// Attribute builds a generic reference to attribute on the instance
// named by tag.
func Attribute(tag InstanceTag, attribute string) AttributeRef {
	return AttributeRef{tag: tag, attribute: attribute}
}

// Get builds a "get" command for the attribute.
func (a AttributeRef) Get(indexes ...IndexValue) Command {
	return NewGetCommand(a.tag, a.attribute, indexes...)
}

// Set builds a "set" command from an Encodable value.
func (a AttributeRef) Set(indexes []IndexValue, value Encodable) Command {
	return NewSetCommand(a.tag, a.attribute, indexes, value.EncodeTTP())
}

// SetRaw builds a "set" command from an already-encoded TTP token, for
// callers who have a wire token rather than an Encodable.
func (a AttributeRef) SetRaw(indexes []IndexValue, token string) Command {
	return NewSetCommand(a.tag, a.attribute, indexes, token)
}

// Increment builds an "increment" command. amount may be nil for
// attributes that accept a bare increment with no step argument.
func (a AttributeRef) Increment(indexes []IndexValue, amount Encodable) Command {
	return NewIncrementCommand(a.tag, a.attribute, indexes, encodeOptional(amount))
}

// Decrement builds a "decrement" command. amount may be nil.
func (a AttributeRef) Decrement(indexes []IndexValue, amount Encodable) Command {
	return NewDecrementCommand(a.tag, a.attribute, indexes, encodeOptional(amount))
}

// Toggle builds a "toggle" command.
func (a AttributeRef) Toggle(indexes ...IndexValue) Command {
	return NewToggleCommand(a.tag, a.attribute, indexes...)
}

// Subscribe builds a "subscribe" command, appending a minimum-rate
// argument only when minimumRate is positive.
func (a AttributeRef) Subscribe(indexes []IndexValue, label string, minimumRate time.Duration) Command {
	rate := ""
	if minimumRate > 0 {
		rate = EncodeDuration(minimumRate)
	}
	return NewSubscribeCommand(a.tag, a.attribute, indexes, label, rate)
}

// Unsubscribe builds an "unsubscribe" command.
func (a AttributeRef) Unsubscribe(indexes []IndexValue, label string) Command {
	return NewUnsubscribeCommand(a.tag, a.attribute, indexes, label)
}

func encodeOptional(e Encodable) string {
	if e == nil {
		return ""
	}
	return e.EncodeTTP()
}
