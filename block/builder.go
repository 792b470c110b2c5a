package block

import (
	"time"

	"github.com/biamp-oss/tesira-ttp"
)

// CommandBuilder is the entry point of the typed command surface:
// CommandBuilder{}.Level("Level1").SetLevel(1, -6) reads like the
// device's own attribute tables, while still producing the same
// tesira.Command the generic tesira.Attribute fallback would.
type CommandBuilder struct{}

// NewCommandBuilder returns a zero-value CommandBuilder; it carries no
// state of its own, only the per-family accessor methods below.
func NewCommandBuilder() CommandBuilder { return CommandBuilder{} }

// Session accesses the reserved SESSION-scoped service attributes.
func (CommandBuilder) Session() SessionCommandBuilder { return SessionCommandBuilder{} }

// Device accesses the reserved DEVICE-scoped service attributes.
func (CommandBuilder) Device() DeviceCommandBuilder { return DeviceCommandBuilder{} }

// Level accesses a Level block instance.
func (CommandBuilder) Level(tag tesira.InstanceTag) LevelCommandBuilder {
	return LevelCommandBuilder{tag: tag}
}

// Mixer accesses a Mixer block instance.
func (CommandBuilder) Mixer(tag tesira.InstanceTag) MixerCommandBuilder {
	return MixerCommandBuilder{tag: tag}
}

// Router accesses a Router block instance.
func (CommandBuilder) Router(tag tesira.InstanceTag) RouterCommandBuilder {
	return RouterCommandBuilder{tag: tag}
}

// AudioMeter accesses an Audio Meter block instance.
func (CommandBuilder) AudioMeter(tag tesira.InstanceTag) AudioMeterCommandBuilder {
	return AudioMeterCommandBuilder{tag: tag}
}

// LogicMeter accesses a Logic Meter block instance.
func (CommandBuilder) LogicMeter(tag tesira.InstanceTag) LogicMeterCommandBuilder {
	return LogicMeterCommandBuilder{tag: tag}
}

// VoIPControlStatus accesses a VoIP Control Status block instance.
func (CommandBuilder) VoIPControlStatus(tag tesira.InstanceTag) VoIPControlStatusCommandBuilder {
	return VoIPControlStatusCommandBuilder{tag: tag}
}

// DanteAES67Receiver accesses a Dante/AES67 Receiver block instance.
func (CommandBuilder) DanteAES67Receiver(tag tesira.InstanceTag) DanteAES67ReceiverCommandBuilder {
	return DanteAES67ReceiverCommandBuilder{tag: tag}
}

// DanteAES67Transmitter accesses a Dante/AES67 Transmitter block
// instance.
func (CommandBuilder) DanteAES67Transmitter(tag tesira.InstanceTag) DanteAES67TransmitterCommandBuilder {
	return DanteAES67TransmitterCommandBuilder{tag: tag}
}

// ToneGenerator accesses a Tone Generator block instance.
func (CommandBuilder) ToneGenerator(tag tesira.InstanceTag) ToneGeneratorCommandBuilder {
	return ToneGeneratorCommandBuilder{tag: tag}
}

// Crossover accesses a Crossover block instance.
func (CommandBuilder) Crossover(tag tesira.InstanceTag) CrossoverCommandBuilder {
	return CrossoverCommandBuilder{tag: tag}
}

// DelayMatrix accesses a Delay Matrix block instance.
func (CommandBuilder) DelayMatrix(tag tesira.InstanceTag) DelayMatrixCommandBuilder {
	return DelayMatrixCommandBuilder{tag: tag}
}

// NetworkStatus accesses a Network Status block instance.
func (CommandBuilder) NetworkStatus(tag tesira.InstanceTag) NetworkStatusCommandBuilder {
	return NetworkStatusCommandBuilder{tag: tag}
}

// SessionCommandBuilder exposes the SESSION-scoped service attributes.
type SessionCommandBuilder struct{}

// Aliases builds "SESSION get aliases".
func (SessionCommandBuilder) Aliases() tesira.Command {
	return tesira.Attribute(tesira.SessionTag, "aliases").Get()
}

// DeviceCommandBuilder exposes the DEVICE-scoped service attributes.
type DeviceCommandBuilder struct{}

func (DeviceCommandBuilder) Time() tesira.Command {
	return tesira.Attribute(tesira.DeviceTag, "time").Get()
}

func (DeviceCommandBuilder) SetTime(at tesira.DateValue) tesira.Command {
	return tesira.Attribute(tesira.DeviceTag, "time").Set(nil, at)
}

func (DeviceCommandBuilder) Version() tesira.Command {
	return tesira.Attribute(tesira.DeviceTag, "version").Get()
}

// LevelCommandBuilder exposes the attributes of one Level block
// instance.
type LevelCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b LevelCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b LevelCommandBuilder) Level(channel tesira.IndexValue) tesira.Command {
	return b.attr("level").Get(channel)
}

func (b LevelCommandBuilder) SetLevel(channel tesira.IndexValue, db float64) tesira.Command {
	return b.attr("level").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeFloat(db))
}

func (b LevelCommandBuilder) IncrementLevel(channel tesira.IndexValue, step float64) tesira.Command {
	return b.attr("level").Increment([]tesira.IndexValue{channel}, floatEncodable(step))
}

func (b LevelCommandBuilder) DecrementLevel(channel tesira.IndexValue, step float64) tesira.Command {
	return b.attr("level").Decrement([]tesira.IndexValue{channel}, floatEncodable(step))
}

func (b LevelCommandBuilder) SubscribeLevel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("level").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b LevelCommandBuilder) SubscribeLevelWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("level").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b LevelCommandBuilder) UnsubscribeLevel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("level").Unsubscribe([]tesira.IndexValue{channel}, label)
}

func (b LevelCommandBuilder) Mute(channel tesira.IndexValue) tesira.Command {
	return b.attr("mute").Get(channel)
}

func (b LevelCommandBuilder) SetMute(channel tesira.IndexValue, muted bool) tesira.Command {
	return b.attr("mute").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeBool(muted))
}

func (b LevelCommandBuilder) ToggleMute(channel tesira.IndexValue) tesira.Command {
	return b.attr("mute").Toggle(channel)
}

func (b LevelCommandBuilder) SubscribeMute(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("mute").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b LevelCommandBuilder) SubscribeMuteWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("mute").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b LevelCommandBuilder) UnsubscribeMute(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("mute").Unsubscribe([]tesira.IndexValue{channel}, label)
}

func (b LevelCommandBuilder) Label(channel tesira.IndexValue) tesira.Command {
	return b.attr("label").Get(channel)
}

func (b LevelCommandBuilder) SetLabel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("label").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeString(label))
}

func (b LevelCommandBuilder) RampInterval() tesira.Command {
	return b.attr("rampInterval").Get()
}

func (b LevelCommandBuilder) SetRampInterval(seconds float64) tesira.Command {
	return b.attr("rampInterval").SetRaw(nil, tesira.EncodeFloat(seconds))
}

// MixerCommandBuilder exposes the attributes of one Mixer block
// instance.
type MixerCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b MixerCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b MixerCommandBuilder) CrosspointGain(input, output tesira.IndexValue) tesira.Command {
	return b.attr("crosspointGain").Get(input, output)
}

func (b MixerCommandBuilder) SetCrosspointGain(input, output tesira.IndexValue, db float64) tesira.Command {
	return b.attr("crosspointGain").SetRaw([]tesira.IndexValue{input, output}, tesira.EncodeFloat(db))
}

func (b MixerCommandBuilder) IncrementCrosspointGain(input, output tesira.IndexValue, step float64) tesira.Command {
	return b.attr("crosspointGain").Increment([]tesira.IndexValue{input, output}, floatEncodable(step))
}

func (b MixerCommandBuilder) DecrementCrosspointGain(input, output tesira.IndexValue, step float64) tesira.Command {
	return b.attr("crosspointGain").Decrement([]tesira.IndexValue{input, output}, floatEncodable(step))
}

func (b MixerCommandBuilder) SubscribeCrosspointGain(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointGain").Subscribe([]tesira.IndexValue{input, output}, label, 0)
}

func (b MixerCommandBuilder) SubscribeCrosspointGainWithRate(input, output tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("crosspointGain").Subscribe([]tesira.IndexValue{input, output}, label, rate)
}

func (b MixerCommandBuilder) UnsubscribeCrosspointGain(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointGain").Unsubscribe([]tesira.IndexValue{input, output}, label)
}

func (b MixerCommandBuilder) CrosspointMute(input, output tesira.IndexValue) tesira.Command {
	return b.attr("crosspointMute").Get(input, output)
}

func (b MixerCommandBuilder) SetCrosspointMute(input, output tesira.IndexValue, muted bool) tesira.Command {
	return b.attr("crosspointMute").SetRaw([]tesira.IndexValue{input, output}, tesira.EncodeBool(muted))
}

func (b MixerCommandBuilder) ToggleCrosspointMute(input, output tesira.IndexValue) tesira.Command {
	return b.attr("crosspointMute").Toggle(input, output)
}

func (b MixerCommandBuilder) SubscribeCrosspointMute(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointMute").Subscribe([]tesira.IndexValue{input, output}, label, 0)
}

func (b MixerCommandBuilder) SubscribeCrosspointMuteWithRate(input, output tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("crosspointMute").Subscribe([]tesira.IndexValue{input, output}, label, rate)
}

func (b MixerCommandBuilder) UnsubscribeCrosspointMute(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointMute").Unsubscribe([]tesira.IndexValue{input, output}, label)
}

// CrosspointState models a three-variant Discrete attribute; the
// accepted values are exactly Enabled, Disabled, and Muted.
type CrosspointState string

const (
	CrosspointEnabled  CrosspointState = "Enabled"
	CrosspointDisabled CrosspointState = "Disabled"
	CrosspointMuted    CrosspointState = "Muted"
)

func (b MixerCommandBuilder) CrosspointState(input, output tesira.IndexValue) tesira.Command {
	return b.attr("crosspointState").Get(input, output)
}

func (b MixerCommandBuilder) SetCrosspointState(input, output tesira.IndexValue, state CrosspointState) tesira.Command {
	return b.attr("crosspointState").SetRaw([]tesira.IndexValue{input, output}, tesira.EncodeConstant(string(state)))
}

func (b MixerCommandBuilder) SubscribeCrosspointState(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointState").Subscribe([]tesira.IndexValue{input, output}, label, 0)
}

func (b MixerCommandBuilder) SubscribeCrosspointStateWithRate(input, output tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("crosspointState").Subscribe([]tesira.IndexValue{input, output}, label, rate)
}

func (b MixerCommandBuilder) UnsubscribeCrosspointState(input, output tesira.IndexValue, label string) tesira.Command {
	return b.attr("crosspointState").Unsubscribe([]tesira.IndexValue{input, output}, label)
}

// RouterCommandBuilder exposes the attributes of one Router block
// instance.
type RouterCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b RouterCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b RouterCommandBuilder) Select(output tesira.IndexValue) tesira.Command {
	return b.attr("select").Get(output)
}

func (b RouterCommandBuilder) SetSelect(output tesira.IndexValue, source string) tesira.Command {
	return b.attr("select").SetRaw([]tesira.IndexValue{output}, tesira.EncodeString(source))
}

// Priority is a three-variant Discrete attribute: A, B, or C.
type Priority string

const (
	PriorityA Priority = "A"
	PriorityB Priority = "B"
	PriorityC Priority = "C"
)

func (b RouterCommandBuilder) Priority(output tesira.IndexValue) tesira.Command {
	return b.attr("priority").Get(output)
}

func (b RouterCommandBuilder) SetPriority(output tesira.IndexValue, p Priority) tesira.Command {
	return b.attr("priority").SetRaw([]tesira.IndexValue{output}, tesira.EncodeConstant(string(p)))
}

// AudioMeterCommandBuilder exposes the attributes of one Audio Meter
// block instance. Every attribute here is read-only on the device:
// only Get and Subscribe/Unsubscribe apply.
type AudioMeterCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b AudioMeterCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b AudioMeterCommandBuilder) Level(channel tesira.IndexValue) tesira.Command {
	return b.attr("level").Get(channel)
}

func (b AudioMeterCommandBuilder) SubscribeLevel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("level").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b AudioMeterCommandBuilder) SubscribeLevelWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("level").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b AudioMeterCommandBuilder) UnsubscribeLevel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("level").Unsubscribe([]tesira.IndexValue{channel}, label)
}

func (b AudioMeterCommandBuilder) Peak(channel tesira.IndexValue) tesira.Command {
	return b.attr("peak").Get(channel)
}

func (b AudioMeterCommandBuilder) SubscribePeak(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("peak").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b AudioMeterCommandBuilder) SubscribePeakWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("peak").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b AudioMeterCommandBuilder) UnsubscribePeak(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("peak").Unsubscribe([]tesira.IndexValue{channel}, label)
}

func (b AudioMeterCommandBuilder) Overload(channel tesira.IndexValue) tesira.Command {
	return b.attr("overload").Get(channel)
}

func (b AudioMeterCommandBuilder) SubscribeOverload(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("overload").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b AudioMeterCommandBuilder) SubscribeOverloadWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("overload").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b AudioMeterCommandBuilder) UnsubscribeOverload(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("overload").Unsubscribe([]tesira.IndexValue{channel}, label)
}

// LogicMeterCommandBuilder exposes the attributes of one Logic Meter
// block instance.
type LogicMeterCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b LogicMeterCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b LogicMeterCommandBuilder) State(channel tesira.IndexValue) tesira.Command {
	return b.attr("state").Get(channel)
}

func (b LogicMeterCommandBuilder) SubscribeState(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("state").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b LogicMeterCommandBuilder) SubscribeStateWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("state").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b LogicMeterCommandBuilder) UnsubscribeState(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("state").Unsubscribe([]tesira.IndexValue{channel}, label)
}

// VoIPControlStatusCommandBuilder exposes the attributes of one VoIP
// Control Status block instance. The telephony verbs (dial, answer,
// hold, ...) are deliberately not exposed here; the encoder accepts
// them on a tesira.Command built with its Verb field set directly.
type VoIPControlStatusCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b VoIPControlStatusCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b VoIPControlStatusCommandBuilder) CallState() tesira.Command {
	return b.attr("callState").Get()
}

func (b VoIPControlStatusCommandBuilder) SubscribeCallState(label string) tesira.Command {
	return b.attr("callState").Subscribe(nil, label, 0)
}

func (b VoIPControlStatusCommandBuilder) SubscribeCallStateWithRate(label string, rate time.Duration) tesira.Command {
	return b.attr("callState").Subscribe(nil, label, rate)
}

func (b VoIPControlStatusCommandBuilder) UnsubscribeCallState(label string) tesira.Command {
	return b.attr("callState").Unsubscribe(nil, label)
}

func (b VoIPControlStatusCommandBuilder) RegistrationState() tesira.Command {
	return b.attr("registrationState").Get()
}

func (b VoIPControlStatusCommandBuilder) SubscribeRegistrationState(label string) tesira.Command {
	return b.attr("registrationState").Subscribe(nil, label, 0)
}

func (b VoIPControlStatusCommandBuilder) SubscribeRegistrationStateWithRate(label string, rate time.Duration) tesira.Command {
	return b.attr("registrationState").Subscribe(nil, label, rate)
}

func (b VoIPControlStatusCommandBuilder) UnsubscribeRegistrationState(label string) tesira.Command {
	return b.attr("registrationState").Unsubscribe(nil, label)
}

// DanteAES67ReceiverCommandBuilder exposes the attributes of one
// Dante/AES67 Receiver block instance.
type DanteAES67ReceiverCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b DanteAES67ReceiverCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b DanteAES67ReceiverCommandBuilder) RxChannelLabel(channel tesira.IndexValue) tesira.Command {
	return b.attr("rxChannelLabel").Get(channel)
}

func (b DanteAES67ReceiverCommandBuilder) SetRxChannelLabel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("rxChannelLabel").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeString(label))
}

func (b DanteAES67ReceiverCommandBuilder) RxChannelStatus(channel tesira.IndexValue) tesira.Command {
	return b.attr("rxChannelStatus").Get(channel)
}

func (b DanteAES67ReceiverCommandBuilder) SubscribeRxChannelStatus(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("rxChannelStatus").Subscribe([]tesira.IndexValue{channel}, label, 0)
}

func (b DanteAES67ReceiverCommandBuilder) SubscribeRxChannelStatusWithRate(channel tesira.IndexValue, label string, rate time.Duration) tesira.Command {
	return b.attr("rxChannelStatus").Subscribe([]tesira.IndexValue{channel}, label, rate)
}

func (b DanteAES67ReceiverCommandBuilder) UnsubscribeRxChannelStatus(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("rxChannelStatus").Unsubscribe([]tesira.IndexValue{channel}, label)
}

func (b DanteAES67ReceiverCommandBuilder) SyncStatus() tesira.Command {
	return b.attr("syncStatus").Get()
}

func (b DanteAES67ReceiverCommandBuilder) SubscribeSyncStatus(label string) tesira.Command {
	return b.attr("syncStatus").Subscribe(nil, label, 0)
}

func (b DanteAES67ReceiverCommandBuilder) SubscribeSyncStatusWithRate(label string, rate time.Duration) tesira.Command {
	return b.attr("syncStatus").Subscribe(nil, label, rate)
}

func (b DanteAES67ReceiverCommandBuilder) UnsubscribeSyncStatus(label string) tesira.Command {
	return b.attr("syncStatus").Unsubscribe(nil, label)
}

// DanteAES67TransmitterCommandBuilder exposes the attributes of one
// Dante/AES67 Transmitter block instance.
type DanteAES67TransmitterCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b DanteAES67TransmitterCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b DanteAES67TransmitterCommandBuilder) TxChannelLabel(channel tesira.IndexValue) tesira.Command {
	return b.attr("txChannelLabel").Get(channel)
}

func (b DanteAES67TransmitterCommandBuilder) SetTxChannelLabel(channel tesira.IndexValue, label string) tesira.Command {
	return b.attr("txChannelLabel").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeString(label))
}

func (b DanteAES67TransmitterCommandBuilder) TxChannelEnable(channel tesira.IndexValue) tesira.Command {
	return b.attr("txChannelEnable").Get(channel)
}

func (b DanteAES67TransmitterCommandBuilder) SetTxChannelEnable(channel tesira.IndexValue, on bool) tesira.Command {
	return b.attr("txChannelEnable").SetRaw([]tesira.IndexValue{channel}, tesira.EncodeBool(on))
}

func (b DanteAES67TransmitterCommandBuilder) ToggleTxChannelEnable(channel tesira.IndexValue) tesira.Command {
	return b.attr("txChannelEnable").Toggle(channel)
}

// ToneGeneratorCommandBuilder exposes the attributes of one Tone
// Generator block instance.
type ToneGeneratorCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b ToneGeneratorCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b ToneGeneratorCommandBuilder) Level() tesira.Command {
	return b.attr("level").Get()
}

func (b ToneGeneratorCommandBuilder) SetLevel(db float64) tesira.Command {
	return b.attr("level").SetRaw(nil, tesira.EncodeFloat(db))
}

func (b ToneGeneratorCommandBuilder) Enable() tesira.Command {
	return b.attr("enable").Get()
}

func (b ToneGeneratorCommandBuilder) SetEnable(on bool) tesira.Command {
	return b.attr("enable").SetRaw(nil, tesira.EncodeBool(on))
}

func (b ToneGeneratorCommandBuilder) ToggleEnable() tesira.Command {
	return b.attr("enable").Toggle()
}

func (b ToneGeneratorCommandBuilder) SetToneFrequencyGain(fg tesira.FreqGain) tesira.Command {
	return b.attr("toneFrequencyGain").Set(nil, fg)
}

// CrossoverCommandBuilder exposes the attributes of one Crossover
// block instance.
type CrossoverCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b CrossoverCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b CrossoverCommandBuilder) FilterTypeSlope(band tesira.IndexValue) tesira.Command {
	return b.attr("filterTypeSlope").Get(band)
}

func (b CrossoverCommandBuilder) SetFilterTypeSlope(band tesira.IndexValue, ts tesira.TypeSlope) tesira.Command {
	return b.attr("filterTypeSlope").Set([]tesira.IndexValue{band}, ts)
}

// DelayMatrixCommandBuilder exposes the attributes of one Delay Matrix
// block instance.
type DelayMatrixCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b DelayMatrixCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

func (b DelayMatrixCommandBuilder) Delay(channel tesira.IndexValue) tesira.Command {
	return b.attr("delay").Get(channel)
}

func (b DelayMatrixCommandBuilder) SetDelay(channel tesira.IndexValue, d tesira.DelayValue) tesira.Command {
	return b.attr("delay").Set([]tesira.IndexValue{channel}, d)
}

// NetworkStatusCommandBuilder exposes the attributes of one Network
// Status block instance.
type NetworkStatusCommandBuilder struct {
	tag tesira.InstanceTag
}

func (b NetworkStatusCommandBuilder) attr(name string) tesira.AttributeRef {
	return tesira.Attribute(b.tag, name)
}

// NetworkStatus builds the get command; the reply is a structured map
// best decoded with tesira.DecodeMap into a caller-defined struct.
func (b NetworkStatusCommandBuilder) NetworkStatus() tesira.Command {
	return b.attr("networkStatus").Get()
}

func (b NetworkStatusCommandBuilder) LinkState() tesira.Command {
	return b.attr("linkState").Get()
}

func (b NetworkStatusCommandBuilder) SubscribeLinkState(label string) tesira.Command {
	return b.attr("linkState").Subscribe(nil, label, 0)
}

func (b NetworkStatusCommandBuilder) SubscribeLinkStateWithRate(label string, rate time.Duration) tesira.Command {
	return b.attr("linkState").Subscribe(nil, label, rate)
}

func (b NetworkStatusCommandBuilder) UnsubscribeLinkState(label string) tesira.Command {
	return b.attr("linkState").Unsubscribe(nil, label)
}

// floatEncodable adapts a bare float64 step argument to Encodable for
// Increment/Decrement, matching the typed surface's preference for
// named types over bare numeric literals at call sites.
type floatEncodable float64

func (f floatEncodable) EncodeTTP() string { return tesira.EncodeFloat(float64(f)) }
