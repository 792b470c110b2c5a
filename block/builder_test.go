package block

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"

	"github.com/biamp-oss/tesira-ttp"
)

func TestSessionAliases(t *testing.T) {
	cmd := NewCommandBuilder().Session().Aliases()
	require.Equal(t, "SESSION get aliases", cmd.Encode())
}

func TestLevelGetAndSet(t *testing.T) {
	b := NewCommandBuilder().Level("Level3")
	require.Equal(t, "Level3 get level 2", b.Level(2).Encode())
	require.Equal(t, "Level3 set level 2 -6", b.SetLevel(2, -6).Encode())
}

func TestLevelMuteDiscreteCollapsesToBool(t *testing.T) {
	b := NewCommandBuilder().Level("Level3")
	require.Equal(t, "Level3 set mute 3 true", b.SetMute(3, true).Encode())
	require.Equal(t, "Level3 toggle mute 3", b.ToggleMute(3).Encode())
	require.Equal(t, "Level3 subscribe mute 3 S0", b.SubscribeMute(3, "S0").Encode())
	require.Equal(t, "Level3 subscribe mute 3 S0 500", b.SubscribeMuteWithRate(3, "S0", 500*time.Millisecond).Encode())
	require.Equal(t, "Level3 unsubscribe mute 3 S0", b.UnsubscribeMute(3, "S0").Encode())
}

func TestLevelRampInterval(t *testing.T) {
	b := NewCommandBuilder().Level("Level3")
	require.Equal(t, "Level3 get rampInterval", b.RampInterval().Encode())
	require.Equal(t, "Level3 set rampInterval 2.5", b.SetRampInterval(2.5).Encode())
}

func TestLogicMeterSubscribe(t *testing.T) {
	b := NewCommandBuilder().LogicMeter("LogicMeter1")
	require.Equal(t, "LogicMeter1 subscribe state 1 S0", b.SubscribeState(1, "S0").Encode())
}

func TestMixerCrosspointGain(t *testing.T) {
	b := NewCommandBuilder().Mixer("Matrix Mixer 1")
	require.Equal(t, "Matrix Mixer 1 set crosspointGain 1 2 -3.5", b.SetCrosspointGain(1, 2, -3.5).Encode())
	require.Equal(t, "Matrix Mixer 1 increment crosspointGain 1 2 1", b.IncrementCrosspointGain(1, 2, 1).Encode())
	require.Equal(t, "Matrix Mixer 1 decrement crosspointGain 1 2 1", b.DecrementCrosspointGain(1, 2, 1).Encode())
	require.Equal(t, "Matrix Mixer 1 subscribe crosspointGain 1 2 S0", b.SubscribeCrosspointGain(1, 2, "S0").Encode())
	require.Equal(t, "Matrix Mixer 1 subscribe crosspointGain 1 2 S0 500", b.SubscribeCrosspointGainWithRate(1, 2, "S0", 500*time.Millisecond).Encode())
	require.Equal(t, "Matrix Mixer 1 unsubscribe crosspointGain 1 2 S0", b.UnsubscribeCrosspointGain(1, 2, "S0").Encode())
}

func TestMixerCrosspointMuteSubscribe(t *testing.T) {
	b := NewCommandBuilder().Mixer("Matrix Mixer 1")
	require.Equal(t, "Matrix Mixer 1 subscribe crosspointMute 1 2 S0", b.SubscribeCrosspointMute(1, 2, "S0").Encode())
	require.Equal(t, "Matrix Mixer 1 unsubscribe crosspointMute 1 2 S0", b.UnsubscribeCrosspointMute(1, 2, "S0").Encode())
}

func TestThreeVariantDiscreteRouterPriority(t *testing.T) {
	b := NewCommandBuilder().Router("Router1")
	require.Equal(t, "Router1 set priority 1 A", b.SetPriority(1, PriorityA).Encode())
	require.Equal(t, "Router1 set priority 1 B", b.SetPriority(1, PriorityB).Encode())
	require.Equal(t, "Router1 set priority 1 C", b.SetPriority(1, PriorityC).Encode())
}

func TestThreeVariantDiscreteCrosspointState(t *testing.T) {
	b := NewCommandBuilder().Mixer("Matrix Mixer 1")
	require.Equal(t, "Matrix Mixer 1 set crosspointState 1 2 Muted", b.SetCrosspointState(1, 2, CrosspointMuted).Encode())
	require.Equal(t, "Matrix Mixer 1 subscribe crosspointState 1 2 S0", b.SubscribeCrosspointState(1, 2, "S0").Encode())
	require.Equal(t, "Matrix Mixer 1 unsubscribe crosspointState 1 2 S0", b.UnsubscribeCrosspointState(1, 2, "S0").Encode())
}

func TestAudioMeterSubscribeAndUnsubscribe(t *testing.T) {
	b := NewCommandBuilder().AudioMeter("AudioMeter1")
	require.Equal(t, "AudioMeter1 subscribe level 1 S0 500", b.SubscribeLevelWithRate(1, "S0", 500*time.Millisecond).Encode())
	require.Equal(t, "AudioMeter1 unsubscribe peak 1 S0", b.UnsubscribePeak(1, "S0").Encode())
	require.Equal(t, "AudioMeter1 unsubscribe overload 1 S0", b.UnsubscribeOverload(1, "S0").Encode())
}

func TestVoIPControlStatusUnsubscribe(t *testing.T) {
	b := NewCommandBuilder().VoIPControlStatus("VoIP1")
	require.Equal(t, "VoIP1 unsubscribe callState S0", b.UnsubscribeCallState("S0").Encode())
	require.Equal(t, "VoIP1 unsubscribe registrationState S0", b.UnsubscribeRegistrationState("S0").Encode())
}

func TestDanteAES67ReceiverUnsubscribe(t *testing.T) {
	b := NewCommandBuilder().DanteAES67Receiver("Dante1")
	require.Equal(t, "Dante1 unsubscribe rxChannelStatus 1 S0", b.UnsubscribeRxChannelStatus(1, "S0").Encode())
	require.Equal(t, "Dante1 unsubscribe syncStatus S0", b.UnsubscribeSyncStatus("S0").Encode())
}

func TestDanteAES67TransmitterGetAndSet(t *testing.T) {
	b := NewCommandBuilder().DanteAES67Transmitter("Dante1")
	require.Equal(t, "Dante1 get txChannelLabel 1", b.TxChannelLabel(1).Encode())
	require.Equal(t, `Dante1 set txChannelLabel 1 "out1"`, b.SetTxChannelLabel(1, "out1").Encode())
	require.Equal(t, "Dante1 toggle txChannelEnable 1", b.ToggleTxChannelEnable(1).Encode())
}

func TestNetworkStatusLinkStateUnsubscribe(t *testing.T) {
	b := NewCommandBuilder().NetworkStatus("NetworkStatus1")
	require.Equal(t, "NetworkStatus1 subscribe linkState S0 500", b.SubscribeLinkStateWithRate("S0", 500*time.Millisecond).Encode())
	require.Equal(t, "NetworkStatus1 unsubscribe linkState S0", b.UnsubscribeLinkState("S0").Encode())
}

func TestDelayMatrixSetDelay(t *testing.T) {
	b := NewCommandBuilder().DelayMatrix("Delay1")
	d := tesira.NewDelayMilliseconds(0)
	cmd := b.SetDelay(1, d)
	require.Equal(t, `Delay1 set delay 1 {"units":Milliseconds "delay":0}`, cmd.Encode())
}

func TestCrossoverSetFilterTypeSlope(t *testing.T) {
	b := NewCommandBuilder().Crossover("Crossover1")
	slope, err := tesira.NewFilterSlope(24)
	require.NoError(t, err)
	ts := tesira.TypeSlope{Type: tesira.Butterworth, Slope: slope}
	cmd := b.SetFilterTypeSlope(1, ts)
	require.Equal(t, `Crossover1 set filterTypeSlope 1 {"type":Butterworth "slope":24}`, cmd.Encode())
}

func TestToneGeneratorFreqGain(t *testing.T) {
	b := NewCommandBuilder().ToneGenerator("ToneGen1")
	cmd := b.SetToneFrequencyGain(tesira.FreqGain{Frequency: 1000, Gain: -10})
	require.Equal(t, `ToneGen1 set toneFrequencyGain {"frequency":1000 "gain":-10}`, cmd.Encode())
}

func TestGenericAttributeFallback(t *testing.T) {
	cmd := tesira.Attribute("CustomBlock1", "someUncataloguedAttribute").Get(1)
	require.Equal(t, "CustomBlock1 get someUncataloguedAttribute 1", cmd.Encode())
}
