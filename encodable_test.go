package tesira

import (
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

func TestEncodeDate(t *testing.T) {
	ts := time.Date(2025, time.June, 1, 12, 56, 43, 0, time.UTC)
	require.Equal(t, "12:56:43:6:01:2025", EncodeDate(ts))
}

func TestDelayValueEncodeMilliseconds(t *testing.T) {
	d := NewDelayMilliseconds(42 * time.Millisecond)
	require.Equal(t, `{"units":Milliseconds "delay":42}`, d.EncodeTTP())
}

func TestDelayValueEncodeFeet(t *testing.T) {
	d := NewDelayFeet(3.5)
	require.Equal(t, `{"units":Feet "delay":3.5}`, d.EncodeTTP())
}

func TestFilterSlopeRejectsInvalid(t *testing.T) {
	_, err := NewFilterSlope(7)
	require.Error(t, err)
}

func TestFilterSlopeAcceptsValid(t *testing.T) {
	s, err := NewFilterSlope(12)
	require.NoError(t, err)
	require.Equal(t, uint(12), s.Value())
	require.Equal(t, FilterSlopeTwelve, s)
}

func TestTypeSlopeEncode(t *testing.T) {
	slope, err := NewFilterSlope(24)
	require.NoError(t, err)
	ts := TypeSlope{Type: LinkwitzRiley, Slope: slope}
	require.Equal(t, `{"type":Linkwitz-Riley "slope":24}`, ts.EncodeTTP())
}

func TestFreqGainEncode(t *testing.T) {
	fg := FreqGain{Frequency: 1000, Gain: -3.5}
	require.Equal(t, `{"frequency":1000 "gain":-3.5}`, fg.EncodeTTP())
}
