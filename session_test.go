package tesira

import (
	"bytes"
	"strings"
	"testing"
	"time"

	"github.com/stretchr/testify/require"
)

// fakeStream is a minimal io.ReadWriter splicing together a canned
// server-side read buffer and a buffer capturing everything the
// session writes, mirroring the original source's Cursor-based fixture
// tests (src/lib.rs) without needing a real socket.
type fakeStream struct {
	in  *bytes.Buffer
	out *bytes.Buffer
}

func newFakeStream(serverLines string) *fakeStream {
	return &fakeStream{in: bytes.NewBufferString(serverLines), out: &bytes.Buffer{}}
}

func (f *fakeStream) Read(p []byte) (int, error)  { return f.in.Read(p) }
func (f *fakeStream) Write(p []byte) (int, error) { return f.out.Write(p) }

func (f *fakeStream) sentLines() []string {
	s := strings.TrimRight(f.out.String(), "\n")
	if s == "" {
		return nil
	}
	return strings.Split(s, "\n")
}

func TestNewSessionHandshake(t *testing.T) {
	stream := newFakeStream("\r\nWelcome to the Tesira Text Protocol Server...\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)
	require.NotNil(t, sess)
}

func TestNewSessionHandshakeEOF(t *testing.T) {
	stream := newFakeStream("no banner here")
	_, err := NewSession(stream)
	require.Error(t, err)
	require.True(t, IsKind(err, KindUnexpectedEnd))
}

func TestSendCommandOk(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"Level3 get level 2\r\n" +
		"+OK \"value\":-6.000000\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	ok, err := sess.SendCommand(NewGetCommand("Level3", "level", 2))
	require.NoError(t, err)
	require.Equal(t, WithValue, ok.Kind)
	n, isNum := ok.Value.AsNumber()
	require.True(t, isNum)
	require.Equal(t, float64(-6), n)

	require.Equal(t, []string{"Level3 get level 2"}, stream.sentLines())
}

func TestSendCommandOperationFailed(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"Level99 get level 1\r\n" +
		"-ERR Invalid instance tag\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	_, err = sess.SendCommand(NewGetCommand("Level99", "level", 1))
	require.Error(t, err)
	require.True(t, IsKind(err, KindOperationFailed))
}

func TestSendCommandBuffersPublishTokenThenRecvTokenDrainsInOrder(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"LogicMeter1 subscribe state 1 S0\r\n" +
		"! \"publishToken\":\"S0\" \"value\":true\r\n" +
		"! \"publishToken\":\"S0\" \"value\":false\r\n" +
		"+OK\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	ok, err := sess.SendCommand(NewSubscribeCommand("LogicMeter1", "state", []IndexValue{1}, "S0", ""))
	require.NoError(t, err)
	require.Equal(t, Bare, ok.Kind)

	first, err := sess.RecvToken()
	require.NoError(t, err)
	v1, _ := first.Value.AsBoolean()
	require.True(t, v1)

	second, err := sess.RecvToken()
	require.NoError(t, err)
	v2, _ := second.Value.AsBoolean()
	require.False(t, v2)
}

func TestRecvTokenReadsDirectlyWhenNothingBuffered(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"! \"publishToken\":\"S1\" \"value\":1.000000\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	tok, err := sess.RecvToken()
	require.NoError(t, err)
	require.Equal(t, "S1", tok.Label)
}

func TestRecvTokenRejectsSynchronousReply(t *testing.T) {
	stream := newFakeStream("Welcome\r\n+OK\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	_, err = sess.RecvToken()
	require.Error(t, err)
	require.True(t, IsKind(err, KindUnexpectedResponse))
}

func TestGetAliases(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"SESSION get aliases\r\n" +
		"+OK \"list\":[\"Default\" \"Custom\"]\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	aliases, err := sess.GetAliases()
	require.NoError(t, err)
	require.Equal(t, map[string]struct{}{"Default": {}, "Custom": {}}, aliases)
}

func TestSubscribeGeneratesLabelWhenEmpty(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"LogicMeter1 subscribe state 1\r\n" +
		"+OK\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	_, cmd, err := sess.Subscribe("LogicMeter1", "state", []IndexValue{1}, "", 0)
	require.NoError(t, err)
	require.NotEmpty(t, cmd.Values[0])
	require.Len(t, cmd.Values[0], 36) // canonical UUID string length
}

func TestSubscribeWithRateAndAsUnsubscribeRoundTrip(t *testing.T) {
	stream := newFakeStream("Welcome\r\n" +
		"LogicMeter1 subscribe state 1 S0 500\r\n" +
		"+OK\r\n")
	sess, err := NewSession(stream)
	require.NoError(t, err)

	_, cmd, err := sess.Subscribe("LogicMeter1", "state", []IndexValue{1}, "S0", 500*time.Millisecond)
	require.NoError(t, err)
	require.Equal(t, "LogicMeter1 unsubscribe state 1 S0", cmd.AsUnsubscribe().Encode())
}
