package tesira

import (
	"bufio"
	"io"
	"net"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog"
	"github.com/rs/zerolog/log"
)

// Session owns one duplex byte stream to a Tesira device and follows
// the single-owner, single-threaded state machine of spec.md §4.3/§5:
// no internal locking, no background reader. Methods borrow the
// Session exclusively; concurrent use from multiple goroutines
// requires external synchronization (e.g. a dedicated owner goroutine
// fanning PublishTokens out over channels).
type Session struct {
	reader *bufio.Reader
	writer io.Writer
	conn   net.Conn // set when the underlying stream is a net.Conn, for deadlines

	pending []PublishToken // FIFO: append at the back, pop from the front

	log          zerolog.Logger
	readTimeout  time.Duration
	writeTimeout time.Duration
}

// SessionOption configures a Session at construction time, mirroring
// the functional-options pattern the teacher repository uses for its
// client (ClientOption in the rtpengine package this module is
// descended from).
type SessionOption func(*Session)

// WithLogger overrides the Session's logger. The default logs through
// the global zerolog logger under the "tesira.Session" component.
func WithLogger(l zerolog.Logger) SessionOption {
	return func(s *Session) { s.log = l }
}

// WithReadTimeout sets a per-read deadline, applied only when the
// underlying stream is a net.Conn.
func WithReadTimeout(d time.Duration) SessionOption {
	return func(s *Session) { s.readTimeout = d }
}

// WithWriteTimeout sets a per-write deadline, applied only when the
// underlying stream is a net.Conn.
func WithWriteTimeout(d time.Duration) SessionOption {
	return func(s *Session) { s.writeTimeout = d }
}

// NewSession wraps rw as a Tesira session and runs the banner
// handshake (spec.md §4.3): it discards lines until one begins with
// "Welcome", then returns Ready to send commands.
//
// rw is any duplex byte stream; this package does not negotiate
// authentication or encryption (spec.md §1) — hand it an already
// connected and, if needed, already authenticated channel (e.g. an
// ssh.Channel from golang.org/x/crypto/ssh).
func NewSession(rw io.ReadWriter, opts ...SessionOption) (*Session, error) {
	s := &Session{
		reader: bufio.NewReader(rw),
		writer: rw,
		log:    log.Logger.With().Str("component", "tesira.Session").Logger(),
	}
	if c, ok := rw.(net.Conn); ok {
		s.conn = c
	}
	for _, o := range opts {
		o(s)
	}

	if err := s.handshake(); err != nil {
		return nil, err
	}
	return s, nil
}

// DialTCP opens a plain, unauthenticated TCP connection to addr and
// runs the handshake. It exists for development against a local
// simulator or bench device; production use should establish the
// secure channel separately and call NewSession directly (spec.md §1).
func DialTCP(addr string, opts ...SessionOption) (*Session, error) {
	conn, err := net.Dial("tcp", addr)
	if err != nil {
		return nil, errTransport(err)
	}
	return NewSession(conn, opts...)
}

func (s *Session) handshake() error {
	s.log.Debug().Msg("waiting for welcome banner")
	for {
		line, err := s.readLine()
		if err != nil {
			return err
		}
		if strings.HasPrefix(line, "Welcome") {
			s.log.Debug().Str("banner", line).Msg("handshake complete, session ready")
			return nil
		}
	}
}

// readLine reads one line and strips its trailing terminator. A read
// that hits EOF, whether before any bytes or mid-line, is reported as
// UnexpectedEnd (spec.md §4.3: "Reading a reply when the stream ends
// mid-line must yield UnexpectedEnd, not a silent hang").
func (s *Session) readLine() (string, error) {
	if s.conn != nil && s.readTimeout > 0 {
		_ = s.conn.SetReadDeadline(time.Now().Add(s.readTimeout))
	}
	line, err := s.reader.ReadString('\n')
	if err != nil {
		if err == io.EOF {
			return "", errUnexpectedEnd()
		}
		return "", errIO(err)
	}
	return strings.TrimRight(line, "\r\n"), nil
}

// recvFramed reads lines, discarding blanks and the device's echo of
// the request it is interactive-shell-adjacent enough to produce,
// until it finds a line starting with '+', '-', or '!' and parses it.
func (s *Session) recvFramed() (Response, error) {
	for {
		line, err := s.readLine()
		if err != nil {
			return Response{}, err
		}
		trimmed := strings.TrimSpace(line)
		if trimmed == "" {
			continue
		}
		switch trimmed[0] {
		case '+', '-', '!':
			resp, err := ParseResponse([]byte(trimmed))
			if err != nil {
				return Response{}, err
			}
			return resp, nil
		default:
			// device echo of the request line; discard
			continue
		}
	}
}

// SendCommand writes cmd and blocks for its synchronous reply
// (spec.md §4.3's AwaitingReply phase). Publish tokens observed before
// the reply are buffered in FIFO order and surfaced by the next
// RecvToken call; they are never dropped.
func (s *Session) SendCommand(cmd Command) (OkResponse, error) {
	line := cmd.Encode()
	if s.conn != nil && s.writeTimeout > 0 {
		_ = s.conn.SetWriteDeadline(time.Now().Add(s.writeTimeout))
	}
	if _, err := io.WriteString(s.writer, line+"\n"); err != nil {
		return OkResponse{}, errIO(err)
	}
	s.log.Debug().Str("command", line).Msg("sent command")

	for {
		resp, err := s.recvFramed()
		if err != nil {
			return OkResponse{}, err
		}
		switch resp.Kind {
		case RespErr:
			s.log.Debug().Str("command", line).Str("error", resp.Err.Message).Msg("device reported failure")
			return OkResponse{}, errOperationFailed(&resp.Err)
		case RespOk:
			return resp.Ok, nil
		case RespPublishToken:
			s.log.Debug().Str("label", resp.PublishToken.Label).Msg("buffered publish token while awaiting reply")
			s.pending = append(s.pending, resp.PublishToken)
		}
	}
}

// RecvToken returns the next publish token in emission order: the
// oldest buffered token if any are pending, otherwise the next "!"
// line read from the stream. Receiving a "+"/"-" line here is a
// protocol violation (UnexpectedResponse): synchronous replies are
// only valid immediately after SendCommand.
func (s *Session) RecvToken() (PublishToken, error) {
	if len(s.pending) > 0 {
		t := s.pending[0]
		s.pending = s.pending[1:]
		return t, nil
	}

	resp, err := s.recvFramed()
	if err != nil {
		return PublishToken{}, err
	}
	if resp.Kind != RespPublishToken {
		return PublishToken{}, errUnexpectedResponse(resp, "a publish token")
	}
	return resp.PublishToken, nil
}

// GetAliases issues "SESSION get aliases", expects a list-shaped
// reply, and returns the string entries deduplicated into a set
// (spec.md §4.4).
func (s *Session) GetAliases() (map[string]struct{}, error) {
	ok, err := s.SendCommand(NewGetCommand(SessionTag, "aliases"))
	if err != nil {
		return nil, err
	}
	if ok.Kind != WithList {
		return nil, errUnexpectedResponse(Response{Kind: RespOk, Ok: ok}, "a response with a list of aliases")
	}

	aliases := make(map[string]struct{}, len(ok.List))
	for _, v := range ok.List {
		if str, isString := v.AsString(); isString {
			aliases[str] = struct{}{}
		}
	}
	return aliases, nil
}

// Subscribe sends a "subscribe" command, generating a subscription
// label via uuid.NewString when label is empty (SPEC_FULL.md §3's
// "[ADDED]" ergonomics, restoring the original Rust source's optional
// label). It returns the reply and the Command actually sent, so
// callers can later call cmd.AsUnsubscribe() to tear the subscription
// down without re-threading the label themselves.
func (s *Session) Subscribe(tag InstanceTag, attribute string, indexes []IndexValue, label string, minimumRate time.Duration) (OkResponse, Command, error) {
	if label == "" {
		label = uuid.NewString()
	}
	rate := ""
	if minimumRate > 0 {
		rate = EncodeDuration(minimumRate)
	}
	cmd := NewSubscribeCommand(tag, attribute, indexes, label, rate)
	ok, err := s.SendCommand(cmd)
	return ok, cmd, err
}
