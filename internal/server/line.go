package server

import (
	"bufio"
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"io"
	"log/slog"
	"net"
	"strings"
	"sync"
	"time"

	"github.com/osse101/placecraft/internal/command"
	"github.com/osse101/placecraft/internal/logger"
	"github.com/osse101/placecraft/internal/metrics"
	"github.com/osse101/placecraft/internal/storage"
)

// ErrServerClosed is returned by Serve after Shutdown
var ErrServerClosed = errors.New(ErrMsgServerClosed)

// Executor runs one protocol line against a world
type Executor interface {
	Execute(ctx context.Context, world, line string) command.Reply
}

// LineOptions tunes player sessions
type LineOptions struct {
	DefaultWorld string
	IdleTimeout  time.Duration
	MaxLineBytes int
	Detector     *SuspiciousActivityDetector
}

// LineServer accepts player connections and runs one command per line.
// Every connection is served by its own goroutine; commands on the same
// world are serialized by the registry behind the Executor.
type LineServer struct {
	addr string
	exec Executor
	opts LineOptions

	mu       sync.Mutex
	listener net.Listener
	conns    map[net.Conn]struct{}
	closing  bool
	wg       sync.WaitGroup
}

// NewLineServer creates a line server listening on port
func NewLineServer(port int, exec Executor, opts LineOptions) *LineServer {
	if opts.MaxLineBytes <= 0 {
		opts.MaxLineBytes = DefaultMaxLineBytes
	}
	return &LineServer{
		addr:  fmt.Sprintf(":%d", port),
		exec:  exec,
		opts:  opts,
		conns: make(map[net.Conn]struct{}),
	}
}

// ListenAndServe listens on the configured port and serves until Shutdown
func (s *LineServer) ListenAndServe() error {
	ln, err := net.Listen("tcp", s.addr)
	if err != nil {
		return fmt.Errorf("listen %s: %w", s.addr, err)
	}
	return s.Serve(ln)
}

// Serve accepts connections on ln until Shutdown. It always returns a
// non-nil error, ErrServerClosed after a shutdown.
func (s *LineServer) Serve(ln net.Listener) error {
	s.mu.Lock()
	if s.closing {
		s.mu.Unlock()
		_ = ln.Close()
		return ErrServerClosed
	}
	s.listener = ln
	s.mu.Unlock()

	slog.Default().Info(LogMsgLineServerStarting, "addr", ln.Addr().String())
	for {
		conn, err := ln.Accept()
		if err != nil {
			if s.isClosing() {
				return ErrServerClosed
			}
			var ne net.Error
			if errors.As(err, &ne) && ne.Timeout() {
				slog.Default().Warn(LogMsgAcceptRetry, "error", err)
				time.Sleep(AcceptBackoff)
				continue
			}
			return fmt.Errorf("accept: %w", err)
		}
		if !s.track(conn) {
			_ = conn.Close()
			continue
		}
		go s.serveConn(conn)
	}
}

// Shutdown stops accepting, lets every session finish the command it is
// running, then waits for the sessions to close. When ctx ends first the
// remaining connections are closed hard.
func (s *LineServer) Shutdown(ctx context.Context) error {
	s.mu.Lock()
	s.closing = true
	if s.listener != nil {
		_ = s.listener.Close()
	}
	// Wake sessions blocked reading their next line
	for conn := range s.conns {
		_ = conn.SetReadDeadline(time.Now())
	}
	s.mu.Unlock()

	done := make(chan struct{})
	go func() {
		s.wg.Wait()
		close(done)
	}()

	select {
	case <-done:
		return nil
	case <-ctx.Done():
		s.mu.Lock()
		for conn := range s.conns {
			_ = conn.Close()
		}
		s.mu.Unlock()
		<-done
		return ctx.Err()
	}
}

// Addr returns the listening address once Serve has started
func (s *LineServer) Addr() net.Addr {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.listener == nil {
		return nil
	}
	return s.listener.Addr()
}

func (s *LineServer) isClosing() bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.closing
}

func (s *LineServer) track(conn net.Conn) bool {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.closing {
		return false
	}
	s.conns[conn] = struct{}{}
	s.wg.Add(1)
	return true
}

func (s *LineServer) untrack(conn net.Conn) {
	s.mu.Lock()
	delete(s.conns, conn)
	s.mu.Unlock()
	_ = conn.Close()
	s.wg.Done()
}

// session is the state of one player connection
type session struct {
	conn    net.Conn
	enc     *json.Encoder
	out     *bufio.Writer
	world   string
	started bool
	ctx     context.Context
}

func (s *LineServer) serveConn(conn net.Conn) {
	defer s.untrack(conn)
	metrics.ConnectionsInFlight.Inc()
	defer metrics.ConnectionsInFlight.Dec()

	out := bufio.NewWriter(conn)
	sess := &session{
		conn:  conn,
		enc:   json.NewEncoder(out),
		out:   out,
		world: s.opts.DefaultWorld,
		ctx:   logger.WithWorld(logger.WithRequestID(context.Background(), logger.GenerateRequestID()), s.opts.DefaultWorld),
	}
	ip := remoteHost(conn.RemoteAddr())
	log := logger.FromContext(sess.ctx)

	if s.opts.Detector != nil && !s.opts.Detector.RecordRequest(ip) {
		log.Warn(LogMsgSessionRejected, "ip", ip)
		sess.reply(command.Reply{Error: ErrMsgTooManyRequests})
		return
	}

	start := time.Now()
	commands := 0
	log.Info(LogMsgSessionOpened, "ip", ip)
	defer func() {
		logger.FromContext(sess.ctx).Info(LogMsgSessionClosed,
			"commands", commands,
			"duration", time.Since(start))
	}()

	in := bufio.NewReaderSize(conn, s.opts.MaxLineBytes)
	for {
		if s.opts.IdleTimeout > 0 {
			_ = conn.SetReadDeadline(time.Now().Add(s.opts.IdleTimeout))
		}
		// Checked after the deadline is set so Shutdown's wake-up is never overwritten
		if s.isClosing() {
			sess.reply(command.Reply{Error: ErrMsgShuttingDown})
			return
		}
		line, err := readLine(in)
		if errors.Is(err, errLineTooLong) {
			if !sess.reply(command.Reply{Error: ErrMsgLineTooLong}) {
				return
			}
			continue
		}
		if err != nil {
			break
		}
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		commands++
		reply, quit := s.handleLine(sess, line)
		if !sess.reply(reply) || quit {
			return
		}
	}

	if s.isClosing() {
		sess.reply(command.Reply{Error: ErrMsgShuttingDown})
	}
}

var errLineTooLong = errors.New(ErrMsgLineTooLong)

// readLine returns the next line without its terminator. A line longer
// than the reader's buffer is consumed and reported as errLineTooLong. A
// final line without a newline is still returned.
func readLine(in *bufio.Reader) (string, error) {
	line, err := in.ReadSlice('\n')
	if errors.Is(err, bufio.ErrBufferFull) {
		for errors.Is(err, bufio.ErrBufferFull) {
			_, err = in.ReadSlice('\n')
		}
		if err != nil {
			return "", err
		}
		return "", errLineTooLong
	}
	if err != nil {
		if errors.Is(err, io.EOF) && len(line) > 0 {
			return string(line), nil
		}
		return "", err
	}
	return string(line), nil
}

// handleLine runs the session verbs itself and passes everything else to
// the executor.
func (s *LineServer) handleLine(sess *session, line string) (command.Reply, bool) {
	fields := strings.Fields(line)
	switch strings.ToLower(fields[0]) {
	case VerbQuit:
		return command.Reply{OK: true, Command: VerbQuit}, true
	case VerbWorld:
		return sess.selectWorld(fields[1:]), false
	}
	sess.started = true
	return s.exec.Execute(sess.ctx, sess.world, line), false
}

func (sess *session) selectWorld(args []string) command.Reply {
	if sess.started {
		return command.Reply{Command: VerbWorld, Error: ErrMsgWorldAfterStart}
	}
	if len(args) != 1 {
		return command.Reply{Command: VerbWorld, Error: ErrMsgWorldUsage}
	}
	if err := storage.ValidateName(args[0]); err != nil {
		return command.Reply{Command: VerbWorld, Error: err.Error()}
	}
	sess.world = args[0]
	sess.started = true
	sess.ctx = logger.WithWorld(sess.ctx, sess.world)
	logger.FromContext(sess.ctx).Debug(LogMsgWorldSelected)
	return command.Reply{OK: true, Command: VerbWorld, Data: map[string]string{VerbWorld: sess.world}}
}

// reply writes one JSON line and reports whether the connection is still
// usable.
func (sess *session) reply(r command.Reply) bool {
	_ = sess.conn.SetWriteDeadline(time.Now().Add(WriteTimeout))
	err := sess.enc.Encode(r)
	if err == nil {
		err = sess.out.Flush()
	}
	if err != nil {
		logger.FromContext(sess.ctx).Debug(LogMsgReplyFailed, "error", err)
		return false
	}
	return true
}
