// Package server implements the accept loop and per-request dispatch of
// spec.md §4.H: accept a connection, hand it to a worker pool task that
// parses the request, matches a route, invokes the handler, and
// serializes the response — all per-request allocation living in a
// pooled response Context's arena.
package server

import (
	"net"

	"github.com/rs/zerolog/log"
	"github.com/valyala/bytebufferpool"

	"github.com/yourusername/emberd/pkg/emberd/http11"
	"github.com/yourusername/emberd/pkg/emberd/respool"
	"github.com/yourusername/emberd/pkg/emberd/router"
	"github.com/yourusername/emberd/pkg/emberd/workerpool"
)

// maxRequestRead bounds the single recv a worker performs per
// connection, matching spec.md §6 ("requests must fit in a single recv
// of <=4 MiB").
const maxRequestRead = 4 << 20

// Handler produces a response status given a request context. Route
// registration is exact-match-only (router.Table); there is no method
// filtering.
type Handler func(*Context) int

// Config configures a Server.
type Config struct {
	// NumThreads is the worker pool's goroutine count.
	NumThreads int
}

// Server owns the route table, worker pool and resource pools. It has no
// exported mutable state beyond route registration before Start.
type Server struct {
	cfg     Config
	routes  *router.Table
	pool    *workerpool.Pool
	ctxPool *respool.Pool[Context]
}

// New constructs a Server per cfg. NumThreads <= 0 defaults to 1.
func New(cfg Config) *Server {
	if cfg.NumThreads <= 0 {
		cfg.NumThreads = 1
	}
	return &Server{
		cfg:     cfg,
		routes:  router.New(),
		pool:    workerpool.New(cfg.NumThreads),
		ctxPool: respool.New("context", newContext),
	}
}

// AttachHandler registers an exact-match route. Fatal (panics) past 100
// routes, per spec.md §6/§7.
func (s *Server) AttachHandler(path string, h Handler) {
	s.routes.Register(path, h)
}

// Start binds port and runs the accept loop. It returns only when binding
// the listener or accepting a connection fails, after logging the error —
// spec.md §7 advises downgrading the
// source's abort-on-accept-error policy to recoverable-with-logging, so
// this logs and returns rather than crashing the process outright,
// leaving that choice to the caller (cmd/emberd aborts on a non-nil
// return, matching the source's ultimate effect without hiding the
// failure inside this package).
func (s *Server) Start(port int) error {
	ln, err := listen(port)
	if err != nil {
		log.Error().Err(err).Int("port", port).Msg("server: failed to bind listener")
		return err
	}
	defer ln.Close()

	log.Info().Int("port", port).Int("threads", s.cfg.NumThreads).Msg("server: accepting connections")

	for {
		conn, err := ln.Accept()
		if err != nil {
			log.Error().Err(err).Msg("server: accept failed")
			return err
		}
		s.pool.Submit(func() {
			s.handleConnection(conn)
		})
	}
}

// handleConnection implements one worker task: read, parse, route,
// invoke, serialize, send, release. Socket read failure, parse failure
// and no-route-match are all recoverable per spec.md §7: log, close, and
// return pooled resources without touching other connections.
func (s *Server) handleConnection(conn net.Conn) {
	defer conn.Close()

	ctx := s.ctxPool.Get()
	defer func() {
		ctx.reset()
		s.ctxPool.Put(ctx)
	}()

	stage := bytebufferpool.Get()
	defer bytebufferpool.Put(stage)
	stage.Reset()
	if cap(stage.B) < maxRequestRead {
		stage.B = make([]byte, maxRequestRead)
	}
	stage.B = stage.B[:maxRequestRead]

	n, err := conn.Read(stage.B)
	if err != nil {
		log.Info().Err(err).Msg("server: connection read failed")
		return
	}

	// Copy out of the pooled staging buffer before it's returned to
	// bytebufferpool — the request's slices must outlive this call.
	readBuf := ctx.arena.PutBytes(stage.B[:n])

	req, err := http11.ParseRequest(readBuf)
	if err != nil {
		log.Info().Err(err).Msg("server: request parse failed")
		return
	}
	ctx.Request = req

	handlerAny, ok := s.routes.Lookup(req.Path)
	if !ok {
		log.Info().Str("path", string(req.Path)).Msg("server: no route matched")
		s.respond(conn, ctx, 404, nil)
		return
	}
	handler := handlerAny.(Handler)

	status := handler(ctx)
	s.respond(conn, ctx, status, ctx.Content)
}

// respond serializes and writes the response. A send failure is fatal in
// the source; here it is logged and the connection is dropped instead
// (spec.md §7's advised downgrade for accept/send errors).
func (s *Server) respond(conn net.Conn, ctx *Context, status int, body []byte) {
	resp := &http11.Response{
		Version: http11.Version,
		Status:  status,
		Headers: ctx.Headers,
		Body:    body,
	}

	n, err := resp.SerializedLen()
	if err != nil {
		// Unknown status code: a programming error in the handler, not a
		// transport failure. spec.md §7 preserves crash semantics here.
		panic(err)
	}

	dst := ctx.arena.Push(n)
	written, err := resp.Serialize(dst)
	if err != nil {
		panic(err)
	}

	if _, err := conn.Write(dst[:written]); err != nil {
		log.Info().Err(err).Msg("server: response write failed")
	}
}
