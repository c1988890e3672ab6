package server

import (
	"fmt"
	"net"
	"runtime"
)

// Server owns the listening socket, the Leader–Follower acceptor pool,
// and the Active Object pipeline — T acceptor threads plus the six
// long-lived Active Object workers.
type Server struct {
	listener net.Listener
	pipeline *Pipeline
	pool     *acceptorPool
}

// DefaultThreads returns the acceptor pool size used when the caller has
// no override: CPU count, minimum 1.
func DefaultThreads() int {
	n := runtime.NumCPU()
	if n < 1 {
		return 1
	}
	return n
}

// Listen binds addr ("host:port" or ":port"), then starts threads
// acceptor workers and the six Active Objects. The server is already
// serving connections by the time Listen returns.
func Listen(addr string, threads int) (*Server, error) {
	if threads < 1 {
		threads = 1
	}

	ln, err := net.Listen("tcp", addr)
	if err != nil {
		return nil, fmt.Errorf("server: listen %s: %w", addr, err)
	}

	pipeline := NewPipeline()
	pool := newAcceptorPool(ln, pipeline, threads)

	return &Server{listener: ln, pipeline: pipeline, pool: pool}, nil
}

// Addr returns the server's bound address, useful for tests that bind to
// port 0 and need to discover the chosen port.
func (s *Server) Addr() net.Addr {
	return s.listener.Addr()
}

// Wait blocks until the listener is closed and every acceptor worker has
// returned from its loop.
func (s *Server) Wait() {
	s.pool.wait()
}

// Close stops accepting new connections, waits for acceptor workers to
// notice and exit, then stops the Active Object pipeline. Algorithm work
// already dispatched before Close is still allowed to finish and send
// its response; Close does not cancel in-flight requests.
func (s *Server) Close() error {
	err := s.listener.Close()
	s.pool.wait()
	s.pipeline.Stop()
	return err
}
