package server

import (
	"bufio"
	"net"
	"sync"

	"github.com/katalvlaran/graphsrv/protocol"
)

// acceptorPool implements the Leader–Follower pattern: a fixed number of
// worker goroutines share one listener, and at most one blocks in Accept
// at any instant. hasLeader plus its mutex/condvar is the one piece of
// shared mutable state the pattern needs.
type acceptorPool struct {
	listener net.Listener
	pipeline *Pipeline

	mu        sync.Mutex
	cond      *sync.Cond
	hasLeader bool

	wg sync.WaitGroup
}

func newAcceptorPool(listener net.Listener, pipeline *Pipeline, threads int) *acceptorPool {
	p := &acceptorPool{listener: listener, pipeline: pipeline}
	p.cond = sync.NewCond(&p.mu)

	p.wg.Add(threads)
	for i := 0; i < threads; i++ {
		go p.worker()
	}

	return p
}

// worker runs the four-step Leader–Follower cycle — become leader, accept,
// step down, handle — looping until Accept returns an error (the listener
// was closed).
func (p *acceptorPool) worker() {
	defer p.wg.Done()
	for {
		p.becomeLeader()

		conn, err := p.listener.Accept()

		p.stepDown()

		if err != nil {
			return
		}

		p.handleConnection(conn)
	}
}

// becomeLeader blocks until no worker currently holds the role, then
// claims it (step 1).
func (p *acceptorPool) becomeLeader() {
	p.mu.Lock()
	defer p.mu.Unlock()
	for p.hasLeader {
		p.cond.Wait()
	}
	p.hasLeader = true
}

// stepDown releases the leader role and wakes one follower; this happens
// before any per-connection work, so handoff latency is just the time
// between Accept's return and the signalled follower's resumption (step 3).
func (p *acceptorPool) stepDown() {
	p.mu.Lock()
	p.hasLeader = false
	p.cond.Signal()
	p.mu.Unlock()
}

// handleConnection parses the request inline on this worker (step 4). A
// parse failure is handled right here — written and closed by this
// worker, not the sender — since no Request ever gets far enough to
// reach a mailbox. A parse success hands the connection to the pipeline;
// closing it becomes SENDER_AO's job from that point on.
func (p *acceptorPool) handleConnection(conn net.Conn) {
	br := bufio.NewReader(conn)
	req, err := protocol.ParseRequest(br)
	if err != nil {
		_, _ = conn.Write([]byte(protocol.FormatError(err)))
		_ = conn.Close()
		return
	}

	p.pipeline.Dispatch(req, conn)
}

// wait blocks until every acceptor worker has returned.
func (p *acceptorPool) wait() {
	p.wg.Wait()
}
