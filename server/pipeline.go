package server

import (
	"net"
	"strings"

	"github.com/katalvlaran/graphsrv/algorithms"
	"github.com/katalvlaran/graphsrv/protocol"
)

// job is what a Leader–Follower worker hands to an algorithm Active
// Object: the validated request plus the connection its answer is owed
// on. Ownership of both moves with job through exactly one mailbox.
type job struct {
	req  *protocol.Request
	conn net.Conn
}

// Pipeline owns six Active Objects — one per registered algorithm plus
// SENDER_AO — and dispatches each parsed Request to the one matching its
// Algorithm.
type Pipeline struct {
	sender *ActiveObject[SendTask]
	algos  map[string]*ActiveObject[job]
}

// NewPipeline starts all six workers. They run for the process lifetime
// until Stop is called.
func NewPipeline() *Pipeline {
	p := &Pipeline{sender: newSenderAO()}

	p.algos = make(map[string]*ActiveObject[job], len(algorithms.Names()))
	for _, name := range algorithms.Names() {
		p.algos[name] = NewActiveObject(p.handlerFor(name))
	}

	return p
}

// handlerFor builds the per-algorithm AO handler: run the algorithm,
// assemble the response body (optionally prefixed with the adjacency
// dump), and hand the finished text to the sender. name is always one of
// algorithms.Names(), so the registry lookup cannot fail.
func (p *Pipeline) handlerFor(name string) func(job) {
	return func(j job) {
		strategy, err := algorithms.Lookup(name)
		if err != nil {
			return
		}

		var body strings.Builder
		if j.req.WantPrint {
			body.WriteString(protocol.AdjacencyMatrixPrefix(j.req.Graph))
		}
		strategy.Run(j.req.Graph, func(line string) { body.WriteString(line) })

		p.sender.Submit(SendTask{Conn: j.conn, Text: body.String()})
	}
}

// Dispatch hands a validated Request and its connection to the matching
// algorithm Active Object. req.Algorithm is guaranteed valid by
// protocol.ParseRequest, which rejects unknown names before a Request
// ever exists.
func (p *Pipeline) Dispatch(req *protocol.Request, conn net.Conn) {
	p.algos[req.Algorithm].Submit(job{req: req, conn: conn})
}

// Stop drains and stops every algorithm AO, then the sender — so no
// SendTask is ever submitted to an already-stopped sender.
func (p *Pipeline) Stop() {
	for _, ao := range p.algos {
		ao.Stop()
	}
	p.sender.Stop()
}
