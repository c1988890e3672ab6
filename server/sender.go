package server

import (
	"io"
	"net"
)

// SendTask is a fully assembled response body plus the connection it
// belongs to. SENDER_AO is the sole owner of both, and the only component
// that writes to or closes a client socket once its request has been
// dispatched; a request that fails to parse is answered and closed by the
// acceptor worker instead (see acceptorPool.handleConnection).
type SendTask struct {
	Conn net.Conn
	Text string
}

// writeAll loops until text is fully written or an unrecoverable error
// occurs, mirroring the reference server's write_all. Go's net.Conn.Write
// already honors the io.Writer contract (a short write is always paired
// with a non-nil error), so in practice this runs its body once; the loop
// stays explicit because nothing guarantees every future io.Writer this
// is used against keeps that contract.
func writeAll(w io.Writer, text string) error {
	buf := []byte(text)
	for len(buf) > 0 {
		n, err := w.Write(buf)
		if err != nil {
			return err
		}
		buf = buf[n:]
	}
	return nil
}

// newSenderAO builds SENDER_AO: write the task's text, then close the
// connection unconditionally. Write errors are not retried and never
// surfaced to the client.
func newSenderAO() *ActiveObject[SendTask] {
	return NewActiveObject(func(task SendTask) {
		_ = writeAll(task.Conn, task.Text)
		_ = task.Conn.Close()
	})
}
