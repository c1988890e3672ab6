// Command graphsrv runs the graph-algorithms TCP server: a Leader–Follower
// acceptor pool feeding the five algorithm Active Objects and their
// serializing sender.
//
// Usage: graphsrv <port> [threads]
//
// threads defaults to the host's CPU count (minimum 1) when omitted,
// matching the default the reference server's fixed single-acceptor loop
// generalizes from.
package main

import (
	"fmt"
	"os"
	"strconv"

	"github.com/katalvlaran/graphsrv/server"
)

func main() {
	os.Exit(run(os.Args[1:]))
}

func run(args []string) int {
	if len(args) < 1 || len(args) > 2 {
		fmt.Fprintf(os.Stderr, "Usage: graphsrv <port> [threads]\n")
		return 2
	}

	port, err := strconv.Atoi(args[0])
	if err != nil || port <= 0 || port > 65535 {
		fmt.Fprintf(os.Stderr, "Invalid port\n")
		return 2
	}

	threads := server.DefaultThreads()
	if len(args) == 2 {
		t, err := strconv.Atoi(args[1])
		if err != nil || t < 1 {
			fmt.Fprintf(os.Stderr, "Invalid threads\n")
			return 2
		}
		threads = t
	}

	srv, err := server.Listen(fmt.Sprintf(":%d", port), threads)
	if err != nil {
		fmt.Fprintf(os.Stderr, "%v\n", err)
		return 1
	}

	fmt.Fprintf(os.Stderr, "graphsrv listening on port %d with %d acceptor threads\n", port, threads)
	srv.Wait()
	return 0
}
