// Command graphsrv-client sends one request line to a graphsrv server and
// prints its response to stdout, grounded on original_source/client.c.
//
// Usage: graphsrv-client <host> <port> "<ALGO> <edges> <vertices> <seed> [-p]"
package main

import (
	"fmt"
	"io"
	"net"
	"os"
	"time"
)

func main() {
	os.Exit(run(os.Args[1:], os.Stdout, os.Stderr))
}

func run(args []string, stdout, stderr io.Writer) int {
	if len(args) != 3 {
		fmt.Fprintf(stderr, "Usage: graphsrv-client <host> <port> \"<ALGO> <edges> <vertices> <seed> [-p]\"\n")
		return 2
	}
	host, port, line := args[0], args[1], args[2]

	conn, err := net.DialTimeout("tcp", net.JoinHostPort(host, port), 10*time.Second)
	if err != nil {
		fmt.Fprintf(stderr, "connect: %v\n", err)
		return 1
	}
	defer conn.Close()

	if _, err := fmt.Fprintf(conn, "%s\n", line); err != nil {
		fmt.Fprintf(stderr, "write: %v\n", err)
		return 1
	}

	if _, err := io.Copy(stdout, conn); err != nil {
		fmt.Fprintf(stderr, "read: %v\n", err)
		return 1
	}

	return 0
}
