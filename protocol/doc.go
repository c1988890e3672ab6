// Package protocol implements the line-oriented wire grammar: parsing a
// request header (random or explicit-graph mode) plus its edge lines into
// a validated Request, and rendering the adjacency prefix that the "-p"
// flag requests.
//
// Parsing happens synchronously on the Leader–Follower worker that
// accepted the connection: by the time a Request reaches an algorithm's
// mailbox, its Graph is already built and validated.
package protocol
