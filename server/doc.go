// Package server implements the concurrent request pipeline: a
// Leader–Follower acceptor pool feeding six long-lived Active Objects
// (one per algorithm plus a serializing sender) over FIFO mailboxes.
//
// The concurrency architecture is not grounded on the original
// single-threaded reference server (original_source/server.c accepts and
// handles one connection at a time; only the sender's write loop follows
// its write_all); it is this module's own addition,
// built from Go's sync.Mutex/sync.Cond in the same direct, lock-around-
// shared-state idiom the teacher library's core package uses for its
// own thread safety.
package server
