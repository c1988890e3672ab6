// Package rng provides a deterministic, seedable integer generator
// compatible with the classic ANSI-C rand()/srand() pair. A single *LCG
// is never shared between requests: the parser constructs one per
// connection from the request's seed, so there is no process-wide RNG
// mutex anywhere in the server — the mutex the reference C server needs
// around its global rand() state simply disappears.
package rng
