// Package engines contains small, fast, non-cryptographic bit generators.
//
// Every engine is a comparable struct value with pointer-receiver methods
// Next, Seed, Reset and Discard, so it can be plugged into rnd.Random.
// Copying an engine value duplicates its stream; == compares full state.
// All engines produce uniformly distributed words over their full unsigned
// range, starting at zero.
//
// None of the engines is cryptographically secure and none is safe for
// concurrent use.
package engines
