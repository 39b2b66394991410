//go:build !release

package rnd

// assertions reports whether precondition checks are compiled in.
const assertions = true

// precondition panics with an Error if ok is false. Build with -tags release
// to compile the checks out; each operation then returns its documented
// fallback instead.
func precondition(ok bool, msg string) {
	if !ok {
		panic(Error.New("%s", msg))
	}
}
