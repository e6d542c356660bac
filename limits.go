package ecbor

// Limits bounds the resources a Decoder is willing to spend on a single
// buffer. It plays the same role as the teacher codec's DecodeLimits: a
// small, copyable config struct, with a documented zero-value default,
// threaded through the constructors rather than mutated mid-decode.
type Limits struct {
	// MaxDepth bounds container/tag nesting depth during the recursive
	// definite-size walk the streaming decoder performs for any
	// container it decodes outside of streamed mode (arrays, maps, tags,
	// and indefinite-string chunk runs). The original C library has no
	// equivalent field: its call stack is small and fixed by the
	// embedded build, so unbounded recursion was a theoretical rather
	// than practical concern. Go's goroutine stacks grow on demand,
	// which turns deeply nested malicious input into a real
	// stack-exhaustion risk, so this decoder enforces a limit here
	// instead.
	MaxDepth int
}

// defaultMaxDepth caps nesting deep enough for any realistic document
// while still failing closed well before a goroutine stack would be at
// risk.
const defaultMaxDepth = 1024

// DefaultLimits returns the Limits applied when a Decoder is constructed
// with a zero-value Limits (MaxDepth <= 0).
func DefaultLimits() Limits {
	return Limits{MaxDepth: defaultMaxDepth}
}

func (l Limits) normalized() Limits {
	if l.MaxDepth <= 0 {
		return DefaultLimits()
	}
	return l
}
