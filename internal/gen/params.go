package gen

const (
	// DefaultLambda replaces any shrink factor outside (0,1).
	DefaultLambda = 0.8

	// MaxDepth bounds recursion; deeper requests are clamped.
	MaxDepth = 12
)

// Params controls one generator run.
type Params struct {
	Lambda float64
	Depth  int
}

// ValidLambda reports whether l lies strictly between 0 and 1.
func ValidLambda(l float64) bool {
	return l > 0 && l < 1
}

// NormalizeLambda returns l when valid, otherwise DefaultLambda and false.
func NormalizeLambda(l float64) (float64, bool) {
	if ValidLambda(l) {
		return l, true
	}
	return DefaultLambda, false
}

func (p Params) depth() int {
	switch {
	case p.Depth < 0:
		return 0
	case p.Depth > MaxDepth:
		return MaxDepth
	}
	return p.Depth
}

// Rand picks indices into the fixed palettes.
// *math/rand.Rand satisfies it.
type Rand interface {
	Intn(n int) int
}

// Sequence is a Rand that replays fixed values modulo n, cycling forever.
type Sequence struct {
	Values []int
	next   int
}

func (s *Sequence) Intn(n int) int {
	if len(s.Values) == 0 || n <= 0 {
		return 0
	}
	v := s.Values[s.next%len(s.Values)]
	s.next++
	v %= n
	if v < 0 {
		v += n
	}
	return v
}
