package suite

import "testing"

// SequenceRand replays a fixed list of values in place of a random source.
// It fails the test when the list runs out or a value is out of range.
type SequenceRand struct {
	t      *testing.T
	values []int
	pos    int
}

func NewSequenceRand(t *testing.T, values ...int) *SequenceRand {
	t.Helper()

	return &SequenceRand{t: t, values: values}
}

func (that *SequenceRand) IntN(n int) int {
	that.t.Helper()

	if that.pos >= len(that.values) {
		that.t.Fatalf("random sequence exhausted after %d values", len(that.values))
	}

	v := that.values[that.pos]
	that.pos++

	if v < 0 || v >= n {
		that.t.Fatalf("scripted value %d out of range [0,%d)", v, n)
	}

	return v
}

// Remaining reports how many scripted values were not consumed.
func (that *SequenceRand) Remaining() int {
	return len(that.values) - that.pos
}
