package anim

// Segment is one leg of a Sequence: a linear interpolation from From to To
// occupying Weight of the sequence's total time. An optional Curve eases the
// leg; nil means linear.
type Segment struct {
	From   float64
	To     float64
	Weight float64
	Curve  Curve
}

// Sequence chains weighted interpolation segments over a single normalized
// clock. At(t) locates the segment containing t and interpolates within it,
// so a two-segment sequence with equal weights spends exactly half the cycle
// in each leg.
type Sequence struct {
	segments []Segment
	total    float64
}

// NewSequence builds a sequence from the given segments. Segments with
// non-positive weight are dropped.
func NewSequence(segments ...Segment) *Sequence {
	s := &Sequence{}
	for _, seg := range segments {
		if seg.Weight <= 0 {
			continue
		}
		s.segments = append(s.segments, seg)
		s.total += seg.Weight
	}
	return s
}

// At evaluates the sequence at global position t in [0, 1].
func (s *Sequence) At(t float64) float64 {
	if len(s.segments) == 0 {
		return 0
	}
	t = clamp01(t)

	pos := t * s.total
	for _, seg := range s.segments {
		if pos <= seg.Weight {
			local := pos / seg.Weight
			if seg.Curve != nil {
				local = seg.Curve(local)
			}
			return seg.From + (seg.To-seg.From)*local
		}
		pos -= seg.Weight
	}

	// t == 1 lands past the loop due to floating point; end of last segment.
	return s.segments[len(s.segments)-1].To
}
