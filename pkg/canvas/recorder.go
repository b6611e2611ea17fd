package canvas

// Recorder is a Surface that captures arc operations instead of drawing
// them. Widget tests use it to assert on the geometry a painter issues.
type Recorder struct {
	Arcs []Arc
}

// NewRecorder creates an empty recorder.
func NewRecorder() *Recorder {
	return &Recorder{}
}

// StrokeArc implements Surface.
func (r *Recorder) StrokeArc(a Arc) {
	r.Arcs = append(r.Arcs, a)
}

// Reset discards recorded operations.
func (r *Recorder) Reset() {
	r.Arcs = nil
}

// Last returns the most recently recorded arc, or a zero Arc if none.
func (r *Recorder) Last() Arc {
	if len(r.Arcs) == 0 {
		return Arc{}
	}
	return r.Arcs[len(r.Arcs)-1]
}
