package draw

// OpKind identifies a recorded drawing call.
type OpKind int

const (
	OpClear OpKind = iota
	OpFillCircle
	OpStrokeCircle
	OpPolygon
	OpText
)

// Op is one recorded drawing call.
type Op struct {
	Kind   OpKind
	Center Point
	Radius float64
	Points []Point
	Filled bool
	Text   string
	Align  Align
}

// Recorder is a Surface that stores drawing calls for later replay.
// Hosts that separate update from draw record a frame and replay it;
// tests use it to inspect what was drawn.
type Recorder struct {
	Width, Height float64
	Ops           []Op
}

// NewRecorder creates a recorder with the given logical size.
func NewRecorder(width, height float64) *Recorder {
	return &Recorder{Width: width, Height: height}
}

func (r *Recorder) Size() (float64, float64) {
	return r.Width, r.Height
}

// Clear records a background clear. Previously recorded ops are dropped
// since a replay would paint over them anyway.
func (r *Recorder) Clear() {
	r.Ops = append(r.Ops[:0], Op{Kind: OpClear})
}

func (r *Recorder) FillCircle(center Point, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpFillCircle, Center: center, Radius: radius})
}

func (r *Recorder) StrokeCircle(center Point, radius float64) {
	r.Ops = append(r.Ops, Op{Kind: OpStrokeCircle, Center: center, Radius: radius})
}

func (r *Recorder) Polygon(points []Point, filled bool) {
	pts := make([]Point, len(points))
	copy(pts, points)
	r.Ops = append(r.Ops, Op{Kind: OpPolygon, Points: pts, Filled: filled})
}

func (r *Recorder) Text(at Point, s string, align Align) {
	r.Ops = append(r.Ops, Op{Kind: OpText, Center: at, Text: s, Align: align})
}

// Replay draws every recorded op onto dst in order.
func (r *Recorder) Replay(dst Surface) {
	for _, op := range r.Ops {
		switch op.Kind {
		case OpClear:
			dst.Clear()
		case OpFillCircle:
			dst.FillCircle(op.Center, op.Radius)
		case OpStrokeCircle:
			dst.StrokeCircle(op.Center, op.Radius)
		case OpPolygon:
			dst.Polygon(op.Points, op.Filled)
		case OpText:
			dst.Text(op.Center, op.Text, op.Align)
		}
	}
}

// Texts returns the strings of all recorded text ops.
func (r *Recorder) Texts() []string {
	var out []string
	for _, op := range r.Ops {
		if op.Kind == OpText {
			out = append(out, op.Text)
		}
	}
	return out
}

// Count returns how many ops of the given kind were recorded.
func (r *Recorder) Count(kind OpKind) int {
	n := 0
	for _, op := range r.Ops {
		if op.Kind == kind {
			n++
		}
	}
	return n
}

var _ Surface = (*Recorder)(nil)
