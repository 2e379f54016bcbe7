package series

// Series represent one plotted data series: the independent axis X and
// the dependent values Y, plus optional parallel per-point arrays.
// All present parallel arrays must keep the same length and the same
// set of retained original indices through every filtering stage.
type Series struct {
	X []float64
	Y []float64

	ColorValues []float64
	SizeValues  []float64
	Metadata    Meta
}

// N number of samples
func (s *Series) N() int {
	return len(s.Y)
}

// Clone shallow-copies every parallel array so the caller's series is
// left untouched.
func (s *Series) Clone() *Series {
	c := &Series{
		X:        append([]float64(nil), s.X...),
		Y:        append([]float64(nil), s.Y...),
		Metadata: s.Metadata,
	}
	if s.ColorValues != nil {
		c.ColorValues = append([]float64(nil), s.ColorValues...)
	}
	if s.SizeValues != nil {
		c.SizeValues = append([]float64(nil), s.SizeValues...)
	}
	return c
}

// Select keeps only the samples at the given original indices, in
// order, across every present parallel array.
func (s *Series) Select(kept []int) {
	s.X = SelectValues(s.X, kept)
	s.Y = SelectValues(s.Y, kept)
	if s.ColorValues != nil {
		s.ColorValues = SelectValues(s.ColorValues, kept)
	}
	if s.SizeValues != nil {
		s.SizeValues = SelectValues(s.SizeValues, kept)
	}
	s.Metadata = s.Metadata.Select(kept)
}

// Truncate drops all samples from index n onward.
func (s *Series) Truncate(n int) {
	if n < 0 || n >= len(s.Y) {
		return
	}
	s.X = s.X[:n]
	s.Y = s.Y[:n]
	if s.ColorValues != nil {
		s.ColorValues = s.ColorValues[:n]
	}
	if s.SizeValues != nil {
		s.SizeValues = s.SizeValues[:n]
	}
	s.Metadata = s.Metadata.Truncate(n)
}

// SelectValues .
func SelectValues(vals []float64, kept []int) []float64 {
	out := make([]float64, 0, len(kept))
	for _, i := range kept {
		out = append(out, vals[i])
	}
	return out
}

// Meta carries per-sample records: either one record shared by the
// whole series, or one record per point. Resolve via At, filter via
// Select.
type Meta struct {
	shared   interface{}
	perPoint []interface{}
	isPer    bool
}

// SharedMeta .
func SharedMeta(v interface{}) Meta {
	return Meta{shared: v}
}

// PerPointMeta .
func PerPointMeta(vs []interface{}) Meta {
	return Meta{perPoint: vs, isPer: true}
}

// IsZero .
func (m Meta) IsZero() bool {
	return !m.isPer && m.shared == nil
}

// PerPoint .
func (m Meta) PerPoint() bool {
	return m.isPer
}

// Len number of per-point records; 0 for shared or empty meta
func (m Meta) Len() int {
	return len(m.perPoint)
}

// At record for sample i
func (m Meta) At(i int) interface{} {
	if !m.isPer {
		return m.shared
	}
	if i < 0 || i >= len(m.perPoint) {
		return nil
	}
	return m.perPoint[i]
}

// Select keeps only the records at the given indices. Shared meta is
// returned unchanged.
func (m Meta) Select(kept []int) Meta {
	if !m.isPer {
		return m
	}
	out := make([]interface{}, 0, len(kept))
	for _, i := range kept {
		out = append(out, m.perPoint[i])
	}
	return PerPointMeta(out)
}

// Truncate .
func (m Meta) Truncate(n int) Meta {
	if !m.isPer || n < 0 || n >= len(m.perPoint) {
		return m
	}
	return PerPointMeta(m.perPoint[:n])
}
