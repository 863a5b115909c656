package parser

// Located records where a context began.
type Located[C any] struct {
	Row     int
	Col     int
	Context C
}

// contextNode is one cell of the persistent context stack. Tails are
// shared between states, so a push never copies.
type contextNode[C any] struct {
	located Located[C]
	next    *contextNode[C]
}

func (n *contextNode[C]) slice() []Located[C] {
	if n == nil {
		return nil
	}
	var out []Located[C]
	for ; n != nil; n = n.next {
		out = append(out, n.located)
	}
	return out
}

// State is an immutable snapshot of parse progress.
//
// The offset is a byte offset into the UTF-8 source. Rows and columns are
// 1-based; a column counts code points, not bytes.
type State[C any] struct {
	source  string
	offset  int
	indent  int
	context *contextNode[C]
	row     int
	col     int
}

// NewState returns the state a run starts from.
func NewState[C any](source string) State[C] {
	return State[C]{
		source: source,
		offset: 0,
		indent: 1,
		row:    1,
		col:    1,
	}
}

func (s State[C]) Source() string { return s.source }
func (s State[C]) Offset() int    { return s.offset }
func (s State[C]) Indent() int    { return s.indent }
func (s State[C]) Row() int       { return s.row }
func (s State[C]) Col() int       { return s.col }

// Context returns the active context stack, innermost first.
func (s State[C]) Context() []Located[C] {
	return s.context.slice()
}

// AtEnd reports whether the whole source has been consumed.
func (s State[C]) AtEnd() bool {
	return s.offset >= len(s.source)
}

// Rest returns the unconsumed part of the source.
func (s State[C]) Rest() string {
	return s.source[s.offset:]
}

func (s State[C]) moveTo(offset, row, col int) State[C] {
	s.offset = offset
	s.row = row
	s.col = col
	return s
}

// bumpOffset moves to newOffset on the same row. Only valid when the
// skipped text is ASCII without newlines, which holds for numeric literals.
func (s State[C]) bumpOffset(newOffset int) State[C] {
	return s.moveTo(newOffset, s.row, s.col+(newOffset-s.offset))
}

func (s State[C]) withContext(ctx *contextNode[C]) State[C] {
	s.context = ctx
	return s
}
