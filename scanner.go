package seqmatch

// Scanner walks a fixed sequence, applying a Pattern repeatedly and
// advancing a cursor after each successful match. It holds the pattern,
// the sequence and the cursor; like coregex's Regex methods operating on a
// caller-owned byte slice, it is not safe for concurrent use.
type Scanner struct {
	pattern *Pattern
	values  []any
	pos     int
}

// NewScanner builds a Scanner over values for pattern, starting at
// position 0.
func NewScanner(pattern *Pattern, values []any) *Scanner {
	return &Scanner{pattern: pattern, values: values}
}

// Pos returns the Scanner's current cursor position.
func (s *Scanner) Pos() int { return s.pos }

// EOV reports whether the cursor has reached the end of the sequence.
func (s *Scanner) EOV() bool { return s.pos >= len(s.values) }

// Reset moves the cursor back to the start of the sequence. Calling it
// repeatedly is idempotent.
func (s *Scanner) Reset() { s.pos = 0 }

// SeekTo moves the cursor to an arbitrary position, for callers resuming a
// scan from a previously recorded Match.NextPos.
func (s *Scanner) SeekTo(pos int) { s.pos = pos }

// Scan attempts a match anchored exactly at the current cursor. On a match
// it advances the cursor to the match's NextPos and returns the Match; on
// a miss the cursor is left untouched and the result is nil: a failed scan
// never mutates scanner state.
func (s *Scanner) Scan() *Match {
	if s.EOV() {
		return nil
	}
	m := s.pattern.Match(s.values[s.pos:])
	if m == nil {
		return nil
	}
	base := s.pos
	s.pos += m.nextPos
	m.nextPos += base
	return m
}

// ScanUntil advances the trial start position one element at a time until
// a match is found or the sequence is exhausted, leaving the cursor at the
// match's NextPos on success. On exhaustion it returns nil and the cursor
// is left untouched.
func (s *Scanner) ScanUntil() *Match {
	for start := s.pos; start < len(s.values); start++ {
		m := s.pattern.Match(s.values[start:])
		if m != nil {
			s.pos = start + m.nextPos
			m.nextPos = s.pos
			return m
		}
	}
	return nil
}

// Source streams values one at a time, for inputs produced lazily. It is
// the streaming counterpart to a plain []any, in the spirit of coregex's
// io.Reader-backed scanning surface. StreamScanner reads a Source to its
// end and buffers every value before matching, so the whole stream is held
// in memory.
type Source interface {
	// Next returns the next value and true, or (nil, false) at the end of
	// the stream.
	Next() (any, bool)

	// Reset replays the stream from its beginning. StreamScanner.Reset
	// calls it after discarding its buffer, then reads the stream again.
	Reset()
}

// SliceSource adapts a fixed []any into a Source, for exercising
// StreamScanner against in-memory data or in tests standing in for a
// genuinely lazy producer.
type SliceSource struct {
	values []any
	pos    int
}

// NewSliceSource wraps values as a Source.
func NewSliceSource(values []any) *SliceSource {
	return &SliceSource{values: values}
}

// Next implements Source.
func (s *SliceSource) Next() (any, bool) {
	if s.pos >= len(s.values) {
		return nil, false
	}
	v := s.values[s.pos]
	s.pos++
	return v, true
}

// Reset implements Source.
func (s *SliceSource) Reset() { s.pos = 0 }

// StreamScanner is a Scanner over a Source instead of a fixed slice. A
// greedy match can't be scored until the search has seen everything left
// in the stream to prefer the longest alternative, so Scan and ScanUntil
// drain src to exhaustion before running Pattern.Match; Source.Next is
// still only ever called once per element.
type StreamScanner struct {
	pattern *Pattern
	src     Source
	buf     []any
	done    bool
	pos     int
}

// NewStreamScanner builds a StreamScanner over src for pattern.
func NewStreamScanner(pattern *Pattern, src Source) *StreamScanner {
	return &StreamScanner{pattern: pattern, src: src}
}

// fillAll reads every remaining value from src into buf.
func (s *StreamScanner) fillAll() {
	for !s.done {
		v, ok := s.src.Next()
		if !ok {
			s.done = true
			break
		}
		s.buf = append(s.buf, v)
	}
}

// Pos returns the StreamScanner's current cursor position within the
// values consumed from src so far.
func (s *StreamScanner) Pos() int { return s.pos }

// Reset rewinds both the cursor and the underlying Source back to the
// start of the stream, discarding any buffered lookahead.
func (s *StreamScanner) Reset() {
	s.src.Reset()
	s.buf = nil
	s.done = false
	s.pos = 0
}

// EOV reports whether the stream is exhausted at the current cursor. It
// drains src to find out.
func (s *StreamScanner) EOV() bool {
	s.fillAll()
	return s.pos >= len(s.buf)
}

// Scan attempts a match anchored at the current cursor, draining src first
// so the match is scored against everything the stream has left. Behaves
// like Scanner.Scan otherwise.
func (s *StreamScanner) Scan() *Match {
	if s.EOV() {
		return nil
	}
	m := s.pattern.Match(s.buf[s.pos:])
	if m == nil {
		return nil
	}
	base := s.pos
	s.pos += m.nextPos
	m.nextPos += base
	return m
}

// ScanUntil advances the trial start position until a match is found or
// the stream is exhausted. Behaves like Scanner.ScanUntil otherwise.
func (s *StreamScanner) ScanUntil() *Match {
	s.fillAll()
	for start := s.pos; start < len(s.buf); start++ {
		m := s.pattern.Match(s.buf[start:])
		if m != nil {
			s.pos = start + m.nextPos
			m.nextPos = s.pos
			return m
		}
	}
	return nil
}
