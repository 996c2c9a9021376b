package protocol

import "bytes"

// TCP hands the receiver arbitrary byte chunks; a chunk can hold a
// partial line, one line, or several. LineBuffer reassembles them.
type LineBuffer struct {
	buf []byte
}

// maxPartial bounds a line that never terminates. An oversized partial
// is dropped wholesale rather than split into garbage lines.
const maxPartial = 4096

// Feed appends the bytes a stream read produced.
func (lb *LineBuffer) Feed(p []byte) {
	lb.buf = append(lb.buf, p...)
	if len(lb.buf) > maxPartial && bytes.IndexByte(lb.buf, '\n') < 0 {
		lb.buf = lb.buf[:0]
	}
}

// Next pops exactly one complete line, without its terminator, per
// call. Trailing partial bytes stay buffered for later feeds. A lone
// trailing '\r' is stripped.
func (lb *LineBuffer) Next() ([]byte, bool) {
	i := bytes.IndexByte(lb.buf, '\n')
	if i < 0 {
		return nil, false
	}
	line := make([]byte, i)
	copy(line, lb.buf[:i])
	lb.buf = append(lb.buf[:0], lb.buf[i+1:]...)
	if n := len(line); n > 0 && line[n-1] == '\r' {
		line = line[:n-1]
	}
	return line, true
}
