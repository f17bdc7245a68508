package ioline

import "github.com/joshuapare/uwvalue/status"

// bufferedLineReader implements LineReader over any FileReader, buffering
// raw reads and splitting on '\n'. It supports exactly one line of
// pushback, matching the reference implementation's single-slot unread.
type bufferedLineReader struct {
	src        FileReader
	buf        []byte
	pos        int
	lineNumber int
	pushedBack *string
}

// NewLineReader wraps src with line-splitting and one-line pushback.
func NewLineReader(src FileReader) LineReader {
	return &bufferedLineReader{src: src}
}

func (r *bufferedLineReader) Start() status.Status {
	r.buf = r.buf[:0]
	r.pos = 0
	r.lineNumber = 0
	r.pushedBack = nil
	return status.Ok
}

func (r *bufferedLineReader) Stop() status.Status {
	return status.Ok
}

func (r *bufferedLineReader) GetLineNumber() int { return r.lineNumber }

func (r *bufferedLineReader) UnreadLine(line string) status.Status {
	if r.pushedBack != nil {
		return status.ErrPushbackFailed
	}
	r.pushedBack = &line
	r.lineNumber--
	return status.Ok
}

// fill reads more raw bytes into r.buf when the unconsumed tail has no
// newline yet.
func (r *bufferedLineReader) fill() status.Status {
	chunk := make([]byte, 4096)
	n, st := r.src.Read(chunk)
	if n > 0 {
		r.buf = append(r.buf[r.pos:], chunk[:n]...)
		r.pos = 0
	}
	return st
}

func (r *bufferedLineReader) nextLineBytes() ([]byte, status.Status) {
	for {
		if idx := indexByte(r.buf[r.pos:], '\n'); idx >= 0 {
			line := r.buf[r.pos : r.pos+idx]
			r.pos += idx + 1
			return line, status.Ok
		}
		st := r.fill()
		if st.IsEOF() {
			if r.pos < len(r.buf) {
				line := r.buf[r.pos:]
				r.pos = len(r.buf)
				return line, status.Ok
			}
			return nil, status.ErrEOF
		}
		if st.IsError() {
			return nil, st
		}
	}
}

func indexByte(b []byte, c byte) int {
	for i, v := range b {
		if v == c {
			return i
		}
	}
	return -1
}

func (r *bufferedLineReader) ReadLine() (string, status.Status) {
	if r.pushedBack != nil {
		line := *r.pushedBack
		r.pushedBack = nil
		r.lineNumber++
		return line, status.Ok
	}
	b, st := r.nextLineBytes()
	if st.IsError() {
		return "", st
	}
	r.lineNumber++
	return string(b), status.Ok
}

func (r *bufferedLineReader) ReadLineInPlace(dst LineSink) status.Status {
	line, st := r.ReadLine()
	if st.IsError() {
		return st
	}
	if err := dst.Truncate(0); err != nil {
		return status.Newf(status.OOM, "%v", err)
	}
	if err := dst.AppendString(line); err != nil {
		return status.Newf(status.OOM, "%v", err)
	}
	return status.Ok
}
