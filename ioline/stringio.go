package ioline

import "github.com/joshuapare/uwvalue/status"

// StringIO is an in-memory File/FileReader/FileWriter backed by a growable
// byte buffer, for building strings incrementally or feeding a LineReader
// fixture data in tests without touching the filesystem.
type StringIO struct {
	buf  []byte
	pos  int
	name string
}

// NewStringIO returns an empty StringIO, already "open".
func NewStringIO() *StringIO {
	return &StringIO{}
}

func (s *StringIO) Open(filename string, flags int, mode uint32) status.Status {
	s.name = filename
	return status.Ok
}

func (s *StringIO) Close() status.Status { return status.Ok }

func (s *StringIO) SetFD(fd int) status.Status {
	return status.Newf(status.NotImplemented, "StringIO has no file descriptor")
}

func (s *StringIO) GetName() string { return s.name }

func (s *StringIO) SetName(name string) status.Status {
	s.name = name
	return status.Ok
}

// Bytes returns the buffer written so far.
func (s *StringIO) Bytes() []byte { return s.buf }

// Reset empties the buffer and rewinds the read cursor.
func (s *StringIO) Reset() {
	s.buf = s.buf[:0]
	s.pos = 0
}

func (s *StringIO) Read(buf []byte) (int, status.Status) {
	if s.pos >= len(s.buf) {
		return 0, status.ErrEOF
	}
	n := copy(buf, s.buf[s.pos:])
	s.pos += n
	return n, status.Ok
}

func (s *StringIO) Write(data []byte) (int, status.Status) {
	s.buf = append(s.buf, data...)
	return len(data), status.Ok
}
