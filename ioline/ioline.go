package ioline

import "github.com/joshuapare/uwvalue/status"

// File is the open/close/identity contract shared by every file-backed
// value. SetFD adopts an already-open descriptor (e.g. inherited stdin);
// SetName/GetName track a display name independent of the real path,
// mirroring the reference implementation's ability to name a StringIO for
// error messages.
type File interface {
	Open(filename string, flags int, mode uint32) status.Status
	Close() status.Status
	SetFD(fd int) status.Status
	GetName() string
	SetName(name string) status.Status
}

// FileReader reads raw bytes from an open File.
type FileReader interface {
	Read(buf []byte) (n int, st status.Status)
}

// FileWriter writes raw bytes to an open File.
type FileWriter interface {
	Write(data []byte) (n int, st status.Status)
}

// LineReader layers line-oriented, one-line-of-pushback reading over a
// FileReader.
type LineReader interface {
	Start() status.Status
	ReadLine() (line string, st status.Status)
	// ReadLineInPlace reads the next line and stores it in dst, replacing
	// dst's previous contents (dst grows via its own width promotion). The
	// line is read as a Go string first, then appended to dst.
	ReadLineInPlace(dst LineSink) status.Status
	UnreadLine(line string) status.Status
	GetLineNumber() int
	Stop() status.Status
}

// LineSink is the minimal surface ReadLineInPlace needs from a
// destination string; vstring.VString satisfies it without this package
// importing vstring, avoiding a needless dependency for callers that only
// want ReadLine.
type LineSink interface {
	Truncate(n int) error
	AppendString(s string) error
}
