package value

import (
	"github.com/joshuapare/uwvalue/compound"
	"github.com/joshuapare/uwvalue/ioline"
	"github.com/joshuapare/uwvalue/registry"
	"github.com/joshuapare/uwvalue/status"
)

// fileLike is the capability set both ioline.NewOSFile and ioline.NewStringIO
// satisfy; File and StringIO cells both store one behind extra.user so the
// File* accessors below work uniformly across either cell type.
type fileLike interface {
	ioline.File
	ioline.FileReader
	ioline.FileWriter
}

func newFileLikeValue(typeID registry.TypeID, f fileLike) Value {
	ed := &extraData{compound: compound.Data{Refcount: 1}, user: f}
	return Value{typeID: typeID, extra: ed}
}

// NewFile returns an unopened File cell backed by a real OS file
// descriptor; call FileOpen or FileSetFD to attach it to a resource.
func NewFile() Value {
	return newFileLikeValue(registry.File, ioline.NewOSFile())
}

// NewStringIO returns an empty, already-open StringIO cell backed by a
// growable in-memory buffer.
func NewStringIO() Value {
	return newFileLikeValue(registry.StringIO, ioline.NewStringIO())
}

func fileOf(v Value) fileLike {
	if v.typeID != registry.File && v.typeID != registry.StringIO {
		panic(&typeMismatchError{want: registry.File, got: v.typeID})
	}
	f, _ := v.extra.user.(fileLike)
	return f
}

// FileOpen opens filename on a File cell. On a StringIO cell it opens
// nothing: it records filename as the display name and reports OK.
func FileOpen(v Value, filename string, flags int, mode uint32) status.Status {
	return fileOf(v).Open(filename, flags, mode)
}

// FileClose releases the underlying resource, if any.
func FileClose(v Value) status.Status {
	return fileOf(v).Close()
}

// FileSetFD adopts an already-open file descriptor (e.g. inherited
// stdin/stdout) into a File cell.
func FileSetFD(v Value, fd int) status.Status {
	return fileOf(v).SetFD(fd)
}

// FileGetName returns the display name set by Open or FileSetName.
func FileGetName(v Value) string {
	return fileOf(v).GetName()
}

// FileSetName overrides the display name used in error messages, without
// opening anything.
func FileSetName(v Value, name string) status.Status {
	return fileOf(v).SetName(name)
}

// FileRead reads raw bytes from v into buf.
func FileRead(v Value, buf []byte) (int, status.Status) {
	return fileOf(v).Read(buf)
}

// FileWrite writes data to v in full.
func FileWrite(v Value, data []byte) (int, status.Status) {
	return fileOf(v).Write(data)
}

// StringIOBytes returns the bytes written so far into a StringIO cell.
func StringIOBytes(v Value) []byte {
	v.mustBeType(registry.StringIO)
	return v.extra.user.(*ioline.StringIO).Bytes()
}

// StringIOReset empties a StringIO cell's buffer and rewinds its read
// cursor, for reuse without allocating a fresh cell.
func StringIOReset(v Value) {
	v.mustBeType(registry.StringIO)
	v.extra.user.(*ioline.StringIO).Reset()
}

// NewLineReader wraps a File or StringIO cell with line-oriented reading
// and one-line pushback. The line reader is a plain consumer interface,
// not a value type of its own, matching the runtime's treatment of line
// readers as external collaborators over the File/FileReader contracts.
func NewLineReader(v Value) ioline.LineReader {
	return ioline.NewLineReader(fileOf(v))
}
