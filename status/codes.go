package status

import "sync"

// Class distinguishes the two status families: a registered default-class
// code, or a raw OS errno.
type Class uint8

const (
	// ClassDefault identifies a status whose Code is an index into the
	// shared code table (see Register).
	ClassDefault Class = iota
	// ClassErrno identifies a status carrying a raw OS errno. Errno-class
	// statuses never have extra data (no description).
	ClassErrno
)

// Built-in default-class codes, fixed at the same slots every process
// gets them in (mirrors the reference implementation's basic_statuses
// array, slot-for-slot).
const (
	OK Code = iota
	VAEnd
	OOM
	NotImplemented
	IncompatibleType
	NoInterface
	EOF
	Gone
	PopFromEmptyList
	KeyNotFound
	FileAlreadyOpened
	CannotSetFilename
	FDAlreadySet
	PushbackFailed

	numBuiltinCodes
)

// Code is an index into the shared, monotonically growing status-code
// table. User code extends the table at startup via Register; built-in
// codes above are stable across processes, registered ones are only
// stable within one.
type Code uint16

var builtinNames = [numBuiltinCodes]string{
	OK:                 "OK",
	VAEnd:              "VA_END",
	OOM:                "OOM",
	NotImplemented:     "NOT_IMPLEMENTED",
	IncompatibleType:   "INCOMPATIBLE_TYPE",
	NoInterface:        "NO_INTERFACE",
	EOF:                "EOF",
	Gone:               "GONE",
	PopFromEmptyList:   "POP_FROM_EMPTY_LIST",
	KeyNotFound:        "KEY_NOT_FOUND",
	FileAlreadyOpened:  "FILE_ALREADY_OPENED",
	CannotSetFilename:  "CANNOT_SET_FILENAME",
	FDAlreadySet:       "FD_ALREADY_SET",
	PushbackFailed:     "PUSHBACK_FAILED",
}

// codeTablePageSize is the chunk size the code table grows by, echoing the
// reference implementation's page-sized mmap growth; in Go this is just
// the slice growth increment, not an actual page-aligned mapping.
const codeTablePageSize = 64

var (
	tableMu sync.Mutex
	names   = append([]string(nil), builtinNames[:]...)
)

// Register allocates the next free status code for name and returns it.
// The table only ever grows: codes are never reused or removed, so a Code
// value is valid for the remaining lifetime of the process once assigned.
func Register(name string) Code {
	tableMu.Lock()
	defer tableMu.Unlock()

	if len(names) == cap(names) {
		grown := make([]string, len(names), len(names)+codeTablePageSize)
		copy(grown, names)
		names = grown
	}
	code := Code(len(names))
	names = append(names, name)
	return code
}

// Name returns the registered name for code, or "(unknown)" if code was
// never registered.
func Name(code Code) string {
	tableMu.Lock()
	defer tableMu.Unlock()
	if int(code) < len(names) {
		return names[code]
	}
	return "(unknown)"
}
