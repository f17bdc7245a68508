package status

import (
	"fmt"
	"syscall"
)

// Status is a success/error result, usable anywhere a value is expected.
type Status struct {
	class Class
	code  Code
	errno syscall.Errno
	desc  string
	hasDesc bool
}

// New returns a class-default status with the given code and no
// description.
func New(code Code) Status {
	return Status{class: ClassDefault, code: code}
}

// Newf returns a class-default status with a printf-formatted description.
func Newf(code Code, format string, args ...any) Status {
	return Status{class: ClassDefault, code: code, desc: fmt.Sprintf(format, args...), hasDesc: true}
}

// FromErrno wraps a raw OS errno as a class-errno status. Errno-class
// statuses never carry a description; the OS-provided errno string
// (via errno.Error()) stands in for one.
func FromErrno(errno syscall.Errno) Status {
	return Status{class: ClassErrno, errno: errno}
}

// Ok is the zero-code, no-description default-class success sentinel.
var Ok = New(OK)

// Class reports which family this status belongs to.
func (s Status) Class() Class { return s.class }

// Code reports the default-class code. Meaningless for errno-class
// statuses; use Errno instead.
func (s Status) Code() Code { return s.code }

// Errno reports the raw errno for an errno-class status. Zero for
// default-class statuses.
func (s Status) Errno() syscall.Errno { return s.errno }

// IsOK reports whether this status represents success: any default-class
// status whose code is OK, or any errno-class status whose errno is zero.
func (s Status) IsOK() bool {
	switch s.class {
	case ClassErrno:
		return s.errno == 0
	default:
		return s.code == OK
	}
}

// IsError is the negation of IsOK.
func (s Status) IsError() bool {
	return !s.IsOK()
}

// IsEOF reports whether this status is the distinguished default-class
// EOF code.
func (s Status) IsEOF() bool {
	return s.class == ClassDefault && s.code == EOF
}

// Description returns the status's description. For a default-class
// status with no explicit description, it falls back to the registered
// code name ("no description" semantics from the reference implementation
// collapse to the code's name here, which is always available). For an
// errno-class status, it returns the OS error string.
func (s Status) Description() string {
	if s.class == ClassErrno {
		return s.errno.Error()
	}
	if s.hasDesc {
		return s.desc
	}
	return Name(s.code)
}

// Error implements the error interface so Status composes with
// errors.Is/errors.As and can be returned from ordinary Go functions that
// still want to interoperate with value-runtime callers.
func (s Status) Error() string {
	if s.IsOK() {
		return "OK"
	}
	if s.class == ClassErrno {
		return fmt.Sprintf("errno %d: %s", int(s.errno), s.errno.Error())
	}
	return fmt.Sprintf("%s: %s", Name(s.code), s.Description())
}

// Is supports errors.Is(err, status.New(KeyNotFound)) style comparisons by
// matching on class+code (or class+errno).
func (s Status) Is(target error) bool {
	other, ok := target.(Status)
	if !ok {
		return false
	}
	if s.class != other.class {
		return false
	}
	if s.class == ClassErrno {
		return s.errno == other.errno
	}
	return s.code == other.code
}
