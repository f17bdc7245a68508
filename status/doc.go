// Package status implements the Status value: a success/error result that
// can be carried anywhere a value is expected. A Status is either
// class-default (a small code registered at startup, with an optional
// printf-style description) or class-errno (a raw OS errno, per
// status.FromErrno), never both.
//
// Status implements the error interface so it composes with errors.Is and
// errors.As; Go's garbage collector stands in for the reference
// implementation's manual refcounted description string — a Status simply
// holds its description string for as long as something holds the Status.
package status
