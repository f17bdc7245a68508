package ioline

import (
	"errors"
	"io"
	"os"
	"syscall"

	"github.com/joshuapare/uwvalue/status"
)

// osFile is a File/FileReader/FileWriter backed by a real OS file
// descriptor, opened either by name or adopted via SetFD.
type osFile struct {
	f    *os.File
	name string
}

// NewOSFile returns an unopened osFile.
func NewOSFile() *osFile {
	return &osFile{}
}

func errnoStatus(err error) status.Status {
	var errno syscall.Errno
	if errors.As(err, &errno) {
		return status.FromErrno(errno)
	}
	return status.Newf(status.NotImplemented, "%v", err)
}

func (o *osFile) Open(filename string, flags int, mode uint32) status.Status {
	if o.f != nil {
		return status.ErrFileAlreadyOpened
	}
	f, err := os.OpenFile(filename, flags, os.FileMode(mode))
	if err != nil {
		return errnoStatus(err)
	}
	o.f = f
	o.name = filename
	return status.Ok
}

func (o *osFile) Close() status.Status {
	if o.f == nil {
		return status.Ok
	}
	err := o.f.Close()
	o.f = nil
	if err != nil {
		return errnoStatus(err)
	}
	return status.Ok
}

func (o *osFile) SetFD(fd int) status.Status {
	if o.f != nil {
		return status.ErrFDAlreadySet
	}
	o.f = os.NewFile(uintptr(fd), o.name)
	return status.Ok
}

func (o *osFile) GetName() string { return o.name }

func (o *osFile) SetName(name string) status.Status {
	if o.f != nil {
		return status.ErrCannotSetFilename
	}
	o.name = name
	return status.Ok
}

// Read fills buf, looping through EINTR itself so callers never see it.
func (o *osFile) Read(buf []byte) (int, status.Status) {
	for {
		n, err := o.f.Read(buf)
		if err == nil {
			return n, status.Ok
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		if errors.Is(err, os.ErrClosed) {
			return n, status.Newf(status.NotImplemented, "read from closed file")
		}
		if errors.Is(err, io.EOF) {
			return n, status.ErrEOF
		}
		return n, errnoStatus(err)
	}
}

// Write writes data in full, looping through EINTR itself.
func (o *osFile) Write(data []byte) (int, status.Status) {
	total := 0
	for total < len(data) {
		n, err := o.f.Write(data[total:])
		total += n
		if err == nil {
			continue
		}
		if errors.Is(err, syscall.EINTR) {
			continue
		}
		return total, errnoStatus(err)
	}
	return total, status.Ok
}
