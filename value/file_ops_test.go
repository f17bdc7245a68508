package value

import (
	"testing"

	"github.com/joshuapare/uwvalue/registry"
)

func TestStringIOWriteReadThroughValue(t *testing.T) {
	sio := NewStringIO()
	n, st := FileWrite(sio, []byte("hello"))
	if !st.IsOK() || n != 5 {
		t.Fatalf("FileWrite: n=%d st=%v", n, st)
	}

	buf := make([]byte, 16)
	n, st = FileRead(sio, buf)
	if !st.IsOK() || string(buf[:n]) != "hello" {
		t.Fatalf("FileRead: n=%d st=%v buf=%q", n, st, buf[:n])
	}

	Destroy(&sio)
	if sio.TypeID() != registry.Null {
		t.Fatalf("expected StringIO cell to reset to Null after Destroy")
	}
}

func TestStringIOLineReader(t *testing.T) {
	sio := NewStringIO()
	_, _ = FileWrite(sio, []byte("one\ntwo\n"))

	lr := NewLineReader(sio)
	_ = lr.Start()

	line, st := lr.ReadLine()
	if !st.IsOK() || line != "one" {
		t.Fatalf("expected first line 'one', got %q (%v)", line, st)
	}
	line, st = lr.ReadLine()
	if !st.IsOK() || line != "two" {
		t.Fatalf("expected second line 'two', got %q (%v)", line, st)
	}
}

func TestFileGetSetName(t *testing.T) {
	f := NewFile()
	if st := FileSetName(f, "/tmp/example"); !st.IsOK() {
		t.Fatalf("FileSetName: %v", st)
	}
	if FileGetName(f) != "/tmp/example" {
		t.Fatalf("expected name to round-trip, got %q", FileGetName(f))
	}
}

func TestStringIOResetClearsBuffer(t *testing.T) {
	sio := NewStringIO()
	_, _ = FileWrite(sio, []byte("data"))
	if len(StringIOBytes(sio)) == 0 {
		t.Fatalf("expected non-empty buffer before reset")
	}
	StringIOReset(sio)
	if len(StringIOBytes(sio)) != 0 {
		t.Fatalf("expected empty buffer after reset")
	}
}
