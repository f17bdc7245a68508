package ioline

import "testing"

func TestStringIOWriteRead(t *testing.T) {
	s := NewStringIO()
	n, st := s.Write([]byte("hello"))
	if st.IsError() || n != 5 {
		t.Fatalf("Write failed: n=%d st=%v", n, st)
	}

	buf := make([]byte, 16)
	n, st = s.Read(buf)
	if st.IsError() || string(buf[:n]) != "hello" {
		t.Fatalf("Read failed: n=%d st=%v buf=%q", n, st, buf[:n])
	}

	n, st = s.Read(buf)
	if !st.IsEOF() || n != 0 {
		t.Fatalf("expected EOF on exhausted buffer, got n=%d st=%v", n, st)
	}
}

func TestLineReaderSplitsAndCounts(t *testing.T) {
	s := NewStringIO()
	_, _ = s.Write([]byte("one\ntwo\nthree"))

	lr := NewLineReader(s)
	_ = lr.Start()

	line, st := lr.ReadLine()
	if st.IsError() || line != "one" {
		t.Fatalf("line 1: %q %v", line, st)
	}
	line, st = lr.ReadLine()
	if st.IsError() || line != "two" {
		t.Fatalf("line 2: %q %v", line, st)
	}
	line, st = lr.ReadLine()
	if st.IsError() || line != "three" {
		t.Fatalf("line 3 (no trailing newline): %q %v", line, st)
	}
	if lr.GetLineNumber() != 3 {
		t.Fatalf("expected line number 3, got %d", lr.GetLineNumber())
	}
	_, st = lr.ReadLine()
	if !st.IsEOF() {
		t.Fatalf("expected EOF after last line, got %v", st)
	}
}

func TestLineReaderPushback(t *testing.T) {
	s := NewStringIO()
	_, _ = s.Write([]byte("a\nb\n"))
	lr := NewLineReader(s)
	_ = lr.Start()

	first, _ := lr.ReadLine()
	if err := lr.UnreadLine(first); err.IsError() {
		t.Fatalf("UnreadLine failed: %v", err)
	}
	again, st := lr.ReadLine()
	if st.IsError() || again != first {
		t.Fatalf("expected pushed-back line %q, got %q (%v)", first, again, st)
	}

	second, st := lr.ReadLine()
	if st.IsError() || second != "b" {
		t.Fatalf("expected second line 'b', got %q (%v)", second, st)
	}
}

func TestOSFileSetNameWhileUnopened(t *testing.T) {
	f := NewOSFile()
	if st := f.SetName("/tmp/does-not-matter"); st.IsError() {
		t.Fatalf("SetName: %v", st)
	}
}
