package main

import (
	"fmt"
	"os"
	"strconv"
	"strings"
	"syscall"

	"github.com/joshuapare/uwvalue/value"
)

// loadStore reads path as a flat "key=value" line format into a
// value.Map cell, using the runtime's own File and LineReader rather
// than bufio — the whole point of uwsh is to drive the library the way
// an embedding application would. A missing file loads as an empty map.
func loadStore(path string) (value.Value, error) {
	m := value.NewMap()

	f := value.NewFile()
	if st := value.FileOpen(f, path, os.O_RDONLY, 0o644); st.IsError() {
		if st.Errno() == syscall.ENOENT {
			return m, nil
		}
		return value.Value{}, fmt.Errorf("open %s: %s", path, st.Error())
	}
	defer value.FileClose(f)

	lr := value.NewLineReader(f)
	if st := lr.Start(); st.IsError() {
		return value.Value{}, fmt.Errorf("%s: %s", path, st.Error())
	}
	for {
		line, st := lr.ReadLine()
		if st.IsEOF() {
			break
		}
		if st.IsError() {
			return value.Value{}, fmt.Errorf("%s: %s", path, st.Error())
		}
		key, val, ok := strings.Cut(line, "=")
		if !ok {
			continue
		}
		keyVal, _ := value.NewString(key)
		if st := value.MapUpdate(&m, keyVal, parseLiteral(val)); st.IsError() {
			return value.Value{}, fmt.Errorf("%s: %s", path, st.Error())
		}
	}
	return m, nil
}

// saveStore writes m back to path in the same "key=value" line format
// loadStore reads, one MapEach pass over the live map.
func saveStore(path string, m value.Value) error {
	f := value.NewFile()
	if st := value.FileOpen(f, path, os.O_WRONLY|os.O_CREATE|os.O_TRUNC, 0o644); st.IsError() {
		return fmt.Errorf("open %s: %s", path, st.Error())
	}
	defer value.FileClose(f)

	var buf strings.Builder
	value.MapEach(m, func(key, val value.Value) {
		buf.WriteString(value.ToString(key))
		buf.WriteByte('=')
		buf.WriteString(value.ToString(val))
		buf.WriteByte('\n')
	})
	if _, st := value.FileWrite(f, []byte(buf.String())); st.IsError() {
		return fmt.Errorf("write %s: %s", path, st.Error())
	}
	return nil
}

// parseLiteral turns a store file's right-hand side into a Value cell,
// trying int, then float, then bool, and falling back to string.
func parseLiteral(s string) value.Value {
	if i, err := strconv.ParseInt(s, 10, 64); err == nil {
		return value.NewInt(i)
	}
	if f, err := strconv.ParseFloat(s, 64); err == nil {
		return value.NewFloat(f)
	}
	if b, err := strconv.ParseBool(s); err == nil {
		return value.NewBool(b)
	}
	v, _ := value.NewString(s)
	return v
}
