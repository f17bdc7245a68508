package compound

import (
	"fmt"
	"io"
	"strings"
)

// Dump writes a human-readable rendering of d's parent set to w, indented
// by indent spaces, for use by value types' debug-dump operations.
func Dump(w io.Writer, d *Data, indent int) {
	pad := strings.Repeat(" ", indent)
	if d.usingList {
		fmt.Fprintf(w, "%scompound, %d chunk(s):\n", pad, len(d.chunks))
		for ci := range d.chunks {
			chunk := &d.chunks[ci]
			for i := 0; i < ParentsChunkSize; i++ {
				if p := chunk.parents[i]; p != nil {
					fmt.Fprintf(w, "%s  parent %p refcount %d\n", pad, p, chunk.refcount[i])
				}
			}
		}
		return
	}
	fmt.Fprintf(w, "%scompound, embedded:\n", pad)
	fmt.Fprintf(w, "%s  parent %p refcount %d; parent %p refcount %d\n",
		pad, d.parents[0], d.parentsRC[0], d.parents[1], d.parentsRC[1])
}
