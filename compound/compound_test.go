package compound

import (
	"strings"
	"testing"
)

func TestAdoptEmbeddedTwoParents(t *testing.T) {
	child := &Data{Refcount: 1}
	p1 := &Data{}
	p2 := &Data{}

	Adopt(p1, child)
	if child.Refcount != 0 {
		t.Fatalf("expected refcount transferred to parent, got %d", child.Refcount)
	}
	if !IsEmbraced(child) {
		t.Fatalf("expected child to be embraced after Adopt")
	}

	child.Refcount = 1
	Adopt(p2, child)
	if child.usingList {
		t.Fatalf("two distinct parents should still fit in the embedded slots")
	}
}

func TestAdoptSameParentTwiceIncrementsRefcount(t *testing.T) {
	child := &Data{Refcount: 2}
	p1 := &Data{}

	Adopt(p1, child)
	Adopt(p1, child)

	if Abandon(p1, child) {
		t.Fatalf("expected first Abandon to report not-fully-abandoned (refcount 2)")
	}
	if !Abandon(p1, child) {
		t.Fatalf("expected second Abandon to fully remove the link")
	}
}

func TestAdoptPromotesToChunkedList(t *testing.T) {
	child := &Data{Refcount: 3}
	p1, p2, p3 := &Data{}, &Data{}, &Data{}

	Adopt(p1, child)
	Adopt(p2, child)
	Adopt(p3, child)

	if !child.usingList {
		t.Fatalf("expected third distinct parent to promote to chunked list")
	}
	if len(child.chunks) != 1 {
		t.Fatalf("expected exactly one chunk, got %d", len(child.chunks))
	}
}

func TestAbandonDemotesBackToEmbedded(t *testing.T) {
	child := &Data{Refcount: 3}
	p1, p2, p3 := &Data{}, &Data{}, &Data{}

	Adopt(p1, child)
	Adopt(p2, child)
	Adopt(p3, child)

	if !Abandon(p3, child) {
		t.Fatalf("expected Abandon(p3) to fully remove the link")
	}
	if child.usingList {
		t.Fatalf("expected demotion back to embedded slots with 2 parents left")
	}
	if !Abandon(p1, child) || !Abandon(p2, child) {
		t.Fatalf("expected remaining embedded parents to abandon cleanly")
	}
	if IsEmbraced(child) {
		t.Fatalf("expected child to have no parents left")
	}
}

func TestAbandonUnknownParentIsNoop(t *testing.T) {
	child := &Data{Refcount: 1}
	p1, stranger := &Data{}, &Data{}
	Adopt(p1, child)

	if !Abandon(stranger, child) {
		t.Fatalf("abandoning a parent never recorded should report true")
	}
}

func TestAbandonSelfParentIsNoop(t *testing.T) {
	child := &Data{Refcount: 1}
	if !Abandon(child, child) {
		t.Fatalf("self-abandon should always report true")
	}
}

func TestNeedBreakCyclicRefsDetectsTwoValueCycle(t *testing.T) {
	a := &Data{Refcount: 1}
	b := &Data{Refcount: 1}

	// a owns b, b owns a: a classic two-value cycle.
	Adopt(a, b)
	Adopt(b, a)

	if !NeedBreakCyclicRefs(a) {
		t.Fatalf("expected cycle to be detected")
	}
}

func TestNeedBreakCyclicRefsFalseForAcyclicChain(t *testing.T) {
	root := &Data{Refcount: 1}
	mid := &Data{Refcount: 1}
	leaf := &Data{Refcount: 0}

	Adopt(root, mid)
	Adopt(mid, leaf)

	if NeedBreakCyclicRefs(leaf) {
		t.Fatalf("expected no cycle in a linear ownership chain")
	}
}

func TestDumpEmbedded(t *testing.T) {
	child := &Data{Refcount: 1}
	p1 := &Data{}
	Adopt(p1, child)

	var sb strings.Builder
	Dump(&sb, child, 2)
	if !strings.Contains(sb.String(), "embedded") {
		t.Fatalf("expected embedded dump, got %q", sb.String())
	}
}

func TestDumpChunked(t *testing.T) {
	child := &Data{Refcount: 3}
	p1, p2, p3 := &Data{}, &Data{}, &Data{}
	Adopt(p1, child)
	Adopt(p2, child)
	Adopt(p3, child)

	var sb strings.Builder
	Dump(&sb, child, 0)
	if !strings.Contains(sb.String(), "chunk") {
		t.Fatalf("expected chunked dump, got %q", sb.String())
	}
}
