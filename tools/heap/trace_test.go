package main

import "testing"

func TestParsetrace(t *testing.T) {
	text := []byte(`
alloc p1 100 8
alloc p2 4096 64
realloc p1 200
free p1
free p2
`)
	ops, err := parsetrace(text)
	if err != nil {
		t.Fatalf("parsetrace: %v", err)
	}
	if x := len(ops); x != 5 {
		t.Fatalf("expected %v, got %v", 5, x)
	}
	ref := []traceop{
		{op: "alloc", name: "p1", size: 100, align: 8},
		{op: "alloc", name: "p2", size: 4096, align: 64},
		{op: "realloc", name: "p1", size: 200},
		{op: "free", name: "p1"},
		{op: "free", name: "p2"},
	}
	for i, op := range ops {
		if op != ref[i] {
			t.Errorf("op %v: expected %+v, got %+v", i, ref[i], op)
		}
	}
}

func TestParsetraceempty(t *testing.T) {
	ops, err := parsetrace([]byte("  \n"))
	if err != nil {
		t.Fatalf("parsetrace: %v", err)
	}
	if len(ops) != 0 {
		t.Errorf("expected no ops, got %v", ops)
	}
}

func TestParsetracegarbage(t *testing.T) {
	if _, err := parsetrace([]byte("alloc p1 100 8\nmunmap p1\n")); err == nil {
		t.Errorf("expected parse failure")
	}
}
