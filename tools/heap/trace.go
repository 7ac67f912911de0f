package main

import "fmt"
import "strconv"

import "github.com/prataprc/goparsec"

// Allocation traces are line oriented text:
//
//	alloc <name> <size> <align>
//	realloc <name> <size>
//	free <name>
//
// where <name> labels a live pointer within the trace.
type traceop struct {
	op    string
	name  string
	size  int64
	align int64
}

func makeparser() parsec.Parser {
	ident, num := parsec.Ident(), parsec.Int()

	opalloc := parsec.And(
		func(ns []parsec.ParsecNode) parsec.ParsecNode {
			return traceop{
				op:    "alloc",
				name:  terminal(ns[1]),
				size:  number(ns[2]),
				align: number(ns[3]),
			}
		},
		parsec.Atom("alloc", "ALLOC"), ident, num, num)

	oprealloc := parsec.And(
		func(ns []parsec.ParsecNode) parsec.ParsecNode {
			return traceop{
				op:   "realloc",
				name: terminal(ns[1]),
				size: number(ns[2]),
			}
		},
		parsec.Atom("realloc", "REALLOC"), ident, num)

	opfree := parsec.And(
		func(ns []parsec.ParsecNode) parsec.ParsecNode {
			return traceop{op: "free", name: terminal(ns[1])}
		},
		parsec.Atom("free", "FREE"), ident)

	op := parsec.OrdChoice(
		func(ns []parsec.ParsecNode) parsec.ParsecNode { return ns[0] },
		opalloc, oprealloc, opfree)
	return parsec.Kleene(nil, op)
}

func parsetrace(data []byte) ([]traceop, error) {
	parser := makeparser()
	node, scanner := parser(parsec.NewScanner(data))
	if _, scanner = scanner.SkipWS(); scanner.Endof() == false {
		cursor := scanner.GetCursor()
		return nil, fmt.Errorf("trace parse failure at offset %v", cursor)
	}
	ops := []traceop{}
	for _, n := range node.([]parsec.ParsecNode) {
		ops = append(ops, n.(traceop))
	}
	return ops, nil
}

func terminal(n parsec.ParsecNode) string {
	return n.(*parsec.Terminal).Value
}

func number(n parsec.ParsecNode) int64 {
	value, _ := strconv.ParseInt(n.(*parsec.Terminal).Value, 10, 64)
	return value
}
