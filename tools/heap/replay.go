package main

import "fmt"
import "io/ioutil"
import "os"
import "time"

import "golang.org/x/exp/mmap"

import "github.com/bnclabs/goheap/api"
import "github.com/bnclabs/goheap/malloc"

func doReplay(h *malloc.Heap, tracefile string, ismmap bool) {
	data, err := readtrace(tracefile, ismmap)
	if err != nil {
		fmt.Printf("readtrace: %v\n", err)
		os.Exit(1)
	}
	ops, err := parsetrace(data)
	if err != nil {
		fmt.Printf("parsetrace: %v\n", err)
		os.Exit(1)
	}
	fmt.Printf("replaying %v operations from %v\n", len(ops), tracefile)

	ptrs := map[string]int64{}
	begin := time.Now()
	for i, op := range ops {
		switch op.op {
		case "alloc":
			ptr, ok := h.Alloc(op.size, op.align)
			if ok == false {
				fmt.Printf("op %v: alloc %v failed\n", i, op.size)
				os.Exit(2)
			}
			ptrs[op.name] = ptr

		case "realloc":
			ptr, present := ptrs[op.name]
			if present == false {
				ptr = api.Nilptr
			}
			newptr, ok := h.Realloc(ptr, op.size)
			if ok == false {
				fmt.Printf("op %v: realloc %v failed\n", i, op.size)
				os.Exit(2)
			}
			ptrs[op.name] = newptr

		case "free":
			h.Free(ptrs[op.name])
			delete(ptrs, op.name)
		}
	}
	h.Validate()
	elapsed := time.Since(begin)

	fmt.Printf("replayed in %v, %v pointers live\n",
		elapsed.Round(time.Millisecond), len(ptrs))
	printreport(h)
}

// readtrace slurp the trace file, optionally through mmap so that
// multi-gigabyte traces do not double up in process memory.
func readtrace(filename string, ismmap bool) ([]byte, error) {
	if ismmap {
		r, err := mmap.Open(filename)
		if err != nil {
			return nil, err
		}
		defer r.Close()
		data := make([]byte, r.Len())
		if _, err := r.ReadAt(data, 0); err != nil {
			return nil, err
		}
		return data, nil
	}
	return ioutil.ReadFile(filename)
}
