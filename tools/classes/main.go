package main

import "flag"
import "fmt"

import hm "github.com/dustin/go-humanize"

import "github.com/bnclabs/goheap/malloc"

var options struct {
	capacity int64
}

func argParse() {
	flag.Int64Var(&options.capacity, "capacity", 1024*1024*1024,
		"heap capacity, classes above it never get populated")
	flag.Parse()
}

func main() {
	argParse()
	tellclasses()
}

// tellclasses print the size-class table: the size range each class
// holds and the worst-case utilization when a block from the class
// bottom serves a request from the class top rounded down to an
// unsplittable remainder.
func tellclasses() {
	for class := 0; class < malloc.Nclasses; class++ {
		lo := malloc.Minblocksize << uint(class)
		hi := lo*2 - 1
		u := float64(lo) / float64(lo+malloc.Minblocksize-1)
		fmt.Printf("class %2v: [%10v, %10v]  worst-split util %5.3f\n",
			class, hm.Bytes(uint64(lo)), hm.Bytes(uint64(hi)), u)
		if lo > options.capacity {
			break
		}
	}
	fmt.Printf("%v classes, minimum block %v bytes\n",
		malloc.Nclasses, malloc.Minblocksize)
}
