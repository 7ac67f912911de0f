package main

import "flag"
import "fmt"
import "math/rand"
import "os"
import "strconv"
import "strings"
import "time"

import "github.com/cloudfoundry/gosigar"
import hm "github.com/dustin/go-humanize"
import s "github.com/prataprc/gosettings"

import "github.com/bnclabs/goheap/lib"
import "github.com/bnclabs/goheap/malloc"

var options struct {
	capacity int64
	reserved int64
	n        int
	seed     int
	sizes    [2]int // min,max payload size for random workload
	validate int
	trace    string
	mmap     bool
}

func argParse() {
	var sizes string

	seed := time.Now().UTC().Second()
	flag.Int64Var(&options.capacity, "capacity", 0,
		"heap capacity in bytes, 0 derives from free system RAM")
	flag.Int64Var(&options.reserved, "reserved", 0,
		"bytes reserved at top of RAM, outside the heap")
	flag.IntVar(&options.n, "n", 1000000,
		"number of operations for the random workload")
	flag.IntVar(&options.seed, "seed", seed,
		"seed value for the random workload")
	flag.StringVar(&sizes, "sizes", "",
		"minsize,maxsize - allocation payloads in [minsize,maxsize)")
	flag.IntVar(&options.validate, "validate", 10000,
		"full heap validation every `validate` operations, 0 disables")
	flag.StringVar(&options.trace, "trace", "",
		"replay an allocation trace file instead of a random workload")
	flag.BoolVar(&options.mmap, "mmap", false,
		"read the trace file through mmap")
	flag.Parse()

	options.sizes = [2]int{1, 4096}
	if sizes != "" {
		for i, field := range strings.Split(sizes, ",") {
			ln, _ := strconv.Atoi(field)
			options.sizes[i] = ln
		}
	}
	if options.capacity == 0 {
		_, _, free := getsysmem()
		options.capacity = int64(free / 8)
		if options.capacity > 1024*1024*1024 {
			options.capacity = 1024 * 1024 * 1024
		}
	}
}

func main() {
	argParse()

	ram := make([]byte, options.capacity)
	setts := malloc.Defaultsettings().Mixin(s.Settings{
		"reserved": options.reserved,
	})
	h, err := malloc.Bootheap(ram, 0, setts)
	if err != nil {
		fmt.Printf("bootheap: %v\n", err)
		os.Exit(1)
	}
	start, end := h.Bounds()
	fmt.Printf(
		"heap of %v over [%v,%v), seed: %v\n",
		hm.Bytes(uint64(end-start)), start, end, options.seed)

	if options.trace != "" {
		doReplay(h, options.trace, options.mmap)
		return
	}
	doStress(h)
}

func doStress(h *malloc.Heap) {
	rnd := rand.New(rand.NewSource(int64(options.seed)))
	minsize, maxsize := options.sizes[0], options.sizes[1]
	sizestats, live := &lib.AverageInt64{}, []int64{}
	failures := 0

	begin := time.Now()
	for i := 0; i < options.n; i++ {
		if len(live) > 0 && rnd.Intn(100) < 40 {
			n := rnd.Intn(len(live))
			h.Free(live[n])
			live = append(live[:n], live[n+1:]...)
		} else {
			size := int64(rnd.Intn(maxsize-minsize) + minsize)
			if ptr, ok := h.Alloc(size, 8); ok {
				sizestats.Add(size)
				live = append(live, ptr)
			} else {
				failures++
			}
		}
		if options.validate > 0 && i%options.validate == 0 {
			h.Validate()
		}
	}
	for _, ptr := range live {
		h.Free(ptr)
	}
	h.Validate()
	elapsed := time.Since(begin)

	rate := float64(options.n) / elapsed.Seconds()
	fmt.Printf("%v ops in %v (%.0f ops/sec), %v failed allocs\n",
		options.n, elapsed.Round(time.Millisecond), rate, failures)
	fmt.Printf("payload sizes: mean %v, min %v, max %v, sd %.1f\n",
		sizestats.Mean(), sizestats.Min(), sizestats.Max(), sizestats.SD())
	printreport(h)
}

func printreport(h *malloc.Heap) {
	_, allocated, available, _ := h.Info()
	allocs, frees, splits, merges := h.Opcounts()
	fmt.Printf("allocated: %v, available: %v\n",
		hm.Bytes(uint64(allocated)), hm.Bytes(uint64(available)))
	fmt.Printf("allocs: %v, frees: %v, splits: %v, merges: %v\n",
		allocs, frees, splits, merges)
	sizes, shares := h.Utilization()
	for i, size := range sizes {
		fmt.Printf("  class %10v : %5.1f%% of free memory\n",
			hm.Bytes(uint64(size)), shares[i])
	}
}

func getsysmem() (total, used, free uint64) {
	mem := sigar.Mem{}
	mem.Get()
	return mem.Total, mem.Used, mem.Free
}
