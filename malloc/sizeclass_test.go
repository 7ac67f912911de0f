package malloc

import "testing"

func TestSizeclass(t *testing.T) {
	// class boundaries, power-of-two bucketing.
	testcases := [][2]int64{
		{32, 0}, {63, 0}, {64, 1}, {127, 1}, {128, 2},
		{255, 2}, {256, 3}, {1024, 5}, {4096, 7},
	}
	for _, tc := range testcases {
		if x := sizeclass(tc[0]); int64(x) != tc[1] {
			t.Errorf("sizeclass(%v): expected %v, got %v", tc[0], tc[1], x)
		}
	}
	// clamped at the top class.
	if x := sizeclass(Minblocksize << Nclasses); x != Nclasses-1 {
		t.Errorf("expected %v, got %v", Nclasses-1, x)
	}
	if x := sizeclass(1 << 62); x != Nclasses-1 {
		t.Errorf("expected %v, got %v", Nclasses-1, x)
	}
	// monotonic in size.
	prev := 0
	for size := Minblocksize; size < Minblocksize<<20; size += 1000 {
		if x := sizeclass(size); x < prev {
			t.Fatalf("sizeclass(%v) = %v below %v", size, x, prev)
		} else {
			prev = x
		}
	}
}

func TestClasssize(t *testing.T) {
	for class := 0; class < Nclasses; class++ {
		size := classsize(class)
		if x := sizeclass(size); x != class {
			t.Errorf("class %v: expected %v, got %v", class, class, x)
		}
		if x := sizeclass(size*2 - 1); x != class {
			t.Errorf("class %v: expected %v, got %v", class, class, x)
		}
	}
}
