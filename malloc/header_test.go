package malloc

import "testing"
import "math/rand"

func TestHeadercodec(t *testing.T) {
	for _, size := range []int64{32, 64, 4096, 1 << 40} {
		for _, free := range []bool{false, true} {
			for _, prevfree := range []bool{false, true} {
				word := encodeheader(size, free, prevfree)
				s, f, p := decodeheader(word)
				if s != size {
					t.Errorf("expected %v, got %v", size, s)
				} else if f != free {
					t.Errorf("expected %v, got %v", free, f)
				} else if p != prevfree {
					t.Errorf("expected %v, got %v", prevfree, p)
				}
			}
		}
	}
}

func TestHeadersetters(t *testing.T) {
	h := Newheap(make([]byte, 1024))
	h.sethead(0, encodeheader(512, false, false))

	h.setfree(0, true)
	if size, free, prevfree := decodeheader(h.head(0)); size != 512 {
		t.Errorf("expected %v, got %v", 512, size)
	} else if free == false || prevfree == true {
		t.Errorf("unexpected flags %v %v", free, prevfree)
	}

	h.setprevfree(0, true)
	h.setfree(0, false)
	if size, free, prevfree := decodeheader(h.head(0)); size != 512 {
		t.Errorf("expected %v, got %v", 512, size)
	} else if free == true || prevfree == false {
		t.Errorf("unexpected flags %v %v", free, prevfree)
	}

	h.setblocksize(0, 256)
	if size, free, prevfree := decodeheader(h.head(0)); size != 256 {
		t.Errorf("expected %v, got %v", 256, size)
	} else if free == true || prevfree == false {
		t.Errorf("unexpected flags %v %v", free, prevfree)
	}
}

func TestHeaderfooter(t *testing.T) {
	h := Newheap(make([]byte, 1024))
	for i := 0; i < 100; i++ {
		size := int64(rand.Intn(64)+4) * Alignment
		h.sethead(0, encodeheader(size, true, false))
		h.writefooter(0)
		if x := h.prevfooter(size); x != size {
			t.Errorf("expected %v, got %v", size, x)
		}
	}
}
