package lib

import "testing"

func TestBit32Ones(t *testing.T) {
	if x := Bit32(0x55555555).Ones(); x != 16 {
		t.Errorf("expected %v, got %v", 16, x)
	}
	if x := Bit32(0x55555555).Zeros(); x != 16 {
		t.Errorf("expected %v, got %v", 16, x)
	}
	if x := Bit32(0).Ones(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	if x := Bit32(0xffffffff).Ones(); x != 32 {
		t.Errorf("expected %v, got %v", 32, x)
	}
}

func TestBit32Ffs(t *testing.T) {
	if x := Bit32(0).Ffs(); x != -1 {
		t.Errorf("expected %v, got %v", -1, x)
	}
	if x := Bit32(1).Ffs(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	if x := Bit32(0x80000000).Ffs(); x != 31 {
		t.Errorf("expected %v, got %v", 31, x)
	}
	if x := Bit32(0x00fff000).Ffs(); x != 12 {
		t.Errorf("expected %v, got %v", 12, x)
	}
	for i := uint(0); i < 32; i++ {
		if x := Bit32(1 << i).Ffs(); x != int8(i) {
			t.Errorf("bit %v: expected %v, got %v", i, i, x)
		}
	}
}

func TestBit32Fls(t *testing.T) {
	if x := Bit32(0).Fls(); x != -1 {
		t.Errorf("expected %v, got %v", -1, x)
	}
	if x := Bit32(1).Fls(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	if x := Bit32(0x00fff000).Fls(); x != 23 {
		t.Errorf("expected %v, got %v", 23, x)
	}
	for i := uint(0); i < 32; i++ {
		if x := Bit32(1 << i).Fls(); x != int8(i) {
			t.Errorf("bit %v: expected %v, got %v", i, i, x)
		}
	}
}
