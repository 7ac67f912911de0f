package lib

import "testing"

func TestAverageInt64(t *testing.T) {
	av := &AverageInt64{}
	for i := int64(1); i <= 100; i++ {
		av.Add(i)
	}
	if x := av.Samples(); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
	if x := av.Min(); x != 1 {
		t.Errorf("expected %v, got %v", 1, x)
	}
	if x := av.Max(); x != 100 {
		t.Errorf("expected %v, got %v", 100, x)
	}
	if x := av.Sum(); x != 5050 {
		t.Errorf("expected %v, got %v", 5050, x)
	}
	if x := av.Mean(); x != 50 {
		t.Errorf("expected %v, got %v", 50, x)
	}
	if x := av.Variance(); x < 883 || x > 884 {
		t.Errorf("unexpected variance %v", x)
	}
	if x := av.SD(); x < 29.7 || x > 29.8 {
		t.Errorf("unexpected stddev %v", x)
	}
}

func TestAverageInt64Empty(t *testing.T) {
	av := &AverageInt64{}
	if x := av.Mean(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	if x := av.Variance(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
	if x := av.SD(); x != 0 {
		t.Errorf("expected %v, got %v", 0, x)
	}
}
