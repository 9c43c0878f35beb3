package bitset

import "testing"

func TestSetBasics(t *testing.T) {
	s := New(130) // exercises the multi-word + tail-masking path

	s.Set(0)
	s.Set(63)
	s.Set(64)
	s.Set(129)

	for _, i := range []int{0, 63, 64, 129} {
		if !s.Has(i) {
			t.Errorf("Has(%d) = false, want true", i)
		}
	}
	if s.Has(1) {
		t.Errorf("Has(1) = true, want false")
	}
	if got, want := s.PopCount(), 4; got != want {
		t.Errorf("PopCount() = %d, want %d", got, want)
	}

	s.Clear(63)
	if s.Has(63) {
		t.Error("Clear(63) did not clear the bit")
	}
}

func TestSetAllMasksTail(t *testing.T) {
	s := New(70)
	s.SetAll()
	if got, want := s.PopCount(), 70; got != want {
		t.Errorf("PopCount() after SetAll = %d, want %d (tail bits leaked)", got, want)
	}
}

func TestSingleton(t *testing.T) {
	s := New(10)
	if _, ok := s.Singleton(); ok {
		t.Error("empty set reported as singleton")
	}
	s.Set(5)
	idx, ok := s.Singleton()
	if !ok || idx != 5 {
		t.Errorf("Singleton() = (%d, %v), want (5, true)", idx, ok)
	}
	s.Set(6)
	if _, ok := s.Singleton(); ok {
		t.Error("two-bit set reported as singleton")
	}
}

func TestAndOrInPlace(t *testing.T) {
	a := New(10)
	b := New(10)
	a.Set(1)
	a.Set(2)
	b.Set(2)
	b.Set(3)

	and := a.Clone()
	and.AndInPlace(b)
	if and.PopCount() != 1 || !and.Has(2) {
		t.Errorf("AndInPlace: got popcount %d, want {2}", and.PopCount())
	}

	or := a.Clone()
	or.OrInPlace(b)
	want := []int{1, 2, 3}
	got := or.Slice()
	if len(got) != len(want) {
		t.Fatalf("OrInPlace: got %v, want %v", got, want)
	}
	for i := range want {
		if got[i] != want[i] {
			t.Errorf("OrInPlace: got %v, want %v", got, want)
		}
	}
}
