package console

import (
	"fmt"
	"reflect"
	"testing"
)

func collect(r *Ring) []string {
	var out []string
	r.Each(func(line string) { out = append(out, line) })
	return out
}

func TestRingEmpty(t *testing.T) {
	r := NewRing(0)
	if r.Cap() != DefaultLines {
		t.Fatalf("Cap() = %d, want %d", r.Cap(), DefaultLines)
	}
	if got := collect(r); len(got) != 0 {
		t.Fatalf("Each() visited %v, want nothing", got)
	}
}

func TestRingOldestFirstAcrossWraps(t *testing.T) {
	r := NewRing(4)
	for i := 0; i < 11; i++ {
		r.Push(fmt.Sprintf("l%d", i))
	}

	want := []string{"l7", "l8", "l9", "l10"}
	if got := collect(r); !reflect.DeepEqual(got, want) {
		t.Fatalf("Each() = %v, want %v", got, want)
	}
	if r.Len() != 4 {
		t.Fatalf("Len() = %d, want 4", r.Len())
	}
	if r.Cursor() != 11%4 {
		t.Fatalf("Cursor() = %d, want %d", r.Cursor(), 11%4)
	}
}

func TestRingLenTracksWrites(t *testing.T) {
	r := NewRing(3)
	for i := 1; i <= 5; i++ {
		r.Push("x")
		want := i
		if want > 3 {
			want = 3
		}
		if r.Len() != want {
			t.Fatalf("after %d writes Len() = %d, want %d", i, r.Len(), want)
		}
		if got := len(collect(r)); got != want {
			t.Fatalf("after %d writes visible = %d, want %d", i, got, want)
		}
	}
}

func TestRingSkipsEmptyLines(t *testing.T) {
	r := NewRing(3)
	r.Push("a")
	r.Push("")
	r.Push("b")

	if got, want := collect(r), []string{"a", "b"}; !reflect.DeepEqual(got, want) {
		t.Fatalf("Each() = %v, want %v", got, want)
	}
	if r.Len() != 3 {
		t.Fatalf("Len() = %d, want 3", r.Len())
	}
}

func TestRingReset(t *testing.T) {
	r := NewRing(3)
	r.Push("a")
	r.Push("b")
	r.Reset()

	if r.Cursor() != 0 || r.Len() != 0 {
		t.Fatalf("after Reset cursor=%d len=%d, want 0 0", r.Cursor(), r.Len())
	}
	if got := collect(r); len(got) != 0 {
		t.Fatalf("Each() after Reset = %v, want nothing", got)
	}
}
