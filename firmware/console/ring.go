package console

// DefaultLines is the number of lines the console keeps.
const DefaultLines = 10

// Ring is a fixed-capacity circular log of lines.
//
// Writes overwrite the oldest slot once the ring is full; nothing signals the
// eviction. Slot i always holds the most recent write whose index is i mod N.
type Ring struct {
	slots  []string
	cursor int
	count  int
}

// NewRing returns an empty ring with n slots (DefaultLines if n <= 0).
func NewRing(n int) *Ring {
	if n <= 0 {
		n = DefaultLines
	}
	return &Ring{slots: make([]string, n)}
}

// Push stores s in the slot under the cursor and advances the cursor.
func (r *Ring) Push(s string) {
	r.slots[r.cursor] = s
	r.cursor = (r.cursor + 1) % len(r.slots)
	if r.count < len(r.slots) {
		r.count++
	}
}

// Each visits the non-empty slots from the oldest surviving line to the newest.
func (r *Ring) Each(fn func(line string)) {
	n := len(r.slots)
	for i := 0; i < n; i++ {
		line := r.slots[(r.cursor+i)%n]
		if line == "" {
			continue
		}
		fn(line)
	}
}

// Reset empties every slot and rewinds the cursor.
func (r *Ring) Reset() {
	for i := range r.slots {
		r.slots[i] = ""
	}
	r.cursor = 0
	r.count = 0
}

// Len is the number of writes currently retained, min(writes, Cap()).
func (r *Ring) Len() int { return r.count }

// Cap is the slot count.
func (r *Ring) Cap() int { return len(r.slots) }

// Cursor is the index of the next slot to overwrite.
func (r *Ring) Cursor() int { return r.cursor }
