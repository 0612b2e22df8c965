package synth

import "strconv"

// scratchArena is a reusable byte buffer for intra-batch string assembly.
// Resetting it at the start of each batch bulk-frees the previous batch's
// temporaries without returning memory to the runtime.
type scratchArena struct {
	buf []byte
}

func newScratchArena(capacity int) *scratchArena {
	return &scratchArena{buf: make([]byte, 0, capacity)}
}

// reset retains capacity but discards contents.
func (a *scratchArena) reset() {
	a.buf = a.buf[:0]
}

// label assembles "<dept> VLAN <id>" in the arena, avoiding the per-call
// allocations of fmt.Sprintf. The returned string is an independent copy.
func (a *scratchArena) label(dept string, id int) string {
	from := len(a.buf)
	a.buf = append(a.buf, dept...)
	a.buf = append(a.buf, " VLAN "...)
	a.buf = strconv.AppendInt(a.buf, int64(id), 10)
	return string(a.buf[from:])
}

func (a *scratchArena) size() int {
	return cap(a.buf)
}
