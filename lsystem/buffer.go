package lsystem

// buffer is a growable symbol slice with an explicit write head, so a
// generation can be rewritten in place without reallocating per append.
type buffer struct {
	symbols []Symbol
	len     int
}

// bufferPool double-buffers two generations of a rewrite: the previous
// iteration is read from one buffer while the next is written into the
// other, then the roles swap. Only the current generation is ever
// materialized; no history accumulates across iterations.
type bufferPool struct {
	active   *buffer
	inactive *buffer
	swapped  bool
}

func newBufferPool(capacity int) *bufferPool {
	if capacity < 1 {
		capacity = 1
	}
	return &bufferPool{
		active:   &buffer{symbols: make([]Symbol, capacity)},
		inactive: &buffer{symbols: make([]Symbol, capacity)},
	}
}

func (p *bufferPool) writer() *buffer {
	if p.swapped {
		return p.inactive
	}
	return p.active
}

func (p *bufferPool) reader() *buffer {
	if p.swapped {
		return p.active
	}
	return p.inactive
}

func (p *bufferPool) append(sym Symbol) {
	w := p.writer()
	if w.len >= len(w.symbols) {
		p.grow(w.len + 1)
	}
	w.symbols[w.len] = sym
	w.len++
}

func (p *bufferPool) appendSlice(syms []Symbol) {
	w := p.writer()
	if w.len+len(syms) > len(w.symbols) {
		p.grow(w.len + len(syms))
	}
	copy(w.symbols[w.len:], syms)
	w.len += len(syms)
}

// grow doubles both buffers until the writer fits at least need
// symbols, preserving the writer's contents.
func (p *bufferPool) grow(need int) {
	newCap := len(p.writer().symbols) * 2
	for newCap < need {
		newCap *= 2
	}

	w := p.writer()
	grown := make([]Symbol, newCap)
	copy(grown, w.symbols[:w.len])
	w.symbols = grown

	p.reader().symbols = make([]Symbol, newCap)
}

// swap makes the freshly written generation the readable one and
// resets the write head for the next generation.
func (p *bufferPool) swap() {
	p.swapped = !p.swapped
	p.writer().len = 0
}

// current returns the readable generation's symbols. The slice aliases
// the pool's storage and is only valid until the next swap.
func (p *bufferPool) current() []Symbol {
	r := p.reader()
	return r.symbols[:r.len]
}
