package hdc

import "sync"

// countsPool recycles the per-component []int32 tally buffers used by
// majority bundling. A pool is bound to one dimension so a buffer obtained
// for one D is never reused for another. Buffers are zeroed on get.
type countsPool struct {
	pool sync.Pool // stores *[]int32
	dims int
}

func newCountsPool(dims int) *countsPool {
	return &countsPool{
		dims: dims,
		pool: sync.Pool{
			New: func() any {
				buf := make([]int32, dims)
				return &buf
			},
		},
	}
}

// get returns a zeroed []int32 slice of length dims.
func (p *countsPool) get() []int32 {
	bp := p.pool.Get().(*[]int32)
	buf := *bp
	for i := range buf {
		buf[i] = 0
	}
	return buf
}

// put returns a counts buffer to the pool.
func (p *countsPool) put(buf []int32) {
	p.pool.Put(&buf)
}
