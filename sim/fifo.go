package sim

// fifoPolicy evicts in arrival order. FIFO order is insertion order, not
// access order: hits never reorder the queue.
type fifoPolicy struct {
	order []Page // resident pages, oldest arrival first
}

func (p *fifoPolicy) Name() string { return PolicyFIFO }

func (p *fifoPolicy) Touch(Page) {
	// nothing to do for FIFO
}

func (p *fifoPolicy) Admit(ref Page) {
	p.order = append(p.order, ref)
}

func (p *fifoPolicy) Victim(_ *FrameSet, _ []Page) Page {
	victim := p.order[0]
	p.order = p.order[1:]
	return victim
}
