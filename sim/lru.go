package sim

// lruPolicy evicts the least-recently-used resident page. Every access,
// hit or fault, moves the page to the most-recently-used end; this is the
// defining difference from FIFO.
type lruPolicy struct {
	recency []Page // resident pages, most-recently-used last
}

func (p *lruPolicy) Name() string { return PolicyLRU }

func (p *lruPolicy) Touch(ref Page) {
	for i, q := range p.recency {
		if q == ref {
			p.recency = append(p.recency[:i], p.recency[i+1:]...)
			p.recency = append(p.recency, ref)
			return
		}
	}
}

func (p *lruPolicy) Admit(ref Page) {
	p.recency = append(p.recency, ref)
}

func (p *lruPolicy) Victim(_ *FrameSet, _ []Page) Page {
	victim := p.recency[0]
	p.recency = p.recency[1:]
	return victim
}
