package carousel

// Registry is the ordered set of active cards. Insertion order is the z
// baseline; at most one card is elevated to TopZ.
type Registry struct {
	cards []*Card
	top   *Card
	max   int
}

func NewRegistry(capacity int) *Registry {
	if capacity < 1 {
		capacity = 1
	}
	return &Registry{max: capacity}
}

func (r *Registry) Len() int       { return len(r.cards) }
func (r *Registry) Max() int       { return r.max }
func (r *Registry) Full() bool     { return len(r.cards) >= r.max }
func (r *Registry) Top() *Card     { return r.top }
func (r *Registry) At(i int) *Card { return r.cards[i] }

// Oldest returns the card at index 0, or nil when empty.
func (r *Registry) Oldest() *Card {
	if len(r.cards) == 0 {
		return nil
	}
	return r.cards[0]
}

// OldestExcept returns the oldest card other than skip.
func (r *Registry) OldestExcept(skip *Card) *Card {
	for _, c := range r.cards {
		if c != skip {
			return c
		}
	}
	return nil
}

func (r *Registry) IndexOf(c *Card) int {
	for i, rc := range r.cards {
		if rc == c {
			return i
		}
	}
	return -1
}

func (r *Registry) Contains(c *Card) bool { return r.IndexOf(c) >= 0 }

// Cards returns a snapshot in registry order.
func (r *Registry) Cards() []*Card {
	out := make([]*Card, len(r.cards))
	copy(out, r.cards)
	return out
}

// Add appends c with the next baseline rank. When the registry is full the
// oldest card is removed first and returned so the caller can take it off
// stage.
func (r *Registry) Add(c *Card) (evicted *Card) {
	if c == nil || r.Contains(c) {
		return nil
	}
	if r.Full() {
		evicted = r.cards[0]
		r.Remove(evicted)
	}
	c.Z = BaseZ + len(r.cards)
	r.cards = append(r.cards, c)
	return evicted
}

// Remove drops c and re-ranks the remaining cards. It reports whether c was
// a member.
func (r *Registry) Remove(c *Card) bool {
	idx := r.IndexOf(c)
	if idx < 0 {
		return false
	}
	r.cards = append(r.cards[:idx], r.cards[idx+1:]...)
	if r.top == c {
		r.top = nil
	}
	r.restack()
	return true
}

// BringToTop elevates c above every baseline rank, returning the previous
// topmost card to its baseline. Non-members are ignored.
func (r *Registry) BringToTop(c *Card) bool {
	idx := r.IndexOf(c)
	if idx < 0 {
		return false
	}
	if r.top != nil && r.top != c {
		if prev := r.IndexOf(r.top); prev >= 0 {
			r.top.Z = BaseZ + prev
		}
	}
	c.Z = TopZ
	r.top = c
	return true
}

func (r *Registry) restack() {
	for i, c := range r.cards {
		if c != r.top {
			c.Z = BaseZ + i
		}
	}
}
