package carousel

// ImageSequence hands out image references in a shuffled, repeating order.
type ImageSequence struct {
	images []string
	index  int
}

// NewImageSequence copies images and shuffles the copy once (Fisher-Yates).
func NewImageSequence(images []string, rng Source) *ImageSequence {
	shuffled := make([]string, len(images))
	copy(shuffled, images)
	for i := len(shuffled) - 1; i > 0; i-- {
		j := intn(rng, i+1)
		shuffled[i], shuffled[j] = shuffled[j], shuffled[i]
	}
	return &ImageSequence{images: shuffled}
}

// Next returns the image under the cursor and advances it.
func (s *ImageSequence) Next() string {
	if len(s.images) == 0 {
		return ""
	}
	src := s.images[s.index%len(s.images)]
	s.index++
	return src
}

// Rollback undoes one Next so the same image is offered again.
func (s *ImageSequence) Rollback() {
	if s.index > 0 {
		s.index--
	}
}

func (s *ImageSequence) Cursor() int { return s.index }

// Images returns the shuffled order.
func (s *ImageSequence) Images() []string {
	out := make([]string, len(s.images))
	copy(out, s.images)
	return out
}
