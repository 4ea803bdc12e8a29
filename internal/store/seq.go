package store

// idSequence hands out strictly increasing record ids starting at 1. It is
// not self-locking; callers increment it under the store mutex.
type idSequence struct {
	last int64
}

func (s *idSequence) next() int64 {
	s.last++
	return s.last
}
