package clock

import (
	"sync"
	"time"
)

// TimeProvider источник текущего времени
type TimeProvider interface {
	Now() time.Time
}

// RealTimeProvider системное время
type RealTimeProvider struct{}

func (RealTimeProvider) Now() time.Time {
	return time.Now()
}

// Sequence выдаёт строго возрастающие метки времени в миллисекундах.
// Метка не меньше текущего времени и всегда больше предыдущей выданной.
type Sequence struct {
	mu   sync.Mutex
	last int64
	tp   TimeProvider
}

// NewSequence создает последовательность меток
func NewSequence(tp TimeProvider) *Sequence {
	if tp == nil {
		tp = RealTimeProvider{}
	}
	return &Sequence{tp: tp}
}

// Next резервирует n последовательных меток и возвращает первую из них:
// вызывающий использует base, base+1, ..., base+n-1
func (s *Sequence) Next(n int) int64 {
	if n < 1 {
		n = 1
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	base := s.tp.Now().UnixMilli()
	if base <= s.last {
		base = s.last + 1
	}
	s.last = base + int64(n) - 1

	return base
}
