package app

import (
	"os"
	"sync"
)

// surface is the frame output handed to Bubble Tea. It embeds the *os.File so
// Bubble Tea still sees a terminal, and records the first failed write for the
// loop to pick up on its next poll.
type surface struct {
	*os.File

	mu  sync.Mutex
	err error
}

func newSurface(f *os.File) *surface {
	return &surface{File: f}
}

func (s *surface) Write(p []byte) (int, error) {
	n, err := s.File.Write(p)
	if err != nil {
		s.mu.Lock()
		if s.err == nil {
			s.err = err
		}
		s.mu.Unlock()
	}
	return n, err
}

// Err returns the first write failure, if any.
func (s *surface) Err() error {
	s.mu.Lock()
	defer s.mu.Unlock()
	return s.err
}
