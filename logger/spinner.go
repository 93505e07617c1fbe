package logger

import (
	"fmt"
	"sync"
	"time"
)

// Spinner shows an animated status line while a single operation runs.
type Spinner struct {
	Frames  []string
	Message string
	Console *Console

	done chan bool
	once sync.Once
}

func (s *Spinner) Start() {
	go func() {
		i := 0
		for {
			select {
			case <-s.done:
				fmt.Print("\r\033[K")
				return
			default:
				frame := s.Frames[i%len(s.Frames)]
				fmt.Printf("\r%s %s ", frame, s.Message)
				i++
				time.Sleep(100 * time.Millisecond)
			}
		}
	}()
}

// Stop ends the animation and prints the outcome line. Safe to call more
// than once.
func (s *Spinner) Stop(success bool, message string) {
	s.once.Do(func() {
		s.done <- true

		if success {
			s.Console.Success("%s", message)
		} else {
			s.Console.Error("%s", message)
		}
	})
}
