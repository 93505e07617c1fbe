package logger

import "time"

// Timer measures and reports how long a named operation took.
type Timer struct {
	StartTime time.Time
	Name      string
	Console   *Console
}

func (t *Timer) End() time.Duration {
	duration := time.Since(t.StartTime)
	t.Console.Info("%s completed in %v", t.Name, duration)
	return duration
}

// Elapsed returns the running duration without logging.
func (t *Timer) Elapsed() time.Duration {
	return time.Since(t.StartTime)
}
