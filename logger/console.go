// Package logger provides the console and file logging for oneimage: a
// slog-based rich console with colorized status helpers, a rotating plain
// text file sink, and small terminal widgets (progress bar, table, spinner,
// timer, box).
package logger

import (
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"time"
)

type Options struct {
	// Level applies to the file sink and, unless Verbose raises console
	// output to debug, to the console as well.
	Level   slog.Level
	Verbose bool
	NoColor bool

	// FilePath enables the rotating file sink when non-empty.
	FilePath      string
	FileMaxSizeMB int
}

func DefaultOptions() *Options {
	return &Options{
		Level: slog.LevelInfo,
	}
}

// ParseLevel maps a level name to a slog.Level, defaulting to info.
func ParseLevel(s string) slog.Level {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "debug":
		return slog.LevelDebug
	case "warn", "warning":
		return slog.LevelWarn
	case "error":
		return slog.LevelError
	default:
		return slog.LevelInfo
	}
}

type Console struct {
	Logger    *slog.Logger
	Colorized bool

	closer io.Closer
}

func NewConsole(opts *Options) *Console {
	if opts == nil {
		opts = DefaultOptions()
	}

	consoleLevel := opts.Level
	if opts.Verbose && consoleLevel > slog.LevelDebug {
		consoleLevel = slog.LevelDebug
	}

	console := NewRichHandler(&HandlerOptions{
		Output:       os.Stdout,
		Level:        consoleLevel,
		EnableColors: !opts.NoColor,
	})

	handler := slog.Handler(console)
	var closer io.Closer
	if opts.FilePath != "" {
		file, c, err := newFileHandler(opts.FilePath, opts.FileMaxSizeMB, opts.Level)
		if err != nil {
			fmt.Fprintf(os.Stderr, "warning: file logging disabled: %v\n", err)
		} else {
			handler = newTeeHandler(console, file)
			closer = c
		}
	}

	return &Console{
		Logger:    slog.New(handler),
		Colorized: !opts.NoColor,
		closer:    closer,
	}
}

// Close flushes and closes the file sink, if any.
func (c *Console) Close() error {
	if c.closer != nil {
		return c.closer.Close()
	}
	return nil
}

func (c *Console) StartTimer(name string) *Timer {
	return &Timer{
		Name:      name,
		StartTime: time.Now(),
		Console:   c,
	}
}

func (c *Console) Debug(format string, args ...interface{}) {
	c.Logger.Debug(fmt.Sprintf(format, args...))
}

func (c *Console) Success(format string, args ...interface{}) {
	msg := "✓ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Green + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Info(format string, args ...interface{}) {
	msg := "ℹ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Blue + Bold + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Log(format string, args ...interface{}) {
	msg := fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = White + msg + Reset
	}
	c.Logger.Info(msg)
}

func (c *Console) Warn(format string, args ...interface{}) {
	msg := "⚠ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Yellow + Bold + msg + Reset
	}
	c.Logger.Warn(msg)
}

func (c *Console) Error(format string, args ...interface{}) {
	msg := "✖ " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = Red + Bold + msg + Reset
	}
	c.Logger.Error(msg)
}

func (c *Console) Fatal(format string, args ...interface{}) {
	msg := "💀 " + fmt.Sprintf(format, args...)
	if c.Colorized {
		msg = BgRed + White + Bold + msg + Reset
	}
	c.Logger.Error(msg)
	c.Close()
	os.Exit(1)
}

func (c *Console) StartSpinner(message string) *Spinner {
	s := &Spinner{
		Message: message,
		Frames:  []string{"⠋", "⠙", "⠹", "⠸", "⠼", "⠴", "⠦", "⠧", "⠇", "⠏"},
		Console: c,
		done:    make(chan bool),
	}

	s.Start()
	return s
}

func (c *Console) NewProgressBar(total int64, label string) *ProgressBar {
	return NewProgressBar(total, label)
}

func (c *Console) NewTable(headers []string) *Table {
	return NewTable(headers)
}

func (c *Console) Box(title string, content string) {
	lines := strings.Split(content, "\n")
	maxWidth := len(title)

	for _, line := range lines {
		if len(line) > maxWidth {
			maxWidth = len(line)
		}
	}

	maxWidth += 4

	fmt.Println("┌" + "─" + title + "─" + strings.Repeat("─", maxWidth-len(title)-2) + "┐")

	for _, line := range lines {
		fmt.Println("│ " + line + strings.Repeat(" ", maxWidth-len(line)) + " │")
	}

	fmt.Println("└" + strings.Repeat("─", maxWidth+2) + "┘")
}
