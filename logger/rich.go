package logger

import (
	"context"
	"fmt"
	"io"
	"log/slog"
	"os"
	"strings"
	"sync"
)

const (
	Reset   = "\033[0m"
	Bold    = "\033[1m"
	Red     = "\033[31m"
	Green   = "\033[32m"
	Yellow  = "\033[33m"
	Blue    = "\033[34m"
	Magenta = "\033[35m"
	Cyan    = "\033[36m"
	White   = "\033[37m"
	BgRed   = "\033[41m"
)

type HandlerOptions struct {
	Output       io.Writer
	TimeFormat   string
	Level        slog.Level
	EnableColors bool

	// ShowTime prefixes each record with a timestamp. Console output leaves
	// it off; the file sink turns it on.
	ShowTime bool
}

// RichHandler is a text slog.Handler: optional timestamp, padded level tag,
// message, and appended key=value attributes.
type RichHandler struct {
	opts  *HandlerOptions
	mu    sync.Mutex
	attrs []slog.Attr
}

func NewRichHandler(opts *HandlerOptions) *RichHandler {
	if opts == nil {
		opts = &HandlerOptions{}
	}
	if opts.Output == nil {
		opts.Output = os.Stdout
	}
	if opts.TimeFormat == "" {
		opts.TimeFormat = "2006-01-02 15:04:05"
	}

	return &RichHandler{opts: opts}
}

func (h *RichHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.opts.Level
}

func (h *RichHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	h2 := h.clone()
	h2.attrs = append(h2.attrs, attrs...)
	return h2
}

func (h *RichHandler) WithGroup(name string) slog.Handler {
	// Flat output, groups are not rendered.
	return h.clone()
}

func (h *RichHandler) clone() *RichHandler {
	h2 := &RichHandler{
		opts:  h.opts,
		attrs: make([]slog.Attr, len(h.attrs)),
	}
	copy(h2.attrs, h.attrs)
	return h2
}

func (h *RichHandler) Handle(_ context.Context, record slog.Record) error {
	h.mu.Lock()
	defer h.mu.Unlock()

	var b strings.Builder

	if h.opts.ShowTime {
		b.WriteString(record.Time.Format(h.opts.TimeFormat))
		b.WriteString(" | ")
	}

	level := fmt.Sprintf("%-5s", strings.ToUpper(record.Level.String()))
	if h.opts.EnableColors {
		b.WriteString(levelColor(record.Level))
		b.WriteString(Bold)
		b.WriteString(level)
		b.WriteString(Reset)
	} else {
		b.WriteString(level)
	}
	b.WriteString(" ")

	msg := record.Message
	if !h.opts.EnableColors {
		msg = stripANSI(msg)
	}
	b.WriteString(msg)

	appendAttr := func(a slog.Attr) bool {
		b.WriteString(" ")
		b.WriteString(a.Key)
		b.WriteString("=")
		b.WriteString(a.Value.String())
		return true
	}
	for _, a := range h.attrs {
		appendAttr(a)
	}
	record.Attrs(appendAttr)

	_, err := fmt.Fprintln(h.opts.Output, b.String())
	return err
}

func levelColor(level slog.Level) string {
	switch {
	case level >= slog.LevelError:
		return Red
	case level >= slog.LevelWarn:
		return Yellow
	case level >= slog.LevelInfo:
		return Green
	default:
		return Cyan
	}
}

// stripANSI removes escape sequences so the file sink stays plain text even
// though Console helpers pre-colorize their messages.
func stripANSI(s string) string {
	if !strings.Contains(s, "\033[") {
		return s
	}

	var b strings.Builder
	b.Grow(len(s))
	for i := 0; i < len(s); i++ {
		if s[i] == '\033' && i+1 < len(s) && s[i+1] == '[' {
			i += 2
			for i < len(s) && s[i] != 'm' {
				i++
			}
			continue
		}
		b.WriteByte(s[i])
	}
	return b.String()
}

func NewRichLogger(opts *HandlerOptions) *slog.Logger {
	return slog.New(NewRichHandler(opts))
}
