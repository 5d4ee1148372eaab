package logger

import (
	"context"
	"io"
	"log/slog"
	"os"
	"strings"

	"github.com/muesli/termenv"
	"go.trai.ch/jsl/internal/ui/output"
	"go.trai.ch/jsl/internal/ui/style"
)

// cycleIDKey is the attribute that ties a record to a request cycle.
const cycleIDKey = "cycle_id"

// shortCycleLen is how many characters of a cycle id the pretty output shows.
const shortCycleLen = 8

// PrettyHandler is a slog.Handler producing colored records tagged with their cycle.
type PrettyHandler struct {
	out   *termenv.Output
	level slog.Leveler
	attrs []slog.Attr
	group string
}

// NewPrettyHandler creates a new PrettyHandler writing to w.
func NewPrettyHandler(w io.Writer, opts *slog.HandlerOptions) *PrettyHandler {
	if w == nil {
		w = os.Stderr
	}

	var level slog.Leveler = slog.LevelInfo
	if opts != nil && opts.Level != nil {
		level = opts.Level
	}

	return &PrettyHandler{
		out:   output.New(w),
		level: level,
	}
}

// Enabled reports whether the handler handles records at the given level.
func (h *PrettyHandler) Enabled(_ context.Context, level slog.Level) bool {
	return level >= h.level.Level()
}

// Handle formats and writes the record. A cycle_id attribute is shown as a short
// "[id]" tag in front of the message; other attributes follow the first line.
//
//nolint:gocritic // slog.Handler interface requires slog.Record by value
func (h *PrettyHandler) Handle(_ context.Context, r slog.Record) error {
	var cycle string
	attrParts := make([]string, 0, len(h.attrs)+r.NumAttrs())
	collect := func(attr slog.Attr) bool {
		if attr.Key == cycleIDKey {
			cycle = attr.Value.String()
			return true
		}
		attrParts = append(attrParts, formatAttr(h.group, attr))
		return true
	}
	for _, attr := range h.attrs {
		collect(attr)
	}
	r.Attrs(collect)

	body := r.Message
	if cycle != "" {
		body = "[" + shortCycleID(cycle) + "] " + body
	}
	head, rest, multiline := strings.Cut(body, "\n")
	if len(attrParts) > 0 {
		head += " " + strings.Join(attrParts, " ")
	}
	if multiline {
		head += "\n" + rest
	}

	var color termenv.Color
	switch {
	case r.Level >= slog.LevelError:
		head = style.Cross + " " + head
		color = termenv.RGBColor(string(style.Red))
	case r.Level >= slog.LevelWarn:
		head = style.Warning + " " + head
		color = termenv.RGBColor(string(style.Yellow))
	default:
		color = termenv.RGBColor(string(style.Slate))
	}

	styled := h.out.String(head).Foreground(color)
	_, err := h.out.WriteString(styled.String() + "\n")

	return err
}

// WithAttrs returns a new Handler with the given attributes appended.
func (h *PrettyHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	newAttrs := make([]slog.Attr, 0, len(h.attrs)+len(attrs))
	newAttrs = append(newAttrs, h.attrs...)
	newAttrs = append(newAttrs, attrs...)

	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: newAttrs,
		group: h.group,
	}
}

// WithGroup returns a new Handler with the given group name.
func (h *PrettyHandler) WithGroup(name string) slog.Handler {
	return &PrettyHandler{
		out:   h.out,
		level: h.level,
		attrs: h.attrs,
		group: name,
	}
}

func formatAttr(group string, attr slog.Attr) string {
	key := attr.Key
	if group != "" {
		key = group + "." + key
	}
	return key + "=" + attr.Value.String()
}

func shortCycleID(id string) string {
	if len(id) > shortCycleLen {
		return id[:shortCycleLen]
	}
	return id
}
