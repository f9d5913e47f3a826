package hlog

import (
	"context"
	"image/color"
	"io"
	"log/slog"
	"strings"
	"sync"

	"charm.land/lipgloss/v2"
)

var levelColors = map[slog.Level]color.Color{
	slog.LevelDebug: lipgloss.Color("#29C6E8"),
	slog.LevelInfo:  lipgloss.Color("#2C75FE"),
	slog.LevelWarn:  lipgloss.Color("#E7C229"),
	slog.LevelError: lipgloss.Color("#FF2A25"),
}

// Renderer styles the level of a record. The zero Renderer writes it plain.
type Renderer struct {
	lvlStyles map[slog.Level]lipgloss.Style
}

// NewRenderer colors levels, for output going to a terminal.
func NewRenderer() Renderer {
	lvlStyles := map[slog.Level]lipgloss.Style{}
	for lvl, c := range levelColors {
		lvlStyles[lvl] = lipgloss.NewStyle().Bold(true).Foreground(c)
	}

	return Renderer{lvlStyles: lvlStyles}
}

func (r Renderer) Level(lvl slog.Level) string {
	if style, ok := r.lvlStyles[lvl]; ok {
		return style.Render(lvl.String())
	}

	return lvl.String()
}

type Logger = *slog.Logger

func NewLogger(h slog.Handler) Logger {
	return slog.New(h)
}

// NewTextLogger writes one "LEVEL message key=value..." line per record.
func NewTextLogger(w io.Writer, leveler slog.Leveler) Logger {
	return NewRenderedTextLogger(w, leveler, Renderer{})
}

func NewRenderedTextLogger(w io.Writer, leveler slog.Leveler, renderer Renderer) Logger {
	return NewLogger(textHandler{
		w:        w,
		mu:       &sync.Mutex{},
		leveler:  leveler,
		renderer: renderer,
	})
}

type textHandler struct {
	attrs   []slog.Attr
	group   string
	leveler slog.Leveler
	w       io.Writer
	mu      *sync.Mutex

	renderer Renderer
}

func (t textHandler) Enabled(ctx context.Context, level slog.Level) bool {
	return level >= t.leveler.Level()
}

func (t textHandler) attrKey(k string) string {
	if t.group == "" {
		return k
	}
	return t.group + "." + k
}

func FormatRecord(r Renderer, record slog.Record, attrs ...slog.Attr) string {
	var sb strings.Builder
	sb.WriteString(r.Level(record.Level))
	sb.WriteString(" ")
	sb.WriteString(record.Message)

	for _, attr := range attrs {
		writeAttr(&sb, attr)
	}
	record.Attrs(func(attr slog.Attr) bool {
		writeAttr(&sb, attr)
		return true
	})

	return sb.String()
}

func writeAttr(sb *strings.Builder, attr slog.Attr) {
	if attr.Equal(slog.Attr{}) {
		return
	}

	sb.WriteString(" ")
	sb.WriteString(attr.Key)
	sb.WriteString("=")
	sb.WriteString(attr.Value.Resolve().String())
}

func (t textHandler) Handle(ctx context.Context, record slog.Record) error {
	if t.group != "" {
		grouped := slog.NewRecord(record.Time, record.Level, record.Message, record.PC)
		record.Attrs(func(attr slog.Attr) bool {
			attr.Key = t.attrKey(attr.Key)
			grouped.AddAttrs(attr)
			return true
		})
		record = grouped
	}

	line := FormatRecord(t.renderer, record, t.attrs...) + "\n"

	t.mu.Lock()
	defer t.mu.Unlock()

	_, err := io.WriteString(t.w, line)

	return err
}

func (t textHandler) WithAttrs(attrs []slog.Attr) slog.Handler {
	out := make([]slog.Attr, 0, len(t.attrs)+len(attrs))
	out = append(out, t.attrs...)
	for _, attr := range attrs {
		attr.Key = t.attrKey(attr.Key)
		out = append(out, attr)
	}
	t.attrs = out

	return t
}

func (t textHandler) WithGroup(name string) slog.Handler {
	if name == "" {
		return t
	}
	t.group = t.attrKey(name)

	return t
}
