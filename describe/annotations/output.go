package annotations

import (
	"fmt"
	"io"
	"os"
	"sort"
	"strings"
	"time"

	"github.com/fatih/color"
	"github.com/mattn/go-isatty"
)

// OutputFormatter formats events for human-readable display.
type OutputFormatter struct {
	useColor bool
	writer   io.Writer
}

// NewOutputFormatter creates a formatter with color support detection.
func NewOutputFormatter(w io.Writer) *OutputFormatter {
	if w == nil {
		w = os.Stdout
	}

	useColor := false
	if f, ok := w.(*os.File); ok {
		useColor = isTerminal(f.Fd())
	}

	return &OutputFormatter{
		useColor: useColor,
		writer:   w,
	}
}

// Handle implements the Handler interface - prints events as they occur
func (f *OutputFormatter) Handle(event Event) {
	output := f.Format(event)
	if output != "" {
		fmt.Fprintln(f.writer, output)
	}
}

// Format converts an event to a human-readable string.
func (f *OutputFormatter) Format(event Event) string {
	latency := f.formatLatency(event.Latency)

	switch event.Name {
	case DescribeInvoked:
		return fmt.Sprintf("%s Describe: %s",
			latency,
			f.colorize(stringData(event, "input.go-type"), color.FgCyan))

	case DescribeClassified:
		return fmt.Sprintf("%s %s Classified as %s: %s",
			latency,
			f.colorize("===", color.FgYellow),
			f.colorizeType(stringData(event, "value.type")),
			stringData(event, "value.text"))

	case DescribeFallback:
		return fmt.Sprintf("%s %s Unrecognized type %s, using fallback",
			latency,
			f.colorize("⚠️", color.FgYellow),
			stringData(event, "input.go-type"))

	case DescribeComplete:
		return fmt.Sprintf("%s %s Described as %q",
			latency,
			f.colorize("===", color.FgGreen),
			stringData(event, "output"))
	}

	return fmt.Sprintf("%s %s %s", latency, event.Name, formatData(event.Data))
}

func (f *OutputFormatter) formatLatency(d time.Duration) string {
	// Use microseconds for sub-millisecond durations
	if d < time.Millisecond {
		s := fmt.Sprintf("[%dµs]", d.Microseconds())
		if !f.useColor {
			return s
		}
		return color.GreenString(s)
	}

	ms := float64(d.Microseconds()) / 1000.0
	s := fmt.Sprintf("[%.1fms]", ms)

	if !f.useColor {
		return s
	}

	switch {
	case ms < 50:
		return color.GreenString(s)
	case ms < 200:
		return color.YellowString(s)
	default:
		return color.RedString(s)
	}
}

func (f *OutputFormatter) colorizeType(name string) string {
	if !f.useColor {
		return name
	}

	switch name {
	case "string":
		return color.CyanString(name)
	case "number":
		return color.MagentaString(name)
	case "boolean":
		return color.BlueString(name)
	default:
		return color.RedString(name)
	}
}

func (f *OutputFormatter) colorize(text string, attrs ...color.Attribute) string {
	if !f.useColor {
		return text
	}
	return color.New(attrs...).Sprint(text)
}

func stringData(event Event, key string) string {
	v, ok := event.Data[key]
	if !ok {
		return "?"
	}
	return fmt.Sprint(v)
}

// formatData renders event data as sorted key=value pairs.
func formatData(data map[string]interface{}) string {
	keys := make([]string, 0, len(data))
	for k := range data {
		keys = append(keys, k)
	}
	sort.Strings(keys)

	parts := make([]string, len(keys))
	for i, k := range keys {
		parts[i] = fmt.Sprintf("%s=%v", k, data[k])
	}
	return strings.Join(parts, " ")
}

// ConsoleHandler creates a handler that prints formatted events to stdout.
func ConsoleHandler() Handler {
	return NewOutputFormatter(os.Stdout).Handle
}

func isTerminal(fd uintptr) bool {
	return isatty.IsTerminal(fd) || isatty.IsCygwinTerminal(fd)
}
