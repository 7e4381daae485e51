// Package table renders batches of descriptions as markdown tables.
package table

import (
	"fmt"
	"strings"

	"github.com/olekukonko/tablewriter"
	"github.com/olekukonko/tablewriter/renderer"
	"github.com/olekukonko/tablewriter/tw"
	"github.com/wbrown/describe/describe"
)

// Row is one described input.
type Row struct {
	Input       string
	Type        describe.ValueType
	Description string
}

// NewRow classifies and describes x.
func NewRow(x interface{}) Row {
	v := describe.Of(x)
	input := "nil"
	if x != nil {
		input = v.String()
	}
	return Row{
		Input:       input,
		Type:        v.Type(),
		Description: describe.Describe(v),
	}
}

// Formatter formats rows as a markdown table
type Formatter struct {
	// MaxWidth is the maximum width for a column
	MaxWidth int
	// TruncateString is the string to append when truncating
	TruncateString string
}

// NewFormatter creates a new formatter with default settings
func NewFormatter() *Formatter {
	return &Formatter{
		MaxWidth:       50,
		TruncateString: "...",
	}
}

// Format renders rows under the headers input, type and description,
// followed by the row count.
func (f *Formatter) Format(rows []Row) string {
	if len(rows) == 0 {
		return "_No rows_"
	}

	tableString := &strings.Builder{}

	alignment := []tw.Align{tw.AlignNone, tw.AlignNone, tw.AlignNone}
	table := tablewriter.NewTable(tableString,
		tablewriter.WithRenderer(renderer.NewMarkdown()),
		tablewriter.WithAlignment(alignment),
		tablewriter.WithHeaderAutoFormat(tw.Off),
	)

	table.Header([]string{"input", "type", "description"})
	for _, row := range rows {
		table.Append([]string{
			f.truncate(row.Input),
			row.Type.String(),
			f.truncate(row.Description),
		})
	}
	table.Render()

	tableString.WriteString(fmt.Sprintf("\n_%d rows_\n", len(rows)))
	return tableString.String()
}

func (f *Formatter) truncate(s string) string {
	if f.MaxWidth <= 0 {
		return s
	}
	runes := []rune(s)
	if len(runes) <= f.MaxWidth {
		return s
	}
	return string(runes[:f.MaxWidth]) + f.TruncateString
}

// Render describes each value and formats the results with default settings.
func Render(values ...interface{}) string {
	rows := make([]Row, len(values))
	for i, v := range values {
		rows[i] = NewRow(v)
	}
	return NewFormatter().Format(rows)
}
