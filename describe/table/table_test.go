package table

import (
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/describe/describe"
)

func TestNewRow(t *testing.T) {
	row := NewRow(100)
	assert.Equal(t, "100", row.Input)
	assert.Equal(t, describe.TypeNumber, row.Type)
	assert.Equal(t, "You entered a number: 100", row.Description)

	row = NewRow(nil)
	assert.Equal(t, "nil", row.Input)
	assert.Equal(t, describe.TypeOther, row.Type)
	assert.Equal(t, describe.InvalidType, row.Description)
}

func TestFormatter(t *testing.T) {
	formatter := NewFormatter()

	t.Run("Empty", func(t *testing.T) {
		assert.Equal(t, "_No rows_", formatter.Format(nil))
	})

	t.Run("Samples", func(t *testing.T) {
		result := Render("World", 100, false)

		expected := [][]string{
			{"input", "type", "description"},
			{"---", "---", "---"},
			{"World", "string", "You entered a string: World"},
			{"100", "number", "You entered a number: 100"},
			{"false", "boolean", "You entered a boolean: false"},
			{"_3 rows_"},
		}
		assert.Equal(t, expected, markdownCells(t, result))
		assert.True(t, strings.HasSuffix(result, "\n_3 rows_\n"))
	})

	t.Run("Truncate", func(t *testing.T) {
		narrow := &Formatter{MaxWidth: 5, TruncateString: "..."}
		result := narrow.Format([]Row{NewRow("Hello, world")})

		assert.Contains(t, result, "Hello...")
		assert.NotContains(t, result, "Hello, world")
		assert.Contains(t, result, "_1 rows_")
	})

	t.Run("NoLimit", func(t *testing.T) {
		wide := &Formatter{}
		long := strings.Repeat("x", 80)
		result := wide.Format([]Row{NewRow(long)})
		assert.Contains(t, result, long)
	})
}

// markdownCells splits rendered output into trimmed cells per non-empty
// line. Separator cells, which must be all dashes, collapse to "---" so
// column padding does not matter.
func markdownCells(t *testing.T, s string) [][]string {
	t.Helper()

	var lines [][]string
	for _, line := range strings.Split(s, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}
		if !strings.HasPrefix(line, "|") {
			lines = append(lines, []string{line})
			continue
		}

		parts := strings.Split(strings.Trim(line, "|"), "|")
		cells := make([]string, len(parts))
		for i, part := range parts {
			cell := strings.TrimSpace(part)
			if cell != "" && strings.Trim(cell, "-") == "" {
				require.GreaterOrEqual(t, len(cell), 3, "separator cell %q", cell)
				cell = "---"
			}
			cells[i] = cell
		}
		lines = append(lines, cells)
	}
	return lines
}
