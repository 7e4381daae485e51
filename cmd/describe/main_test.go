package main

import (
	"bytes"
	"flag"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"github.com/wbrown/describe/describe/annotations"
)

func TestRun(t *testing.T) {
	t.Run("Lines", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(&buf, nil, false))

		expected := "You entered a string: World\n" +
			"You entered a number: 100\n" +
			"You entered a boolean: false\n"
		assert.Equal(t, expected, buf.String())
	})

	t.Run("Table", func(t *testing.T) {
		var buf bytes.Buffer
		require.NoError(t, run(&buf, nil, true))

		assert.Contains(t, buf.String(), "You entered a boolean: false")
		assert.Contains(t, buf.String(), "_3 rows_")
	})

	t.Run("Verbose", func(t *testing.T) {
		var events []annotations.Event
		handler := func(e annotations.Event) { events = append(events, e) }

		var buf bytes.Buffer
		require.NoError(t, run(&buf, handler, false))

		assert.Len(t, events, 9)
		assert.Equal(t, annotations.DescribeInvoked, events[0].Name)
		assert.Equal(t, annotations.DescribeComplete, events[8].Name)
		assert.Equal(t, "You entered a boolean: false", events[8].Data["output"])
	})
}

func newTestFlagSet(out *bytes.Buffer) *flag.FlagSet {
	fs := flag.NewFlagSet("describe", flag.ContinueOnError)
	fs.SetOutput(out)
	return fs
}

func TestParseFlags(t *testing.T) {
	t.Run("Defaults", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags(newTestFlagSet(&out), nil)
		require.NoError(t, err)
		assert.Equal(t, options{}, opts)
	})

	t.Run("Flags", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags(newTestFlagSet(&out), []string{"-verbose", "-table"})
		require.NoError(t, err)
		assert.True(t, opts.verbose)
		assert.True(t, opts.asTable)
		assert.False(t, opts.help)
	})

	t.Run("Help", func(t *testing.T) {
		var out bytes.Buffer
		opts, err := parseFlags(newTestFlagSet(&out), []string{"-h"})
		require.NoError(t, err)
		assert.True(t, opts.help)
	})

	t.Run("RejectsPositionalArgs", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parseFlags(newTestFlagSet(&out), []string{"World"})
		require.Error(t, err)
		assert.ErrorIs(t, err, errUnexpectedArgs)
		assert.Contains(t, err.Error(), "World")
	})

	t.Run("RejectsArgsAfterFlags", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parseFlags(newTestFlagSet(&out), []string{"-table", "100"})
		assert.ErrorIs(t, err, errUnexpectedArgs)
	})

	t.Run("UnknownFlag", func(t *testing.T) {
		var out bytes.Buffer
		_, err := parseFlags(newTestFlagSet(&out), []string{"-json"})
		require.Error(t, err)
		assert.NotErrorIs(t, err, errUnexpectedArgs)
		assert.Contains(t, out.String(), "Usage: describe [options]")
	})
}
