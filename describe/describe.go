// Package describe classifies a value as text, numeric or boolean and turns
// it into a sentence naming the category and the value.
//
// Describe is pure and safe to call from any goroutine. Describer wraps it
// with annotation events for tracing.
package describe

import (
	"fmt"
	"time"

	"github.com/wbrown/describe/describe/annotations"
)

// InvalidType is returned for values outside the recognized categories.
const InvalidType = "Invalid type"

const (
	textPrefix   = "You entered a string: "
	numberPrefix = "You entered a number: "
	boolPrefix   = "You entered a boolean: "
)

// Describe returns the sentence for v. It never fails and never returns an
// empty string. Pointers to the variants, nil or not, describe as Other.
func Describe(v Value) string {
	switch v := v.(type) {
	case Text:
		return textPrefix + v.String()
	case Number:
		return numberPrefix + v.String()
	case Boolean:
		return boolPrefix + v.String()
	}
	return InvalidType
}

// DescribeValue classifies an arbitrary Go value with Of and describes it.
func DescribeValue(x interface{}) string {
	return Describe(Of(x))
}

// Describer describes values and reports each step to an annotation handler.
type Describer struct {
	collector *annotations.Collector
}

// NewDescriber creates a describer. A nil handler disables annotations.
func NewDescriber(handler annotations.Handler) *Describer {
	return &Describer{collector: annotations.NewCollector(handler)}
}

// Describe returns exactly what the package-level Describe returns.
func (d *Describer) Describe(v Value) string {
	return d.describe(v, Of(v))
}

// DescribeValue returns exactly what the package-level DescribeValue returns.
func (d *Describer) DescribeValue(x interface{}) string {
	return d.describe(x, Of(x))
}

func (d *Describer) describe(input interface{}, v Value) string {
	if !d.collector.Enabled() {
		return Describe(v)
	}

	start := time.Now()
	goType := goTypeName(input)
	d.collector.AddTiming(annotations.DescribeInvoked, start, map[string]interface{}{
		"input.go-type": goType,
	})

	typ := v.Type()
	text := v.String()
	d.collector.AddTiming(annotations.DescribeClassified, start, map[string]interface{}{
		"value.type": typ.String(),
		"value.text": text,
	})
	if typ == TypeOther {
		d.collector.AddTiming(annotations.DescribeFallback, start, map[string]interface{}{
			"input.go-type": goType,
		})
	}

	out := Describe(v)
	d.collector.AddTiming(annotations.DescribeComplete, start, map[string]interface{}{
		"value.type": typ.String(),
		"output":     out,
	})
	return out
}

// Events returns the annotation events recorded so far.
func (d *Describer) Events() []annotations.Event {
	return d.collector.Events()
}

// Reset discards recorded events.
func (d *Describer) Reset() {
	d.collector.Reset()
}

func goTypeName(x interface{}) string {
	switch v := x.(type) {
	case nil:
		return "nil"
	case Other:
		return v.GoType()
	}
	return fmt.Sprintf("%T", x)
}
