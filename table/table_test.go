package table

import (
	"fmt"
	"io"
	"strings"

	"github.com/lazharichir/blackjack/cards"
)

// scriptedPrompter replays ints and errors, then reports io.EOF
type scriptedPrompter struct {
	inputs []any
	calls  int
}

func script(inputs ...any) *scriptedPrompter {
	return &scriptedPrompter{inputs: inputs}
}

func (p *scriptedPrompter) NextInt() (int, error) {
	p.calls++
	if len(p.inputs) == 0 {
		return 0, io.EOF
	}
	next := p.inputs[0]
	p.inputs = p.inputs[1:]

	switch v := next.(type) {
	case int:
		return v, nil
	case error:
		return 0, v
	default:
		panic(fmt.Sprintf("unsupported scripted input %T", next))
	}
}

var errGarbage = fmt.Errorf("%w: %q", ErrInvalidInput, "abc")

// recordingView keeps every rendered line prefixed with its level
type recordingView struct {
	lines []string
}

func (v *recordingView) Info(msg string)    { v.lines = append(v.lines, "info: "+msg) }
func (v *recordingView) Success(msg string) { v.lines = append(v.lines, "success: "+msg) }
func (v *recordingView) Warning(msg string) { v.lines = append(v.lines, "warning: "+msg) }
func (v *recordingView) Error(msg string)   { v.lines = append(v.lines, "error: "+msg) }
func (v *recordingView) Prompt(msg string)  { v.lines = append(v.lines, "prompt: "+msg) }

func (v *recordingView) contains(line string) bool {
	for _, l := range v.lines {
		if l == line {
			return true
		}
	}
	return false
}

func (v *recordingView) count(prefix string) int {
	n := 0
	for _, l := range v.lines {
		if strings.HasPrefix(l, prefix) {
			n++
		}
	}
	return n
}

// stacked builds a shoe dealing the shorthands in order
func stacked(shorthands ...string) *cards.Shoe {
	return cards.NewStackedShoe(nil, cards.MustCards(shorthands...)...)
}
