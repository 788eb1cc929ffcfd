package console

import (
	"bufio"
	"fmt"
	"io"
	"strconv"
	"strings"

	"github.com/lazharichir/blackjack/table"
)

// Prompter reads whitespace separated integers from a line oriented reader.
// Several integers on one line are consumed one call at a time; an invalid
// token discards the rest of its line.
type Prompter struct {
	r       *bufio.Reader
	pending []string
}

// NewPrompter creates a prompter reading from r
func NewPrompter(r io.Reader) *Prompter {
	return &Prompter{r: bufio.NewReader(r)}
}

// NextInt returns the next integer, an error wrapping table.ErrInvalidInput
// for a token that is not one, or io.EOF once the input is exhausted.
func (p *Prompter) NextInt() (int, error) {
	for len(p.pending) == 0 {
		line, err := p.r.ReadString('\n')
		p.pending = strings.Fields(line)
		if err != nil {
			if err == io.EOF && len(p.pending) > 0 {
				break
			}
			return 0, err
		}
	}

	token := p.pending[0]
	p.pending = p.pending[1:]

	n, err := strconv.Atoi(token)
	if err != nil {
		p.pending = nil
		return 0, fmt.Errorf("%w: %q", table.ErrInvalidInput, token)
	}
	return n, nil
}
