package console

import (
	"io"

	"github.com/pterm/pterm"
)

// View renders game output with pterm
type View struct {
	w io.Writer
}

// NewView creates a view writing to w
func NewView(w io.Writer) *View {
	return &View{w: w}
}

// Header prints the banner shown once at startup
func (v *View) Header(title string) {
	pterm.Fprintln(v.w, pterm.DefaultHeader.Sprint(title))
}

func (v *View) Info(msg string) {
	pterm.Fprintln(v.w, msg)
}

func (v *View) Success(msg string) {
	pterm.Fprintln(v.w, pterm.Success.Sprint(msg))
}

func (v *View) Warning(msg string) {
	pterm.Fprintln(v.w, pterm.Warning.Sprint(msg))
}

func (v *View) Error(msg string) {
	pterm.Fprintln(v.w, pterm.Error.Sprint(msg))
}

func (v *View) Prompt(msg string) {
	pterm.Fprint(v.w, pterm.LightCyan(msg))
}
