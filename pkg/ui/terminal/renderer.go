// Package terminal provides rich terminal output with colors and styling
package terminal

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dokv/pkg/style"
	"github.com/arthur-debert/dokv/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer provides rich terminal output using lipgloss styles and pterm prefixes
type Renderer struct {
	output io.Writer
	styled *style.TerminalRenderer
}

// New creates a new terminal renderer
func New(w io.Writer) *Renderer {
	return &Renderer{
		output: w,
		styled: style.NewTerminalRenderer(),
	}
}

// RenderResult renders a command result with rich terminal formatting
func (r *Renderer) RenderResult(result interface{}) error {
	var s string
	switch v := result.(type) {
	case *types.ListResult:
		s = r.styled.RenderEntries(v.Entries)
	case *types.GetResult:
		s = r.styled.RenderGet(v)
	case *types.SetResult:
		s = r.styled.RenderSet(v)
	case *types.DeleteResult:
		s = r.styled.RenderDelete(v)
	case []byte:
		_, err := r.output.Write(v)
		return err
	default:
		s = fmt.Sprintf("%+v", result)
	}
	if s == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// RenderError renders an error with appropriate formatting
func (r *Renderer) RenderError(err error) error {
	_, werr := fmt.Fprintln(r.output, r.styled.RenderError(err))
	return werr
}

// RenderMessage renders a simple message with an info prefix
func (r *Renderer) RenderMessage(msg string) error {
	_, err := fmt.Fprintln(r.output, pterm.Info.Prefix.Style.Sprint(" "+pterm.Info.Prefix.Text+" ")+" "+msg)
	return err
}
