// Package text provides plain text output without any styling
package text

import (
	"fmt"
	"io"

	"github.com/arthur-debert/dokv/pkg/style"
	"github.com/arthur-debert/dokv/pkg/types"
)

// Renderer provides plain text output without colors or styling
type Renderer struct {
	output io.Writer
	plain  *style.PlainRenderer
}

// New creates a new text renderer
func New(output io.Writer) *Renderer {
	return &Renderer{
		output: output,
		plain:  style.NewPlainRenderer(),
	}
}

// RenderResult renders a command result as plain text
func (r *Renderer) RenderResult(result interface{}) error {
	var s string
	switch v := result.(type) {
	case *types.ListResult:
		s = r.plain.RenderEntries(v.Entries)
	case *types.GetResult:
		s = r.plain.RenderGet(v)
	case *types.SetResult:
		s = r.plain.RenderSet(v)
	case *types.DeleteResult:
		s = r.plain.RenderDelete(v)
	case []byte:
		_, err := r.output.Write(v)
		return err
	default:
		s = fmt.Sprintf("%+v", result)
	}
	return r.line(s)
}

func (r *Renderer) line(s string) error {
	if s == "" {
		return nil
	}
	_, err := fmt.Fprintln(r.output, s)
	return err
}

// RenderError renders an error as plain text
func (r *Renderer) RenderError(err error) error {
	return r.line(r.plain.RenderError(err))
}

// RenderMessage renders a simple message
func (r *Renderer) RenderMessage(msg string) error {
	return r.line(msg)
}
