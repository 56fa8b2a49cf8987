package style

import (
	"fmt"
	"strings"

	"github.com/arthur-debert/dokv/pkg/errors"
	"github.com/arthur-debert/dokv/pkg/types"
	"github.com/pterm/pterm"
)

// Renderer turns command results into display strings. An empty string
// means there is nothing to show.
type Renderer interface {
	RenderEntries(entries []types.Entry) string
	RenderGet(res *types.GetResult) string
	RenderSet(res *types.SetResult) string
	RenderDelete(res *types.DeleteResult) string
	RenderError(err error) string
}

// TerminalRenderer implements Renderer with rich terminal output
type TerminalRenderer struct{}

// NewTerminalRenderer creates a new terminal renderer
func NewTerminalRenderer() *TerminalRenderer {
	return &TerminalRenderer{}
}

func (r *TerminalRenderer) entry(k, v string) string {
	return KeyStyle.Render(k) + MutedStyle.Render(":") + " " + ValueStyle.Render(v)
}

func (r *TerminalRenderer) notFound(k string) string {
	return fmt.Sprintf("%s key %s not found", WarningIndicator, KeyStyle.Render(k))
}

// RenderEntries renders one styled line per entry
func (r *TerminalRenderer) RenderEntries(entries []types.Entry) string {
	if len(entries) == 0 {
		return MutedStyle.Render("No entries")
	}
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = r.entry(e.Key, e.Value)
	}
	return strings.Join(lines, "\n")
}

// RenderGet renders a lookup
func (r *TerminalRenderer) RenderGet(res *types.GetResult) string {
	if !res.Found {
		return r.notFound(res.Key)
	}
	return r.entry(res.Key, res.Value)
}

// RenderSet renders written pairs and where they were saved
func (r *TerminalRenderer) RenderSet(res *types.SetResult) string {
	if len(res.Written) == 0 {
		return MutedStyle.Render("Nothing written")
	}
	replaced := make(map[string]bool, len(res.Replaced))
	for _, k := range res.Replaced {
		replaced[k] = true
	}

	var b strings.Builder
	for _, e := range res.Written {
		b.WriteString(SuccessIndicator + " " + r.entry(e.Key, e.Value))
		if replaced[e.Key] {
			b.WriteString(" " + MutedStyle.Render("(replaced)"))
		}
		b.WriteString("\n")
	}
	if res.Synced {
		b.WriteString(Indent(MutedStyle.Render("saved to ")+PathStyle.Render(res.Path), 1))
	}
	return strings.TrimRight(b.String(), "\n")
}

// RenderDelete renders removed and missing keys
func (r *TerminalRenderer) RenderDelete(res *types.DeleteResult) string {
	var lines []string
	for _, k := range res.Removed {
		lines = append(lines, fmt.Sprintf("%s removed %s", SuccessIndicator, KeyStyle.Render(k)))
	}
	for _, k := range res.Missing {
		lines = append(lines, r.notFound(k))
	}
	if res.Synced {
		lines = append(lines, Indent(MutedStyle.Render("saved to ")+PathStyle.Render(res.Path), 1))
	}
	return strings.Join(lines, "\n")
}

// RenderError renders an error message
func (r *TerminalRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	prefix := pterm.Error.Prefix.Style.Sprint(" " + pterm.Error.Prefix.Text + " ")
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		return fmt.Sprintf("%s %s %s", prefix, MutedStyle.Render("["+string(code)+"]"),
			pterm.Error.MessageStyle.Sprint(errorMessage(err)))
	}
	return fmt.Sprintf("%s %s", prefix, pterm.Error.MessageStyle.Sprint(err.Error()))
}

// errorMessage strips the "[CODE] " prefix the error type adds
func errorMessage(err error) string {
	msg := err.Error()
	if code := errors.GetErrorCode(err); code != errors.ErrUnknown {
		msg = strings.TrimPrefix(msg, "["+string(code)+"] ")
	}
	return msg
}

// PlainRenderer implements Renderer with plain text output (no styling).
// Lines are "key: value"; missing keys read `key "k" not found`.
type PlainRenderer struct{}

// NewPlainRenderer creates a new plain text renderer
func NewPlainRenderer() *PlainRenderer {
	return &PlainRenderer{}
}

func (r *PlainRenderer) notFound(k string) string {
	return fmt.Sprintf("key %q not found", k)
}

// RenderEntries renders "key: value" lines
func (r *PlainRenderer) RenderEntries(entries []types.Entry) string {
	lines := make([]string, len(entries))
	for i, e := range entries {
		lines[i] = e.Key + ": " + e.Value
	}
	return strings.Join(lines, "\n")
}

// RenderGet renders a lookup
func (r *PlainRenderer) RenderGet(res *types.GetResult) string {
	if !res.Found {
		return r.notFound(res.Key)
	}
	return res.Key + ": " + res.Value
}

// RenderSet is silent
func (r *PlainRenderer) RenderSet(*types.SetResult) string {
	return ""
}

// RenderDelete reports only keys that were not present
func (r *PlainRenderer) RenderDelete(res *types.DeleteResult) string {
	lines := make([]string, len(res.Missing))
	for i, k := range res.Missing {
		lines[i] = r.notFound(k)
	}
	return strings.Join(lines, "\n")
}

// RenderError renders a plain error message
func (r *PlainRenderer) RenderError(err error) string {
	if err == nil {
		return ""
	}
	return fmt.Sprintf("Error: %s", errorMessage(err))
}
