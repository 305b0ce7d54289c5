package ui

import (
	"fmt"
	"strings"

	"github.com/atomicstack/gitmoji-picker/internal/theme"
	"github.com/atomicstack/gitmoji-picker/internal/ui/state"
	"github.com/charmbracelet/lipgloss"
	"github.com/muesli/reflow/truncate"
)

const (
	pickPrompt      = "? Choose a gitmoji! "
	glyphPrompt     = "? Gitmoji: "
	titlePrompt     = "? Enter commit title: "
	donePrompt      = "? Commit title: "
	highlightMarker = "➜ "
	rowIndent       = "  "
	ellipsis        = "…"
)

// Renderer paints a picker frame. caret is the pre-rendered input cursor that
// follows the query text.
type Renderer interface {
	Paint(frame state.Frame, caret string) string
}

type listRenderer struct {
	styles *theme.Styles
	width  int
}

func newListRenderer(s *theme.Styles) *listRenderer {
	return &listRenderer{styles: s}
}

// SetWidth bounds each row; zero disables truncation.
func (r *listRenderer) SetWidth(width int) {
	r.width = width
}

func (r *listRenderer) Paint(frame state.Frame, caret string) string {
	lines := make([]string, 0, len(frame.Items)+len(frame.Suggestions)+3)
	lines = append(lines, render(r.styles.Prompt, pickPrompt)+render(r.styles.Query, frame.Query)+caret)

	if frame.Total == 0 {
		msg := "no gitmojis available"
		if frame.Query != "" {
			msg = fmt.Sprintf("no matches for %q", frame.Query)
		}
		lines = append(lines, rowIndent+render(r.styles.Info, r.fit(msg, len(rowIndent))))
		if len(frame.Suggestions) > 0 {
			lines = append(lines, rowIndent+render(r.styles.Info, "did you mean:"))
			for _, s := range frame.Suggestions {
				lines = append(lines, rowIndent+rowIndent+render(r.styles.Suggestion, r.fit(s, 2*len(rowIndent))))
			}
		}
		return strings.Join(lines, "\n")
	}

	for i, item := range frame.Items {
		if i == frame.Highlight {
			text := r.fit(item, lipgloss.Width(highlightMarker))
			lines = append(lines, render(r.styles.ItemIndicator, highlightMarker)+render(r.styles.SelectedItem, text))
			continue
		}
		lines = append(lines, rowIndent+render(r.styles.Item, r.fit(item, len(rowIndent))))
	}
	return strings.Join(lines, "\n")
}

func (r *listRenderer) fit(text string, reserved int) string {
	if r.width <= 0 {
		return text
	}
	avail := r.width - reserved
	if avail <= 0 {
		return ""
	}
	if lipgloss.Width(text) <= avail {
		return text
	}
	return truncate.StringWithTail(text, uint(avail), ellipsis)
}

func render(style *lipgloss.Style, text string) string {
	if style == nil || text == "" {
		return text
	}
	return style.Render(text)
}

// View renders the active stage.
func (m *Model) View() string {
	switch m.stage {
	case StageCancelled:
		return ""
	case StageTitle:
		return m.viewTitle()
	case StageDone:
		return m.viewDone()
	}
	var b strings.Builder
	b.WriteString(m.renderer.Paint(m.session.Frame(), m.caret.View()))
	if m.notice != "" {
		b.WriteString("\n")
		b.WriteString(render(styles.Notice, m.notice))
	}
	if m.showFooter {
		b.WriteString("\n")
		b.WriteString(render(styles.Footer, m.help.ShortHelpView(m.keys.ShortHelp())))
	}
	return b.String()
}

func (m *Model) viewTitle() string {
	glyph := ""
	if m.chosen != nil {
		glyph = m.chosen.Glyph
	}
	return render(styles.Prompt, glyphPrompt) + glyph + "\n" +
		render(styles.Prompt, titlePrompt) + m.title.View()
}

func (m *Model) viewDone() string {
	if m.chosen == nil {
		return ""
	}
	return render(styles.Prompt, glyphPrompt) + m.chosen.Glyph + "\n" +
		render(styles.Prompt, donePrompt) + render(styles.Title, m.chosen.Title) + "\n"
}
