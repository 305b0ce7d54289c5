package events

import "github.com/atomicstack/gitmoji-picker/internal/logging"

type UITracer struct{}

type FilterTracer struct{}

type CommitTracer struct{}

var (
	UI     = UITracer{}
	Filter = FilterTracer{}
	Commit = CommitTracer{}
)

func (UITracer) Cursor(offset, cursor int) {
	logging.Trace("picker.cursor", map[string]interface{}{"offset": offset, "cursor": cursor})
}

func (UITracer) Confirm(index int, display string) {
	logging.Trace("picker.confirm", map[string]interface{}{"index": index, "item": display})
}

func (UITracer) Reject(query string) {
	logging.Trace("picker.reject", map[string]interface{}{"query": query})
}

func (UITracer) Back(glyph string) {
	logging.Trace("title.back", map[string]interface{}{"glyph": glyph})
}

func (UITracer) Title(glyph, title string) {
	logging.Trace("title.submit", map[string]interface{}{"glyph": glyph, "title": title})
}

func (FilterTracer) Append(query string, matches int) {
	logging.Trace("filter.append", map[string]interface{}{"filter": query, "matches": matches})
}

func (FilterTracer) Backspace(query string, matches int) {
	logging.Trace("filter.backspace", map[string]interface{}{"filter": query, "matches": matches})
}

func (CommitTracer) Run(dir, message string) {
	logging.Trace("commit.run", map[string]interface{}{"dir": dir, "message": message})
}

func (CommitTracer) DryRun(message string) {
	logging.Trace("commit.dry-run", map[string]interface{}{"message": message})
}

func (CommitTracer) Error(err error) {
	if err == nil {
		return
	}
	logging.Trace("commit.error", map[string]interface{}{"error": err.Error()})
}
