package app

import (
	"context"
	"errors"
	"fmt"
	"io"
	"os"

	"github.com/atomicstack/gitmoji-picker/internal/catalog"
	"github.com/atomicstack/gitmoji-picker/internal/format/table"
	"github.com/atomicstack/gitmoji-picker/internal/git"
	"github.com/atomicstack/gitmoji-picker/internal/logging/events"
	"github.com/atomicstack/gitmoji-picker/internal/ui"
	tea "github.com/charmbracelet/bubbletea"
)

// Config describes user-provided application options.
type Config struct {
	WindowSize int
	Query      string
	Dir        string
	DryRun     bool
	List       bool
	AltScreen  bool
	ShowFooter bool
	Width      int
	// TermWidth seeds the row width until the program reports a size.
	TermWidth int
}

// ErrNotRepository is returned when commits are requested outside a git work
// tree.
var ErrNotRepository = errors.New("not a git repository")

// Committer records a commit with the given message.
type Committer interface {
	Commit(ctx context.Context, message string) error
}

// Picked is the finished state of a picker session.
type Picked interface {
	Result() (ui.Result, bool)
}

// Run bootstraps and executes the Bubble Tea program, then commits the pick.
func Run(cfg Config) error {
	c := catalog.Default()
	if cfg.List {
		return List(os.Stdout, c)
	}
	ctx := context.Background()
	if err := Preflight(ctx, cfg, git.IsRepo); err != nil {
		return err
	}
	model := ui.NewModel(c, ui.Options{
		WindowSize:   cfg.WindowSize,
		Query:        cfg.Query,
		Width:        cfg.Width,
		InitialWidth: cfg.TermWidth,
		ShowFooter:   cfg.ShowFooter,
	})
	var opts []tea.ProgramOption
	if cfg.AltScreen {
		opts = append(opts, tea.WithAltScreen())
	}
	final, err := tea.NewProgram(model, opts...).Run()
	if errors.Is(err, tea.ErrProgramKilled) {
		return nil
	}
	if err != nil {
		return fmt.Errorf("run picker: %w", err)
	}
	picked, ok := final.(*ui.Model)
	if !ok || picked == nil {
		return nil
	}
	return Finish(ctx, cfg, picked, os.Stdout, git.NewCommitter(cfg.Dir))
}

// Preflight rejects a run whose commit could never succeed, before the user
// has picked anything. Listing and dry runs never touch git.
func Preflight(ctx context.Context, cfg Config, isRepo func(ctx context.Context, dir string) bool) error {
	if cfg.List || cfg.DryRun {
		return nil
	}
	if isRepo(ctx, cfg.Dir) {
		return nil
	}
	dir := cfg.Dir
	if dir == "" {
		dir = "."
	}
	return fmt.Errorf("%w: %s", ErrNotRepository, dir)
}

// Finish acts on a completed session: nothing for a cancel, the message on
// out for a dry run, otherwise a commit through committer.
func Finish(ctx context.Context, cfg Config, picked Picked, out io.Writer, committer Committer) error {
	res, ok := picked.Result()
	if !ok {
		return nil
	}
	message := git.Message(res.Glyph, res.Title)
	if cfg.DryRun {
		events.Commit.DryRun(message)
		_, err := fmt.Fprintln(out, message)
		return err
	}
	events.Commit.Run(cfg.Dir, message)
	if err := committer.Commit(ctx, message); err != nil {
		events.Commit.Error(err)
		return err
	}
	return nil
}

// List writes the catalog as an aligned emoji/description table.
func List(w io.Writer, c *catalog.Catalog) error {
	items := c.Items()
	rows := make([][]string, 0, len(items))
	for _, item := range items {
		rows = append(rows, []string{item.Emoji, item.Description})
	}
	for _, line := range table.Format(rows, []table.Alignment{table.AlignLeft, table.AlignLeft}) {
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	events.App.List(len(items))
	return nil
}
