// Package git wraps the handful of git invocations the picker needs.
package git

import (
	"context"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// Message joins the chosen glyph and the commit title.
func Message(glyph, title string) string {
	title = strings.TrimSpace(title)
	if title == "" {
		return glyph
	}
	return glyph + " " + title
}

// Run executes git in dir and returns trimmed combined output.
func Run(ctx context.Context, dir string, args ...string) (string, error) {
	cmd := exec.CommandContext(ctx, "git", gitArgs(dir, args...)...)
	out, err := cmd.CombinedOutput()
	return strings.TrimSpace(string(out)), err
}

// IsRepo reports whether dir is inside a git work tree.
func IsRepo(ctx context.Context, dir string) bool {
	out, err := Run(ctx, dir, "rev-parse", "--is-inside-work-tree")
	return err == nil && out == "true"
}

// Committer runs `git commit` with the terminal handed over to git so hooks
// and editors behave as they would from the shell.
type Committer struct {
	Dir    string
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// NewCommitter returns a committer wired to the process's standard streams.
func NewCommitter(dir string) *Committer {
	return &Committer{Dir: dir, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}
}

// Commit records a commit with message.
func (c *Committer) Commit(ctx context.Context, message string) error {
	if strings.TrimSpace(message) == "" {
		return fmt.Errorf("commit message is empty")
	}
	cmd := exec.CommandContext(ctx, "git", commitArgs(c.Dir, message)...)
	cmd.Stdin = c.Stdin
	cmd.Stdout = c.Stdout
	cmd.Stderr = c.Stderr
	if err := cmd.Run(); err != nil {
		return fmt.Errorf("git commit: %w", err)
	}
	return nil
}

func commitArgs(dir, message string) []string {
	return gitArgs(dir, "commit", "-m", message)
}

func gitArgs(dir string, extra ...string) []string {
	args := make([]string, 0, len(extra)+2)
	if trimmed := strings.TrimSpace(dir); trimmed != "" {
		args = append(args, "-C", trimmed)
	}
	args = append(args, extra...)
	return args
}
