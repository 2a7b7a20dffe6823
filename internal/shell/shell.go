// Package shell is a line-oriented front-end: it reads commands, forwards
// them to the controller and redraws the task list whenever the store changes.
package shell

import (
	"bufio"
	"context"
	"fmt"
	"io"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/controller"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
)

// TaskSource is the read side of the store.
type TaskSource interface {
	Tasks() []model.Task
	Task(id int) (model.Task, bool)
	Counts() (pending, completed int)
	SortStrategy() order.Strategy
}

// Options configures a Shell.
type Options struct {
	// ShowCompleted lists completed tasks. It can be toggled with show/hide.
	ShowCompleted bool
	// Width is the output width in columns; 0 means cli.DefaultWidth.
	Width int
	// Prompt is written before each command is read. Empty for scripts.
	Prompt string
}

// Shell renders the task list to out and executes commands against a
// controller. It implements store.Observer.
type Shell struct {
	ctrl          *controller.Controller
	src           TaskSource
	out           io.Writer
	showCompleted bool
	width         int
	prompt        string
	quit          bool

	// editText opens a description in an editor; swapped out in tests.
	editText func(header, text string) (string, error)
}

// New creates a Shell. The caller registers it as a store observer.
func New(ctrl *controller.Controller, src TaskSource, out io.Writer, opts Options) *Shell {
	width := opts.Width
	if width <= 0 {
		width = cli.DefaultWidth
	}
	return &Shell{
		ctrl:          ctrl,
		src:           src,
		out:           out,
		showCompleted: opts.ShowCompleted,
		width:         width,
		prompt:        opts.Prompt,
		editText:      cli.EditText,
	}
}

// Update redraws the list after a store change.
func (s *Shell) Update() {
	s.render()
}

// ShowCompleted reports whether completed tasks are currently listed.
func (s *Shell) ShowCompleted() bool {
	return s.showCompleted
}

// Run draws the list, then reads and executes commands from in until input
// ends, a quit command is read, or ctx is cancelled. Command errors are
// printed and do not stop the loop.
func (s *Shell) Run(ctx context.Context, in io.Reader) error {
	s.render()

	scanner := bufio.NewScanner(in)
	for {
		if err := ctx.Err(); err != nil {
			return err
		}
		if s.prompt != "" {
			fmt.Fprint(s.out, s.prompt)
		}
		if !scanner.Scan() {
			break
		}
		if err := s.Exec(scanner.Text()); err != nil {
			fmt.Fprintln(s.out, cli.FormatError(err))
		}
		if s.quit {
			return nil
		}
	}
	if err := scanner.Err(); err != nil {
		return fmt.Errorf("failed to read input: %w", err)
	}
	return nil
}

// Exec runs a single command line. Blank lines and lines starting with "#"
// are ignored.
func (s *Shell) Exec(line string) error {
	line = strings.TrimSpace(line)
	if line == "" || strings.HasPrefix(line, "#") {
		return nil
	}

	word, rest, _ := strings.Cut(line, " ")
	rest = strings.TrimSpace(rest)

	name, ok := aliases[strings.ToLower(word)]
	if !ok {
		var err error
		name, err = cli.MatchCommand(word, commandNames())
		if err != nil {
			return fmt.Errorf("%w (type 'help' for a list of commands)", err)
		}
	}
	return commands[name].run(s, rest)
}

// lookup resolves a user-typed ID against the current list.
func (s *Shell) lookup(arg string) (model.Task, error) {
	id, err := model.ParseTaskID(arg)
	if err != nil {
		return model.Task{}, err
	}
	task, ok := s.src.Task(id)
	if !ok {
		return model.Task{}, &cli.NotFoundError{Type: "task", ID: model.FormatTaskID(id)}
	}
	return task, nil
}

// render writes the visible tasks followed by a summary line.
func (s *Shell) render() {
	tasks := s.src.Tasks()
	pending, completed := s.src.Counts()

	var visible []model.Task
	idWidth := 0
	for _, t := range tasks {
		if t.Completed && !s.showCompleted {
			continue
		}
		visible = append(visible, t)
		idWidth = max(idWidth, len(t.DisplayID()))
	}

	table := cli.NewTable()
	// two separators of two spaces plus the three-character checkbox
	table.SetMaxWidth(2, max(10, s.width-idWidth-7))
	for _, t := range visible {
		if t.Completed {
			table.AddRow(cli.Gray(t.DisplayID()), cli.Green("[x]"), cli.Gray(t.Description))
		} else {
			table.AddRow(t.DisplayID(), "[ ]", t.Description)
		}
	}

	if table.Len() == 0 {
		fmt.Fprintln(s.out, cli.Gray("No tasks."))
	} else {
		table.Render(s.out)
	}

	summary := fmt.Sprintf("%d pending · %d completed · sorted %s", pending, completed, s.src.SortStrategy().Name())
	if !s.showCompleted && completed > 0 {
		summary += " · completed hidden"
	}
	fmt.Fprintln(s.out, cli.Gray(summary))
}

// unquote strips one pair of matching surrounding quotes.
func unquote(s string) string {
	if len(s) >= 2 {
		first, last := s[0], s[len(s)-1]
		if (first == '"' || first == '\'') && first == last {
			return s[1 : len(s)-1]
		}
	}
	return s
}
