package shell

import (
	"fmt"
	"slices"
	"strings"

	"github.com/jacksmith/todo/internal/cli"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
	"gopkg.in/yaml.v3"
)

type command struct {
	usage string
	help  string
	run   func(s *Shell, arg string) error
}

// commands is filled in init because several handlers refer back to it.
var commands map[string]command

func init() {
	commands = map[string]command{
		"add":    {usage: "<description>", help: "add a task", run: (*Shell).cmdAdd},
		"done":   {usage: "<id>", help: "mark a task completed", run: (*Shell).cmdDone},
		"reopen": {usage: "<id>", help: "mark a task not completed", run: (*Shell).cmdReopen},
		"toggle": {usage: "<id>", help: "flip a task's completion", run: (*Shell).cmdToggle},
		"edit":   {usage: "<id> [description]", help: "change a description ($EDITOR if omitted)", run: (*Shell).cmdEdit},
		"delete": {usage: "<id>", help: "delete a task", run: (*Shell).cmdDelete},
		"sort":   {usage: "[id|status|alpha]", help: "change or show the sort order", run: (*Shell).cmdSort},
		"show":   {help: "list completed tasks", run: (*Shell).cmdShow},
		"hide":   {help: "hide completed tasks", run: (*Shell).cmdHide},
		"list":   {help: "redraw the list", run: (*Shell).cmdList},
		"dump":   {help: "print the list as YAML", run: (*Shell).cmdDump},
		"help":   {help: "show this help", run: (*Shell).cmdHelp},
		"quit":   {help: "leave the shell", run: (*Shell).cmdQuit},
	}
}

// aliases are matched exactly, before prefix matching.
var aliases = map[string]string{
	"rm":   "delete",
	"ls":   "list",
	"exit": "quit",
	"?":    "help",
}

func commandNames() []string {
	names := make([]string, 0, len(commands))
	for name := range commands {
		names = append(names, name)
	}
	slices.Sort(names)
	return names
}

func requireID(name, arg string) error {
	if arg == "" || strings.ContainsAny(arg, " \t") {
		return &cli.UsageError{Command: name, Usage: commands[name].usage}
	}
	return nil
}

func (s *Shell) cmdAdd(arg string) error {
	if arg == "" {
		return &cli.UsageError{Command: "add", Usage: commands["add"].usage}
	}
	_, err := s.ctrl.AddTask(unquote(arg))
	return err
}

func (s *Shell) cmdDone(arg string) error {
	return s.withTask("done", arg, func(t model.Task) { s.ctrl.MarkCompleted(t) })
}

func (s *Shell) cmdReopen(arg string) error {
	return s.withTask("reopen", arg, func(t model.Task) { s.ctrl.MarkIncomplete(t) })
}

func (s *Shell) cmdToggle(arg string) error {
	return s.withTask("toggle", arg, func(t model.Task) { s.ctrl.ToggleCompleted(t) })
}

func (s *Shell) cmdDelete(arg string) error {
	return s.withTask("delete", arg, func(t model.Task) { s.ctrl.DeleteTask(t) })
}

func (s *Shell) withTask(name, arg string, fn func(model.Task)) error {
	if err := requireID(name, arg); err != nil {
		return err
	}
	task, err := s.lookup(arg)
	if err != nil {
		return err
	}
	fn(task)
	return nil
}

func (s *Shell) cmdEdit(arg string) error {
	idArg, text, _ := strings.Cut(arg, " ")
	if idArg == "" {
		return &cli.UsageError{Command: "edit", Usage: commands["edit"].usage}
	}
	task, err := s.lookup(idArg)
	if err != nil {
		return err
	}

	text = unquote(strings.TrimSpace(text))
	if text == "" {
		header := fmt.Sprintf("Editing task %s\nSave and close the editor to apply. Lines starting with # are ignored.", task.DisplayID())
		text, err = s.editText(header, task.Description)
		if err != nil {
			return err
		}
	}
	return s.ctrl.EditTask(task, text)
}

func (s *Shell) cmdSort(arg string) error {
	if arg == "" {
		fmt.Fprintf(s.out, "sorted %s (options: %s)\n", s.src.SortStrategy().Name(), strings.Join(order.Keys(), ", "))
		return nil
	}
	strategy, err := order.Lookup(arg)
	if err != nil {
		return err
	}
	s.ctrl.SetSortStrategy(strategy)
	return nil
}

func (s *Shell) cmdShow(string) error {
	s.showCompleted = true
	s.render()
	return nil
}

func (s *Shell) cmdHide(string) error {
	s.showCompleted = false
	s.render()
	return nil
}

func (s *Shell) cmdList(string) error {
	s.render()
	return nil
}

// dumpDoc is the YAML shape printed by dump.
type dumpDoc struct {
	Sort  string       `yaml:"sort"`
	Tasks []model.Task `yaml:"tasks"`
}

func (s *Shell) cmdDump(string) error {
	doc := dumpDoc{
		Sort:  order.Key(s.src.SortStrategy()),
		Tasks: s.src.Tasks(),
	}
	enc := yaml.NewEncoder(s.out)
	enc.SetIndent(2)
	if err := enc.Encode(&doc); err != nil {
		return fmt.Errorf("failed to encode tasks: %w", err)
	}
	return enc.Close()
}

func (s *Shell) cmdHelp(string) error {
	table := cli.NewTable()
	for _, name := range commandNames() {
		cmd := commands[name]
		table.AddRow(strings.TrimSpace(name+" "+cmd.usage), cmd.help)
	}
	table.Render(s.out)
	fmt.Fprintln(s.out, cli.Gray("Commands may be abbreviated to any unique prefix."))
	return nil
}

func (s *Shell) cmdQuit(string) error {
	s.quit = true
	return nil
}
