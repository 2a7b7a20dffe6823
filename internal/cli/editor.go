package cli

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"os/exec"
	"strings"
)

// ErrNoEditor is returned when neither VISUAL nor EDITOR is set.
var ErrNoEditor = errors.New("EDITOR not set. Set it or pass the new description on the command line")

// Editor runs an external editor on a temporary file.
type Editor struct {
	// Command is the editor command line, e.g. "vim" or "code --wait".
	Command string

	// The editor's standard streams. Nil streams are left unconnected.
	Stdin  io.Reader
	Stdout io.Writer
	Stderr io.Writer
}

// EditorFromEnv returns an Editor attached to the terminal, using $VISUAL
// if set and $EDITOR otherwise.
func EditorFromEnv() (*Editor, error) {
	command := os.Getenv("VISUAL")
	if command == "" {
		command = os.Getenv("EDITOR")
	}
	if strings.TrimSpace(command) == "" {
		return nil, ErrNoEditor
	}
	return &Editor{Command: command, Stdin: os.Stdin, Stdout: os.Stdout, Stderr: os.Stderr}, nil
}

// Edit writes content to a temporary file named with suffix (e.g. ".txt"),
// waits for the editor to exit and returns the saved content.
func (e *Editor) Edit(content []byte, suffix string) ([]byte, error) {
	tmp, err := os.CreateTemp("", "todo-*"+suffix)
	if err != nil {
		return nil, fmt.Errorf("failed to create temp file: %w", err)
	}
	path := tmp.Name()
	defer os.Remove(path)

	_, err = tmp.Write(content)
	if closeErr := tmp.Close(); err == nil {
		err = closeErr
	}
	if err != nil {
		return nil, fmt.Errorf("failed to write temp file: %w", err)
	}

	if err := e.run(path); err != nil {
		return nil, err
	}

	saved, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("failed to read edited file: %w", err)
	}
	return saved, nil
}

// EditText edits text below a "#" comment header. Comment lines are dropped
// from the result and surrounding whitespace is trimmed.
func (e *Editor) EditText(header, text string) (string, error) {
	var buf bytes.Buffer
	for _, line := range strings.Split(header, "\n") {
		fmt.Fprintf(&buf, "# %s\n", line)
	}
	buf.WriteString(text)
	buf.WriteByte('\n')

	saved, err := e.Edit(buf.Bytes(), ".txt")
	if err != nil {
		return "", err
	}
	return stripComments(saved), nil
}

func (e *Editor) run(path string) error {
	fields := strings.Fields(e.Command)
	if len(fields) == 0 {
		return errors.New("empty editor command")
	}

	cmd := exec.Command(fields[0], append(fields[1:], path)...)
	cmd.Stdin, cmd.Stdout, cmd.Stderr = e.Stdin, e.Stdout, e.Stderr

	if err := cmd.Run(); err != nil {
		var exitErr *exec.ExitError
		if errors.As(err, &exitErr) {
			return fmt.Errorf("editor exited with status %d", exitErr.ExitCode())
		}
		return fmt.Errorf("failed to run editor: %w", err)
	}
	return nil
}

// EditText opens text in the editor named by the environment.
// See Editor.EditText.
func EditText(header, text string) (string, error) {
	e, err := EditorFromEnv()
	if err != nil {
		return "", err
	}
	return e.EditText(header, text)
}

func stripComments(content []byte) string {
	var kept []string
	scanner := bufio.NewScanner(bytes.NewReader(content))
	for scanner.Scan() {
		if line := scanner.Text(); !strings.HasPrefix(line, "#") {
			kept = append(kept, line)
		}
	}
	return strings.TrimSpace(strings.Join(kept, "\n"))
}
