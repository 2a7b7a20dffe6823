package config

import (
	"errors"
	"fmt"

	"github.com/charmbracelet/huh"

	"github.com/jacksmith/todo/internal/order"
)

// Prompt asks for each setting interactively, starting from the values in c,
// and updates c in place. It returns false if the user cancelled.
func Prompt(c *Config) (bool, error) {
	if err := newForm(c).Run(); err != nil {
		if errors.Is(err, huh.ErrUserAborted) {
			return false, nil
		}
		return false, fmt.Errorf("form error: %w", err)
	}
	return true, nil
}

func newForm(c *Config) *huh.Form {
	sortOptions := make([]huh.Option[string], 0, len(order.All()))
	for _, s := range order.All() {
		sortOptions = append(sortOptions, huh.NewOption("Sort "+s.Name(), order.Key(s)))
	}

	return huh.NewForm(
		huh.NewGroup(
			huh.NewSelect[string]().
				Title("Initial sort order").
				Options(sortOptions...).
				Value(&c.Sort),
			huh.NewConfirm().
				Title("Show completed tasks?").
				Affirmative("Show").
				Negative("Hide").
				Value(&c.ShowCompleted),
			huh.NewSelect[string]().
				Title("Colored output").
				Options(huh.NewOptions("auto", "always", "never")...).
				Value(&c.Color),
			huh.NewSelect[string]().
				Title("Log level").
				Options(huh.NewOptions("debug", "info", "warn", "error")...).
				Value(&c.Logging.Level),
		),
	).WithTheme(huh.ThemeCharm())
}
