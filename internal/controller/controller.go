// Package controller forwards user intents from a presentation layer to the
// task store.
package controller

import (
	"log/slog"
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
)

// TaskStore is the part of the store the controller drives.
// The concrete implementation is store.Store.
type TaskStore interface {
	AddTask(task model.Task) error
	DeleteTask(task model.Task) bool
	SetCompleted(task model.Task, completed bool) bool
	EditTask(task model.Task, description string) bool
	SetSortStrategy(strategy order.Strategy)
}

// Controller validates user input and passes it on to a TaskStore.
// Apart from the ID counter of its factory it holds no state.
type Controller struct {
	store   TaskStore
	factory *model.Factory
}

// New returns a Controller driving s.
func New(s TaskStore) *Controller {
	return &Controller{
		store:   s,
		factory: model.NewFactory(),
	}
}

// AddTask creates a task with the trimmed description and adds it to the store.
// An empty description is rejected with a *model.ValidationError before any ID
// is allocated.
func (c *Controller) AddTask(description string) (model.Task, error) {
	if err := model.ValidateDescription(description); err != nil {
		slog.Debug("rejected new task", "next_id", c.factory.Peek(), "error", err)
		return model.Task{}, err
	}

	task := c.factory.Create(strings.TrimSpace(description))
	if err := c.store.AddTask(task); err != nil {
		return model.Task{}, err
	}
	return task, nil
}

// EditTask replaces the description of task.
// An empty description is rejected with a *model.ValidationError. A task that
// no longer exists is silently ignored.
func (c *Controller) EditTask(task model.Task, description string) error {
	if err := model.ValidateDescription(description); err != nil {
		slog.Debug("rejected edit", "id", task.ID, "error", err)
		return err
	}
	c.store.EditTask(task, description)
	return nil
}

// DeleteTask removes task from the store. Reports whether it was present.
func (c *Controller) DeleteTask(task model.Task) bool {
	return c.store.DeleteTask(task)
}

// SetCompleted sets the completion flag of task. Reports whether it was present.
func (c *Controller) SetCompleted(task model.Task, completed bool) bool {
	return c.store.SetCompleted(task, completed)
}

// MarkCompleted marks task as done.
func (c *Controller) MarkCompleted(task model.Task) bool {
	return c.store.SetCompleted(task, true)
}

// MarkIncomplete marks task as not done.
func (c *Controller) MarkIncomplete(task model.Task) bool {
	return c.store.SetCompleted(task, false)
}

// ToggleCompleted flips the completion flag of the given snapshot.
func (c *Controller) ToggleCompleted(task model.Task) bool {
	return c.store.SetCompleted(task, !task.Completed)
}

// SetSortStrategy changes the display order.
func (c *Controller) SetSortStrategy(strategy order.Strategy) {
	c.store.SetSortStrategy(strategy)
}
