// Package model defines the core data structures for todo.
package model

import "strings"

// Task is a single to-do item.
//
// The store owns the authoritative copy of every task. Values handed out by
// the store are snapshots: callers pass them back to identify a task, and only
// the ID is consulted.
type Task struct {
	ID          int    `yaml:"id"`
	Description string `yaml:"description"`
	Completed   bool   `yaml:"completed"`
}

// DisplayID returns the task ID formatted for display, e.g. "#7".
func (t Task) DisplayID() string {
	return FormatTaskID(t.ID)
}

// Factory allocates tasks with unique, strictly increasing IDs.
// IDs are never reused, even after the task they were issued for is deleted.
type Factory struct {
	next int
}

// NewFactory returns a Factory whose first task gets ID 1.
func NewFactory() *Factory {
	return &Factory{next: 1}
}

// Create returns a new incomplete task with the next ID.
// The description is not validated here.
func (f *Factory) Create(description string) Task {
	if f.next == 0 {
		f.next = 1
	}
	t := Task{ID: f.next, Description: description}
	f.next++
	return t
}

// Peek returns the ID the next call to Create will assign.
func (f *Factory) Peek() int {
	if f.next == 0 {
		return 1
	}
	return f.next
}

// ValidateDescription checks that a task description is not empty or
// whitespace-only.
func ValidateDescription(description string) error {
	if strings.TrimSpace(description) == "" {
		return &ValidationError{Field: "description", Message: "must not be empty"}
	}
	return nil
}
