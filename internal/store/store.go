// Package store holds the task list and notifies observers when it changes.
package store

import (
	"cmp"
	"log/slog"
	"slices"
	"strings"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
)

// Observer is notified after every change to the store.
// The notification carries no payload; observers call Tasks to re-read state.
type Observer interface {
	Update()
}

// ObserverFunc adapts a plain function to Observer.
type ObserverFunc func()

func (f ObserverFunc) Update() { f() }

type subscription struct {
	id       int
	observer Observer
}

// Store owns all tasks and the active sort strategy.
//
// Store is not safe for concurrent use. Observers are called synchronously,
// in registration order, after a mutation has been fully applied; they must
// not mutate the store from within Update.
type Store struct {
	tasks          map[int]*model.Task
	strategy       order.Strategy
	observers      []subscription
	nextObserverID int
}

// New creates an empty store sorted by ID.
func New() *Store {
	return &Store{
		tasks:          make(map[int]*model.Task),
		strategy:       order.Default(),
		nextObserverID: 1, // 0 is never a valid subscription
	}
}

// AddObserver registers o and returns an ID for RemoveObserver.
// Registering the same observer twice delivers each notification twice.
func (s *Store) AddObserver(o Observer) int {
	id := s.nextObserverID
	s.nextObserverID++
	s.observers = append(s.observers, subscription{id: id, observer: o})
	return id
}

// RemoveObserver unregisters the observer with the given ID.
// Unknown IDs are ignored.
func (s *Store) RemoveObserver(id int) {
	for i, sub := range s.observers {
		if sub.id == id {
			s.observers = append(s.observers[:i:i], s.observers[i+1:]...)
			return
		}
	}
}

func (s *Store) notifyObservers() {
	observers := make([]Observer, 0, len(s.observers))
	for _, sub := range s.observers {
		observers = append(observers, sub.observer)
	}
	for _, o := range observers {
		o.Update()
	}
}

// AddTask inserts task under its ID.
// Returns a *model.DuplicateIDError if the ID is already present.
func (s *Store) AddTask(task model.Task) error {
	if _, exists := s.tasks[task.ID]; exists {
		return &model.DuplicateIDError{ID: task.ID}
	}

	stored := task
	s.tasks[task.ID] = &stored
	slog.Debug("task added", "id", task.ID)
	s.notifyObservers()
	return nil
}

// DeleteTask removes the task with task's ID.
// Returns false, without notifying, if no such task exists.
func (s *Store) DeleteTask(task model.Task) bool {
	if _, exists := s.tasks[task.ID]; !exists {
		return false
	}

	delete(s.tasks, task.ID)
	slog.Debug("task deleted", "id", task.ID)
	s.notifyObservers()
	return true
}

// SetCompleted sets the completion flag of the task with task's ID.
// Returns false, without notifying, if no such task exists.
func (s *Store) SetCompleted(task model.Task, completed bool) bool {
	stored, exists := s.tasks[task.ID]
	if !exists {
		return false
	}

	stored.Completed = completed
	slog.Debug("task completion changed", "id", task.ID, "completed", completed)
	s.notifyObservers()
	return true
}

// MarkCompleted is SetCompleted(task, true).
func (s *Store) MarkCompleted(task model.Task) bool {
	return s.SetCompleted(task, true)
}

// MarkIncomplete is SetCompleted(task, false).
func (s *Store) MarkIncomplete(task model.Task) bool {
	return s.SetCompleted(task, false)
}

// EditTask replaces the description of the task with task's ID.
// The description is stored trimmed. Returns false, without notifying, if no
// such task exists or the trimmed description is empty.
func (s *Store) EditTask(task model.Task, description string) bool {
	stored, exists := s.tasks[task.ID]
	if !exists {
		return false
	}
	description = strings.TrimSpace(description)
	if description == "" {
		return false
	}

	stored.Description = description
	slog.Debug("task edited", "id", task.ID)
	s.notifyObservers()
	return true
}

// SetSortStrategy replaces the active strategy and always notifies, so that
// views re-render in the new order. A nil strategy restores the default.
func (s *Store) SetSortStrategy(strategy order.Strategy) {
	if strategy == nil {
		strategy = order.Default()
	}
	s.strategy = strategy
	slog.Debug("sort strategy changed", "strategy", strategy.Name())
	s.notifyObservers()
}

// SortStrategy returns the active strategy.
func (s *Store) SortStrategy() order.Strategy {
	return s.strategy
}

// Tasks returns a snapshot of all tasks ordered by the active strategy.
// The returned slice and its elements are copies. The strategy always sees
// its input in ID order, so ties come out in creation order.
func (s *Store) Tasks() []model.Task {
	tasks := make([]model.Task, 0, len(s.tasks))
	for _, t := range s.tasks {
		tasks = append(tasks, *t)
	}
	slices.SortFunc(tasks, func(a, b model.Task) int {
		return cmp.Compare(a.ID, b.ID)
	})
	return s.strategy.Sort(tasks)
}

// Task returns a snapshot of the task with the given ID.
func (s *Store) Task(id int) (model.Task, bool) {
	t, exists := s.tasks[id]
	if !exists {
		return model.Task{}, false
	}
	return *t, true
}

// Len returns the number of stored tasks.
func (s *Store) Len() int {
	return len(s.tasks)
}

// Counts returns the number of pending and completed tasks.
func (s *Store) Counts() (pending, completed int) {
	for _, t := range s.tasks {
		if t.Completed {
			completed++
		} else {
			pending++
		}
	}
	return pending, completed
}
