package store

import (
	"errors"
	"testing"

	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

// counter counts notifications and records the task list each observer saw.
type counter struct {
	store *Store
	calls int
	seen  [][]model.Task
}

func (c *counter) Update() {
	c.calls++
	c.seen = append(c.seen, c.store.Tasks())
}

func newTestStore(t *testing.T) (*Store, *counter) {
	t.Helper()
	s := New()
	c := &counter{store: s}
	s.AddObserver(c)
	return s, c
}

func taskIDs(tasks []model.Task) []int {
	out := make([]int, 0, len(tasks))
	for _, t := range tasks {
		out = append(out, t.ID)
	}
	return out
}

func TestAddTask(t *testing.T) {
	s, c := newTestStore(t)

	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "Buy milk"}))

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, model.Task{ID: 1, Description: "Buy milk"}, tasks[0])
	assert.Equal(t, 1, c.calls)
}

func TestAddTaskDuplicateID(t *testing.T) {
	s, c := newTestStore(t)
	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "first"}))

	err := s.AddTask(model.Task{ID: 1, Description: "second"})
	require.Error(t, err)
	assert.True(t, errors.Is(err, model.ErrDuplicateID))

	var dupErr *model.DuplicateIDError
	require.True(t, errors.As(err, &dupErr))
	assert.Equal(t, 1, dupErr.ID)

	tasks := s.Tasks()
	require.Len(t, tasks, 1)
	assert.Equal(t, "first", tasks[0].Description)
	assert.Equal(t, 1, c.calls, "rejected insert must not notify")
}

func TestUniqueIDs(t *testing.T) {
	s := New()
	f := model.NewFactory()

	for i := 0; i < 50; i++ {
		require.NoError(t, s.AddTask(f.Create("task")))
		if i%3 == 0 {
			tasks := s.Tasks()
			s.DeleteTask(tasks[0])
		}
	}

	seen := make(map[int]bool)
	for _, task := range s.Tasks() {
		assert.False(t, seen[task.ID], "duplicate id %d", task.ID)
		seen[task.ID] = true
	}
}

func TestDeleteTask(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	assert.True(t, s.DeleteTask(task))
	assert.Empty(t, s.Tasks())
	assert.Equal(t, 2, c.calls)

	assert.False(t, s.DeleteTask(task), "second delete is a no-op")
	assert.Equal(t, 2, c.calls)
}

func TestSetCompleted(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	assert.True(t, s.SetCompleted(task, true))
	got, ok := s.Task(1)
	require.True(t, ok)
	assert.True(t, got.Completed)

	assert.True(t, s.MarkIncomplete(task))
	got, _ = s.Task(1)
	assert.False(t, got.Completed)

	assert.True(t, s.MarkCompleted(task))
	got, _ = s.Task(1)
	assert.True(t, got.Completed)

	assert.Equal(t, 4, c.calls)
}

func TestSetCompletedSameValueStillNotifies(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	assert.True(t, s.SetCompleted(task, false))
	assert.Equal(t, 2, c.calls)
}

func TestEditTask(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	assert.True(t, s.EditTask(task, "  Y  "))
	got, _ := s.Task(1)
	assert.Equal(t, "Y", got.Description)
	assert.Equal(t, 2, c.calls)
}

func TestEditTaskEmptyRejected(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	assert.False(t, s.EditTask(task, "   "))
	assert.False(t, s.EditTask(task, ""))

	got, _ := s.Task(1)
	assert.Equal(t, "X", got.Description)
	assert.Equal(t, 1, c.calls)
}

func TestMissingIDIsNoOp(t *testing.T) {
	s, c := newTestStore(t)
	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "X"}))
	before := s.Tasks()
	missing := model.Task{ID: 99, Description: "ghost"}

	assert.False(t, s.SetCompleted(missing, true))
	assert.False(t, s.MarkCompleted(missing))
	assert.False(t, s.MarkIncomplete(missing))
	assert.False(t, s.EditTask(missing, "new"))
	assert.False(t, s.DeleteTask(missing))

	assert.Equal(t, before, s.Tasks())
	assert.Equal(t, 1, c.calls)
	_, ok := s.Task(99)
	assert.False(t, ok)
}

func TestSetSortStrategy(t *testing.T) {
	t.Run("empty store still notifies exactly once", func(t *testing.T) {
		s, c := newTestStore(t)
		s.SetSortStrategy(order.ByStatus{})
		assert.Equal(t, 1, c.calls)
		assert.Equal(t, order.ByStatus{}, s.SortStrategy())
	})

	t.Run("nil restores default", func(t *testing.T) {
		s, c := newTestStore(t)
		s.SetSortStrategy(order.Alphabetical{})
		s.SetSortStrategy(nil)
		assert.Equal(t, order.Default(), s.SortStrategy())
		assert.Equal(t, 2, c.calls)
	})

	t.Run("does not modify task data", func(t *testing.T) {
		s := New()
		require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "b", Completed: true}))
		require.NoError(t, s.AddTask(model.Task{ID: 2, Description: "a"}))
		before, _ := s.Task(1)

		s.SetSortStrategy(order.Alphabetical{})
		after, _ := s.Task(1)
		assert.Equal(t, before, after)
	})
}

func TestTasksOrderedByStrategy(t *testing.T) {
	s := New()
	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "cherry", Completed: true}))
	require.NoError(t, s.AddTask(model.Task{ID: 2, Description: "Banana"}))
	require.NoError(t, s.AddTask(model.Task{ID: 3, Description: "apple"}))

	assert.Equal(t, []int{1, 2, 3}, taskIDs(s.Tasks()))

	s.SetSortStrategy(order.ByStatus{})
	assert.Equal(t, []int{2, 3, 1}, taskIDs(s.Tasks()))

	s.SetSortStrategy(order.Alphabetical{})
	assert.Equal(t, []int{3, 2, 1}, taskIDs(s.Tasks()))
}

func TestAlphabeticalTiesInCreationOrder(t *testing.T) {
	s := New()
	s.SetSortStrategy(order.Alphabetical{})
	for id := 1; id <= 20; id++ {
		require.NoError(t, s.AddTask(model.Task{ID: id, Description: "same"}))
	}

	want := make([]int, 0, 20)
	for id := 1; id <= 20; id++ {
		want = append(want, id)
	}
	assert.Equal(t, want, taskIDs(s.Tasks()))
}

func TestTasksReturnsSnapshot(t *testing.T) {
	s := New()
	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "X"}))

	tasks := s.Tasks()
	tasks[0].Description = "mutated"
	tasks[0].Completed = true
	_ = append(tasks, model.Task{ID: 2})

	got, _ := s.Task(1)
	assert.Equal(t, "X", got.Description)
	assert.False(t, got.Completed)
	assert.Equal(t, 1, s.Len())
}

func TestAddTaskStoresCopy(t *testing.T) {
	s := New()
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))

	task.Description = "changed by caller"
	got, _ := s.Task(1)
	assert.Equal(t, "X", got.Description)
}

func TestObserversSeePostMutationState(t *testing.T) {
	s, c := newTestStore(t)
	task := model.Task{ID: 1, Description: "X"}
	require.NoError(t, s.AddTask(task))
	s.SetCompleted(task, true)
	s.DeleteTask(task)

	require.Len(t, c.seen, 3)
	assert.Equal(t, []model.Task{{ID: 1, Description: "X"}}, c.seen[0])
	assert.Equal(t, []model.Task{{ID: 1, Description: "X", Completed: true}}, c.seen[1])
	assert.Empty(t, c.seen[2])
}

func TestObserverOrder(t *testing.T) {
	s := New()
	var calls []string
	s.AddObserver(ObserverFunc(func() { calls = append(calls, "first") }))
	s.AddObserver(ObserverFunc(func() { calls = append(calls, "second") }))
	s.AddObserver(ObserverFunc(func() { calls = append(calls, "third") }))

	s.SetSortStrategy(order.ByID{})
	assert.Equal(t, []string{"first", "second", "third"}, calls)
}

func TestDuplicateObserverRegistration(t *testing.T) {
	s := New()
	c := &counter{store: s}
	s.AddObserver(c)
	s.AddObserver(c)

	s.SetSortStrategy(order.ByID{})
	assert.Equal(t, 2, c.calls)
}

func TestRemoveObserver(t *testing.T) {
	s := New()
	var calls []string
	first := s.AddObserver(ObserverFunc(func() { calls = append(calls, "first") }))
	s.AddObserver(ObserverFunc(func() { calls = append(calls, "second") }))

	s.RemoveObserver(first)
	s.RemoveObserver(first)
	s.RemoveObserver(12345)
	s.SetSortStrategy(order.ByID{})

	assert.Equal(t, []string{"second"}, calls)
}

func TestRemoveObserverDuringNotify(t *testing.T) {
	s := New()
	var calls []string
	var selfID int
	selfID = s.AddObserver(ObserverFunc(func() {
		calls = append(calls, "self")
		s.RemoveObserver(selfID)
	}))
	s.AddObserver(ObserverFunc(func() { calls = append(calls, "other") }))

	s.SetSortStrategy(order.ByID{})
	s.SetSortStrategy(order.ByID{})

	assert.Equal(t, []string{"self", "other", "other"}, calls)
}

func TestCounts(t *testing.T) {
	s := New()
	pending, completed := s.Counts()
	assert.Zero(t, pending)
	assert.Zero(t, completed)

	require.NoError(t, s.AddTask(model.Task{ID: 1, Description: "a"}))
	require.NoError(t, s.AddTask(model.Task{ID: 2, Description: "b", Completed: true}))
	require.NoError(t, s.AddTask(model.Task{ID: 3, Description: "c"}))

	pending, completed = s.Counts()
	assert.Equal(t, 2, pending)
	assert.Equal(t, 1, completed)
	assert.Equal(t, 3, s.Len())
}
