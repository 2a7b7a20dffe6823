// Package tui is the full-screen terminal front-end. It observes the store
// and rebuilds its list widget on every change.
package tui

import (
	"fmt"
	"log/slog"

	"github.com/gdamore/tcell/v2"
	"github.com/rivo/tview"

	"github.com/jacksmith/todo/internal/controller"
	"github.com/jacksmith/todo/internal/model"
	"github.com/jacksmith/todo/internal/order"
)

const (
	pageMain = "main"
	pageEdit = "edit"

	keyHints = "[::d]enter add · tab switch · space toggle · e edit · d delete · s sort · c completed · q quit"
)

// TaskSource is the read side of the store.
type TaskSource interface {
	Tasks() []model.Task
	Counts() (pending, completed int)
	SortStrategy() order.Strategy
}

// Options configures a View.
type Options struct {
	ShowCompleted bool
}

// View lays out an input field, the task list and a footer. It implements
// store.Observer.
type View struct {
	app  *tview.Application
	ctrl *controller.Controller
	src  TaskSource

	pages     *tview.Pages
	input     *tview.InputField
	list      *tview.List
	footer    *tview.TextView
	editForm  *tview.Form
	editInput *tview.InputField

	showCompleted bool
	// visible holds the listed tasks in list order.
	visible []model.Task
	// message is an error shown in the footer until the next action.
	message string

	// quit stops the application; swapped out in tests.
	quit func()
}

// New builds the widgets. The caller registers the View as a store observer.
func New(app *tview.Application, ctrl *controller.Controller, src TaskSource, opts Options) *View {
	v := &View{
		app:           app,
		ctrl:          ctrl,
		src:           src,
		showCompleted: opts.ShowCompleted,
		quit:          app.Stop,
	}

	v.input = tview.NewInputField().
		SetLabel("New task: ").
		SetFieldWidth(0).
		SetDoneFunc(v.handleInputDone)

	v.list = tview.NewList().
		ShowSecondaryText(false).
		SetHighlightFullLine(true)
	v.list.SetBorder(true).SetTitle(" Tasks ")
	v.list.SetInputCapture(v.handleListKey)

	v.footer = tview.NewTextView().
		SetDynamicColors(true).
		SetWrap(false)

	layout := tview.NewFlex().SetDirection(tview.FlexRow).
		AddItem(v.input, 1, 0, true).
		AddItem(v.list, 0, 1, false).
		AddItem(v.footer, 2, 0, false)

	v.pages = tview.NewPages().AddPage(pageMain, layout, true, true)

	v.refresh()
	return v
}

// Primitive returns the root widget.
func (v *View) Primitive() tview.Primitive {
	return v.pages
}

// Run takes over the terminal until the user quits.
func (v *View) Run() error {
	v.app.SetRoot(v.pages, true).SetFocus(v.input).EnableMouse(false)
	if err := v.app.Run(); err != nil {
		return fmt.Errorf("run application: %w", err)
	}
	return nil
}

// Update rebuilds the list after a store change.
func (v *View) Update() {
	v.refresh()
}

// ShowCompleted reports whether completed tasks are listed.
func (v *View) ShowCompleted() bool {
	return v.showCompleted
}

func (v *View) handleInputDone(key tcell.Key) {
	switch key {
	case tcell.KeyEnter:
		v.message = ""
		if _, err := v.ctrl.AddTask(v.input.GetText()); err != nil {
			v.fail(err)
			return
		}
		v.input.SetText("")
	case tcell.KeyTab, tcell.KeyBacktab:
		v.app.SetFocus(v.list)
	case tcell.KeyEscape:
		v.input.SetText("")
	}
}

// handleListKey runs list shortcuts. Keys it does not consume (arrows, home,
// end) fall through to the list's own navigation.
func (v *View) handleListKey(event *tcell.EventKey) *tcell.EventKey {
	switch event.Key() {
	case tcell.KeyTab, tcell.KeyBacktab:
		v.app.SetFocus(v.input)
		return nil
	case tcell.KeyRune:
	default:
		return event
	}

	slog.Debug("list key", "rune", string(event.Rune()))
	v.message = ""

	switch event.Rune() {
	case ' ', 'x':
		if task, ok := v.selected(); ok {
			v.ctrl.ToggleCompleted(task)
		}
	case 'd':
		if task, ok := v.selected(); ok {
			v.ctrl.DeleteTask(task)
		}
	case 'e':
		if task, ok := v.selected(); ok {
			v.openEdit(task)
		}
	case 's':
		v.ctrl.SetSortStrategy(order.Next(v.src.SortStrategy()))
	case 'c':
		v.showCompleted = !v.showCompleted
		v.refresh()
	case 'q':
		v.quit()
	default:
		return event
	}
	return nil
}

func (v *View) selected() (model.Task, bool) {
	idx := v.list.GetCurrentItem()
	if idx < 0 || idx >= len(v.visible) {
		return model.Task{}, false
	}
	return v.visible[idx], true
}

func (v *View) openEdit(task model.Task) {
	v.editInput = tview.NewInputField().
		SetLabel("Description ").
		SetText(task.Description).
		SetFieldWidth(0)

	v.editForm = tview.NewForm().
		AddFormItem(v.editInput).
		AddButton("Save", func() { v.applyEdit(task) }).
		AddButton("Cancel", v.closeEdit).
		SetCancelFunc(v.closeEdit)
	v.editForm.SetBorder(true).SetTitle(fmt.Sprintf(" Edit %s ", task.DisplayID()))

	v.pages.AddPage(pageEdit, center(v.editForm, 60, 7), true, true)
	v.app.SetFocus(v.editForm)
}

func (v *View) applyEdit(task model.Task) {
	err := v.ctrl.EditTask(task, v.editInput.GetText())
	v.closeEdit()
	if err != nil {
		v.fail(err)
	}
}

func (v *View) closeEdit() {
	v.pages.RemovePage(pageEdit)
	v.editForm, v.editInput = nil, nil
	v.app.SetFocus(v.list)
}

func (v *View) fail(err error) {
	slog.Warn("action rejected", "error", err)
	v.message = err.Error()
	v.renderFooter()
}

// refresh rebuilds the list, keeping the selection on the same task when it
// is still listed.
func (v *View) refresh() {
	selectedID := 0
	if task, ok := v.selected(); ok {
		selectedID = task.ID
	}
	prevIdx := v.list.GetCurrentItem()

	v.visible = v.visible[:0]
	for _, t := range v.src.Tasks() {
		if t.Completed && !v.showCompleted {
			continue
		}
		v.visible = append(v.visible, t)
	}

	v.list.Clear()
	idx := -1
	for i, t := range v.visible {
		v.list.AddItem(itemText(t), "", 0, nil)
		if t.ID == selectedID {
			idx = i
		}
	}
	if idx < 0 {
		idx = min(prevIdx, len(v.visible)-1)
	}
	if idx >= 0 {
		v.list.SetCurrentItem(idx)
	}

	v.renderFooter()
}

func (v *View) renderFooter() {
	pending, completed := v.src.Counts()
	status := fmt.Sprintf("%d pending · %d completed · sorted %s", pending, completed, v.src.SortStrategy().Name())
	if !v.showCompleted && completed > 0 {
		status += " · completed hidden"
	}
	if v.message != "" {
		status += "  [red]" + tview.Escape(v.message) + "[-]"
	}
	v.footer.SetText(status + "\n" + keyHints)
}

func itemText(t model.Task) string {
	if t.Completed {
		return "[gray]" + tview.Escape(fmt.Sprintf("%s [x] %s", t.DisplayID(), t.Description)) + "[-]"
	}
	return tview.Escape(fmt.Sprintf("%s [ ] %s", t.DisplayID(), t.Description))
}

// center places p in the middle of the screen with a fixed size.
func center(p tview.Primitive, width, height int) tview.Primitive {
	return tview.NewFlex().
		AddItem(nil, 0, 1, false).
		AddItem(tview.NewFlex().SetDirection(tview.FlexRow).
			AddItem(nil, 0, 1, false).
			AddItem(p, height, 1, true).
			AddItem(nil, 0, 1, false), width, 1, true).
		AddItem(nil, 0, 1, false)
}
