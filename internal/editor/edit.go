package editor

import (
	"github.com/piwi3910/FurniLayout/internal/interact"
	"github.com/piwi3910/FurniLayout/internal/model"
	"github.com/piwi3910/FurniLayout/internal/session"
)

// PointerDown forwards a press to the interaction machine and updates the selection.
func (e *Editor) PointerDown(p model.Point) {
	store := e.manager.Store()
	e.selected = e.machine.PointerDown(store, e.selected, p)
	e.gestureSnap = nil
	if e.machine.State() != interact.StateIdle {
		snap := e.snapshot("Move " + e.targetName())
		if e.machine.State() == interact.StateResizing {
			snap.Label = "Resize " + e.targetName()
		}
		e.gestureSnap = &snap
	}
}

// PointerMove applies the active drag or resize. Returns whether anything changed.
func (e *Editor) PointerMove(p model.Point) bool {
	if e.machine.State() == interact.StateIdle {
		return false
	}
	if e.gestureSnap != nil {
		e.history.Push(*e.gestureSnap)
		e.gestureSnap = nil
	}
	return e.machine.PointerMove(e.manager.Store(), p)
}

// PointerUp ends the gesture and persists it to the floor session.
func (e *Editor) PointerUp() bool {
	e.gestureSnap = nil
	return e.machine.PointerUp(e.manager)
}

// RotateSelected swaps the selected item's width and height.
func (e *Editor) RotateSelected() bool {
	return e.editSelected("Rotate", func(id string) bool {
		return interact.Rotate(e.manager.Store(), e.manager, id)
	})
}

// DeleteSelected removes the selected item and clears the selection.
func (e *Editor) DeleteSelected() bool {
	ok := e.editSelected("Delete", func(id string) bool {
		return interact.Delete(e.manager.Store(), e.manager, id)
	})
	if ok {
		e.selected = ""
	}
	return ok
}

// ResizeSelected sets an exact size on the selected item.
func (e *Editor) ResizeSelected(w, h float64) bool {
	return e.editSelected("Resize", func(id string) bool {
		return interact.Resize(e.manager.Store(), e.manager, id, w, h, e.settings.MinItemSize)
	})
}

// SetChamfer changes the selected item's corner cut.
func (e *Editor) SetChamfer(ch model.Chamfer) bool {
	return e.editSelected("Chamfer", func(id string) bool {
		return interact.SetChamfer(e.manager.Store(), e.manager, id, ch)
	})
}

// ResetFloor clears every item on the active floor.
func (e *Editor) ResetFloor() {
	if e.manager.Store().Len() > 0 {
		e.history.Push(e.snapshot("Reset floor"))
	}
	e.manager.Reset()
	e.selected = ""
	e.machine.Cancel()
}

func (e *Editor) CanUndo() bool { return e.history.CanUndo() }

func (e *Editor) CanRedo() bool { return e.history.CanRedo() }

// Undo restores the previous state of the active floor.
func (e *Editor) Undo() bool {
	snap, ok := e.history.Undo(e.snapshot("Undo"))
	if !ok {
		return false
	}
	e.restore(snap)
	return true
}

// Redo reapplies the last undone change.
func (e *Editor) Redo() bool {
	snap, ok := e.history.Redo(e.snapshot("Redo"))
	if !ok {
		return false
	}
	e.restore(snap)
	return true
}

func (e *Editor) editSelected(label string, fn func(id string) bool) bool {
	if e.selected == "" {
		return false
	}
	snap := e.snapshot(label + " " + e.nameOf(e.selected))
	if !fn(e.selected) {
		return false
	}
	e.history.Push(snap)
	return true
}

func (e *Editor) restore(snap session.Snapshot) {
	e.manager.Store().Replace(snap.Items)
	e.manager.Commit()
	if _, ok := e.manager.Store().Get(e.selected); !ok {
		e.selected = ""
	}
}

func (e *Editor) snapshot(label string) session.Snapshot {
	return session.MakeSnapshot(e.manager.Active(), e.manager.Store().Items(), label)
}

func (e *Editor) targetName() string { return e.nameOf(e.machine.Target()) }

func (e *Editor) nameOf(id string) string {
	if it, ok := e.manager.Store().Get(id); ok {
		return it.Name
	}
	return id
}
