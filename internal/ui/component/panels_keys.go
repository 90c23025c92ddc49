package component

import (
	"github.com/diamondburned/gotk4/pkg/gdk/v4"
	"github.com/diamondburned/gotk4/pkg/gtk/v4"

	"github.com/bnema/overpane/internal/logging"
	"github.com/bnema/overpane/internal/panels"
)

type keyAction int

const (
	keyNone keyAction = iota
	keyToggleLeft
	keyToggleRight
	keyClose
)

// keyActionFor maps a key to a panel action. Modified keys are left to the
// rest of the window.
func keyActionFor(keyval uint, state gdk.ModifierType) keyAction {
	if state&(gdk.ControlMask|gdk.AltMask|gdk.SuperMask) != 0 {
		return keyNone
	}
	switch keyval {
	case gdk.KEY_bracketleft, gdk.KEY_h, gdk.KEY_Left:
		return keyToggleLeft
	case gdk.KEY_bracketright, gdk.KEY_l, gdk.KEY_Right:
		return keyToggleRight
	case gdk.KEY_Escape, gdk.KEY_c:
		return keyClose
	default:
		return keyNone
	}
}

// AttachKeys installs the drawer shortcuts on w, usually the window.
func (op *OverlappingPanels) AttachKeys(w gtk.Widgetter) {
	keys := gtk.NewEventControllerKey()
	keys.ConnectKeyPressed(func(keyval, _ uint, state gdk.ModifierType) bool {
		return op.handleKey(keyActionFor(keyval, state))
	})
	gtk.BaseWidget(w).AddController(keys)
}

func (op *OverlappingPanels) handleKey(action keyAction) bool {
	switch action {
	case keyToggleLeft:
		op.SyncAllocation()
		op.ctrl.Toggle(panels.StateLeft)
	case keyToggleRight:
		op.SyncAllocation()
		op.ctrl.Toggle(panels.StateRight)
	case keyClose:
		if op.ctrl.State() == panels.StateCenter {
			return false
		}
		op.ctrl.Close()
	default:
		return false
	}
	logging.FromContext(op.ctx).Debug().Stringer("state", op.ctrl.State()).Msg("key action")
	return true
}
