package core

import "testing"

func TestInputFrameSetHasClear(t *testing.T) {
	f := NewInputFrame()

	if f.Any() {
		t.Error("fresh frame should be empty")
	}

	f.Set(ActionLeft)
	f.Set(ActionPress)

	if !f.Has(ActionLeft) || !f.Has(ActionPress) {
		t.Error("Set actions not visible via Has")
	}
	if f.Has(ActionRight) {
		t.Error("Has reported an action that was never set")
	}

	f.Clear()
	if f.Any() {
		t.Error("Clear left the frame non-empty")
	}
}

func TestInputFrameRunesCountAsInput(t *testing.T) {
	f := NewInputFrame()
	f.Type('x')

	if !f.Any() {
		t.Error("typed rune should count as input")
	}
	if len(f.Runes) != 1 || f.Runes[0] != 'x' {
		t.Errorf("Runes = %v, want ['x']", f.Runes)
	}

	f.Clear()
	if len(f.Runes) != 0 {
		t.Error("Clear should drop typed runes")
	}
}

func TestInputFrameClone(t *testing.T) {
	f := NewInputFrame()
	f.Set(ActionUp)
	f.Type('a')

	clone := f.Clone()
	clone.Set(ActionDown)
	clone.Type('b')

	if f.Has(ActionDown) {
		t.Error("mutating the clone changed the original actions")
	}
	if len(f.Runes) != 1 {
		t.Error("mutating the clone changed the original runes")
	}
}

func TestInputFrameZeroValue(t *testing.T) {
	// The zero value must be safe to query and set.
	var f InputFrame

	if f.Has(ActionPress) {
		t.Error("zero-value frame reported an action")
	}
	f.Set(ActionPress)
	if !f.Has(ActionPress) {
		t.Error("Set on zero-value frame did not stick")
	}
}
