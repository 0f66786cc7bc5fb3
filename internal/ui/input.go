package ui

import (
	"github.com/hajimehoshi/ebiten/v2"
	"github.com/hajimehoshi/ebiten/v2/inpututil"
)

var (
	isMouseButtonJustPressed  = inpututil.IsMouseButtonJustPressed
	appendJustPressedTouchIDs = inpututil.AppendJustPressedTouchIDs
)

// primaryPointerDown reports a single tap for this frame: the left button
// going down or any number of new touches. Releases, drags and other buttons
// are ignored.
func primaryPointerDown() bool {
	if isMouseButtonJustPressed(ebiten.MouseButtonLeft) {
		return true
	}
	return len(appendJustPressedTouchIDs(nil)) > 0
}

// SetInputForTest replaces input functions during tests and returns a function
// to restore the originals.
func SetInputForTest(
	mouse func(ebiten.MouseButton) bool,
	touches func([]ebiten.TouchID) []ebiten.TouchID,
) func() {
	oldMouse := isMouseButtonJustPressed
	oldTouches := appendJustPressedTouchIDs
	isMouseButtonJustPressed = mouse
	appendJustPressedTouchIDs = touches
	return func() {
		isMouseButtonJustPressed = oldMouse
		appendJustPressedTouchIDs = oldTouches
	}
}
