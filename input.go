package glshape

// Key represents a keyboard key.
type Key int

const (
	KeyNone Key = iota
	KeyEscape
)

func (k Key) String() string {
	switch k {
	case KeyEscape:
		return "escape"
	default:
		return "none"
	}
}

// processInput requests close on the window when escape is held.
// It reports whether a close was requested this frame.
func processInput(w Window) bool {
	if w.KeyPressed(KeyEscape) {
		w.SetShouldClose(true)
		return true
	}
	return false
}
