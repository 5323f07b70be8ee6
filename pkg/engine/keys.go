package engine

// Key identifies a keyboard key. Values match GLFW key codes, which use the
// ASCII value for printable keys, so a glfw.Key converts directly.
type Key int

// Key constants for keyboard input
const (
	KeyUnknown Key = -1

	KeySpace Key = 32
	Key0     Key = 48
	Key1     Key = 49

	KeyA Key = 65
	KeyC Key = 67
	KeyD Key = 68
	KeyF Key = 70
	KeyL Key = 76
	KeyM Key = 77
	KeyO Key = 79
	KeyS Key = 83
	KeyT Key = 84
	KeyW Key = 87

	KeyEscape Key = 256
	KeyRight  Key = 262
	KeyLeft   Key = 263
	KeyDown   Key = 264
	KeyUp     Key = 265

	KeyF9 Key = 298
)

var keyNames = map[Key]string{
	KeySpace:  "Space",
	Key0:      "0",
	Key1:      "1",
	KeyA:      "A",
	KeyC:      "C",
	KeyD:      "D",
	KeyF:      "F",
	KeyL:      "L",
	KeyM:      "M",
	KeyO:      "O",
	KeyS:      "S",
	KeyT:      "T",
	KeyW:      "W",
	KeyEscape: "Escape",
	KeyRight:  "Right",
	KeyLeft:   "Left",
	KeyDown:   "Down",
	KeyUp:     "Up",
	KeyF9:     "F9",
}

// String returns a readable key name
func (k Key) String() string {
	if name, ok := keyNames[k]; ok {
		return name
	}
	return "Unknown"
}
