package scroll

// Screen is the character grid the list box paints on.
type Screen interface {
	MoveCursor(x, y int)
	SetColors(fg, bg Color)
	WriteText(s string)
}

// Event is one normalized input event.
type Event int

const (
	EventIgnore Event = iota
	EventUp
	EventDown
	EventConfirm
)

func (e Event) String() string {
	switch e {
	case EventUp:
		return "up"
	case EventDown:
		return "down"
	case EventConfirm:
		return "confirm"
	}
	return "ignore"
}

// Input delivers events one at a time. ReadEvent blocks until an event
// arrives; escape sequences must be fully consumed before it returns.
type Input interface {
	ReadEvent() (Event, error)
}

// InputFunc adapts a function to Input.
type InputFunc func() (Event, error)

// ReadEvent calls f.
func (f InputFunc) ReadEvent() (Event, error) {
	return f()
}
