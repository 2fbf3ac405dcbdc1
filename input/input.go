package input

import (
	"github.com/0xcafed00d/joystick"
)

type Command int

const (
	CommandLeft Command = iota + 1
	CommandRight
	CommandLaunch
	CommandLibrary
	CommandQuit
)

func (c Command) String() string {
	switch c {
	case CommandLeft:
		return "left"
	case CommandRight:
		return "right"
	case CommandLaunch:
		return "launch"
	case CommandLibrary:
		return "library"
	case CommandQuit:
		return "quit"
	default:
		return "unknown"
	}
}

// Mapping describes which joystick axes and buttons drive the launcher.
// A negative index disables that input.
type Mapping struct {
	HorizontalAxis  int
	HatAxis         int
	Deadzone        int
	DPadLeftButton  int
	DPadRightButton int
	LaunchButton    int
	LibraryButton   int
	QuitButton      int
}

// DefaultMapping follows the standard gamepad layout: left stick and d-pad
// move, button 1 launches.
func DefaultMapping() Mapping {
	return Mapping{
		HorizontalAxis:  0,
		HatAxis:         6,
		Deadzone:        16384,
		DPadLeftButton:  14,
		DPadRightButton: 15,
		LaunchButton:    1,
		LibraryButton:   3,
		QuitButton:      0,
	}
}

func pressed(buttons uint32, index int) bool {
	if index < 0 || index > 31 {
		return false
	}
	return buttons&(1<<uint(index)) != 0
}

func axis(state joystick.State, index int) int {
	if index < 0 || index >= len(state.AxisData) {
		return 0
	}
	return state.AxisData[index]
}

// direction reports -1 for left, 1 for right and 0 when centred.
func (m Mapping) direction(state joystick.State) int {
	switch {
	case axis(state, m.HorizontalAxis) < -m.Deadzone, axis(state, m.HatAxis) < -m.Deadzone, pressed(state.Buttons, m.DPadLeftButton):
		return -1
	case axis(state, m.HorizontalAxis) > m.Deadzone, axis(state, m.HatAxis) > m.Deadzone, pressed(state.Buttons, m.DPadRightButton):
		return 1
	}
	return 0
}

// Decode turns one reading into commands. A held direction yields a move on
// every reading; buttons only fire on the reading where they go down.
func (m Mapping) Decode(state joystick.State, previousButtons uint32) []Command {
	var commands []Command

	switch m.direction(state) {
	case -1:
		commands = append(commands, CommandLeft)
	case 1:
		commands = append(commands, CommandRight)
	}

	justPressed := state.Buttons &^ previousButtons
	if pressed(justPressed, m.LaunchButton) {
		commands = append(commands, CommandLaunch)
	}
	if pressed(justPressed, m.LibraryButton) {
		commands = append(commands, CommandLibrary)
	}
	if pressed(justPressed, m.QuitButton) {
		commands = append(commands, CommandQuit)
	}

	return commands
}
