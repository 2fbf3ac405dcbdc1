package internal

type LogLevel string

const (
	LogLevelDebug LogLevel = "DEBUG"
	LogLevelInfo  LogLevel = "INFO"
	LogLevelError LogLevel = "ERROR"
)

type InputMode string

const (
	// InputModeAuto uses the carousel when a joystick can be opened.
	InputModeAuto     InputMode = "auto"
	InputModeCarousel InputMode = "carousel"
	InputModeList     InputMode = "list"
)

func (m InputMode) Valid() bool {
	switch m {
	case InputModeAuto, InputModeCarousel, InputModeList:
		return true
	}
	return false
}
