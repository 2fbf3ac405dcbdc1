package main

import (
	"errors"
	"log/slog"
	"ryulaunch/catalog"
	"ryulaunch/history"
	"ryulaunch/input"
	"ryulaunch/internal"
	"ryulaunch/navigator"

	"github.com/0xcafed00d/joystick"
	uatomic "go.uber.org/atomic"
)

type AppState struct {
	Config     *internal.Config
	ConfigPath string

	Navigator *navigator.Navigator
	History   *history.Manager
	Recorder  *sessionRecorder

	// Joystick is nil when the library list is the only way to browse.
	Joystick joystick.Joystick
	Mapping  input.Mapping

	ArtDir string
}

func (s *AppState) Games() catalog.Catalog {
	return s.Navigator.Games()
}

func (s *AppState) carouselEnabled() bool {
	return s.Joystick != nil
}

// sessionRecorder turns navigator events into history rows and hands the
// exit code to the launch screen.
type sessionRecorder struct {
	history *history.Manager
	logger  *slog.Logger

	sessionID  uatomic.Int64
	background uatomic.String
	ended      chan int
}

func newSessionRecorder(h *history.Manager, logger *slog.Logger) *sessionRecorder {
	return &sessionRecorder{
		history: h,
		logger:  logger,
		ended:   make(chan int, 1),
	}
}

func (r *sessionRecorder) InfoUpdated(name string) {
	r.logger.Debug("Selection changed", "game", name)
}

func (r *sessionRecorder) BackgroundChanged(path string) {
	r.background.Store(path)
}

func (r *sessionRecorder) LaunchStarted(game catalog.GameRecord) {
	r.logger.Info("Launching game", "game", game.Name, "path", game.FilePath)

	if err := r.history.SetLastSelected(game.FilePath); err != nil {
		r.logHistoryError("Unable to store last selected game", err)
	}

	id, err := r.history.StartSession(game.FilePath, game.Name, game.ID)
	if err != nil {
		r.logHistoryError("Unable to record session start", err)
		return
	}
	r.sessionID.Store(id)
}

func (r *sessionRecorder) LaunchEnded(game catalog.GameRecord, exitCode int) {
	if id := r.sessionID.Swap(0); id != 0 {
		if err := r.history.EndSession(id, exitCode); err != nil {
			r.logHistoryError("Unable to record session end", err)
		}
	}

	select {
	case r.ended <- exitCode:
	default:
		r.logger.Warn("Dropped launch result", "game", game.Name, "exit_code", exitCode)
	}
}

// Background is the art of the most recent selection.
func (r *sessionRecorder) Background() string {
	return r.background.Load()
}

func (r *sessionRecorder) logHistoryError(msg string, err error) {
	if errors.Is(err, history.ErrNotInitialized) {
		r.logger.Debug(msg, "error", err)
		return
	}
	r.logger.Error(msg, "error", err)
}
