package navigator

import (
	"errors"
	"log/slog"
	"ryulaunch/catalog"

	"go.uber.org/atomic"
)

// Spawner starts the emulator. onExit runs exactly once, possibly on another
// goroutine, when a successfully started process exits.
type Spawner interface {
	Spawn(executable string, args []string, onExit func(exitCode int)) error
}

// Listener receives the side effects of navigation. LaunchEnded may be called
// from the spawner's goroutine.
type Listener interface {
	InfoUpdated(name string)
	BackgroundChanged(path string)
	LaunchStarted(game catalog.GameRecord)
	LaunchEnded(game catalog.GameRecord, exitCode int)
}

// NopListener can be embedded to implement only the callbacks of interest.
type NopListener struct{}

func (NopListener) InfoUpdated(string) {}
func (NopListener) BackgroundChanged(string) {}
func (NopListener) LaunchStarted(catalog.GameRecord) {}
func (NopListener) LaunchEnded(catalog.GameRecord, int) {}

// ErrNoSpawner is reported through the normal spawn-failure path when a
// Navigator was built without a Spawner.
var ErrNoSpawner = errors.New("no spawner configured")

type missingSpawner struct{}

func (missingSpawner) Spawn(string, []string, func(int)) error {
	return ErrNoSpawner
}

type Options struct {
	EmulatorPath string
	EmulatorArgs []string
	Spawner      Spawner
	Listener     Listener
	Logger       *slog.Logger
}

// Navigator tracks the selected game and guarantees at most one emulator
// process at a time. Selection methods must be called from a single goroutine.
type Navigator struct {
	games        catalog.Catalog
	index        int
	emulatorPath string
	emulatorArgs []string
	spawner      Spawner
	listener     Listener
	logger       *slog.Logger

	launching atomic.Bool
}

func New(games catalog.Catalog, opts Options) *Navigator {
	n := &Navigator{
		games:        games,
		emulatorPath: opts.EmulatorPath,
		emulatorArgs: opts.EmulatorArgs,
		spawner:      opts.Spawner,
		listener:     opts.Listener,
		logger:       opts.Logger,
	}
	if n.spawner == nil {
		n.spawner = missingSpawner{}
	}
	if n.listener == nil {
		n.listener = NopListener{}
	}
	if n.logger == nil {
		n.logger = slog.Default()
	}
	return n
}

func (n *Navigator) Games() catalog.Catalog {
	return n.games
}

// Index is the current selection, or -1 when the catalog is empty.
func (n *Navigator) Index() int {
	if len(n.games) == 0 {
		return -1
	}
	return n.index
}

// Current returns the selected record. ok is false for an empty catalog.
func (n *Navigator) Current() (catalog.GameRecord, bool) {
	if len(n.games) == 0 {
		return catalog.GameRecord{}, false
	}
	return n.games[n.index], true
}

func (n *Navigator) MoveLeft() {
	if len(n.games) == 0 || n.index == 0 {
		return
	}
	n.index--
	n.notifySelection()
}

func (n *Navigator) MoveRight() {
	if len(n.games) == 0 || n.index >= len(n.games)-1 {
		return
	}
	n.index++
	n.notifySelection()
}

// Select highlights index explicitly. Out-of-range values are ignored.
// Selecting the current index still notifies, which is how the initial
// highlight is drawn.
func (n *Navigator) Select(index int) bool {
	if index < 0 || index >= len(n.games) {
		return false
	}
	n.index = index
	n.notifySelection()
	return true
}

func (n *Navigator) IsLaunching() bool {
	return n.launching.Load()
}

// Launch hands the selected game to the emulator. It returns false without
// side effects when nothing is selected or a game is already running.
func (n *Navigator) Launch() bool {
	game, ok := n.Current()
	if !ok {
		return false
	}

	if !n.launching.CompareAndSwap(false, true) {
		n.logger.Info("A game is already running", "game", game.Name)
		return false
	}

	n.logger.Info("Launching game", "game", game.Name, "path", game.FilePath, "emulator", n.emulatorPath)
	n.listener.LaunchStarted(game)

	args := make([]string, 0, len(n.emulatorArgs)+1)
	args = append(args, n.emulatorArgs...)
	args = append(args, game.FilePath)

	err := n.spawner.Spawn(n.emulatorPath, args, func(exitCode int) {
		n.finish(game, exitCode)
	})
	if err != nil {
		n.logger.Error("Unable to start emulator", "emulator", n.emulatorPath, "game", game.Name, "error", err)
		n.finish(game, -1)
	}

	return true
}

func (n *Navigator) finish(game catalog.GameRecord, exitCode int) {
	if exitCode != 0 {
		n.logger.Warn("Emulator exited with non-zero code", "game", game.Name, "exitCode", exitCode)
	} else {
		n.logger.Debug("Emulator exited", "game", game.Name)
	}
	n.launching.Store(false)
	n.listener.LaunchEnded(game, exitCode)
}

func (n *Navigator) notifySelection() {
	game := n.games[n.index]
	n.listener.InfoUpdated(game.Name)
	n.listener.BackgroundChanged(game.BackgroundImagePath)
}
