package input

import (
	"context"
	"fmt"
	"log/slog"
	"time"

	"github.com/0xcafed00d/joystick"
)

const DefaultPollInterval = 100 * time.Millisecond

const maxJoysticks = 4

// Reader is the part of joystick.Joystick the poller needs.
type Reader interface {
	Read() (joystick.State, error)
}

// OpenFirst opens the first joystick that answers.
func OpenFirst() (joystick.Joystick, error) {
	var lastErr error
	for i := 0; i < maxJoysticks; i++ {
		js, err := joystick.Open(i)
		if err == nil {
			return js, nil
		}
		lastErr = err
	}
	return nil, fmt.Errorf("no joystick found: %w", lastErr)
}

type Poller struct {
	reader   Reader
	mapping  Mapping
	interval time.Duration
	logger   *slog.Logger
}

func NewPoller(reader Reader, mapping Mapping, logger *slog.Logger) *Poller {
	if logger == nil {
		logger = slog.Default()
	}
	return &Poller{
		reader:   reader,
		mapping:  mapping,
		interval: DefaultPollInterval,
		logger:   logger,
	}
}

func (p *Poller) SetInterval(interval time.Duration) {
	if interval > 0 {
		p.interval = interval
	}
}

// Run reads the joystick on a fixed interval and sends decoded commands to out
// until ctx is cancelled or a read fails. Sends block, so a slow consumer
// delays polling rather than queueing moves. Buttons already held on the
// first reading do not fire.
func (p *Poller) Run(ctx context.Context, out chan<- Command) error {
	ticker := time.NewTicker(p.interval)
	defer ticker.Stop()

	var lastButtons uint32
	first := true

	for {
		select {
		case <-ctx.Done():
			return ctx.Err()
		case <-ticker.C:
		}

		state, err := p.reader.Read()
		if err != nil {
			p.logger.Error("Joystick read failed", "error", err)
			return fmt.Errorf("reading joystick: %w", err)
		}
		if first {
			lastButtons = state.Buttons
			first = false
		}

		for _, cmd := range p.mapping.Decode(state, lastButtons) {
			select {
			case out <- cmd:
			case <-ctx.Done():
				return ctx.Err()
			}
		}

		lastButtons = state.Buttons
	}
}
