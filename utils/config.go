package utils

import (
	"encoding/json"
	"os"
	"strconv"
	"time"

	"github.com/pkg/errors"
)

// MaxDimension is the largest board the display comfortably fits.
const MaxDimension = 40

// Config holds the runtime settings for a session. The board dimension comes
// from the command line; everything else has defaults overridable by an
// optional config.json.
type Config struct {
	Dimension  int           `json:"-"`
	FrameDelay time.Duration `json:"frame_delay"`
	Density    float64       `json:"density"`
	Seed       int64         `json:"seed"`
}

// DefaultConfig returns sensible defaults: half-second frames, even odds per
// cell, and a time-derived seed (Seed zero).
func DefaultConfig() Config {
	return Config{
		FrameDelay: 500 * time.Millisecond,
		Density:    0.5,
		Seed:       0,
	}
}

// LoadConfig loads configuration overrides from a JSON file. A missing file
// is not an error; the defaults are returned unchanged.
func LoadConfig(filename string) (Config, error) {
	config := DefaultConfig()

	data, err := os.ReadFile(filename)
	if err != nil {
		if os.IsNotExist(err) {
			return config, nil
		}
		return config, errors.Wrapf(err, "[LoadConfig] failed to read file: %+v", filename)
	}

	if err = json.Unmarshal(data, &config); err != nil {
		return config, errors.Wrapf(err, "[LoadConfig] failed to unmarshal data from file: %+v", filename)
	}

	return config, nil
}

// ParseDimension validates the single board-dimension argument. It returns a
// user-facing error for a missing argument, a non-integer, or a value outside
// (0, MaxDimension]. Validation happens before any board or terminal state
// exists, so a failure leaves nothing to clean up.
func ParseDimension(program string, args []string) (int, error) {
	if len(args) != 1 {
		return 0, errors.Errorf("Usage: %s <board dimension>", program)
	}

	dim, err := strconv.Atoi(args[0])
	if err != nil {
		return 0, errors.Errorf("Board dimension must be an integer, got %q", args[0])
	}
	if dim <= 0 || dim > MaxDimension {
		return 0, errors.Errorf("Board dimensions should be (0, %d]", MaxDimension)
	}

	return dim, nil
}
