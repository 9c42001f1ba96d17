// Package replay parses replay command flags and folds an action log through
// the counter reducer.
package replay

import (
	"context"
	"encoding/json"
	"flag"
	"fmt"
	"io"
	"log"
	"os"
	"strings"

	"github.com/louisbranch/reducer/internal/demo/counter"
	entrypoint "github.com/louisbranch/reducer/internal/platform/cmd"
	"github.com/louisbranch/reducer/internal/replay"
)

// Config holds replay command configuration.
type Config struct {
	Input   string `env:"REPLAY_INPUT"   envDefault:"-"`
	Initial int    `env:"REPLAY_INITIAL"`
	Strict  bool   `env:"REPLAY_STRICT"`
}

// ParseConfig parses environment and flags into Config.
func ParseConfig(fs *flag.FlagSet, args []string) (Config, error) {
	var cfg Config
	if err := entrypoint.ParseConfig(&cfg); err != nil {
		return Config{}, err
	}
	fs.StringVar(&cfg.Input, "in", cfg.Input, "action log to replay, one JSON action per line (- for stdin)")
	fs.IntVar(&cfg.Initial, "initial", cfg.Initial, "initial counter value")
	fs.BoolVar(&cfg.Strict, "strict", cfg.Strict, "fail on action types without a handler")
	if err := entrypoint.ParseArgs(fs, args); err != nil {
		return Config{}, err
	}
	return cfg, nil
}

// Run replays the configured action log and writes the final state to out as
// JSON. stdin is read when the input is "-".
func Run(ctx context.Context, cfg Config, stdin io.Reader, out io.Writer) error {
	if out == nil {
		out = io.Discard
	}
	return entrypoint.RunWithTelemetry(ctx, entrypoint.ServiceReplay, func(ctx context.Context) error {
		in, closeInput, err := openInput(cfg.Input, stdin)
		if err != nil {
			return err
		}
		defer closeInput()

		r, err := counter.NewReducer(counter.State{Value: cfg.Initial})
		if err != nil {
			return fmt.Errorf("build counter reducer: %w", err)
		}
		result, err := replay.Replay(ctx, r, r.Initial(), replay.NewLineDecoder(in), replay.Options{Strict: cfg.Strict})
		if err != nil {
			return fmt.Errorf("replay %s: %w", inputName(cfg.Input), err)
		}
		log.Printf("replayed %s: applied=%d skipped=%d", inputName(cfg.Input), result.Applied, result.Skipped)

		enc := json.NewEncoder(out)
		enc.SetIndent("", "  ")
		if err := enc.Encode(result.State); err != nil {
			return fmt.Errorf("write state: %w", err)
		}
		return nil
	})
}

func openInput(path string, stdin io.Reader) (io.Reader, func(), error) {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		if stdin == nil {
			return nil, nil, fmt.Errorf("stdin is required when input is %q", "-")
		}
		return stdin, func() {}, nil
	}
	f, err := os.Open(path)
	if err != nil {
		return nil, nil, fmt.Errorf("open input: %w", err)
	}
	return f, func() {
		if err := f.Close(); err != nil {
			log.Printf("close %s: %v", path, err)
		}
	}, nil
}

func inputName(path string) string {
	path = strings.TrimSpace(path)
	if path == "" || path == "-" {
		return "stdin"
	}
	return path
}
