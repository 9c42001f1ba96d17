package replay

import (
	"bytes"
	"context"
	"encoding/json"
	"errors"
	"flag"
	"os"
	"path/filepath"
	"strings"
	"testing"

	"github.com/louisbranch/reducer/internal/demo/counter"
	corereplay "github.com/louisbranch/reducer/internal/replay"
)

const actionLog = `{"type":"counter.incremented","amount":3}
{"type":"counter.audited","by":"ops"}
{"type":"counter.decremented","amount":1}
`

func TestParseConfigDefaults(t *testing.T) {
	cfg, err := ParseConfig(flag.NewFlagSet("replay", flag.ContinueOnError), nil)
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Input != "-" {
		t.Fatalf("input = %q, want -", cfg.Input)
	}
	if cfg.Initial != 0 || cfg.Strict {
		t.Fatalf("cfg = %+v, want zero initial and lenient", cfg)
	}
}

func TestParseConfigFlagsOverrideEnv(t *testing.T) {
	t.Setenv("REDUCER_REPLAY_INITIAL", "4")
	t.Setenv("REDUCER_REPLAY_STRICT", "true")

	cfg, err := ParseConfig(flag.NewFlagSet("replay", flag.ContinueOnError), []string{"-in", "log.jsonl", "-initial", "7"})
	if err != nil {
		t.Fatalf("parse config: %v", err)
	}
	if cfg.Input != "log.jsonl" {
		t.Fatalf("input = %q, want log.jsonl", cfg.Input)
	}
	if cfg.Initial != 7 {
		t.Fatalf("initial = %d, want 7", cfg.Initial)
	}
	if !cfg.Strict {
		t.Fatal("expected strict from env")
	}
}

func TestRunReplaysStdin(t *testing.T) {
	t.Setenv("REDUCER_OTEL_ENDPOINT", "")
	var out bytes.Buffer

	err := Run(context.Background(), Config{Input: "-", Initial: 10}, strings.NewReader(actionLog), &out)
	if err != nil {
		t.Fatalf("run: %v", err)
	}
	var state counter.State
	if err := json.Unmarshal(out.Bytes(), &state); err != nil {
		t.Fatalf("decode output %q: %v", out.String(), err)
	}
	if state.Value != 12 || state.Changes != 2 {
		t.Fatalf("state = %+v, want value 12 after 2 changes", state)
	}
}

func TestRunReplaysFile(t *testing.T) {
	t.Setenv("REDUCER_OTEL_ENDPOINT", "")
	path := filepath.Join(t.TempDir(), "actions.jsonl")
	if err := os.WriteFile(path, []byte(actionLog+`{"type":"counter.reset"}`+"\n"), 0o600); err != nil {
		t.Fatalf("write log: %v", err)
	}
	var out bytes.Buffer

	if err := Run(context.Background(), Config{Input: path, Initial: 1}, nil, &out); err != nil {
		t.Fatalf("run: %v", err)
	}
	var state counter.State
	if err := json.Unmarshal(out.Bytes(), &state); err != nil {
		t.Fatalf("decode output: %v", err)
	}
	if state.Value != 1 || state.Changes != 3 {
		t.Fatalf("state = %+v, want reset value 1 after 3 changes", state)
	}
}

func TestRunStrictFailsOnUnhandledType(t *testing.T) {
	t.Setenv("REDUCER_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{Input: "-", Strict: true}, strings.NewReader(actionLog), nil)
	if !errors.Is(err, corereplay.ErrUnhandledAction) {
		t.Fatalf("err = %v, want ErrUnhandledAction", err)
	}
}

func TestRunMissingFile(t *testing.T) {
	t.Setenv("REDUCER_OTEL_ENDPOINT", "")

	err := Run(context.Background(), Config{Input: filepath.Join(t.TempDir(), "missing.jsonl")}, nil, nil)
	if !errors.Is(err, os.ErrNotExist) {
		t.Fatalf("err = %v, want os.ErrNotExist", err)
	}
}

func TestRunRequiresStdin(t *testing.T) {
	t.Setenv("REDUCER_OTEL_ENDPOINT", "")

	if err := Run(context.Background(), Config{Input: "-"}, nil, nil); err == nil {
		t.Fatal("expected error without stdin")
	}
}
