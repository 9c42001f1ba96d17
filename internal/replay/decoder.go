package replay

import (
	"bufio"
	"bytes"
	"errors"
	"fmt"
	"io"

	"github.com/tidwall/gjson"

	"github.com/louisbranch/reducer/internal/reducer"
)

const maxLineBytes = 1 << 20

var (
	// ErrInvalidJSON indicates a line that is not a JSON document.
	ErrInvalidJSON = errors.New("invalid action json")
	// ErrActionTypeRequired indicates a descriptor without a string type field.
	ErrActionTypeRequired = errors.New("action type is required")
)

// Decoder yields actions in order. Next returns io.EOF after the last action.
type Decoder interface {
	Next() (reducer.Action, error)
}

// LineDecoder reads one JSON action descriptor per line, such as
//
//	{"type":"counter.incremented","amount":2}
//
// The type field becomes the action type and the whole line its payload.
// Blank lines are skipped.
type LineDecoder struct {
	scanner *bufio.Scanner
	line    int
}

// NewLineDecoder creates a decoder reading from r.
func NewLineDecoder(r io.Reader) *LineDecoder {
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), maxLineBytes)
	return &LineDecoder{scanner: scanner}
}

// Line returns the number of the line most recently read.
func (d *LineDecoder) Line() int {
	return d.line
}

// Next decodes the next non-blank line.
func (d *LineDecoder) Next() (reducer.Action, error) {
	for d.scanner.Scan() {
		d.line++
		raw := bytes.TrimSpace(d.scanner.Bytes())
		if len(raw) == 0 {
			continue
		}
		return decodeLine(raw, d.line)
	}
	if err := d.scanner.Err(); err != nil {
		return reducer.Action{}, fmt.Errorf("read line %d: %w", d.line+1, err)
	}
	return reducer.Action{}, io.EOF
}

func decodeLine(raw []byte, line int) (reducer.Action, error) {
	if !gjson.ValidBytes(raw) {
		return reducer.Action{}, fmt.Errorf("line %d: %w", line, ErrInvalidJSON)
	}
	typ := gjson.GetBytes(raw, "type")
	if typ.Type != gjson.String || typ.Str == "" {
		return reducer.Action{}, fmt.Errorf("line %d: %w", line, ErrActionTypeRequired)
	}
	// The scanner reuses its buffer between lines.
	payload := append([]byte(nil), raw...)
	return reducer.Action{Type: reducer.Type(typ.Str), PayloadJSON: payload}, nil
}
