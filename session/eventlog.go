package session

import (
	"bufio"
	"encoding/json"
	"fmt"
	"io"
	"time"
)

// Record is one logged session event: the kind tag, its payload, and
// when it happened. Records serialize as JSONL, one object per line.
type Record struct {
	Timestamp time.Time       `json:"timestamp"`
	Kind      string          `json:"kind"`
	Payload   json.RawMessage `json:"payload,omitempty"`
}

// Recorder appends session events to a writer as JSONL.
type Recorder struct {
	w   io.Writer
	now func() time.Time
}

// NewRecorder creates a recorder writing to w.
func NewRecorder(w io.Writer) *Recorder {
	return &Recorder{w: w, now: time.Now}
}

// Record logs one event.
func (r *Recorder) Record(event Event) error {
	payload, err := json.Marshal(event)
	if err != nil {
		return fmt.Errorf("marshal %s payload: %w", event.Kind(), err)
	}
	record := Record{
		Timestamp: r.now().UTC(),
		Kind:      event.Kind(),
		Payload:   payload,
	}
	line, err := json.Marshal(record)
	if err != nil {
		return fmt.Errorf("marshal record: %w", err)
	}
	line = append(line, '\n')
	if _, err := r.w.Write(line); err != nil {
		return fmt.Errorf("write record: %w", err)
	}
	return nil
}

// decodeEvent turns a logged record back into a concrete event.
func decodeEvent(record Record) (Event, error) {
	var event Event
	switch record.Kind {
	case "set-axiom":
		event = &SetAxiom{}
	case "put-rule":
		event = &PutRule{}
	case "remove-rule":
		event = &RemoveRule{}
	case "assign-symbol":
		event = &AssignSymbol{}
	case "set-params":
		event = &SetParams{}
	case "set-iterations":
		event = &SetIterations{}
	case "set-speed":
		event = &SetSpeed{}
	case "apply-axiom":
		return ApplyAxiom{}, nil
	case "tick":
		event = &Tick{}
	case "reset":
		return Reset{}, nil
	default:
		return nil, fmt.Errorf("unknown event kind %q", record.Kind)
	}

	if len(record.Payload) > 0 {
		if err := json.Unmarshal(record.Payload, event); err != nil {
			return nil, fmt.Errorf("decode %s payload: %w", record.Kind, err)
		}
	}
	return deref(event), nil
}

// deref unwraps the pointer forms used for unmarshalling so replayed
// events compare equal to the originals.
func deref(event Event) Event {
	switch e := event.(type) {
	case *SetAxiom:
		return *e
	case *PutRule:
		return *e
	case *RemoveRule:
		return *e
	case *AssignSymbol:
		return *e
	case *SetParams:
		return *e
	case *SetIterations:
		return *e
	case *SetSpeed:
		return *e
	case *Tick:
		return *e
	default:
		return event
	}
}

// Replay reads a JSONL event log and folds the events over the initial
// model, reconstructing the session deterministically. Blank lines are
// skipped; a malformed line aborts the replay with its line number.
func Replay(r io.Reader, initial Model) (Model, error) {
	model := initial
	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 1024*1024)

	lineNum := 0
	for scanner.Scan() {
		lineNum++
		line := scanner.Bytes()
		if len(line) == 0 {
			continue
		}
		var record Record
		if err := json.Unmarshal(line, &record); err != nil {
			return model, fmt.Errorf("line %d: invalid JSON: %w", lineNum, err)
		}
		event, err := decodeEvent(record)
		if err != nil {
			return model, fmt.Errorf("line %d: %w", lineNum, err)
		}
		model = Apply(model, event)
	}
	if err := scanner.Err(); err != nil {
		return model, fmt.Errorf("read event log: %w", err)
	}
	return model, nil
}
