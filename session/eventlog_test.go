package session

import (
	"bytes"
	"strings"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestRecordReplayRoundTrip(t *testing.T) {
	events := []Event{
		SetAxiom{Axiom: "F"},
		PutRule{Trigger: "F", Replacement: "F+F--F+F"},
		SetIterations{Iterations: 1},
		SetSpeed{Speed: 2},
		ApplyAxiom{},
		Tick{ElapsedMillis: 100},
	}

	var buf bytes.Buffer
	recorder := NewRecorder(&buf)
	for _, event := range events {
		require.NoError(t, recorder.Record(event))
	}

	// Direct fold and replayed fold agree.
	direct := NewModel()
	for _, event := range events {
		direct = Apply(direct, event)
	}

	replayed, err := Replay(&buf, NewModel())
	require.NoError(t, err)

	assert.Equal(t, direct.Iterations, replayed.Iterations)
	assert.Equal(t, direct.Speed, replayed.Speed)
	assert.Equal(t, direct.Progress, replayed.Progress)
	assert.Equal(t, direct.Scene, replayed.Scene)
}

func TestRecordEmitsOneLinePerEvent(t *testing.T) {
	var buf bytes.Buffer
	recorder := NewRecorder(&buf)

	require.NoError(t, recorder.Record(SetAxiom{Axiom: "F"}))
	require.NoError(t, recorder.Record(Reset{}))

	lines := strings.Split(strings.TrimRight(buf.String(), "\n"), "\n")
	require.Len(t, lines, 2)
	assert.Contains(t, lines[0], `"kind":"set-axiom"`)
	assert.Contains(t, lines[1], `"kind":"reset"`)
}

func TestReplaySkipsBlankLines(t *testing.T) {
	log := `{"timestamp":"2026-01-01T00:00:00Z","kind":"set-axiom","payload":{"axiom":"F"}}

{"timestamp":"2026-01-01T00:00:01Z","kind":"set-iterations","payload":{"iterations":3}}
`
	model, err := Replay(strings.NewReader(log), NewModel())
	require.NoError(t, err)
	assert.Equal(t, 3, model.Iterations)
}

func TestReplayUnknownKind(t *testing.T) {
	log := `{"timestamp":"2026-01-01T00:00:00Z","kind":"warp-drive"}`

	_, err := Replay(strings.NewReader(log), NewModel())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "unknown event kind")
}

func TestReplayMalformedLineReportsNumber(t *testing.T) {
	log := `{"timestamp":"2026-01-01T00:00:00Z","kind":"reset"}
not json`

	_, err := Replay(strings.NewReader(log), NewModel())
	require.Error(t, err)
	assert.Contains(t, err.Error(), "line 2")
}
