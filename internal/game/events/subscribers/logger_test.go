package subscribers_test

import (
	"bytes"
	"encoding/json"
	"strings"
	"testing"
	"time"

	"github.com/rs/zerolog"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/core"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events"
	"github.com/mitchelldurbincs/RookBishopSimulator/internal/game/events/subscribers"
)

func decodeLines(t *testing.T, buf *bytes.Buffer) []map[string]interface{} {
	t.Helper()
	var out []map[string]interface{}
	for _, line := range strings.Split(strings.TrimSpace(buf.String()), "\n") {
		if line == "" {
			continue
		}
		var m map[string]interface{}
		require.NoError(t, json.Unmarshal([]byte(line), &m))
		out = append(out, m)
	}
	return out
}

func TestLoggerSubscriber(t *testing.T) {
	var buf bytes.Buffer
	logger := zerolog.New(&buf).With().Timestamp().Logger()

	logSub := subscribers.NewLoggerSubscriber("test-logger", logger, zerolog.InfoLevel)

	assert.Equal(t, "test-logger", logSub.ID())
	assert.True(t, logSub.InterestedIn(events.TypeSimulationStarted))
	assert.True(t, logSub.InterestedIn(events.TypeRookMoved))
	assert.True(t, logSub.InterestedIn("any.event.type"))
}

func TestLoggerSubscriberEventLogging(t *testing.T) {
	rook := core.NewRook(core.Position{Row: 7, Col: 7}, core.Black, nil)
	bishop := core.NewBishop(core.Position{Row: 5, Col: 2}, core.White, nil)

	testCases := []struct {
		name  string
		event events.Event
		check func(t *testing.T, logLine map[string]interface{})
	}{
		{
			name:  "SimulationStartedEvent",
			event: events.NewSimulationStartedEvent("sim-1", rook, bishop, 15),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Simulation event", logLine["message"])
				assert.Equal(t, rook.ID(), logLine["rook_id"])
				assert.Equal(t, float64(7), logLine["rook_row"])
				assert.Equal(t, float64(2), logLine["bishop_col"])
				assert.Equal(t, float64(15), logLine["max_turns"])
			},
		},
		{
			name:  "RookMovedEvent",
			event: events.NewRookMovedEvent("sim-1", 2, "RIGHT", 3, core.Position{Row: 7, Col: 7}, core.Position{Row: 7, Col: 2}),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(2), logLine["turn"])
				assert.Equal(t, "RIGHT", logLine["direction"])
				assert.Equal(t, float64(3), logLine["spaces"])
				assert.Equal(t, "h1", logLine["from"])
				assert.Equal(t, "c1", logLine["to"])
			},
		},
		{
			name:  "BoardRenderedEvent",
			event: events.NewBoardRenderedEvent("sim-1", 0, "- R"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, float64(0), logLine["turn"])
				assert.Equal(t, "- R", logLine["board"])
			},
		},
		{
			name:  "SimulationEndedEvent",
			event: events.NewSimulationEndedEvent("sim-1", bishop, 4, false, time.Second),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Bishop(W)", logLine["winner"])
				assert.Equal(t, float64(4), logLine["turns"])
				assert.Equal(t, false, logLine["turn_limit_reached"])
			},
		},
		{
			name:  "StateTransitionEvent",
			event: events.NewStateTransitionEvent("sim-1", "Running", "Ended", "winner found"),
			check: func(t *testing.T, logLine map[string]interface{}) {
				assert.Equal(t, "Running", logLine["from_phase"])
				assert.Equal(t, "Ended", logLine["to_phase"])
				assert.Equal(t, "winner found", logLine["reason"])
			},
		},
	}

	for _, tc := range testCases {
		t.Run(tc.name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("event-logger", zerolog.New(&buf), zerolog.InfoLevel)

			logSub.HandleEvent(tc.event)

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, "info", lines[0]["level"])
			assert.Equal(t, tc.event.Type(), lines[0]["event_type"])
			assert.Equal(t, "sim-1", lines[0]["simulation_id"])
			assert.Equal(t, "event_logger", lines[0]["subscriber"])
			tc.check(t, lines[0])
		})
	}
}

func TestLoggerSubscriberLevels(t *testing.T) {
	levels := map[zerolog.Level]string{
		zerolog.DebugLevel: "debug",
		zerolog.InfoLevel:  "info",
		zerolog.WarnLevel:  "warn",
		zerolog.ErrorLevel: "error",
	}

	for level, name := range levels {
		t.Run(name, func(t *testing.T) {
			var buf bytes.Buffer
			logSub := subscribers.NewLoggerSubscriber("lvl", zerolog.New(&buf), level)
			logSub.HandleEvent(events.NewBoardRenderedEvent("sim", 0, ""))

			lines := decodeLines(t, &buf)
			require.Len(t, lines, 1)
			assert.Equal(t, name, lines[0]["level"])
		})
	}
}

func TestLoggerSubscriberFilter(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("filtered", zerolog.New(&buf), zerolog.InfoLevel)

	logSub.SetEventFilter([]string{events.TypeSimulationEnded})
	assert.True(t, logSub.InterestedIn(events.TypeSimulationEnded))
	assert.False(t, logSub.InterestedIn(events.TypeRookMoved))

	logSub.SetEventFilter(nil)
	assert.True(t, logSub.InterestedIn(events.TypeRookMoved))
}

func TestLoggerSubscriberDevMode(t *testing.T) {
	var buf bytes.Buffer
	logSub := subscribers.NewLoggerSubscriber("dev", zerolog.New(&buf), zerolog.InfoLevel)
	logSub.SetDevMode(true)

	logSub.HandleEvent(events.NewBoardRenderedEvent("sim", 3, "- -"))

	lines := decodeLines(t, &buf)
	require.Len(t, lines, 1)
	data, ok := lines[0]["event_data"].(map[string]interface{})
	require.True(t, ok, "event_data should be embedded JSON")
	assert.Equal(t, float64(3), data["Turn"])
	assert.Equal(t, events.TypeBoardRendered, data["type"])
}

func TestLoggerSubscriberOnBus(t *testing.T) {
	var buf bytes.Buffer
	bus := events.NewEventBus()
	bus.Subscribe(subscribers.NewLoggerSubscriber("bus-logger", zerolog.New(&buf), zerolog.InfoLevel))

	bus.Publish(events.NewBoardRenderedEvent("sim", 0, ""))
	bus.Publish(events.NewBoardRenderedEvent("sim", 1, ""))

	assert.Len(t, decodeLines(t, &buf), 2)
}
