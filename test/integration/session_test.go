package integration

import (
	"bytes"
	"context"
	"strings"
	"testing"

	"jokebot/internal/application/port/input"
	"jokebot/internal/application/service"
	"jokebot/internal/domain/entity"
	"jokebot/internal/infrastructure/jokes/static"
	"jokebot/internal/infrastructure/logger"
	"jokebot/internal/infrastructure/userinteraction"
	"jokebot/internal/usecase/delivery"
	"jokebot/internal/usecase/session"

	"github.com/fatih/color"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func init() {
	color.NoColor = true
}

// newSessionStack wires the real console UI, static source, registry and
// session usecase around a scripted stdin.
func newSessionStack(t *testing.T, stdin string) (input.SessionRunner, *bytes.Buffer) {
	t.Helper()

	log := logger.NewNopLogger()

	staticSource, err := static.NewStaticSource(log)
	require.NoError(t, err)

	registry := service.NewSourceRegistry()
	registry.Register(staticSource)

	var out bytes.Buffer
	ui := userinteraction.NewConsoleUserInteractionWith(strings.NewReader(stdin), &out)

	runner := session.New(delivery.New(registry, log), ui, log, session.Config{
		Source: entity.SourceStatic,
	})
	return runner, &out
}

func TestSession_FullTranscript(t *testing.T) {
	runner, out := newSessionStack(t, "n\nn\nq\n")

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.JokesHeard)
	assert.Equal(t, entity.CategoryNeutral, summary.FinalCategory)
	assert.NotEmpty(t, summary.ID)

	transcript := out.String()
	assert.Contains(t, transcript, "WELCOME TO THE JOKE BOT!")
	assert.Contains(t, transcript, "🎭 Menu | Category: NEUTRAL | Jokes: 0")
	assert.Contains(t, transcript, "🎭 Menu | Category: NEUTRAL | Jokes: 2")
	assert.Equal(t, 2, strings.Count(transcript, "😂"), "both jokes must be shown")
	assert.Contains(t, transcript, "You enjoyed 2 jokes during this session!")
	assert.Contains(t, transcript, "Final category: NEUTRAL")
}

func TestSession_CategoryChangeFlowsIntoJokes(t *testing.T) {
	// n: one neutral joke, c+1: switch to chuck, n: one chuck joke, q.
	runner, out := newSessionStack(t, "n\nc\n1\nn\nq\n")

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 2, summary.JokesHeard)
	assert.Equal(t, entity.CategoryChuck, summary.FinalCategory)

	transcript := out.String()
	assert.Contains(t, transcript, "Select category [0=neutral, 1=chuck, 2=all]:")
	assert.Contains(t, transcript, "🎭 Menu | Category: CHUCK | Jokes: 1")
	assert.Contains(t, transcript, "Final category: CHUCK")
}

func TestSession_ClosedStdinQuitsCleanly(t *testing.T) {
	runner, out := newSessionStack(t, "n\n")

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Equal(t, 1, summary.JokesHeard)
	assert.Contains(t, out.String(), "GOODBYE!")
}

func TestSession_UnknownChoiceEndsSession(t *testing.T) {
	runner, out := newSessionStack(t, "x\n")

	summary, err := runner.Run(context.Background())
	require.NoError(t, err)

	assert.Zero(t, summary.JokesHeard)
	assert.Contains(t, out.String(), "You enjoyed 0 jokes during this session!")
}
