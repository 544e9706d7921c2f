package game

import (
	"io"
	"log/slog"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/phrazzld/memory-cards/internal/board"
	"github.com/phrazzld/memory-cards/internal/domain"
	"github.com/phrazzld/memory-cards/internal/domain/catalog"
	"github.com/phrazzld/memory-cards/internal/effect"
	"github.com/phrazzld/memory-cards/internal/effect/effecttest"
	"github.com/phrazzld/memory-cards/internal/events"
	"github.com/phrazzld/memory-cards/internal/platform/durationfmt"
	"github.com/phrazzld/memory-cards/internal/platform/idgen"
)

type fixture struct {
	t *testing.T
	r *Reducer
	s *State
	h *effecttest.Harness
}

func newFixture(t *testing.T) *fixture {
	t.Helper()
	logger := slog.New(slog.NewTextHandler(io.Discard, nil))
	br := board.NewReducer(
		catalog.NewFixtureCatalog(),
		idgen.Incrementing(),
		durationfmt.Live(),
		board.DefaultTimings(),
		logger,
	)
	r := NewReducer(br, logger)
	s := r.New(domain.DefaultGameOptions())
	f := &fixture{t: t, r: r, s: s}
	f.h = effecttest.New(func(action any) []effect.Effect {
		return r.Reduce(s, action.(Action))
	})
	return f
}

func (f *fixture) start(mode domain.Mode, difficulty domain.Difficulty) {
	f.h.Send(StartGameRequested{Mode: mode, Style: domain.StyleNumbers, Difficulty: difficulty})
	require.NotNil(f.t, f.s.Board)
}

func (f *fixture) tapIndex(i int) {
	f.h.Send(Board{Action: board.CardTapped{ID: f.s.Board.Cards[i].ID}})
}

func (f *fixture) completeLevel() {
	f.t.Helper()
	for i := 0; i < len(f.s.Board.Cards); i += 2 {
		f.tapIndex(i)
		f.tapIndex(i + 1)
		f.h.Advance(time.Second)
	}
	require.NotNil(f.t, f.s.Board.Summary)
}

func (f *fixture) choose(choice domain.SummaryChoice) {
	f.h.Send(Board{Action: board.SummaryActionSelected{Choice: choice}})
}

func TestNewGame(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	assert.Equal(t, PhaseSelectingOptions, f.s.Phase())
	assert.Equal(t, domain.DefaultGameOptions(), f.s.Options)
	assert.Nil(t, f.s.Board)
	assert.Equal(t, domain.AllDifficulties(), f.s.Difficulties)

	invalid := f.r.New(domain.GameOptions{Mode: "default"})
	assert.Equal(t, domain.DefaultGameOptions(), invalid.Options)
}

func TestSelectOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)

	f.h.Send(SelectMode{Mode: domain.ModeTimed})
	f.h.Send(SelectStyle{Style: domain.StyleLetters})
	f.h.Send(SelectDifficulty{Difficulty: domain.DifficultyHard})
	f.h.Send(SelectDifficulty{Difficulty: "impossible"})

	assert.Equal(t, domain.GameOptions{
		Mode:       domain.ModeTimed,
		Style:      domain.StyleLetters,
		Difficulty: domain.DifficultyHard,
	}, f.s.Options)
}

func TestStartGameUsesInitialLevel(t *testing.T) {
	t.Parallel()

	testCases := []struct {
		difficulty domain.Difficulty
		level      domain.LevelType
	}{
		{domain.DifficultyEasy, domain.LevelOne},
		{domain.DifficultyMedium, domain.LevelThree},
		{domain.DifficultyHard, domain.LevelFour},
	}

	for _, tc := range testCases {
		t.Run(string(tc.difficulty), func(t *testing.T) {
			t.Parallel()
			f := newFixture(t)
			f.start(domain.ModeTimed, tc.difficulty)

			assert.Equal(t, PhaseInLevel, f.s.Phase())
			assert.Equal(t, domain.NewLevel(tc.level), f.s.Board.Level)
			assert.Equal(t, tc.difficulty, f.s.Options.Difficulty)
			assert.Equal(t, domain.ModeTimed, f.s.Board.Mode)
		})
	}
}

func TestStartIgnoredWhileInLevel(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.start(domain.ModePractice, domain.DifficultyEasy)
	session := f.s.Board.SessionID

	f.h.Send(StartGameRequested{Mode: domain.ModeTimed, Style: domain.StyleLetters, Difficulty: domain.DifficultyHard})
	f.h.Send(SelectMode{Mode: domain.ModeTimed})

	assert.Equal(t, session, f.s.Board.SessionID)
	assert.Equal(t, domain.ModePractice, f.s.Options.Mode)
}

func TestStartWithInvalidOptionsIsIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.h.Send(StartGameRequested{Mode: domain.ModeTimed, Style: "emoji", Difficulty: domain.DifficultyEasy})

	assert.Nil(t, f.s.Board)
	assert.Equal(t, PhaseSelectingOptions, f.s.Phase())
}

func TestBoardActionWithoutBoardIsIgnored(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	assert.Empty(t, f.r.Reduce(f.s, Board{Action: board.CardTapped{ID: idgen.Nth(0)}}))
	assert.Empty(t, f.r.Reduce(f.s, QuitRequested{}))
}

func TestFullLevelFlow(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.start(domain.ModeTimed, domain.DifficultyEasy)

	f.completeLevel()
	assert.Equal(t, PhaseLevelSummary, f.s.Phase())
	assert.Equal(t, domain.NewLevel(domain.LevelOne), f.s.Board.Summary.CompletedLevel)

	f.choose(domain.ChoiceNextLevel)
	assert.Equal(t, PhaseInLevel, f.s.Phase())
	assert.Equal(t, domain.LevelTwo, f.s.Board.Level.Type)

	f.completeLevel()
	f.choose(domain.ChoiceRetry)
	assert.Equal(t, PhaseInLevel, f.s.Phase())
	assert.Equal(t, domain.LevelTwo, f.s.Board.Level.Type)

	f.completeLevel()
	f.choose(domain.ChoiceFinish)
	assert.Equal(t, PhaseSelectingOptions, f.s.Phase())
	assert.Nil(t, f.s.Board)
	assert.Equal(t, domain.ModeTimed, f.s.Options.Mode, "options are kept as defaults")
	assert.Empty(t, f.h.Pending())

	emitted := f.h.Emitted()
	require.Len(t, emitted, 4)
	for _, e := range emitted[:3] {
		assert.Equal(t, events.TypeLevelCompleted, e.Type)
	}
	assert.Equal(t, events.TypeGameFinished, emitted[3].Type)
	assert.Equal(t, FinishedPayload{
		Level:      domain.NewLevel(domain.LevelTwo),
		Mode:       domain.ModeTimed,
		Difficulty: domain.DifficultyEasy,
		Reason:     ReasonFinished,
	}, emitted[3].Payload)
}

func TestExhaustedProgressionReturnsToOptions(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.h.Send(SelectDifficulty{Difficulty: domain.DifficultyEasy})
	f.start(domain.ModePractice, domain.DifficultyEasy)

	for tier := domain.LevelOne; tier < domain.LevelFour; tier++ {
		f.completeLevel()
		f.choose(domain.ChoiceNextLevel)
	}
	require.Equal(t, domain.LevelFour, f.s.Board.Level.Type)
	f.completeLevel()
	assert.False(t, f.s.Board.Summary.HasNextLevel)

	f.choose(domain.ChoiceNextLevel)
	assert.Equal(t, PhaseSelectingOptions, f.s.Phase())
	assert.Nil(t, f.s.Board)
}

func TestQuitCancelsBoardEffects(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.start(domain.ModeTimed, domain.DifficultyEasy)

	f.tapIndex(0)
	f.tapIndex(2)
	require.True(t, f.h.IsPending(board.EffectTimer))
	require.True(t, f.h.IsPending(board.EffectMismatch))

	f.h.Send(QuitRequested{})

	assert.Equal(t, PhaseSelectingOptions, f.s.Phase())
	assert.Nil(t, f.s.Board)
	assert.Empty(t, f.h.Pending(), "no timers survive the board")

	emitted := f.h.Emitted()
	require.Len(t, emitted, 1)
	payload := emitted[0].Payload.(FinishedPayload)
	assert.Equal(t, ReasonQuit, payload.Reason)

	// The game can be played again
	f.start(domain.ModePractice, domain.DifficultyMedium)
	assert.Equal(t, PhaseInLevel, f.s.Phase())
}

func TestBoardEffectsAreLifted(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	f.start(domain.ModePractice, domain.DifficultyEasy)

	f.r.Reduce(f.s, Board{Action: board.CardTapped{ID: f.s.Board.Cards[0].ID}})
	effects := f.r.Reduce(f.s, Board{Action: board.CardTapped{ID: f.s.Board.Cards[1].ID}})

	require.Len(t, effects, 1)
	delay, ok := effects[0].(effect.Delay)
	require.True(t, ok)
	assert.Equal(t, board.EffectShowMatch, delay.ID)
	lifted, ok := delay.Action.(Board)
	require.True(t, ok)
	assert.IsType(t, board.MatchShown{}, lifted.Action)
}

func TestView(t *testing.T) {
	t.Parallel()

	f := newFixture(t)
	v := f.r.View(f.s)
	assert.Equal(t, PhaseSelectingOptions, v.Phase)
	assert.Nil(t, v.Board)
	assert.Len(t, v.Styles, 3)

	f.start(domain.ModeTimed, domain.DifficultyEasy)
	v = f.r.View(f.s)
	require.NotNil(t, v.Board)
	assert.Equal(t, PhaseInLevel, v.Phase)
	assert.Len(t, v.Board.Cards, 4)
	assert.Equal(t, "0:00", v.Board.Timer)
}
