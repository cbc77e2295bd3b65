package journal

import (
	"context"
	"path/filepath"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/cristianoliveira/animatedpager/internal/trace"
)

func newTestJournal(t *testing.T) *Journal {
	t.Helper()

	j, err := Open(filepath.Join(t.TempDir(), "nested", "journal.db"))
	require.NoError(t, err)
	t.Cleanup(func() {
		require.NoError(t, j.Close())
	})

	clock := time.Date(2026, 1, 2, 3, 4, 5, 0, time.UTC)
	j.now = func() time.Time {
		clock = clock.Add(time.Minute)
		return clock
	}
	return j
}

func TestOpenRejectsEmptyPath(t *testing.T) {
	_, err := Open("  ")
	require.Error(t, err)
}

func TestCloseNil(t *testing.T) {
	var j *Journal
	assert.NoError(t, j.Close())
}

func TestRecordAndReadCommands(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	w, err := j.StartSession(ctx, SessionInfo{Name: "forward", Source: "play", PageCount: 4, ImageCount: 3})
	require.NoError(t, err)
	_, err = uuid.Parse(w.ID())
	require.NoError(t, err)

	rec := trace.NewRecorder(nil, trace.WithSink(w))
	p := slider.NewPresenter(rec, slider.Config{PageCount: 4, ImageCount: 3, EnterDelay: 100 * time.Millisecond})
	p.OnFirstScreenViewCreated()
	p.OnGoToPage(1, slider.ImageAt(1))
	p.OnFinishTransitionForwardsExit()

	cmds, err := j.Commands(ctx, w.ID())
	require.NoError(t, err)
	assert.Equal(t, rec.Commands(), cmds)
	assert.Equal(t, []string{
		"transitionPager(0)",
		"transitionForwardEnterAfterDelay(0, 100ms)",
		"notifyPageFirstEnterAfterDelay(0, 100ms)",
		"notifyPageEnterAfterDelay(0, 100ms)",
		"transitionForwardExit(0)",
		"transitionPager(1)",
		"transitionBackgroundForward(1)",
	}, trace.Strings(cmds))
}

func TestRecordDuplicateSequenceFails(t *testing.T) {
	j := newTestJournal(t)
	w, err := j.StartSession(context.Background(), SessionInfo{Name: "dup", Source: "test", PageCount: 1, ImageCount: 1})
	require.NoError(t, err)

	cmd := trace.PageCommand(trace.TransitionPager, 0)
	cmd.Seq = 1
	require.NoError(t, w.Record(cmd))
	assert.Error(t, w.Record(cmd))
}

func TestListSessionsNewestFirst(t *testing.T) {
	j := newTestJournal(t)
	ctx := context.Background()

	first, err := j.StartSession(ctx, SessionInfo{Name: "first", Source: "play", PageCount: 4, ImageCount: 3})
	require.NoError(t, err)
	cmd := trace.Notification(trace.NotifyTransitionEnterFinished)
	cmd.Seq = 1
	require.NoError(t, first.Record(cmd))

	second, err := j.StartSession(ctx, SessionInfo{Name: "second", Source: "demo", PageCount: 5, ImageCount: 2})
	require.NoError(t, err)

	sessions, err := j.ListSessions(ctx, 0)
	require.NoError(t, err)
	require.Len(t, sessions, 2)
	assert.Equal(t, second.ID(), sessions[0].ID)
	assert.Equal(t, "demo", sessions[0].Source)
	assert.Equal(t, 0, sessions[0].Commands)
	assert.Equal(t, first.ID(), sessions[1].ID)
	assert.Equal(t, 1, sessions[1].Commands)
	assert.Equal(t, time.Date(2026, 1, 2, 3, 5, 5, 0, time.UTC), sessions[1].StartedAt)

	limited, err := j.ListSessions(ctx, 1)
	require.NoError(t, err)
	require.Len(t, limited, 1)
	assert.Equal(t, "second", limited[0].Name)
}

func TestCommandsUnknownSession(t *testing.T) {
	j := newTestJournal(t)

	_, err := j.Commands(context.Background(), "missing")
	require.ErrorIs(t, err, ErrSessionNotFound)
}

func TestCommandsEmptySession(t *testing.T) {
	j := newTestJournal(t)
	w, err := j.StartSession(context.Background(), SessionInfo{Name: "empty", Source: "play", PageCount: 1, ImageCount: 1})
	require.NoError(t, err)

	cmds, err := j.Commands(context.Background(), w.ID())
	require.NoError(t, err)
	assert.Empty(t, cmds)
}

func TestRecordStopsWhenSessionContextIsDone(t *testing.T) {
	j := newTestJournal(t)
	ctx, cancel := context.WithCancel(context.Background())

	w, err := j.StartSession(ctx, SessionInfo{Name: "cancelled", Source: "demo", PageCount: 2, ImageCount: 1})
	require.NoError(t, err)
	first := trace.PageCommand(trace.TransitionPager, 0)
	first.Seq = 1
	require.NoError(t, w.Record(first))

	cancel()
	second := trace.PageCommand(trace.TransitionPager, 1)
	second.Seq = 2
	err = w.Record(second)
	require.ErrorIs(t, err, context.Canceled)

	cmds, err := j.Commands(context.Background(), w.ID())
	require.NoError(t, err)
	assert.Len(t, cmds, 1)
}
