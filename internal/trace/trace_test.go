package trace

import (
	"bytes"
	"errors"
	"testing"
	"time"

	"github.com/cristianoliveira/animatedpager/internal/logging"
	"github.com/cristianoliveira/animatedpager/internal/slider"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestCommandString(t *testing.T) {
	tests := []struct {
		cmd  Command
		want string
	}{
		{PageCommand(TransitionForwardExit, 0), "transitionForwardExit(0)"},
		{DelayedPageCommand(TransitionForwardEnterAfterDelay, 1, 100*time.Millisecond), "transitionForwardEnterAfterDelay(1, 100ms)"},
		{DelayedPageCommand(NotifyPageEnterAfterDelay, 2, 0), "notifyPageEnterAfterDelay(2, 0s)"},
		{ImageCommand(TransitionBackgroundBackward, 1), "transitionBackgroundBackward(1)"},
		{Notification(NotifyTransitionEnterFinished), "notifyTransitionEnterFinished()"},
	}

	for _, tt := range tests {
		t.Run(tt.want, func(t *testing.T) {
			assert.Equal(t, tt.want, tt.cmd.String())
		})
	}
}

func TestRecorderRecordsAndForwards(t *testing.T) {
	next := slider.NewMockView()
	var pushed []Command
	r := NewRecorder(next, WithSink(SinkFunc(func(cmd Command) error {
		pushed = append(pushed, cmd)
		return nil
	})))

	p := slider.NewPresenter(r, slider.Config{PageCount: 3, ImageCount: 2, EnterDelay: 100 * time.Millisecond})
	p.OnFirstScreenViewCreated()
	p.OnFinishTransitionEnter()
	p.OnGoToPage(1, slider.ImageAt(1))
	p.OnFinishTransitionForwardsExit()
	p.OnBackgroundAnimationEnd()
	p.OnFinishTransitionEnter()

	want := []string{
		"transitionPager(0)",
		"transitionForwardEnterAfterDelay(0, 100ms)",
		"notifyPageFirstEnterAfterDelay(0, 100ms)",
		"notifyPageEnterAfterDelay(0, 100ms)",
		"notifyPageShowFirstFully(0)",
		"notifyTransitionEnterFinished()",
		"transitionForwardExit(0)",
		"transitionPager(1)",
		"transitionBackgroundForward(1)",
		"transitionForwardEnter(1)",
		"notifyPageFirstEnter(1)",
		"notifyPageEnter(1)",
		"notifyPageShowFirstFully(1)",
		"notifyTransitionEnterFinished()",
	}
	cmds := r.Commands()
	assert.Equal(t, want, Strings(cmds))
	assert.Equal(t, len(want), r.Len())
	assert.Equal(t, cmds, pushed)
	for i, c := range cmds {
		assert.Equal(t, i+1, c.Seq)
	}
	assert.Len(t, next.Sequence(), len(want), "every command is forwarded")
}

func TestRecorderWithoutNextOnlyRecords(t *testing.T) {
	r := NewRecorder(nil)

	r.TransitionBackwardExit(2)
	r.NotifyTransitionBackwardExitFlowFinished()

	assert.Equal(t, []string{
		"transitionBackwardExit(2)",
		"notifyTransitionBackwardExitFlowFinished()",
	}, Strings(r.Commands()))
}

func TestRecorderLogsSinkErrors(t *testing.T) {
	var buf bytes.Buffer
	cfg := logging.DefaultConfig()
	cfg.Enabled = true

	failing := SinkFunc(func(Command) error { return errors.New("disk full") })
	var second []Command
	r := NewRecorder(nil,
		WithLogger(logging.New(&buf, cfg)),
		WithSink(failing),
		WithSink(SinkFunc(func(c Command) error { second = append(second, c); return nil })),
	)

	r.NotifyPageShowOtherFully(1)

	require.Len(t, second, 1, "a failing sink does not stop the others")
	assert.Contains(t, buf.String(), "trace sink failed")
	assert.Contains(t, buf.String(), "disk full")
}
