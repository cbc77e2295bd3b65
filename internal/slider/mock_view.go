package slider

import (
	"fmt"
	"strings"
	"time"

	"github.com/stretchr/testify/mock"
)

// MockView is a mock implementation of View for testing.
// It uses testify/mock so tests can set expectations and assert the exact
// order of commands through Sequence.
//
// Example usage:
//
//	view := NewMockView()
//	presenter := NewPresenter(view, cfg)
//	presenter.OnGoToPage(1, ImageAt(1))
//	assert.Equal(t, []string{"TransitionForwardExit(0)"}, view.Sequence())
type MockView struct {
	mock.Mock
}

// NewMockView returns a MockView that accepts every command.
func NewMockView() *MockView {
	m := new(MockView)
	for _, method := range []string{
		"TransitionPager", "TransitionForwardEnter", "TransitionBackwardEnter",
		"TransitionForwardExit", "TransitionBackwardExit",
		"TransitionBackgroundForward", "TransitionBackgroundBackward",
		"NotifyPageFirstEnter", "NotifyPageEnter",
		"NotifyPageShowFirstFully", "NotifyPageShowOtherFully",
	} {
		m.On(method, mock.Anything).Maybe()
	}
	for _, method := range []string{
		"TransitionForwardEnterAfterDelay", "TransitionBackwardEnterAfterDelay",
		"NotifyPageFirstEnterAfterDelay", "NotifyPageEnterAfterDelay",
	} {
		m.On(method, mock.Anything, mock.Anything).Maybe()
	}
	for _, method := range []string{
		"NotifyTransitionEnterFinished",
		"NotifyTransitionForwardExitFlowFinished",
		"NotifyTransitionBackwardExitFlowFinished",
	} {
		m.On(method).Maybe()
	}
	return m
}

// Sequence renders every recorded call as "Method(arg, ...)" in call order.
func (m *MockView) Sequence() []string {
	calls := make([]string, 0, len(m.Calls))
	for _, call := range m.Calls {
		args := make([]string, len(call.Arguments))
		for i, arg := range call.Arguments {
			args[i] = fmt.Sprint(arg)
		}
		calls = append(calls, fmt.Sprintf("%s(%s)", call.Method, strings.Join(args, ", ")))
	}
	return calls
}

// Reset forgets the recorded calls but keeps the expectations.
func (m *MockView) Reset() {
	m.Calls = nil
}

func (m *MockView) TransitionPager(page int)        { m.Called(page) }
func (m *MockView) TransitionForwardEnter(page int) { m.Called(page) }
func (m *MockView) TransitionForwardEnterAfterDelay(page int, delay time.Duration) {
	m.Called(page, delay)
}
func (m *MockView) TransitionBackwardEnter(page int) { m.Called(page) }
func (m *MockView) TransitionBackwardEnterAfterDelay(page int, delay time.Duration) {
	m.Called(page, delay)
}
func (m *MockView) TransitionForwardExit(page int)         { m.Called(page) }
func (m *MockView) TransitionBackwardExit(page int)        { m.Called(page) }
func (m *MockView) TransitionBackgroundForward(image int)  { m.Called(image) }
func (m *MockView) TransitionBackgroundBackward(image int) { m.Called(image) }
func (m *MockView) NotifyPageFirstEnter(page int)          { m.Called(page) }
func (m *MockView) NotifyPageEnter(page int)               { m.Called(page) }
func (m *MockView) NotifyPageFirstEnterAfterDelay(page int, delay time.Duration) {
	m.Called(page, delay)
}
func (m *MockView) NotifyPageEnterAfterDelay(page int, delay time.Duration) {
	m.Called(page, delay)
}
func (m *MockView) NotifyPageShowFirstFully(page int)        { m.Called(page) }
func (m *MockView) NotifyPageShowOtherFully(page int)        { m.Called(page) }
func (m *MockView) NotifyTransitionEnterFinished()           { m.Called() }
func (m *MockView) NotifyTransitionForwardExitFlowFinished() { m.Called() }
func (m *MockView) NotifyTransitionBackwardExitFlowFinished() {
	m.Called()
}
