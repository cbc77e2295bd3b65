// Package trace records the commands a presenter sends to its view.
package trace

import (
	"fmt"
	"strings"
	"time"
)

// None marks an argument the command does not carry.
const None = -1

// Command names, one per view method.
const (
	TransitionPager                   = "transitionPager"
	TransitionForwardEnter            = "transitionForwardEnter"
	TransitionForwardEnterAfterDelay  = "transitionForwardEnterAfterDelay"
	TransitionBackwardEnter           = "transitionBackwardEnter"
	TransitionBackwardEnterAfterDelay = "transitionBackwardEnterAfterDelay"
	TransitionForwardExit             = "transitionForwardExit"
	TransitionBackwardExit            = "transitionBackwardExit"
	TransitionBackgroundForward       = "transitionBackgroundForward"
	TransitionBackgroundBackward      = "transitionBackgroundBackward"
	NotifyPageFirstEnter              = "notifyPageFirstEnter"
	NotifyPageEnter                   = "notifyPageEnter"
	NotifyPageFirstEnterAfterDelay    = "notifyPageFirstEnterAfterDelay"
	NotifyPageEnterAfterDelay         = "notifyPageEnterAfterDelay"
	NotifyPageShowFirstFully          = "notifyPageShowFirstFully"
	NotifyPageShowOtherFully          = "notifyPageShowOtherFully"
	NotifyTransitionEnterFinished     = "notifyTransitionEnterFinished"
	NotifyForwardExitFlowFinished     = "notifyTransitionForwardExitFlowFinished"
	NotifyBackwardExitFlowFinished    = "notifyTransitionBackwardExitFlowFinished"
)

// Command is a single view command.
type Command struct {
	// Seq is the 1-based position of the command in its recording.
	Seq   int
	Name  string
	Page  int
	Image int
	Delay time.Duration
}

// PageCommand builds a command addressed to page.
func PageCommand(name string, page int) Command {
	return Command{Name: name, Page: page, Image: None}
}

// DelayedPageCommand builds a command addressed to page that runs after delay.
func DelayedPageCommand(name string, page int, delay time.Duration) Command {
	return Command{Name: name, Page: page, Image: None, Delay: delay}
}

// ImageCommand builds a background command addressed to image.
func ImageCommand(name string, image int) Command {
	return Command{Name: name, Page: None, Image: image}
}

// Notification builds a command without arguments.
func Notification(name string) Command {
	return Command{Name: name, Page: None, Image: None}
}

// String renders the command as name(args), e.g. "transitionForwardEnterAfterDelay(1, 100ms)".
func (c Command) String() string {
	var args []string
	if c.Page != None {
		args = append(args, fmt.Sprint(c.Page))
	}
	if c.Image != None {
		args = append(args, fmt.Sprint(c.Image))
	}
	if c.Delay > 0 || strings.HasSuffix(c.Name, "AfterDelay") {
		args = append(args, c.Delay.String())
	}
	return c.Name + "(" + strings.Join(args, ", ") + ")"
}

// Strings renders every command.
func Strings(cmds []Command) []string {
	out := make([]string, len(cmds))
	for i, c := range cmds {
		out[i] = c.String()
	}
	return out
}
