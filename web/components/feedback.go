package components

import "fmt"

// Feedback is a transient visual reaction of a button to the pointer.
type Feedback int

const (
	// Emphasize is requested while the pointer hovers an enabled button.
	Emphasize Feedback = iota
	// DeEmphasize is requested while an enabled button is pressed.
	DeEmphasize
)

func (f Feedback) String() string {
	switch f {
	case Emphasize:
		return "emphasize"
	case DeEmphasize:
		return "de-emphasize"
	default:
		return fmt.Sprintf("feedback(%d)", int(f))
	}
}

// FeedbackStyler translates a feedback intent into the classes understood by
// whatever performs the animation on the page. An empty string means no effect.
type FeedbackStyler interface {
	FeedbackClasses(f Feedback) string
}

// ScaleFeedback scales the button up on hover and down on press by Percent.
// Classes follow the Tailwind scale utilities.
type ScaleFeedback struct {
	Percent int
}

func (s ScaleFeedback) FeedbackClasses(f Feedback) string {
	if s.Percent <= 0 {
		return ""
	}

	switch f {
	case Emphasize:
		return fmt.Sprintf("hover:scale-%d", 100+s.Percent)
	case DeEmphasize:
		return fmt.Sprintf("active:scale-%d", 100-s.Percent)
	default:
		return ""
	}
}

var DefaultFeedback FeedbackStyler = ScaleFeedback{Percent: 5}
