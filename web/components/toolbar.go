package components

import "github.com/a-h/templ"

const (
	toolbarClasses      = "flex flex-col gap-2 rounded-2xl bg-gray-900 p-2"
	toolButtonClasses   = "flex h-12 w-12 items-center justify-center rounded-xl text-xl transition-transform duration-150"
	toolActiveClasses   = "bg-orange-500 text-white shadow-lg"
	toolInactiveClasses = "bg-gray-800 text-gray-400"
	toolDisabledClasses = "opacity-40 cursor-not-allowed"
	toolIconClasses     = "pointer-events-none"
	fallbackIconClasses = "text-sm font-bold"
)

// ToolFormField is the form field an enabled button submits its ID in.
const ToolFormField = "tool"

// Toolbar renders tools as a vertical list of buttons with the default
// hover/press feedback.
func Toolbar(tools []ToolDescriptor) templ.Component {
	return ToolbarWithFeedback(tools, DefaultFeedback)
}

// ToolbarWithFeedback is Toolbar with a custom feedback styler. A nil styler
// disables hover and press effects.
//
// Enabled buttons submit their ID in the "tool" form field, so the toolbar is
// expected to be placed inside a form whose handler calls Activate.
func ToolbarWithFeedback(tools []ToolDescriptor, styler FeedbackStyler) templ.Component {
	return toolbar(tools, styler)
}

// feedbackClasses lists the hover and press classes of an enabled button.
func feedbackClasses(tool *ToolDescriptor, styler FeedbackStyler) []string {
	if tool.Disabled || styler == nil {
		return nil
	}

	result := make([]string, 0, 2)

	for _, f := range []Feedback{Emphasize, DeEmphasize} {
		if c := styler.FeedbackClasses(f); c != "" {
			result = append(result, c)
		}
	}

	return result
}

// Activate resolves a user activation of the button with the given id. When
// several descriptors share the id the last enabled one wins. Disabled
// descriptors never fire. The return value reports whether a callback ran.
func Activate(tools []ToolDescriptor, id string) bool {
	for i := len(tools) - 1; i >= 0; i-- {
		if tools[i].ID != id || tools[i].Disabled {
			continue
		}

		if tools[i].OnClick == nil {
			return false
		}

		tools[i].OnClick()

		return true
	}

	return false
}
