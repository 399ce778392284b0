package web

// StateKind is one of the four states the result region can be in.
type StateKind string

const (
	StateIdle    StateKind = "idle"
	StateLoading StateKind = "loading"
	StateSuccess StateKind = "success"
	StateError   StateKind = "error"
)

// ViewState is idle | loading | success(text) | error(text). Text is only
// meaningful for success and error, so loading and error can never be shown
// together.
type ViewState struct {
	Kind StateKind
	Text string
}

func Idle() ViewState { return ViewState{Kind: StateIdle} }

// Loading is only entered client-side by app.js while a request is in
// flight. The server never renders it; the template handles it so both
// sides agree on the markup for every state.
func Loading() ViewState { return ViewState{Kind: StateLoading} }

func Success(text string) ViewState { return ViewState{Kind: StateSuccess, Text: text} }

func Failure(message string) ViewState { return ViewState{Kind: StateError, Text: message} }

func (v ViewState) IsLoading() bool { return v.Kind == StateLoading }
func (v ViewState) IsSuccess() bool { return v.Kind == StateSuccess }
func (v ViewState) IsError() bool { return v.Kind == StateError }

// ShowResult reports whether the result region is visible.
func (v ViewState) ShowResult() bool { return v.IsSuccess() || v.IsError() }

// FormValues echoes the submitted fields back into the form.
type FormValues struct {
	Product string
	Target  string
	Goal    string
}

type pageData struct {
	State   ViewState
	Form    FormValues
	Version string
}
