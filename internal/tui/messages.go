package tui

import (
	"github.com/MKhiriev/go-contact-keeper/models"
	tea "github.com/charmbracelet/bubbletea"
)

// NavigateTo switches the root router to another page. Payload, when set,
// is delivered to the target page right after the switch.
type NavigateTo struct {
	Page    string
	Payload tea.Msg
}

// LoginResult finalises the login flow: on success the root model stores
// the user ID and quits the auth program.
type LoginResult struct {
	Err      error
	Username string
	UserID   int64
}

// RegisterResult reports the outcome of an async registration command.
type RegisterResult struct {
	Err      error
	Username string
}

// RegisterSuccessNotice is shown on the menu page after a successful
// registration.
type RegisterSuccessNotice struct {
	Username string
}

type uiStateMsg struct {
	state models.UIState
}

type snapshotsMsg struct {
	set models.SnapshotSet
}

type syncDoneMsg struct {
	err error
}

type fatalErrMsg struct {
	err error
}
