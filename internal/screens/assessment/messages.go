package assessment

import (
	asmt "github.com/anand/fintype/internal/assessment"
	"github.com/anand/fintype/internal/profile"
	"github.com/anand/fintype/internal/vgla"
)

// sessionReadyMsg is sent when the session has been created or resumed.
type sessionReadyMsg struct {
	Session *asmt.Session
	Resumed bool
	Err     error
}

// responseSavedMsg is sent after a response event and session snapshot
// have been persisted.
type responseSavedMsg struct {
	Err error
}

// assessmentDoneMsg is sent when the final answer completed the battery and
// the result has been folded into the profile.
type assessmentDoneMsg struct {
	Result  *vgla.Result
	Profile *profile.Profile
	History []profile.HistoryRecord
	Err     error
}
