package models

// Status is the session state machine position.
type Status string

const (
	StatusAnonymous     Status = "anonymous"
	StatusChecking      Status = "checking"
	StatusAuthenticated Status = "authenticated"
)

// Session is the authentication state owned by the session service. Other
// components only ever see copies.
type Session struct {
	IsAuthenticated bool
	User            *Profile
	Token           string
	Loading         bool
	Error           string
}

// Status derives the state machine position from the flags.
func (s Session) Status() Status {
	switch {
	case s.Loading:
		return StatusChecking
	case s.IsAuthenticated:
		return StatusAuthenticated
	default:
		return StatusAnonymous
	}
}

// NewSession is the state at process start: anonymous and loading until the
// stored session has been checked.
func NewSession() Session {
	return Session{Loading: true}
}
