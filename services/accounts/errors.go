package accounts

import "errors"

var (
	// ErrInvalidToken is returned when a presented bearer token matches no credential
	ErrInvalidToken = errors.New("invalid token")
	// ErrBadCredentials is returned on a failed username/password check.
	// Deliberately silent about which field was wrong.
	ErrBadCredentials = errors.New("invalid username or password")
	// ErrDuplicateIdentity is returned when registering an existing username
	ErrDuplicateIdentity = errors.New("username already exists")
	// ErrSessionRequired is returned when a call needs an acting identity and none was presented
	ErrSessionRequired = errors.New("login required")
	// ErrNoDashboardData is returned when no dashboard result set yields any rows
	ErrNoDashboardData = errors.New("no dashboard data found")
	// ErrDashboardUnavailable is returned when the dashboard backend keeps failing past the retry budget
	ErrDashboardUnavailable = errors.New("dashboard backend unavailable")
)
