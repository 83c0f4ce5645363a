package utils

import "time"

// SessionData is the minimal session view the middleware needs to gate a
// request. Fetching is abstracted behind middleware.SessionFetcher so the
// middleware doesn't depend on the auth package.
type SessionData struct {
	Username  string
	ExpiresAt time.Time
}
