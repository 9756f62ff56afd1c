package btcrpc

import "time"

// SetCookieClock replaces the clock used to decide when a cookie file is
// checked for changes.
func SetCookieClock(a Auth, now func() time.Time) {
	a.cookie.now = now
}
