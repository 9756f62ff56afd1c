package btcrpc

import (
	"errors"
	"os"
	"strings"
	"sync"
	"time"
)

// cookieCheckInterval is the minimum amount of time between checks for a
// modified cookie file.
const cookieCheckInterval = 30 * time.Second

// readCookieFile reads the "username:password" pair from the file at path.
func readCookieFile(path string) (username, password string, err error) {
	b, err := os.ReadFile(path)
	if err != nil {
		return "", "", err
	}

	s := strings.TrimSpace(string(b))
	username, password, ok := strings.Cut(s, ":")
	if !ok {
		return "", "", errors.New("malformed cookie file")
	}

	return username, password, nil
}

// cookieRetriever caches the credentials read from a cookie file.
type cookieRetriever struct {
	path string
	now  func() time.Time

	m             sync.Mutex
	lastCheckTime time.Time
	lastModTime   time.Time
	username      string
	password      string
	err           error
}

func newCookieRetriever(path string) *cookieRetriever {
	return &cookieRetriever{
		path: path,
		now:  time.Now,
	}
}

// Retrieve returns the current credentials, re-reading the file if it has
// been modified since it was last read.
func (r *cookieRetriever) Retrieve() (username, password string, err error) {
	r.m.Lock()
	defer r.m.Unlock()

	now := r.now()
	if !r.lastCheckTime.IsZero() && now.Before(r.lastCheckTime.Add(cookieCheckInterval)) {
		return r.username, r.password, r.err
	}

	r.lastCheckTime = now

	st, err := os.Stat(r.path)
	if err != nil {
		// Forget the old modification time so that the file is re-read once
		// it appears again.
		r.lastModTime = time.Time{}
		r.err = err
		return "", "", err
	}

	if modTime := st.ModTime(); !modTime.Equal(r.lastModTime) {
		r.lastModTime = modTime
		r.username, r.password, r.err = readCookieFile(r.path)
	}

	return r.username, r.password, r.err
}
