package btcrpc

// Auth describes how a client authenticates with the server.
//
// The zero value is equivalent to NoAuth().
type Auth struct {
	username string
	password string
	hasUser  bool
	cookie   *cookieRetriever
}

// NoAuth returns an Auth that sends no credentials.
func NoAuth() Auth {
	return Auth{}
}

// UserPass returns an Auth that uses HTTP basic authentication with the given
// username and password.
//
// The credentials are sent even if username is empty.
func UserPass(username, password string) Auth {
	return Auth{
		username: username,
		password: password,
		hasUser:  true,
	}
}

// CookieFile returns an Auth that uses HTTP basic authentication with the
// credentials stored in a Bitcoin Core ".cookie" file.
//
// The file is not read until credentials are first requested. It is checked
// for changes at most once every 30 seconds, as the node writes a new cookie
// each time it starts.
func CookieFile(path string) Auth {
	return Auth{
		cookie: newCookieRetriever(path),
	}
}

// Credentials returns the username and password to send with a request.
//
// ok is false if no credentials should be sent. err is non-nil if the
// credentials are stored in a file that can not be read.
func (a Auth) Credentials() (username, password string, ok bool, err error) {
	if a.cookie != nil {
		username, password, err = a.cookie.Retrieve()
		return username, password, err == nil, err
	}

	return a.username, a.password, a.hasUser, nil
}
