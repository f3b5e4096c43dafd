package session

import (
	"was/internal/http/request"
	"was/internal/http/response"
)

const (
	CookieName = "SESSIONID"

	LoginedKey   = "logined"
	LoginedTrue  = "true"
	LoginedFalse = "false"
)

// Current resolves the session named by the request's session cookie. A missing
// cookie or an unknown token both report false.
func Current(store Store, req request.Request) (Session, bool) {
	id, ok := req.Cookie(CookieName)
	if !ok || id == "" {
		return nil, false
	}

	sess, err := store.Get(id)
	if err != nil {
		return nil, false
	}
	return sess, true
}

// Establish reuses the request's session when it is still stored and creates
// one otherwise; either way the outcome carries the session cookie.
func Establish(store Store, req request.Request, out *response.Outcome) (Session, error) {
	if sess, ok := Current(store, req); ok {
		out.SetCookie(CookieName, sess.ID())
		return sess, nil
	}

	id, err := store.Create()
	if err != nil {
		return nil, err
	}

	sess, err := store.Get(id)
	if err != nil {
		return nil, err
	}

	out.SetCookie(CookieName, id)
	return sess, nil
}

func IsLogined(store Store, req request.Request) bool {
	sess, ok := Current(store, req)
	if !ok {
		return false
	}
	v, _ := sess.Attribute(LoginedKey)
	return v == LoginedTrue
}
