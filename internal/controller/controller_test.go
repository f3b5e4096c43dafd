package controller

import (
	"strconv"
	"strings"
	"testing"

	"was/internal/http/header"
	"was/internal/http/request"
	"was/internal/http/response"
	"was/internal/session"
	"was/internal/user"
	"was/types"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"golang.org/x/crypto/bcrypt"
)

func newRequest(t *testing.T, method, target, cookie, form string) request.Request {
	t.Helper()
	raw := method + " " + target + " HTTP/1.1\r\n"
	if cookie != "" {
		raw += "Cookie: " + cookie + "\r\n"
	}
	if form != "" {
		raw += "Content-Type: application/x-www-form-urlencoded\r\n"
		raw += "Content-Length: " + strconv.Itoa(len(form)) + "\r\n"
	}
	raw += "\r\n" + form

	msg, err := header.NewMessage([]byte(raw), 0)
	require.NoError(t, err)
	req, err := request.New(msg)
	require.NoError(t, err)
	return req
}

func newUsers(t *testing.T) user.Store {
	t.Helper()
	users := user.NewStore(bcrypt.MinCost)
	_, err := users.Add("ab", "secret", "Ab", "ab@example.com")
	require.NoError(t, err)
	return users
}

func loggedInCookie(t *testing.T, sessions session.Store) string {
	t.Helper()
	id, err := sessions.Create()
	require.NoError(t, err)
	sess, err := sessions.Get(id)
	require.NoError(t, err)
	sess.SetAttribute(session.LoginedKey, session.LoginedTrue)
	return session.CookieName + "=" + id
}

func TestMethods(t *testing.T) {
	h := Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			return response.Render("/ok.html")
		},
	}

	out := h.Handle(newRequest(t, "GET", "/x", "", ""))
	assert.Equal(t, response.KindRender, out.Kind())

	out = h.Handle(newRequest(t, "DELETE", "/x", "", ""))
	assert.Equal(t, response.KindError, out.Kind())
	assert.Equal(t, types.StatusMethodNotAllowed, out.Status())
}

func TestNotFound(t *testing.T) {
	out := NewNotFound().Handle(newRequest(t, "GET", "/does/not/exist", "", ""))
	assert.Equal(t, response.KindError, out.Kind())
	assert.Equal(t, types.StatusNotFound, out.Status())
}

func TestResource(t *testing.T) {
	out := NewResource().Handle(newRequest(t, "GET", "/css/styles.css?v=1", "", ""))
	assert.Equal(t, response.KindRender, out.Kind())
	assert.Equal(t, "/css/styles.css", out.View())

	out = NewResource().Handle(newRequest(t, "POST", "/index.html", "", ""))
	assert.Equal(t, types.StatusMethodNotAllowed, out.Status())
}

func TestUserCreate(t *testing.T) {
	tests := []struct {
		name         string
		method       string
		form         string
		expectKind   response.Kind
		expectTarget string
		expectStatus types.StatusCode
	}{
		{
			name:         "created",
			method:       "POST",
			form:         "userId=javajigi&password=password&name=JaeSung&email=javajigi%40slipp.net",
			expectKind:   response.KindRedirect,
			expectTarget: "/index.html",
			expectStatus: types.StatusFound,
		},
		{
			name:         "duplicate",
			method:       "POST",
			form:         "userId=ab&password=x",
			expectKind:   response.KindRedirect,
			expectTarget: "/user/form_failed.html",
			expectStatus: types.StatusFound,
		},
		{
			name:         "missing password",
			method:       "POST",
			form:         "userId=cd",
			expectKind:   response.KindError,
			expectStatus: types.StatusBadRequest,
		},
		{
			name:         "password too long",
			method:       "POST",
			form:         "userId=cd&password=" + strings.Repeat("a", 80),
			expectKind:   response.KindError,
			expectStatus: types.StatusBadRequest,
		},
		{
			name:         "wrong method",
			method:       "GET",
			expectKind:   response.KindError,
			expectStatus: types.StatusMethodNotAllowed,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			users := newUsers(t)
			out := NewUserCreate(users).Handle(newRequest(t, tt.method, "/user/create", "", tt.form))
			assert.Equal(t, tt.expectKind, out.Kind())
			assert.Equal(t, tt.expectStatus, out.Status())
			assert.Equal(t, tt.expectTarget, out.Target())
		})
	}

	users := newUsers(t)
	NewUserCreate(users).Handle(newRequest(t, "POST", "/user/create", "", "userId=javajigi&password=password&email=javajigi%40slipp.net"))
	u, err := users.Find("javajigi")
	require.NoError(t, err)
	assert.Equal(t, "javajigi@slipp.net", u.Email)
}

func TestUserLoginPost(t *testing.T) {
	t.Run("wrong password", func(t *testing.T) {
		sessions := session.NewStore()
		h := NewUserLogin(newUsers(t), sessions)

		out := h.Handle(newRequest(t, "POST", "/user/login", "", "userId=ab&password=wrong"))
		assert.Equal(t, types.StatusFound, out.Status())
		assert.Equal(t, "/user/login_failed.html", out.Target())
		assert.Equal(t, []response.Cookie{{Name: "logined", Value: "false"}}, out.Cookies())
		assert.Equal(t, 0, sessions.Len())
	})

	t.Run("unknown user", func(t *testing.T) {
		sessions := session.NewStore()
		h := NewUserLogin(newUsers(t), sessions)

		out := h.Handle(newRequest(t, "POST", "/user/login", "", "userId=nobody&password=secret"))
		assert.Equal(t, "/user/login_failed.html", out.Target())
		assert.Equal(t, []response.Cookie{{Name: "logined", Value: "false"}}, out.Cookies())
		assert.Equal(t, 0, sessions.Len())
	})

	t.Run("success", func(t *testing.T) {
		sessions := session.NewStore()
		h := NewUserLogin(newUsers(t), sessions)

		out := h.Handle(newRequest(t, "POST", "/user/login", "", "userId=ab&password=secret"))
		assert.Equal(t, types.StatusFound, out.Status())
		assert.Equal(t, "/index.html", out.Target())
		require.Equal(t, 1, sessions.Len())

		var sessionID string
		cookies := map[string]string{}
		for _, c := range out.Cookies() {
			cookies[c.Name] = c.Value
		}
		sessionID = cookies[session.CookieName]
		assert.Equal(t, "true", cookies["logined"])

		sess, err := sessions.Get(sessionID)
		require.NoError(t, err)
		v, ok := sess.Attribute("logined")
		assert.True(t, ok)
		assert.Equal(t, "true", v)
	})

	t.Run("already logged in", func(t *testing.T) {
		sessions := session.NewStore()
		cookie := loggedInCookie(t, sessions)
		h := NewUserLogin(newUsers(t), sessions)

		out := h.Handle(newRequest(t, "POST", "/user/login", cookie, "userId=ab&password=wrong"))
		assert.Equal(t, "/index.html", out.Target())
		assert.Empty(t, out.Cookies())
	})
}

func TestUserLoginGet(t *testing.T) {
	sessions := session.NewStore()
	h := NewUserLogin(newUsers(t), sessions)

	out := h.Handle(newRequest(t, "GET", "/user/login", "", ""))
	assert.Equal(t, response.KindRender, out.Kind())
	assert.Equal(t, "/user/login.html", out.View())

	out = h.Handle(newRequest(t, "GET", "/user/login", loggedInCookie(t, sessions), ""))
	assert.Equal(t, response.KindRedirect, out.Kind())
	assert.Equal(t, "/index.html", out.Target())

	out = h.Handle(newRequest(t, "DELETE", "/user/login", "", ""))
	assert.Equal(t, types.StatusMethodNotAllowed, out.Status())
}

func TestUserList(t *testing.T) {
	sessions := session.NewStore()
	users := newUsers(t)
	h := NewUserList(users, sessions)

	out := h.Handle(newRequest(t, "GET", "/user/list", "", ""))
	assert.Equal(t, response.KindRedirect, out.Kind())
	assert.Equal(t, "/user/login.html", out.Target())

	out = h.Handle(newRequest(t, "GET", "/user/list", loggedInCookie(t, sessions), ""))
	assert.Equal(t, response.KindRender, out.Kind())
	assert.Equal(t, "/user/list.html", out.View())
	assert.Equal(t, users.All(), out.Model()["users"])
}

func TestUserProfile(t *testing.T) {
	sessions := session.NewStore()
	h := NewUserProfile(newUsers(t), sessions)
	cookie := loggedInCookie(t, sessions)

	out := h.Handle(newRequest(t, "GET", "/user/profile?userId=ab", "", ""))
	assert.Equal(t, "/user/login.html", out.Target())

	out = h.Handle(newRequest(t, "GET", "/user/profile?userId=ab", cookie, ""))
	assert.Equal(t, response.KindRender, out.Kind())
	assert.Equal(t, "/user/profile.html", out.View())
	u, ok := out.Model()["user"].(*user.User)
	require.True(t, ok)
	assert.Equal(t, "ab", u.ID)

	out = h.Handle(newRequest(t, "GET", "/user/profile?userId=ghost", cookie, ""))
	assert.Equal(t, types.StatusNotFound, out.Status())
}

func TestUserLogout(t *testing.T) {
	sessions := session.NewStore()
	cookie := loggedInCookie(t, sessions)
	h := NewUserLogout(sessions)

	out := h.Handle(newRequest(t, "GET", "/user/logout", cookie, ""))
	assert.Equal(t, "/index.html", out.Target())
	assert.Equal(t, []response.Cookie{{Name: "logined", Value: "false"}}, out.Cookies())
	assert.Equal(t, 0, sessions.Len())

	out = h.Handle(newRequest(t, "GET", "/user/logout", "", ""))
	assert.Equal(t, types.StatusFound, out.Status())
}
