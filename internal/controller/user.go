package controller

import (
	"errors"

	"was/internal/http/request"
	"was/internal/http/response"
	"was/internal/session"
	"was/internal/user"
	"was/types"

	"go.uber.org/zap"
)

const (
	indexPage       = "/index.html"
	loginView       = "/user/login.html"
	loginFailedPage = "/user/login_failed.html"
	formFailedPage  = "/user/form_failed.html"
	listView        = "/user/list.html"
	profileView     = "/user/profile.html"
)

func NewUserCreate(users user.Store) Handler {
	return Methods{
		types.MethodPOST: func(req request.Request) *response.Outcome {
			_, err := users.Add(req.Param("userId"), req.Param("password"), req.Param("name"), req.Param("email"))
			switch {
			case errors.Is(err, user.ErrUserExists):
				zap.S().Debugf("User %s already exists", req.Param("userId"))
				return response.Redirect(formFailedPage)
			case errors.Is(err, user.ErrInvalidUser):
				return response.Error(types.StatusBadRequest)
			case err != nil:
				zap.S().Errorf("Failed to create user: %v", err)
				return response.Error(types.StatusInternalServerError)
			}

			zap.S().Debugf("User %s created", req.Param("userId"))
			return response.Redirect(indexPage)
		},
	}
}

func NewUserLogin(users user.Store, sessions session.Store) Handler {
	return Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			if session.IsLogined(sessions, req) {
				return response.Redirect(indexPage)
			}
			return response.Render(loginView)
		},
		types.MethodPOST: func(req request.Request) *response.Outcome {
			if session.IsLogined(sessions, req) {
				return response.Redirect(indexPage)
			}

			userID := req.Param("userId")
			u, err := users.Find(userID)
			if err != nil {
				zap.S().Debugf("Login failed, unknown user %s", userID)
				return response.Redirect(loginFailedPage).SetCookie(session.LoginedKey, session.LoginedFalse)
			}

			if !u.MatchPassword(req.Param("password")) {
				zap.S().Debugf("Login failed, password mismatch for %s", userID)
				return response.Redirect(loginFailedPage).SetCookie(session.LoginedKey, session.LoginedFalse)
			}

			out := response.Redirect(indexPage)
			sess, err := session.Establish(sessions, req, out)
			if err != nil {
				zap.S().Errorf("Failed to establish session: %v", err)
				return response.Error(types.StatusInternalServerError)
			}
			sess.SetAttribute(session.LoginedKey, session.LoginedTrue)
			out.SetCookie(session.LoginedKey, session.LoginedTrue)

			zap.S().Debugf("User %s logged in", userID)
			return out
		},
	}
}

func NewUserLogout(sessions session.Store) Handler {
	return Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			if sess, ok := session.Current(sessions, req); ok {
				sessions.Remove(sess.ID())
			}
			return response.Redirect(indexPage).SetCookie(session.LoginedKey, session.LoginedFalse)
		},
	}
}

func NewUserList(users user.Store, sessions session.Store) Handler {
	return Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			if !session.IsLogined(sessions, req) {
				return response.Redirect(loginView)
			}
			return response.RenderWith(listView, map[string]any{
				"users": users.All(),
			})
		},
	}
}

func NewUserProfile(users user.Store, sessions session.Store) Handler {
	return Methods{
		types.MethodGET: func(req request.Request) *response.Outcome {
			if !session.IsLogined(sessions, req) {
				return response.Redirect(loginView)
			}

			u, err := users.Find(req.Param("userId"))
			if err != nil {
				return response.Error(types.StatusNotFound)
			}
			return response.RenderWith(profileView, map[string]any{
				"user": u,
			})
		},
	}
}
