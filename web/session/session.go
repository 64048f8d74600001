// Package session wraps the cookie session with typed accessors for the
// logged-in identity and one-shot flash notices.
package session

import (
	"ttcloud/config"
	"ttcloud/database/model"

	"github.com/gin-contrib/sessions"
	"github.com/gin-gonic/gin"
	json "github.com/goccy/go-json"
)

const loginUserKey = "LOGIN_USER"

// SetLoginUser stores the sanitized identity payload in the session.
// The payload is serialized to JSON, matching the persisted session format.
func SetLoginUser(c *gin.Context, user *model.SessionUser) error {
	data, err := json.Marshal(user)
	if err != nil {
		return err
	}
	s := sessions.Default(c)
	s.Set(loginUserKey, string(data))
	return s.Save()
}

// GetLoginUser returns the identity payload from the session, or nil when
// the request carries no valid session.
func GetLoginUser(c *gin.Context) *model.SessionUser {
	s := sessions.Default(c)
	obj := s.Get(loginUserKey)
	raw, ok := obj.(string)
	if !ok {
		return nil
	}
	user := &model.SessionUser{}
	if err := json.Unmarshal([]byte(raw), user); err != nil {
		return nil
	}
	return user
}

func IsLogin(c *gin.Context) bool {
	return GetLoginUser(c) != nil
}

// AddFlash queues a one-shot notice, consumed by the next TakeFlashes call.
func AddFlash(c *gin.Context, msg string) error {
	s := sessions.Default(c)
	s.AddFlash(msg)
	return s.Save()
}

// TakeFlashes returns queued notices and removes them from the session.
func TakeFlashes(c *gin.Context) []string {
	s := sessions.Default(c)
	flashes := s.Flashes()
	if len(flashes) == 0 {
		return nil
	}
	if err := s.Save(); err != nil {
		return nil
	}
	msgs := make([]string, 0, len(flashes))
	for _, f := range flashes {
		if msg, ok := f.(string); ok {
			msgs = append(msgs, msg)
		}
	}
	return msgs
}

// ClearSession drops the session record and expires the cookie.
func ClearSession(c *gin.Context) error {
	s := sessions.Default(c)
	s.Clear()
	s.Options(sessions.Options{
		Path:   "/",
		MaxAge: -1,
	})
	if err := s.Save(); err != nil {
		return err
	}
	c.SetCookie(config.GetCookieName(), "", -1, "/", config.GetCookieDomain(), config.IsProduction(), true)
	return nil
}
