// Package controller provides the HTTP request handlers of the ttcloud
// server: authentication, the protected JSON API and the page surface.
package controller

import (
	"net/http"
	"net/url"
	"strings"

	"ttcloud/database"
	"ttcloud/database/model"
	"ttcloud/logger"
	"ttcloud/web/service"
	"ttcloud/web/session"

	"github.com/gin-gonic/gin"
)

// loginUserCtxKey carries the resolved identity through the gin context.
const loginUserCtxKey = "LOGIN_USER"

const (
	msgUnauthorized  = "You are not authorized to view this page!"
	msgTokenRequired = "You need to have your API token in order to use this route!"
	msgLoginRequired = "You need to be logged in to access this page!"
	msgInternal      = "Something unexpected has occurred!"
)

// BaseController provides the admission policies shared by all controllers.
type BaseController struct {
	userService service.UserService
}

// restoreUser resolves the session identity, re-fetching the user row so a
// deleted account is treated as unauthenticated.
func (a *BaseController) restoreUser(c *gin.Context) *model.SessionUser {
	payload := session.GetLoginUser(c)
	if payload == nil {
		return nil
	}
	user, err := a.userService.RestoreUser(payload)
	if err != nil {
		if !database.IsNotFound(err) {
			logger.Warning("restore session user err:", err)
		}
		return nil
	}
	return user
}

// checkSessionPage admits requests with an established session. Anything else
// is redirected to the login page with the requested path attached and a
// one-shot notice queued.
func (a *BaseController) checkSessionPage(c *gin.Context) {
	if user := a.restoreUser(c); user != nil {
		c.Set(loginUserCtxKey, user)
		c.Next()
		return
	}
	if err := session.AddFlash(c, msgLoginRequired); err != nil {
		logger.Warning("queue login notice err:", err)
	}
	c.Redirect(http.StatusFound, "/auth/login?origin="+url.QueryEscape(c.Request.RequestURI))
	c.Abort()
}

// checkSessionAPI admits requests carrying either an established session or a
// valid bearer token. Rejections are JSON, never redirects.
func (a *BaseController) checkSessionAPI(c *gin.Context) {
	if user := a.restoreUser(c); user != nil {
		c.Set(loginUserCtxKey, user)
		c.Next()
		return
	}

	token := strings.TrimPrefix(c.GetHeader("Authorization"), "Bearer ")
	if token == "" {
		jsonMsg(c, http.StatusUnauthorized, msgTokenRequired)
		c.Abort()
		return
	}

	user, err := a.userService.GetUserByToken(token)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusUnauthorized, msgUnauthorized)
		} else {
			logger.Warning("token lookup err:", err)
			jsonMsg(c, http.StatusInternalServerError, msgInternal)
		}
		c.Abort()
		return
	}

	c.Set(loginUserCtxKey, service.SessionPayload(user))
	c.Next()
}

// loginUser returns the identity attached by an admission policy.
func loginUser(c *gin.Context) *model.SessionUser {
	obj, ok := c.Get(loginUserCtxKey)
	if !ok {
		return nil
	}
	user, ok := obj.(*model.SessionUser)
	if !ok {
		return nil
	}
	return user
}
