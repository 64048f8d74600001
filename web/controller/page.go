package controller

import (
	"fmt"
	"html/template"
	"net/http"
	"strings"

	"ttcloud/database"
	"ttcloud/logger"
	"ttcloud/web/entity"
	"ttcloud/web/service"
	"ttcloud/web/session"

	"github.com/gin-gonic/gin"
)

// PageController serves the minimal page surface: the login entry point, the
// gated dashboard and stored uploads. View rendering proper lives outside
// this core, so pages are intentionally bare.
type PageController struct {
	BaseController

	uploadService service.UploadService
}

// NewPageController creates a PageController and registers its routes.
func NewPageController(g *gin.RouterGroup) *PageController {
	a := &PageController{}
	a.initRouter(g)
	return a
}

func (a *PageController) initRouter(g *gin.RouterGroup) {
	g.GET("/", a.index)
	g.GET("/auth/login", a.loginPage)
	g.GET("/dashboard", a.checkSessionPage, a.dashboard)
	g.GET("/logout", a.logout)
	g.GET("/upload/:name", a.serveUpload)
}

// index routes logged-in visitors to the dashboard and the rest to login.
func (a *PageController) index(c *gin.Context) {
	if session.IsLogin(c) {
		c.Redirect(http.StatusTemporaryRedirect, "/dashboard")
		return
	}
	c.Redirect(http.StatusTemporaryRedirect, "/auth/login")
}

// loginPage renders the login form along with any queued one-shot notices.
// Rendering consumes the notices, so they appear exactly once.
func (a *PageController) loginPage(c *gin.Context) {
	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><body>")
	for _, notice := range session.TakeFlashes(c) {
		fmt.Fprintf(&b, "<p class=\"notice\">%s</p>", template.HTMLEscapeString(notice))
	}
	origin := template.HTMLEscapeString(c.Query("origin"))
	fmt.Fprintf(&b, `<form method="post" action="/api/auth/login" data-origin="%s">`, origin)
	b.WriteString(`<input name="username"><input name="password" type="password">`)
	b.WriteString(`<button type="submit">Log in</button></form></body></html>`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// dashboard is the protected landing page.
func (a *PageController) dashboard(c *gin.Context) {
	user := loginUser(c)
	if user == nil {
		c.Redirect(http.StatusFound, "/auth/login")
		return
	}

	var b strings.Builder
	b.WriteString("<!DOCTYPE html><html><body>")
	fmt.Fprintf(&b, "<h1>Welcome, %s!</h1>", template.HTMLEscapeString(user.FullName))
	if user.Avatar != "" {
		fmt.Fprintf(&b, `<img src="%s" alt="avatar">`, template.HTMLEscapeString(user.Avatar))
	}
	b.WriteString(`<p><a href="/logout">Log out</a></p></body></html>`)
	c.Data(http.StatusOK, "text/html; charset=utf-8", []byte(b.String()))
}

// logout clears the session and returns to the login page.
func (a *PageController) logout(c *gin.Context) {
	if user := session.GetLoginUser(c); user != nil {
		logger.Infof("%s logged out", user.Username)
	}
	if err := session.ClearSession(c); err != nil {
		logger.Warning("clear session err:", err)
	}
	c.Redirect(http.StatusTemporaryRedirect, "/auth/login")
}

// serveUpload streams a stored blob under the URL returned by the upload API.
func (a *PageController) serveUpload(c *gin.Context) {
	upload, err := a.uploadService.GetUploadByName(c.Param("name"))
	if err != nil {
		if database.IsNotFound(err) {
			c.JSON(http.StatusNotFound, entity.NotFoundMsg{
				Status:  http.StatusNotFound,
				Message: "Cannot find the page or route you're looking for!",
			})
			return
		}
		logger.Warning("load upload err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}
	c.Data(http.StatusOK, upload.MimeType, upload.Data)
}
