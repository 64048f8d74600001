package controller

import (
	"errors"
	"net/http"

	"ttcloud/logger"
	"ttcloud/web/entity"
	"ttcloud/web/service"
	"ttcloud/web/session"

	"github.com/gin-gonic/gin"
)

// LoginForm is the login request body.
type LoginForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
}

// SignupForm is the signup request body.
type SignupForm struct {
	Username string `json:"username" form:"username"`
	Password string `json:"password" form:"password"`
	Email    string `json:"email" form:"email"`
	FullName string `json:"full_name" form:"full_name"`
}

// AuthController handles login and signup. The two operations are registered
// as separate routes, so an unrecognized auth method falls through to the
// JSON 404 handler instead of a silent default case.
type AuthController struct {
	BaseController

	userService service.UserService
}

// NewAuthController creates an AuthController and registers its routes.
func NewAuthController(g *gin.RouterGroup) *AuthController {
	a := &AuthController{}
	a.initRouter(g)
	return a
}

func (a *AuthController) initRouter(g *gin.RouterGroup) {
	g.POST("/auth/login", a.login)
	g.POST("/auth/signup", a.signup)
}

// login verifies the credentials and establishes a session. Failed attempts
// get one generic message regardless of the internal reason.
func (a *AuthController) login(c *gin.Context) {
	var form LoginForm
	if err := c.ShouldBind(&form); err != nil {
		jsonMsg(c, http.StatusBadRequest, "A username and password are required for this route!")
		return
	}
	if form.Username == "" || form.Password == "" {
		jsonMsg(c, http.StatusBadRequest, "A username and password are required for this route!")
		return
	}

	user := a.userService.CheckUser(form.Username, form.Password)
	if user == nil {
		logger.Warningf("failed login for %q from %s", form.Username, getRemoteIp(c))
		jsonMsg(c, http.StatusUnauthorized, "Incorrect username or password!")
		return
	}

	if err := session.SetLoginUser(c, service.SessionPayload(user)); err != nil {
		logger.Warning("save session err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	logger.Infof("%s logged in successfully from %s", user.Username, getRemoteIp(c))
	jsonMsg(c, http.StatusOK, "Session has been added to your browser!")
}

// signup validates the form, rejects duplicates and creates the account.
func (a *AuthController) signup(c *gin.Context) {
	var form SignupForm
	if err := c.ShouldBind(&form); err != nil {
		logger.Debug("signup bind err:", err)
	}

	required := entity.Required{
		Username: form.Username != "",
		Password: form.Password != "",
		Email:    form.Email != "",
		FullName: form.FullName != "",
	}
	if !required.Username || !required.Password || !required.Email || !required.FullName {
		c.JSON(http.StatusBadRequest, entity.SignupMsg{
			Message:  "Some URL params are required for this route! Please review them and then try again!",
			Required: required,
		})
		return
	}

	user, err := a.userService.CreateUser(form.Username, form.Password, form.Email, form.FullName)
	if err != nil {
		if errors.Is(err, service.ErrUserExists) {
			jsonMsg(c, http.StatusInternalServerError, "That user already exists!")
			return
		}
		logger.Warning("create user err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	logger.Infof("account %q created", user.Username)
	jsonMsg(c, http.StatusOK, "Account has been created!")
}
