package controller

import (
	"fmt"
	"io"
	"net/http"
	"strconv"

	"ttcloud/config"
	"ttcloud/database"
	"ttcloud/database/model"
	"ttcloud/logger"
	"ttcloud/util/common"
	"ttcloud/web/entity"
	"ttcloud/web/service"

	"github.com/gin-gonic/gin"
)

// APIController handles the protected JSON API: file upload and user listing.
// Every route sits behind the session-or-token admission policy.
type APIController struct {
	BaseController

	userService   service.UserService
	uploadService service.UploadService
}

// NewAPIController creates an APIController and registers its routes.
func NewAPIController(g *gin.RouterGroup) *APIController {
	a := &APIController{}
	a.initRouter(g)
	return a
}

func (a *APIController) initRouter(g *gin.RouterGroup) {
	g.POST("/upload_file", a.checkSessionAPI, a.uploadFile)
	g.GET("/users", a.checkSessionAPI, a.getUsers)
	g.GET("/users/:id", a.checkSessionAPI, a.getUser)
}

// uploadFile stores the multipart file_data field as a blob owned by the
// authenticated identity.
func (a *APIController) uploadFile(c *gin.Context) {
	user := loginUser(c)
	if user == nil {
		jsonMsg(c, http.StatusUnauthorized, msgUnauthorized)
		return
	}

	file, err := c.FormFile("file_data")
	if err != nil {
		jsonMsg(c, http.StatusBadRequest, "A file_data field is required for this route!")
		return
	}

	src, err := file.Open()
	if err != nil {
		logger.Warning("open uploaded file err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}
	defer src.Close()

	data, err := io.ReadAll(src)
	if err != nil {
		logger.Warning("read uploaded file err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	upload, err := a.uploadService.CreateUpload(file.Filename, data, file.Header.Get("Content-Type"), user.Id)
	if err != nil {
		logger.Warning("store upload err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	logger.Infof("%s uploaded %q (%s)", user.Username, upload.Name, common.FormatSize(int64(len(data))))
	c.JSON(http.StatusOK, entity.UploadMsg{
		Message: "File has been uploaded to the database!",
		Url:     fmt.Sprintf("%s/upload/%s", config.GetServerDomain(), upload.Name),
	})
}

// getUsers lists all users as their public projection.
func (a *APIController) getUsers(c *gin.Context) {
	users, err := a.userService.GetUsers()
	if err != nil {
		logger.Warning("list users err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	infos := make([]entity.UserInfo, 0, len(users))
	for _, user := range users {
		infos = append(infos, userInfo(&user))
	}
	c.JSON(http.StatusOK, infos)
}

// getUser returns one user's public projection by id.
func (a *APIController) getUser(c *gin.Context) {
	id, err := strconv.Atoi(c.Param("id"))
	if err != nil {
		jsonMsg(c, http.StatusNotFound, "That user doesn't exist!")
		return
	}

	user, err := a.userService.GetUser(id)
	if err != nil {
		if database.IsNotFound(err) {
			jsonMsg(c, http.StatusNotFound, "That user doesn't exist!")
			return
		}
		logger.Warning("get user err:", err)
		jsonMsg(c, http.StatusInternalServerError, msgInternal)
		return
	}

	c.JSON(http.StatusOK, userInfo(user))
}

func userInfo(user *model.User) entity.UserInfo {
	return entity.UserInfo{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		CreatedAt: user.CreatedAt,
	}
}
