// Package service implements the business operations of the ttcloud server
// over the persistent store.
package service

import (
	"errors"

	"ttcloud/config"
	"ttcloud/database"
	"ttcloud/database/model"
	"ttcloud/logger"
	"ttcloud/util/common"
	"ttcloud/util/crypto"
	"ttcloud/util/gravatar"
	"ttcloud/util/random"
)

// authTokenLength is the fixed length of issued API tokens.
const authTokenLength = 20

// ErrUserExists is returned by CreateUser when a user with the same
// username, email and full name already exists.
var ErrUserExists = errors.New("that user already exists")

type UserService struct{}

// CheckUser verifies a username/password pair against the credential store.
// It returns nil on any failure; the internal reason is logged but never
// distinguished for the caller, so clients cannot enumerate accounts.
func (s *UserService) CheckUser(username string, password string) *model.User {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ?", username).
		First(user).
		Error
	if database.IsNotFound(err) {
		logger.Debugf("login rejected: user %q does not exist", username)
		return nil
	} else if err != nil {
		logger.Warning("check user err:", err)
		return nil
	}

	if !crypto.CheckPasswordHash(user.Password, password) {
		logger.Debugf("login rejected: incorrect password for %q", username)
		return nil
	}

	if user.Disabled {
		logger.Debugf("login rejected: user %q is disabled", username)
		return nil
	}

	return user
}

// CreateUser registers a new account. The duplicate check matches the full
// username+email+full name triple; the same username with a different email
// is a distinct account.
func (s *UserService) CreateUser(username, password, email, fullName string) (*model.User, error) {
	if username == "" || password == "" {
		return nil, common.NewError("username and password can not be empty")
	}
	db := database.GetDB()

	existing := &model.User{}
	err := db.Model(model.User{}).
		Where("username = ? AND email = ? AND full_name = ?", username, email, fullName).
		First(existing).
		Error
	if err == nil {
		return nil, ErrUserExists
	} else if !database.IsNotFound(err) {
		return nil, err
	}

	hash, err := crypto.HashPassword(password)
	if err != nil {
		return nil, err
	}

	user := &model.User{
		Username:  username,
		Password:  hash,
		Email:     email,
		FullName:  fullName,
		Disabled:  false,
		Activated: true,
		AuthToken: random.Seq(authTokenLength),
	}
	if err := db.Create(user).Error; err != nil {
		return nil, err
	}
	return user, nil
}

// GetUserByToken resolves a bearer token to its owning user.
func (s *UserService) GetUserByToken(token string) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("auth_token = ?", token).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUser(id int) (*model.User, error) {
	db := database.GetDB()

	user := &model.User{}
	err := db.Model(model.User{}).
		Where("id = ?", id).
		First(user).
		Error
	if err != nil {
		return nil, err
	}
	return user, nil
}

func (s *UserService) GetUsers() ([]model.User, error) {
	db := database.GetDB()

	var users []model.User
	err := db.Model(model.User{}).
		Order("id").
		Find(&users).
		Error
	if err != nil {
		return nil, err
	}
	return users, nil
}

// RestoreUser resolves a session payload back to a live identity. The user
// row is re-fetched by id on every request, so a deleted account fails
// authentication without faulting.
func (s *UserService) RestoreUser(payload *model.SessionUser) (*model.SessionUser, error) {
	user, err := s.GetUser(payload.Id)
	if err != nil {
		return nil, err
	}
	return SessionPayload(user), nil
}

// SessionPayload builds the sanitized identity stored in the session and
// attached to requests. The password hash is never part of it. The avatar is
// derived from the email when the gravatar feature is enabled.
func SessionPayload(user *model.User) *model.SessionUser {
	payload := &model.SessionUser{
		Id:        user.Id,
		Username:  user.Username,
		Email:     user.Email,
		FullName:  user.FullName,
		AuthToken: user.AuthToken,
		CreatedAt: user.CreatedAt,
	}
	if config.IsGravatarEnabled() {
		payload.Avatar = gravatar.URL(user.Email)
	}
	return payload
}
