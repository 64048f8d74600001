// Package model defines the persisted entities of the ttcloud database.
package model

import (
	"time"
)

// User is one registered account. The Password column always holds a bcrypt
// hash, never plaintext. AuthToken is issued once at signup and acts as a
// long-lived bearer credential for the API.
type User struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Username  string    `json:"username" gorm:"not null"`
	Password  string    `json:"-" gorm:"not null"`
	Email     string    `json:"email" gorm:"not null"`
	FullName  string    `json:"full_name" gorm:"not null"`
	Disabled  bool      `json:"disabled" gorm:"not null"`
	Activated bool      `json:"activated" gorm:"not null"`
	AuthToken string    `json:"-" gorm:"uniqueIndex;not null"`
	CreatedAt time.Time `json:"createdAt"`
}

// Upload is one stored file blob owned by a user.
type Upload struct {
	Id        int       `json:"id" gorm:"primaryKey;autoIncrement"`
	Name      string    `json:"name" gorm:"not null"`
	Data      []byte    `json:"-" gorm:"not null"`
	MimeType  string    `json:"mimetype" gorm:"not null"`
	UserId    int       `json:"user_id" gorm:"not null;index"`
	CreatedAt time.Time `json:"createdAt"`
}

// SessionUser is the identity payload stored in the cookie session and
// attached to authenticated requests. It deliberately carries no password
// hash.
type SessionUser struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	AuthToken string    `json:"auth_token"`
	Avatar    string    `json:"avatar,omitempty"`
	CreatedAt time.Time `json:"createdAt"`
}
