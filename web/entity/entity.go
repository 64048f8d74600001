// Package entity defines the JSON response shapes of the ttcloud API.
package entity

import (
	"time"
)

// Msg is the standard API response carrying a single message.
type Msg struct {
	Message string `json:"message"`
}

// Required reports, per signup field, whether it was supplied.
type Required struct {
	Username bool `json:"username"`
	Password bool `json:"password"`
	Email    bool `json:"email"`
	FullName bool `json:"full_name"`
}

// SignupMsg is returned when a signup request is missing fields.
type SignupMsg struct {
	Message  string   `json:"message"`
	Required Required `json:"required"`
}

// UploadMsg is returned after a successful file upload.
type UploadMsg struct {
	Message string `json:"message"`
	Url     string `json:"url"`
}

// NotFoundMsg is the body of the JSON 404 handler.
type NotFoundMsg struct {
	Status  int    `json:"status"`
	Message string `json:"message"`
}

// UserInfo is the public projection of a user record exposed by the API.
// It never includes the password hash or the auth token.
type UserInfo struct {
	Id        int       `json:"id"`
	Username  string    `json:"username"`
	Email     string    `json:"email"`
	FullName  string    `json:"full_name"`
	CreatedAt time.Time `json:"createdAt"`
}
