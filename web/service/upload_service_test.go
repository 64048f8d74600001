package service

import (
	"testing"

	"ttcloud/database"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestUploadService(t *testing.T) {
	setup()
	defer teardown()

	users := UserService{}
	uploads := UploadService{}

	owner, err := users.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)

	upload, err := uploads.CreateUpload("hello.txt", []byte("hello world"), "text/plain", owner.Id)
	require.NoError(t, err)
	assert.Equal(t, owner.Id, upload.UserId)

	stored, err := uploads.GetUploadByName("hello.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("hello world"), stored.Data)
	assert.Equal(t, "text/plain", stored.MimeType)

	_, err = uploads.GetUploadByName("missing.txt")
	assert.True(t, database.IsNotFound(err))
}

func TestUploadNewestWins(t *testing.T) {
	setup()
	defer teardown()

	users := UserService{}
	uploads := UploadService{}

	owner, err := users.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)

	_, err = uploads.CreateUpload("notes.txt", []byte("v1"), "text/plain", owner.Id)
	require.NoError(t, err)
	_, err = uploads.CreateUpload("notes.txt", []byte("v2"), "text/plain", owner.Id)
	require.NoError(t, err)

	stored, err := uploads.GetUploadByName("notes.txt")
	require.NoError(t, err)
	assert.Equal(t, []byte("v2"), stored.Data)
}
