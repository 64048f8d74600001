package service

import (
	"os"
	"testing"

	"ttcloud/database"
	"ttcloud/database/model"
	"ttcloud/logger"
	"ttcloud/util/gravatar"

	"github.com/op/go-logging"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestMain(m *testing.M) {
	logger.InitLogger(logging.ERROR)
	os.Exit(m.Run())
}

func setup() {
	dbPath := "test.db"
	os.Remove(dbPath)
	database.InitDB(dbPath)
}

func teardown() {
	db, _ := database.GetDB().DB()
	db.Close()
	os.Remove("test.db")
}

func TestCheckUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	created, err := service.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)
	assert.NotEqual(t, "pw1", created.Password, "stored password must be a hash")

	user := service.CheckUser("bob", "pw1")
	require.NotNil(t, user)
	assert.Equal(t, created.Id, user.Id)

	assert.Nil(t, service.CheckUser("bob", "wrong"), "wrong password must fail")
	assert.Nil(t, service.CheckUser("nobody", "pw1"), "unknown user must fail")
}

func TestCheckUserDisabled(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	created, err := service.CreateUser("carol", "pw1", "c@x.com", "Carol C")
	require.NoError(t, err)

	err = database.GetDB().Model(model.User{}).
		Where("id = ?", created.Id).
		Update("disabled", true).
		Error
	require.NoError(t, err)

	assert.Nil(t, service.CheckUser("carol", "pw1"))
}

func TestCreateUserDuplicateBoundary(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	first, err := service.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)
	assert.True(t, first.Activated)
	assert.False(t, first.Disabled)
	assert.Len(t, first.AuthToken, 20)

	// The duplicate check matches the full username+email+full name triple.
	_, err = service.CreateUser("bob", "pw2", "b@x.com", "Bob B")
	assert.ErrorIs(t, err, ErrUserExists)

	// The same username with a different email is a distinct account.
	second, err := service.CreateUser("bob", "pw2", "other@x.com", "Bob B")
	require.NoError(t, err)
	assert.NotEqual(t, first.Id, second.Id)
	assert.NotEqual(t, first.AuthToken, second.AuthToken)
}

func TestGetUserByToken(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	created, err := service.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)

	user, err := service.GetUserByToken(created.AuthToken)
	require.NoError(t, err)
	assert.Equal(t, created.Id, user.Id)

	_, err = service.GetUserByToken("no-such-token")
	assert.True(t, database.IsNotFound(err))
}

func TestRestoreUser(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	created, err := service.CreateUser("bob", "pw1", "b@x.com", "Bob B")
	require.NoError(t, err)

	payload := SessionPayload(created)
	restored, err := service.RestoreUser(payload)
	require.NoError(t, err)
	assert.Equal(t, created.Id, restored.Id)
	assert.Equal(t, "bob", restored.Username)

	// A deleted account fails identity resolution without faulting.
	err = database.GetDB().Delete(&model.User{}, created.Id).Error
	require.NoError(t, err)

	_, err = service.RestoreUser(payload)
	assert.True(t, database.IsNotFound(err))
}

func TestSessionPayloadAvatar(t *testing.T) {
	setup()
	defer teardown()

	service := UserService{}

	created, err := service.CreateUser("bob", "pw1", " Bob@X.com ", "Bob B")
	require.NoError(t, err)

	payload := SessionPayload(created)
	assert.Empty(t, payload.Avatar, "avatar is off unless the feature flag is set")

	t.Setenv("ENABLE_GRAVATAR", "1")
	payload = SessionPayload(created)
	assert.Equal(t, gravatar.URL("bob@x.com"), payload.Avatar)
}
