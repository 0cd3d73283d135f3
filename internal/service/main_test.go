package service

import (
	"testing"

	"devconnect/internal/database"
	"devconnect/internal/models"
	"devconnect/internal/repository"

	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

// testEnv wires the services against a fresh in-memory database.
type testEnv struct {
	db       *gorm.DB
	users    repository.UserRepository
	profiles *ProfileService
	posts    *PostService
}

func newTestEnv(t *testing.T) *testEnv {
	t.Helper()

	db, err := gorm.Open(sqlite.Open(":memory:"), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, database.Migrate(db))

	userRepo := repository.NewUserRepository(db)
	profileRepo := repository.NewProfileRepository(db)
	postRepo := repository.NewPostRepository(db)

	return &testEnv{
		db:       db,
		users:    userRepo,
		profiles: NewProfileService(profileRepo, userRepo),
		posts:    NewPostService(postRepo, userRepo),
	}
}

func (e *testEnv) createUser(t *testing.T, name, email string) *models.User {
	t.Helper()

	user := &models.User{Name: name, Email: email, Password: "hashed", Avatar: "https://example.com/a.png"}
	require.NoError(t, e.db.Create(user).Error)
	return user
}
