package service

import (
	"context"
	"testing"

	"devconnect/internal/models"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestPostService_CreatePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "Alice", "alice@example.com")

	t.Run("text required", func(t *testing.T) {
		_, err := env.posts.CreatePost(ctx, user.ID, "   ")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	t.Run("denormalizes author fields", func(t *testing.T) {
		post, err := env.posts.CreatePost(ctx, user.ID, "hello")
		require.NoError(t, err)
		assert.Equal(t, "Alice", post.AuthorName)
		assert.Equal(t, user.Avatar, post.AuthorAvatar)
		assert.Equal(t, user.ID, post.UserID)
	})

	t.Run("unknown user", func(t *testing.T) {
		_, err := env.posts.CreatePost(ctx, 999, "hello")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostService_AuthorSnapshotNeverRefreshed(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "Alice", "alice@example.com")

	post, err := env.posts.CreatePost(ctx, user.ID, "snapshot")
	require.NoError(t, err)

	require.NoError(t, env.db.Model(&models.User{}).
		Where("id = ?", user.ID).Update("name", "Alicia").Error)

	got, err := env.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)
	assert.Equal(t, "Alice", got.AuthorName)
}

func TestPostService_LikeUnlike(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := env.posts.CreatePost(ctx, alice.ID, "like this")
	require.NoError(t, err)

	liked, err := env.posts.LikePost(ctx, bob.ID, post.ID)
	require.NoError(t, err)
	require.Len(t, liked.Likes, 1)

	t.Run("double like conflicts", func(t *testing.T) {
		_, err := env.posts.LikePost(ctx, bob.ID, post.ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeConflict, appErr.Code)
		assert.Equal(t, "Post already liked", appErr.Message)

		got, err := env.posts.GetPost(ctx, post.ID)
		require.NoError(t, err)
		assert.Len(t, got.Likes, 1, "conflict leaves a single like row")
	})

	t.Run("unlike removes and is idempotent", func(t *testing.T) {
		got, err := env.posts.UnlikePost(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Likes)

		got, err = env.posts.UnlikePost(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.Empty(t, got.Likes)
	})

	t.Run("like again after unlike", func(t *testing.T) {
		got, err := env.posts.LikePost(ctx, bob.ID, post.ID)
		require.NoError(t, err)
		assert.Len(t, got.Likes, 1)
	})

	t.Run("missing post", func(t *testing.T) {
		_, err := env.posts.LikePost(ctx, bob.ID, 999)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)
	})
}

func TestPostService_Comments(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := env.posts.CreatePost(ctx, alice.ID, "discuss")
	require.NoError(t, err)

	t.Run("text required", func(t *testing.T) {
		_, err := env.posts.AddComment(ctx, bob.ID, post.ID, "")
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeValidation, appErr.Code)
	})

	got, err := env.posts.AddComment(ctx, bob.ID, post.ID, "nice post")
	require.NoError(t, err)
	require.Len(t, got.Comments, 1)
	assert.Equal(t, "Bob", got.Comments[0].AuthorName)

	t.Run("only the commenter can delete", func(t *testing.T) {
		_, err := env.posts.DeleteComment(ctx, alice.ID, post.ID, got.Comments[0].ID)
		var appErr *models.AppError
		require.ErrorAs(t, err, &appErr)
		assert.Equal(t, models.CodeNotFound, appErr.Code)

		after, err := env.posts.DeleteComment(ctx, bob.ID, post.ID, got.Comments[0].ID)
		require.NoError(t, err)
		assert.Empty(t, after.Comments)
	})
}

func TestPostService_DeletePost(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	alice := env.createUser(t, "Alice", "alice@example.com")
	bob := env.createUser(t, "Bob", "bob@example.com")

	post, err := env.posts.CreatePost(ctx, alice.ID, "mine")
	require.NoError(t, err)

	err = env.posts.DeletePost(ctx, bob.ID, post.ID)
	var appErr *models.AppError
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)

	// The failed delete changed nothing.
	_, err = env.posts.GetPost(ctx, post.ID)
	require.NoError(t, err)

	require.NoError(t, env.posts.DeletePost(ctx, alice.ID, post.ID))
	_, err = env.posts.GetPost(ctx, post.ID)
	require.ErrorAs(t, err, &appErr)
	assert.Equal(t, models.CodeNotFound, appErr.Code)
}

func TestPostService_ListNewestFirst(t *testing.T) {
	env := newTestEnv(t)
	ctx := context.Background()
	user := env.createUser(t, "Alice", "alice@example.com")

	for _, text := range []string{"one", "two", "three"} {
		_, err := env.posts.CreatePost(ctx, user.ID, text)
		require.NoError(t, err)
	}

	posts, err := env.posts.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "three", posts[0].Text)
	assert.Equal(t, "one", posts[2].Text)
}
