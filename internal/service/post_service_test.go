package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/repository"
	"context"
	"fmt"
	"testing"
	"time"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

func newTestDB(t *testing.T) *gorm.DB {
	t.Helper()

	dsn := fmt.Sprintf("file:%s?mode=memory&cache=shared", t.Name())
	db, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{
		Logger: logger.Default.LogMode(logger.Silent),
	})
	require.NoError(t, err)
	require.NoError(t, db.AutoMigrate(&model.Post{}, &model.Category{}))
	return db
}

func newPostService(t *testing.T) (PostService, *gorm.DB) {
	db := newTestDB(t)
	return NewPostService(repository.NewPostRepository(db)), db
}

func samplePost(id string) *dto.PostDTO {
	return &dto.PostDTO{
		ID:         id,
		Title:      "主日讲章",
		Excerpt:    "本周摘要",
		Content:    "# 正文\n\n一些 markdown 内容",
		CoverImage: "https://assets.example.com/images/1-cover.jpg",
		CategoryID: "cat-1",
		Tags:       []string{"信仰", "生活"},
		IsFeatured: true,
		AudioURL:   "https://assets.example.com/audios/1-sermon.mp3",
		Author:     dto.AuthorDTO{Username: "牧者", Role: "ADMIN"},
	}
}

func TestSavePostThenGetRoundTrip(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	id, err := svc.SavePost(ctx, samplePost("p1"))
	require.NoError(t, err)
	assert.Equal(t, "p1", id)

	got, err := svc.GetPost(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, "主日讲章", got.Title)
	assert.Equal(t, "cat-1", got.CategoryID)
	assert.Equal(t, []string{"信仰", "生活"}, got.Tags)
	assert.True(t, got.IsFeatured)
	assert.Equal(t, dto.AuthorDTO{Username: "牧者", Role: "ADMIN"}, got.Author)
	assert.NotZero(t, got.CreatedAt)
	assert.Equal(t, got.CreatedAt, got.UpdatedAt)
}

func TestSavePostPreservesCreatedAtAndAuthor(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	_, err := svc.SavePost(ctx, samplePost("p1"))
	require.NoError(t, err)

	first, err := svc.GetPost(ctx, "p1")
	require.NoError(t, err)

	time.Sleep(10 * time.Millisecond)

	updated := samplePost("p1")
	updated.Title = "改过的标题"
	updated.IsFeatured = false
	updated.Author = dto.AuthorDTO{Username: "别人", Role: "ADMIN"}
	_, err = svc.SavePost(ctx, updated)
	require.NoError(t, err)

	got, err := svc.GetPost(ctx, "p1")
	require.NoError(t, err)

	assert.Equal(t, "改过的标题", got.Title)
	assert.False(t, got.IsFeatured)
	assert.Equal(t, first.CreatedAt, got.CreatedAt)
	assert.Greater(t, got.UpdatedAt, first.UpdatedAt)
	// authorName 只在首次插入时写入
	assert.Equal(t, "牧者", got.Author.Username)
}

func TestSavePostIdempotentById(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()

	_, err := svc.SavePost(ctx, samplePost("p1"))
	require.NoError(t, err)
	_, err = svc.SavePost(ctx, samplePost("p1"))
	require.NoError(t, err)

	var count int64
	require.NoError(t, db.Model(&model.Post{}).Count(&count).Error)
	assert.Equal(t, int64(1), count)
}

func TestSavePostGeneratesIdWhenMissing(t *testing.T) {
	svc, _ := newPostService(t)

	post := samplePost("")
	id, err := svc.SavePost(context.Background(), post)
	require.NoError(t, err)
	assert.NotEmpty(t, id)
}

func TestSavePostDefaultsAuthorName(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	post := samplePost("p1")
	post.Author = dto.AuthorDTO{}
	_, err := svc.SavePost(ctx, post)
	require.NoError(t, err)

	got, err := svc.GetPost(ctx, "p1")
	require.NoError(t, err)
	assert.Equal(t, "Admin", got.Author.Username)
}

func TestGetPostNotFound(t *testing.T) {
	svc, _ := newPostService(t)

	_, err := svc.GetPost(context.Background(), "missing")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestDeletePostIdempotent(t *testing.T) {
	svc, _ := newPostService(t)
	ctx := context.Background()

	// 删除不存在的 id 也应成功
	require.NoError(t, svc.DeletePost(ctx, "missing"))

	_, err := svc.SavePost(ctx, samplePost("p1"))
	require.NoError(t, err)
	require.NoError(t, svc.DeletePost(ctx, "p1"))
	require.NoError(t, svc.DeletePost(ctx, "p1"))

	_, err = svc.GetPost(ctx, "p1")
	assert.ErrorIs(t, err, ErrPostNotFound)
}

func TestListPostsOrderedByCreatedAtDesc(t *testing.T) {
	svc, db := newPostService(t)
	ctx := context.Background()

	rows := []*model.Post{
		{ID: "old", Title: "旧文", CreatedAt: 1000, UpdatedAt: 1000, Tags: `["a"]`},
		{ID: "new", Title: "新文", CreatedAt: 3000, UpdatedAt: 3000, Tags: `["b"]`},
		{ID: "mid", Title: "中间", CreatedAt: 2000, UpdatedAt: 2000, Tags: `["c"]`},
	}
	require.NoError(t, db.Create(&rows).Error)

	posts, err := svc.ListPosts(ctx)
	require.NoError(t, err)
	require.Len(t, posts, 3)
	assert.Equal(t, "new", posts[0].ID)
	assert.Equal(t, "mid", posts[1].ID)
	assert.Equal(t, "old", posts[2].ID)
}

func TestListPostsToleratesBrokenTags(t *testing.T) {
	svc, db := newPostService(t)

	rows := []*model.Post{
		{ID: "empty-tags", CreatedAt: 2000, UpdatedAt: 2000, Tags: ""},
		{ID: "broken-tags", CreatedAt: 1000, UpdatedAt: 1000, Tags: "{not json"},
	}
	require.NoError(t, db.Create(&rows).Error)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	for _, p := range posts {
		assert.NotNil(t, p.Tags)
		assert.Empty(t, p.Tags)
	}
}

func TestPostShapingCoercesFeaturedFlag(t *testing.T) {
	svc, db := newPostService(t)

	rows := []*model.Post{
		{ID: "featured", CreatedAt: 2000, UpdatedAt: 2000, IsFeatured: 1},
		{ID: "plain", CreatedAt: 1000, UpdatedAt: 1000, IsFeatured: 0},
	}
	require.NoError(t, db.Create(&rows).Error)

	posts, err := svc.ListPosts(context.Background())
	require.NoError(t, err)
	require.Len(t, posts, 2)
	assert.True(t, posts[0].IsFeatured)
	assert.False(t, posts[1].IsFeatured)
}
