package repository

import (
	"Lumina/internal/model"
	"context"

	"github.com/pkg/errors"
	"gorm.io/gorm"
)

// postMutableColumns 整体覆盖写入的列集合，authorName 与 createdAt 保留首次写入值
var postMutableColumns = []string{
	"title", "excerpt", "content", "coverImage", "updatedAt",
	"categoryId", "tags", "isFeatured", "audioUrl",
}

type PostRepo interface {
	ListPosts(ctx context.Context) ([]*model.Post, error)
	GetPost(ctx context.Context, id string) (*model.Post, error)
	CreatePost(ctx context.Context, post *model.Post) error
	UpdatePost(ctx context.Context, post *model.Post) error
	DeletePost(ctx context.Context, id string) error
}

type PostRepoImpl struct {
	db *gorm.DB
}

func NewPostRepository(db *gorm.DB) PostRepo {
	return &PostRepoImpl{
		db: db,
	}
}

func (s PostRepoImpl) ListPosts(ctx context.Context) ([]*model.Post, error) {
	var posts []*model.Post
	err := s.db.WithContext(ctx).Order("createdAt DESC").Find(&posts).Error
	if err != nil {
		return nil, errors.Wrap(err, "list posts")
	}
	return posts, nil
}

func (s PostRepoImpl) GetPost(ctx context.Context, id string) (*model.Post, error) {
	var post model.Post
	err := s.db.WithContext(ctx).Where("id = ?", id).First(&post).Error
	if err != nil {
		return nil, err
	}
	return &post, nil
}

func (s PostRepoImpl) CreatePost(ctx context.Context, post *model.Post) error {
	if err := s.db.WithContext(ctx).Create(post).Error; err != nil {
		return errors.Wrap(err, "create post")
	}
	return nil
}

// UpdatePost 覆盖写入全部可变列，零值同样写入
func (s PostRepoImpl) UpdatePost(ctx context.Context, post *model.Post) error {
	err := s.db.WithContext(ctx).
		Model(&model.Post{}).
		Where("id = ?", post.ID).
		Select(postMutableColumns).
		Updates(post).Error
	if err != nil {
		return errors.Wrap(err, "update post")
	}
	return nil
}

// DeletePost 按 id 无条件删除，id 不存在也视为成功
func (s PostRepoImpl) DeletePost(ctx context.Context, id string) error {
	if err := s.db.WithContext(ctx).Delete(&model.Post{}, "id = ?", id).Error; err != nil {
		return errors.Wrap(err, "delete post")
	}
	return nil
}
