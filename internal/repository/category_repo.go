package repository

import (
	"Lumina/internal/model"
	"context"

	pkgerrors "github.com/pkg/errors"
	"gorm.io/gorm"
)

// 删除冲突哨兵，service 层负责映射为对外错误
var (
	ErrCategoryReferencedByPost  = pkgerrors.New("category referenced by post")
	ErrCategoryReferencedByChild = pkgerrors.New("category referenced by child category")
)

type CategoryRepo interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, category *model.Category) error
	DeleteCategory(ctx context.Context, id string) error
}

type CategoryRepoImpl struct {
	db *gorm.DB
}

func NewCategoryRepository(db *gorm.DB) CategoryRepo {
	return &CategoryRepoImpl{
		db: db,
	}
}

func (s CategoryRepoImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	var categories []*model.Category
	err := s.db.WithContext(ctx).Find(&categories).Error
	if err != nil {
		return nil, pkgerrors.Wrap(err, "list categories")
	}
	return categories, nil
}

func (s CategoryRepoImpl) CreateCategory(ctx context.Context, category *model.Category) error {
	if err := s.db.WithContext(ctx).Create(category).Error; err != nil {
		return pkgerrors.Wrap(err, "create category")
	}
	return nil
}

// DeleteCategory 引用检查与删除放在同一事务内，避免检查到删除之间的竞态
func (s CategoryRepoImpl) DeleteCategory(ctx context.Context, id string) error {
	return s.db.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		var postCount int64
		if err := tx.Model(&model.Post{}).Where("categoryId = ?", id).Count(&postCount).Error; err != nil {
			return pkgerrors.Wrap(err, "count posts by category")
		}
		if postCount > 0 {
			return ErrCategoryReferencedByPost
		}

		var childCount int64
		if err := tx.Model(&model.Category{}).Where("parentId = ?", id).Count(&childCount).Error; err != nil {
			return pkgerrors.Wrap(err, "count child categories")
		}
		if childCount > 0 {
			return ErrCategoryReferencedByChild
		}

		if err := tx.Delete(&model.Category{}, "id = ?", id).Error; err != nil {
			return pkgerrors.Wrap(err, "delete category")
		}
		return nil
	})
}
