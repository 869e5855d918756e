package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/repository"
	"context"
	"strconv"
	"strings"
	"time"

	"github.com/pkg/errors"
)

type CategoryService interface {
	ListCategories(ctx context.Context) ([]*model.Category, error)
	CreateCategory(ctx context.Context, req *dto.CreateCategoryDTO) (*model.Category, error)
	DeleteCategory(ctx context.Context, id string) error
}

type categoryServiceImpl struct {
	categoryRepo repository.CategoryRepo
}

func NewCategoryService(categoryRepo repository.CategoryRepo) CategoryService {
	return &categoryServiceImpl{
		categoryRepo: categoryRepo,
	}
}

func (s *categoryServiceImpl) ListCategories(ctx context.Context) ([]*model.Category, error) {
	return s.categoryRepo.ListCategories(ctx)
}

// CreateCategory 名称去空格后不可为空，parentId 空串归一化为 NULL，
// id 取当前毫秒时间戳字符串
func (s *categoryServiceImpl) CreateCategory(ctx context.Context, req *dto.CreateCategoryDTO) (*model.Category, error) {
	name := strings.TrimSpace(req.Name)
	if name == "" {
		return nil, ErrCategoryNameEmpty
	}

	var parentID *string
	if req.ParentID != nil && *req.ParentID != "" {
		parentID = req.ParentID
	}

	category := &model.Category{
		ID:       strconv.FormatInt(time.Now().UnixMilli(), 10),
		Name:     name,
		ParentID: parentID,
	}

	if err := s.categoryRepo.CreateCategory(ctx, category); err != nil {
		return nil, err
	}

	return category, nil
}

func (s *categoryServiceImpl) DeleteCategory(ctx context.Context, id string) error {
	err := s.categoryRepo.DeleteCategory(ctx, id)
	switch {
	case errors.Is(err, repository.ErrCategoryReferencedByPost):
		return ErrCategoryHasPosts
	case errors.Is(err, repository.ErrCategoryReferencedByChild):
		return ErrCategoryHasChildren
	default:
		return err
	}
}
