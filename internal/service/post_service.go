package service

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"Lumina/internal/pkg/consts"
	"Lumina/internal/repository"
	"context"
	"errors"
	"strconv"
	"strings"
	"time"

	"github.com/goccy/go-json"
	"github.com/jinzhu/copier"
	"gorm.io/gorm"
)

type PostService interface {
	ListPosts(ctx context.Context) ([]*dto.PostDTO, error)
	GetPost(ctx context.Context, id string) (*dto.PostDTO, error)
	SavePost(ctx context.Context, req *dto.PostDTO) (string, error)
	DeletePost(ctx context.Context, id string) error
}

type postServiceImpl struct {
	postRepo repository.PostRepo
}

func NewPostService(postRepo repository.PostRepo) PostService {
	return &postServiceImpl{
		postRepo: postRepo,
	}
}

func (s *postServiceImpl) ListPosts(ctx context.Context) ([]*dto.PostDTO, error) {
	rows, err := s.postRepo.ListPosts(ctx)
	if err != nil {
		return nil, err
	}

	posts := make([]*dto.PostDTO, 0, len(rows))
	for _, row := range rows {
		posts = append(posts, toPostDTO(row))
	}
	return posts, nil
}

func (s *postServiceImpl) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	row, err := s.postRepo.GetPost(ctx, id)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrPostNotFound
		}
		return nil, err
	}
	return toPostDTO(row), nil
}

// SavePost 以 id 为键整体保存：已存在则覆盖全部可变字段并刷新 updatedAt，
// createdAt 与 authorName 保留首次写入值；不存在则插入新行
func (s *postServiceImpl) SavePost(ctx context.Context, req *dto.PostDTO) (string, error) {
	id := strings.TrimSpace(req.ID)
	if id == "" {
		id = strconv.FormatInt(time.Now().UnixMilli(), 10)
	}

	if req.Tags == nil {
		req.Tags = []string{}
	}
	tagBytes, err := json.Marshal(req.Tags)
	if err != nil {
		return "", ErrParamInvalid
	}

	var row model.Post
	if err = copier.Copy(&row, req); err != nil {
		return "", err
	}
	row.ID = id
	row.Tags = string(tagBytes)
	row.IsFeatured = 0
	if req.IsFeatured {
		row.IsFeatured = 1
	}

	now := time.Now().UnixMilli()
	_, err = s.postRepo.GetPost(ctx, id)
	switch {
	case errors.Is(err, gorm.ErrRecordNotFound):
		row.CreatedAt = now
		row.UpdatedAt = now
		row.AuthorName = req.Author.Username
		if row.AuthorName == "" {
			row.AuthorName = consts.DefaultAuthorName
		}
		if err = s.postRepo.CreatePost(ctx, &row); err != nil {
			return "", err
		}
	case err != nil:
		return "", err
	default:
		row.UpdatedAt = now
		if err = s.postRepo.UpdatePost(ctx, &row); err != nil {
			return "", err
		}
	}

	return id, nil
}

func (s *postServiceImpl) DeletePost(ctx context.Context, id string) error {
	return s.postRepo.DeletePost(ctx, id)
}

// toPostDTO 行到对外形态的整形：tags 解析失败时退化为空数组，绝不报错
func toPostDTO(row *model.Post) *dto.PostDTO {
	item := &dto.PostDTO{}
	_ = copier.Copy(item, row)

	item.Tags = []string{}
	if row.Tags != "" {
		var tags []string
		if err := json.Unmarshal([]byte(row.Tags), &tags); err == nil && tags != nil {
			item.Tags = tags
		}
	}

	item.IsFeatured = row.IsFeatured != 0

	username := row.AuthorName
	if username == "" {
		username = consts.DefaultAuthorName
	}
	item.Author = dto.AuthorDTO{Username: username, Role: "ADMIN"}

	return item
}
