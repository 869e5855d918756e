// Package client 是 API 的类型化访问层，对应前端的 fetch 封装：
// 列表类接口失败时降级为空列表，其余接口把归一化后的错误上抛
package client

import (
	"Lumina/internal/api/dto"
	"Lumina/internal/model"
	"context"
	"errors"
	"io"
	log "log/slog"

	"github.com/go-resty/resty/v2"
	"github.com/goccy/go-json"
)

type Client struct {
	http  *resty.Client
	token string
}

// New baseURL 为 API 根地址，token 为写操作使用的 Bearer 凭证
func New(baseURL string, token string) *Client {
	return &Client{
		http:  resty.New().SetBaseURL(baseURL),
		token: token,
	}
}

// normalizeError 优先取响应体里的 {error} 字段，取不到则退回 HTTP 状态文本
func normalizeError(resp *resty.Response) error {
	var body struct {
		Error string `json:"error"`
	}
	if err := json.Unmarshal(resp.Body(), &body); err == nil && body.Error != "" {
		return errors.New(body.Error)
	}
	return errors.New(resp.Status())
}

func (c *Client) authed(ctx context.Context) *resty.Request {
	return c.http.R().SetContext(ctx).SetAuthToken(c.token)
}

// GetPosts 任何失败都吞掉并记日志，返回空列表，首屏加载无需特判
func (c *Client) GetPosts(ctx context.Context) []*dto.PostDTO {
	var posts []*dto.PostDTO
	resp, err := c.http.R().SetContext(ctx).SetResult(&posts).Get("/api/posts")
	if err != nil || resp.IsError() {
		log.WarnContext(ctx, "Fetch posts failed", "err", err)
		return []*dto.PostDTO{}
	}
	return posts
}

// GetCategories 降级策略同 GetPosts
func (c *Client) GetCategories(ctx context.Context) []*model.Category {
	var categories []*model.Category
	resp, err := c.http.R().SetContext(ctx).SetResult(&categories).Get("/api/categories")
	if err != nil || resp.IsError() {
		log.WarnContext(ctx, "Fetch categories failed", "err", err)
		return []*model.Category{}
	}
	return categories
}

func (c *Client) GetPost(ctx context.Context, id string) (*dto.PostDTO, error) {
	var post dto.PostDTO
	resp, err := c.http.R().SetContext(ctx).SetResult(&post).Get("/api/posts/" + id)
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, normalizeError(resp)
	}
	return &post, nil
}

func (c *Client) SavePost(ctx context.Context, post *dto.PostDTO) (*dto.SavePostResult, error) {
	var result dto.SavePostResult
	resp, err := c.authed(ctx).SetBody(post).SetResult(&result).Post("/api/posts")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, normalizeError(resp)
	}
	return &result, nil
}

func (c *Client) DeletePost(ctx context.Context, id string) error {
	resp, err := c.authed(ctx).Delete("/api/posts/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return normalizeError(resp)
	}
	return nil
}

// UploadFile 文件内容必须随请求附带为 multipart 的 file 字段
func (c *Client) UploadFile(ctx context.Context, filename string, reader io.Reader) (string, error) {
	var result dto.UploadResult
	resp, err := c.authed(ctx).
		SetFileReader("file", filename, reader).
		SetResult(&result).
		Put("/api/upload")
	if err != nil {
		return "", err
	}
	if resp.IsError() {
		return "", normalizeError(resp)
	}
	if result.URL == "" {
		return "", errors.New("上传成功但未返回 URL")
	}
	return result.URL, nil
}

func (c *Client) CreateCategory(ctx context.Context, name string, parentID *string) (*model.Category, error) {
	var category model.Category
	resp, err := c.authed(ctx).
		SetBody(dto.CreateCategoryDTO{Name: name, ParentID: parentID}).
		SetResult(&category).
		Post("/api/categories")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, normalizeError(resp)
	}
	return &category, nil
}

func (c *Client) DeleteCategory(ctx context.Context, id string) error {
	resp, err := c.authed(ctx).Delete("/api/categories/" + id)
	if err != nil {
		return err
	}
	if resp.IsError() {
		return normalizeError(resp)
	}
	return nil
}

// Login 成功后把返回的 JWT 作为后续写操作的 Bearer 凭证
func (c *Client) Login(ctx context.Context, username, password string) (*dto.LoginResult, error) {
	var result dto.LoginResult
	resp, err := c.http.R().SetContext(ctx).
		SetBody(dto.LoginDTO{Username: username, Password: password}).
		SetResult(&result).
		Post("/api/auth/login")
	if err != nil {
		return nil, err
	}
	if resp.IsError() {
		return nil, normalizeError(resp)
	}
	c.token = result.Token
	return &result, nil
}
