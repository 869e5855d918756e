package service

import (
	"Lumina/internal/api/config"
	"Lumina/internal/api/dto"
	"Lumina/internal/pkg/security"
	"context"
	log "log/slog"
	"net/url"
)

type AuthService interface {
	Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResult, error)
}

type authServiceImpl struct{}

func NewAuthService() AuthService {
	return &authServiceImpl{}
}

// Login 校验配置的管理员账号（bcrypt 哈希），签发带 ADMIN 角色的 JWT
func (s *authServiceImpl) Login(ctx context.Context, req *dto.LoginDTO) (*dto.LoginResult, error) {
	cfg := config.Cfg.Auth

	if cfg.AdminUsername == "" || cfg.AdminPasswordHash == "" {
		log.WarnContext(ctx, "管理员账号未配置，登录接口不可用")
		return nil, ErrLoginIncorrect
	}

	if req.Username != cfg.AdminUsername {
		return nil, ErrLoginIncorrect
	}
	if err := security.CheckPasswordHash(req.Password, cfg.AdminPasswordHash); err != nil {
		return nil, ErrLoginIncorrect
	}

	token, err := security.GenerateToken(req.Username, security.RoleAdmin)
	if err != nil {
		return nil, err
	}

	return &dto.LoginResult{
		Token: token,
		User: dto.UserDTO{
			ID:        "admin",
			Username:  req.Username,
			Role:      security.RoleAdmin,
			AvatarURL: "https://ui-avatars.com/api/?name=" + url.QueryEscape(req.Username),
		},
	}, nil
}
