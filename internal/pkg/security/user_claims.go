package security

import (
	"time"

	"github.com/golang-jwt/jwt/v5"
)

const JWTExpirationTime = time.Hour * 24

// RoleAdmin 后台唯一的管理角色
const RoleAdmin = "ADMIN"

// UserClaims 定义了 Token 中需要包含的业务信息
type UserClaims struct {
	Username string `json:"username"`
	Role     string `json:"role"`
	jwt.RegisteredClaims
}
