package dto

type LoginDTO struct {
	Username string `json:"username" binding:"required"`
	Password string `json:"password" binding:"required"`
}

// UserDTO 会话级用户信息，avatarUrl 为派生值不落库
type UserDTO struct {
	ID        string `json:"id"`
	Username  string `json:"username"`
	Role      string `json:"role"`
	AvatarURL string `json:"avatarUrl"`
}

type LoginResult struct {
	Token string  `json:"token"`
	User  UserDTO `json:"user"`
}
