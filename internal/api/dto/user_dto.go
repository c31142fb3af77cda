package dto

// CredentialDTO 登录凭据
type CredentialDTO struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

// RegisterDTO 注册请求
type RegisterDTO struct {
	Username string `json:"username" validate:"required,min=4,max=50"`
	Password string `json:"password" validate:"required,min=8,max=64"`
}

// LoginResultDTO 登录结果
type LoginResultDTO struct {
	Token    string `json:"token"`
	Username string `json:"username"`
}

// UserDTO 当前用户视图
type UserDTO struct {
	ID        uint64 `json:"id"`
	Username  string `json:"username"`
	CreatedAt string `json:"created_at"`
}
