package dto

// CreateAccountDTO 新增 IG 账号
type CreateAccountDTO struct {
	Name              string  `json:"name" validate:"required"`
	IgUserID          string  `json:"ig_user_id" validate:"required"`
	AccessToken       string  `json:"access_token" validate:"required"`
	Username          string  `json:"username" validate:"required"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}

// AccountDTO 账号响应视图，不回传 access_token
type AccountDTO struct {
	ID                uint64  `json:"id"`
	Name              string  `json:"name"`
	IgUserID          string  `json:"ig_user_id"`
	Username          string  `json:"username"`
	ProfilePictureURL *string `json:"profile_picture_url"`
}
