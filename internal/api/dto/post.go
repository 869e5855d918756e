package dto

// AuthorDTO 冗余的作者展示信息，非关联关系
type AuthorDTO struct {
	Username string `json:"username"`
	Role     string `json:"role"`
}

// PostDTO 文章的对外形态：tags 恒为数组，isFeatured 恒为布尔
type PostDTO struct {
	ID         string    `json:"id"`
	Title      string    `json:"title"`
	Excerpt    string    `json:"excerpt"`
	Content    string    `json:"content"`
	CoverImage string    `json:"coverImage"`
	CreatedAt  int64     `json:"createdAt"`
	UpdatedAt  int64     `json:"updatedAt"`
	CategoryID string    `json:"categoryId"`
	Tags       []string  `json:"tags"`
	IsFeatured bool      `json:"isFeatured"`
	AudioURL   string    `json:"audioUrl"`
	Author     AuthorDTO `json:"author"`
}

type SavePostResult struct {
	Success bool   `json:"success"`
	ID      string `json:"id"`
}

type DeleteResult struct {
	Success bool `json:"success"`
}

type UploadResult struct {
	URL string `json:"url"`
}
