package model

// Post 博客文章行，tags 列以 JSON 文本存储，时间戳为毫秒时间戳
// createdAt/updatedAt 由 service 层维护，不使用 gorm 自动时间
type Post struct {
	ID         string `gorm:"column:id;primaryKey;type:varchar(64)"`
	Title      string `gorm:"column:title;type:varchar(255)"`
	Excerpt    string `gorm:"column:excerpt;type:text"`
	Content    string `gorm:"column:content;type:longtext"`
	CoverImage string `gorm:"column:coverImage;type:varchar(512)"`
	CreatedAt  int64  `gorm:"column:createdAt;autoCreateTime:false;index:idx_created_at"`
	UpdatedAt  int64  `gorm:"column:updatedAt;autoUpdateTime:false"`
	CategoryID string `gorm:"column:categoryId;type:varchar(64);index:idx_category_id"`
	Tags       string `gorm:"column:tags;type:text"`
	IsFeatured int    `gorm:"column:isFeatured;type:tinyint(1);not null;default:0"`
	AudioURL   string `gorm:"column:audioUrl;type:varchar(512)"`
	AuthorName string `gorm:"column:authorName;type:varchar(64)"`
}

func (Post) TableName() string {
	return "posts"
}
