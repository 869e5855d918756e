package dto

// CreateCategoryDTO parentId 为空串与缺省等价，均落库为 NULL
type CreateCategoryDTO struct {
	Name     string  `json:"name"`
	ParentID *string `json:"parentId"`
}
