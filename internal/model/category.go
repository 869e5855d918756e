package model

// Category 分类树节点，parentId 为空表示根分类
// 列表接口直接返回原始行，因此模型自带 json 标签
type Category struct {
	ID       string  `gorm:"column:id;primaryKey;type:varchar(64)" json:"id"`
	Name     string  `gorm:"column:name;type:varchar(128);not null" json:"name"`
	ParentID *string `gorm:"column:parentId;type:varchar(64);index:idx_parent_id" json:"parentId"`
}

func (Category) TableName() string {
	return "categories"
}
