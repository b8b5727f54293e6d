package model

import "time"

// Chunk 文档分块
// 由上传接口或 docqactl chunk 写入，写入后不可变
type Chunk struct {
	ID        string    `gorm:"primaryKey;size:36" json:"id"`
	ChunkID   string    `gorm:"uniqueIndex;size:128;not null" json:"chunk_id"`
	SourceURL string    `gorm:"type:text" json:"source_url"`
	Content   string    `gorm:"type:text;not null" json:"content"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`

	QAItems []QAItem `gorm:"foreignKey:ChunkRef" json:"-"`
}

// TableName 指定表名
func (Chunk) TableName() string {
	return "chunks"
}

// Category 分类标签（可选）
type Category struct {
	ID          string `gorm:"primaryKey;size:36" json:"id"`
	Name        string `gorm:"uniqueIndex;size:128;not null" json:"name"`
	Description string `gorm:"type:text" json:"description"`
}

// TableName 指定表名
func (Category) TableName() string {
	return "categories"
}
