package model

import "time"

// QA 审核状态
const (
	// StatusPending 初始状态，等待人工审核
	StatusPending = "pending"
	// StatusReady 审核通过，可导出
	StatusReady = "ready"
	// StatusRejected 审核未通过
	StatusRejected = "rejected"
)

// QAItem 候选问答对，归属于一个分块
// (ChunkRef, Question) 组合唯一
type QAItem struct {
	ID          string    `gorm:"primaryKey;size:36" json:"id"`
	ChunkRef    string    `gorm:"size:36;not null;uniqueIndex:uq_chunk_question,priority:1" json:"chunk_id"`
	Question    string    `gorm:"type:text;not null;uniqueIndex:uq_chunk_question,priority:2" json:"question"`
	Answer      string    `gorm:"type:text;not null" json:"answer"`
	CategoryRef *string   `gorm:"size:36" json:"category_id,omitempty"`
	Status      string    `gorm:"size:20;index;not null;default:pending" json:"status"`
	CreatedBy   *string   `gorm:"size:36" json:"created_by,omitempty"`
	CreatedAt   time.Time `gorm:"autoCreateTime" json:"created_at"`

	Annotations []Annotation `gorm:"foreignKey:QAItemRef" json:"-"`
}

// TableName 指定表名
func (QAItem) TableName() string {
	return "qa_items"
}

// Annotation 人工审核记录，追加写入，不删除不合并
type Annotation struct {
	ID             string    `gorm:"primaryKey;size:36" json:"id"`
	QAItemRef      string    `gorm:"index;size:36;not null" json:"qa_item_id"`
	EditedQuestion string    `gorm:"type:text" json:"edited_question"`
	EditedAnswer   string    `gorm:"type:text" json:"edited_answer"`
	Score          float64   `gorm:"default:0" json:"score"`
	Comment        string    `gorm:"type:text" json:"comment"`
	Validated      bool      `gorm:"default:false" json:"validated"`
	AnnotatedBy    string    `gorm:"index;size:36;not null" json:"annotated_by"`
	CreatedAt      time.Time `gorm:"autoCreateTime" json:"created_at"`
}

// TableName 指定表名
func (Annotation) TableName() string {
	return "annotations"
}
