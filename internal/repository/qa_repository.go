package repository

import (
	"github.com/ashwinyue/docqa/internal/model"
	"gorm.io/gorm"
)

// QARepository QA 条目与标注数据访问
type QARepository struct {
	db *gorm.DB
}

// NewQARepository 创建 QA 仓库
func NewQARepository(db *gorm.DB) *QARepository {
	return &QARepository{db: db}
}

// Create 创建 QA 条目
func (r *QARepository) Create(item *model.QAItem) error {
	return r.db.Create(item).Error
}

// GetByID 按 ID 获取 QA 条目
func (r *QARepository) GetByID(id string) (*model.QAItem, error) {
	var item model.QAItem
	err := r.db.Where("id = ?", id).First(&item).Error
	if err != nil {
		return nil, err
	}
	return &item, nil
}

// ListByStatus 按状态列出 QA 条目
func (r *QARepository) ListByStatus(status string) ([]*model.QAItem, error) {
	var items []*model.QAItem
	err := r.db.Where("status = ?", status).Order("created_at").Find(&items).Error
	return items, err
}

// CountByStatus 按状态统计
func (r *QARepository) CountByStatus(status string) (int64, error) {
	var count int64
	err := r.db.Model(&model.QAItem{}).Where("status = ?", status).Count(&count).Error
	return count, err
}

// Count 统计全部 QA 条目
func (r *QARepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.QAItem{}).Count(&count).Error
	return count, err
}

// ListAnnotations 列出某条目的全部标注
func (r *QARepository) ListAnnotations(qaItemID string) ([]*model.Annotation, error) {
	var anns []*model.Annotation
	err := r.db.Where("qa_item_ref = ?", qaItemID).Order("created_at").Find(&anns).Error
	return anns, err
}
