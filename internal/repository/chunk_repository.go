package repository

import (
	"github.com/ashwinyue/docqa/internal/model"
	"gorm.io/gorm"
)

// ChunkRepository 分块数据访问
type ChunkRepository struct {
	db *gorm.DB
}

// NewChunkRepository 创建分块仓库
func NewChunkRepository(db *gorm.DB) *ChunkRepository {
	return &ChunkRepository{db: db}
}

// Create 创建分块
func (r *ChunkRepository) Create(chunk *model.Chunk) error {
	return r.db.Create(chunk).Error
}

// GetByID 按 ID 获取分块
func (r *ChunkRepository) GetByID(id string) (*model.Chunk, error) {
	var chunk model.Chunk
	err := r.db.Where("id = ?", id).First(&chunk).Error
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// GetByChunkID 按稳定标识获取分块
func (r *ChunkRepository) GetByChunkID(chunkID string) (*model.Chunk, error) {
	var chunk model.Chunk
	err := r.db.Where("chunk_id = ?", chunkID).First(&chunk).Error
	if err != nil {
		return nil, err
	}
	return &chunk, nil
}

// List 列出分块
func (r *ChunkRepository) List(offset, limit int) ([]*model.Chunk, error) {
	var chunks []*model.Chunk
	err := r.db.Order("created_at").Offset(offset).Limit(limit).Find(&chunks).Error
	return chunks, err
}

// Count 统计分块数量
func (r *ChunkRepository) Count() (int64, error) {
	var count int64
	err := r.db.Model(&model.Chunk{}).Count(&count).Error
	return count, err
}
