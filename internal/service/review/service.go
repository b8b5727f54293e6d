// Package review 提供人工审核：标注提交、状态流转、统计与导出
package review

import (
	"bytes"
	"context"
	"encoding/csv"
	"encoding/json"
	"errors"
	"fmt"
	"time"

	"github.com/google/uuid"
	"gorm.io/gorm"

	"github.com/ashwinyue/docqa/internal/errs"
	"github.com/ashwinyue/docqa/internal/model"
	"github.com/ashwinyue/docqa/internal/repository"
)

// 状态流转阈值
// validated 且 score >= ReadyThreshold 置为 ready
// validated 且 score < RejectThreshold 置为 rejected
// 其余情况状态不变
const (
	ReadyThreshold  = 0.7
	RejectThreshold = 0.3
)

// Service 审核服务
type Service struct {
	repo *repository.Repositories
}

// NewService 创建审核服务
func NewService(repo *repository.Repositories) *Service {
	return &Service{repo: repo}
}

// AnnotateRequest 标注提交请求
type AnnotateRequest struct {
	QAItemID       string  `json:"qa_item_id" binding:"required"`
	EditedQuestion string  `json:"edited_question"`
	EditedAnswer   string  `json:"edited_answer"`
	Score          float64 `json:"score"`
	Comment        string  `json:"comment"`
	Validated      bool    `json:"validated"`
}

// Annotate 提交一条标注并应用状态流转
// 标注行与状态变更在同一事务中提交
func (s *Service) Annotate(ctx context.Context, req *AnnotateRequest, annotatorID string) (*model.Annotation, error) {
	item, err := s.repo.QA.GetByID(req.QAItemID)
	if err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, errs.NotFoundf("qa item %s", req.QAItemID)
		}
		return nil, fmt.Errorf("failed to load qa item: %w", err)
	}

	ann := &model.Annotation{
		ID:             uuid.New().String(),
		QAItemRef:      item.ID,
		EditedQuestion: req.EditedQuestion,
		EditedAnswer:   req.EditedAnswer,
		Score:          req.Score,
		Comment:        req.Comment,
		Validated:      req.Validated,
		AnnotatedBy:    annotatorID,
	}

	next := NextStatus(item.Status, req.Validated, req.Score)

	err = s.repo.DB.WithContext(ctx).Transaction(func(tx *gorm.DB) error {
		if err := tx.Create(ann).Error; err != nil {
			return err
		}
		if next != item.Status {
			if err := tx.Model(&model.QAItem{}).Where("id = ?", item.ID).
				Update("status", next).Error; err != nil {
				return err
			}
		}
		return nil
	})
	if err != nil {
		return nil, fmt.Errorf("failed to save annotation: %w", err)
	}

	return ann, nil
}

// NextStatus 状态流转规则
// 终态条目允许再次标注，规则照常应用（不做终态保护）
func NextStatus(current string, validated bool, score float64) string {
	if !validated {
		return current
	}
	if score >= ReadyThreshold {
		return model.StatusReady
	}
	if score < RejectThreshold {
		return model.StatusRejected
	}
	return current
}

// AnnotatorSummary 反规范化的标注者摘要
type AnnotatorSummary struct {
	Name  string  `json:"name"`
	Date  string  `json:"date"`
	Score float64 `json:"score"`
}

// PendingItem 待审核条目视图
type PendingItem struct {
	ID         string             `json:"id"`
	ChunkID    string             `json:"chunk_id"`
	Question   string             `json:"question"`
	Answer     string             `json:"answer"`
	Status     string             `json:"status"`
	CreatedAt  string             `json:"created_at"`
	Annotators []AnnotatorSummary `json:"annotators"`
}

// ListPending 列出待审核条目，附带标注者摘要
func (s *Service) ListPending(ctx context.Context) ([]*PendingItem, error) {
	items, err := s.repo.QA.ListByStatus(model.StatusPending)
	if err != nil {
		return nil, fmt.Errorf("failed to list pending items: %w", err)
	}

	result := make([]*PendingItem, 0, len(items))
	for _, item := range items {
		anns, err := s.repo.QA.ListAnnotations(item.ID)
		if err != nil {
			return nil, fmt.Errorf("failed to list annotations: %w", err)
		}

		annotators := make([]AnnotatorSummary, 0, len(anns))
		for _, ann := range anns {
			user, err := s.repo.Auth.GetUserByID(ann.AnnotatedBy)
			if err != nil {
				continue
			}
			annotators = append(annotators, AnnotatorSummary{
				Name:  user.DisplayName(),
				Date:  ann.CreatedAt.Format(time.RFC3339),
				Score: ann.Score,
			})
		}

		result = append(result, &PendingItem{
			ID:         item.ID,
			ChunkID:    item.ChunkRef,
			Question:   item.Question,
			Answer:     item.Answer,
			Status:     item.Status,
			CreatedAt:  item.CreatedAt.Format(time.RFC3339),
			Annotators: annotators,
		})
	}
	return result, nil
}

// Stats 按状态聚合计数
type Stats struct {
	Total    int64 `json:"total"`
	Pending  int64 `json:"pending"`
	Ready    int64 `json:"ready"`
	Rejected int64 `json:"rejected"`
}

// GetStats 统计各状态条目数量
func (s *Service) GetStats(ctx context.Context) (*Stats, error) {
	total, err := s.repo.QA.Count()
	if err != nil {
		return nil, err
	}
	pending, err := s.repo.QA.CountByStatus(model.StatusPending)
	if err != nil {
		return nil, err
	}
	ready, err := s.repo.QA.CountByStatus(model.StatusReady)
	if err != nil {
		return nil, err
	}
	rejected, err := s.repo.QA.CountByStatus(model.StatusRejected)
	if err != nil {
		return nil, err
	}
	return &Stats{Total: total, Pending: pending, Ready: ready, Rejected: rejected}, nil
}

// ReadyItem 已通过条目视图
type ReadyItem struct {
	ID        string `json:"id"`
	ChunkID   string `json:"chunk_id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	Status    string `json:"status"`
	CreatedAt string `json:"created_at"`
}

// ListReady 列出已通过条目
func (s *Service) ListReady(ctx context.Context) ([]*ReadyItem, error) {
	items, err := s.repo.QA.ListByStatus(model.StatusReady)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready items: %w", err)
	}

	result := make([]*ReadyItem, 0, len(items))
	for _, item := range items {
		result = append(result, &ReadyItem{
			ID:        item.ID,
			ChunkID:   item.ChunkRef,
			Question:  item.Question,
			Answer:    item.Answer,
			Status:    item.Status,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}
	return result, nil
}

// exportRecord 导出记录
type exportRecord struct {
	ID        string `json:"id"`
	Question  string `json:"question"`
	Answer    string `json:"answer"`
	CreatedAt string `json:"created_at"`
}

// ExportJSON 导出已通过条目为 JSON
func (s *Service) ExportJSON(ctx context.Context) ([]byte, error) {
	items, err := s.repo.QA.ListByStatus(model.StatusReady)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready items: %w", err)
	}

	records := make([]exportRecord, 0, len(items))
	for _, item := range items {
		records = append(records, exportRecord{
			ID:        item.ID,
			Question:  item.Question,
			Answer:    item.Answer,
			CreatedAt: item.CreatedAt.Format(time.RFC3339),
		})
	}
	return json.MarshalIndent(records, "", "  ")
}

// ExportCSV 导出已通过条目为 CSV
func (s *Service) ExportCSV(ctx context.Context) ([]byte, error) {
	items, err := s.repo.QA.ListByStatus(model.StatusReady)
	if err != nil {
		return nil, fmt.Errorf("failed to list ready items: %w", err)
	}

	var buf bytes.Buffer
	w := csv.NewWriter(&buf)
	if err := w.Write([]string{"id", "question", "answer", "created_at"}); err != nil {
		return nil, err
	}
	for _, item := range items {
		if err := w.Write([]string{
			item.ID,
			item.Question,
			item.Answer,
			item.CreatedAt.Format(time.RFC3339),
		}); err != nil {
			return nil, err
		}
	}
	w.Flush()
	if err := w.Error(); err != nil {
		return nil, err
	}
	return buf.Bytes(), nil
}
