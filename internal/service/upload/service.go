// Package upload 负责 jsonl 分块文件的入库与同步 QA 生成
package upload

import (
	"bufio"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"strings"

	"github.com/google/uuid"

	"github.com/ashwinyue/docqa/internal/model"
	"github.com/ashwinyue/docqa/internal/repository"
	"github.com/ashwinyue/docqa/internal/service/generator"
)

// QAGenerator 生成器依赖
type QAGenerator interface {
	Generate(ctx context.Context, content string) ([]generator.QAPair, error)
}

// Service 上传服务
type Service struct {
	repo *repository.Repositories
	gen  QAGenerator
}

// NewService 创建上传服务
func NewService(repo *repository.Repositories, gen QAGenerator) *Service {
	return &Service{repo: repo, gen: gen}
}

// Result 入库计数
type Result struct {
	Chunks      int `json:"chunks"`
	QAGenerated int `json:"qa_generated"`
}

// chunkLine 上传文件中的一行分块记录
// 兼容 chunk_id/id 与 content/text 两组字段名
type chunkLine struct {
	ChunkID   string `json:"chunk_id"`
	ID        string `json:"id"`
	SourceURL string `json:"source_url"`
	URL       string `json:"url"`
	Content   string `json:"content"`
	Text      string `json:"text"`
}

// Ingest 逐行读取分块文件：入库分块，随后同步生成 QA 条目
// 坏行（非法 JSON、空内容）静默跳过；生成调用失败中止整个请求
func (s *Service) Ingest(ctx context.Context, r io.Reader, uploaderID string) (*Result, error) {
	result := &Result{}

	scanner := bufio.NewScanner(r)
	scanner.Buffer(make([]byte, 0, 64*1024), 16*1024*1024)
	for scanner.Scan() {
		line := strings.TrimSpace(scanner.Text())
		if line == "" {
			continue
		}

		var rec chunkLine
		if err := json.Unmarshal([]byte(line), &rec); err != nil {
			continue
		}

		content := rec.Content
		if content == "" {
			content = rec.Text
		}
		if content == "" {
			continue
		}

		chunkID := rec.ChunkID
		if chunkID == "" {
			chunkID = rec.ID
		}
		sourceURL := rec.SourceURL
		if sourceURL == "" {
			sourceURL = rec.URL
		}

		chunk := &model.Chunk{
			ID:        uuid.New().String(),
			ChunkID:   chunkID,
			SourceURL: sourceURL,
			Content:   content,
		}
		if err := s.repo.Chunk.Create(chunk); err != nil {
			return result, fmt.Errorf("failed to create chunk: %w", err)
		}
		result.Chunks++

		// 同步调用远程生成，失败时中止本次上传
		pairs, err := s.gen.Generate(ctx, chunk.Content)
		if err != nil {
			return result, err
		}

		for _, pair := range pairs {
			item := &model.QAItem{
				ID:       uuid.New().String(),
				ChunkRef: chunk.ID,
				Question: pair.Question,
				Answer:   pair.Answer,
				Status:   model.StatusPending,
			}
			if uploaderID != "" {
				item.CreatedBy = &uploaderID
			}
			if err := s.repo.QA.Create(item); err != nil {
				return result, fmt.Errorf("failed to create qa item: %w", err)
			}
			result.QAGenerated++
		}
	}
	if err := scanner.Err(); err != nil {
		return result, fmt.Errorf("failed to read upload: %w", err)
	}

	return result, nil
}
