// Package generator 调用远程生成服务从分块文本产出问答对
package generator

import (
	"bytes"
	"context"
	"encoding/json"
	"fmt"
	"io"
	"net/http"
	"time"

	"github.com/ashwinyue/docqa/internal/config"
	"github.com/ashwinyue/docqa/internal/errs"
)

// QAPair 问答对
type QAPair struct {
	Question string `json:"question"`
	Answer   string `json:"answer"`
}

// Service QA 生成服务
type Service struct {
	baseURL          string
	model            string
	maxPairs         int
	promptCharBudget int
	client           *http.Client
}

// NewService 创建生成服务
func NewService(cfg *config.Config) *Service {
	return &Service{
		baseURL:          cfg.Ollama.BaseURL,
		model:            cfg.Ollama.Model,
		maxPairs:         cfg.Generator.MaxPairs,
		promptCharBudget: cfg.Generator.PromptCharBudget,
		client: &http.Client{
			Timeout: time.Duration(cfg.Ollama.Timeout) * time.Second,
		},
	}
}

// BuildPrompt 构造生成提示词，分块文本截断到字符预算
func (s *Service) BuildPrompt(content string) string {
	if len(content) > s.promptCharBudget {
		content = content[:s.promptCharBudget]
	}
	return "You are an expert in metagenomics. Given the following document chunk, " +
		"generate 3 diverse high-quality question-answer pairs grounded in the text. " +
		"Each answer must be directly supported by the chunk. " +
		"Return as JSON lines with keys 'question' and 'answer'.\n\n" +
		"CHUNK:\n" + content + "\n\n" +
		"Output 3 lines, each a compact JSON object."
}

// generateRequest 远程生成请求体
type generateRequest struct {
	Model  string `json:"model"`
	Prompt string `json:"prompt"`
	Stream bool   `json:"stream"`
}

// generateResponse 远程生成响应体
type generateResponse struct {
	Response string `json:"response"`
}

// Generate 为一个分块生成问答对
// 传输层错误向上传播，由调用方决定中止
func (s *Service) Generate(ctx context.Context, content string) ([]QAPair, error) {
	raw, err := s.callRemote(ctx, s.BuildPrompt(content))
	if err != nil {
		return nil, err
	}
	return s.FilterPairs(ParseLines(raw)), nil
}

// callRemote 单次阻塞调用远程生成端点
func (s *Service) callRemote(ctx context.Context, prompt string) (string, error) {
	body, err := json.Marshal(generateRequest{
		Model:  s.model,
		Prompt: prompt,
		Stream: false,
	})
	if err != nil {
		return "", fmt.Errorf("failed to marshal request: %w", err)
	}

	url := s.baseURL + "/api/generate"
	req, err := http.NewRequestWithContext(ctx, http.MethodPost, url, bytes.NewReader(body))
	if err != nil {
		return "", fmt.Errorf("failed to build request: %w", err)
	}
	req.Header.Set("Content-Type", "application/json")

	resp, err := s.client.Do(req)
	if err != nil {
		return "", errs.Upstreamf("generation request failed")
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return "", errs.Upstreamf("generation endpoint returned status %d", resp.StatusCode)
	}

	respBody, err := io.ReadAll(resp.Body)
	if err != nil {
		return "", errs.Upstreamf("failed to read generation response")
	}

	var out generateResponse
	if err := json.Unmarshal(respBody, &out); err != nil {
		return "", errs.Upstreamf("failed to decode generation response")
	}
	return out.Response, nil
}

// FilterPairs 从候选记录中提取有效问答对
// 去除空白，丢弃缺失 question/answer 的记录，截断到 maxPairs
func (s *Service) FilterPairs(items []map[string]any) []QAPair {
	results := make([]QAPair, 0, s.maxPairs)
	for _, it := range items {
		q := trimmedString(it["question"])
		a := trimmedString(it["answer"])
		if q == "" || a == "" {
			continue
		}
		results = append(results, QAPair{Question: q, Answer: a})
		if len(results) == s.maxPairs {
			break
		}
	}
	return results
}
