// Package chunker 将文档全文切分为重叠的定长 token 窗口
package chunker

import (
	"fmt"
	"hash/fnv"
)

// Tokenizer 分词器
type Tokenizer interface {
	Encode(text string) []int
	Decode(tokens []int) string
}

// Chunk 分块记录
// CharStart/CharEnd 暂不填充，保持为空
type Chunk struct {
	ChunkID   string `json:"chunk_id"`
	URL       string `json:"url"`
	CharStart *int   `json:"char_start"`
	CharEnd   *int   `json:"char_end"`
	Text      string `json:"text"`
}

// Chunker 分块器
type Chunker struct {
	tokenizer Tokenizer
	minTokens int
	maxTokens int
	stride    int
}

// New 创建分块器
func New(tokenizer Tokenizer, minTokens, maxTokens, stride int) (*Chunker, error) {
	if tokenizer == nil {
		return nil, fmt.Errorf("tokenizer is required")
	}
	if minTokens <= 0 || maxTokens <= 0 || stride <= 0 {
		return nil, fmt.Errorf("chunk parameters must be positive: min=%d max=%d stride=%d",
			minTokens, maxTokens, stride)
	}
	if minTokens > maxTokens {
		return nil, fmt.Errorf("minTokens %d exceeds maxTokens %d", minTokens, maxTokens)
	}
	return &Chunker{
		tokenizer: tokenizer,
		minTokens: minTokens,
		maxTokens: maxTokens,
		stride:    stride,
	}, nil
}

// Split 按窗口切分全文
// 窗口大小 maxTokens，每步前进 stride；剩余窗口不足 minTokens 时停止。
// 全文短于 minTokens 时产出零个分块。
func (c *Chunker) Split(text, url string) []Chunk {
	tokens := c.tokenizer.Encode(text)

	var chunks []Chunk
	for i := 0; i < len(tokens); i += c.stride {
		end := i + c.maxTokens
		if end > len(tokens) {
			end = len(tokens)
		}
		window := tokens[i:end]
		if len(window) < c.minTokens {
			break
		}

		chunks = append(chunks, Chunk{
			ChunkID: ChunkID(url, i),
			URL:     url,
			Text:    c.tokenizer.Decode(window),
		})
	}
	return chunks
}

// ChunkID 从来源 URL 与窗口起始偏移派生稳定标识
func ChunkID(url string, offset int) string {
	h := fnv.New64a()
	h.Write([]byte(url))
	return fmt.Sprintf("%d_%d", h.Sum64(), offset)
}
