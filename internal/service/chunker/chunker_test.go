// Package chunker 分块器单元测试
package chunker

import (
	"strings"
	"testing"
)

// wordTokenizer 按空白切词的测试分词器
type wordTokenizer struct {
	words []string
	index map[string]int
}

func newWordTokenizer() *wordTokenizer {
	return &wordTokenizer{index: make(map[string]int)}
}

func (t *wordTokenizer) Encode(text string) []int {
	var tokens []int
	for _, w := range strings.Fields(text) {
		id, ok := t.index[w]
		if !ok {
			id = len(t.words)
			t.index[w] = id
			t.words = append(t.words, w)
		}
		tokens = append(tokens, id)
	}
	return tokens
}

func (t *wordTokenizer) Decode(tokens []int) string {
	words := make([]string, 0, len(tokens))
	for _, id := range tokens {
		words = append(words, t.words[id])
	}
	return strings.Join(words, " ")
}

// makeText 生成含 n 个不同词的文本
func makeText(n int) string {
	var sb strings.Builder
	for i := 0; i < n; i++ {
		if i > 0 {
			sb.WriteByte(' ')
		}
		sb.WriteString("w")
		sb.WriteString(strings.Repeat("x", i%7))
		sb.WriteString(strings.Repeat("y", i/7))
	}
	return sb.String()
}

// ========== Split 测试 ==========

func TestChunker_Split_ShortDocument(t *testing.T) {
	tests := []struct {
		name   string
		tokens int
	}{
		{name: "empty document", tokens: 0},
		{name: "single token", tokens: 1},
		{name: "one below minimum", tokens: 9},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			ck, err := New(newWordTokenizer(), 10, 20, 5)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			chunks := ck.Split(makeText(tt.tokens), "https://example.org/doc")
			if len(chunks) != 0 {
				t.Errorf("Split() produced %d chunks, want 0", len(chunks))
			}
		})
	}
}

func TestChunker_Split_WindowBounds(t *testing.T) {
	tests := []struct {
		name      string
		minTokens int
		maxTokens int
		stride    int
		docTokens int
	}{
		{name: "exact multiple", minTokens: 10, maxTokens: 20, stride: 5, docTokens: 100},
		{name: "ragged tail", minTokens: 10, maxTokens: 20, stride: 7, docTokens: 93},
		{name: "stride equals max", minTokens: 5, maxTokens: 10, stride: 10, docTokens: 47},
		{name: "production ratios scaled down", minTokens: 40, maxTokens: 80, stride: 16, docTokens: 300},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			tok := newWordTokenizer()
			ck, err := New(tok, tt.minTokens, tt.maxTokens, tt.stride)
			if err != nil {
				t.Fatalf("New() error = %v", err)
			}

			text := makeText(tt.docTokens)
			chunks := ck.Split(text, "https://example.org/doc")
			if len(chunks) == 0 {
				t.Fatal("Split() produced no chunks")
			}

			for i, ch := range chunks {
				n := len(tok.Encode(ch.Text))
				if n < tt.minTokens || n > tt.maxTokens {
					t.Errorf("chunk %d has %d tokens, want in [%d, %d]",
						i, n, tt.minTokens, tt.maxTokens)
				}
			}

			// stride <= max 时相邻窗口重叠 max-stride 个 token
			if tt.stride <= tt.maxTokens && len(chunks) > 1 {
				first := tok.Encode(chunks[0].Text)
				second := tok.Encode(chunks[1].Text)
				wantOverlap := tt.maxTokens - tt.stride
				overlap := len(first) - tt.stride
				if overlap != wantOverlap {
					t.Errorf("window overlap = %d, want %d", overlap, wantOverlap)
				}
				for j := 0; j < overlap; j++ {
					if first[tt.stride+j] != second[j] {
						t.Fatalf("overlapping token %d differs between windows", j)
					}
				}
			}
		})
	}
}

func TestChunker_Split_ChunkIDs(t *testing.T) {
	tok := newWordTokenizer()
	ck, err := New(tok, 10, 20, 5)
	if err != nil {
		t.Fatalf("New() error = %v", err)
	}

	text := makeText(60)
	chunks := ck.Split(text, "https://example.org/doc")

	seen := make(map[string]bool)
	for _, ch := range chunks {
		if seen[ch.ChunkID] {
			t.Errorf("duplicate chunk id %s", ch.ChunkID)
		}
		seen[ch.ChunkID] = true

		if ch.URL != "https://example.org/doc" {
			t.Errorf("chunk url = %s, want source url", ch.URL)
		}
		if ch.CharStart != nil || ch.CharEnd != nil {
			t.Error("char offsets should stay null")
		}
	}

	// 同一 URL 与偏移的标识稳定
	again := ck.Split(text, "https://example.org/doc")
	if again[0].ChunkID != chunks[0].ChunkID {
		t.Error("chunk id is not stable across runs")
	}

	// 不同 URL 产生不同标识
	other := ck.Split(text, "https://example.org/other")
	if other[0].ChunkID == chunks[0].ChunkID {
		t.Error("chunk id does not depend on url")
	}
}

// ========== 参数校验测试 ==========

func TestNew_InvalidParams(t *testing.T) {
	tests := []struct {
		name      string
		minTokens int
		maxTokens int
		stride    int
	}{
		{name: "zero min", minTokens: 0, maxTokens: 20, stride: 5},
		{name: "zero stride", minTokens: 10, maxTokens: 20, stride: 0},
		{name: "negative max", minTokens: 10, maxTokens: -1, stride: 5},
		{name: "min above max", minTokens: 30, maxTokens: 20, stride: 5},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if _, err := New(newWordTokenizer(), tt.minTokens, tt.maxTokens, tt.stride); err == nil {
				t.Error("New() expected error, got nil")
			}
		})
	}
}
