// Package generator 生成服务单元测试
package generator

import (
	"context"
	"errors"
	"net/http"
	"net/http/httptest"
	"strings"
	"testing"

	"github.com/ashwinyue/docqa/internal/config"
	"github.com/ashwinyue/docqa/internal/errs"
)

func testConfig(baseURL string) *config.Config {
	return &config.Config{
		Ollama: config.OllamaConfig{
			BaseURL: baseURL,
			Model:   "llama3.1:8b",
			Timeout: 5,
		},
		Generator: config.GeneratorConfig{
			MaxPairs:         3,
			PromptCharBudget: 4000,
		},
	}
}

// ========== ParseLines 测试 ==========

func TestParseLines(t *testing.T) {
	tests := []struct {
		name   string
		text   string
		want   int
		atMost bool
	}{
		{
			name: "three valid lines",
			text: `{"question":"q1","answer":"a1"}
{"question":"q2","answer":"a2"}
{"question":"q3","answer":"a3"}`,
			want: 3,
		},
		{
			name: "blank lines skipped",
			text: "\n{\"question\":\"q\",\"answer\":\"a\"}\n\n",
			want: 1,
		},
		{
			name: "garbage line dropped",
			// 纯文本行修复结果取决于修复器，最多仍只产出合法行
			text:   "not json at all ???\n{\"question\":\"q\",\"answer\":\"a\"}",
			want:   2,
			atMost: true,
		},
		{
			name: "empty input",
			text: "",
			want: 0,
		},
		{
			name: "trailing comma repaired",
			text: `{"question":"q","answer":"a",}`,
			want: 1,
		},
		{
			name: "single quotes repaired",
			text: `{'question':'q','answer':'a'}`,
			want: 1,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			items := ParseLines(tt.text)
			if tt.atMost {
				if len(items) > tt.want {
					t.Errorf("ParseLines() = %d items, want at most %d", len(items), tt.want)
				}
			} else if len(items) != tt.want {
				t.Errorf("ParseLines() = %d items, want %d", len(items), tt.want)
			}
			for _, it := range items {
				if it == nil {
					t.Error("ParseLines() produced nil item")
				}
			}
		})
	}
}

func TestParseLines_ValidLinesPreserved(t *testing.T) {
	items := ParseLines(`{"question":" What is MAG? ","answer":"A metagenome-assembled genome."}`)
	if len(items) != 1 {
		t.Fatalf("ParseLines() = %d items, want 1", len(items))
	}
	if items[0]["question"] != " What is MAG? " {
		t.Errorf("question altered during parse: %q", items[0]["question"])
	}
}

// ========== FilterPairs 测试 ==========

func TestFilterPairs(t *testing.T) {
	svc := NewService(testConfig("http://localhost:11434"))

	tests := []struct {
		name  string
		items []map[string]any
		want  []QAPair
	}{
		{
			name: "whitespace trimmed",
			items: []map[string]any{
				{"question": "  q1  ", "answer": "\ta1\n"},
			},
			want: []QAPair{{Question: "q1", Answer: "a1"}},
		},
		{
			name: "missing answer dropped",
			items: []map[string]any{
				{"question": "q1"},
				{"question": "q2", "answer": "a2"},
			},
			want: []QAPair{{Question: "q2", Answer: "a2"}},
		},
		{
			name: "blank question dropped",
			items: []map[string]any{
				{"question": "   ", "answer": "a1"},
			},
			want: nil,
		},
		{
			name: "non string values dropped",
			items: []map[string]any{
				{"question": 42, "answer": "a1"},
				{"question": "q2", "answer": []string{"a"}},
			},
			want: nil,
		},
		{
			name: "truncated to three pairs",
			items: []map[string]any{
				{"question": "q1", "answer": "a1"},
				{"question": "q2", "answer": "a2"},
				{"question": "q3", "answer": "a3"},
				{"question": "q4", "answer": "a4"},
			},
			want: []QAPair{
				{Question: "q1", Answer: "a1"},
				{Question: "q2", Answer: "a2"},
				{Question: "q3", Answer: "a3"},
			},
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := svc.FilterPairs(tt.items)
			if len(got) != len(tt.want) {
				t.Fatalf("FilterPairs() = %d pairs, want %d", len(got), len(tt.want))
			}
			for i := range got {
				if got[i] != tt.want[i] {
					t.Errorf("pair %d = %+v, want %+v", i, got[i], tt.want[i])
				}
			}
		})
	}
}

// ========== BuildPrompt 测试 ==========

func TestBuildPrompt_Truncation(t *testing.T) {
	svc := NewService(testConfig("http://localhost:11434"))

	long := strings.Repeat("a", 10000)
	prompt := svc.BuildPrompt(long)

	if strings.Count(prompt, "a") != 4000 {
		t.Errorf("chunk content not truncated, got %d chars", strings.Count(prompt, "a"))
	}
	if !strings.Contains(prompt, "CHUNK:") {
		t.Error("prompt missing CHUNK section")
	}
	if !strings.Contains(prompt, "metagenomics") {
		t.Error("prompt missing instruction text")
	}
}

// ========== Generate 测试 ==========

func TestGenerate_Success(t *testing.T) {
	var gotPath string
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		gotPath = r.URL.Path
		w.Header().Set("Content-Type", "application/json")
		w.Write([]byte(`{"response":"{\"question\":\"q1\",\"answer\":\"a1\"}\n{\"question\":\"q2\",\"answer\":\"a2\"}\n{\"question\":\"q3\",\"answer\":\"a3\"}"}`))
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL))
	pairs, err := svc.Generate(context.Background(), "some chunk text")
	if err != nil {
		t.Fatalf("Generate() error = %v", err)
	}
	if gotPath != "/api/generate" {
		t.Errorf("request path = %s, want /api/generate", gotPath)
	}
	if len(pairs) != 3 {
		t.Fatalf("Generate() = %d pairs, want 3", len(pairs))
	}
	if pairs[0].Question != "q1" || pairs[2].Answer != "a3" {
		t.Errorf("unexpected pairs: %+v", pairs)
	}
}

func TestGenerate_UpstreamError(t *testing.T) {
	srv := httptest.NewServer(http.HandlerFunc(func(w http.ResponseWriter, r *http.Request) {
		w.WriteHeader(http.StatusInternalServerError)
	}))
	defer srv.Close()

	svc := NewService(testConfig(srv.URL))
	_, err := svc.Generate(context.Background(), "some chunk text")
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}
	if !errors.Is(err, errs.ErrUpstream) {
		t.Errorf("Generate() error = %v, want ErrUpstream kind", err)
	}
}

func TestGenerate_Unreachable(t *testing.T) {
	// 关闭的端口，传输层直接失败
	svc := NewService(testConfig("http://127.0.0.1:1"))
	_, err := svc.Generate(context.Background(), "some chunk text")
	if err == nil {
		t.Fatal("Generate() expected error, got nil")
	}
	if !errors.Is(err, errs.ErrUpstream) {
		t.Errorf("Generate() error = %v, want ErrUpstream kind", err)
	}
}
