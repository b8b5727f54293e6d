// Package scrape 抓取网页并抽取正文文本
package scrape

import (
	"context"
	"fmt"
	"net/http"
	"strings"
	"time"

	"github.com/PuerkitoBio/goquery"
)

// Record 抓取结果记录
type Record struct {
	URL         string  `json:"url"`
	OK          bool    `json:"ok"`
	Reason      string  `json:"reason,omitempty"`
	Title       *string `json:"title"`
	Text        string  `json:"text,omitempty"`
	RetrievedAt int64   `json:"retrieved_at,omitempty"`
}

// Scraper 网页抓取器
type Scraper struct {
	client *http.Client
}

// New 创建抓取器
func New(timeout time.Duration) *Scraper {
	return &Scraper{
		client: &http.Client{Timeout: timeout},
	}
}

// Scrape 抓取单个 URL
// 抓取或抽取失败时返回 ok=false 的记录而非错误
func (s *Scraper) Scrape(ctx context.Context, url string) *Record {
	req, err := http.NewRequestWithContext(ctx, http.MethodGet, url, nil)
	if err != nil {
		return &Record{URL: url, OK: false, Reason: "fetch_failed"}
	}

	resp, err := s.client.Do(req)
	if err != nil {
		return &Record{URL: url, OK: false, Reason: "fetch_failed"}
	}
	defer resp.Body.Close()

	if resp.StatusCode < 200 || resp.StatusCode >= 300 {
		return &Record{URL: url, OK: false, Reason: "fetch_failed"}
	}

	doc, err := goquery.NewDocumentFromReader(resp.Body)
	if err != nil {
		return &Record{URL: url, OK: false, Reason: "extract_failed"}
	}

	text := Extract(doc)
	if text == "" {
		return &Record{URL: url, OK: false, Reason: "extract_failed"}
	}

	return &Record{
		URL:         url,
		OK:          true,
		Text:        text,
		RetrievedAt: time.Now().Unix(),
	}
}

// Extract 从文档抽取正文：标题、段落、列表项与表格行
func Extract(doc *goquery.Document) string {
	var parts []string

	doc.Find("script, style, nav, footer").Remove()

	doc.Find("h1, h2, h3, h4, p, li, pre").Each(func(_ int, sel *goquery.Selection) {
		if text := strings.TrimSpace(sel.Text()); text != "" {
			parts = append(parts, text)
		}
	})

	// 表格按行展开，单元格用 | 分隔
	doc.Find("table tr").Each(func(_ int, row *goquery.Selection) {
		var cells []string
		row.Find("th, td").Each(func(_ int, cell *goquery.Selection) {
			cells = append(cells, strings.TrimSpace(cell.Text()))
		})
		if len(cells) > 0 {
			parts = append(parts, strings.Join(cells, " | "))
		}
	})

	return strings.TrimSpace(strings.Join(parts, "\n"))
}

// ExtractHTML 从原始 HTML 字符串抽取正文
func ExtractHTML(html string) (string, error) {
	doc, err := goquery.NewDocumentFromReader(strings.NewReader(html))
	if err != nil {
		return "", fmt.Errorf("failed to parse html: %w", err)
	}
	return Extract(doc), nil
}
