// Package qafilter 对自动生成的 QA 记录做结构校验与内容过滤
package qafilter

import (
	"encoding/json"
	"strings"

	"github.com/go-playground/validator/v10"
)

// 拒答短语黑名单，答案中命中任一（忽略大小写）即拒绝
var refusalPhrases = []string{"as an ai", "i cannot", "sorry"}

// QARecord 自动生成的 QA 记录
type QARecord struct {
	ID        string     `json:"id" validate:"required"`
	Topic     *string    `json:"topic"`
	Tool      *string    `json:"tool"`
	Version   *string    `json:"version"`
	URL       string     `json:"url" validate:"required"`
	ChunkID   string     `json:"chunk_id" validate:"required"`
	Question  string     `json:"question" validate:"required,min=8"`
	Answer    string     `json:"answer" validate:"required,min=8"`
	Citations []Citation `json:"citations" validate:"required,min=1"`
}

// Citation 引用的字符区间，起止偏移允许为 null 但键必须存在
type Citation struct {
	CharStart *int
	CharEnd   *int

	hasStart bool
	hasEnd   bool
}

// UnmarshalJSON 记录键是否出现，以区分缺键与显式 null
func (c *Citation) UnmarshalJSON(data []byte) error {
	var raw map[string]json.RawMessage
	if err := json.Unmarshal(data, &raw); err != nil {
		return err
	}

	if v, ok := raw["char_start"]; ok {
		c.hasStart = true
		if err := json.Unmarshal(v, &c.CharStart); err != nil {
			return err
		}
	}
	if v, ok := raw["char_end"]; ok {
		c.hasEnd = true
		if err := json.Unmarshal(v, &c.CharEnd); err != nil {
			return err
		}
	}
	return nil
}

// MarshalJSON 与解析格式对称
func (c Citation) MarshalJSON() ([]byte, error) {
	return json.Marshal(map[string]*int{
		"char_start": c.CharStart,
		"char_end":   c.CharEnd,
	})
}

// Filter 校验器
type Filter struct {
	validate *validator.Validate
}

// New 创建校验器
func New() *Filter {
	return &Filter{validate: validator.New()}
}

// ParseRecord 解析一行 QA 记录
func ParseRecord(line []byte) (*QARecord, error) {
	var rec QARecord
	if err := json.Unmarshal(line, &rec); err != nil {
		return nil, err
	}
	return &rec, nil
}

// Accept 判定记录是否通过
// 结构校验 AND url 含 "http" AND 答案不含拒答短语
func (f *Filter) Accept(rec *QARecord) bool {
	if rec == nil {
		return false
	}
	if err := f.validate.Struct(rec); err != nil {
		return false
	}
	for _, cit := range rec.Citations {
		if !cit.hasStart || !cit.hasEnd {
			return false
		}
	}
	if !strings.Contains(rec.URL, "http") {
		return false
	}

	answer := strings.ToLower(rec.Answer)
	for _, phrase := range refusalPhrases {
		if strings.Contains(answer, phrase) {
			return false
		}
	}
	return true
}

// AcceptLine 解析并判定一行原始记录
func (f *Filter) AcceptLine(line []byte) bool {
	rec, err := ParseRecord(line)
	if err != nil {
		return false
	}
	return f.Accept(rec)
}
