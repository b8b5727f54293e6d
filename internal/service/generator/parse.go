package generator

import (
	"encoding/json"
	"strings"

	"github.com/kaptinlin/jsonrepair"
)

// ParseLines 逐行宽松解析模型输出
// 每行先按 JSON 解析；失败时用 jsonrepair 修复后再试；仍失败则静默跳过。
func ParseLines(text string) []map[string]any {
	var items []map[string]any
	for _, line := range strings.Split(text, "\n") {
		line = strings.TrimSpace(line)
		if line == "" {
			continue
		}

		var obj map[string]any
		if err := json.Unmarshal([]byte(line), &obj); err == nil {
			items = append(items, obj)
			continue
		}

		repaired, err := jsonrepair.JSONRepair(line)
		if err != nil {
			continue
		}
		if err := json.Unmarshal([]byte(repaired), &obj); err == nil && obj != nil {
			items = append(items, obj)
		}
	}
	return items
}

// trimmedString 取字符串值并去除首尾空白，非字符串返回空
func trimmedString(v any) string {
	s, ok := v.(string)
	if !ok {
		return ""
	}
	return strings.TrimSpace(s)
}
