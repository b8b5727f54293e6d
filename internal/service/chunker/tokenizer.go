package chunker

import (
	"fmt"

	"github.com/pkoukk/tiktoken-go"
)

// TiktokenTokenizer cl100k_base BPE 分词器
type TiktokenTokenizer struct {
	enc *tiktoken.Tiktoken
}

// NewTiktokenTokenizer 创建 cl100k_base 分词器
func NewTiktokenTokenizer() (*TiktokenTokenizer, error) {
	enc, err := tiktoken.GetEncoding("cl100k_base")
	if err != nil {
		return nil, fmt.Errorf("failed to load cl100k_base encoding: %w", err)
	}
	return &TiktokenTokenizer{enc: enc}, nil
}

// Encode 编码为 token 序列
func (t *TiktokenTokenizer) Encode(text string) []int {
	return t.enc.Encode(text, nil, nil)
}

// Decode 解码回文本
func (t *TiktokenTokenizer) Decode(tokens []int) string {
	return t.enc.Decode(tokens)
}
