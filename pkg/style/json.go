package style

import (
	"bytes"
	"encoding/json"
	"fmt"
	"io"
	"regexp"
	"strings"

	"github.com/charmbracelet/lipgloss"
)

// PrintJSON 将任意值以美化（缩进）并带有简洁高亮的方式输出到 writer
//
// 入参支持:
//   - string / []byte: 视为原始 JSON 文本；会尝试校验并缩进
//   - 其他任意 Go 值: 使用 [json.MarshalIndent] 编码后再渲染
func PrintJSON(w io.Writer, v any) error {
	pretty, err := FormatJSON(v)
	if err != nil {
		return err
	}
	_, err = fmt.Fprint(w, colorizeJSON(pretty))
	return err
}

// FormatJSON 返回美化（缩进）的 JSON 字符串，总以换行结尾
func FormatJSON(v any) (string, error) {
	var src []byte
	switch x := v.(type) {
	case nil:
		return "null\n", nil
	case string:
		src = []byte(x)
	case []byte:
		src = x
	default:
		b, err := json.Marshal(v)
		if err != nil {
			return "", err
		}
		src = b
	}

	src = bytes.TrimSpace(src)
	if len(src) == 0 {
		return "null\n", nil
	}
	var out bytes.Buffer
	if err := json.Indent(&out, src, "", "  "); err != nil {
		return "", err
	}
	out.WriteByte('\n')
	return out.String(), nil
}

// jsonToken 依次匹配: 字符串（可能是键）、数字、字面量、标点
var jsonToken = regexp.MustCompile(`("(?:\\.|[^"\\])*")(\s*:)?|(-?\d+(?:\.\d+)?(?:[eE][+-]?\d+)?)|\b(true|false|null)\b|([{}\[\],])`)

// colorizeJSON 对已经缩进好的 JSON 文本进行轻量高亮，空白保持原样
func colorizeJSON(s string) string {
	keyStyle := lipgloss.NewStyle().Foreground(ColorJSONKey).Bold(true)
	strStyle := lipgloss.NewStyle().Foreground(ColorJSONValue)
	numStyle := lipgloss.NewStyle().Foreground(ColorJSONNumber)
	boolStyle := lipgloss.NewStyle().Foreground(ColorJSONBool)
	nullStyle := lipgloss.NewStyle().Foreground(ColorJSONNull)
	punctStyle := lipgloss.NewStyle().Foreground(ColorJSONPunct)

	var b strings.Builder
	last := 0
	for _, m := range jsonToken.FindAllStringSubmatchIndex(s, -1) {
		b.WriteString(s[last:m[0]])
		last = m[1]
		switch {
		case m[2] >= 0 && m[4] >= 0: // key
			b.WriteString(keyStyle.Render(s[m[2]:m[3]]))
			b.WriteString(punctStyle.Render(s[m[4]:m[5]]))
		case m[2] >= 0:
			b.WriteString(strStyle.Render(s[m[2]:m[3]]))
		case m[6] >= 0:
			b.WriteString(numStyle.Render(s[m[6]:m[7]]))
		case m[8] >= 0:
			lit := s[m[8]:m[9]]
			if lit == "null" {
				b.WriteString(nullStyle.Render(lit))
			} else {
				b.WriteString(boolStyle.Render(lit))
			}
		default:
			b.WriteString(punctStyle.Render(s[m[10]:m[11]]))
		}
	}
	b.WriteString(s[last:])
	return b.String()
}
