package style

import (
	"fmt"
	"io"
	"strings"

	"github.com/charmbracelet/lipgloss"
	"github.com/mattn/go-runewidth"
)

// Item 描述一个带说明的条目
type Item struct {
	Name        string
	Description string
	Muted       bool
}

// PrintHeading 打印一个区块标题
func PrintHeading(w io.Writer, title string) error {
	style := lipgloss.NewStyle().
		Foreground(ColorAccentText).
		Background(ColorAccentPrimary).
		Bold(true).
		Padding(0, 1)
	_, err := fmt.Fprintln(w, style.Render(strings.ToUpper(title)))
	return err
}

// PrintItems 以对齐的方式打印条目列表；按显示宽度对齐，兼容 CJK 与 emoji
func PrintItems(w io.Writer, items []Item) error {
	if len(items) == 0 {
		return nil
	}
	maxName := 0
	for _, it := range items {
		maxName = max(maxName, runewidth.StringWidth(it.Name))
	}

	nameStyle := lipgloss.NewStyle().Foreground(ColorAccentPrimary).Bold(true)
	mutedStyle := lipgloss.NewStyle().Foreground(ColorBorder)
	descStyle := lipgloss.NewStyle().Foreground(ColorText)

	for _, it := range items {
		name := nameStyle.Render(it.Name)
		if it.Muted {
			name = mutedStyle.Render(it.Name)
		}
		padding := strings.Repeat(" ", maxName-runewidth.StringWidth(it.Name))
		line := fmt.Sprintf("  %s%s  %s", name, padding, descStyle.Render(it.Description))
		if _, err := fmt.Fprintln(w, line); err != nil {
			return err
		}
	}
	return nil
}

// PrintSuccess 打印一行绿色的成功信息
func PrintSuccess(w io.Writer, format string, args ...any) error {
	style := lipgloss.NewStyle().Foreground(ColorSuccess)
	_, err := fmt.Fprintln(w, style.Render("✓ "+fmt.Sprintf(format, args...)))
	return err
}

// PrintError 打印一行红色的错误信息
func PrintError(w io.Writer, format string, args ...any) error {
	style := lipgloss.NewStyle().Foreground(ColorDanger)
	_, err := fmt.Fprintln(w, style.Render(fmt.Sprintf(format, args...)))
	return err
}

// Truncate 按显示宽度截断字符串，超出部分以 … 结尾
func Truncate(s string, width int) string {
	if width <= 0 || runewidth.StringWidth(s) <= width {
		return s
	}
	return runewidth.Truncate(s, width, "…")
}
