package inspect

import (
	"fmt"
	"io"
	"strings"

	"github.com/hyldmo/shopify-codegen/pkg/configs"
	"github.com/hyldmo/shopify-codegen/pkg/style"
)

// Format is a report rendering.
type Format string

// Report formats. json, yaml and toml go through configs.OutputData.
const (
	FormatTree     Format = "tree"
	FormatTable    Format = "table"
	FormatText     Format = "text"
	FormatMarkdown Format = "markdown"
	FormatJSON     Format = "json"
	FormatYAML     Format = "yaml"
	FormatTOML     Format = "toml"
)

// ValidFormats lists the accepted --format values.
func ValidFormats() []string {
	return []string{
		string(FormatTree), string(FormatTable), string(FormatText), string(FormatMarkdown),
		string(FormatJSON), string(FormatYAML), string(FormatTOML),
	}
}

// ParseFormat validates a format name.
func ParseFormat(s string) (Format, error) {
	switch f := Format(strings.ToLower(s)); f {
	case FormatTree, FormatTable, FormatText, FormatMarkdown, FormatJSON, FormatYAML, FormatTOML:
		return f, nil
	case "md":
		return FormatMarkdown, nil
	case "yml":
		return FormatYAML, nil
	default:
		return "", fmt.Errorf("unsupported format '%s', supported formats: %s", s, strings.Join(ValidFormats(), ", "))
	}
}

// Render writes the report in the given format. color only affects json.
func Render(w io.Writer, r *Report, format Format, color bool) error {
	switch format {
	case FormatTree:
		return style.PrintTree(w, Tree(r))
	case FormatTable:
		return style.PrintTable(w, []string{"section", "block", "setting", "kind", "type"}, TableRows(r), 0)
	case FormatText:
		return renderText(w, r)
	case FormatMarkdown:
		return style.RenderMarkdown(w, Markdown(r), 0, "")
	case FormatJSON:
		return configs.OutputData(r, configs.FormatJSON, w, color)
	case FormatYAML:
		return configs.OutputData(r, configs.FormatYAML, w, false)
	case FormatTOML:
		return configs.OutputData(r, configs.FormatTOML, w, false)
	default:
		return fmt.Errorf("unsupported format: %s", format)
	}
}

func settingLabel(s SettingInfo) string {
	marker := "?"
	if s.Required {
		marker = ""
	}
	return fmt.Sprintf("%s%s: %s", s.ID, marker, s.TSType)
}

// Tree builds the section > block > setting hierarchy.
func Tree(r *Report) style.TreeNode {
	root := style.TreeNode{Text: fmt.Sprintf("%s (%d sections)", r.Dir, len(r.Sections))}
	for _, sec := range r.Sections {
		node := style.TreeNode{Text: fmt.Sprintf("%s  %s", sec.TypeName, sec.File)}
		for _, s := range sec.Settings {
			node.Children = append(node.Children, style.TreeNode{Text: settingLabel(s)})
		}
		for _, b := range sec.Blocks {
			bn := style.TreeNode{Text: fmt.Sprintf("%s  type %q", b.TypeName, b.Type)}
			for _, s := range b.Settings {
				bn.Children = append(bn.Children, style.TreeNode{Text: settingLabel(s)})
			}
			node.Children = append(node.Children, bn)
		}
		root.Children = append(root.Children, node)
	}
	return root
}

// TableRows flattens the report into one row per setting. Sections and blocks
// without settings still get a row.
func TableRows(r *Report) [][]string {
	var rows [][]string
	add := func(section, block string, settings []SettingInfo) {
		if len(settings) == 0 {
			rows = append(rows, []string{section, block, "", "", ""})
			return
		}
		for _, s := range settings {
			rows = append(rows, []string{section, block, settingLabel(s), s.Kind, s.TSType})
		}
	}
	for _, sec := range r.Sections {
		add(sec.TypeName, "", sec.Settings)
		for _, b := range sec.Blocks {
			add(sec.TypeName, b.TypeName, b.Settings)
		}
	}
	return rows
}

func renderText(w io.Writer, r *Report) error {
	for i, sec := range r.Sections {
		if i > 0 {
			if _, err := fmt.Fprintln(w); err != nil {
				return err
			}
		}
		if err := style.PrintHeading(w, sec.TypeName); err != nil {
			return err
		}
		items := []style.Item{
			{Name: "file", Description: sec.File},
			{Name: "name", Description: sec.Name},
			{Name: "tag", Description: sec.Tag},
		}
		for _, s := range sec.Settings {
			items = append(items, style.Item{Name: s.ID, Description: s.TSType, Muted: !s.Required})
		}
		for _, b := range sec.Blocks {
			items = append(items, style.Item{
				Name:        b.TypeName,
				Description: fmt.Sprintf("block %q, %d settings", b.Type, len(b.Settings)),
			})
		}
		if err := style.PrintItems(w, items); err != nil {
			return err
		}
	}
	return nil
}

// Markdown renders the report as a markdown document.
func Markdown(r *Report) string {
	var b strings.Builder
	fmt.Fprintf(&b, "# Sections in `%s`\n\n", r.Dir)
	if len(r.Sections) == 0 {
		b.WriteString("_No sections with a schema._\n")
		return b.String()
	}
	for _, sec := range r.Sections {
		fmt.Fprintf(&b, "## %s\n\n", sec.TypeName)
		fmt.Fprintf(&b, "`%s` · %s · `<%s>`\n\n", sec.File, sec.Name, sec.Tag)
		writeSettingsTable(&b, sec.Settings)
		for _, blk := range sec.Blocks {
			fmt.Fprintf(&b, "### %s\n\nBlock type `%s`\n\n", blk.TypeName, blk.Type)
			writeSettingsTable(&b, blk.Settings)
		}
	}
	return b.String()
}

func writeSettingsTable(b *strings.Builder, settings []SettingInfo) {
	if len(settings) == 0 {
		return
	}
	b.WriteString("| Setting | Kind | Type | Required |\n|---|---|---|---|\n")
	for _, s := range settings {
		req := "no"
		if s.Required {
			req = "yes"
		}
		fmt.Fprintf(b, "| `%s` | %s | `%s` | %s |\n", s.ID, s.Kind, strings.ReplaceAll(s.TSType, "|", "\\|"), req)
	}
	b.WriteString("\n")
}
