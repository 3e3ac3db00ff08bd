package inspect

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ktr0731/go-fuzzyfinder"
)

// ErrNothingToPick is returned when the report has no sections.
var ErrNothingToPick = errors.New("no sections to select")

// Pick lets the user choose a section interactively, with a preview of its
// settings. It needs a terminal; fuzzyfinder.ErrAbort is returned on Esc.
func Pick(r *Report) (*Report, error) {
	if len(r.Sections) == 0 {
		return nil, ErrNothingToPick
	}
	idx, err := fuzzyfinder.Find(r.Sections,
		func(i int) string {
			s := r.Sections[i]
			return fmt.Sprintf("%s  %s", s.TypeName, s.File)
		},
		fuzzyfinder.WithPreviewWindow(func(i, _, _ int) string {
			if i < 0 {
				return ""
			}
			return preview(r.Sections[i])
		}),
	)
	if err != nil {
		return nil, err
	}
	if idx < 0 || idx >= len(r.Sections) {
		return nil, fmt.Errorf("invalid selection")
	}
	return &Report{Dir: r.Dir, Sections: []SectionInfo{r.Sections[idx]}}, nil
}

func preview(s SectionInfo) string {
	var b strings.Builder
	fmt.Fprintf(&b, "%s (%s)\n", s.Name, s.Tag)
	for _, setting := range s.Settings {
		fmt.Fprintf(&b, "  %s\n", settingLabel(setting))
	}
	for _, blk := range s.Blocks {
		fmt.Fprintf(&b, "%s\n", blk.TypeName)
		for _, setting := range blk.Settings {
			fmt.Fprintf(&b, "  %s\n", settingLabel(setting))
		}
	}
	return b.String()
}
