// Package inspect summarises the section schemas found in a theme.
package inspect

import (
	"sort"

	"github.com/lithammer/fuzzysearch/fuzzy"

	"github.com/hyldmo/shopify-codegen/pkg/liquid"
	"github.com/hyldmo/shopify-codegen/pkg/models"
)

// SettingInfo is one generated property.
type SettingInfo struct {
	ID       string `json:"id" yaml:"id" toml:"id"`
	Kind     string `json:"kind" yaml:"kind" toml:"kind"`
	TSType   string `json:"ts_type" yaml:"ts_type" toml:"ts_type"`
	Required bool   `json:"required" yaml:"required" toml:"required"`
}

// BlockInfo is one valid block of a section.
type BlockInfo struct {
	TypeName string        `json:"type_name" yaml:"type_name" toml:"type_name"`
	Type     string        `json:"type" yaml:"type" toml:"type"`
	Settings []SettingInfo `json:"settings" yaml:"settings" toml:"settings"`
}

// SectionInfo is one template that carried a schema.
type SectionInfo struct {
	File     string        `json:"file" yaml:"file" toml:"file"`
	Name     string        `json:"name" yaml:"name" toml:"name"`
	TypeName string        `json:"type_name" yaml:"type_name" toml:"type_name"`
	Tag      string        `json:"tag" yaml:"tag" toml:"tag"`
	Settings []SettingInfo `json:"settings" yaml:"settings" toml:"settings"`
	Blocks   []BlockInfo   `json:"blocks" yaml:"blocks" toml:"blocks"`
}

// Report is the inspection result for a sections directory.
type Report struct {
	Dir      string        `json:"dir" yaml:"dir" toml:"dir"`
	Sections []SectionInfo `json:"sections" yaml:"sections" toml:"sections"`
}

// NewReport converts generator results into a report.
func NewReport(dir string, results []liquid.SectionResult) *Report {
	r := &Report{Dir: dir, Sections: make([]SectionInfo, 0, len(results))}
	for _, res := range results {
		sec := SectionInfo{
			File:     res.FileName,
			Name:     res.Schema.Name,
			TypeName: res.TypeName,
			Tag:      res.Schema.TagOrDefault(),
			Settings: settingInfos(res.Schema.Settings),
		}
		byType := make(map[string]models.BlockSchema, len(res.Schema.Blocks))
		for _, b := range res.Schema.Blocks {
			if _, ok := byType[b.Type]; !ok {
				byType[b.Type] = b
			}
		}
		for _, b := range res.Blocks {
			info := BlockInfo{TypeName: b.Name, Type: b.Type}
			if schema, ok := byType[b.Type]; ok && !schema.IsApp() {
				info.Settings = settingInfos(schema.Settings)
			}
			sec.Blocks = append(sec.Blocks, info)
		}
		r.Sections = append(r.Sections, sec)
	}
	return r
}

func settingInfos(list models.SettingList) []SettingInfo {
	var out []SettingInfo
	for _, s := range list.Properties() {
		ts, required := liquid.MapType(s)
		if ts == "" {
			continue
		}
		out = append(out, SettingInfo{ID: s.SettingID(), Kind: string(s.Kind()), TSType: ts, Required: required})
	}
	return out
}

// Filter keeps the sections whose file, name, type name or block type names
// fuzzily match query, best matches first. An empty query keeps everything.
func (r *Report) Filter(query string) *Report {
	if query == "" {
		return r
	}
	type ranked struct {
		sec  SectionInfo
		rank int
	}
	var hits []ranked
	for _, sec := range r.Sections {
		best := -1
		for _, target := range sec.targets() {
			if rank := fuzzy.RankMatchNormalizedFold(query, target); rank >= 0 && (best < 0 || rank < best) {
				best = rank
			}
		}
		if best >= 0 {
			hits = append(hits, ranked{sec: sec, rank: best})
		}
	}
	sort.SliceStable(hits, func(i, j int) bool { return hits[i].rank < hits[j].rank })

	out := &Report{Dir: r.Dir, Sections: make([]SectionInfo, 0, len(hits))}
	for _, h := range hits {
		out.Sections = append(out.Sections, h.sec)
	}
	return out
}

func (s SectionInfo) targets() []string {
	t := []string{s.File, s.Name, s.TypeName}
	for _, b := range s.Blocks {
		t = append(t, b.TypeName)
	}
	return t
}
