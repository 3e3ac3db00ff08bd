// Package liquid generates TypeScript declarations from the {% schema %} blocks of
// Shopify section templates.
package liquid

import (
	"context"
	"fmt"
	"os"
	"path/filepath"
	"runtime"
	"strings"

	"github.com/rs/zerolog"
	orderedmap "github.com/wk8/go-ordered-map/v2"
	"golang.org/x/sync/errgroup"

	"github.com/hyldmo/shopify-codegen/pkg/models"
	"github.com/hyldmo/shopify-codegen/pkg/utils/log"
)

// DefaultExtension is the template file extension scanned in the sections directory.
const DefaultExtension = ".liquid"

// Options controls a generation run. Zero values fall back to defaults.
type Options struct {
	Dir         string          // sections directory
	Extension   string          // template extension, ".liquid" by default
	Prefix      bool            // append Section/Block suffixes to type names
	Concurrency int             // parallel file workers, <=0 means NumCPU
	Logger      *zerolog.Logger // diagnostics sink, the global logger when nil
}

func (o Options) extension() string {
	if o.Extension == "" {
		return DefaultExtension
	}
	return o.Extension
}

func (o Options) concurrency() int {
	if o.Concurrency > 0 {
		return o.Concurrency
	}
	return max(runtime.NumCPU(), 1)
}

func (o Options) logger() *zerolog.Logger {
	if o.Logger != nil {
		return o.Logger
	}
	return log.GetLogger()
}

// BlockResult is one valid block of a section.
type BlockResult struct {
	Name        string // synthesized interface name
	Type        string // block type as written in the schema
	Declaration string
}

// SectionResult is everything generated from one template file.
type SectionResult struct {
	FileName    string
	Schema      *models.SectionSchema
	TypeName    string
	Declaration string
	Blocks      []BlockResult
}

// BlockNames returns the distinct block interface names of the section, in order.
func (r *SectionResult) BlockNames() []string {
	seen := make(map[string]struct{}, len(r.Blocks))
	names := make([]string, 0, len(r.Blocks))
	for _, b := range r.Blocks {
		if _, ok := seen[b.Name]; ok {
			continue
		}
		seen[b.Name] = struct{}{}
		names = append(names, b.Name)
	}
	return names
}

// Generate renders the type module for every template in opts.Dir.
func Generate(ctx context.Context, opts Options) (string, error) {
	results, err := Collect(ctx, opts)
	if err != nil {
		return "", err
	}
	return Assemble(results, opts.logger()), nil
}

// Collect extracts and composes every template in opts.Dir. Files are processed
// concurrently; the returned slice follows file-name order and only holds files
// that carried a schema. A missing or unreadable directory is an error, a bad file
// is logged and skipped.
func Collect(ctx context.Context, opts Options) ([]SectionResult, error) {
	files, err := listTemplates(opts.Dir, opts.extension())
	if err != nil {
		return nil, err
	}
	logger := opts.logger()
	logger.Debug().Str("dir", opts.Dir).Int("files", len(files)).Msg("scanning section templates")

	slots := make([]*SectionResult, len(files))
	g, gctx := errgroup.WithContext(ctx)
	g.SetLimit(opts.concurrency())
	for i, name := range files {
		g.Go(func() error {
			if err := gctx.Err(); err != nil {
				return err
			}
			slots[i] = processFile(opts, name, logger)
			return nil
		})
	}
	if err := g.Wait(); err != nil {
		return nil, err
	}

	results := make([]SectionResult, 0, len(files))
	for _, r := range slots {
		if r != nil {
			results = append(results, *r)
		}
	}
	return results, nil
}

// listTemplates returns the template file names in dir, sorted.
func listTemplates(dir, ext string) ([]string, error) {
	entries, err := os.ReadDir(dir)
	if err != nil {
		return nil, fmt.Errorf("read sections directory %s: %w", dir, err)
	}
	var files []string
	for _, e := range entries {
		if e.IsDir() || !strings.HasSuffix(e.Name(), ext) {
			continue
		}
		files = append(files, e.Name())
	}
	return files, nil
}

// processFile returns nil when the file has no usable schema.
func processFile(opts Options, name string, logger *zerolog.Logger) *SectionResult {
	content, err := os.ReadFile(filepath.Join(opts.Dir, name))
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("failed to read template")
		return nil
	}
	schema, err := ExtractSchema(content, name)
	if err != nil {
		logger.Error().Err(err).Str("file", name).Msg("skipping template with invalid schema")
		return nil
	}
	if schema == nil {
		logger.Trace().Str("file", name).Msg("no schema block")
		return nil
	}
	return ComposeSection(schema, name, opts)
}

// ComposeSection builds the section and block declarations of one parsed schema.
func ComposeSection(schema *models.SectionSchema, fileName string, opts Options) *SectionResult {
	base := SectionBaseName(fileName, opts.extension())
	res := &SectionResult{
		FileName: fileName,
		Schema:   schema,
		TypeName: SectionTypeName(strings.TrimSuffix(fileName, opts.extension()), opts.Prefix),
	}
	for _, block := range schema.Blocks {
		name := BlockTypeName(block.Type, base, opts.Prefix)
		decl, ok := ComposeBlockType(block, name)
		if !ok {
			continue
		}
		res.Blocks = append(res.Blocks, BlockResult{Name: name, Type: block.Type, Declaration: decl})
	}
	res.Declaration = ComposeSectionType(schema, res.TypeName, res.BlockNames())
	return res
}

// Assemble merges per-file results into the final document. Block declarations are
// de-duplicated by name across all sections; the first one wins. A block name that
// equals a section type name is logged as a warning.
func Assemble(results []SectionResult, logger *zerolog.Logger) string {
	sectionNames := make([]string, 0, len(results))
	sectionDecls := make([]string, 0, len(results))
	blocks := newDeclarationSet()
	sectionTypes := make(map[string]struct{}, len(results))
	for _, r := range results {
		sectionTypes[r.TypeName] = struct{}{}
	}

	for _, r := range results {
		sectionNames = append(sectionNames, r.TypeName)
		sectionDecls = append(sectionDecls, r.Declaration)
		for _, b := range r.Blocks {
			prev, added := blocks.add(b.Name, b.Declaration)
			if logger == nil {
				continue
			}
			if !added && prev != b.Declaration {
				logger.Warn().
					Str("block", b.Name).
					Str("file", r.FileName).
					Msg("block type name already declared with a different shape; keeping the first declaration")
			}
			if _, clash := sectionTypes[b.Name]; added && clash {
				// both interfaces are still emitted; --prefix keeps the names apart
				logger.Warn().
					Str("block", b.Name).
					Str("file", r.FileName).
					Msg("block type name is also a section type name; use --prefix to disambiguate")
			}
		}
	}
	return renderDocument(sectionNames, sectionDecls, blocks.values())
}

// declarationSet is an insertion-ordered name -> declaration map.
type declarationSet struct {
	m *orderedmap.OrderedMap[string, string]
}

func newDeclarationSet() *declarationSet {
	return &declarationSet{m: orderedmap.New[string, string]()}
}

// add stores decl under name unless the name is taken; it returns the stored
// declaration and whether decl was added.
func (s *declarationSet) add(name, decl string) (string, bool) {
	if prev, ok := s.m.Get(name); ok {
		return prev, false
	}
	s.m.Set(name, decl)
	return decl, true
}

func (s *declarationSet) values() []string {
	out := make([]string, 0, s.m.Len())
	for pair := s.m.Oldest(); pair != nil; pair = pair.Next() {
		out = append(out, pair.Value)
	}
	return out
}
