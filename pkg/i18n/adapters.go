package i18n

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"log/slog"
	"os"
	"path"
	"sort"
)

// TranslationAdapter defines how catalogs are loaded.
type TranslationAdapter interface {
	Load(ctx context.Context) (map[string]map[string]any, error)
}

// MapAdapter serves catalogs from an in-memory map.
type MapAdapter struct {
	Data map[string]map[string]any
}

// Load implements TranslationAdapter.
func (a *MapAdapter) Load(_ context.Context) (map[string]map[string]any, error) {
	if a.Data == nil {
		return make(map[string]map[string]any), nil
	}
	out := make(map[string]map[string]any, len(a.Data))
	for lang, m := range a.Data {
		out[lang] = mergeInto(make(map[string]any, len(m)), m)
	}
	return out, nil
}

// FileAdapter loads a single catalog file from disk.
type FileAdapter struct {
	path   string
	parser Parser
}

// NewFileAdapter picks the parser from the file extension. Returns nil for
// unsupported extensions.
func NewFileAdapter(filePath string) *FileAdapter {
	parser := NewParserForFile(filePath)
	if parser == nil {
		return nil
	}
	return &FileAdapter{path: filePath, parser: parser}
}

// Load implements TranslationAdapter.
func (a *FileAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}
	content, err := os.ReadFile(a.path)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadFile, err)
	}
	out, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return nil, errors.Join(ErrFailedToParseFile, err)
	}
	return out, nil
}

// FSAdapter loads every catalog file of dir inside fsys that the parser
// supports. Files are processed in name order, later files override keys of
// earlier ones. A file that fails to parse is skipped and logged; Load only
// fails when no file could be loaded at all.
type FSAdapter struct {
	parser Parser
	fsys   fs.FS
	dir    string
	logger *slog.Logger
}

// NewFSAdapter creates an adapter over fsys. Use "." as dir for the root.
// Returns nil if parser or fsys is nil.
func NewFSAdapter(parser Parser, fsys fs.FS, dir string) *FSAdapter {
	if parser == nil || fsys == nil {
		return nil
	}
	if dir == "" {
		dir = "."
	}
	return &FSAdapter{
		parser: parser,
		fsys:   fsys,
		dir:    dir,
		logger: slog.New(slog.DiscardHandler),
	}
}

// NewDirAdapter creates an adapter that reads catalogs from a directory on disk.
func NewDirAdapter(parser Parser, dir string) *FSAdapter {
	if dir == "" {
		return nil
	}
	return NewFSAdapter(parser, os.DirFS(dir), ".")
}

// WithAdapterLogger sets the logger used to report skipped files.
func (a *FSAdapter) WithAdapterLogger(l *slog.Logger) *FSAdapter {
	if l != nil {
		a.logger = l
	}
	return a
}

// Load implements TranslationAdapter.
func (a *FSAdapter) Load(ctx context.Context) (map[string]map[string]any, error) {
	if err := ctx.Err(); err != nil {
		return nil, errors.Join(ErrLoadingCancelled, err)
	}

	entries, err := fs.ReadDir(a.fsys, a.dir)
	if err != nil {
		return nil, errors.Join(ErrFailedToReadDir, err)
	}
	sort.Slice(entries, func(i, j int) bool { return entries[i].Name() < entries[j].Name() })

	all := make(map[string]map[string]any)
	loaded := 0

	for _, entry := range entries {
		if entry.IsDir() || !a.parser.SupportsFileExtension(path.Ext(entry.Name())) {
			continue
		}
		if err := ctx.Err(); err != nil {
			return nil, errors.Join(ErrLoadingCancelled, err)
		}

		filePath := path.Join(a.dir, entry.Name())
		if err := a.loadFile(ctx, filePath, all); err != nil {
			a.logger.WarnContext(ctx, "skipping translation file", slog.String("file", filePath), slog.Any("error", err))
			continue
		}
		loaded++
	}

	if loaded == 0 {
		return nil, fmt.Errorf("%w in '%s'", ErrNoTranslationFiles, a.dir)
	}

	return all, nil
}

func (a *FSAdapter) loadFile(ctx context.Context, filePath string, all map[string]map[string]any) error {
	content, err := fs.ReadFile(a.fsys, filePath)
	if err != nil {
		return errors.Join(ErrFailedToReadFile, err)
	}
	if len(content) == 0 {
		return fmt.Errorf("translation file '%s' is empty", filePath)
	}

	parsed, err := a.parser.Parse(ctx, string(content))
	if err != nil {
		return errors.Join(ErrFailedToParseFile, err)
	}

	for lang, translations := range parsed {
		if all[lang] == nil {
			all[lang] = make(map[string]any)
		}
		mergeInto(all[lang], translations)
	}
	return nil
}

// mergeInto deep-merges src into dst. Nested maps are merged, other values
// in src replace the ones in dst.
func mergeInto(dst, src map[string]any) map[string]any {
	for k, v := range src {
		srcMap, srcIsMap := v.(map[string]any)
		dstMap, dstIsMap := dst[k].(map[string]any)
		if srcIsMap && dstIsMap {
			mergeInto(dstMap, srcMap)
			continue
		}
		if srcIsMap {
			dst[k] = mergeInto(make(map[string]any, len(srcMap)), srcMap)
			continue
		}
		dst[k] = v
	}
	return dst
}
