package content

import (
	"context"
	"errors"
	"fmt"
	"io/fs"
	"os"
	"path/filepath"
	"strings"

	"github.com/folio/internal/db"
	"go.uber.org/zap"
	"golang.org/x/text/cases"
	"golang.org/x/text/language"
)

var (
	ErrMissingDate = errors.New("front matter is missing a date")
	ErrDuplicateID = errors.New("duplicate content id")
)

// FileError 记录单个文件导入失败的原因。
type FileError struct {
	Path string
	Err  error
}

func (e FileError) Error() string {
	return fmt.Sprintf("%s: %v", e.Path, e.Err)
}

func (e FileError) Unwrap() error { return e.Err }

// ImportResult 汇总一次导入的数量与失败文件。
type ImportResult struct {
	Entries  map[string]int
	Projects int
	Authors  int
	Pruned   int64
	Errors   []FileError
}

// Loader imports a content directory laid out as <root>/<collection>/**.md.
type Loader struct {
	store     *Store
	staticDir string
	prune     bool
	logger    *zap.Logger
	titler    cases.Caser
}

// NewLoader creates a Loader. When prune is set, entries whose source file
// disappeared are removed from blog and education after the import.
func NewLoader(store *Store, staticDir string, prune bool, logger *zap.Logger) *Loader {
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Loader{
		store:     store,
		staticDir: staticDir,
		prune:     prune,
		logger:    logger,
		titler:    cases.Title(language.English),
	}
}

// Import walks root and upserts every collection it finds.
func (l *Loader) Import(ctx context.Context, root string) (*ImportResult, error) {
	info, err := os.Stat(root)
	if err != nil {
		return nil, fmt.Errorf("content dir %q: %w", root, err)
	}
	if !info.IsDir() {
		return nil, fmt.Errorf("content dir %q is not a directory", root)
	}

	result := &ImportResult{Entries: map[string]int{}}

	for _, collection := range []string{db.CollectionBlog, db.CollectionEducation} {
		found, imported, err := l.importCollection(ctx, root, collection, result, l.importEntry)
		if err != nil {
			return nil, err
		}
		result.Entries[collection] = imported

		if l.prune && found != nil {
			removed, err := l.store.PruneEntries(ctx, collection, found)
			if err != nil {
				return nil, fmt.Errorf("prune %s: %w", collection, err)
			}
			result.Pruned += removed
		}
	}

	_, projects, err := l.importCollection(ctx, root, db.CollectionProjects, result, l.importProject)
	if err != nil {
		return nil, err
	}
	result.Projects = projects

	_, authors, err := l.importCollection(ctx, root, db.CollectionAuthors, result, l.importAuthor)
	if err != nil {
		return nil, err
	}
	result.Authors = authors

	l.logger.Info("content import finished",
		zap.Any("entries", result.Entries),
		zap.Int("projects", result.Projects),
		zap.Int("authors", result.Authors),
		zap.Int64("pruned", result.Pruned),
		zap.Int("errors", len(result.Errors)),
	)
	return result, nil
}

type importFunc func(ctx context.Context, collection, id, path string, fields map[string]interface{}, body string) error

// importCollection returns the ids of every content file found, including
// files that failed to import, and the number imported. found is nil when
// the collection directory does not exist.
func (l *Loader) importCollection(ctx context.Context, root, collection string, result *ImportResult, fn importFunc) (found []string, imported int, err error) {
	dir := filepath.Join(root, collection)
	if _, err := os.Stat(dir); err != nil {
		if os.IsNotExist(err) {
			return nil, 0, nil
		}
		return nil, 0, err
	}

	found = []string{}
	sources := map[string]string{}
	walkErr := filepath.WalkDir(dir, func(path string, d fs.DirEntry, err error) error {
		if err != nil {
			return err
		}
		if d.IsDir() || !isMarkdownFile(d.Name()) {
			return nil
		}
		if err := ctx.Err(); err != nil {
			return err
		}

		id, err := entryIDFromPath(dir, path)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			return nil
		}
		if first, ok := sources[id]; ok {
			result.Errors = append(result.Errors, FileError{Path: path, Err: fmt.Errorf("%w: %q already defined by %s", ErrDuplicateID, id, first)})
			return nil
		}
		// 解析失败的文件仍然存在，不能被清理
		sources[id] = path
		found = append(found, id)

		raw, err := os.ReadFile(path)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			return nil
		}

		fields, body, err := parseDocument(raw)
		if err != nil {
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			return nil
		}

		if err := fn(ctx, collection, id, path, fields, body); err != nil {
			l.logger.Warn("skipping content file", zap.String("path", path), zap.Error(err))
			result.Errors = append(result.Errors, FileError{Path: path, Err: err})
			return nil
		}

		imported++
		return nil
	})
	if walkErr != nil {
		return nil, 0, fmt.Errorf("walk %s: %w", dir, walkErr)
	}
	return found, imported, nil
}

func (l *Loader) importEntry(ctx context.Context, collection, id, path string, fields map[string]interface{}, body string) error {
	date, ok := fieldTime(fields, "date", "pubDate")
	if !ok {
		return ErrMissingDate
	}

	entry := db.Entry{
		Collection:  collection,
		ID:          id,
		Title:       l.titleOr(fieldString(fields, "title"), id),
		Description: fieldString(fields, "description", "summary"),
		Date:        date,
		Order:       fieldInt(fields, "order"),
		Draft:       fieldBool(fields, "draft"),
		Tags:        fieldStrings(fields, "tags"),
		Authors:     fieldStrings(fields, "authors"),
		Image:       fieldString(fields, "image", "cover"),
		Body:        body,
		SourcePath:  path,
	}
	return l.store.SaveEntry(ctx, &entry)
}

func (l *Loader) importProject(ctx context.Context, _ string, id, path string, fields map[string]interface{}, body string) error {
	project := db.Project{
		ID:          id,
		Name:        l.titleOr(fieldString(fields, "name", "title"), id),
		Description: fieldString(fields, "description"),
		Tags:        fieldStrings(fields, "tags"),
		Link:        fieldString(fields, "link", "url"),
		Image:       fieldString(fields, "image"),
		Body:        body,
		SourcePath:  path,
	}
	if start, ok := fieldTime(fields, "startDate", "start_date"); ok {
		project.StartDate = &start
	}
	if end, ok := fieldTime(fields, "endDate", "end_date"); ok {
		project.EndDate = &end
	}

	width, height, err := probeImage(l.staticDir, project.Image)
	if err != nil {
		l.logger.Debug("image probe failed", zap.String("image", project.Image), zap.Error(err))
	}
	project.ImageWidth = width
	project.ImageHeight = height

	return l.store.SaveProject(ctx, &project)
}

func (l *Loader) importAuthor(ctx context.Context, _ string, id, path string, fields map[string]interface{}, body string) error {
	author := db.Author{
		ID:         id,
		Name:       l.titleOr(fieldString(fields, "name"), id),
		Avatar:     fieldString(fields, "avatar"),
		Bio:        fieldString(fields, "bio"),
		Website:    fieldString(fields, "website"),
		Body:       body,
		SourcePath: path,
	}
	return l.store.SaveAuthor(ctx, &author)
}

// titleOr derives a title from the last id segment when none is given.
func (l *Loader) titleOr(title, id string) string {
	if title != "" {
		return title
	}
	base := id
	if idx := strings.LastIndex(base, "/"); idx >= 0 {
		base = base[idx+1:]
	}
	base = strings.NewReplacer("-", " ", "_", " ").Replace(base)
	return l.titler.String(base)
}

func isMarkdownFile(name string) bool {
	ext := strings.ToLower(filepath.Ext(name))
	return ext == ".md" || ext == ".mdx"
}

// entryIDFromPath maps a file to its collection id:
// post.md -> "post", series/index.md -> "series", series/part-1.md -> "series/part-1".
func entryIDFromPath(dir, path string) (string, error) {
	rel, err := filepath.Rel(dir, path)
	if err != nil {
		return "", err
	}
	rel = filepath.ToSlash(strings.TrimSuffix(rel, filepath.Ext(rel)))
	if rel == "index" {
		return "", errors.New("collection root index has no id")
	}
	rel = strings.TrimSuffix(rel, "/index")

	id := strings.ToLower(strings.ReplaceAll(rel, " ", "-"))
	if id == "" {
		return "", errors.New("empty content id")
	}
	return id, nil
}
