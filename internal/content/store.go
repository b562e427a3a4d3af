package content

import (
	"context"
	"encoding/hex"
	"encoding/json"
	"errors"
	"time"

	"github.com/folio/internal/cache"
	"github.com/folio/internal/db"
	"go.uber.org/zap"
	"golang.org/x/crypto/blake2b"
	"gorm.io/gorm"
	"gorm.io/gorm/clause"
)

const defaultRenderTTL = 24 * time.Hour

// Store 是基于 gorm 的内容仓库，负责读取集合与渲染正文。
type Store struct {
	db       *gorm.DB
	cache    cache.Cache
	renderer *Renderer
	logger   *zap.Logger
	ttl      time.Duration
}

// NewStore creates a Store. A nil cache falls back to an in-memory cache
// and a nil logger to a no-op logger.
func NewStore(gdb *gorm.DB, c cache.Cache, logger *zap.Logger) *Store {
	if c == nil {
		c = cache.NewMemory()
	}
	if logger == nil {
		logger = zap.NewNop()
	}
	return &Store{
		db:       gdb,
		cache:    c,
		renderer: NewRenderer(),
		logger:   logger,
		ttl:      defaultRenderTTL,
	}
}

// ListEntries returns every entry of a collection, drafts included, in id order.
func (s *Store) ListEntries(ctx context.Context, collection string) ([]db.Entry, error) {
	var entries []db.Entry
	if err := s.db.WithContext(ctx).
		Where("collection = ?", collection).
		Order("id asc").
		Find(&entries).Error; err != nil {
		return nil, err
	}
	return entries, nil
}

// ListProjects returns every project in id order.
func (s *Store) ListProjects(ctx context.Context) ([]db.Project, error) {
	var projects []db.Project
	if err := s.db.WithContext(ctx).Order("id asc").Find(&projects).Error; err != nil {
		return nil, err
	}
	return projects, nil
}

// ListAuthors returns every author in id order.
func (s *Store) ListAuthors(ctx context.Context) ([]db.Author, error) {
	var authors []db.Author
	if err := s.db.WithContext(ctx).Order("id asc").Find(&authors).Error; err != nil {
		return nil, err
	}
	return authors, nil
}

// GetEntry 按主键读取条目，不存在时返回 nil。
func (s *Store) GetEntry(ctx context.Context, collection, id string) (*db.Entry, error) {
	var entry db.Entry
	if err := s.db.WithContext(ctx).
		Where("collection = ? AND id = ?", collection, id).
		First(&entry).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	return &entry, nil
}

// SaveEntry upserts an entry on its (collection, id) key.
func (s *Store) SaveEntry(ctx context.Context, entry *db.Entry) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(entry).Error
}

// SaveProject upserts a project on its id.
func (s *Store) SaveProject(ctx context.Context, project *db.Project) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(project).Error
}

// SaveAuthor upserts an author on its id.
func (s *Store) SaveAuthor(ctx context.Context, author *db.Author) error {
	return s.db.WithContext(ctx).
		Clauses(clause.OnConflict{UpdateAll: true}).
		Create(author).Error
}

// PruneEntries 删除集合中不在 keep 列表内的条目，返回删除数量。
func (s *Store) PruneEntries(ctx context.Context, collection string, keep []string) (int64, error) {
	query := s.db.WithContext(ctx).Where("collection = ?", collection)
	if len(keep) > 0 {
		query = query.Where("id NOT IN ?", keep)
	}
	result := query.Delete(&db.Entry{})
	return result.RowsAffected, result.Error
}

// Render renders an entry body, serving repeated requests from the cache.
func (s *Store) Render(ctx context.Context, entry db.Entry) (*Rendered, error) {
	return s.RenderBody(ctx, entry.Collection, entry.ID, entry.Body)
}

// RenderBody renders any markdown body identified by collection and id.
func (s *Store) RenderBody(ctx context.Context, collection, id, body string) (*Rendered, error) {
	key := renderCacheKey(collection, id, body)

	if cached, ok, err := s.cache.Get(ctx, key); err != nil {
		s.logger.Warn("render cache read failed", zap.String("key", key), zap.Error(err))
	} else if ok {
		var rendered Rendered
		if err := json.Unmarshal(cached, &rendered); err == nil {
			return &rendered, nil
		}
		s.logger.Warn("discarding corrupt render cache entry", zap.String("key", key))
	}

	rendered, err := s.renderer.Render(body)
	if err != nil {
		return nil, err
	}

	if payload, err := json.Marshal(rendered); err == nil {
		if err := s.cache.Set(ctx, key, payload, s.ttl); err != nil {
			s.logger.Warn("render cache write failed", zap.String("key", key), zap.Error(err))
		}
	}

	return rendered, nil
}

// renderCacheVersion 在渲染输出变化时递增，使旧缓存失效。
const renderCacheVersion = "v2"

func renderCacheKey(collection, id, body string) string {
	h, _ := blake2b.New256(nil)
	h.Write([]byte(collection))
	h.Write([]byte{0})
	h.Write([]byte(id))
	h.Write([]byte{0})
	h.Write([]byte(body))
	return "render:" + renderCacheVersion + ":" + hex.EncodeToString(h.Sum(nil))
}
