package handler_test

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"net/http/httptest"
	"sync"
	"testing"
	"time"

	"github.com/folio/internal/config"
	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/router"
	"github.com/gin-gonic/gin"
	"gorm.io/driver/sqlite"
	"gorm.io/gorm"
	"gorm.io/gorm/logger"
)

var ginOnce sync.Once

var baseDate = time.Date(2024, 3, 1, 8, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return baseDate.AddDate(0, 0, offset)
}

func setupTestStore(t *testing.T) *content.Store {
	t.Helper()

	ginOnce.Do(func() {
		gin.SetMode(gin.TestMode)
	})

	dsn := fmt.Sprintf("file:handler-%d?mode=memory&cache=shared", time.Now().UnixNano())
	gdb, err := gorm.Open(sqlite.Open(dsn), &gorm.Config{Logger: logger.Default.LogMode(logger.Silent)})
	if err != nil {
		t.Fatalf("failed to open test database: %v", err)
	}
	if err := db.Migrate(gdb); err != nil {
		t.Fatalf("failed to migrate database: %v", err)
	}
	t.Cleanup(func() {
		if sqlDB, err := gdb.DB(); err == nil {
			sqlDB.Close()
		}
	})
	return content.NewStore(gdb, nil, nil)
}

func seedSite(t *testing.T, store *content.Store) {
	t.Helper()
	ctx := context.Background()

	entries := []db.Entry{
		{Collection: db.CollectionBlog, ID: "series", Title: "Series", Date: day(0), Tags: db.StringList{"go"}, Authors: db.StringList{"vlolek", "guest"}, Body: "## Intro\n\nwords here\n\n## Scope\n\nmore words"},
		{Collection: db.CollectionBlog, ID: "series/part-1", Title: "Part 1", Date: day(1), Body: "# Part 1\n\n## Setup\n\n### Run\n\ntext"},
		{Collection: db.CollectionBlog, ID: "series/part-2", Title: "Part 2", Date: day(2), Order: 1, Body: "plain"},
		{Collection: db.CollectionBlog, ID: "latest", Title: "Latest", Date: day(10), Tags: db.StringList{"go", "news"}, Body: "<script>alert(1)</script>hello"},
		{Collection: db.CollectionBlog, ID: "draft", Title: "Draft", Date: day(20), Draft: true},
		{Collection: db.CollectionEducation, ID: "course", Title: "Course", Date: time.Date(2023, 6, 1, 0, 0, 0, 0, time.UTC)},
	}
	for i := range entries {
		if err := store.SaveEntry(ctx, &entries[i]); err != nil {
			t.Fatalf("failed to seed entry: %v", err)
		}
	}

	start := day(-100)
	projects := []db.Project{
		{ID: "folio", Name: "Folio", StartDate: &start, Body: "# Folio"},
		{ID: "undated", Name: "Undated"},
	}
	for i := range projects {
		if err := store.SaveProject(ctx, &projects[i]); err != nil {
			t.Fatalf("failed to seed project: %v", err)
		}
	}

	if err := store.SaveAuthor(ctx, &db.Author{ID: "vlolek", Name: "Vladlen Oleksiuk", Avatar: "/static/me.png"}); err != nil {
		t.Fatalf("failed to seed author: %v", err)
	}
}

func newTestRouter(t *testing.T, source handler.ContentSource, site config.SiteConfig) *gin.Engine {
	t.Helper()
	return router.SetupRouter(handler.NewAPI(source, site, nil), router.Options{})
}

func doGet(t *testing.T, r http.Handler, path string) *httptest.ResponseRecorder {
	t.Helper()
	w := httptest.NewRecorder()
	r.ServeHTTP(w, httptest.NewRequest(http.MethodGet, path, nil))
	return w
}

func decodeJSON(t *testing.T, w *httptest.ResponseRecorder, dst interface{}) {
	t.Helper()
	if err := json.Unmarshal(w.Body.Bytes(), dst); err != nil {
		t.Fatalf("failed to decode response %q: %v", w.Body.String(), err)
	}
}

var errStoreDown = errors.New("store down")

// failingSource 模拟内容仓库不可用。
type failingSource struct{}

func (failingSource) ListEntries(context.Context, string) ([]db.Entry, error) {
	return nil, errStoreDown
}

func (failingSource) ListProjects(context.Context) ([]db.Project, error) {
	return nil, errStoreDown
}

func (failingSource) ListAuthors(context.Context) ([]db.Author, error) {
	return nil, errStoreDown
}

func (failingSource) Render(context.Context, db.Entry) (*content.Rendered, error) {
	return nil, errStoreDown
}

func (failingSource) RenderBody(context.Context, string, string, string) (*content.Rendered, error) {
	return nil, errStoreDown
}
