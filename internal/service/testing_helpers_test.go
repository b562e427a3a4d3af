package service

import (
	"context"
	"errors"
	"time"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
)

var errSourceDown = errors.New("source down")

// fakeSource 是内存中的内容仓库，按集合存放条目。
type fakeSource struct {
	entries  map[string][]db.Entry
	projects []db.Project
	authors  []db.Author
	headings map[string][]content.Heading
	renders  int
	err      error
}

func newFakeSource() *fakeSource {
	return &fakeSource{
		entries:  map[string][]db.Entry{},
		headings: map[string][]content.Heading{},
	}
}

func (f *fakeSource) add(collection string, entries ...db.Entry) {
	for _, e := range entries {
		e.Collection = collection
		f.entries[collection] = append(f.entries[collection], e)
	}
}

func (f *fakeSource) ListEntries(_ context.Context, collection string) ([]db.Entry, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]db.Entry(nil), f.entries[collection]...), nil
}

func (f *fakeSource) Render(_ context.Context, entry db.Entry) (*content.Rendered, error) {
	f.renders++
	return &content.Rendered{Headings: f.headings[entry.ID]}, nil
}

func (f *fakeSource) ListProjects(context.Context) ([]db.Project, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]db.Project(nil), f.projects...), nil
}

func (f *fakeSource) RenderBody(_ context.Context, _, _, body string) (*content.Rendered, error) {
	return &content.Rendered{HTML: body}, nil
}

func (f *fakeSource) ListAuthors(context.Context) ([]db.Author, error) {
	if f.err != nil {
		return nil, f.err
	}
	return append([]db.Author(nil), f.authors...), nil
}

var baseDate = time.Date(2024, 1, 10, 9, 0, 0, 0, time.UTC)

func day(offset int) time.Time {
	return baseDate.AddDate(0, 0, offset)
}

func ids(entries []db.Entry) []string {
	out := make([]string, 0, len(entries))
	for _, e := range entries {
		out = append(out, e.ID)
	}
	return out
}

func idOf(entry *db.Entry) string {
	if entry == nil {
		return "<nil>"
	}
	return entry.ID
}
