package service

import (
	"context"
	"errors"
	"slices"
	"strings"
	"testing"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
)

func seededBlog() (*fakeSource, *CollectionService) {
	src := newFakeSource()
	src.add(db.CollectionBlog,
		db.Entry{ID: "a", Title: "Series A", Date: day(0), Body: "intro words here"},
		db.Entry{ID: "a/1", Title: "A part 1", Date: day(1), Order: 0, Body: "one two"},
		db.Entry{ID: "a/2", Title: "A part 2", Date: day(2), Order: 1, Body: "three"},
		db.Entry{ID: "b", Title: "Post B", Date: day(5)},
		db.Entry{ID: "c", Title: "Post C", Date: day(3)},
		db.Entry{ID: "draft", Title: "Draft", Date: day(9), Draft: true},
		db.Entry{ID: "a/draft", Title: "Draft part", Date: day(4), Draft: true},
	)
	src.add(db.CollectionEducation,
		db.Entry{ID: "course", Title: "Course", Date: day(1)},
	)
	return src, NewBlogService(src)
}

func TestListPublishedExcludesDraftsAndSubposts(t *testing.T) {
	_, svc := seededBlog()

	posts, err := svc.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	want := []string{"b", "c", "a"}
	if got := ids(posts); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListPublishedKeepsInputOrderOnTies(t *testing.T) {
	src := newFakeSource()
	src.add(db.CollectionBlog,
		db.Entry{ID: "first", Date: day(1)},
		db.Entry{ID: "second", Date: day(1)},
		db.Entry{ID: "newest", Date: day(2)},
	)
	posts, err := NewBlogService(src).ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list published: %v", err)
	}
	want := []string{"newest", "first", "second"}
	if got := ids(posts); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestListPublishedWithSubposts(t *testing.T) {
	_, svc := seededBlog()

	posts, err := svc.ListPublishedWithSubposts(context.Background())
	if err != nil {
		t.Fatalf("list with subposts: %v", err)
	}
	want := []string{"b", "c", "a/2", "a/1", "a"}
	if got := ids(posts); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
}

func TestFindByID(t *testing.T) {
	_, svc := seededBlog()
	ctx := context.Background()

	tests := []struct {
		id   string
		want string
	}{
		{id: "a", want: "a"},
		{id: "a/2", want: "a/2"},
		{id: "draft", want: "<nil>"},
		{id: "missing", want: "<nil>"},
		{id: "", want: "<nil>"},
		{id: "course", want: "<nil>"},
	}
	for _, tt := range tests {
		entry, err := svc.FindByID(ctx, tt.id)
		if err != nil {
			t.Fatalf("find %q: %v", tt.id, err)
		}
		if got := idOf(entry); got != tt.want {
			t.Fatalf("find %q: expected %s, got %s", tt.id, tt.want, got)
		}
	}
}

func TestListSubpostsOrdersByDateThenOrder(t *testing.T) {
	src := newFakeSource()
	src.add(db.CollectionBlog,
		db.Entry{ID: "s", Date: day(0)},
		db.Entry{ID: "s/late", Date: day(3)},
		db.Entry{ID: "s/second", Date: day(1), Order: 2},
		db.Entry{ID: "s/first", Date: day(1), Order: 1},
		db.Entry{ID: "s/hidden", Date: day(1), Draft: true},
		db.Entry{ID: "other/x", Date: day(1)},
		db.Entry{ID: "sx/y", Date: day(1)},
	)
	svc := NewBlogService(src)

	subposts, err := svc.ListSubposts(context.Background(), "s")
	if err != nil {
		t.Fatalf("list subposts: %v", err)
	}
	want := []string{"s/first", "s/second", "s/late"}
	if got := ids(subposts); !slices.Equal(got, want) {
		t.Fatalf("expected %v, got %v", want, got)
	}
	for _, sp := range subposts {
		if db.ParentIDOf(sp.ID) != "s" {
			t.Fatalf("subpost %q does not belong to s", sp.ID)
		}
	}

	count, err := svc.CountSubposts(context.Background(), "s")
	if err != nil || count != 3 {
		t.Fatalf("expected 3 subposts, got %d (%v)", count, err)
	}
	has, err := svc.HasSubposts(context.Background(), "other")
	if err != nil || !has {
		t.Fatalf("expected other to have subposts, got %v (%v)", has, err)
	}
	has, err = svc.HasSubposts(context.Background(), "late")
	if err != nil || has {
		t.Fatalf("expected no subposts, got %v (%v)", has, err)
	}
}

func TestParentOf(t *testing.T) {
	src, svc := seededBlog()
	src.add(db.CollectionBlog, db.Entry{ID: "ghost/child", Date: day(1)})
	ctx := context.Background()

	parent, err := svc.ParentOf(ctx, "a/1")
	if err != nil {
		t.Fatalf("parent of: %v", err)
	}
	if idOf(parent) != "a" {
		t.Fatalf("expected parent a, got %s", idOf(parent))
	}

	for _, id := range []string{"a", "", "ghost/child", "draft/child"} {
		parent, err := svc.ParentOf(ctx, id)
		if err != nil {
			t.Fatalf("parent of %q: %v", id, err)
		}
		if parent != nil {
			t.Fatalf("expected nil parent for %q, got %s", id, parent.ID)
		}
	}
}

func TestReadingTime(t *testing.T) {
	src := newFakeSource()
	src.add(db.CollectionBlog,
		db.Entry{ID: "short", Date: day(0), Body: strings.Repeat("word ", 120)},
		db.Entry{ID: "long", Date: day(0), Body: "<p>" + strings.Repeat("word ", 700) + "</p>"},
		db.Entry{ID: "long/part", Date: day(1), Body: strings.Repeat("word ", 300)},
	)
	svc := NewBlogService(src)
	ctx := context.Background()

	tests := []struct {
		name string
		fn   func(context.Context, string) (string, error)
		id   string
		want string
	}{
		{name: "short", fn: svc.ReadingTime, id: "short", want: "1 min read"},
		{name: "long strips tags", fn: svc.ReadingTime, id: "long", want: "4 min read"},
		{name: "missing", fn: svc.ReadingTime, id: "nope", want: "1 min read"},
		{name: "combined parent", fn: svc.CombinedReadingTime, id: "long", want: "5 min read"},
		{name: "combined subpost", fn: svc.CombinedReadingTime, id: "long/part", want: "2 min read"},
		{name: "combined missing", fn: svc.CombinedReadingTime, id: "nope", want: "1 min read"},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := tt.fn(ctx, tt.id)
			if err != nil {
				t.Fatalf("reading time: %v", err)
			}
			if got != tt.want {
				t.Fatalf("expected %q, got %q", tt.want, got)
			}
		})
	}
}

func TestAdjacentSubposts(t *testing.T) {
	_, svc := seededBlog()
	ctx := context.Background()

	tests := []struct {
		id     string
		newer  string
		older  string
		parent string
	}{
		{id: "a/1", newer: "a/2", older: "<nil>", parent: "a"},
		{id: "a/2", newer: "<nil>", older: "a/1", parent: "a"},
		{id: "a/draft", newer: "<nil>", older: "<nil>", parent: "a"},
		{id: "zzz/1", newer: "<nil>", older: "<nil>", parent: "<nil>"},
	}
	for _, tt := range tests {
		adj, err := svc.Adjacent(ctx, tt.id)
		if err != nil {
			t.Fatalf("adjacent %q: %v", tt.id, err)
		}
		if idOf(adj.Newer) != tt.newer || idOf(adj.Older) != tt.older || idOf(adj.Parent) != tt.parent {
			t.Fatalf("adjacent %q: got newer=%s older=%s parent=%s", tt.id, idOf(adj.Newer), idOf(adj.Older), idOf(adj.Parent))
		}
	}
}

func TestAdjacentTopLevel(t *testing.T) {
	_, svc := seededBlog()
	ctx := context.Background()

	tests := []struct {
		id    string
		newer string
		older string
	}{
		{id: "b", newer: "<nil>", older: "c"},
		{id: "c", newer: "b", older: "a"},
		{id: "a", newer: "c", older: "<nil>"},
		{id: "missing", newer: "<nil>", older: "<nil>"},
		{id: "", newer: "<nil>", older: "<nil>"},
	}
	for _, tt := range tests {
		adj, err := svc.Adjacent(ctx, tt.id)
		if err != nil {
			t.Fatalf("adjacent %q: %v", tt.id, err)
		}
		if idOf(adj.Newer) != tt.newer || idOf(adj.Older) != tt.older || adj.Parent != nil {
			t.Fatalf("adjacent %q: got newer=%s older=%s parent=%s", tt.id, idOf(adj.Newer), idOf(adj.Older), idOf(adj.Parent))
		}
	}
}

func TestTOCSectionsParentAndSubposts(t *testing.T) {
	src := newFakeSource()
	src.add(db.CollectionBlog,
		db.Entry{ID: "a", Title: "Series", Date: day(0)},
		db.Entry{ID: "a/1", Title: "Part one", Date: day(1)},
		db.Entry{ID: "a/2", Title: "Part two", Date: day(2)},
	)
	src.headings["a"] = []content.Heading{
		{Slug: "intro", Text: "Intro", Depth: 2},
		{Slug: "scope", Text: "Scope", Depth: 2},
	}
	src.headings["a/1"] = []content.Heading{
		{Slug: "part-one", Text: "Part one", Depth: 1},
		{Slug: "setup", Text: "Setup", Depth: 2},
		{Slug: "run", Text: "Run", Depth: 3},
	}
	svc := NewBlogService(src)

	for _, id := range []string{"a", "a/1", "a/2"} {
		sections, err := svc.TOCSections(context.Background(), id)
		if err != nil {
			t.Fatalf("toc %q: %v", id, err)
		}
		if len(sections) != 2 {
			t.Fatalf("toc %q: expected 2 sections, got %#v", id, sections)
		}

		overview := sections[0]
		if overview.Type != TOCSectionParent || overview.Title != "Overview" || len(overview.Headings) != 2 {
			t.Fatalf("toc %q: unexpected overview %#v", id, overview)
		}
		for _, h := range overview.Headings {
			if h.IsSubpostTitle {
				t.Fatalf("toc %q: overview heading flagged as subpost title", id)
			}
		}

		sub := sections[1]
		if sub.Type != TOCSectionSubpost || sub.Title != "Part one" || sub.SubpostID != "a/1" {
			t.Fatalf("toc %q: unexpected subpost section %#v", id, sub)
		}
		if len(sub.Headings) != 3 || !sub.Headings[0].IsSubpostTitle || sub.Headings[1].IsSubpostTitle {
			t.Fatalf("toc %q: unexpected subpost headings %#v", id, sub.Headings)
		}
	}
}

func TestTOCSectionsMissing(t *testing.T) {
	src := newFakeSource()
	src.add(db.CollectionBlog, db.Entry{ID: "orphan/1", Date: day(1)})
	src.headings["orphan/1"] = []content.Heading{{Slug: "x", Text: "X", Depth: 1}}
	svc := NewBlogService(src)

	for _, id := range []string{"missing", "orphan/1"} {
		sections, err := svc.TOCSections(context.Background(), id)
		if err != nil {
			t.Fatalf("toc %q: %v", id, err)
		}
		if sections == nil || len(sections) != 0 {
			t.Fatalf("toc %q: expected empty sections, got %#v", id, sections)
		}
	}

	lone := newFakeSource()
	lone.add(db.CollectionBlog, db.Entry{ID: "plain", Date: day(1)})
	sections, err := NewBlogService(lone).TOCSections(context.Background(), "plain")
	if err != nil || len(sections) != 0 {
		t.Fatalf("expected no sections without headings, got %#v (%v)", sections, err)
	}
}

func TestCollectionsAreIsolated(t *testing.T) {
	src, _ := seededBlog()
	education := NewEducationService(src)

	posts, err := education.ListPublished(context.Background())
	if err != nil {
		t.Fatalf("list education: %v", err)
	}
	if got := ids(posts); !slices.Equal(got, []string{"course"}) {
		t.Fatalf("expected only education entries, got %v", got)
	}
	if education.Collection() != db.CollectionEducation {
		t.Fatalf("unexpected collection %q", education.Collection())
	}
}

func TestCollectionServicePropagatesSourceErrors(t *testing.T) {
	src, svc := seededBlog()
	src.err = errSourceDown
	ctx := context.Background()

	if _, err := svc.ListPublished(ctx); !errors.Is(err, errSourceDown) {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, err := svc.FindByID(ctx, "a"); !errors.Is(err, errSourceDown) {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, err := svc.Adjacent(ctx, "a/1"); !errors.Is(err, errSourceDown) {
		t.Fatalf("expected source error, got %v", err)
	}
	if _, err := svc.TOCSections(ctx, "a"); !errors.Is(err, errSourceDown) {
		t.Fatalf("expected source error, got %v", err)
	}
}
