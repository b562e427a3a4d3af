package service

import (
	"context"
	"slices"

	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
)

// overviewSectionTitle 是父文章目录分组的标题。
const overviewSectionTitle = "Overview"

const (
	TOCSectionParent  = "parent"
	TOCSectionSubpost = "subpost"
)

// EntrySource 是集合查询依赖的内容仓库。
type EntrySource interface {
	ListEntries(ctx context.Context, collection string) ([]db.Entry, error)
	Render(ctx context.Context, entry db.Entry) (*content.Rendered, error)
}

// Adjacent holds navigation neighbours of an entry. Missing sides are nil.
type Adjacent struct {
	Newer  *db.Entry
	Older  *db.Entry
	Parent *db.Entry
}

// TOCHeading 目录中的单个标题。
type TOCHeading struct {
	Slug           string `json:"slug"`
	Text           string `json:"text"`
	Depth          int    `json:"depth"`
	IsSubpostTitle bool   `json:"isSubpostTitle,omitempty"`
}

// TOCSection 目录分组：父文章概览或某篇子文章。
type TOCSection struct {
	Type      string       `json:"type"`
	Title     string       `json:"title"`
	Headings  []TOCHeading `json:"headings"`
	SubpostID string       `json:"subpostId,omitempty"`
}

// CollectionService answers structural queries over one post collection
// (blog or education). Lookups that find nothing return nil without error;
// errors only come from the content store.
type CollectionService struct {
	source     EntrySource
	collection string
}

// NewCollectionService binds the query layer to a collection name.
func NewCollectionService(source EntrySource, collection string) *CollectionService {
	return &CollectionService{source: source, collection: collection}
}

// Collection returns the bound collection name.
func (s *CollectionService) Collection() string {
	return s.collection
}

// ListPublished returns non-draft top-level entries, newest first.
func (s *CollectionService) ListPublished(ctx context.Context) ([]db.Entry, error) {
	entries, err := s.source.ListEntries(ctx, s.collection)
	if err != nil {
		return nil, err
	}
	published := filterEntries(entries, func(e db.Entry) bool {
		return !e.Draft && !e.IsSubpost()
	})
	sortNewestFirst(published)
	return published, nil
}

// ListPublishedWithSubposts returns all non-draft entries, newest first.
func (s *CollectionService) ListPublishedWithSubposts(ctx context.Context) ([]db.Entry, error) {
	entries, err := s.source.ListEntries(ctx, s.collection)
	if err != nil {
		return nil, err
	}
	published := filterEntries(entries, func(e db.Entry) bool {
		return !e.Draft
	})
	sortNewestFirst(published)
	return published, nil
}

// FindByID returns the published entry (or subpost) with the exact id.
func (s *CollectionService) FindByID(ctx context.Context, id string) (*db.Entry, error) {
	entries, err := s.ListPublishedWithSubposts(ctx)
	if err != nil {
		return nil, err
	}
	return findEntry(entries, id), nil
}

// ListSubposts returns the non-draft subposts of parentID, ordered by date
// ascending and then by their order field.
func (s *CollectionService) ListSubposts(ctx context.Context, parentID string) ([]db.Entry, error) {
	entries, err := s.source.ListEntries(ctx, s.collection)
	if err != nil {
		return nil, err
	}
	subposts := filterEntries(entries, func(e db.Entry) bool {
		return !e.Draft && e.IsSubpost() && e.Parent() == parentID
	})
	sortSubposts(subposts)
	return subposts, nil
}

// CountSubposts returns len(ListSubposts(parentID)).
func (s *CollectionService) CountSubposts(ctx context.Context, parentID string) (int, error) {
	subposts, err := s.ListSubposts(ctx, parentID)
	if err != nil {
		return 0, err
	}
	return len(subposts), nil
}

// HasSubposts reports whether id has at least one published subpost.
func (s *CollectionService) HasSubposts(ctx context.Context, id string) (bool, error) {
	count, err := s.CountSubposts(ctx, id)
	if err != nil {
		return false, err
	}
	return count > 0, nil
}

// ParentOf resolves the published parent of a subpost id. Top-level ids
// and dangling subposts yield nil.
func (s *CollectionService) ParentOf(ctx context.Context, subpostID string) (*db.Entry, error) {
	if !db.IsSubpostID(subpostID) {
		return nil, nil
	}
	parents, err := s.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return findEntry(parents, db.ParentIDOf(subpostID)), nil
}

// ReadingTime estimates reading time of a single entry. Unknown ids are
// treated as empty bodies.
func (s *CollectionService) ReadingTime(ctx context.Context, id string) (string, error) {
	entry, err := s.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return ReadingTime(0), nil
	}
	return ReadingTime(WordCount(entry.Body)), nil
}

// CombinedReadingTime adds the words of every subpost when id is a parent.
func (s *CollectionService) CombinedReadingTime(ctx context.Context, id string) (string, error) {
	entry, err := s.FindByID(ctx, id)
	if err != nil {
		return "", err
	}
	if entry == nil {
		return ReadingTime(0), nil
	}

	total := WordCount(entry.Body)
	if !db.IsSubpostID(id) {
		subposts, err := s.ListSubposts(ctx, id)
		if err != nil {
			return "", err
		}
		for _, subpost := range subposts {
			total += WordCount(subpost.Body)
		}
	}
	return ReadingTime(total), nil
}

// Adjacent returns navigation neighbours.
//
// For a subpost the siblings are ordered as in ListSubposts (oldest first),
// so Newer is the next sibling and Older the previous one. For a top-level
// entry ListPublished is newest first, so Newer is index-1 and Older index+1.
func (s *CollectionService) Adjacent(ctx context.Context, id string) (Adjacent, error) {
	parents, err := s.ListPublished(ctx)
	if err != nil {
		return Adjacent{}, err
	}

	if db.IsSubpostID(id) {
		parentID := db.ParentIDOf(id)
		parent := findEntry(parents, parentID)

		siblings, err := s.ListSubposts(ctx, parentID)
		if err != nil {
			return Adjacent{}, err
		}

		idx := indexOfEntry(siblings, id)
		if idx < 0 {
			return Adjacent{Parent: parent}, nil
		}

		adj := Adjacent{Parent: parent}
		if idx < len(siblings)-1 {
			adj.Newer = &siblings[idx+1]
		}
		if idx > 0 {
			adj.Older = &siblings[idx-1]
		}
		return adj, nil
	}

	idx := indexOfEntry(parents, id)
	if idx < 0 {
		return Adjacent{}, nil
	}

	var adj Adjacent
	if idx > 0 {
		adj.Newer = &parents[idx-1]
	}
	if idx < len(parents)-1 {
		adj.Older = &parents[idx+1]
	}
	return adj, nil
}

// TOCSections builds the table of contents of the series owning id: the
// parent's headings as an overview followed by one section per subpost.
func (s *CollectionService) TOCSections(ctx context.Context, id string) ([]TOCSection, error) {
	entry, err := s.FindByID(ctx, id)
	if err != nil {
		return nil, err
	}
	if entry == nil {
		return []TOCSection{}, nil
	}

	parentID := id
	parent := entry
	if db.IsSubpostID(id) {
		parentID = db.ParentIDOf(id)
		parent, err = s.FindByID(ctx, parentID)
		if err != nil {
			return nil, err
		}
		if parent == nil {
			return []TOCSection{}, nil
		}
	}

	sections := []TOCSection{}

	rendered, err := s.source.Render(ctx, *parent)
	if err != nil {
		return nil, err
	}
	if len(rendered.Headings) > 0 {
		headings := make([]TOCHeading, 0, len(rendered.Headings))
		for _, h := range rendered.Headings {
			headings = append(headings, TOCHeading{Slug: h.Slug, Text: h.Text, Depth: h.Depth})
		}
		sections = append(sections, TOCSection{
			Type:     TOCSectionParent,
			Title:    overviewSectionTitle,
			Headings: headings,
		})
	}

	subposts, err := s.ListSubposts(ctx, parentID)
	if err != nil {
		return nil, err
	}
	for _, subpost := range subposts {
		rendered, err := s.source.Render(ctx, subpost)
		if err != nil {
			return nil, err
		}
		if len(rendered.Headings) == 0 {
			continue
		}
		headings := make([]TOCHeading, 0, len(rendered.Headings))
		for i, h := range rendered.Headings {
			headings = append(headings, TOCHeading{
				Slug:           h.Slug,
				Text:           h.Text,
				Depth:          h.Depth,
				IsSubpostTitle: i == 0,
			})
		}
		sections = append(sections, TOCSection{
			Type:      TOCSectionSubpost,
			Title:     subpost.Title,
			Headings:  headings,
			SubpostID: subpost.ID,
		})
	}

	return sections, nil
}

// Render exposes the content store renderer for detail pages.
func (s *CollectionService) Render(ctx context.Context, entry db.Entry) (*content.Rendered, error) {
	return s.source.Render(ctx, entry)
}

func filterEntries(entries []db.Entry, keep func(db.Entry) bool) []db.Entry {
	out := make([]db.Entry, 0, len(entries))
	for _, e := range entries {
		if keep(e) {
			out = append(out, e)
		}
	}
	return out
}

func sortNewestFirst(entries []db.Entry) {
	slices.SortStableFunc(entries, func(a, b db.Entry) int {
		return b.Date.Compare(a.Date)
	})
}

func sortSubposts(entries []db.Entry) {
	slices.SortStableFunc(entries, func(a, b db.Entry) int {
		if diff := a.Date.Compare(b.Date); diff != 0 {
			return diff
		}
		return a.Order - b.Order
	})
}

func findEntry(entries []db.Entry, id string) *db.Entry {
	if idx := indexOfEntry(entries, id); idx >= 0 {
		found := entries[idx]
		return &found
	}
	return nil
}

func indexOfEntry(entries []db.Entry, id string) int {
	return slices.IndexFunc(entries, func(e db.Entry) bool {
		return e.ID == id
	})
}
