package service

import (
	"cmp"
	"context"
	"slices"

	"github.com/folio/internal/db"
)

// TagUsage 描述标签的使用次数
type TagUsage struct {
	Name  string `json:"name"`
	Count int    `json:"count"`
}

// TagService derives tag and author listings from a post collection.
type TagService struct {
	posts *CollectionService
}

// NewTagService creates a TagService over the given collection.
func NewTagService(posts *CollectionService) *TagService {
	return &TagService{posts: posts}
}

// AllTags counts tag usage across published top-level posts.
func (s *TagService) AllTags(ctx context.Context) (map[string]int, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	counts := map[string]int{}
	for _, post := range posts {
		for _, tag := range post.Tags {
			counts[tag]++
		}
	}
	return counts, nil
}

// SortedTags returns tags ordered by usage descending, then by name.
func (s *TagService) SortedTags(ctx context.Context) ([]TagUsage, error) {
	counts, err := s.AllTags(ctx)
	if err != nil {
		return nil, err
	}
	usage := make([]TagUsage, 0, len(counts))
	for name, count := range counts {
		usage = append(usage, TagUsage{Name: name, Count: count})
	}
	slices.SortFunc(usage, func(a, b TagUsage) int {
		if diff := cmp.Compare(b.Count, a.Count); diff != 0 {
			return diff
		}
		return cmp.Compare(a.Name, b.Name)
	})
	return usage, nil
}

// PostsByTag returns published posts carrying tag, newest first.
func (s *TagService) PostsByTag(ctx context.Context, tag string) ([]db.Entry, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return filterEntries(posts, func(e db.Entry) bool {
		return e.Tags.Contains(tag)
	}), nil
}

// PostsByAuthor returns published posts listing authorID, newest first.
func (s *TagService) PostsByAuthor(ctx context.Context, authorID string) ([]db.Entry, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	return filterEntries(posts, func(e db.Entry) bool {
		return e.Authors.Contains(authorID)
	}), nil
}

// RecentPosts returns at most count of the newest published posts.
func (s *TagService) RecentPosts(ctx context.Context, count int) ([]db.Entry, error) {
	posts, err := s.posts.ListPublished(ctx)
	if err != nil {
		return nil, err
	}
	if count < 0 {
		count = 0
	}
	if count < len(posts) {
		posts = posts[:count]
	}
	return posts, nil
}
