package service

import (
	"context"
	"strings"

	"github.com/folio/internal/db"
)

const defaultAuthorAvatar = "/static/logo.png"

// AuthorSource 提供作者集合的数据。
type AuthorSource interface {
	ListAuthors(ctx context.Context) ([]db.Author, error)
}

// AuthorRef 是文章上展示的作者信息，未注册的作者回退为其 ID。
type AuthorRef struct {
	ID           string `json:"id"`
	Name         string `json:"name"`
	Avatar       string `json:"avatar"`
	IsRegistered bool   `json:"isRegistered"`
}

// AuthorService wraps the authors collection.
type AuthorService struct {
	source AuthorSource
}

// NewAuthorService creates an AuthorService instance.
func NewAuthorService(source AuthorSource) *AuthorService {
	return &AuthorService{source: source}
}

// ListAll returns every author.
func (s *AuthorService) ListAll(ctx context.Context) ([]db.Author, error) {
	return s.source.ListAuthors(ctx)
}

// Get returns the author with id, or nil.
func (s *AuthorService) Get(ctx context.Context, id string) (*db.Author, error) {
	authors, err := s.source.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	for i := range authors {
		if authors[i].ID == id {
			return &authors[i], nil
		}
	}
	return nil, nil
}

// ParseAuthors resolves author ids referenced by an entry, preserving order.
func (s *AuthorService) ParseAuthors(ctx context.Context, ids []string) ([]AuthorRef, error) {
	if len(ids) == 0 {
		return []AuthorRef{}, nil
	}

	authors, err := s.source.ListAuthors(ctx)
	if err != nil {
		return nil, err
	}
	byID := make(map[string]db.Author, len(authors))
	for _, author := range authors {
		byID[author.ID] = author
	}

	refs := make([]AuthorRef, 0, len(ids))
	for _, id := range ids {
		author, ok := byID[id]
		ref := AuthorRef{ID: id, Name: id, Avatar: defaultAuthorAvatar, IsRegistered: ok}
		if ok {
			if name := strings.TrimSpace(author.Name); name != "" {
				ref.Name = name
			}
			if avatar := strings.TrimSpace(author.Avatar); avatar != "" {
				ref.Avatar = avatar
			}
		}
		refs = append(refs, ref)
	}
	return refs, nil
}
