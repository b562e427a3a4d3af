package handler

import (
	"context"

	"github.com/folio/internal/config"
	"github.com/folio/internal/content"
	"github.com/folio/internal/db"
	"github.com/folio/internal/locale"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// ContentSource is the content store as seen by the HTTP layer.
type ContentSource interface {
	ListEntries(ctx context.Context, collection string) ([]db.Entry, error)
	ListProjects(ctx context.Context) ([]db.Project, error)
	ListAuthors(ctx context.Context) ([]db.Author, error)
	Render(ctx context.Context, entry db.Entry) (*content.Rendered, error)
	RenderBody(ctx context.Context, collection, id, body string) (*content.Rendered, error)
}

// API bundles shared dependencies for HTTP handlers.
type API struct {
	blog      *service.CollectionService
	education *service.CollectionService
	projects  *service.ProjectService
	authors   *service.AuthorService
	tags      *service.TagService
	site      config.SiteConfig
	logger    *zap.Logger
}

// NewAPI constructs a handler set with shared services.
func NewAPI(source ContentSource, site config.SiteConfig, logger *zap.Logger) *API {
	if logger == nil {
		logger = zap.NewNop()
	}
	blog := service.NewBlogService(source)
	return &API{
		blog:      blog,
		education: service.NewEducationService(source),
		projects:  service.NewProjectService(source),
		authors:   service.NewAuthorService(source),
		tags:      service.NewTagService(blog),
		site:      site,
		logger:    logger,
	}
}

// Site returns the site metadata the handlers were built with.
func (a *API) Site() config.SiteConfig {
	return a.site
}

func (a *API) collection(name string) *service.CollectionService {
	switch name {
	case db.CollectionBlog:
		return a.blog
	case db.CollectionEducation:
		return a.education
	default:
		return nil
	}
}

func (a *API) pageSize(collection string) int {
	size := a.site.Posts.PageSize
	if collection == db.CollectionEducation {
		size = a.site.Education.PageSize
	}
	if size <= 0 {
		size = 10
	}
	return size
}

// language 解析请求语言：?lang 优先，其次 Accept-Language，最后是站点默认语言。
func (a *API) language(c *gin.Context) string {
	if lang := locale.NormalizeLanguage(c.Query("lang")); lang != "" {
		return lang
	}
	if lang := locale.LanguageFromAcceptLanguage(c.GetHeader("Accept-Language")); lang != "" {
		return lang
	}
	return a.site.Lang
}
