package handler

import (
	"net/http"

	"github.com/folio/internal/locale"
	"github.com/folio/internal/service"
	"github.com/gin-gonic/gin"
)

type yearGroupView struct {
	Year    int         `json:"year"`
	Entries []entryView `json:"entries"`
}

// ListEntries 返回集合的已发布文章分页列表。
func (a *API) ListEntries(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := a.collection(collection)
		if svc == nil {
			respondError(c, http.StatusNotFound, "collection not found")
			return
		}
		ctx := c.Request.Context()

		entries, err := svc.ListPublished(ctx)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}

		page := service.Paginate(entries, parsePositiveInt(c.DefaultQuery("page", "1"), 1), a.pageSize(collection))
		items := make([]entrySummary, 0, len(page.Entries))
		for _, entry := range page.Entries {
			readingTime, err := svc.CombinedReadingTime(ctx, entry.ID)
			if err != nil {
				a.respondStoreError(c, err)
				return
			}
			count, err := svc.CountSubposts(ctx, entry.ID)
			if err != nil {
				a.respondStoreError(c, err)
				return
			}
			items = append(items, entrySummary{
				entryView:    a.newEntryView(entry),
				ReadingTime:  readingTime,
				SubpostCount: count,
			})
		}

		c.JSON(http.StatusOK, gin.H{
			"items":      items,
			"page":       page.Page,
			"perPage":    page.PerPage,
			"total":      page.Total,
			"totalPages": page.TotalPages,
			"labels":     locale.LabelsFor(a.language(c), collection),
		})
	}
}

// ListYears 按年份归档集合中的已发布文章。
func (a *API) ListYears(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := a.collection(collection)
		if svc == nil {
			respondError(c, http.StatusNotFound, "collection not found")
			return
		}

		entries, err := svc.ListPublished(c.Request.Context())
		if err != nil {
			a.respondStoreError(c, err)
			return
		}

		groups := service.GroupByYear(entries)
		views := make([]yearGroupView, 0, len(groups))
		for _, g := range groups {
			views = append(views, yearGroupView{Year: g.Year, Entries: a.entryViews(g.Entries)})
		}
		c.JSON(http.StatusOK, gin.H{"years": views})
	}
}

// GetEntry returns the detail of a published entry or subpost. The id is
// taken from the "*id" wildcard so "parent/child" ids route naturally.
func (a *API) GetEntry(collection string) gin.HandlerFunc {
	return func(c *gin.Context) {
		svc := a.collection(collection)
		if svc == nil {
			respondError(c, http.StatusNotFound, "collection not found")
			return
		}
		ctx := c.Request.Context()
		id := wildcardID(c, "id")

		entry, err := svc.FindByID(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		if entry == nil {
			respondError(c, http.StatusNotFound, "entry not found")
			return
		}

		readingTime, err := svc.ReadingTime(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		combined, err := svc.CombinedReadingTime(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}

		subpostsOf := id
		if entry.IsSubpost() {
			subpostsOf = entry.Parent()
		}
		subposts, err := svc.ListSubposts(ctx, subpostsOf)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		parent, err := svc.ParentOf(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		adjacent, err := svc.Adjacent(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		toc, err := svc.TOCSections(ctx, id)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		rendered, err := svc.Render(ctx, *entry)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		authors, err := a.authors.ParseAuthors(ctx, entry.Authors)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}

		c.JSON(http.StatusOK, gin.H{
			"entry":               a.newEntryView(*entry),
			"readingTime":         readingTime,
			"combinedReadingTime": combined,
			"subposts":            a.entryViews(subposts),
			"parent":              a.entryViewPtr(parent),
			"adjacent":            a.newAdjacentView(adjacent),
			"toc":                 toc,
			"html":                rendered.HTML,
			"authors":             authors,
			"labels":              locale.LabelsFor(a.language(c), collection),
		})
	}
}
