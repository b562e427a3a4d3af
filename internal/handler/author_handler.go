package handler

import (
	"net/http"

	"github.com/gin-gonic/gin"
)

func (a *API) ListAuthors(c *gin.Context) {
	authors, err := a.authors.ListAll(c.Request.Context())
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	items := make([]authorView, 0, len(authors))
	for _, au := range authors {
		items = append(items, newAuthorView(au))
	}
	c.JSON(http.StatusOK, gin.H{"items": items})
}

// GetAuthor 返回作者信息及其已发布的文章。
func (a *API) GetAuthor(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	author, err := a.authors.Get(ctx, id)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	if author == nil {
		respondError(c, http.StatusNotFound, "author not found")
		return
	}

	posts, err := a.tags.PostsByAuthor(ctx, id)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"author": newAuthorView(*author),
		"posts":  a.entryViews(posts),
	})
}
