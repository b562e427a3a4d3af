package handler

import (
	"net/http"
	"strings"

	"github.com/folio/internal/locale"
	"github.com/gin-gonic/gin"
)

// ListTags 返回按使用次数排序的标签。
func (a *API) ListTags(c *gin.Context) {
	tags, err := a.tags.SortedTags(c.Request.Context())
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	c.JSON(http.StatusOK, gin.H{"items": tags})
}

func (a *API) GetTag(c *gin.Context) {
	tag := strings.TrimSpace(c.Param("tag"))
	posts, err := a.tags.PostsByTag(c.Request.Context(), tag)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	if len(posts) == 0 {
		respondError(c, http.StatusNotFound, "tag not found")
		return
	}
	c.JSON(http.StatusOK, gin.H{
		"tag":   tag,
		"title": locale.Pick(a.language(c), "Posts tagged "+tag, "Articoli con tag "+tag),
		"posts": a.entryViews(posts),
	})
}
