package handler

import (
	"net/http"

	"github.com/folio/internal/db"
	"github.com/folio/internal/locale"
	"github.com/gin-gonic/gin"
)

// ListProjects 返回按开始时间倒序排列的项目。
func (a *API) ListProjects(c *gin.Context) {
	projects, err := a.projects.ListAll(c.Request.Context())
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	items := make([]projectView, 0, len(projects))
	for _, p := range projects {
		items = append(items, newProjectView(p))
	}
	c.JSON(http.StatusOK, gin.H{
		"items":  items,
		"labels": locale.LabelsFor(a.language(c), db.CollectionProjects),
	})
}

// GetProject returns one project with its neighbours and rendered body.
func (a *API) GetProject(c *gin.Context) {
	ctx := c.Request.Context()
	id := c.Param("id")

	project, err := a.projects.Get(ctx, id)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	if project == nil {
		respondError(c, http.StatusNotFound, "project not found")
		return
	}

	adjacent, err := a.projects.Adjacent(ctx, id)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	rendered, err := a.projects.Render(ctx, *project)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}

	c.JSON(http.StatusOK, gin.H{
		"project": newProjectView(*project),
		"adjacent": gin.H{
			"newer": projectViewPtr(adjacent.Newer),
			"older": projectViewPtr(adjacent.Older),
		},
		"html":     rendered.HTML,
		"headings": rendered.Headings,
	})
}
