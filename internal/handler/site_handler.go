package handler

import (
	"net/http"

	"github.com/folio/internal/config"
	"github.com/folio/internal/locale"
	"github.com/folio/internal/view"
	"github.com/gin-gonic/gin"
)

// GetSite 返回站点元信息与导航，供前端渲染页眉页脚。
func (a *API) GetSite(c *gin.Context) {
	recent, err := a.tags.RecentPosts(c.Request.Context(), a.site.Posts.HomePageSize)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	site := a.site
	site.SocialLinks = withSocialIcons(site.SocialLinks)

	pref := locale.PreferenceForLanguage(a.language(c))
	c.JSON(http.StatusOK, gin.H{
		"site":        site,
		"htmlLang":    pref.HTMLLang,
		"recentPosts": a.entryViews(recent),
	})
}

// withSocialIcons 为未配置图标的社交链接补上默认图标。
func withSocialIcons(links []config.SocialLink) []config.SocialLink {
	out := make([]config.SocialLink, len(links))
	for i, link := range links {
		if link.Icon == "" {
			link.Icon = view.SocialIconFor(link.Name)
		}
		out[i] = link
	}
	return out
}
