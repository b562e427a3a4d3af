package handler

import (
	"encoding/xml"
	"fmt"
	"net/http"
	"net/url"
	"strings"

	"github.com/folio/internal/db"
	"github.com/gin-gonic/gin"
)

const (
	sitemapIndexFile = "sitemap-index.xml"
	sitemapPageFile  = "sitemap-0.xml"
	sitemapXMLNS     = "http://www.sitemaps.org/schemas/sitemap/0.9"
)

const disallowAllRobots = "User-agent: *\nDisallow: /"

const robotsTemplate = `User-agent: *
Allow: /

User-agent: Googlebot
Allow: /

User-agent: Bingbot
Allow: /

Sitemap: %s
`

type sitemapIndex struct {
	XMLName  xml.Name     `xml:"sitemapindex"`
	XMLNS    string       `xml:"xmlns,attr"`
	Sitemaps []sitemapRef `xml:"sitemap"`
}

type sitemapRef struct {
	Loc string `xml:"loc"`
}

type urlSet struct {
	XMLName xml.Name     `xml:"urlset"`
	XMLNS   string       `xml:"xmlns,attr"`
	URLs    []sitemapURL `xml:"url"`
}

type sitemapURL struct {
	Loc     string `xml:"loc"`
	LastMod string `xml:"lastmod,omitempty"`
}

// siteURL resolves ref against the configured website. It returns nil when
// no usable absolute website is configured.
func (a *API) siteURL(ref string) *url.URL {
	raw := strings.TrimSpace(a.site.Website)
	if raw == "" {
		return nil
	}
	base, err := url.Parse(raw)
	if err != nil || base.Scheme == "" || base.Host == "" {
		return nil
	}
	rel, err := url.Parse(ref)
	if err != nil {
		return nil
	}
	return base.ResolveReference(rel)
}

// Robots 生成 robots.txt：配置了站点地址时允许抓取并给出 sitemap，否则禁止全部抓取。
func (a *API) Robots(c *gin.Context) {
	body := disallowAllRobots
	if sitemap := a.siteURL(sitemapIndexFile); sitemap != nil {
		body = fmt.Sprintf(robotsTemplate, sitemap.String())
	}
	c.Data(http.StatusOK, "text/plain; charset=utf-8", []byte(body))
}

// SitemapIndex lists the sitemap pages. There is a single page.
func (a *API) SitemapIndex(c *gin.Context) {
	page := a.siteURL(sitemapPageFile)
	if page == nil {
		respondError(c, http.StatusNotFound, "site url not configured")
		return
	}
	a.writeXML(c, sitemapIndex{
		XMLNS:    sitemapXMLNS,
		Sitemaps: []sitemapRef{{Loc: page.String()}},
	})
}

// Sitemap 输出所有已发布条目（含子文章）与项目的地址。
func (a *API) Sitemap(c *gin.Context) {
	if a.siteURL("") == nil {
		respondError(c, http.StatusNotFound, "site url not configured")
		return
	}
	ctx := c.Request.Context()

	set := urlSet{XMLNS: sitemapXMLNS}
	for _, path := range []string{"", "posts", "projects", "education"} {
		set.URLs = append(set.URLs, sitemapURL{Loc: a.siteURL(path).String()})
	}

	sections := []struct {
		prefix     string
		collection string
	}{
		{prefix: "posts", collection: db.CollectionBlog},
		{prefix: "education", collection: db.CollectionEducation},
	}
	for _, section := range sections {
		entries, err := a.collection(section.collection).ListPublishedWithSubposts(ctx)
		if err != nil {
			a.respondStoreError(c, err)
			return
		}
		for _, e := range entries {
			set.URLs = append(set.URLs, sitemapURL{
				Loc:     a.siteURL(section.prefix + "/" + escapeEntryPath(e.ID)).String(),
				LastMod: e.Date.UTC().Format("2006-01-02"),
			})
		}
	}

	projects, err := a.projects.ListAll(ctx)
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	for _, p := range projects {
		u := sitemapURL{Loc: a.siteURL("projects/" + url.PathEscape(p.ID)).String()}
		if p.StartDate != nil {
			u.LastMod = p.StartDate.UTC().Format("2006-01-02")
		}
		set.URLs = append(set.URLs, u)
	}

	a.writeXML(c, set)
}

func (a *API) writeXML(c *gin.Context, v interface{}) {
	out, err := xml.MarshalIndent(v, "", "  ")
	if err != nil {
		a.respondStoreError(c, err)
		return
	}
	c.Data(http.StatusOK, "application/xml; charset=utf-8", append([]byte(xml.Header), out...))
}

// escapeEntryPath escapes each id segment but keeps the subpost separator.
func escapeEntryPath(id string) string {
	parts := strings.Split(id, "/")
	for i, part := range parts {
		parts[i] = url.PathEscape(part)
	}
	return strings.Join(parts, "/")
}
