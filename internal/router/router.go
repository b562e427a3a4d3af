package router

import (
	"net/http"
	"os"
	"strings"

	"github.com/folio/internal/db"
	"github.com/folio/internal/handler"
	"github.com/folio/internal/middleware"
	"github.com/gin-contrib/cors"
	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

// Options 汇总路由层需要的外部配置。
type Options struct {
	StaticDir   string
	CORSOrigins []string
	Logger      *zap.Logger
}

// SetupRouter 配置 Gin 引擎和路由
func SetupRouter(api *handler.API, opts Options) *gin.Engine {
	logger := opts.Logger
	if logger == nil {
		logger = zap.NewNop()
	}

	r := gin.New()
	r.HandleMethodNotAllowed = true
	r.Use(gin.Recovery())
	r.Use(middleware.RequestID())
	r.Use(middleware.Logger(logger))
	r.Use(cors.New(corsConfig(opts.CORSOrigins)))

	r.NoRoute(func(c *gin.Context) {
		c.JSON(http.StatusNotFound, gin.H{"error": "not found"})
	})
	r.NoMethod(func(c *gin.Context) {
		c.JSON(http.StatusMethodNotAllowed, gin.H{"error": "method not allowed"})
	})

	// 静态文件服务
	if dir := strings.TrimSpace(opts.StaticDir); dir != "" {
		if info, err := os.Stat(dir); err == nil && info.IsDir() {
			r.Static("/static", dir)
		}
	}

	r.GET("/ping", func(c *gin.Context) {
		c.JSON(http.StatusOK, gin.H{
			"message": "pong",
		})
	})

	r.GET("/robots.txt", api.Robots)
	r.GET("/sitemap-index.xml", api.SitemapIndex)
	r.GET("/sitemap-0.xml", api.Sitemap)

	apiGroup := r.Group("/api")
	{
		apiGroup.GET("/site", api.GetSite)

		for _, collection := range []string{db.CollectionBlog, db.CollectionEducation} {
			group := apiGroup.Group("/" + collection)
			group.GET("", api.ListEntries(collection))
			group.GET("/years", api.ListYears(collection))
			// 子文章 ID 形如 parent/child，需要通配参数
			group.GET("/entries/*id", api.GetEntry(collection))
		}

		apiGroup.GET("/projects", api.ListProjects)
		apiGroup.GET("/projects/:id", api.GetProject)

		apiGroup.GET("/authors", api.ListAuthors)
		apiGroup.GET("/authors/:id", api.GetAuthor)

		apiGroup.GET("/tags", api.ListTags)
		apiGroup.GET("/tags/:tag", api.GetTag)
	}

	return r
}

// corsConfig 只开放只读方法；未配置来源时允许任意来源。
func corsConfig(origins []string) cors.Config {
	cfg := cors.Config{
		AllowMethods:  []string{http.MethodGet, http.MethodHead, http.MethodOptions},
		AllowHeaders:  []string{"Origin", "Content-Type", "Accept", middleware.RequestIDHeader},
		ExposeHeaders: []string{"Content-Length", middleware.RequestIDHeader},
	}
	if len(origins) == 0 {
		cfg.AllowAllOrigins = true
		return cfg
	}
	cfg.AllowOrigins = origins
	return cfg
}
