package handler

import (
	"net/http"
	"strconv"
	"strings"

	"github.com/gin-gonic/gin"
	"go.uber.org/zap"
)

func respondError(c *gin.Context, status int, message string) {
	c.JSON(status, gin.H{"error": message})
}

// respondStoreError 记录内容仓库错误并返回 500，不向客户端暴露细节。
func (a *API) respondStoreError(c *gin.Context, err error) {
	c.Error(err)
	a.logger.Error("content store failure",
		zap.String("path", c.Request.URL.Path),
		zap.Error(err),
	)
	respondError(c, http.StatusInternalServerError, "failed to load content")
}

func parsePositiveInt(value string, fallback int) int {
	num, err := strconv.Atoi(strings.TrimSpace(value))
	if err != nil || num <= 0 {
		return fallback
	}
	return num
}

// wildcardID 去掉 gin 通配参数前导的斜杠，"/a/1" -> "a/1"。
func wildcardID(c *gin.Context, key string) string {
	return strings.Trim(c.Param(key), "/")
}
