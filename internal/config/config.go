package config

import (
	"fmt"
	"os"
	"strings"

	"github.com/joho/godotenv"
)

// AppConfig 汇总运行服务所需的基础配置。
type AppConfig struct {
	ListenAddr     string
	Port           string
	DatabasePath   string
	DatabaseDriver string
	DatabaseDSN    string
	GinMode        string
	ContentDir     string
	StaticDir      string
	SiteConfig     string
	SiteURL        string
	RedisURL       string
	LogLevel       string
	CORSOrigins    []string
}

// LoadDotEnv 读取工作目录下的 .env 文件，文件不存在时忽略。已存在的环境变量不会被覆盖。
func LoadDotEnv(paths ...string) error {
	if len(paths) == 0 {
		paths = []string{".env"}
	}
	existing := make([]string, 0, len(paths))
	for _, path := range paths {
		if _, err := os.Stat(path); err == nil {
			existing = append(existing, path)
		}
	}
	if len(existing) == 0 {
		return nil
	}
	if err := godotenv.Load(existing...); err != nil {
		return fmt.Errorf("load env file: %w", err)
	}
	return nil
}

// DSN 返回当前驱动使用的连接串，sqlite 下即数据库文件路径。
func (c AppConfig) DSN() string {
	if c.DatabaseDSN != "" {
		return c.DatabaseDSN
	}
	return c.DatabasePath
}

// Load 从环境变量读取应用配置，并为缺失项提供安全的默认值。
func Load() AppConfig {
	port := getEnv("PORT", "8080")

	return AppConfig{
		ListenAddr:     getEnv("LISTEN_ADDR", fmt.Sprintf(":%s", port)),
		Port:           port,
		DatabasePath:   getEnv("DATABASE_PATH", "folio.db"),
		DatabaseDriver: getEnv("DATABASE_DRIVER", "sqlite"),
		DatabaseDSN:    strings.TrimSpace(os.Getenv("DATABASE_DSN")),
		GinMode:        getEnv("GIN_MODE", "release"),
		ContentDir:     getEnv("CONTENT_DIR", "content"),
		StaticDir:      getEnv("STATIC_DIR", "web/static"),
		SiteConfig:     getEnv("SITE_CONFIG", "site.yml"),
		SiteURL:        strings.TrimSpace(os.Getenv("SITE_URL")),
		RedisURL:       strings.TrimSpace(os.Getenv("REDIS_URL")),
		LogLevel:       getEnv("LOG_LEVEL", "info"),
		CORSOrigins:    splitList(os.Getenv("CORS_ORIGINS")),
	}
}

func getEnv(key, fallback string) string {
	if v := strings.TrimSpace(os.Getenv(key)); v != "" {
		return v
	}
	return fallback
}

func splitList(raw string) []string {
	var out []string
	for _, part := range strings.Split(raw, ",") {
		if v := strings.TrimSpace(part); v != "" {
			out = append(out, v)
		}
	}
	return out
}
