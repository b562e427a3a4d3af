package main

import (
	"fmt"
	"log"
	"os"
	"path/filepath"
	"strings"
	"time"

	"github.com/folio/internal/config"
)

// sampleFile 是一份待写入的 markdown 文件。
type sampleFile struct {
	rel  string
	body string
}

// 示例内容生成器: go run ./scripts [dir]
func main() {
	if err := config.LoadDotEnv(); err != nil {
		log.Fatal("读取 .env 失败:", err)
	}
	dir := config.Load().ContentDir
	if len(os.Args) > 1 {
		dir = os.Args[1]
	}

	fmt.Println("开始生成示例内容...")
	written, err := writeSampleContent(dir, time.Now().UTC())
	if err != nil {
		log.Fatal("生成示例内容失败:", err)
	}
	fmt.Printf("✅ 已写入 %d 个文件到 %s\n", written, dir)
	fmt.Println("导入: folio import", dir)
}

// writeSampleContent 写入示例文件，已存在的文件保持不变。
func writeSampleContent(dir string, now time.Time) (int, error) {
	written := 0
	for _, file := range sampleFiles(now) {
		path := filepath.Join(dir, filepath.FromSlash(file.rel))
		if _, err := os.Stat(path); err == nil {
			continue
		}
		if err := os.MkdirAll(filepath.Dir(path), 0o755); err != nil {
			return written, err
		}
		if err := os.WriteFile(path, []byte(file.body), 0o644); err != nil {
			return written, err
		}
		written++
	}
	return written, nil
}

func sampleFiles(now time.Time) []sampleFile {
	day := func(offset int) string {
		return now.AddDate(0, 0, offset).Format("2006-01-02")
	}

	files := []sampleFile{
		{rel: "authors/vlolek.md", body: frontMatter(map[string]string{
			"name":    "Vladlen Oleksiuk",
			"avatar":  "/static/logo.png",
			"bio":     "Backend developer",
			"website": "https://github.com/vlolek",
		}) + "Scrivo di Go, database e infrastruttura.\n"},

		{rel: "blog/building-a-go-api/index.md", body: entryFrontMatter("Building a Go API", day(-30), 0, "go,api") +
			"## Overview\n\nA small series about building an HTTP API.\n\n## Goals\n\nKeep it boring.\n"},
		{rel: "blog/building-a-go-api/routing.md", body: entryFrontMatter("Routing", day(-29), 1, "go") +
			"## Routes\n\nGroups and middleware.\n\n## Errors\n\nOne JSON shape.\n"},
		{rel: "blog/building-a-go-api/storage.md", body: entryFrontMatter("Storage", day(-28), 2, "go,sqlite") +
			"## Schema\n\nOne table per collection.\n\n" + loremWords(450) + "\n"},
		{rel: "blog/sqlite-in-production.md", body: entryFrontMatter("SQLite in production", day(-10), 0, "sqlite") +
			loremWords(900) + "\n"},
		{rel: "blog/talks.md", body: entryFrontMatter("Talks", day(-3), 0, "news") +
			"La registrazione del talk:\n\nhttps://www.youtube.com/watch?v=dQw4w9WgXcQ\n"},
		{rel: "blog/unfinished.md", body: "---\ntitle: \"Unfinished\"\ndate: " + day(-1) + "\ndraft: true\n---\n\nNot yet.\n"},

		{rel: "education/distributed-systems/index.md", body: entryFrontMatter("Distributed systems", day(-60), 0, "course") +
			"## Syllabus\n\nClocks, consensus, replication.\n"},
		{rel: "education/distributed-systems/raft.md", body: entryFrontMatter("Raft", day(-59), 1, "consensus") +
			"## Leader election\n\nTerms and votes.\n"},

		{rel: "projects/folio.md", body: frontMatter(map[string]string{
			"name":        "folio",
			"description": "Content service for a personal site",
			"link":        "https://github.com/vlolek/folio",
			"startDate":   day(-90),
		}) + "Markdown in, JSON out.\n"},
		{rel: "projects/dotfiles.md", body: frontMatter(map[string]string{
			"name":        "dotfiles",
			"description": "Shell and editor setup",
		}) + "Nothing fancy.\n"},
	}
	return files
}

func entryFrontMatter(title, date string, order int, tags string) string {
	var b strings.Builder
	b.WriteString("---\n")
	fmt.Fprintf(&b, "title: %q\n", title)
	fmt.Fprintf(&b, "description: %q\n", "About "+strings.ToLower(title))
	fmt.Fprintf(&b, "date: %s\n", date)
	if order > 0 {
		fmt.Fprintf(&b, "order: %d\n", order)
	}
	b.WriteString("authors: [vlolek]\n")
	fmt.Fprintf(&b, "tags: [%s]\n", tags)
	b.WriteString("---\n\n")
	return b.String()
}

func frontMatter(fields map[string]string) string {
	var b strings.Builder
	b.WriteString("---\n")
	for _, key := range []string{"name", "description", "avatar", "bio", "website", "link", "startDate"} {
		if value, ok := fields[key]; ok {
			fmt.Fprintf(&b, "%s: %q\n", key, value)
		}
	}
	b.WriteString("---\n\n")
	return b.String()
}

func loremWords(n int) string {
	words := strings.Fields("lorem ipsum dolor sit amet consectetur adipiscing elit sed do eiusmod tempor")
	out := make([]string, n)
	for i := range out {
		out[i] = words[i%len(words)]
	}
	return strings.Join(out, " ")
}
