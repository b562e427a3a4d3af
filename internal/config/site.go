package config

import (
	"bytes"
	"errors"
	"fmt"
	"io"
	"os"
	"path/filepath"
	"strings"

	"github.com/pelletier/go-toml/v2"
	"gopkg.in/yaml.v3"
)

// Link 导航链接
type Link struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	URL  string `yaml:"url" toml:"url" json:"url"`
}

// SocialLink 社交平台链接
type SocialLink struct {
	Name string `yaml:"name" toml:"name" json:"name"`
	URL  string `yaml:"url" toml:"url" json:"url"`
	Icon string `yaml:"icon" toml:"icon" json:"icon,omitempty"`
}

// CollectionConfig 描述一个集合的页面文案与分页大小。
type CollectionConfig struct {
	Title        string `yaml:"title" toml:"title" json:"title"`
	Description  string `yaml:"description" toml:"description" json:"description"`
	Introduce    string `yaml:"introduce" toml:"introduce" json:"introduce"`
	Author       string `yaml:"author" toml:"author" json:"author"`
	HomePageSize int    `yaml:"home_page_size" toml:"home_page_size" json:"homePageSize"`
	PageSize     int    `yaml:"page_size" toml:"page_size" json:"pageSize"`
}

// SiteConfig holds site metadata served to clients and used by the
// robots.txt and sitemap endpoints.
type SiteConfig struct {
	Title       string           `yaml:"title" toml:"title" json:"title"`
	Description string           `yaml:"description" toml:"description" json:"description"`
	Website     string           `yaml:"website" toml:"website" json:"website"`
	Lang        string           `yaml:"lang" toml:"lang" json:"lang"`
	Author      string           `yaml:"author" toml:"author" json:"author"`
	OGImage     string           `yaml:"og_image" toml:"og_image" json:"ogImage"`
	DateFormat  string           `yaml:"date_format" toml:"date_format" json:"dateFormat"`
	HeaderLinks []Link           `yaml:"header_links" toml:"header_links" json:"headerLinks"`
	FooterLinks []Link           `yaml:"footer_links" toml:"footer_links" json:"footerLinks"`
	SocialLinks []SocialLink     `yaml:"social_links" toml:"social_links" json:"socialLinks"`
	Posts       CollectionConfig `yaml:"posts" toml:"posts" json:"posts"`
	Education   CollectionConfig `yaml:"education" toml:"education" json:"education"`
	Projects    CollectionConfig `yaml:"projects" toml:"projects" json:"projects"`
	Tags        CollectionConfig `yaml:"tags" toml:"tags" json:"tags"`
}

// DefaultSite returns the built-in site metadata.
func DefaultSite() SiteConfig {
	return SiteConfig{
		Title:       "Vladlen Oleksiuk - Backend Developer",
		Description: "Backend developer che condivide i suoi progetti e le sue esperienze.",
		Website:     "https://vlolek.com/",
		Lang:        "it",
		Author:      "vlolek",
		OGImage:     "/og-image.png",
		DateFormat:  "default",
		HeaderLinks: []Link{
			{Name: "Articoli", URL: "/posts"},
			{Name: "Progetti", URL: "/projects"},
			{Name: "Formazione", URL: "/education"},
		},
		FooterLinks: []Link{
			{Name: "Home", URL: "/"},
			{Name: "Articoli", URL: "/posts"},
			{Name: "Progetti", URL: "/projects"},
			{Name: "Formazione", URL: "/education"},
		},
		SocialLinks: []SocialLink{
			{Name: "github", URL: "https://github.com/vlolek", Icon: "icon-[ri--github-fill]"},
		},
		Posts: CollectionConfig{
			Title:        "Articoli",
			Description:  "Articoli di vlolek",
			Introduce:    "Qui condividerò i miei articoli e le mie esperienze.",
			Author:       "vlolek",
			HomePageSize: 3,
			PageSize:     10,
		},
		Education: CollectionConfig{
			Title:        "Formazione",
			Description:  "Appunti e note dai corsi che seguo.",
			Introduce:    "Qui condivido i miei appunti e le note dai corsi che sto seguendo.",
			Author:       "vlolek",
			HomePageSize: 5,
			PageSize:     10,
		},
		Projects: CollectionConfig{
			Title:        "Progetti",
			Description:  "I miei progetti e lavori.",
			Introduce:    "Qui condivido i miei progetti e i lavori su cui sto lavorando.",
			Author:       "vlolek",
			HomePageSize: 3,
			PageSize:     10,
		},
		Tags: CollectionConfig{
			Title:       "Tag",
			Description: "Tutti i tag degli articoli",
			Introduce:   "Tutti i tag per gli articoli sono qui, puoi cliccare per filtrarli.",
			PageSize:    10,
		},
	}
}

// LoadSite reads the site file at path, YAML by default or TOML for a
// .toml extension. A missing file yields the defaults; fields absent from
// the file keep their default values.
func LoadSite(path string) (SiteConfig, error) {
	site := DefaultSite()
	path = strings.TrimSpace(path)
	if path == "" {
		return site, nil
	}

	content, err := os.ReadFile(path)
	if err != nil {
		if errors.Is(err, os.ErrNotExist) {
			return site, nil
		}
		return SiteConfig{}, fmt.Errorf("read site config %q: %w", path, err)
	}

	if err := decodeSite(path, content, &site); err != nil {
		return SiteConfig{}, fmt.Errorf("parse site config %q: %w", path, err)
	}
	if err := site.validate(); err != nil {
		return SiteConfig{}, fmt.Errorf("invalid site config %q: %w", path, err)
	}
	return site, nil
}

func decodeSite(path string, content []byte, site *SiteConfig) error {
	if strings.EqualFold(filepath.Ext(path), ".toml") {
		return toml.NewDecoder(bytes.NewReader(content)).DisallowUnknownFields().Decode(site)
	}

	decoder := yaml.NewDecoder(bytes.NewReader(content))
	decoder.KnownFields(true)
	if err := decoder.Decode(site); err != nil && !errors.Is(err, io.EOF) {
		return err
	}
	return nil
}

// WithOrigin returns a copy whose website is replaced by origin when set.
func (s SiteConfig) WithOrigin(origin string) SiteConfig {
	if v := strings.TrimSpace(origin); v != "" {
		s.Website = v
	}
	return s
}

// Origin 返回去掉末尾斜杠的站点地址，未配置时为空。
func (s SiteConfig) Origin() string {
	return strings.TrimRight(strings.TrimSpace(s.Website), "/")
}

func (s SiteConfig) validate() error {
	for name, c := range map[string]CollectionConfig{
		"posts": s.Posts, "education": s.Education, "projects": s.Projects, "tags": s.Tags,
	} {
		if c.PageSize < 0 || c.HomePageSize < 0 {
			return fmt.Errorf("%s page sizes must not be negative", name)
		}
	}
	return nil
}
