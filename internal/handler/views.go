package handler

import (
	"time"

	"github.com/folio/internal/db"
	"github.com/folio/internal/locale"
	"github.com/folio/internal/service"
)

type entryView struct {
	ID            string    `json:"id"`
	Collection    string    `json:"collection"`
	Title         string    `json:"title"`
	Description   string    `json:"description,omitempty"`
	Date          time.Time `json:"date"`
	FormattedDate string    `json:"formattedDate"`
	Order         int       `json:"order"`
	Tags          []string  `json:"tags"`
	Authors       []string  `json:"authors"`
	Image         string    `json:"image,omitempty"`
	IsSubpost     bool      `json:"isSubpost"`
	ParentID      string    `json:"parentId,omitempty"`
}

type entrySummary struct {
	entryView
	ReadingTime  string `json:"readingTime"`
	SubpostCount int    `json:"subpostCount"`
}

type adjacentView struct {
	Newer  *entryView `json:"newer"`
	Older  *entryView `json:"older"`
	Parent *entryView `json:"parent"`
}

type projectView struct {
	ID          string     `json:"id"`
	Name        string     `json:"name"`
	Description string     `json:"description,omitempty"`
	Tags        []string   `json:"tags"`
	Link        string     `json:"link,omitempty"`
	Image       string     `json:"image,omitempty"`
	ImageWidth  int        `json:"imageWidth,omitempty"`
	ImageHeight int        `json:"imageHeight,omitempty"`
	StartDate   *time.Time `json:"startDate"`
	EndDate     *time.Time `json:"endDate"`
}

type authorView struct {
	ID      string `json:"id"`
	Name    string `json:"name"`
	Avatar  string `json:"avatar,omitempty"`
	Bio     string `json:"bio,omitempty"`
	Website string `json:"website,omitempty"`
}

func (a *API) dateFormat() locale.DateFormat {
	if a.site.DateFormat == "" {
		return locale.DateDefault
	}
	return locale.DateFormat(a.site.DateFormat)
}

func (a *API) newEntryView(e db.Entry) entryView {
	return entryView{
		ID:            e.ID,
		Collection:    e.Collection,
		Title:         e.Title,
		Description:   e.Description,
		Date:          e.Date,
		FormattedDate: locale.FormatDate(e.Date, a.dateFormat()),
		Order:         e.Order,
		Tags:          nonNil(e.Tags),
		Authors:       nonNil(e.Authors),
		Image:         e.Image,
		IsSubpost:     e.IsSubpost(),
		ParentID:      e.ParentID,
	}
}

func (a *API) entryViewPtr(e *db.Entry) *entryView {
	if e == nil {
		return nil
	}
	view := a.newEntryView(*e)
	return &view
}

func (a *API) entryViews(entries []db.Entry) []entryView {
	views := make([]entryView, 0, len(entries))
	for _, e := range entries {
		views = append(views, a.newEntryView(e))
	}
	return views
}

func (a *API) newAdjacentView(adj service.Adjacent) adjacentView {
	return adjacentView{
		Newer:  a.entryViewPtr(adj.Newer),
		Older:  a.entryViewPtr(adj.Older),
		Parent: a.entryViewPtr(adj.Parent),
	}
}

func newProjectView(p db.Project) projectView {
	return projectView{
		ID:          p.ID,
		Name:        p.Name,
		Description: p.Description,
		Tags:        nonNil(p.Tags),
		Link:        p.Link,
		Image:       p.Image,
		ImageWidth:  p.ImageWidth,
		ImageHeight: p.ImageHeight,
		StartDate:   p.StartDate,
		EndDate:     p.EndDate,
	}
}

func projectViewPtr(p *db.Project) *projectView {
	if p == nil {
		return nil
	}
	view := newProjectView(*p)
	return &view
}

func newAuthorView(au db.Author) authorView {
	return authorView{ID: au.ID, Name: au.Name, Avatar: au.Avatar, Bio: au.Bio, Website: au.Website}
}

func nonNil(list db.StringList) []string {
	if list == nil {
		return []string{}
	}
	return list
}
