package service

import "github.com/folio/internal/db"

// NewBlogService binds the query layer to the blog collection.
func NewBlogService(source EntrySource) *CollectionService {
	return NewCollectionService(source, db.CollectionBlog)
}

// NewEducationService binds the query layer to the education collection.
func NewEducationService(source EntrySource) *CollectionService {
	return NewCollectionService(source, db.CollectionEducation)
}

// YearGroup 是按年份归档的一组条目。
type YearGroup struct {
	Year    int
	Entries []db.Entry
}

// GroupByYear groups entries by the year of their date, keeping the input
// order both across groups and inside each group.
func GroupByYear(entries []db.Entry) []YearGroup {
	groups := []YearGroup{}
	index := map[int]int{}
	for _, entry := range entries {
		year := entry.Date.Year()
		pos, ok := index[year]
		if !ok {
			pos = len(groups)
			index[year] = pos
			groups = append(groups, YearGroup{Year: year})
		}
		groups[pos].Entries = append(groups[pos].Entries, entry)
	}
	return groups
}
