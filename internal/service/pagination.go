package service

import "github.com/folio/internal/db"

// EntryPage aggregates one page of a published listing.
type EntryPage struct {
	Entries    []db.Entry
	Total      int
	TotalPages int
	Page       int
	PerPage    int
}

// Paginate slices entries into the requested page. Out of range pages
// yield an empty slice; page and perPage fall back to 1 and 10.
func Paginate(entries []db.Entry, page, perPage int) EntryPage {
	result := EntryPage{Page: page, PerPage: perPage, Total: len(entries)}
	if result.Page <= 0 {
		result.Page = 1
	}
	if result.PerPage <= 0 {
		result.PerPage = 10
	}

	if result.Total == 0 {
		result.TotalPages = 1
	} else {
		result.TotalPages = (result.Total + result.PerPage - 1) / result.PerPage
	}

	offset := (result.Page - 1) * result.PerPage
	if offset >= result.Total {
		result.Entries = []db.Entry{}
		return result
	}
	end := offset + result.PerPage
	if end > result.Total {
		end = result.Total
	}
	result.Entries = entries[offset:end]
	return result
}
