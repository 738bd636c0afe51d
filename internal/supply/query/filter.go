package query

import (
	"sort"
	"strconv"
	"strings"
	"time"

	"github.com/bbabadara/gestion-approvisionnement-exam-s6/internal/supply/entity"
)

// Sort directions for the order listing.
const (
	SortAsc  = "asc"
	SortDesc = "desc"
)

const (
	DefaultPage     = 1
	DefaultPageSize = 10

	maxVisiblePages = 5
)

// ListQuery is the filter specification for the order listing. Zero values
// mean "no constraint". Filters combine conjunctively; the search term alone
// is an OR over supplier name, stringified order id and referenced item
// labels.
type ListQuery struct {
	Search     string
	SupplierID int64
	ItemID     int64
	Status     string
	StartDate  time.Time
	EndDate    time.Time
	Sort       string
	Page       int
	PageSize   int
}

func (q ListQuery) withDefaults() ListQuery {
	if q.Sort == "" {
		q.Sort = SortDesc
	}
	if q.Page < 1 {
		q.Page = DefaultPage
	}
	if q.PageSize < 1 {
		q.PageSize = DefaultPageSize
	}
	return q
}

// Pagination describes the page returned by Apply.
type Pagination struct {
	Page       int   `json:"page"`
	PageSize   int   `json:"page_size"`
	Total      int   `json:"total"`
	TotalPages int   `json:"total_pages"`
	Pages      []int `json:"pages"`
}

// Filter returns every order matching the query, sorted by date. Pagination
// fields of the query are ignored.
func Filter(orders []entity.Order, catalog map[int64]entity.Item, q ListQuery) []entity.Order {
	q = q.withDefaults()

	matched := make([]entity.Order, 0, len(orders))
	for _, o := range orders {
		if matches(o, catalog, q) {
			matched = append(matched, o)
		}
	}

	sort.SliceStable(matched, func(i, j int) bool {
		if q.Sort == SortAsc {
			return matched[i].Date.Before(matched[j].Date)
		}
		return matched[i].Date.After(matched[j].Date)
	})
	return matched
}

// Apply filters and sorts the full order set, then slices out the requested
// page. The requested page is clamped to [1, max(totalPages, 1)].
func Apply(orders []entity.Order, catalog map[int64]entity.Item, q ListQuery) ([]entity.Order, Pagination) {
	q = q.withDefaults()
	matched := Filter(orders, catalog, q)

	total := len(matched)
	totalPages := (total + q.PageSize - 1) / q.PageSize

	page := q.Page
	if maxPage := totalPages; maxPage < 1 {
		page = 1
	} else if page > maxPage {
		page = maxPage
	}

	start := (page - 1) * q.PageSize
	end := start + q.PageSize
	if start > total {
		start = total
	}
	if end > total {
		end = total
	}

	return matched[start:end], Pagination{
		Page:       page,
		PageSize:   q.PageSize,
		Total:      total,
		TotalPages: totalPages,
		Pages:      PageNumbers(page, totalPages),
	}
}

func matches(o entity.Order, catalog map[int64]entity.Item, q ListQuery) bool {
	if q.Search != "" {
		term := strings.ToLower(q.Search)
		bySupplier := o.Supplier != nil && strings.Contains(strings.ToLower(o.Supplier.Name), term)
		byID := strings.Contains(strconv.FormatInt(o.ID, 10), term)
		byItem := false
		for _, l := range o.Lines {
			if it, ok := catalog[l.ItemID]; ok && strings.Contains(strings.ToLower(it.Label), term) {
				byItem = true
				break
			}
		}
		if !bySupplier && !byID && !byItem {
			return false
		}
	}

	if q.SupplierID != 0 && o.SupplierID != q.SupplierID {
		return false
	}

	if q.ItemID != 0 {
		found := false
		for _, l := range o.Lines {
			if l.ItemID == q.ItemID {
				found = true
				break
			}
		}
		if !found {
			return false
		}
	}

	if q.Status != "" && o.Status != q.Status {
		return false
	}

	if !q.StartDate.IsZero() && o.Date.Before(q.StartDate) {
		return false
	}
	if !q.EndDate.IsZero() && o.Date.After(endOfDay(q.EndDate)) {
		return false
	}

	return true
}

// endOfDay pushes a date filter bound to 23:59:59.999 so the end date is
// inclusive.
func endOfDay(t time.Time) time.Time {
	return time.Date(t.Year(), t.Month(), t.Day(), 23, 59, 59, 999e6, t.Location())
}

// PageNumbers returns up to five consecutive page numbers centered on the
// current page, shifting the window at the boundaries so min(5, totalPages)
// numbers come back whenever possible.
func PageNumbers(current, totalPages int) []int {
	start := current - maxVisiblePages/2
	if start < 1 {
		start = 1
	}
	end := start + maxVisiblePages - 1
	if end > totalPages {
		end = totalPages
	}
	if end-start+1 < maxVisiblePages {
		start = end - maxVisiblePages + 1
		if start < 1 {
			start = 1
		}
	}

	pages := make([]int, 0, maxVisiblePages)
	for i := start; i <= end; i++ {
		pages = append(pages, i)
	}
	return pages
}
