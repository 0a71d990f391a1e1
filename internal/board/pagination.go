package board

// PageSize is the number of posts shown per listing page.
const PageSize = 4

// PageInfo is the listing view-model: a 0-based page over the active
// posts plus the 1-based inclusive display range ("start–end of total").
type PageInfo struct {
	Page       int
	PageSize   int
	Total      int64
	TotalPages int
	Start      int
	End        int
}

// Paginate computes the display range for the given 0-based page. With an
// empty listing both bounds are zero.
func Paginate(page int, total int64, size int) PageInfo {
	if page < 0 {
		page = 0
	}

	totalPages := int((total + int64(size) - 1) / int64(size))
	if totalPages == 0 {
		totalPages = 1
	}

	info := PageInfo{Page: page, PageSize: size, Total: total, TotalPages: totalPages}
	if total > 0 {
		info.Start = page*size + 1
		info.End = info.Start + size - 1
		if int64(info.End) > total {
			info.End = int(total)
		}
	}
	return info
}
