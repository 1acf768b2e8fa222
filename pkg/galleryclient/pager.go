package galleryclient

// DefaultPageSize is the number of photos shown per gallery page.
const DefaultPageSize = 12

// Pager slices the session's full photo list into pages. Pagination is
// purely client-side: the server always returns the complete newest-first
// list and the pager windows over it.
type Pager struct {
	session  *Session
	page     int
	pageSize int
}

func NewPager(s *Session, pageSize int) *Pager {
	if pageSize <= 0 {
		pageSize = DefaultPageSize
	}
	return &Pager{session: s, page: 1, pageSize: pageSize}
}

// Page returns the current 1-based page number.
func (p *Pager) Page() int { return p.page }

// PageSize returns the configured page size.
func (p *Pager) PageSize() int { return p.pageSize }

// TotalPages returns the page count for the cached list; at least 1.
func (p *Pager) TotalPages() int {
	n := len(p.session.Photos())
	if n == 0 {
		return 1
	}
	return (n + p.pageSize - 1) / p.pageSize
}

// Current returns the photos on the current page. The page number is clamped
// to the valid range first, so a shrunken list never yields an empty window
// while photos remain.
func (p *Pager) Current() []Photo {
	photos := p.session.Photos()
	total := p.totalPagesFor(len(photos))
	if p.page > total {
		p.page = total
	}
	if p.page < 1 {
		p.page = 1
	}
	start := (p.page - 1) * p.pageSize
	if start >= len(photos) {
		return []Photo{}
	}
	end := start + p.pageSize
	if end > len(photos) {
		end = len(photos)
	}
	return photos[start:end]
}

// Next advances one page, reporting whether it moved.
func (p *Pager) Next() bool {
	if p.page >= p.TotalPages() {
		return false
	}
	p.page++
	return true
}

// Prev goes back one page, reporting whether it moved.
func (p *Pager) Prev() bool {
	if p.page <= 1 {
		return false
	}
	p.page--
	return true
}

// SetPage jumps to the given page, clamped to the valid range.
func (p *Pager) SetPage(n int) {
	total := p.TotalPages()
	if n < 1 {
		n = 1
	}
	if n > total {
		n = total
	}
	p.page = n
}

func (p *Pager) totalPagesFor(n int) int {
	if n == 0 {
		return 1
	}
	return (n + p.pageSize - 1) / p.pageSize
}
