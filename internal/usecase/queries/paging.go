package queries

// Page carries the LIMIT/OFFSET pair handed to the store.
type Page struct {
	Limit  int
	Offset int
}

// NewPage converts a (from, size) pair into a page the way the API has always
// done it: from/size selects a page index by integer division, so a from that
// is not a multiple of size rounds down to the containing page. Callers who
// need exact offsets must pass aligned values. Kept for wire compatibility,
// do not "fix".
func NewPage(from, size int) Page {
	pageIndex := from / size
	return Page{
		Limit:  size,
		Offset: pageIndex * size,
	}
}
