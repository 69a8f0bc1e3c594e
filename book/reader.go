package book

// Reader tracks one open book laid out as a cover-first flip book: the first
// leaf is shown alone, then two pages per spread, and a trailing single leaf
// when the count is even. It is the only place that updates a DisplayState.
//
// With an odd page count the last spread starts at n-2 and holds two pages,
// so the book stays Open there and never reaches ClosedEnd. The flip book it
// mirrors behaves the same way.
type Reader struct {
	pages int
	index int
	state DisplayState
}

func NewReader(pages int) *Reader {
	if pages < 0 {
		pages = 0
	}
	return &Reader{pages: pages, state: InitialState}
}

func (r *Reader) Pages() int {
	return r.pages
}

// Index is the first page of the visible spread.
func (r *Reader) Index() int {
	return r.index
}

func (r *Reader) State() DisplayState {
	return r.state
}

// Seek opens the spread containing page i, clamping i into the book, and
// returns the new state.
func (r *Reader) Seek(i int) DisplayState {
	if r.pages == 0 {
		r.index = 0
		r.state = InitialState
		return r.state
	}
	r.index = spreadStart(clamp(i, 0, r.pages-1))
	r.state = OnPageChange(r.index, KnownTotal(r.pages))
	return r.state
}

// Spread returns the page indices currently visible.
func (r *Reader) Spread() []int {
	if r.pages == 0 {
		return nil
	}
	if r.index == 0 || r.index+1 >= r.pages {
		return []int{r.index}
	}
	return []int{r.index, r.index + 1}
}

// Next returns the first page of the following spread and false on the last one.
func (r *Reader) Next() (int, bool) {
	if r.pages == 0 {
		return 0, false
	}
	next := r.index + 2
	if r.index == 0 {
		next = 1
	}
	if next > r.pages-1 {
		return r.index, false
	}
	return next, true
}

// Prev returns the first page of the preceding spread and false on the cover.
func (r *Reader) Prev() (int, bool) {
	if r.index == 0 {
		return 0, false
	}
	return spreadStart(r.index - 1), true
}

// spreadStart maps a page to the first page of its spread: 0, 1, 3, 5...
func spreadStart(i int) int {
	if i <= 0 {
		return 0
	}
	if i%2 == 0 {
		return i - 1
	}
	return i
}

func clamp(v, lo, hi int) int {
	if v < lo {
		return lo
	}
	if v > hi {
		return hi
	}
	return v
}
