package listing

// State tracks the page a client is viewing alongside its query. The page
// resets to 1 whenever the query changes, so stale page numbers never
// survive a filter or search change.
type State[Q comparable] struct {
	query Q
	page  int
}

// NewState creates a State positioned on page 1.
func NewState[Q comparable](query Q) *State[Q] {
	return &State[Q]{query: query, page: 1}
}

// SetQuery replaces the query. A changed query resets the page to 1.
func (s *State[Q]) SetQuery(query Q) {
	if query != s.query {
		s.query = query
		s.page = 1
	}
}

// SetPage moves to the given page. Values below 1 clamp to 1.
func (s *State[Q]) SetPage(page int) {
	if page < 1 {
		page = 1
	}
	s.page = page
}

// Query returns the current query.
func (s *State[Q]) Query() Q {
	return s.query
}

// Page returns the current 1-based page number.
func (s *State[Q]) Page() int {
	return s.page
}
