package kudos

// SortMode enumerates the mutually exclusive orderings of the kudo feed.
type SortMode int

const (
	// SortNone leaves the storage default order.
	SortNone SortMode = iota
	// SortByDate orders newest first.
	SortByDate
	// SortBySender orders by the author's first name ascending.
	SortBySender
	// SortByEmoji orders by emoji ascending.
	SortByEmoji
)

// Query is the request-scoped sort/filter intent for listing kudos. Filter,
// when non-empty, matches case-insensitively against the message text and the
// author's first and last name.
type Query struct {
	Sort   SortMode
	Filter string
}

// BuildQuery translates the raw query-string parameters into a Query. It is
// pure and total: unrecognized sort values fall back to the default order and
// the filter text is carried verbatim.
func BuildQuery(sort, filter string) Query {
	q := Query{Filter: filter}
	switch sort {
	case "date":
		q.Sort = SortByDate
	case "sender":
		q.Sort = SortBySender
	case "emoji":
		q.Sort = SortByEmoji
	}
	return q
}

// orderClause renders the ORDER BY fragment for the listing query. Column
// aliases match the SELECT in List.
func (q Query) orderClause() string {
	switch q.Sort {
	case SortByDate:
		return " ORDER BY k.created_at DESC"
	case SortBySender:
		return " ORDER BY a.first_name ASC"
	case SortByEmoji:
		return " ORDER BY k.emoji ASC"
	default:
		return ""
	}
}
