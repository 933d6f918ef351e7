package topic

// Topic is a resolved, nameable blog subject derived from clustered
// candidates. ID is the slug of Title and doubles as the dedup key in
// the usage ledger.
type Topic struct {
	ID             string
	Title          string
	Description    string
	PrimaryURL     string
	SupportingURLs []string

	// AggregateScore is reserved for a future ranking signal; nothing
	// in the current pipeline computes it.
	AggregateScore float64
}
