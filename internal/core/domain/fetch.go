package domain

// FetchResult is the decoded response from a remote JSON fetch.
type FetchResult struct {
	// URL is the fully resolved request URL.
	URL string

	// Status is the HTTP status code.
	Status int

	// Body is the decoded JSON document.
	Body map[string]any
}
