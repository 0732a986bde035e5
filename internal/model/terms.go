package model

// ExpandedTerm is a weighted query term produced by expansion.
// Terms derived straight from an extracted keyword carry weight 1.0;
// axis-related terms carry a decayed weight so they can surface matches
// without overwhelming exact hits.
type ExpandedTerm struct {
	Term string `json:"term"`

	// Axis and Pole tag the semantic axis the term came from
	// (e.g. axis "outlook", pole "skeptical"). Empty when the term
	// carries no axis association.
	Axis string `json:"axis,omitempty"`
	Pole string `json:"pole,omitempty"`

	Weight float64 `json:"weight"`

	// FromKeyword marks terms taken verbatim from the input rather than
	// derived through the lexicon; they win weight ties during merging
	// and truncation.
	FromKeyword bool `json:"from_keyword,omitempty"`
}
