package model

import (
	"fmt"
	"sort"
	"strings"

	"github.com/draftroom/canonlens/internal/errs"
)

// RelevanceTier classifies how strongly an author is associated with a camp
type RelevanceTier int

const (
	TierWeak     RelevanceTier = 0 // Occasional or tangential association
	TierModerate RelevanceTier = 1 // Regular contributor to the camp's position
	TierStrong   RelevanceTier = 2 // Defining voice of the camp
)

func (t RelevanceTier) String() string {
	switch t {
	case TierStrong:
		return "strong"
	case TierModerate:
		return "moderate"
	default:
		return "weak"
	}
}

// ParseRelevanceTier converts a canon-file tier string to a RelevanceTier
func ParseRelevanceTier(s string) RelevanceTier {
	switch strings.ToLower(strings.TrimSpace(s)) {
	case "strong":
		return TierStrong
	case "moderate":
		return TierModerate
	default:
		return TierWeak
	}
}

// AuthorRef references an author owned by an external store.
// It is a relation, not ownership: only the fields needed for ranking
// and display travel with the snapshot.
type AuthorRef struct {
	ID   string        `json:"id" yaml:"id"`
	Name string        `json:"name" yaml:"name"`
	Tier RelevanceTier `json:"relevance_tier" yaml:"-"`

	// TierLabel carries the raw canon-file value; Tier is derived from it.
	TierLabel string `json:"-" yaml:"tier"`
}

// Domain is a top-level topic area partitioning camps
type Domain struct {
	ID   string `json:"id" yaml:"id"`
	Name string `json:"name" yaml:"name"`
}

// Camp is a curated cluster of authors sharing a stance within a domain
type Camp struct {
	ID         string      `json:"id" yaml:"id"`
	DomainID   string      `json:"domain_id" yaml:"domain"`
	Label      string      `json:"label" yaml:"label"`
	Vocabulary []string    `json:"vocabulary" yaml:"vocabulary"`
	Authors    []AuthorRef `json:"authors,omitempty" yaml:"authors"`

	// Leanings tags the camp's position on each recognized stance axis,
	// keyed by axis name, valued by pole label (e.g. "outlook": "skeptical").
	Leanings map[string]string `json:"leanings,omitempty" yaml:"leanings"`
}

// TaxonomySnapshot is an immutable, request-scoped view of the canon.
// The engine never mutates it; the caller owns fetch and refresh.
type TaxonomySnapshot struct {
	Version string   `json:"version" yaml:"version"`
	Domains []Domain `json:"domains" yaml:"domains"`
	Camps   []Camp   `json:"camps" yaml:"camps"`
}

// DomainByID looks up a domain in the snapshot
func (s *TaxonomySnapshot) DomainByID(id string) (Domain, bool) {
	for _, d := range s.Domains {
		if d.ID == id {
			return d, true
		}
	}
	return Domain{}, false
}

// FilterDomain returns a copy of the snapshot restricted to one domain.
// The domain must exist in the snapshot.
func (s *TaxonomySnapshot) FilterDomain(domainID string) (*TaxonomySnapshot, error) {
	dom, ok := s.DomainByID(domainID)
	if !ok {
		return nil, &errs.NotFoundError{Kind: "domain", ID: domainID}
	}

	out := &TaxonomySnapshot{
		Version: s.Version,
		Domains: []Domain{dom},
	}
	for _, c := range s.Camps {
		if c.DomainID == domainID {
			out.Camps = append(out.Camps, c)
		}
	}
	return out, nil
}

// Validate fails fast on malformed snapshot data instead of coercing it.
// Camps referencing unknown domains, empty ids/labels, or duplicate ids
// are configuration mistakes, not runtime conditions to paper over.
func (s *TaxonomySnapshot) Validate() error {
	if len(s.Domains) == 0 {
		return &errs.ValidationError{Msg: "taxonomy snapshot has no domains"}
	}

	domains := make(map[string]bool, len(s.Domains))
	for i, d := range s.Domains {
		if d.ID == "" || d.Name == "" {
			return &errs.ValidationError{Msg: fmt.Sprintf("domain %d: id and name are required", i)}
		}
		if domains[d.ID] {
			return &errs.ValidationError{Msg: fmt.Sprintf("duplicate domain id %q", d.ID)}
		}
		domains[d.ID] = true
	}

	camps := make(map[string]bool, len(s.Camps))
	for i, c := range s.Camps {
		if c.ID == "" || c.Label == "" {
			return &errs.ValidationError{Msg: fmt.Sprintf("camp %d: id and label are required", i)}
		}
		if camps[c.ID] {
			return &errs.ValidationError{Msg: fmt.Sprintf("duplicate camp id %q", c.ID)}
		}
		camps[c.ID] = true
		if !domains[c.DomainID] {
			return &errs.ValidationError{Msg: fmt.Sprintf("camp %q references unknown domain %q", c.ID, c.DomainID)}
		}
	}

	return nil
}

// Normalize derives author tiers from canon-file labels and orders each
// camp's authors highest tier first, so downstream tie-breaking is
// deterministic regardless of file ordering.
func (s *TaxonomySnapshot) Normalize() {
	for i := range s.Camps {
		authors := s.Camps[i].Authors
		for j := range authors {
			if authors[j].TierLabel != "" {
				authors[j].Tier = ParseRelevanceTier(authors[j].TierLabel)
			}
		}
		sortAuthorsByTier(authors)
	}
}

// sortAuthorsByTier sorts highest tier first, then by name for stability
func sortAuthorsByTier(authors []AuthorRef) {
	sort.SliceStable(authors, func(i, j int) bool {
		if authors[i].Tier != authors[j].Tier {
			return authors[i].Tier > authors[j].Tier
		}
		return authors[i].Name < authors[j].Name
	})
}
