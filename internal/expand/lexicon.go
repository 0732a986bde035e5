package expand

import (
	"fmt"
	"os"
	"sort"
	"strings"

	"gopkg.in/yaml.v3"
)

// Entry associates a term with a stance-axis pole and its related terms
type Entry struct {
	Term    string   `yaml:"term"`
	Pole    string   `yaml:"pole"`
	Related []string `yaml:"related"`

	axis string // set when the lexicon is built
}

// axisFile is the on-disk lexicon shape
type axisFile struct {
	Axes []struct {
		Name    string   `yaml:"name"`
		Poles   []string `yaml:"poles"`
		Entries []Entry  `yaml:"entries"`
	} `yaml:"axes"`
}

// Lexicon is a fixed mapping of terms to semantic axes. It is data, not
// algorithm: the table ships with a built-in default and can be replaced
// wholesale from a YAML file.
type Lexicon struct {
	entries map[string]Entry    // normalized term -> entry
	poles   map[string][]string // axis name -> pole labels
}

// Lookup returns the lexicon entry for a normalized term
func (l *Lexicon) Lookup(term string) (axis, pole string, related []string, ok bool) {
	e, found := l.entries[strings.ToLower(term)]
	if !found {
		return "", "", nil, false
	}
	return e.axis, e.Pole, e.Related, true
}

// Axes returns the recognized axis names, sorted
func (l *Lexicon) Axes() []string {
	names := make([]string, 0, len(l.poles))
	for name := range l.poles {
		names = append(names, name)
	}
	sort.Strings(names)
	return names
}

// Poles returns the pole labels of an axis in declaration order
func (l *Lexicon) Poles(axis string) []string {
	return l.poles[axis]
}

// Load reads a lexicon from a YAML file
func Load(path string) (*Lexicon, error) {
	data, err := os.ReadFile(path)
	if err != nil {
		return nil, fmt.Errorf("read lexicon: %w", err)
	}

	var file axisFile
	if err := yaml.Unmarshal(data, &file); err != nil {
		return nil, fmt.Errorf("parse lexicon: %w", err)
	}

	lex := &Lexicon{
		entries: make(map[string]Entry),
		poles:   make(map[string][]string),
	}
	for _, ax := range file.Axes {
		if ax.Name == "" || len(ax.Poles) != 2 {
			return nil, fmt.Errorf("lexicon axis %q must declare exactly two poles", ax.Name)
		}
		lex.poles[ax.Name] = ax.Poles
		for _, e := range ax.Entries {
			e.axis = ax.Name
			lex.entries[strings.ToLower(e.Term)] = e
		}
	}
	return lex, nil
}

// Default returns the built-in lexicon covering the stock stance axes:
// outlook (skeptical/optimistic), scope (technical/societal) and
// governance (market/regulation).
func Default() *Lexicon {
	lex := &Lexicon{
		entries: make(map[string]Entry),
		poles: map[string][]string{
			"outlook":    {"skeptical", "optimistic"},
			"scope":      {"technical", "societal"},
			"governance": {"market", "regulation"},
		},
	}

	add := func(axis, pole, term string, related ...string) {
		lex.entries[term] = Entry{Term: term, Pole: pole, Related: related, axis: axis}
	}

	// outlook: skeptical
	add("outlook", "skeptical", "risk", "harm", "danger", "caution")
	add("outlook", "skeptical", "danger", "threat", "risk")
	add("outlook", "skeptical", "harm", "damage", "risk")
	add("outlook", "skeptical", "threat", "danger", "risk")
	add("outlook", "skeptical", "caution", "restraint", "prudence")
	add("outlook", "skeptical", "catastrophe", "existential", "collapse")
	// outlook: optimistic
	add("outlook", "optimistic", "progress", "innovation", "advance")
	add("outlook", "optimistic", "innovation", "invention", "progress")
	add("outlook", "optimistic", "opportunity", "potential", "promise")
	add("outlook", "optimistic", "breakthrough", "advance", "discovery")
	add("outlook", "optimistic", "abundance", "prosperity", "growth")
	// scope: technical
	add("scope", "technical", "algorithm", "model", "computation")
	add("scope", "technical", "engineering", "architecture", "infrastructure")
	add("scope", "technical", "benchmark", "evaluation", "metric")
	add("scope", "technical", "compute", "hardware", "scaling")
	// scope: societal
	add("scope", "societal", "society", "community", "public")
	add("scope", "societal", "labor", "employment", "workers")
	add("scope", "societal", "inequality", "fairness", "justice")
	add("scope", "societal", "ethics", "values", "accountability")
	// governance: regulation
	add("governance", "regulation", "regulation", "oversight", "compliance", "policy")
	add("governance", "regulation", "oversight", "accountability", "audit")
	add("governance", "regulation", "policy", "legislation", "governance")
	add("governance", "regulation", "law", "statute", "legal")
	// governance: market
	add("governance", "market", "market", "competition", "incentive")
	add("governance", "market", "competition", "rivalry", "market")
	add("governance", "market", "deregulation", "market", "liberalization")

	return lex
}
