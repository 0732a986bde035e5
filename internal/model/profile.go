package model

// Profile holds a user's declared-position statements used for
// alignment scoring. Owned by an external store; the engine only reads it.
type Profile struct {
	ID         string   `json:"id" yaml:"id"`
	Name       string   `json:"name,omitempty" yaml:"name"`
	Statements []string `json:"statements" yaml:"statements"`
}
