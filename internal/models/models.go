package models

// Case is a mystery definition: a mansion to explore and the clue-to-suspect associations.
type Case struct {
	Title      string            `yaml:"title"`
	ShortName  string            `yaml:"short_name"` // e.g., "manor"
	Intro      string            `yaml:"intro"`
	MinSupport int               `yaml:"min_support"` // clues needed to sustain an accusation
	Entry      *Location         `yaml:"entry"`
	Clues      []ClueAssignment  `yaml:"clues"` // registered in order; later entries shadow earlier ones
	Metadata   map[string]string `yaml:"metadata,omitempty"`
}

// Location is a room of the mansion with up to two onward paths.
type Location struct {
	Name        string    `yaml:"name"`
	Description string    `yaml:"description,omitempty"`
	Clue        string    `yaml:"clue,omitempty"` // empty means nothing to find here
	Left        *Location `yaml:"left,omitempty"`
	Right       *Location `yaml:"right,omitempty"`
}

// ClueAssignment points a clue at a suspect.
type ClueAssignment struct {
	Clue    string `yaml:"clue"`
	Suspect string `yaml:"suspect"`
}

// SuspectNames returns the distinct suspects in order of first appearance.
func (c *Case) SuspectNames() []string {
	seen := make(map[string]bool, len(c.Clues))
	var names []string
	for _, a := range c.Clues {
		if !seen[a.Suspect] {
			seen[a.Suspect] = true
			names = append(names, a.Suspect)
		}
	}
	return names
}
