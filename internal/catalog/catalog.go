package catalog

import (
	"fmt"
	"strconv"
	"strings"
)

// Phase tells which part of the questionnaire a question belongs to.
// It is an explicit field on the question, never derived from its ID.
type Phase string

const (
	PhaseDemographic Phase = "demographic"
	PhaseScored      Phase = "scored"
)

// Likert scale bounds for scored statements.
const (
	ScaleMin = 1
	ScaleMax = 5
)

// Question is a single catalog entry. Demographic questions are free-text
// and carry no category; scored statements carry exactly one.
type Question struct {
	ID       string
	Phase    Phase
	Position int // order within its phase, starting at 0
	Text     string
	Category string
}

// Catalog is the static, ordered battery of questions. It is built once at
// process start and read-only afterwards.
type Catalog struct {
	demographic []Question
	scored      []Question
	byID        map[string]Question
	byCategory  map[string][]string
	categories  []string
}

// New builds a catalog from ordered question lists. Positions are assigned
// from the slice order; the category grouping and the category order (first
// appearance in the scored list) are derived here and never recomputed.
func New(demographic, scored []Question) (*Catalog, error) {
	c := &Catalog{
		byID:       make(map[string]Question, len(demographic)+len(scored)),
		byCategory: make(map[string][]string),
	}

	for i, q := range demographic {
		q.Phase = PhaseDemographic
		q.Position = i
		q.Category = ""
		if err := c.index(q); err != nil {
			return nil, err
		}
		c.demographic = append(c.demographic, q)
	}

	for i, q := range scored {
		q.Phase = PhaseScored
		q.Position = i
		if q.Category == "" {
			return nil, fmt.Errorf("scored question %q has no category", q.ID)
		}
		if err := c.index(q); err != nil {
			return nil, err
		}
		c.scored = append(c.scored, q)
		if _, seen := c.byCategory[q.Category]; !seen {
			c.categories = append(c.categories, q.Category)
		}
		c.byCategory[q.Category] = append(c.byCategory[q.Category], q.ID)
	}

	return c, nil
}

func (c *Catalog) index(q Question) error {
	if q.ID == "" {
		return fmt.Errorf("question with empty ID (%q)", q.Text)
	}
	if _, dup := c.byID[q.ID]; dup {
		return fmt.Errorf("duplicate question ID %q", q.ID)
	}
	c.byID[q.ID] = q
	return nil
}

// Demographic returns the ordered demographic questions.
func (c *Catalog) Demographic() []Question {
	return c.demographic
}

// Scored returns the ordered scored statements.
func (c *Catalog) Scored() []Question {
	return c.scored
}

// QuestionsByCategory returns category -> ordered scored-question IDs.
// This grouping is the sole input to the scoring engine.
func (c *Catalog) QuestionsByCategory() map[string][]string {
	return c.byCategory
}

// Categories returns category names in catalog order (order of the first
// scored question that mentions them). Ranking ties are broken with it.
func (c *Catalog) Categories() []string {
	return c.categories
}

// ByID looks a question up by its identifier.
func (c *Catalog) ByID(id string) (Question, bool) {
	q, ok := c.byID[id]
	return q, ok
}

func (c *Catalog) DemographicCount() int {
	return len(c.demographic)
}

func (c *Catalog) ScoredCount() int {
	return len(c.scored)
}

// ParseScaleAnswer validates a raw scored-question reply against the closed
// 1..5 set. Anything non-numeric or out of range is rejected; the survey
// state machine re-prompts without advancing.
func ParseScaleAnswer(text string) (int, bool) {
	v, err := strconv.Atoi(strings.TrimSpace(text))
	if err != nil {
		return 0, false
	}
	if v < ScaleMin || v > ScaleMax {
		return 0, false
	}
	return v, true
}
