package game

import (
	"fmt"

	"github.com/google/uuid"
)

// --- Enums ---

type CardKind int

const (
	CardCreature CardKind = iota
	CardTrap
	CardBoon
)

func (k CardKind) String() string {
	switch k {
	case CardCreature:
		return "Creature"
	case CardTrap:
		return "Trap"
	case CardBoon:
		return "Boon"
	default:
		return "Unknown"
	}
}

type CreatureType int

const (
	TypeNone CreatureType = iota
	TypePrey
	TypePredator
	TypeApex
)

func (t CreatureType) String() string {
	switch t {
	case TypePrey:
		return "Prey"
	case TypePredator:
		return "Predator"
	case TypeApex:
		return "Apex"
	default:
		return ""
	}
}

// ParseCreatureType maps a card-data string to a CreatureType.
func ParseCreatureType(s string) CreatureType {
	switch s {
	case "prey":
		return TypePrey
	case "predator":
		return TypePredator
	case "apex":
		return TypeApex
	default:
		return TypeNone
	}
}

// Keyword is a creature status governing targeting, combat, and abilities.
type Keyword int

const (
	KeywordNone Keyword = iota
	KeywordLure
	KeywordInvisible
	KeywordAcuity
	KeywordHidden
	KeywordWebbed
	KeywordShell
	KeywordPride
	KeywordFrozen
)

func (k Keyword) String() string {
	switch k {
	case KeywordLure:
		return "Lure"
	case KeywordInvisible:
		return "Invisible"
	case KeywordAcuity:
		return "Acuity"
	case KeywordHidden:
		return "Hidden"
	case KeywordWebbed:
		return "Webbed"
	case KeywordShell:
		return "Shell"
	case KeywordPride:
		return "Pride"
	case KeywordFrozen:
		return "Frozen"
	default:
		return ""
	}
}

// ParseKeyword maps a card-data string to a Keyword. Unknown strings map to
// KeywordNone; callers treat that as a data-authoring error.
func ParseKeyword(s string) Keyword {
	switch s {
	case "lure":
		return KeywordLure
	case "invisible":
		return KeywordInvisible
	case "acuity":
		return KeywordAcuity
	case "hidden":
		return KeywordHidden
	case "webbed":
		return KeywordWebbed
	case "shell":
		return KeywordShell
	case "pride":
		return KeywordPride
	case "frozen":
		return KeywordFrozen
	default:
		return KeywordNone
	}
}

// --- Card definition (static card data) ---

type Card struct {
	Name         string
	Kind         CardKind
	CreatureType CreatureType
	Attack       int
	Health       int
	Keywords     []Keyword
}

func (c *Card) String() string {
	return c.Name
}

// IsCreature reports whether this card summons a creature when played.
func (c *Card) IsCreature() bool {
	return c.Kind == CardCreature
}

// --- Creature (runtime card on the field) ---

// Creature is a card instance on a player's field. Field-scanning effects and
// the targeting evaluator operate on these; the engine never clones them.
type Creature struct {
	InstanceID string
	Card       *Card
	Owner      int // player index (0 or 1)

	Attack   int
	Health   int
	Keywords []Keyword
}

// NewCreature instantiates a card onto the given owner's side.
func NewCreature(card *Card, owner int) *Creature {
	return &Creature{
		InstanceID: uuid.NewString(),
		Card:       card,
		Owner:      owner,
		Attack:     card.Attack,
		Health:     card.Health,
		Keywords:   append([]Keyword(nil), card.Keywords...),
	}
}

func (c *Creature) String() string {
	if c == nil {
		return "(empty)"
	}
	return c.Card.Name
}

// DisplayString returns a human-readable description for the message log.
func (c *Creature) DisplayString() string {
	if c == nil {
		return "(empty)"
	}
	return fmt.Sprintf("%s (%d/%d)", c.Card.Name, c.Attack, c.Health)
}

// HasKeyword reports whether the creature currently carries the keyword.
func (c *Creature) HasKeyword(k Keyword) bool {
	if c == nil {
		return false
	}
	for _, kw := range c.Keywords {
		if kw == k {
			return true
		}
	}
	return false
}

// AddKeyword grants a keyword; duplicates are not stacked.
func (c *Creature) AddKeyword(k Keyword) {
	if c.HasKeyword(k) {
		return
	}
	c.Keywords = append(c.Keywords, k)
}

// RemoveKeyword strips a keyword if present.
func (c *Creature) RemoveKeyword(k Keyword) {
	filtered := c.Keywords[:0]
	for _, kw := range c.Keywords {
		if kw != k {
			filtered = append(filtered, kw)
		}
	}
	c.Keywords = filtered
}

// Type returns the creature's type from its card.
func (c *Creature) Type() CreatureType {
	return c.Card.CreatureType
}
