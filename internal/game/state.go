package game

import "math/rand"

const (
	StartingHealth = 25
	FieldSize      = 5
	MaxHandSize    = 8
)

// PlayerState is one player's entire aggregate: field, hand, deck, carrion.
// Field slots may be nil; effects skip empty slots.
type PlayerState struct {
	Health int

	Field   [FieldSize]*Creature
	Hand    []*Card
	Deck    []*Card // top of deck is last element (pop from end)
	Carrion []*Card
}

// Creatures returns all non-nil creatures on the field, in slot order.
func (p *PlayerState) Creatures() []*Creature {
	var result []*Creature
	for _, c := range p.Field {
		if c != nil {
			result = append(result, c)
		}
	}
	return result
}

// CreaturesOfType returns all creatures of the given type on the field.
func (p *PlayerState) CreaturesOfType(t CreatureType) []*Creature {
	var result []*Creature
	for _, c := range p.Field {
		if c != nil && c.Type() == t {
			result = append(result, c)
		}
	}
	return result
}

// CreatureCount returns the number of creatures on the field.
func (p *PlayerState) CreatureCount() int {
	count := 0
	for _, c := range p.Field {
		if c != nil {
			count++
		}
	}
	return count
}

// FindCreature returns the field creature with the given instance ID, or nil.
func (p *PlayerState) FindCreature(instanceID string) *Creature {
	for _, c := range p.Field {
		if c != nil && c.InstanceID == instanceID {
			return c
		}
	}
	return nil
}

// FreeSlot returns the index of the first empty field slot, or -1.
func (p *PlayerState) FreeSlot() int {
	for i, c := range p.Field {
		if c == nil {
			return i
		}
	}
	return -1
}

// PlaceCreature places a creature in the first empty slot.
// Returns false if the field is full.
func (p *PlayerState) PlaceCreature(c *Creature) bool {
	slot := p.FreeSlot()
	if slot < 0 {
		return false
	}
	p.Field[slot] = c
	return true
}

// RemoveCreature empties the slot holding the given creature.
func (p *PlayerState) RemoveCreature(c *Creature) {
	for i, fc := range p.Field {
		if fc != nil && fc.InstanceID == c.InstanceID {
			p.Field[i] = nil
			return
		}
	}
}

// DeckCount returns the number of cards remaining in the deck.
func (p *PlayerState) DeckCount() int {
	return len(p.Deck)
}

// DrawCard removes the top card from the deck and adds it to the hand.
// Returns the drawn card, or nil if the deck is empty.
func (p *PlayerState) DrawCard() *Card {
	if len(p.Deck) == 0 {
		return nil
	}
	card := p.Deck[len(p.Deck)-1]
	p.Deck = p.Deck[:len(p.Deck)-1]
	p.Hand = append(p.Hand, card)
	return card
}

// RemoveFromHand removes the first matching card from the hand.
func (p *PlayerState) RemoveFromHand(card *Card) {
	for i, c := range p.Hand {
		if c == card {
			p.Hand = append(p.Hand[:i], p.Hand[i+1:]...)
			return
		}
	}
}

// RemoveFromDeck removes the first matching card from the deck.
func (p *PlayerState) RemoveFromDeck(card *Card) {
	for i, c := range p.Deck {
		if c == card {
			p.Deck = append(p.Deck[:i], p.Deck[i+1:]...)
			return
		}
	}
}

// RemoveFromCarrion removes the first matching card from the carrion pile.
func (p *PlayerState) RemoveFromCarrion(card *Card) {
	for i, c := range p.Carrion {
		if c == card {
			p.Carrion = append(p.Carrion[:i], p.Carrion[i+1:]...)
			return
		}
	}
}

// SendToCarrion adds a card to the carrion pile.
func (p *PlayerState) SendToCarrion(card *Card) {
	p.Carrion = append(p.Carrion, card)
}

// ShuffleDeck randomizes the deck order.
func (p *PlayerState) ShuffleDeck() {
	rand.Shuffle(len(p.Deck), func(i, j int) {
		p.Deck[i], p.Deck[j] = p.Deck[j], p.Deck[i]
	})
}

// --- State ---

// State holds the whole-game snapshot the effect engine resolves against.
type State struct {
	Players    [2]*PlayerState
	Turn       int
	TurnPlayer int
}

// NewState creates a fresh game state with both players at starting health.
func NewState() *State {
	return &State{
		Players: [2]*PlayerState{
			{Health: StartingHealth},
			{Health: StartingHealth},
		},
		Turn: 1,
	}
}

// Opponent returns the index of the other player.
func (s *State) Opponent(player int) int {
	return 1 - player
}

// FindCreature searches both fields for the given instance ID.
func (s *State) FindCreature(instanceID string) *Creature {
	for _, p := range s.Players {
		if c := p.FindCreature(instanceID); c != nil {
			return c
		}
	}
	return nil
}

// OnField reports whether the creature is currently present on either field.
func (s *State) OnField(c *Creature) bool {
	if c == nil {
		return false
	}
	return s.FindCreature(c.InstanceID) != nil
}
