// Command tcg-trace resolves an effect definition file against a demo board
// and prints the resolution log and the settled result descriptors. It is a
// debugging surface for card authors: write the YAML, run the trace, read
// what the engine would ask the driver to do.
package main

import (
	"flag"
	"fmt"
	"os"

	"gopkg.in/yaml.v3"

	"github.com/Godeaux/TCG-sub003/internal/effect"
	"github.com/Godeaux/TCG-sub003/internal/game"
	"github.com/Godeaux/TCG-sub003/internal/log"
)

func main() {
	fs := flag.NewFlagSet("tcg-trace", flag.ExitOnError)
	asTrap := fs.Bool("trap", false, "resolve in trap context with a demo attacker")
	cardsFile := fs.String("cards", "", "optional YAML card library to build the demo board from")
	fs.Usage = func() {
		fmt.Fprintln(os.Stderr, "Usage: tcg-trace [--trap] [--cards FILE] EFFECT_FILE")
		fmt.Fprintln(os.Stderr)
		fmt.Fprintln(os.Stderr, "EFFECT_FILE holds one effect definition or a sequence of them:")
		fmt.Fprintln(os.Stderr, "  - type: damageRival")
		fmt.Fprintln(os.Stderr, "    params: {amount: 3}")
		fs.PrintDefaults()
	}
	fs.Parse(os.Args[1:])

	if fs.NArg() != 1 {
		fs.Usage()
		os.Exit(1)
	}

	if err := run(fs.Arg(0), *cardsFile, *asTrap); err != nil {
		fmt.Fprintf(os.Stderr, "Error: %v\n", err)
		os.Exit(1)
	}
}

func run(path, cardsFile string, asTrap bool) error {
	data, err := os.ReadFile(path)
	if err != nil {
		return err
	}

	var defs effect.DefinitionList
	if err := yaml.Unmarshal(data, &defs); err != nil {
		return fmt.Errorf("parsing %s: %w", path, err)
	}

	var state *game.State
	if cardsFile != "" {
		library, err := game.ParseCardFile(cardsFile)
		if err != nil {
			return err
		}
		state = stateFromLibrary(library)
	} else {
		state = demoState()
	}
	rec := log.NewMemoryRecorder()
	ctx := effect.NewContext(state, 0, rec)
	ctx.Creature = state.Players[0].Field[0]
	ctx.Target = state.Players[1].Field[0]
	if asTrap {
		ctx.TrapContext = true
		ctx.Attacker = state.Players[1].Field[0]
	}

	res, err := effect.NewRegistry().Resolve(defs, ctx)
	if err != nil {
		return err
	}

	settled := effect.FirstChoice.Walk(res)

	fmt.Println("--- log ---")
	fmt.Print(log.FormatAll(rec.Messages()))
	fmt.Println("--- results ---")
	for _, r := range settled {
		printResult(r, "")
	}
	if len(settled) == 0 {
		fmt.Println("(no-op)")
	}
	return nil
}

// stateFromLibrary deals a library's cards across both sides: creatures onto
// the fields until full, the rest split between decks.
func stateFromLibrary(library map[string]*game.Card) *game.State {
	state := game.NewState()
	player := 0
	for _, card := range library {
		if card.IsCreature() && state.Players[player].FreeSlot() >= 0 {
			state.Players[player].PlaceCreature(game.NewCreature(card, player))
		} else {
			state.Players[player].Deck = append(state.Players[player].Deck, card)
		}
		player = state.Opponent(player)
	}
	return state
}

// demoState builds a small fixed board: two creatures a side, a few cards in
// each zone, so most effects have something to chew on.
func demoState() *game.State {
	state := game.NewState()

	place := func(player int, name string, t game.CreatureType, attack, health int, kws ...game.Keyword) {
		card := &game.Card{
			Name:         name,
			Kind:         game.CardCreature,
			CreatureType: t,
			Attack:       attack,
			Health:       health,
			Keywords:     kws,
		}
		state.Players[player].PlaceCreature(game.NewCreature(card, player))
	}

	place(0, "Field Mouse", game.TypePrey, 1, 2)
	place(0, "Gray Wolf", game.TypePredator, 4, 4)
	place(1, "Rabbit", game.TypePrey, 1, 1)
	place(1, "Brown Bear", game.TypeApex, 5, 6)

	for player := 0; player < 2; player++ {
		p := state.Players[player]
		for i := 0; i < 4; i++ {
			p.Deck = append(p.Deck, &game.Card{
				Name: fmt.Sprintf("Deck Card %d", i+1), Kind: game.CardCreature,
				CreatureType: game.TypePrey, Attack: 1, Health: 1,
			})
		}
		p.Hand = append(p.Hand, &game.Card{Name: "Hand Card", Kind: game.CardTrap})
		p.Carrion = append(p.Carrion, &game.Card{
			Name: "Fallen Sparrow", Kind: game.CardCreature,
			CreatureType: game.TypePrey, Attack: 1, Health: 1,
		})
	}
	return state
}

func printResult(r effect.Result, indent string) {
	show := func(format string, args ...any) {
		fmt.Printf(indent+format+"\n", args...)
	}
	if r.Heal > 0 {
		show("heal player %d", r.Heal)
	}
	if r.HealRival > 0 {
		show("heal rival %d", r.HealRival)
	}
	if r.DamageRival > 0 {
		show("damage rival %d", r.DamageRival)
	}
	if r.DamageSelf > 0 {
		show("damage player %d", r.DamageSelf)
	}
	if r.Draw > 0 {
		show("draw %d", r.Draw)
	}
	if r.DrawRival > 0 {
		show("rival draws %d", r.DrawRival)
	}
	if r.Mill > 0 {
		show("mill %d", r.Mill)
	}
	if r.MillRival > 0 {
		show("mill rival %d", r.MillRival)
	}
	if r.DiscardRandom > 0 {
		show("discard %d at random", r.DiscardRandom)
	}
	if r.DiscardRivalRandom > 0 {
		show("rival discards %d at random", r.DiscardRivalRandom)
	}
	if r.DamageCreature != nil {
		show("damage %s for %d", r.DamageCreature.Creature.DisplayString(), r.DamageCreature.Amount)
	}
	if r.HealCreature != nil {
		show("heal %s for %d", r.HealCreature.Creature.DisplayString(), r.HealCreature.Amount)
	}
	if r.KillCreature != nil {
		show("kill %s", r.KillCreature.DisplayString())
	}
	if r.DestroyCreatures != nil {
		for _, c := range r.DestroyCreatures.Creatures {
			show("destroy %s", c.DisplayString())
		}
	}
	for _, b := range r.BuffStats {
		show("buff %s by %+d/%+d", b.Creature.DisplayString(), b.Attack, b.Health)
	}
	if r.SetStats != nil {
		show("set %s to %d/%d", r.SetStats.Creature.DisplayString(), r.SetStats.Attack, r.SetStats.Health)
	}
	if r.FreezeCreatures != nil {
		for _, c := range r.FreezeCreatures.Creatures {
			show("freeze %s", c.DisplayString())
		}
	}
	if r.ReturnToHand != nil {
		for _, c := range r.ReturnToHand.Creatures {
			show("return %s to hand", c.DisplayString())
		}
	}
	for _, g := range r.GrantKeywords {
		show("grant %s to %s", g.Keyword, g.Creature.DisplayString())
	}
	for _, g := range r.RemoveKeywords {
		show("remove %s from %s", g.Keyword, g.Creature.DisplayString())
	}
	if r.RemoveAbilities != nil {
		show("remove abilities from %s", r.RemoveAbilities.DisplayString())
	}
	if r.NegateAttack {
		show("negate attack")
	}
	if r.AddToHand != nil {
		show("add %s to player %d's hand", r.AddToHand.Card.Name, r.AddToHand.PlayerIndex)
	}
	if r.DiscardCards != nil {
		for _, c := range r.DiscardCards.Cards {
			show("discard %s", c.Name)
		}
	}
	for _, s := range r.Summon {
		show("summon %s for player %d", s.Card.Name, s.PlayerIndex)
	}
	for _, sub := range r.Composite {
		printResult(sub, indent+"  ")
	}
}
