package roster

import (
	"github.com/kcmvp/zoo"
	"github.com/kcmvp/zoo/constraint"
	"github.com/samber/lo"
)

// Herd is an ordered, mixed group of pets.
type Herd []zoo.Pet

// Select keeps the pets whose name matches pattern, in order. `*` matches any
// run of characters and `?` a single one; a pattern without wildcards must
// equal the name.
func (h Herd) Select(pattern string) Herd {
	_, matches := constraint.Match(pattern)()
	return lo.Filter(h, func(p zoo.Pet, _ int) bool {
		return matches(p.Name()) == nil
	})
}

// Hungry keeps the pets that have not been fed yet.
func (h Herd) Hungry() Herd {
	return lo.Filter(h, func(p zoo.Pet, _ int) bool {
		return p.IsHungry()
	})
}

func (h Herd) Names() []string {
	return lo.Map(h, func(p zoo.Pet, _ int) string {
		return p.Name()
	})
}

// Tally counts the pets of each kind.
func (h Herd) Tally() map[zoo.Kind]int {
	return lo.CountValuesBy(h, func(p zoo.Pet) zoo.Kind {
		return p.Kind()
	})
}

// Roll lets every pet introduce itself, in order.
func (h Herd) Roll() {
	for _, p := range h {
		p.PrintName()
	}
}

// Feed feeds the whole herd and returns the food points consumed.
func (h Herd) Feed() int {
	return zoo.FeedAll([]zoo.Pet(h))
}
