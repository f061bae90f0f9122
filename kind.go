package zoo

import (
	"fmt"
	"strings"

	"github.com/kcmvp/zoo/constraint"
	"github.com/samber/lo"
	"github.com/samber/mo"
)

// Kind tags which variant an Animal was built as.
type Kind string

const (
	KindAnimal Kind = "animal"
	KindCat    Kind = "cat"
	KindDog    Kind = "dog"
)

// profile is the fixed behavior of a specialized kind.
type profile struct {
	appetite int
	trick    string
}

var profiles = map[Kind]profile{
	KindCat: {appetite: 3, trick: "The hunt began!"},
	KindDog: {appetite: 7, trick: "The slippers delivered!"},
}

// Kinds returns every known kind, base kind first.
func Kinds() []Kind {
	return []Kind{KindAnimal, KindCat, KindDog}
}

// ParseKind converts text such as "Cat" or " dog " into a Kind.
func ParseKind(s string) mo.Result[Kind] {
	k := Kind(strings.ToLower(strings.TrimSpace(s)))
	if err := constraint.Check(string(k), constraint.OneOf(lo.Map(Kinds(), func(kind Kind, _ int) string {
		return string(kind)
	})...)); err != nil {
		return mo.Err[Kind](fmt.Errorf("kind %q: %w", s, err))
	}
	return mo.Ok(k)
}

// Appetite returns the appetite every animal of this kind is born with.
// The base kind has none; its appetite is chosen per animal.
func (k Kind) Appetite() mo.Option[int] {
	p, ok := profiles[k]
	return lo.Ternary(ok, mo.Some(p.appetite), mo.None[int]())
}

// Trick returns the line printed by the extra action of this kind.
func (k Kind) Trick() mo.Option[string] {
	p, ok := profiles[k]
	return lo.Ternary(ok, mo.Some(p.trick), mo.None[string]())
}

func (k Kind) String() string {
	return string(k)
}
