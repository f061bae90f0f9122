// Package zoo models animals that can be fed: a base Animal, the Cat and Dog
// variants, and FeedAll which feeds a group and totals the food consumed.
package zoo

import (
	"fmt"
	"io"
	"os"
)

// Feeder is anything that can be fed. Feed returns the food points consumed.
type Feeder interface {
	Feed() int
}

// Pet is the capability set shared by Animal and its variants.
type Pet interface {
	Feeder
	Name() string
	Kind() Kind
	IsHungry() bool
	PrintName()
}

// Animal is the base feedable record.
//
// The appetite is fixed at construction. The hunger flag only ever goes from
// hungry to fed, and only through Feed. A zero Animal is usable: it is a fed,
// nameless animal that prints to os.Stdout. Cat and Dog must be built with
// NewCat and NewDog.
type Animal struct {
	name     string
	appetite int
	hungry   bool
	kind     Kind
	out      io.Writer
}

var _ Pet = (*Animal)(nil)

// Option customizes an Animal at construction.
type Option func(*Animal)

// Hungry sets the initial hunger state. Animals are hungry by default.
func Hungry(hungry bool) Option {
	return func(a *Animal) {
		a.hungry = hungry
	}
}

// Output redirects the lines an animal prints. The default is os.Stdout.
func Output(w io.Writer) Option {
	return func(a *Animal) {
		if w != nil {
			a.out = w
		}
	}
}

// NewAnimal creates a base animal. No argument is validated: any name,
// including the empty one, and any appetite are accepted.
func NewAnimal(name string, appetite int, opts ...Option) *Animal {
	return newAnimal(KindAnimal, name, appetite, opts...)
}

func newAnimal(kind Kind, name string, appetite int, opts ...Option) *Animal {
	a := &Animal{
		name:     name,
		appetite: appetite,
		hungry:   true,
		kind:     kind,
		out:      os.Stdout,
	}
	for _, opt := range opts {
		opt(a)
	}
	return a
}

func (a *Animal) Name() string {
	return a.name
}

func (a *Animal) Appetite() int {
	return a.appetite
}

func (a *Animal) IsHungry() bool {
	return a.hungry
}

func (a *Animal) Kind() Kind {
	return a.kind
}

// PrintName introduces the animal. It does not change any state.
func (a *Animal) PrintName() {
	fmt.Fprintf(a.writer(), "Hello, I'm %s\n", a.name)
}

// Feed feeds a hungry animal and returns its appetite. A fed animal prints
// nothing and returns 0, however many times it is called.
func (a *Animal) Feed() int {
	if !a.hungry {
		feedLogger.Debugw("animal not hungry", "name", a.name, "kind", a.kind)
		return 0
	}
	fmt.Fprintf(a.writer(), "Eating %d food points...\n", a.appetite)
	a.hungry = false
	feedLogger.Debugw("animal fed", "name", a.name, "kind", a.kind, "appetite", a.appetite)
	return a.appetite
}

func (a *Animal) writer() io.Writer {
	if a.out == nil {
		return os.Stdout
	}
	return a.out
}

// perform prints the trick of the animal's kind, if it has one.
func (a *Animal) perform() {
	if line, ok := a.kind.Trick().Get(); ok {
		fmt.Fprintln(a.writer(), line)
	}
}
