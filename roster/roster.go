// Package roster builds herds of pets from declarative documents: a viper
// configuration key or a JSON array of entries.
//
// An entry looks like
//
//	{"name": "Tom", "kind": "cat", "hungry": true}
//	{"name": "Lion", "appetite": 25}
//
// kind defaults to "animal" and hungry defaults to true. Animal entries must
// carry an appetite; cat and dog entries have a fixed one and may only repeat it.
package roster

import (
	"encoding/json"
	"errors"
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/kcmvp/zoo"
	"github.com/kcmvp/zoo/app"
	"github.com/kcmvp/zoo/constraint"
	"github.com/samber/mo"
	"github.com/spf13/viper"
	"github.com/tidwall/gjson"
)

// DefaultKey is the configuration key holding the herd in zoo.yml.
const DefaultKey = "herd"

// Entry is one pet definition.
type Entry struct {
	Name     string `json:"name"`
	Kind     string `json:"kind"`
	Appetite *int   `json:"appetite,omitempty"`
	Hungry   *bool  `json:"hungry,omitempty"`
}

// Pet validates the entry and constructs the pet it describes. opts are
// applied before the entry's own hunger flag.
func (e Entry) Pet(opts ...zoo.Option) mo.Result[zoo.Pet] {
	kind := zoo.KindAnimal
	if strings.TrimSpace(e.Kind) != "" {
		rs := zoo.ParseKind(e.Kind)
		if rs.IsError() {
			return mo.Err[zoo.Pet](fmt.Errorf("kind: %w", rs.Error()))
		}
		kind = rs.MustGet()
	}

	options := slices.Clone(opts)
	if e.Hungry != nil {
		options = append(options, zoo.Hungry(*e.Hungry))
	}

	if fixed, ok := kind.Appetite().Get(); ok {
		if e.Appetite != nil && *e.Appetite != fixed {
			return mo.Err[zoo.Pet](fmt.Errorf("appetite: %w %s is %d, got %d", constraint.ErrFixedAppetite, kind, fixed, *e.Appetite))
		}
		if kind == zoo.KindCat {
			return mo.Ok[zoo.Pet](zoo.NewCat(e.Name, options...))
		}
		return mo.Ok[zoo.Pet](zoo.NewDog(e.Name, options...))
	}

	if e.Appetite == nil {
		return mo.Err[zoo.Pet](fmt.Errorf("appetite %w", constraint.ErrRequired))
	}
	return mo.Ok[zoo.Pet](zoo.NewAnimal(e.Name, *e.Appetite, options...))
}

// Build turns entries into a herd, keeping their order. Every invalid entry is
// reported, prefixed with its position.
func Build(entries []Entry, opts ...zoo.Option) mo.Result[Herd] {
	herd := make(Herd, 0, len(entries))
	var errs []error
	for i, e := range entries {
		rs := e.Pet(opts...)
		if rs.IsError() {
			errs = append(errs, fmt.Errorf("herd[%d].%w", i, rs.Error()))
			continue
		}
		pet := rs.MustGet()
		zoo.Logger().Debugw("roster entry", "index", i, "name", pet.Name(), "kind", pet.Kind(), "hungry", pet.IsHungry())
		herd = append(herd, pet)
	}
	if len(errs) > 0 {
		return mo.Err[Herd](errors.Join(errs...))
	}
	return mo.Ok(herd)
}

// FromViper builds the herd from the list stored under key. The list goes
// through the same strict type checks as FromJSON: viper's own decoder would
// turn 2.5 into 2 or "12" into 12 without complaint.
func FromViper(v *viper.Viper, key string, opts ...zoo.Option) mo.Result[Herd] {
	if !v.IsSet(key) {
		return mo.Err[Herd](fmt.Errorf("%s %w", key, constraint.ErrRequired))
	}
	raw, err := json.Marshal(v.Get(key))
	if err != nil {
		return mo.Err[Herd](fmt.Errorf("%s: %w: %v", key, constraint.ErrTypeMismatch, err))
	}
	return fromArray(gjson.ParseBytes(raw), key, opts...)
}

// Default builds the herd declared in the application configuration.
func Default(opts ...zoo.Option) mo.Result[Herd] {
	cfg := app.Config()
	if cfg.IsError() {
		return mo.Err[Herd](cfg.Error())
	}
	return FromViper(cfg.MustGet(), DefaultKey, opts...)
}

// FromJSON builds a herd from either a top level array of entries or an object
// holding the array under "herd".
func FromJSON(data []byte, opts ...zoo.Option) mo.Result[Herd] {
	if !gjson.ValidBytes(data) {
		return mo.Err[Herd](fmt.Errorf("%w: invalid json", constraint.ErrTypeMismatch))
	}
	root := gjson.ParseBytes(data)
	if root.IsObject() {
		root = root.Get(DefaultKey)
		if !root.Exists() {
			return mo.Err[Herd](fmt.Errorf("%s %w", DefaultKey, constraint.ErrRequired))
		}
	}
	return fromArray(root, DefaultKey, opts...)
}

func fromArray(root gjson.Result, key string, opts ...zoo.Option) mo.Result[Herd] {
	if !root.IsArray() {
		return mo.Err[Herd](fmt.Errorf("%w: %s must be an array", constraint.ErrTypeMismatch, key))
	}

	var entries []Entry
	var errs []error
	for i, item := range root.Array() {
		e, err := entryFromJSON(item)
		if err != nil {
			errs = append(errs, fmt.Errorf("herd[%d].%w", i, err))
			continue
		}
		entries = append(entries, e)
	}
	if len(errs) > 0 {
		return mo.Err[Herd](errors.Join(errs...))
	}
	return Build(entries, opts...)
}

func entryFromJSON(item gjson.Result) (Entry, error) {
	var e Entry
	if !item.IsObject() {
		return e, fmt.Errorf("entry: %w: want object, got %s", constraint.ErrTypeMismatch, item.Type)
	}
	if res := item.Get("name"); res.Exists() {
		if res.Type != gjson.String {
			return e, mismatch("name", "string", res)
		}
		e.Name = res.String()
	}
	if res := item.Get("kind"); res.Exists() {
		if res.Type != gjson.String {
			return e, mismatch("kind", "string", res)
		}
		e.Kind = res.String()
	}
	if res := item.Get("appetite"); res.Exists() {
		n, err := strconv.Atoi(res.Raw)
		if res.Type != gjson.Number || err != nil {
			return e, mismatch("appetite", "integer", res)
		}
		e.Appetite = &n
	}
	if res := item.Get("hungry"); res.Exists() {
		if !res.IsBool() {
			return e, mismatch("hungry", "boolean", res)
		}
		b := res.Bool()
		e.Hungry = &b
	}
	return e, nil
}

func mismatch(field, want string, res gjson.Result) error {
	return fmt.Errorf("%s: %w: want %s, got %s", field, constraint.ErrTypeMismatch, want, res.Raw)
}
