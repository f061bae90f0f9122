package roster

import (
	"bytes"
	"testing"

	"github.com/kcmvp/zoo"
	"github.com/stretchr/testify/assert"
)

func sampleHerd(buf *bytes.Buffer) Herd {
	out := zoo.Output(buf)
	return Herd{
		zoo.NewCat("Tom", out),
		zoo.NewCat("Tiger", out),
		zoo.NewAnimal("Lion", 25, out),
		zoo.NewDog("Rex", zoo.Hungry(false), out),
	}
}

func TestHerd_Select(t *testing.T) {
	tests := []struct {
		pattern string
		want    []string
	}{
		{"T*", []string{"Tom", "Tiger"}},
		{"*", []string{"Tom", "Tiger", "Lion", "Rex"}},
		{"R?x", []string{"Rex"}},
		{"Lion", []string{"Lion"}},
		{"Li", []string{}},
		{"Z*", []string{}},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.pattern, func(t *testing.T) {
			assert.Equal(t, tt.want, sampleHerd(&bytes.Buffer{}).Select(tt.pattern).Names())
		})
	}
}

func TestHerd_SelectThenFeed(t *testing.T) {
	var buf bytes.Buffer
	herd := sampleHerd(&buf)
	assert.Equal(t, 6, herd.Select("T*").Feed())
	assert.Equal(t, []string{"Lion"}, herd.Hungry().Names())
	assert.Equal(t, 25, herd.Feed())
	assert.Empty(t, herd.Hungry())
}

func TestHerd_Tally(t *testing.T) {
	assert.Equal(t, map[zoo.Kind]int{zoo.KindCat: 2, zoo.KindAnimal: 1, zoo.KindDog: 1}, sampleHerd(&bytes.Buffer{}).Tally())
	assert.Empty(t, Herd{}.Tally())
}

func TestHerd_Roll(t *testing.T) {
	var buf bytes.Buffer
	herd := sampleHerd(&buf)
	herd.Roll()
	assert.Equal(t, "Hello, I'm Tom\nHello, I'm Tiger\nHello, I'm Lion\nHello, I'm Rex\n", buf.String())
	assert.Len(t, herd.Hungry(), 3)
}
