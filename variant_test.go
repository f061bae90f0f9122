package zoo

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestCat(t *testing.T) {
	tests := []struct {
		name   string
		hungry bool
	}{
		{"Cat1", true},
		{"Cute Cat", true},
		{"Lady Stark", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			cat := NewCat(tt.name, Hungry(tt.hungry), Output(&buf))
			assert.Equal(t, 3, cat.Appetite())
			assert.Equal(t, KindCat, cat.Kind())
			assert.Equal(t, tt.hungry, cat.IsHungry())

			cat.PrintName()
			assert.Equal(t, "Hello, I'm "+tt.name+"\n", buf.String())

			buf.Reset()
			if tt.hungry {
				assert.Equal(t, 3, cat.Feed())
				assert.Equal(t, "Eating 3 food points...\n", buf.String())
			} else {
				assert.Equal(t, 0, cat.Feed())
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestDog(t *testing.T) {
	tests := []struct {
		name   string
		hungry bool
	}{
		{"Dog1", true},
		{"Cute Dog", true},
		{"Sleepy", false},
	}
	for _, tt := range tests {
		tt := tt
		t.Run(tt.name, func(t *testing.T) {
			var buf bytes.Buffer
			dog := NewDog(tt.name, Hungry(tt.hungry), Output(&buf))
			assert.Equal(t, 7, dog.Appetite())
			assert.Equal(t, KindDog, dog.Kind())

			dog.PrintName()
			assert.Equal(t, "Hello, I'm "+tt.name+"\n", buf.String())

			buf.Reset()
			if tt.hungry {
				assert.Equal(t, 7, dog.Feed())
				assert.Equal(t, "Eating 7 food points...\n", buf.String())
			} else {
				assert.Equal(t, 0, dog.Feed())
				assert.Empty(t, buf.String())
			}
		})
	}
}

func TestCat_CatchMouse(t *testing.T) {
	var buf bytes.Buffer
	cat := NewCat("My cat", Output(&buf))
	cat.CatchMouse()
	assert.Equal(t, "The hunt began!\n", buf.String())
	assert.True(t, cat.IsHungry())
}

func TestDog_BringSlippers(t *testing.T) {
	var buf bytes.Buffer
	dog := NewDog("My dog", Output(&buf))
	dog.BringSlippers()
	assert.Equal(t, "The slippers delivered!\n", buf.String())
	assert.True(t, dog.IsHungry())
}

func TestAnimal_PerformWithoutTrick(t *testing.T) {
	var buf bytes.Buffer
	NewAnimal("Plain", 1, Output(&buf)).perform()
	assert.Empty(t, buf.String())
}
