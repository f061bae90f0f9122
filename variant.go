package zoo

// Cat is an Animal with a fixed appetite of 3 that can hunt.
type Cat struct {
	*Animal
}

// Dog is an Animal with a fixed appetite of 7 that fetches slippers.
type Dog struct {
	*Animal
}

var (
	_ Pet = (*Cat)(nil)
	_ Pet = (*Dog)(nil)
)

// NewCat creates a cat. Hunger and output options are forwarded to the
// underlying Animal; the appetite cannot be changed.
func NewCat(name string, opts ...Option) *Cat {
	return &Cat{Animal: newAnimal(KindCat, name, KindCat.Appetite().MustGet(), opts...)}
}

// CatchMouse prints "The hunt began!".
func (c *Cat) CatchMouse() {
	c.perform()
}

// NewDog creates a dog. Hunger and output options are forwarded to the
// underlying Animal; the appetite cannot be changed.
func NewDog(name string, opts ...Option) *Dog {
	return &Dog{Animal: newAnimal(KindDog, name, KindDog.Appetite().MustGet(), opts...)}
}

// BringSlippers prints "The slippers delivered!".
func (d *Dog) BringSlippers() {
	d.perform()
}
