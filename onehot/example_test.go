package onehot_test

import (
	"fmt"

	"github.com/matricity/matricity/onehot"
)

// ExampleEncode demonstrates the element → one-hot direction.
func ExampleEncode() {
	d := onehot.MustDomain("red", "green", "blue")

	v, _ := onehot.Encode(d, "green")
	fmt.Println(v.Entries())
	// Output: [0 1 0]
}

// ExampleDecode demonstrates the one-hot → element direction, the exact
// inverse of Encode.
func ExampleDecode() {
	d := onehot.MustDomain("red", "green", "blue")

	x, _ := onehot.Decode(d, []float64{0, 0, 1})
	fmt.Println(x)
	// Output: blue
}

// ExampleProduct demonstrates a Cartesian product domain and its
// row-major enumeration order.
func ExampleProduct() {
	suit := onehot.MustDomain("♠", "♥")
	rank := onehot.MustDomain("A", "K")

	cards, _ := onehot.Product(suit, rank)
	for _, c := range cards.Elements() {
		fmt.Printf("%s%s ", c.Left, c.Right)
	}
	fmt.Println()
	// Output: ♠A ♠K ♥A ♥K
}
