package main

import (
	"fmt"

	optview "github.com/igormcoelho/optional-view"
	"github.com/igormcoelho/optional-view/pkg/optional"
)

func show(maybe optview.View[int]) {
	if maybe.Present() {
		fmt.Println(maybe.Deref())
	} else {
		fmt.Println("empty")
	}
}

func main() {
	x := 10
	ox := optview.Of(&x)
	show(ox)                  // prints 10
	show(optview.None[int]()) // prints "empty"

	opY := optional.Some(20)
	show(optview.FromOption(&opY)) // compatible: prints 20

	x = 40   // changes x from 10 to 40
	show(ox) // prints 40 (view behavior from x)
	ox.Set(50)
	show(ox) // prints 50

	fmt.Println(x) // prints 50

	oz := optview.ReadOnlyFromOption(&opY)
	fmt.Println(oz.Deref()) // prints 20

	opY.Set(25)             // remote change on the optional
	fmt.Println(oz.Deref()) // prints 25

	opY.Set(90)
	opY.Reset()                // disengage the optional
	fmt.Println(opY.Present()) // prints false
	fmt.Println(oz.Deref())    // prints 90: the view never observes the reset
}
