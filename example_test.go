package family_test

import (
	"fmt"
	"log"

	"github.com/sufield/family"
)

func ExampleRunSession() {
	f, err := family.NewFactory(family.Variant1)
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(family.RunSession(f))
	// Output:
	// The result of the product B1.
	// The result of the B1 collaborating with the (The result of the product A1.)
}

func ExampleNewFactory() {
	for _, v := range family.Variants() {
		f, err := family.NewFactory(v)
		if err != nil {
			log.Fatal(err)
		}
		fmt.Printf("%s: %s\n", v, f.CreateProductB().UseB())
	}
	// Output:
	// variant1: The result of the product B1.
	// variant2: The result of the product B2.
}

// A ProductB accepts a ProductA from any family.
func Example_mixedFamilies() {
	f1, _ := family.NewFactory(family.Variant1)
	f2, _ := family.NewFactory(family.Variant2)

	b := f1.CreateProductB()
	a := f2.CreateProductA()
	fmt.Println(b.Collaborate(a))
	// Output:
	// The result of the B1 collaborating with the (The result of the product A2.)
}

func ExampleParseVariant() {
	v, err := family.ParseVariant("variant2")
	if err != nil {
		log.Fatal(err)
	}
	fmt.Println(v, v.Number())
	// Output:
	// variant2 2
}
