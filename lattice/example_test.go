package lattice_test

import (
	"fmt"

	"github.com/katalvlaran/galois/lattice"
)

// ExampleLattice_Insert builds a small lattice and asks probability questions.
func ExampleLattice_Insert() {
	l, err := lattice.New([]string{"hla-a", "hla-b", "hla-c"})
	if err != nil {
		panic(err)
	}
	samples := map[string][]string{
		"s1": {"hla-a", "hla-b"},
		"s2": {"hla-a"},
		"s3": {"hla-a", "hla-c"},
		"s4": {"hla-b"},
	}
	for _, id := range []string{"s1", "s2", "s3", "s4"} {
		if _, err = l.Insert(id, samples[id]); err != nil {
			panic(err)
		}
	}

	fmt.Println(l.Size(), l.Order())
	fmt.Println(l.Marginal([]string{"hla-a"}))
	fmt.Printf("%.2f\n", l.Conditional([]string{"hla-b"}, []string{"hla-a"}))
	fmt.Println(l.LeastUpperBound([]string{"hla-b"}))
	// Output:
	// 6 7
	// 0.75
	// 0.33
	// ({s1,s4}, {hla-b})
}
