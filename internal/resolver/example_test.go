package resolver_test

import (
	"fmt"

	"github.com/Iron-Ham/compoundword/internal/resolver"
	"github.com/Iron-Ham/compoundword/internal/trie"
)

func ExampleResolver_Decompose() {
	tr, _ := trie.Build([]string{"cat", "dog", "catdog"})
	r := resolver.New(tr)

	d := r.Decompose("catdog")
	fmt.Println(d.Compound, d.Segments, d.SubWords)
	fmt.Println(r.IsCompound("cat"))
	// Output:
	// true [cat dog] [cat dog]
	// false
}
