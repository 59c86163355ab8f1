package ngram_test

import (
	"errors"
	"fmt"
	"slices"
	"strings"

	"github.com/e11jah/ngram"
)

func Example() {
	m := ngram.New[string, int]()
	for _, s := range []string{"the cat sat", "the cat", "a cat sat", "the dog sat"} {
		m.Insert(strings.Fields(s), len(s))
	}

	v, _ := m.Lookup(ngram.Key[string]{"the", "cat"})
	fmt.Println(v)
	fmt.Println(m.Len(), m.SizeOf(3), m.Occurrences("cat"))

	var found []string
	for k := range m.NGramsByPattern([]string{"the", "", "sat"}, 1) {
		found = append(found, strings.Join(k, " "))
	}
	slices.Sort(found)
	fmt.Println(found)

	_, err := m.Remove(ngram.Key[string]{"a", "dog"})
	fmt.Println(errors.Is(err, ngram.ErrNotFound))
	// Output:
	// 7
	// 4 3 3
	// [the cat sat the dog sat]
	// true
}

func ExampleMap_NGramsWithElements() {
	m := ngram.New[rune, bool]()
	for _, w := range []string{"tea", "eat", "ate", "tee", "at"} {
		m.Insert([]rune(w), true)
	}

	var found []string
	for k := range m.SizedNGramsWithElements(3, 'a', 't') {
		found = append(found, string(k))
	}
	slices.Sort(found)
	fmt.Println(found)
	// Output: [ate eat tea]
}
