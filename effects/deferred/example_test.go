package deferred_test

import (
	"fmt"

	"github.com/on-the-ground/composable_go/effects/deferred"
)

func print(s string) deferred.Io[string] {
	return deferred.Lift(func() string {
		fmt.Print(s)
		return s
	})
}

var (
	hallo = print("hallo ")
	welt  = print("welt\n")
)

func ExampleThen() {
	m := deferred.Then(hallo, welt)
	_, _ = m.Run()
	// Output: hallo welt
}

func ExampleBind() {
	m := deferred.Then(deferred.Bind(hallo, print), welt)
	_, _ = m.Run()
	// Output: hallo hallo welt
}

func ExampleMap() {
	m := deferred.Map(hallo, func(s string) int { return len(s) })
	n, _ := m.Run()
	fmt.Println(n)
	// Output: hallo 6
}

func ExampleSequence() {
	m := deferred.Sequence([]deferred.Io[string]{print("a"), print("b"), print("c\n")})
	xs, _ := m.Run()
	fmt.Println(len(xs))
	// Output:
	// abc
	// 3
}
