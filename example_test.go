package parsec_test

import (
	"fmt"

	"github.com/xiam/parsec"
)

func Example() {
	answer := parsec.Const(42)

	fmt.Println(parsec.Parse(parsec.Repeat(answer, 3), []int{42, 42, 42}))
	fmt.Println(parsec.Parse(parsec.RepeatStar(answer), []int{42, 42, 1337, 42, 1337}))
	fmt.Println(parsec.Parse(parsec.Choice(parsec.Const(1337), answer), []int{1}))
	// Output:
	// Success([42 42 42], [])
	// Success([42 42], [1337 42 1337])
	// Failure("Predicate `1337` not true for `1` AND Predicate `42` not true for `1`", [1])
}

func ExampleOpt() {
	sign := parsec.Opt(parsec.Const('-'))
	digit := parsec.Test("digit", func(r rune) bool { return r >= '0' && r <= '9' })

	number := parsec.FlatMap(sign, func(s parsec.Option[rune]) parsec.Parser[rune, int] {
		return parsec.Map(digit, func(d rune) int {
			if s.Present {
				return -int(d - '0')
			}
			return int(d - '0')
		})
	})

	fmt.Println(number.Parse([]rune("-7")).Parsed)
	fmt.Println(number.Parse([]rune("7")).Parsed)
	// Output:
	// -7
	// 7
}
