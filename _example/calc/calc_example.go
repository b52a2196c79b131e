package main

import (
	"fmt"
	"log"
	"os"
	"strconv"
	"unicode"

	"github.com/xiam/parsec"
)

type calc = parsec.Parser[rune, int]

func char(c rune) parsec.Parser[rune, rune] {
	return parsec.Const(c)
}

func digits() calc {
	digit := parsec.Test("digit", unicode.IsDigit)
	return parsec.FlatMap(digit, func(first rune) calc {
		return parsec.FlatMap(parsec.RepeatStar(digit), func(rest []rune) calc {
			n, err := strconv.Atoi(string(append([]rune{first}, rest...)))
			if err != nil {
				return parsec.Fail[rune, int](err.Error())
			}
			return parsec.Pure[rune](n)
		})
	})
}

// chain folds p (op p)* from the left.
func chain(p calc, op parsec.Parser[rune, rune]) calc {
	type step struct {
		op rune
		n  int
	}
	tail := parsec.FlatMap(op, func(o rune) parsec.Parser[rune, step] {
		return parsec.Map(p, func(n int) step {
			return step{o, n}
		})
	})
	return parsec.FlatMap(p, func(first int) calc {
		return parsec.Map(parsec.RepeatStar(tail), func(steps []step) int {
			acc := first
			for _, s := range steps {
				switch s.op {
				case '+':
					acc += s.n
				case '-':
					acc -= s.n
				case '*':
					acc *= s.n
				case '/':
					acc /= s.n
				}
			}
			return acc
		})
	})
}

// newCalc returns a parser that evaluates integer arithmetic with the usual
// precedence and parentheses.
func newCalc() calc {
	var expr calc
	exprRef := parsec.Lazy(func() calc {
		return expr
	})

	group := parsec.FlatMap(char('('), func(rune) calc {
		return parsec.FlatMap(exprRef, func(n int) calc {
			return parsec.Map(char(')'), func(rune) int {
				return n
			})
		})
	})
	factor := parsec.Choice(digits(), group)
	term := chain(factor, parsec.Choice(char('*'), char('/')))
	expr = chain(term, parsec.Choice(char('+'), char('-')))

	return expr
}

func main() {
	expr := newCalc()

	input := "2*(3+4)-10/5"
	if len(os.Args) > 1 {
		input = os.Args[1]
	}

	res := expr.Parse([]rune(input))
	if !res.OK() || len(res.Remaining) > 0 {
		log.Fatalf("could not evaluate %q: %v", input, res)
	}
	fmt.Printf("%s = %d\n", input, res.Parsed)
}
