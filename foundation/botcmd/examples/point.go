// File: point.go
// Title: Point Grammars
// Description: Three formulations of the "(x, y)" grammar: nested dependent
//              chaining, applicative helpers and do-notation.
// Author: msto63
// Version: v0.1.0
// Created: 2026-02-10
// Modified: 2026-02-11
//
// Change History:
// - 2026-02-10 v0.1.0: Chained and do-notation formulations
// - 2026-02-11 v0.1.1: Applicative formulation

package examples

import (
	"fmt"

	"github.com/msto63/botparse/foundation/botcmd/parser"
)

// Point is a 2-D integer point
type Point struct {
	X int `json:"x" yaml:"x"`
	Y int `json:"y" yaml:"y"`
}

// String renders the point the way it is written
func (p Point) String() string {
	return fmt.Sprintf("(%d, %d)", p.X, p.Y)
}

var pointDescription = parser.Opaque{Label: "point (x, y)"}

// PointChained reads a point with nested FlatMap continuations
var PointChained parser.Parser[Point] = parser.Described(
	parser.FlatMap(parser.Symbol("("), func(string) parser.Parser[Point] {
		return parser.FlatMap(parser.Integer, func(x int) parser.Parser[Point] {
			return parser.FlatMap(parser.Symbol(","), func(string) parser.Parser[Point] {
				return parser.FlatMap(parser.Integer, func(y int) parser.Parser[Point] {
					return parser.Map(parser.Symbol(")"), func(string) Point {
						return Point{X: x, Y: y}
					})
				})
			})
		})
	}),
	pointDescription,
)

// newPoint is the curried constructor PointApplicative applies field by field
func newPoint(x int) func(int) Point {
	return func(y int) Point { return Point{X: x, Y: y} }
}

// PointApplicative reads a point by applying a curried constructor to the
// coordinates while After and Before drop the punctuation
var PointApplicative parser.Parser[Point] = parser.Described(
	parser.Before(
		parser.Apply(
			parser.Apply(
				parser.After(parser.Symbol("("), parser.Pure(newPoint)),
				parser.Before(parser.Integer, parser.Symbol(",")),
			),
			parser.Integer,
		),
		parser.Symbol(")"),
	),
	pointDescription,
)

// PointDo reads a point as a linear list of steps
var PointDo parser.Parser[Point] = parser.Described(
	parser.Do(func(s *parser.Scope) Point {
		parser.Bind(s, parser.Symbol("("))
		x := parser.Bind(s, parser.Integer)
		parser.Bind(s, parser.Symbol(","))
		y := parser.Bind(s, parser.Integer)
		parser.Bind(s, parser.Symbol(")"))
		return Point{X: x, Y: y}
	}),
	pointDescription,
)
