// Package parser provides parser combinators that track position and
// collect located errors.
//
// # Overview
//
// A Parser[C, X, T] is a function from a State to a Step. C is the type of
// context markers pushed by InContext, X the type of problems reported on
// failure, and T the type of value produced. The engine never inspects C
// or X; it only carries them to the point where a failure is recorded.
//
//	type Problem string
//
//	letExpr := parser.Skip(
//	    parser.Keyword[Ctx](parser.Tok("let", Problem("expecting let"))),
//	    parser.Variable[Ctx](parser.VariableConfig[Problem]{...}),
//	)
//	name, err := parser.Run(letExpr, "let x")
//
// # Progress
//
// Every step records whether it consumed input. Sequencing combinators
// (Map2, Keep, AndThen, Loop) report progress if any part did, even when a
// later part fails. OneOf uses the flag to decide between alternatives: a
// branch that failed without progress is dropped and the next is tried; a
// branch that failed after consuming input is committed and its failure is
// returned. Backtrackable clears the flag to opt out of committing.
//
// # Positions
//
// Offsets are byte offsets into the UTF-8 source. Rows and columns start
// at 1 and columns count code points, so a multi-byte character advances
// the column by one. A newline moves to column 1 of the next row.
//
// # Errors
//
// Failures accumulate in a Bag, which supports constant time appends and
// is only flattened when Run returns. Run reports failure as a DeadEnds
// error whose entries carry the row, column, problem and the context
// stack, innermost first, that was active where each failure occurred.
package parser
