package parser

// Parser is a function from one state to one step. Parsers hold no
// mutable state and can be shared and reused freely.
type Parser[C, X, T any] func(State[C]) Step[C, X, T]

// Run parses source with p. On failure the error is a DeadEnds[C, X]
// listing every recorded dead end in order.
func Run[C, X, T any](p Parser[C, X, T], source string) (T, error) {
	return RunState(p, NewState[C](source))
}

// RunState is Run starting from an explicit state.
func RunState[C, X, T any](p Parser[C, X, T], s State[C]) (T, error) {
	switch step := p(s).(type) {
	case Good[C, X, T]:
		return step.Value, nil
	case Bad[C, X, T]:
		var zero T
		return zero, Flatten[C, X](step.Bag)
	default:
		mustStep(step)
		panic("unreachable")
	}
}

// Succeed produces value without consuming input.
func Succeed[C, X, T any](value T) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		return Good[C, X, T]{Progress: false, Value: value, State: s}
	}
}

// Problem fails at the current position without consuming input.
func Problem[C, X, T any](problem X) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		return Bad[C, X, T]{Progress: false, Bag: fromState(s, problem)}
	}
}

// Map transforms the value produced by p.
func Map[C, X, T, R any](f func(T) R, p Parser[C, X, T]) Parser[C, X, R] {
	return func(s State[C]) Step[C, X, R] {
		switch step := p(s).(type) {
		case Good[C, X, T]:
			return Good[C, X, R]{Progress: step.Progress, Value: f(step.Value), State: step.State}
		case Bad[C, X, T]:
			return badFrom[C, X, T, R](step, step.Progress)
		default:
			mustStep(step)
			return nil
		}
	}
}

// Map2 runs pa then pb and combines their values with f. The result has
// progress if either half had progress, including when pb fails.
func Map2[C, X, A, B, R any](f func(A, B) R, pa Parser[C, X, A], pb Parser[C, X, B]) Parser[C, X, R] {
	return func(s0 State[C]) Step[C, X, R] {
		switch a := pa(s0).(type) {
		case Good[C, X, A]:
			switch b := pb(a.State).(type) {
			case Good[C, X, B]:
				return Good[C, X, R]{
					Progress: a.Progress || b.Progress,
					Value:    f(a.Value, b.Value),
					State:    b.State,
				}
			case Bad[C, X, B]:
				return badFrom[C, X, B, R](b, a.Progress || b.Progress)
			default:
				mustStep(b)
				return nil
			}
		case Bad[C, X, A]:
			return badFrom[C, X, A, R](a, a.Progress)
		default:
			mustStep(a)
			return nil
		}
	}
}

// Keep applies a parsed function to a parsed argument.
func Keep[C, X, T, R any](pf Parser[C, X, func(T) R], pa Parser[C, X, T]) Parser[C, X, R] {
	return Map2(func(f func(T) R, a T) R { return f(a) }, pf, pa)
}

// Ignore runs pa then pb and keeps only pa's value.
func Ignore[C, X, T, U any](pa Parser[C, X, T], pb Parser[C, X, U]) Parser[C, X, T] {
	return Map2(func(a T, _ U) T { return a }, pa, pb)
}

// Skip runs pa then pb and keeps only pb's value.
func Skip[C, X, T, U any](pa Parser[C, X, T], pb Parser[C, X, U]) Parser[C, X, U] {
	return Map2(func(_ T, b U) U { return b }, pa, pb)
}

// AndThen runs p and picks the next parser from its value. Progress
// combines as in Map2.
func AndThen[C, X, T, R any](callback func(T) Parser[C, X, R], p Parser[C, X, T]) Parser[C, X, R] {
	return func(s0 State[C]) Step[C, X, R] {
		switch a := p(s0).(type) {
		case Good[C, X, T]:
			switch b := callback(a.Value)(a.State).(type) {
			case Good[C, X, R]:
				return Good[C, X, R]{Progress: a.Progress || b.Progress, Value: b.Value, State: b.State}
			case Bad[C, X, R]:
				return Bad[C, X, R]{Progress: a.Progress || b.Progress, Bag: b.Bag}
			default:
				mustStep(b)
				return nil
			}
		case Bad[C, X, T]:
			return badFrom[C, X, T, R](a, a.Progress)
		default:
			mustStep(a)
			return nil
		}
	}
}

// Lazy builds the wrapped parser on every invocation, which lets a
// grammar refer to itself.
func Lazy[C, X, T any](thunk func() Parser[C, X, T]) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		return thunk()(s)
	}
}

// InContext pushes context, located at the current position, for the
// duration of p. Dead ends recorded inside p carry it; the caller's stack
// is restored in the state p returns.
func InContext[C, X, T any](context C, p Parser[C, X, T]) Parser[C, X, T] {
	return func(s0 State[C]) Step[C, X, T] {
		pushed := &contextNode[C]{
			located: Located[C]{Row: s0.row, Col: s0.col, Context: context},
			next:    s0.context,
		}
		switch step := p(s0.withContext(pushed)).(type) {
		case Good[C, X, T]:
			step.State = step.State.withContext(s0.context)
			return step
		case Bad[C, X, T]:
			return step
		default:
			mustStep(step)
			return nil
		}
	}
}

// OneOf tries each parser from the same state and returns the first
// success. A failure that made progress is returned at once. Failures
// without progress are collected and returned together if nothing matches.
func OneOf[C, X, T any](parsers ...Parser[C, X, T]) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		var bag Bag[C, X] = Empty[C, X]{}
		for _, p := range parsers {
			switch step := p(s).(type) {
			case Good[C, X, T]:
				return step
			case Bad[C, X, T]:
				if step.Progress {
					return step
				}
				bag = Append[C, X]{Left: bag, Right: step.Bag}
			default:
				mustStep(step)
			}
		}
		return Bad[C, X, T]{Progress: false, Bag: bag}
	}
}

// Backtrackable runs p but reports no progress, so an enclosing OneOf
// may try the next branch even after p consumed input.
func Backtrackable[C, X, T any](p Parser[C, X, T]) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		switch step := p(s).(type) {
		case Good[C, X, T]:
			step.Progress = false
			return step
		case Bad[C, X, T]:
			step.Progress = false
			return step
		default:
			mustStep(step)
			return nil
		}
	}
}

// LoopStep is returned by the callback of Loop.
type LoopStep[S, T any] struct {
	done  bool
	state S
	value T
}

// Continue asks Loop for another iteration with the given state.
func Continue[S, T any](state S) LoopStep[S, T] {
	return LoopStep[S, T]{state: state}
}

// Done finishes Loop with value.
func Done[S, T any](value T) LoopStep[S, T] {
	return LoopStep[S, T]{done: true, value: value}
}

// Loop repeatedly runs the parser chosen by callback until it yields
// Done. Iterations run in a loop rather than by recursion, so long
// repetitions do not grow the stack.
func Loop[C, X, S, T any](init S, callback func(S) Parser[C, X, LoopStep[S, T]]) Parser[C, X, T] {
	return func(s State[C]) Step[C, X, T] {
		progress, acc := false, init
		for {
			switch step := callback(acc)(s).(type) {
			case Good[C, X, LoopStep[S, T]]:
				progress = progress || step.Progress
				s = step.State
				if step.Value.done {
					return Good[C, X, T]{Progress: progress, Value: step.Value.value, State: s}
				}
				acc = step.Value.state
			case Bad[C, X, LoopStep[S, T]]:
				return Bad[C, X, T]{Progress: progress || step.Progress, Bag: step.Bag}
			default:
				mustStep(step)
			}
		}
	}
}

// Position is a 1-based row and column.
type Position struct {
	Row int
	Col int
}

// GetPosition produces the current position without consuming input.
func GetPosition[C, X any]() Parser[C, X, Position] {
	return func(s State[C]) Step[C, X, Position] {
		return Good[C, X, Position]{Value: Position{Row: s.row, Col: s.col}, State: s}
	}
}

// GetOffset produces the current byte offset without consuming input.
func GetOffset[C, X any]() Parser[C, X, int] {
	return func(s State[C]) Step[C, X, int] {
		return Good[C, X, int]{Value: s.offset, State: s}
	}
}

// GetSource produces the whole source string.
func GetSource[C, X any]() Parser[C, X, string] {
	return func(s State[C]) Step[C, X, string] {
		return Good[C, X, string]{Value: s.source, State: s}
	}
}
