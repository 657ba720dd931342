package editor

import "github.com/katalvlaran/gridpath/search"

// outcome is what a finished search hands back.
type outcome struct {
	res search.Result
	err error
}

// stepper runs a search on its own goroutine but only lets it execute
// between an advance call and the next yielded step, so the caller's
// goroutine and the search never touch the board at the same time.
type stepper struct {
	resume chan bool // true: continue; false: cancel
	yield  chan search.Step
	done   chan outcome

	stop     bool // written and read on the search goroutine only
	finished bool
}

// runFunc starts a search with the given step callback and interrupt.
type runFunc func(step search.StepFunc, interrupt func() bool) (search.Result, error)

// newStepper parks run until the first advance.
func newStepper(run runFunc) *stepper {
	s := &stepper{
		resume: make(chan bool),
		yield:  make(chan search.Step),
		done:   make(chan outcome, 1),
	}
	go func() {
		s.stop = !<-s.resume
		res, err := run(
			func(st search.Step) {
				s.yield <- st
				if !<-s.resume {
					s.stop = true
				}
			},
			func() bool { return s.stop },
		)
		s.done <- outcome{res: res, err: err}
	}()
	return s
}

// advance lets the search run until its next step or its end. With cancel
// set the search stops at its next cancellation check.
// Exactly one of the returns is non-nil.
func (s *stepper) advance(cancel bool) (*search.Step, *outcome) {
	if s.finished {
		return nil, &outcome{}
	}
	s.resume <- !cancel
	select {
	case st := <-s.yield:
		return &st, nil
	case out := <-s.done:
		s.finished = true
		return nil, &out
	}
}

// finish cancels the search and waits for it to return.
func (s *stepper) finish() outcome {
	for {
		if _, out := s.advance(true); out != nil {
			return *out
		}
	}
}
