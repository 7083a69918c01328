package operator

// Scripted is a canned Prompt for non-interactive use and tests. Each answer
// slice is consumed in order; when exhausted, the safe default applies
// (Abandon for decisions, false for yes/no answers).
type Scripted struct {
	Size          int
	Delay         int
	Decisions     []Decision
	ManualAnswers []bool
	RetryAnswers  []bool

	DecisionCalls int
	ManualCalls   int
	EnterCalls    int
}

func (s *Scripted) BatchSize() int { return s.Size }

func (s *Scripted) TransactionDelay(def int) int {
	if s.Delay > 0 {
		return s.Delay
	}
	return def
}

func (s *Scripted) RetryDecision(item int, err error) Decision {
	s.DecisionCalls++
	if len(s.Decisions) == 0 {
		return Abandon
	}
	d := s.Decisions[0]
	s.Decisions = s.Decisions[1:]
	return d
}

func (s *Scripted) ManualConfirm() bool {
	s.ManualCalls++
	if len(s.ManualAnswers) == 0 {
		return false
	}
	a := s.ManualAnswers[0]
	s.ManualAnswers = s.ManualAnswers[1:]
	return a
}

func (s *Scripted) AcquireRetry(item int) bool {
	if len(s.RetryAnswers) == 0 {
		return false
	}
	a := s.RetryAnswers[0]
	s.RetryAnswers = s.RetryAnswers[1:]
	return a
}

func (s *Scripted) WaitEnter(msg string) { s.EnterCalls++ }
