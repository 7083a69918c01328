package operator

import (
	"errors"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestScriptedConsumesAnswersInOrder(t *testing.T) {
	s := &Scripted{
		Decisions:     []Decision{Retry, Skip},
		ManualAnswers: []bool{true, false},
	}
	err := errors.New("step popup: timed out")

	assert.Equal(t, Retry, s.RetryDecision(1, err))
	assert.Equal(t, Skip, s.RetryDecision(1, err))
	assert.True(t, s.ManualConfirm())
	assert.False(t, s.ManualConfirm())
	assert.Equal(t, 2, s.DecisionCalls)
	assert.Equal(t, 2, s.ManualCalls)
}

func TestScriptedDefaultsWhenExhausted(t *testing.T) {
	s := &Scripted{}

	assert.Equal(t, Abandon, s.RetryDecision(1, nil))
	assert.False(t, s.ManualConfirm())
	assert.False(t, s.AcquireRetry(1))
}

func TestScriptedDelayFallsBackToDefault(t *testing.T) {
	assert.Equal(t, 60, (&Scripted{}).TransactionDelay(60))
	assert.Equal(t, 15, (&Scripted{Delay: 15}).TransactionDelay(60))
}
