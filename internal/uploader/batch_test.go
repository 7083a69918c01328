package uploader

import (
	"testing"
	"time"

	"storagescan-uploader/internal/operator"
	"storagescan-uploader/internal/wallet"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func silentRunner(sess *fakeSession, finder *fakeFinder, confirmer *fakeConfirmer, op operator.Prompt) *BatchRunner {
	seq, _ := newTestSequencer(sess, finder, confirmer)
	runner := NewBatchRunner(seq, op)
	runner.sleep = func(d time.Duration) {}
	return runner
}

func makeItems(n int) []*Item {
	items := make([]*Item, n)
	for i := range items {
		items[i] = &Item{ID: uuid.NewString(), Path: "/tmp/x.jpg"}
	}
	return items
}

func TestBatchAllSucceed(t *testing.T) {
	sess := newFakeSession()
	op := &operator.Scripted{}
	runner := silentRunner(sess, &fakeFinder{}, &fakeConfirmer{}, op)

	items := makeItems(3)
	report, err := runner.Run(items)

	require.NoError(t, err)
	assert.Equal(t, 3, report.Done)
	assert.Equal(t, 3, report.Total)
	assert.Zero(t, report.Failed)
	assert.Zero(t, op.DecisionCalls, "no operator gate on a clean run")
	// The page is reloaded between items but not after the last one.
	assert.Equal(t, 2, sess.reloads)
	for _, it := range items {
		assert.Equal(t, Succeeded, it.Status)
	}
}

func TestBatchPopupTimeoutThenOperatorRetries(t *testing.T) {
	sess := newFakeSession()
	// Item 1 succeeds; item 2 times out twice and succeeds on the third
	// structural retry.
	finder := &fakeFinder{errs: []error{nil, wallet.ErrPopupNotFound, wallet.ErrPopupNotFound, nil}}
	op := &operator.Scripted{Decisions: []operator.Decision{operator.Retry, operator.Retry}}
	runner := silentRunner(sess, finder, &fakeConfirmer{}, op)

	items := makeItems(2)
	report, err := runner.Run(items)

	require.NoError(t, err)
	assert.Equal(t, 2, report.Done)
	assert.Equal(t, 2, op.DecisionCalls)
	assert.Equal(t, Succeeded, items[1].Status)
	assert.Equal(t, 4, finder.calls)
}

func TestBatchConfirmFailureSkipContinues(t *testing.T) {
	sess := newFakeSession()
	// Item 1: all three driver calls fail (manual gate answered "no"
	// inside the driver); item 2 confirms first try.
	confirmer := &fakeConfirmer{answers: []bool{false, false, false, true}}
	op := &operator.Scripted{Decisions: []operator.Decision{operator.Skip}}
	runner := silentRunner(sess, &fakeFinder{}, confirmer, op)

	items := makeItems(2)
	report, err := runner.Run(items)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Done)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, Failed, items[0].Status)
	assert.Equal(t, StepConfirm, items[0].FailedStep)
	assert.Equal(t, Succeeded, items[1].Status)
}

func TestBatchReloadsAfterSkippedItem(t *testing.T) {
	sess := newFakeSession()
	// Item 1 exhausts the confirm ceiling and is skipped; item 2 confirms
	// first try.
	confirmer := &fakeConfirmer{answers: []bool{false, false, false, true}}
	op := &operator.Scripted{Decisions: []operator.Decision{operator.Skip}}
	runner := silentRunner(sess, &fakeFinder{}, confirmer, op)

	items := makeItems(2)
	report, err := runner.Run(items)

	require.NoError(t, err)
	assert.Equal(t, 1, report.Done)
	// The skipped item leaves its file staged, so the page must be
	// reloaded before the next item's sequence starts.
	assert.Equal(t, 1, sess.reloads)
	assert.Equal(t, Succeeded, items[1].Status)
}

func TestBatchAbandonSkipsRemainder(t *testing.T) {
	sess := newFakeSession()
	sess.failLocate[fileInputSelector] = -1
	op := &operator.Scripted{Decisions: []operator.Decision{operator.Abandon}}
	runner := silentRunner(sess, &fakeFinder{}, &fakeConfirmer{}, op)

	items := makeItems(3)
	report, err := runner.Run(items)

	require.ErrorIs(t, err, ErrAbandoned)
	assert.Equal(t, 0, report.Done)
	assert.Equal(t, 1, report.Failed)
	assert.Equal(t, 2, report.Skipped)
	assert.Equal(t, Skipped, items[1].Status)
	assert.Equal(t, Skipped, items[2].Status)
}

func TestBatchReportRecordsItems(t *testing.T) {
	sess := newFakeSession()
	op := &operator.Scripted{}
	runner := silentRunner(sess, &fakeFinder{}, &fakeConfirmer{}, op)

	items := makeItems(1)
	report, err := runner.Run(items)

	require.NoError(t, err)
	require.Len(t, report.Items, 1)
	assert.Equal(t, items[0].ID, report.Items[0].ID)
	assert.Equal(t, "succeeded", report.Items[0].Status)
	assert.NotEmpty(t, report.RunID)
	assert.False(t, report.FinishedAt.IsZero())
}
