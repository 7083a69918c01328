package uploader

import (
	"errors"
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/operator"
)

// BatchRunner iterates the item sequence, applying the operator-gated
// retry/skip/abandon policy around each item. Automatic retries live inside
// the sequencer's steps; at this level every retry is a human decision.
type BatchRunner struct {
	Seq      *Sequencer
	Operator operator.Prompt

	sleep func(time.Duration)
}

func NewBatchRunner(seq *Sequencer, op operator.Prompt) *BatchRunner {
	return &BatchRunner{Seq: seq, Operator: op, sleep: time.Sleep}
}

// Run processes items in order. The returned report counts every item;
// fewer successes than scheduled is not itself an error. ErrAbandoned is
// returned when the operator stops the remainder of the batch.
func (b *BatchRunner) Run(items []*Item) (*Report, error) {
	report := NewReport(len(items))
	defer report.finish()

	for i, it := range items {
		logger.Info("")
		logger.Info(i18n.T("item_processing"), i+1, len(items))

	itemLoop:
		for {
			err := b.Seq.Run(it)
			if err == nil {
				report.Done++
				break
			}

			var stepErr *StepError
			step := Step("unknown")
			if errors.As(err, &stepErr) {
				step = stepErr.Step
			}
			logger.Info("")
			logger.Info(i18n.T("item_error"), i+1, string(step), err)

			switch b.Operator.RetryDecision(i+1, err) {
			case operator.Retry:
				logger.Step(i18n.T("reload_next"))
				if rerr := b.Seq.Sess.Reload(); rerr != nil {
					logger.Warn("reload failed: %v", rerr)
				}
				b.sleep(b.Seq.Timings.Settle)
				logger.Step(i18n.T("reload_done"))
				continue
			case operator.Skip:
				logger.Info(i18n.T("item_skipped"), i+1)
				report.Failed++
				break itemLoop
			default:
				report.Failed++
				for _, rest := range items[i+1:] {
					rest.Status = Skipped
					report.Skipped++
				}
				logger.Info(i18n.T("batch_abandoned"))
				report.record(items)
				return report, ErrAbandoned
			}
		}

		// Reload before the next item so no residual form state bleeds
		// into the next sequence. A skipped item leaves its file staged
		// and possibly a stale popup behind, so this runs regardless of
		// how the item ended.
		if i < len(items)-1 {
			logger.Info("")
			logger.Step(i18n.T("reload_next"))
			if err := b.Seq.Sess.Reload(); err != nil {
				logger.Warn("reload failed: %v", err)
			}
			b.sleep(b.Seq.Timings.Settle)
			logger.Step(i18n.T("reload_done"))
		}
	}

	report.record(items)
	logger.Info("")
	logger.Info(i18n.T("batch_summary"), report.Done, report.Total)
	return report, nil
}
