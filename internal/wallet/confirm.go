package wallet

import (
	"fmt"
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/operator"
	"storagescan-uploader/internal/session"
)

// Strategy locates and activates the confirm control inside the popup
// context in a single shot. The extension's markup is not contractually
// stable, so matching is pluggable.
type Strategy interface {
	Attempt(sess session.Context) (bool, error)
}

// ButtonMatch scans the popup DOM for a button whose visible label contains
// Phrase and whose class list marks it as the primary action. A hit is
// clicked in the same scan, so the popup is never left half-activated.
type ButtonMatch struct {
	Phrase      string
	ClassMarker string
}

// DefaultMatch matches the MetaMask confirm button as of the current
// extension build.
func DefaultMatch() ButtonMatch {
	return ButtonMatch{Phrase: "Confirm", ClassMarker: "mm-button-primary"}
}

func (m ButtonMatch) Attempt(sess session.Context) (bool, error) {
	js := fmt.Sprintf(`() => {
		const buttons = document.querySelectorAll('button');
		for (const button of buttons) {
			if (button.textContent.includes('%s') &&
				button.className.includes('%s')) {
				button.click();
				return true;
			}
		}
		return false;
	}`, m.Phrase, m.ClassMarker)
	return sess.EvalBool(js)
}

// Driver runs the confirmation rounds inside the popup context. Each round
// sleeps an increasing backoff before one DOM scan; after all rounds fail
// the operator is asked whether they confirmed manually, and their answer
// is trusted as ground truth.
type Driver struct {
	Strategy    Strategy
	Operator    operator.Prompt
	MaxAttempts int
	BaseDelay   time.Duration // First pre-scan wait
	DelayStep   time.Duration // Added per round
	Settle      time.Duration // Post-click wait for the popup to react

	sleep func(time.Duration)
}

func NewDriver(strategy Strategy, op operator.Prompt, maxAttempts int) *Driver {
	return &Driver{
		Strategy:    strategy,
		Operator:    op,
		MaxAttempts: maxAttempts,
		BaseDelay:   5 * time.Second,
		DelayStep:   2 * time.Second,
		Settle:      3 * time.Second,
		sleep:       time.Sleep,
	}
}

// Confirm reports whether the transaction was confirmed. The caller is
// responsible for switching sess to the popup context before the call and
// back afterwards.
func (d *Driver) Confirm(sess session.Context) bool {
	logger.Step(i18n.T("confirm_looking"))

	for attempt := 0; attempt < d.MaxAttempts; attempt++ {
		d.sleep(d.BaseDelay + time.Duration(attempt)*d.DelayStep)

		logger.Step(i18n.T("confirm_attempt"), attempt+1, d.MaxAttempts)
		ok, err := d.Strategy.Attempt(sess)
		if err != nil {
			logger.Step("⚠️  confirm scan failed: %v", err)
			continue
		}
		if ok {
			logger.Step(i18n.T("confirm_clicked"), attempt+1)
			d.sleep(d.Settle)
			return true
		}
		logger.Step(i18n.T("confirm_not_found"), attempt+1)
	}

	logger.Step(i18n.T("confirm_manual_header"))
	logger.Step(i18n.T("confirm_manual_hint"))
	if d.Operator.ManualConfirm() {
		d.sleep(2 * time.Second)
		return true
	}
	return false
}
