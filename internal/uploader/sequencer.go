package uploader

import (
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/session"
)

const (
	fileInputSelector = `input[type='file']`
	uploadButtonText  = `Upload`
	successSelector   = `img[src*="check-upload.3f48c9e8.svg"]`
)

// Timings collects the per-step waits and ceilings of the sequence.
type Timings struct {
	ControlTimeout   time.Duration // Bounded wait for upload controls
	PopupTimeout     time.Duration // Bounded wait for the extension popup
	SuccessTimeout   time.Duration // Bounded poll for the success indicator
	Settle           time.Duration // Fixed wait for async rendering
	TransactionDelay time.Duration // Expected on-chain settlement
	ConfirmRetries   int           // Driver calls per item
	ConfirmPause     time.Duration // Pause between driver calls
	SuccessRetries   int           // Success-wait re-entries per item
}

// DefaultTimings mirrors the empirically tuned waits of the web tool.
func DefaultTimings(txDelay time.Duration) Timings {
	return Timings{
		ControlTimeout:   10 * time.Second,
		PopupTimeout:     20 * time.Second,
		SuccessTimeout:   30 * time.Second,
		Settle:           3 * time.Second,
		TransactionDelay: txDelay,
		ConfirmRetries:   3,
		ConfirmPause:     2 * time.Second,
		SuccessRetries:   3,
	}
}

// PopupFinder discovers the extension popup context.
type PopupFinder interface {
	AwaitPopup(main session.TargetID, timeout time.Duration) (session.TargetID, error)
}

// Confirmer activates the confirm control inside the popup context.
type Confirmer interface {
	Confirm(sess session.Context) bool
}

// Sequencer drives one item through the upload sequence:
//
//	FileStaged -> UploadTriggered -> PopupAwaited -> Confirmed -> SuccessAwaited -> Done
//
// Any step can fail; failures carry the step tag. The sequencer is the only
// component that switches the active context, and it always ends an item
// back on the main context.
type Sequencer struct {
	Sess    session.Context
	Main    session.TargetID
	Locator PopupFinder
	Driver  Confirmer
	Timings Timings

	sleep func(time.Duration)
}

func NewSequencer(sess session.Context, main session.TargetID, loc PopupFinder, drv Confirmer, t Timings) *Sequencer {
	return &Sequencer{
		Sess:    sess,
		Main:    main,
		Locator: loc,
		Driver:  drv,
		Timings: t,
		sleep:   time.Sleep,
	}
}

// Run executes the full sequence for one item, mutating its status as it
// goes. A nil return means the item reached Done; otherwise the returned
// error is a *StepError naming the failed sub-step.
func (s *Sequencer) Run(it *Item) error {
	if err := s.stage(it); err != nil {
		return s.fail(it, StepStage, err)
	}
	if err := s.trigger(it); err != nil {
		return s.fail(it, StepTrigger, err)
	}

	popup, err := s.awaitPopup(it)
	if err != nil {
		return s.fail(it, StepPopup, err)
	}

	if err := s.confirm(it, popup); err != nil {
		return s.fail(it, StepConfirm, err)
	}

	if err := s.awaitSuccess(it); err != nil {
		return s.fail(it, StepSuccess, err)
	}

	it.Status = Succeeded
	logger.Step(i18n.T("success_done"))
	return nil
}

func (s *Sequencer) fail(it *Item, step Step, err error) error {
	it.Status = Failed
	it.FailedStep = step
	return &StepError{Step: step, Err: err}
}

// stage locates the file input on the main context and attaches the payload.
func (s *Sequencer) stage(it *Item) error {
	it.Status = Uploading
	logger.Step(i18n.T("stage_preparing"))

	el, err := s.Sess.Locate(session.ByCSS, fileInputSelector, s.Timings.ControlTimeout)
	if err != nil {
		return err
	}
	if err := s.Sess.StageFile(el, it.Path); err != nil {
		return err
	}
	logger.Step(i18n.T("stage_ready"))
	return nil
}

// trigger clicks the upload control.
func (s *Sequencer) trigger(it *Item) error {
	logger.Step(i18n.T("trigger_starting"))

	el, err := s.Sess.Locate(session.ByButtonText, uploadButtonText, s.Timings.ControlTimeout)
	if err != nil {
		return err
	}
	if err := s.Sess.Activate(el); err != nil {
		return err
	}
	logger.Step(i18n.T("trigger_started"))
	return nil
}

// awaitPopup gives the extension a fixed settle window to spawn its popup,
// then waits for the new context to appear.
func (s *Sequencer) awaitPopup(it *Item) (session.TargetID, error) {
	it.Status = AwaitingPopup
	logger.Step(i18n.T("popup_waiting"))

	s.sleep(s.Timings.Settle)
	popup, err := s.Locator.AwaitPopup(s.Main, s.Timings.PopupTimeout)
	if err != nil {
		return "", err
	}
	logger.Step(i18n.T("popup_detected"))
	return popup, nil
}

// confirm switches to the popup and runs the confirmation driver, retrying
// the driver itself up to the ceiling. The switch back to main is not part
// of the retry loop: it happens exactly once, on every exit path.
func (s *Sequencer) confirm(it *Item, popup session.TargetID) (err error) {
	it.Status = Confirming

	if err := s.Sess.SwitchTo(popup); err != nil {
		return err
	}
	defer func() {
		if restoreErr := s.Sess.SwitchTo(s.Main); restoreErr != nil && err == nil {
			err = restoreErr
		}
	}()

	for attempt := 0; attempt < s.Timings.ConfirmRetries; attempt++ {
		if s.Driver.Confirm(s.Sess) {
			return nil
		}
		if attempt < s.Timings.ConfirmRetries-1 {
			s.sleep(s.Timings.ConfirmPause)
		}
	}
	return ErrConfirmationRejected
}

// awaitSuccess waits out the transaction delay and polls for the visible
// success indicator. Only this state is re-entered on failure; earlier
// steps are never restarted from here.
func (s *Sequencer) awaitSuccess(it *Item) error {
	it.Status = AwaitingSuccess

	for attempt := 0; attempt < s.Timings.SuccessRetries; attempt++ {
		logger.Step(i18n.T("success_waiting"), int(s.Timings.TransactionDelay.Seconds()))
		s.sleep(s.Timings.TransactionDelay)

		el, err := s.Sess.Locate(session.ByCSS, successSelector, s.Timings.SuccessTimeout)
		if err == nil {
			visible, verr := s.Sess.Visible(el)
			if verr == nil && visible {
				return nil
			}
		}

		if attempt < s.Timings.SuccessRetries-1 {
			logger.Step(i18n.T("success_missed"))
			logger.Step(i18n.T("success_retry"))
		}
	}
	return ErrSuccessNotDetected
}
