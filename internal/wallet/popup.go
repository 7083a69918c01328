package wallet

import (
	"errors"
	"time"

	"storagescan-uploader/internal/session"
)

// ErrPopupNotFound signals that no second browsing context appeared within
// the bounded wait.
var ErrPopupNotFound = errors.New("wallet popup not found")

// Locator discovers the extension popup context. Discovery is pure: the
// active context is never switched here.
type Locator struct {
	Sess     session.Context
	Interval time.Duration

	sleep func(time.Duration)
}

func NewLocator(sess session.Context) *Locator {
	return &Locator{
		Sess:     sess,
		Interval: 500 * time.Millisecond,
		sleep:    time.Sleep,
	}
}

// AwaitPopup blocks until a context other than main exists, or timeout
// elapses. When more than one new context is live, the first one in
// protocol order wins; MetaMask only ever opens one, so the tie-break has
// never mattered in practice.
func (l *Locator) AwaitPopup(main session.TargetID, timeout time.Duration) (session.TargetID, error) {
	attempts := int(timeout / l.Interval)
	if attempts < 1 {
		attempts = 1
	}

	for i := 0; i < attempts; i++ {
		ids, err := l.Sess.ActiveContexts()
		if err == nil {
			for _, id := range ids {
				if id != main {
					return id, nil
				}
			}
		}
		l.sleep(l.Interval)
	}
	return "", ErrPopupNotFound
}
