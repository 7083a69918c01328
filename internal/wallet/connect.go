package wallet

import (
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"
	"storagescan-uploader/internal/session"
)

// connectMatches is the ladder of progressively looser matches for the
// dapp's connect control. Tried in order, bounded wait each.
var connectMatches = []struct {
	kind     session.Kind
	criteria string
}{
	{session.ByAnyText, `Connect Wallet`},
	{session.ByAnyText, `Connect wallet`},
	{session.ByAnyText, `connect wallet`},
	{session.ByButtonText, `Connect`},
	{session.ByAnyText, `Connect`},
}

// Connect looks for the dapp's connect-wallet control on the main context
// and clicks it. Approving the connection still happens in the extension,
// so the caller gates on the operator afterwards. Returns false when no
// connect control was found, which usually means the wallet is already
// connected.
func Connect(sess session.Context) bool {
	logger.Info(i18n.T("connect_looking"))

	for _, m := range connectMatches {
		el, err := sess.Locate(m.kind, m.criteria, 5*time.Second)
		if err != nil {
			continue
		}
		logger.Info(i18n.T("connect_found"))
		if err := sess.Activate(el); err != nil {
			logger.Warn("connect click failed: %v", err)
			return false
		}
		return true
	}

	logger.Info(i18n.T("connect_missing"))
	return false
}
