package session

import (
	"fmt"
	"time"

	"storagescan-uploader/internal/i18n"
	"storagescan-uploader/internal/logger"

	"github.com/go-rod/rod"
	"github.com/go-rod/rod/lib/launcher"
	"github.com/go-rod/rod/lib/proto"
	"github.com/go-rod/stealth"
)

// Browser is the rod-backed Context implementation. It owns one Chrome
// instance with a persistent user-data-dir so the wallet extension survives
// across runs.
type Browser struct {
	browser *rod.Browser
	main    *rod.Page
	active  *rod.Page
	DataDir string
}

// New launches Chrome with the given profile directory. The system browser
// is preferred (the extension store only works on real Chrome); rod
// downloads a managed build as fallback.
func New(userDataDir string, headless bool) (*Browser, error) {
	logger.Info(i18n.T("browser_starting"))
	logger.Debug(i18n.T("browser_profile"), userDataDir)

	path, _ := launcher.LookPath()

	l := launcher.New().
		UserDataDir(userDataDir).
		Headless(headless).
		NoSandbox(true).
		Set("lang", "en-US").
		Devtools(false).
		Set("disable-dev-shm-usage").
		Set("disable-blink-features", "AutomationControlled"). // Ocultar que es un bot
		Set("exclude-switches", "enable-automation").
		Set("use-automation-extension", "false")

	if path != "" {
		logger.Debug(i18n.T("browser_system"), path)
		l = l.Bin(path)
	}

	if !headless {
		l = l.Set("start-maximized")
	}

	url, err := l.Launch()
	if err != nil {
		logger.Info(i18n.T("browser_download_fail"))
		l = launcher.New().
			UserDataDir(userDataDir).
			Headless(headless).
			NoSandbox(true).
			Set("disable-blink-features", "AutomationControlled").
			Set("exclude-switches", "enable-automation").
			Set("use-automation-extension", "false")
		url, err = l.Launch()
		if err != nil {
			return nil, fmt.Errorf("failed to launch browser: %w", err)
		}
	}

	browser := rod.New().ControlURL(url)
	if err := browser.Connect(); err != nil {
		return nil, fmt.Errorf("failed to connect to browser: %w", err)
	}

	logger.Info(i18n.T("browser_ready"))
	return &Browser{browser: browser, DataDir: userDataDir}, nil
}

// OpenMain navigates a stealth page to the given URL and makes it the main
// context for the run.
func (b *Browser) OpenMain(url string) (TargetID, error) {
	page, err := stealth.Page(b.browser)
	if err != nil {
		return "", fmt.Errorf("failed to create page: %w", err)
	}
	if err := page.Navigate(url); err != nil {
		return "", fmt.Errorf("failed to navigate to %s: %w", url, err)
	}
	if err := page.Timeout(30 * time.Second).WaitLoad(); err != nil {
		logger.Warn("page load wait timed out: %v", err)
	}
	b.main = page
	b.active = page
	return TargetID(page.TargetID), nil
}

func (b *Browser) ActiveContexts() ([]TargetID, error) {
	pages, err := b.browser.Pages()
	if err != nil {
		return nil, err
	}
	ids := make([]TargetID, 0, len(pages))
	for _, p := range pages {
		ids = append(ids, TargetID(p.TargetID))
	}
	return ids, nil
}

func (b *Browser) SwitchTo(id TargetID) error {
	pages, err := b.browser.Pages()
	if err != nil {
		return err
	}
	for _, p := range pages {
		if p.TargetID == proto.TargetTargetID(id) {
			if _, err := p.Activate(); err != nil {
				return err
			}
			b.active = p
			return nil
		}
	}
	return fmt.Errorf("context %s no longer exists", id)
}

func (b *Browser) Locate(kind Kind, criteria string, timeout time.Duration) (Element, error) {
	page := b.active.Timeout(timeout)

	var el *rod.Element
	var err error
	switch kind {
	case ByCSS:
		el, err = page.Element(criteria)
	case ByButtonText:
		el, err = page.ElementR("button", criteria)
	case ByAnyText:
		el, err = page.ElementR("*", criteria)
	default:
		return nil, fmt.Errorf("unknown locator kind %d", kind)
	}
	if err != nil {
		return nil, fmt.Errorf("%w: %q", ErrControlNotFound, criteria)
	}
	// Detach from the locate deadline so later clicks don't inherit it.
	return el.CancelTimeout(), nil
}

func (b *Browser) Activate(el Element) error {
	re, ok := el.(*rod.Element)
	if !ok {
		return fmt.Errorf("element does not belong to this session")
	}
	return re.Click(proto.InputMouseButtonLeft, 1)
}

func (b *Browser) StageFile(el Element, path string) error {
	re, ok := el.(*rod.Element)
	if !ok {
		return fmt.Errorf("element does not belong to this session")
	}
	return re.SetFiles([]string{path})
}

func (b *Browser) Visible(el Element) (bool, error) {
	re, ok := el.(*rod.Element)
	if !ok {
		return false, fmt.Errorf("element does not belong to this session")
	}
	return re.Visible()
}

func (b *Browser) EvalBool(js string) (bool, error) {
	res, err := b.active.Eval(js)
	if err != nil {
		return false, err
	}
	return res.Value.Bool(), nil
}

func (b *Browser) Reload() error {
	if err := b.active.Reload(); err != nil {
		return err
	}
	if err := b.active.Timeout(15 * time.Second).WaitLoad(); err != nil {
		logger.Debug("reload wait timed out: %v", err)
	}
	return nil
}

func (b *Browser) Quit() {
	if b.browser != nil {
		b.browser.Close()
	}
}

// Navigate points the active context at a new URL. Used by the first-run
// setup flow to open the extension store.
func (b *Browser) Navigate(url string) error {
	if b.active == nil {
		page, err := stealth.Page(b.browser)
		if err != nil {
			return err
		}
		b.main = page
		b.active = page
	}
	return b.active.Navigate(url)
}
