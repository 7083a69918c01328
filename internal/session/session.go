package session

import (
	"errors"
	"time"
)

// ErrControlNotFound signals that a bounded wait for a page control elapsed
// without the control appearing.
var ErrControlNotFound = errors.New("control not found")

// TargetID identifies one browsing context (window or tab). The main
// context keeps its ID for the whole run; wallet popups get fresh ones.
type TargetID string

// Element is an opaque handle to a located page control. It is only
// meaningful to the Context that produced it.
type Element interface{}

// Kind selects the locating strategy for Locate.
type Kind int

const (
	// ByCSS matches a CSS selector.
	ByCSS Kind = iota
	// ByButtonText matches a button whose visible text matches a regexp.
	ByButtonText
	// ByAnyText matches any element whose visible text matches a regexp.
	ByAnyText
)

// Context is the browser surface the upload core drives. Exactly one
// context is active at a time; Locate, Activate, StageFile, EvalBool and
// Reload all act on the active context.
type Context interface {
	// ActiveContexts lists the live browsing contexts in the order the
	// DevTools protocol reports them.
	ActiveContexts() ([]TargetID, error)
	// SwitchTo makes the given context the active one.
	SwitchTo(id TargetID) error
	// Locate waits up to timeout for a control on the active context.
	Locate(kind Kind, criteria string, timeout time.Duration) (Element, error)
	// Activate clicks a previously located control.
	Activate(el Element) error
	// StageFile attaches a local file to a file-input control.
	StageFile(el Element, path string) error
	// Visible reports whether a located control is rendered on screen.
	Visible(el Element) (bool, error)
	// EvalBool runs a zero-argument JS function on the active context and
	// returns its boolean result.
	EvalBool(js string) (bool, error)
	// Reload refreshes the active context.
	Reload() error
	// Quit tears down the whole browser session.
	Quit()
}
