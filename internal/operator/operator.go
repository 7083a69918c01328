package operator

import (
	"bufio"
	"fmt"
	"os"
	"strconv"
	"strings"

	"storagescan-uploader/internal/i18n"
)

// Decision is the operator's answer when an upload fails.
type Decision int

const (
	Retry Decision = iota
	Skip
	Abandon
)

// Prompt is the single point of human interaction for the core. Everything
// the tool asks the operator goes through here, so tests substitute a
// scripted implementation.
type Prompt interface {
	// BatchSize asks how many images to upload; always a positive integer.
	BatchSize() int
	// TransactionDelay asks for the on-chain settlement wait in seconds,
	// falling back to def on empty input.
	TransactionDelay(def int) int
	// RetryDecision is consulted after an item fails all bounded retries.
	RetryDecision(item int, err error) Decision
	// ManualConfirm asks whether the operator clicked the wallet confirm
	// button by hand. The answer is trusted as ground truth.
	ManualConfirm() bool
	// AcquireRetry asks whether a failed image download should be retried.
	AcquireRetry(item int) bool
	// WaitEnter blocks until the operator presses Enter.
	WaitEnter(msg string)
}

// Stdin is the interactive implementation used by the CLI.
type Stdin struct {
	in *bufio.Reader
}

func NewStdin() *Stdin {
	return &Stdin{in: bufio.NewReader(os.Stdin)}
}

func (s *Stdin) readLine() string {
	line, _ := s.in.ReadString('\n')
	return strings.TrimSpace(line)
}

func (s *Stdin) BatchSize() int {
	for {
		fmt.Printf("%s ", i18n.T("prompt_batch_size"))
		n, err := strconv.Atoi(s.readLine())
		if err != nil {
			fmt.Println(i18n.T("prompt_numeric"))
			continue
		}
		if n <= 0 {
			fmt.Println(i18n.T("prompt_positive"))
			continue
		}
		return n
	}
}

func (s *Stdin) TransactionDelay(def int) int {
	for {
		fmt.Printf("%s [default: %d]: ", i18n.T("prompt_tx_delay"), def)
		line := s.readLine()
		if line == "" {
			return def
		}
		n, err := strconv.Atoi(line)
		if err != nil {
			fmt.Println(i18n.T("prompt_numeric"))
			continue
		}
		if n <= 0 {
			fmt.Println(i18n.T("prompt_positive"))
			continue
		}
		return n
	}
}

func (s *Stdin) RetryDecision(item int, err error) Decision {
	for {
		fmt.Printf("  %s", i18n.T("prompt_retry_decision"))
		switch strings.ToLower(s.readLine()) {
		case "r", "retry":
			return Retry
		case "s", "skip":
			return Skip
		case "a", "abandon", "q":
			return Abandon
		}
	}
}

func (s *Stdin) ManualConfirm() bool {
	fmt.Printf("  %s", i18n.T("prompt_manual_confirm"))
	ans := strings.ToLower(s.readLine())
	return ans == "y" || ans == "yes" || ans == "s" || ans == "si"
}

func (s *Stdin) AcquireRetry(item int) bool {
	fmt.Printf("%s", i18n.T("prompt_image_retry"))
	return strings.ToLower(s.readLine()) == "r"
}

func (s *Stdin) WaitEnter(msg string) {
	fmt.Println(msg)
	s.in.ReadString('\n')
}
