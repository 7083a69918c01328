package uploader

import (
	"encoding/json"
	"os"
	"time"

	"github.com/google/uuid"
)

// ItemResult is the persisted outcome of one item.
type ItemResult struct {
	ID         string `json:"id"`
	Status     string `json:"status"`
	FailedStep string `json:"failed_step,omitempty"`
}

// Report is the run summary, persisted as JSON next to the tool so a run
// can be audited after the scratch directory is wiped.
type Report struct {
	RunID      string       `json:"run_id"`
	StartedAt  time.Time    `json:"started_at"`
	FinishedAt time.Time    `json:"finished_at"`
	Total      int          `json:"total"`
	Done       int          `json:"done"`
	Failed     int          `json:"failed"`
	Skipped    int          `json:"skipped"`
	Items      []ItemResult `json:"items"`
}

func NewReport(total int) *Report {
	return &Report{
		RunID:     uuid.NewString(),
		StartedAt: time.Now(),
		Total:     total,
	}
}

func (r *Report) finish() {
	r.FinishedAt = time.Now()
}

func (r *Report) record(items []*Item) {
	r.Items = r.Items[:0]
	for _, it := range items {
		res := ItemResult{ID: it.ID, Status: it.Status.String()}
		if it.Status == Failed {
			res.FailedStep = string(it.FailedStep)
		}
		r.Items = append(r.Items, res)
	}
}

// Save writes the report to path.
func (r *Report) Save(path string) error {
	data, err := json.MarshalIndent(r, "", "  ")
	if err != nil {
		return err
	}
	return os.WriteFile(path, data, 0644)
}
