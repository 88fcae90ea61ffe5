package check

import (
	"time"

	"github.com/google/uuid"
)

// Report summarizes one call to Run.
type Report struct {
	RunID        uuid.UUID
	PropertyName string
	Passed       bool
	CasesRun     int
	FailingValue string
	ShrinkTries  int
	Elapsed      time.Duration
}
