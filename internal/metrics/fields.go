package metrics

// Metric attribute keys shared by provider and run instruments.
const (
	AttrProvider = "provider"
	AttrSource   = "source"
	AttrOutcome  = "outcome"
)

// Outcomes recorded per game on the run counter.
const (
	OutcomeSucceeded = "succeeded"
	OutcomeFailed    = "failed"
	OutcomeSkipped   = "skipped"
)
