package types

// Status tracks the lifecycle of a persisted row. Deleted rows are kept and
// filtered out of queries.
type Status string

const (
	StatusActive  Status = "active"
	StatusDeleted Status = "deleted"
)
