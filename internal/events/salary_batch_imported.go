package events

import "time"

const SalaryBatchImportedTopic = "payroll.salary.batch.imported.v1"

// SalaryBatchImportedEvent announces that an import batch was committed.
// Published through the transactional outbox, so it is only visible once
// the batch itself is.
type SalaryBatchImportedEvent struct {
	EventType   string    `json:"event_type"`
	BatchID     string    `json:"batch_id"`
	FileName    string    `json:"file_name"`
	RecordCount int       `json:"record_count"`
	SkippedRows int       `json:"skipped_rows"`
	ImportedBy  string    `json:"imported_by"`
	OccurredAt  time.Time `json:"occurred_at"`
}
