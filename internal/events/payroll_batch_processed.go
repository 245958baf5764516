package events

import "time"

const (
	PayrollBatchProcessedTopic     = "hr.payroll.batch.processed.v1"
	PayrollBatchProcessedEventType = "payroll_batch.processed"
)

type PayrollBatchProcessedEvent struct {
	EventType   string    `json:"event_type"`
	BatchID     string    `json:"batch_id"`
	CompanyID   string    `json:"company_id"`
	Month       string    `json:"month"`
	ItemCount   int       `json:"item_count"`
	ProcessedBy string    `json:"processed_by"`
	RequestID   string    `json:"request_id,omitempty"`
	OccurredAt  time.Time `json:"occurred_at"`
}
