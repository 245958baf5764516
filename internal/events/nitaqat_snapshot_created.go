package events

import "time"

const (
	NitaqatSnapshotCreatedTopic     = "hr.compliance.nitaqat.snapshot.v1"
	NitaqatSnapshotCreatedEventType = "nitaqat_snapshot.created"
)

type NitaqatSnapshotCreatedEvent struct {
	EventType             string    `json:"event_type"`
	SnapshotID            string    `json:"snapshot_id"`
	CompanyID             string    `json:"company_id"`
	Zone                  string    `json:"zone"`
	SaudizationPercentage string    `json:"saudization_percentage"`
	OccurredAt            time.Time `json:"occurred_at"`
}
