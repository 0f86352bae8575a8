package m_outbox

import "time"

// Row is the SQL mapping of an outbox record.
type Row struct {
	EventID     string     `gorm:"column:event_id;primaryKey;size:36"`
	EventType   string     `gorm:"column:event_type;size:100;not null"`
	AggregateID string     `gorm:"column:aggregate_id;size:36;not null;index"`
	Payload     string     `gorm:"column:payload;type:text;not null"`
	Status      string     `gorm:"column:status;size:20;not null;index"`
	CreatedAt   time.Time  `gorm:"column:created_at;not null"`
	ProcessedAt *time.Time `gorm:"column:processed_at"`
}

func (Row) TableName() string { return TableName }
