package domain

import "time"

// RoomStatusHistory is an append-only audit trail of room status changes.
// Rows are written in the same transaction as the room update and are never
// modified afterwards.
type RoomStatusHistory struct {
	ID        int64      `json:"id" gorm:"primaryKey"`
	RoomID    int64      `json:"room_id" gorm:"index"`
	OldStatus RoomStatus `json:"old_status"`
	NewStatus RoomStatus `json:"new_status"`
	ChangedAt time.Time  `json:"changed_at"`
	ChangedBy int64      `json:"changed_by"`
}

func (RoomStatusHistory) TableName() string { return "room_status_history" }
