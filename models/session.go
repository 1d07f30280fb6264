package models

import "time"

// Session replaces the device-local login state: the signed token carries ID,
// the row carries the last visited route and the revocation.
type Session struct {
	ID               string     `gorm:"column:id;primary_key" json:"id"`
	PatientID        string     `gorm:"column:patient_id;index" json:"patient_id"`
	LastVisitedRoute string     `gorm:"column:last_visited_route" json:"last_visited_route"`
	CreatedAt        *time.Time `gorm:"column:created_at" json:"created_at"`
	ExpiredAt        *time.Time `gorm:"column:expired_at" json:"expired_at"`
	RevokedAt        *time.Time `gorm:"column:revoked_at" json:"revoked_at"`
}

// TableName sets the insert table name for this struct type
func (s *Session) TableName() string {
	return "sessions"
}
