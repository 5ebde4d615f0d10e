package entity

import "time"

// User is keyed by a store-assigned auto-increment id. The email carries the
// uniqueness constraint; the service layer relies on the store rejecting a
// duplicate rather than on a check-then-act sequence.
type User struct {
	ID        int64  `gorm:"primarykey"`
	Name      string `gorm:"size:256;not null"`
	Email     string `gorm:"size:256;uniqueIndex;not null"`
	Age       int    `gorm:"not null"`
	CreatedAt time.Time
}
