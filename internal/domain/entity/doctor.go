package entity

import "time"

// Doctor represents a practitioner appointments can be booked with
type Doctor struct {
	ID        int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FullName  string    `gorm:"type:varchar(100);not null;index" json:"full_name"`
	Specialty string    `gorm:"type:varchar(100);not null;index" json:"specialty"`
	Email     string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	CreatedAt time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Doctor) TableName() string {
	return "doctors"
}
