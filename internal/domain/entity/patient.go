package entity

import "time"

// Patient represents a registered clinic patient
type Patient struct {
	ID         int       `gorm:"primaryKey;autoIncrement" json:"id"`
	FirstName  string    `gorm:"type:varchar(100);not null" json:"first_name"`
	LastName   string    `gorm:"type:varchar(100);not null;index" json:"last_name"`
	NationalID string    `gorm:"type:varchar(20);uniqueIndex;not null" json:"national_id"`
	BirthDate  time.Time `gorm:"not null" json:"birth_date"`
	Email      string    `gorm:"type:varchar(100)" json:"email,omitempty"`
	CreatedAt  time.Time `gorm:"autoCreateTime" json:"created_at"`
	UpdatedAt  time.Time `gorm:"autoUpdateTime" json:"updated_at"`
}

func (Patient) TableName() string {
	return "patients"
}
