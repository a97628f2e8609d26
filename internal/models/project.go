package models

type Project struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	Name      string  `gorm:"type:varchar(255);not null" json:"name"`
	UserID    *uint64 `gorm:"index" json:"user_id"`
	StartDate string  `gorm:"type:varchar(32);not null" json:"start_date"`
	Deadline  string  `gorm:"type:varchar(32);not null" json:"deadline"`
	Priority  int     `gorm:"not null" json:"priority"`
	Progress  int     `gorm:"default:0" json:"progress"`
	Status    string  `gorm:"type:varchar(32);not null;default:'active'" json:"status"`

	// Relations
	Owner *User `gorm:"foreignKey:UserID;constraint:OnDelete:SET NULL" json:"-"`
}
