package models

type Task struct {
	ID        uint64  `gorm:"primarykey" json:"id"`
	ProjectID uint64  `gorm:"not null;index" json:"project_id"`
	Content   string  `gorm:"type:text;not null" json:"content"`
	Deadline  *string `gorm:"type:varchar(32)" json:"deadline"`
	Progress  int     `gorm:"default:0" json:"progress"`
	// IsCurrent is persisted for schema compatibility; no operation reads it.
	IsCurrent int `gorm:"default:0" json:"is_current"`

	// Relations
	Project *Project `gorm:"foreignKey:ProjectID;constraint:OnDelete:CASCADE" json:"-"`
}
