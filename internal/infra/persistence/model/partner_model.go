package model

import "time"

// PartnerModel mirrors the 'tbl_partners' table. It is an exported type so it
// can be used by the GORM Gen tool from other packages.
//
// Uniqueness is enforced by the database as the authoritative guard: the
// token column carries an unconditional unique index spanning every status,
// while email uniqueness is a partial index limited to active, non-deleted
// rows so a deleted or deactivated partner does not block email reuse.
type PartnerModel struct {
	ID        int64  `gorm:"column:partner_id;primaryKey;autoIncrement"`
	Name      string `gorm:"type:varchar(100);not null"`
	Lastname  string `gorm:"type:varchar(100);not null"`
	Email     string `gorm:"type:varchar(255);not null;uniqueIndex:uniq_partners_active_email,where:deleted = false AND is_active = true"`
	Password  string `gorm:"type:text;not null"`
	Token     string `gorm:"type:varchar(64);not null;uniqueIndex:uniq_partners_token"`
	IsActive  bool   `gorm:"column:is_active;not null;default:true"`
	Deleted   bool   `gorm:"not null;default:false"`
	CreatedAt time.Time
	UpdatedAt time.Time
}

// TableName explicitly sets the table name for GORM.
func (PartnerModel) TableName() string {
	return "tbl_partners"
}
