package model

import (
	"time"

	"github.com/google/uuid"
)

type SkillStatus string

const (
	SkillStatusMatched SkillStatus = "matched"
	SkillStatusPartial SkillStatus = "partial"
	SkillStatusMissing SkillStatus = "missing"
)

func ValidSkillStatus(s string) bool {
	switch SkillStatus(s) {
	case SkillStatusMatched, SkillStatusPartial, SkillStatusMissing:
		return true
	}
	return false
}

type Skill struct {
	ID               uuid.UUID   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID           uuid.UUID   `gorm:"type:uuid;not null;index" json:"userId"`
	User             *User       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	SkillName        string      `gorm:"type:varchar(255);not null" json:"skillName"`
	Category         string      `gorm:"type:varchar(100)" json:"category,omitempty"`
	ProficiencyLevel int         `gorm:"not null;default:0" json:"proficiencyLevel"`
	Status           SkillStatus `gorm:"type:varchar(20);not null;default:missing" json:"status"`
	CreatedAt        time.Time   `json:"createdAt"`
}

func (Skill) TableName() string {
	return "skills"
}
