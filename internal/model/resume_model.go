package model

import (
	"time"

	"github.com/google/uuid"
	"gorm.io/datatypes"
)

type Resume struct {
	ID            uuid.UUID                   `gorm:"type:uuid;default:uuid_generate_v4();primaryKey" json:"id"`
	UserID        uuid.UUID                   `gorm:"type:uuid;not null;index" json:"userId"`
	User          *User                       `gorm:"constraint:OnDelete:CASCADE;foreignKey:UserID;references:ID" json:"-"`
	FileName      string                      `gorm:"type:varchar(255)" json:"fileName"`
	FileURL       string                      `gorm:"type:text" json:"fileUrl,omitempty"`
	ParsedContent string                      `gorm:"type:text" json:"parsedContent"`
	Skills        datatypes.JSONSlice[string] `json:"skills"`
	CreatedAt     time.Time                   `json:"createdAt"`
}

func (Resume) TableName() string {
	return "resumes"
}
