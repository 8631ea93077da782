package dto

import "github.com/google/uuid"

type ResumeTextRequest struct {
	Content string `json:"content"`
}

type ResumeInfo struct {
	ID              uuid.UUID `json:"id"`
	FileName        string    `json:"fileName,omitempty"`
	SkillsExtracted int       `json:"skillsExtracted"`
}

type ResumeUploadResponse struct {
	Resume ResumeInfo `json:"resume"`
	Skills []string   `json:"skills"`
}
