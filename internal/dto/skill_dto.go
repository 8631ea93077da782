package dto

type AddSkillRequest struct {
	SkillName        string `json:"skillName"`
	Category         string `json:"category"`
	ProficiencyLevel *int   `json:"proficiencyLevel"`
	Status           string `json:"status"`
}

type UpdateSkillRequest struct {
	SkillName        *string `json:"skillName"`
	Category         *string `json:"category"`
	ProficiencyLevel *int    `json:"proficiencyLevel"`
	Status           *string `json:"status"`
}
