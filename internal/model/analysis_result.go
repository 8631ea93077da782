package model

import "encoding/json"

// AnalysisResult is the structured output of a job-match analysis.
// Recommendations stay as raw JSON because two shapes exist in stored
// rows: a bare string, or an object with title/description/priority/
// actionItems/resources. Readers normalize at the boundary.
type AnalysisResult struct {
	MatchScore      int               `json:"matchScore"`
	Status          MatchStatus       `json:"status"`
	RequiredSkills  []string          `json:"requiredSkills"`
	MatchedSkills   []string          `json:"matchedSkills"`
	MissingSkills   []string          `json:"missingSkills"`
	Recommendations []json.RawMessage `json:"recommendations"`
	Strengths       []string          `json:"strengths"`
	Improvements    []string          `json:"improvements"`
}
