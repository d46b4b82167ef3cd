package models

// CurriculumRequest is the payload forwarded to the gap-analysis service
// when the curriculum arrives as an uploaded file rather than JSON.
type CurriculumRequest struct {
	Curriculum string `json:"curriculum"`
}
