package models

// SubmissionStatus defines the moderation states of a community submission
type SubmissionStatus string

const (
	SubmissionStatusPending  SubmissionStatus = "pending"
	SubmissionStatusApproved SubmissionStatus = "approved"
	SubmissionStatusRejected SubmissionStatus = "rejected"
)

// IsValid checks if the SubmissionStatus is valid
func (s SubmissionStatus) IsValid() bool {
	switch s {
	case SubmissionStatusPending, SubmissionStatusApproved, SubmissionStatusRejected:
		return true
	}
	return false
}

// CommunitySubmission is the moderation queue for prompts contributed by
// users without a team. Approval publishes the content as a public prompt;
// the submission row itself is kept for audit.
type CommunitySubmission struct {
	BaseModel
	Title          string           `json:"title" gorm:"not null;size:200" validate:"required,min=1,max=200"`
	Description    string           `json:"description" gorm:"not null;size:500" validate:"required,max=500"`
	Content        string           `json:"content" gorm:"not null;type:text" validate:"required"`
	Category       string           `json:"category" gorm:"not null;size:50" validate:"required,max=50"`
	Tags           []string         `json:"tags" gorm:"serializer:json;type:jsonb"`
	SubmitterEmail string           `json:"submitter_email" gorm:"size:255" validate:"omitempty,email,max=255"`
	Status         SubmissionStatus `json:"status" gorm:"type:varchar(20);not null;default:'pending';index"`
}

// TableName returns the table name for CommunitySubmission
func (CommunitySubmission) TableName() string {
	return "community_submissions"
}
