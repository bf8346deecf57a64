package dto

// MentionInput arrives as a JSON array in the "mentions" multipart field.
// Selecting a member without feedback text is allowed; such entries simply
// produce no mention row.
type MentionInput struct {
	MemberID uint   `json:"member_id"`
	Feedback string `json:"feedback"`
}
