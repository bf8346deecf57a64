package dto

type CreateMemberRequest struct {
	Name  string `json:"name" binding:"required"`
	Email string `json:"email" binding:"required,email"`
}
type UpdateMemberRequest struct {
	Name       string `json:"name"`
	Email      string `json:"email"`
	Active     *bool  `json:"active"`
	MemberType string `json:"member_type"`
}
