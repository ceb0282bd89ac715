package family

import "time"

type CreateFamilyRequest struct {
	Name string `json:"name" validate:"required,min=3,max=255"`
}

type JoinFamilyRequest struct {
	InviteCode string `json:"invite_code" validate:"required,len=8"`
}

type MemberResponse struct {
	ID    string `json:"id"`
	Name  string `json:"name"`
	Email string `json:"email"`
	Role  string `json:"role"`
}

type FamilyResponse struct {
	ID        string           `json:"id"`
	Name      string           `json:"name"`
	HeadID    string           `json:"head_id"`
	Members   []MemberResponse `json:"members"`
	CreatedAt time.Time        `json:"created_at"`
}

type CreateFamilyResponse struct {
	Family  FamilyResponse `json:"family"`
	Message string         `json:"message"`
}

type InviteCodeResponse struct {
	InviteCode string `json:"inviteCode"`
	Message    string `json:"message,omitempty"`
}

type TotalSpendingResponse struct {
	FamilyID string  `json:"familyId"`
	Total    float64 `json:"total"`
}
