package budget

type SetBudgetRequest struct {
	LimitAmount float64 `json:"limit_amount" validate:"required,gt=0"`
	Period      string  `json:"period" validate:"required,oneof=daily weekly monthly"`
}

type UpdateBudgetRequest struct {
	LimitAmount float64 `json:"limit_amount" validate:"omitempty,gt=0"`
	Period      string  `json:"period" validate:"omitempty,oneof=daily weekly monthly"`
}

type StatusResponse struct {
	Budget    float64 `json:"budget"`
	Period    string  `json:"period"`
	Spent     float64 `json:"spent"`
	Remaining float64 `json:"remaining"`
	Status    string  `json:"status"`
}
