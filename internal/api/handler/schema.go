package handler

// errorResponse is the standard error envelope returned on all 4xx/5xx
// responses.
type errorResponse struct {
	Error string `json:"error"`
}

type createProjectRequest struct {
	Title       string   `json:"title"        validate:"required"`
	Description string   `json:"description"  validate:"required"`
	Budget      float64  `json:"budget"       validate:"gte=0"`
	Category    string   `json:"category"     validate:"required"`
	InterestIDs []string `json:"interest_ids"`
}

// updateProjectRequest uses pointers so a PATCH only touches present fields.
type updateProjectRequest struct {
	Title       *string  `json:"title,omitempty"`
	Description *string  `json:"description,omitempty"`
	Budget      *float64 `json:"budget,omitempty"      validate:"omitempty,gte=0"`
	Category    *string  `json:"category,omitempty"`
	InterestIDs []string `json:"interest_ids,omitempty"`
}

// updateProfileRequest deliberately has no role field: roles are immutable
// after registration.
type updateProfileRequest struct {
	Firstname *string `json:"firstname,omitempty"`
	Lastname  *string `json:"lastname,omitempty"`
	Password  *string `json:"password,omitempty" validate:"omitempty,min=8"`
}

type createInvestmentRequest struct {
	ProjectID string  `json:"project_id" validate:"required"`
	Amount    float64 `json:"amount"     validate:"required,gt=0"`
}

type interestRequest struct {
	Name string `json:"name" validate:"required"`
}
