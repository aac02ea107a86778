package request

type RegisterRequest struct {
	Username          string `json:"username" validate:"required,min=3,max=150"`
	Password          string `json:"password" validate:"required,min=6"`
	Bio               string `json:"bio,omitempty" validate:"omitempty,max=700"`
	AgreementAccepted bool   `json:"agreement_accepted"`
}

type LoginRequest struct {
	Username string `json:"username" validate:"required"`
	Password string `json:"password" validate:"required"`
}

type ProfileUpdateRequest struct {
	Bio               *string `json:"bio,omitempty" validate:"omitempty,max=700"`
	AgreementAccepted *bool   `json:"agreement_accepted,omitempty"`
	Avatar            *string `json:"avatar,omitempty" validate:"omitempty,max=255"`
}

type SessionValueRequest struct {
	Key   string `json:"key" validate:"required,max=100"`
	Value string `json:"value" validate:"required,max=1000"`
}
