package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Name     string `json:"name"`
	FullName string `json:"fullName"`
	Email    string `json:"email"`
	Password string `json:"password"`
}

// DisplayName accepts either "name" or the older "fullName" field.
func (r SignUpRequest) DisplayName() string {
	if r.Name != "" {
		return r.Name
	}
	return r.FullName
}

type UpdateAccountRequest struct {
	Name     *string `json:"name" binding:"omitempty,min=2,max=60"`
	Password *string `json:"password" binding:"omitempty,min=6"`
}
