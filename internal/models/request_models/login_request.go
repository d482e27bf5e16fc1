package request_models

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

type SignUpRequest struct {
	Email       string `json:"email" binding:"required,email"`
	Password    string `json:"password" binding:"required,min=4,max=72"`
	DisplayName string `json:"name" binding:"required"`
	Role        string `json:"role" binding:"required,oneof=customer business"`
}
