package account

type CredentialsInput struct {
	Email    string `json:"email" form:"email" binding:"required,email" example:"admin@example.com"`
	Password string `json:"password" form:"password" binding:"required,min=6" example:"secret123"`
}
