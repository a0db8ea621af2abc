package dto

type LoginDTO struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}

type UpdatePasswordDTO struct {
	CurrentPassword string `json:"currentPassword" binding:"required"`
	NewPassword     string `json:"newPassword" binding:"required,min=6"`
}

type SetSecurityQuestionDTO struct {
	Question        string `json:"question"`
	Answer          string `json:"answer"`
	CurrentPassword string `json:"currentPassword"`
}

type SecurityEmailDTO struct {
	Email string `json:"email"`
}

type VerifySecurityAnswerDTO struct {
	Email  string `json:"email"`
	Answer string `json:"answer"`
}

type ResetPasswordDTO struct {
	Token       string `json:"token"`
	NewPassword string `json:"newPassword"`
	Answer      string `json:"answer"`
}

type VerifyTokenDTO struct {
	Token string `json:"token"`
}
