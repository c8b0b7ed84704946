package domain

type Credentials struct {
	Email    string `json:"email"`
	Password string `json:"password"`
}
