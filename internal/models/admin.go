package models

// Admin is the single back-office principal. The password hash comes from
// configuration; there is no admin collection to manage.
type Admin struct {
	ID       string `json:"id"`
	Username string `json:"username"`
	Email    string `json:"email"`
	Name     string `json:"name"`
	Role     string `json:"role"`
}
