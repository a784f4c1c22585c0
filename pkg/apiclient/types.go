package apiclient

// User is the profile record returned by the API
type User struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Email     string `json:"email"`
	CreatedAt string `json:"createdAt"`
}

// Goal is a user-owned objective record
type Goal struct {
	ID          string `json:"id"`
	Title       string `json:"title"`
	Description string `json:"description"`
	Completed   bool   `json:"completed"`
	CreatedAt   string `json:"createdAt"`
	UpdatedAt   string `json:"updatedAt"`
	UserID      string `json:"userId"`
}

// AuthResponse is the login/register response payload
type AuthResponse struct {
	Token string `json:"token"`
	User  *User  `json:"user"`
}
