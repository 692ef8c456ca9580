package auth

type RegisterRequest struct {
	Name          string `json:"name" binding:"required"`
	Email         string `json:"email" binding:"required,email"`
	Password      string `json:"password" binding:"required,min=6"`
	ContactNumber string `json:"contact_number"`
	FatherName    string `json:"father_name"`
	MotherName    string `json:"mother_name"`
	Gothram       string `json:"gothram"`
	Age           *int   `json:"age"`
	Address       string `json:"address"`
}

type LoginRequest struct {
	Email    string `json:"email" binding:"required,email"`
	Password string `json:"password" binding:"required"`
}

// UpdateProfileRequest arrives as multipart form data; the optional profile
// image is stored by the handler and passed on as a path reference.
type UpdateProfileRequest struct {
	Name          *string `form:"name"`
	ContactNumber *string `form:"contact_number"`
	FatherName    *string `form:"father_name"`
	MotherName    *string `form:"mother_name"`
	Gothram       *string `form:"gothram"`
	Age           *int    `form:"age"`
	Address       *string `form:"address"`
	ProfileImage  *string `form:"-"`
}

type UserResponse struct {
	ID            string  `json:"id"`
	Name          string  `json:"name"`
	Email         string  `json:"email"`
	Role          string  `json:"role"`
	ContactNumber string  `json:"contact_number,omitempty"`
	FatherName    string  `json:"father_name,omitempty"`
	MotherName    string  `json:"mother_name,omitempty"`
	Gothram       string  `json:"gothram,omitempty"`
	Age           *int    `json:"age,omitempty"`
	Address       string  `json:"address,omitempty"`
	ProfileImage  *string `json:"profile_image,omitempty"`
	CreatedAt     string  `json:"created_at"`
}

type AuthResponse struct {
	User  UserResponse `json:"user"`
	Token string       `json:"token"`
}
