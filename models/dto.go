package models

type RegisterRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required,min=3"`
}

type LoginRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required"`
}

type UpdateProfileRequest struct {
	FullName string `json:"full_name" form:"full_name"`
}

type ChangePasswordRequest struct {
	OldPassword string `json:"old_password" form:"old_password" binding:"required"`
	NewPassword string `json:"new_password" form:"new_password" binding:"required,min=6"`
}

type CreateUserRequest struct {
	Email    string `json:"email" form:"email" binding:"required,email"`
	Password string `json:"password" form:"password" binding:"required,min=6"`
	FullName string `json:"full_name" form:"full_name" binding:"required"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=customer admin"`
}

type UpdateUserRequest struct {
	Email    string `json:"email" form:"email"`
	FullName string `json:"full_name" form:"full_name"`
	Role     string `json:"role" form:"role" binding:"omitempty,oneof=customer admin"`
}

type CreateStockItemRequest struct {
	Title       string  `json:"title" form:"title" binding:"required,max=180"`
	Description string  `json:"description" form:"description" binding:"max=500"`
	CategoryID  int     `json:"category_id" form:"category_id" binding:"required"`
	Price       float64 `json:"price" form:"price" binding:"required,gte=0"`
	Quantity    int     `json:"quantity" form:"quantity" binding:"gte=0"`
	ImageURL    string  `json:"image_url" form:"image_url"`
}

type UpdateStockItemRequest struct {
	Title       string   `json:"title" form:"title" binding:"omitempty,max=180"`
	Description *string  `json:"description" form:"description"`
	CategoryID  int      `json:"category_id" form:"category_id"`
	Price       *float64 `json:"price" form:"price" binding:"omitempty,gte=0"`
	Quantity    *int     `json:"quantity" form:"quantity" binding:"omitempty,gte=0"`
	ImageURL    string   `json:"image_url" form:"image_url"`
}

type CategoryRequest struct {
	Name string `json:"name" form:"name" binding:"required,max=120"`
}

type SubscribeRequest struct {
	Email string `json:"email" form:"email" binding:"required,email"`
}

type AddToCartRequest struct {
	ProductID int `json:"product_id" form:"product_id" binding:"required"`
	Quantity  int `json:"quantity" form:"quantity"`
}

type UpdateCartLineRequest struct {
	Quantity int `json:"quantity" form:"quantity" binding:"required"`
}
