package model

type CreateUserDTO struct {
	Name      string   `json:"name" validate:"required,max=100"`
	Email     string   `json:"email" validate:"required,email"`
	Age       *int32   `json:"age,omitempty" validate:"omitnil,gte=1,lte=120"`
	Salary    *float64 `json:"salary,omitempty" validate:"omitnil,gte=0"`
	IsActive  *bool    `json:"is_active,omitempty"`
	BirthDate *string  `json:"birth_date,omitempty" validate:"omitnil,datetime=2006-01-02"`
	Bio       *string  `json:"bio,omitempty"`
	Role      *string  `json:"role,omitempty" validate:"omitnil,oneof=admin user moderator"`
}
