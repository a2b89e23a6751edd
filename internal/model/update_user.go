package model

type UpdateUserDTO struct {
	Name      *string  `json:"name,omitempty" validate:"omitnil,min=1,max=100"`
	Email     *string  `json:"email,omitempty" validate:"omitnil,min=1,email"`
	Age       *int32   `json:"age,omitempty" validate:"omitnil,gte=1,lte=120"`
	Salary    *float64 `json:"salary,omitempty" validate:"omitnil,gte=0"`
	IsActive  *bool    `json:"is_active,omitempty"`
	BirthDate *string  `json:"birth_date,omitempty" validate:"omitnil,datetime=2006-01-02"`
	Bio       *string  `json:"bio,omitempty"`
	Role      *string  `json:"role,omitempty" validate:"omitnil,oneof=admin user moderator"`
}

// UpdatedFields lists the names of the fields present in the request,
// in declaration order.
func (u *UpdateUserDTO) UpdatedFields() []string {
	fields := []string{}
	if u.Name != nil {
		fields = append(fields, "name")
	}
	if u.Email != nil {
		fields = append(fields, "email")
	}
	if u.Age != nil {
		fields = append(fields, "age")
	}
	if u.Salary != nil {
		fields = append(fields, "salary")
	}
	if u.IsActive != nil {
		fields = append(fields, "is_active")
	}
	if u.BirthDate != nil {
		fields = append(fields, "birth_date")
	}
	if u.Bio != nil {
		fields = append(fields, "bio")
	}
	if u.Role != nil {
		fields = append(fields, "role")
	}
	return fields
}
