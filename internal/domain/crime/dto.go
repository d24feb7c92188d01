package crime

// TypePayload creates or updates a crime type.
type TypePayload struct {
	Name       string `json:"name" validate:"required,max=200"`
	CategoryID int64  `json:"categoryId" validate:"required"`
}

// CategoryPayload creates or updates a crime category.
type CategoryPayload struct {
	Name string `json:"name" validate:"required,max=200"`
}
