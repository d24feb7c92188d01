package authority

// CreatePayload registers a new admin or officer account.
type CreatePayload struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	Password  string `json:"password" validate:"required,min=8"`
	StationID *int64 `json:"stationId,omitempty"`
	Role      string `json:"role" validate:"required,authority_role"`
}

// UpdatePayload modifies an existing account. Passwords are not changed
// through this endpoint.
type UpdatePayload struct {
	Name      string `json:"name" validate:"required,max=200"`
	Email     string `json:"email" validate:"required,email"`
	StationID *int64 `json:"stationId,omitempty"`
	Role      string `json:"role" validate:"required,authority_role"`
}
