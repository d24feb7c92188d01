package validator

import (
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

// Validator instance
var validate *validator.Validate

func init() {
	validate = validator.New()

	// Use JSON tag names in error messages
	validate.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})

	// Register custom validations
	registerCustomValidations()
}

func registerCustomValidations() {
	// Admin review status validation
	validate.RegisterValidation("admin_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"PENDING", "APPROVED", "REJECTED", "ASSIGNED"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Police handling status validation
	validate.RegisterValidation("police_status", func(fl validator.FieldLevel) bool {
		status := fl.Field().String()
		validStatuses := []string{"NOT_VIEWED", "VIEWED", "IN_PROGRESS", "ACTION_TAKEN", "RESOLVED", "CLOSED"}
		for _, s := range validStatuses {
			if status == s {
				return true
			}
		}
		return false
	})

	// Urgency validation
	validate.RegisterValidation("urgency", func(fl validator.FieldLevel) bool {
		urgency := fl.Field().String()
		validLevels := []string{"LOW", "MEDIUM", "HIGH", "CRITICAL", ""}
		for _, u := range validLevels {
			if urgency == u {
				return true
			}
		}
		return false
	})

	// Authority role validation
	validate.RegisterValidation("authority_role", func(fl validator.FieldLevel) bool {
		role := fl.Field().String()
		validRoles := []string{"ADMIN", "POLICE"}
		for _, r := range validRoles {
			if role == r {
				return true
			}
		}
		return false
	})
}

// Validate validates a struct and returns a map of field errors
func Validate(s interface{}) map[string]string {
	err := validate.Struct(s)
	if err == nil {
		return nil
	}

	errors := make(map[string]string)
	for _, err := range err.(validator.ValidationErrors) {
		field := err.Field()
		switch err.Tag() {
		case "required":
			errors[field] = "This field is required"
		case "email":
			errors[field] = "Invalid email format"
		case "min":
			errors[field] = "Value is too short (min: " + err.Param() + ")"
		case "max":
			errors[field] = "Value is too long (max: " + err.Param() + ")"
		case "gte":
			errors[field] = "Value must be at least " + err.Param()
		case "lte":
			errors[field] = "Value must be at most " + err.Param()
		case "latitude":
			errors[field] = "Invalid latitude"
		case "longitude":
			errors[field] = "Invalid longitude"
		case "admin_status":
			errors[field] = "Invalid status. Must be: PENDING, APPROVED, REJECTED, or ASSIGNED"
		case "police_status":
			errors[field] = "Invalid status. Must be: NOT_VIEWED, VIEWED, IN_PROGRESS, ACTION_TAKEN, RESOLVED, or CLOSED"
		case "urgency":
			errors[field] = "Invalid urgency. Must be: LOW, MEDIUM, HIGH, or CRITICAL"
		case "authority_role":
			errors[field] = "Invalid role. Must be: ADMIN or POLICE"
		default:
			errors[field] = "Invalid value"
		}
	}

	return errors
}

// ValidateVar validates a single variable
func ValidateVar(field interface{}, tag string) error {
	return validate.Var(field, tag)
}
