// Package validator registers the request validation tags used by handlers.
package validator

import (
	"humanness-tasks/internal/models"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"
)

// validateScreen validates that a string names a flow screen
func validateScreen(fl validator.FieldLevel) bool {
	return models.Screen(fl.Field().String()).IsValid()
}

// validateTaskType validates that a string names a task type
func validateTaskType(fl validator.FieldLevel) bool {
	return models.TaskType(fl.Field().String()).IsValid()
}

// Register adds the custom validators to v.
func Register(v *validator.Validate) {
	_ = v.RegisterValidation("screen", validateScreen)
	_ = v.RegisterValidation("tasktype", validateTaskType)
}

// RegisterCustomValidators registers all custom validators with gin's validator
func RegisterCustomValidators() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		Register(v)
	}
}
