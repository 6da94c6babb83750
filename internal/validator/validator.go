// Package validator provides custom validation functions for Gin's binding engine.
package validator

import (
	"regexp"

	"github.com/gin-gonic/gin/binding"
	"github.com/go-playground/validator/v10"

	"bella/internal/models"
)

var (
	isoDateRegex   = regexp.MustCompile(`^\d{4}-\d{2}-\d{2}$`)
	clockTimeRegex = regexp.MustCompile(`^([01]\d|2[0-3]):[0-5]\d$`)
)

// Register registers all custom validators with the Gin binding engine.
func Register() {
	if v, ok := binding.Validator.Engine().(*validator.Validate); ok {
		_ = v.RegisterValidation("rsvp_status", validateRSVPStatus)
		_ = v.RegisterValidation("meal_preference", validateMealPreference)
		_ = v.RegisterValidation("iso_date", validateISODate)
		_ = v.RegisterValidation("clock_time", validateClockTime)
		_ = v.RegisterValidation("planner_view", validatePlannerView)
	}
}

func validateRSVPStatus(fl validator.FieldLevel) bool {
	return models.RSVPStatus(fl.Field().String()).IsValid()
}

func validateMealPreference(fl validator.FieldLevel) bool {
	return models.MealPreference(fl.Field().String()).IsValid()
}

func validateISODate(fl validator.FieldLevel) bool {
	return isoDateRegex.MatchString(fl.Field().String())
}

func validateClockTime(fl validator.FieldLevel) bool {
	return clockTimeRegex.MatchString(fl.Field().String())
}

func validatePlannerView(fl validator.FieldLevel) bool {
	return models.View(fl.Field().String()).IsValid()
}
