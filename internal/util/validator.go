package util

import (
	"github.com/go-playground/validator/v10"

	"github.com/codeshare-dev/backend/internal/language"
)

func NewValidator() *validator.Validate {
	validate := validator.New()
	// the registry owns the supported set; the tag only defers to it
	_ = validate.RegisterValidation("supportedlang", supportedLang)

	return validate
}

func supportedLang(fl validator.FieldLevel) bool {
	return language.IsSupported(fl.Field().String())
}
