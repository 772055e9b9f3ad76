package rekuest

import (
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	enTranslations "github.com/go-playground/validator/v10/translations/en"
	"github.com/gofiber/fiber/v2"
	"github.com/rs/zerolog/log"
	"github.com/samber/lo"

	"github.com/codeshare-dev/backend/internal/language"
	"github.com/codeshare-dev/backend/internal/pkg/cserr"
	"github.com/codeshare-dev/backend/internal/util"
	"github.com/codeshare-dev/backend/internal/util/i18n"
)

var (
	Validate = util.NewValidator()

	entr ut.Translator
)

func init() {
	entr, _ = i18n.UT.GetTranslator("en")
	if err := enTranslations.RegisterDefaultTranslations(Validate, entr); err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation")
	}

	err := Validate.RegisterTranslation("supportedlang", entr, func(ut ut.Translator) error {
		return nil
	}, func(ut ut.Translator, fe validator.FieldError) string {
		return fe.Field() + " must be one of the supported languages"
	})
	if err != nil {
		log.Warn().Err(err).Str("locale", "en").Msg("could not register translation for function supportedlang")
	}
}

type ErrorResponse struct {
	Field     string `json:"field,omitempty"`
	Violation string `json:"violation"`
	Message   string `json:"message"`
}

// translate translates errors into ErrorResponses
func translate(ve validator.ValidationErrors) []*ErrorResponse {
	trans := []*ErrorResponse{}

	for i := 0; i < len(ve); i++ {
		fe := ve[i]

		trans = append(trans, &ErrorResponse{
			Field:     fe.Field(),
			Violation: fe.Tag(),
			Message:   fe.Translate(entr),
		})
	}

	return trans
}

func validateStruct(s any) []*ErrorResponse {
	err := Validate.Struct(s)
	if err != nil {
		errs, ok := err.(validator.ValidationErrors)
		if !ok {
			panic(err)
		}
		return translate(errs)
	}
	return nil
}

// ValidBody will get the body from *fiber.Ctx using fiber#BodyParser(),
// and validate it using the validator singleton. If the validation passed it
// will write the unmarshalled body to dest and return a nil, otherwise it will
// return an error. Notice that dest shall always be a pointer.
func ValidBody(ctx *fiber.Ctx, dest any) error {
	if err := ctx.BodyParser(dest); err != nil {
		return cserr.ErrInvalidReq.Msg("invalid request: %s", err)
	}

	return ValidStruct(ctx, dest)
}

func ValidStruct(ctx *fiber.Ctx, dest any) error {
	if errs := validateStruct(dest); errs != nil {
		return invalid(errs)
	}

	return nil
}

// invalid wraps translated violations into the uniform error shape. When the
// cause is language-related, the full supported set rides along so the caller
// can self-correct.
func invalid(errs []*ErrorResponse) error {
	extras := cserr.Extras{
		"violations": errs,
	}
	if lo.SomeBy(errs, func(e *ErrorResponse) bool { return e.Violation == "supportedlang" }) {
		extras["supportedLanguages"] = language.SupportedTags()
	}

	return cserr.ErrInvalidReq.
		Msg("invalid request: %s", errs[0].Message).
		WithExtras(extras)
}
