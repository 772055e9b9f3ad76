package types

type FormatRequest struct {
	Code     string `json:"code" validate:"required"`
	Language string `json:"language" validate:"required,supportedlang"`
}

type FormatResponse struct {
	FormattedCode string `json:"formattedCode"`
	Success       bool   `json:"success"`
}
