package handlers

import (
	"context"

	"github.com/go-playground/mold/v4/modifiers"
	"github.com/go-playground/validator/v10"
)

var (
	// formValidator checks `validate` tags on request forms.
	formValidator = validator.New(validator.WithRequiredStructEnabled())
	// formModifier applies `mod` tags (trimming) before validation.
	formModifier = modifiers.New()
)

// normalizeForm trims fields tagged with mod and validates the result.
func normalizeForm(ctx context.Context, form any) error {
	if err := formModifier.Struct(ctx, form); err != nil {
		return err
	}
	return formValidator.Struct(form)
}
