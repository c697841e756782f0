// Package types provides type definitions for structured data used throughout the SPOT style-lint engine.
//
//nolint:revive // types is a standard Go package name pattern
package types

import (
	"github.com/go-playground/validator/v10"
)

// StylePack represents the brand style rules a text is linted against.
// All fields are optional; missing fields behave as empty collections.
// A StylePack is never mutated by the linter and may be shared across
// any number of concurrent lint calls.
type StylePack struct {
	BrandVoice   string            `json:"brand_voice,omitempty"`   // Advisory descriptor, not machine-enforced
	ReadingLevel string            `json:"reading_level,omitempty"` // Target band label, e.g. "Grade 8-10"
	MustUse      []string          `json:"must_use,omitempty" validate:"omitempty,dive,required"`
	MustAvoid    []string          `json:"must_avoid,omitempty" validate:"omitempty,dive,required"`
	Terminology  map[string]string `json:"terminology,omitempty" validate:"omitempty,dive,keys,required,endkeys,required"`
}

// Validate validates the StylePack using the validator.
// Empty collections are fine; blank terms inside them are not.
func (p *StylePack) Validate() error {
	validate := validator.New()
	return validate.Struct(p)
}
