package services

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"slices"
	"strings"

	"github.com/andrewpaige1/flashcard-api/models"
	"github.com/go-playground/validator/v10"
)

// MaxLevelLength matches the width of the level column.
const MaxLevelLength = 10

var requiredFields = []string{"chinese", "pinyin", "vietnamese", "example", "example_vi"}

// Validator checks flashcard payloads field by field. It only looks at
// structure, never at the language of the content.
type Validator struct {
	validate *validator.Validate
}

func NewValidator() *Validator {
	v := validator.New()
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		return name
	})
	return &Validator{validate: v}
}

// Validate decodes one candidate and returns every problem with it.
// An empty slice means the returned input is valid.
func (v *Validator) Validate(raw json.RawMessage) (models.FlashcardInput, []string) {
	var input models.FlashcardInput

	var fields map[string]any
	if err := json.Unmarshal(raw, &fields); err != nil || fields == nil {
		return input, []string{`"value" must be of type object`}
	}

	problems := make(map[string]string, len(requiredFields))
	values := make(map[string]string, len(requiredFields))
	for _, name := range requiredFields {
		value, ok := fields[name]
		if !ok {
			continue
		}
		s, isString := value.(string)
		if !isString {
			problems[name] = fmt.Sprintf("%q must be a string", name)
			continue
		}
		values[name] = s
	}

	input = models.FlashcardInput{
		Chinese:    values["chinese"],
		Pinyin:     values["pinyin"],
		Vietnamese: values["vietnamese"],
		Example:    values["example"],
		ExampleVi:  values["example_vi"],
	}

	if err := v.validate.Struct(input); err != nil {
		var verrs validator.ValidationErrors
		if !errors.As(err, &verrs) {
			return input, []string{err.Error()}
		}
		for _, fe := range verrs {
			name := fe.Field()
			if _, seen := problems[name]; seen {
				continue
			}
			if _, present := fields[name]; present {
				problems[name] = fmt.Sprintf("%q is not allowed to be empty", name)
			} else {
				problems[name] = fmt.Sprintf("%q is required", name)
			}
		}
	}

	var errs []string
	for _, name := range requiredFields {
		if msg, ok := problems[name]; ok {
			errs = append(errs, msg)
		}
	}
	errs = append(errs, unknownFields(fields)...)

	return input, errs
}

// ValidateInput checks an already decoded flashcard, as read from an import
// file where absent and empty fields both decode to "".
func (v *Validator) ValidateInput(input models.FlashcardInput) []string {
	err := v.validate.Struct(input)
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return []string{err.Error()}
	}
	msgs := make([]string, 0, len(verrs))
	for _, fe := range verrs {
		msgs = append(msgs, fmt.Sprintf("%q is required", fe.Field()))
	}
	return msgs
}

// ValidateLevel checks the level path segment.
func (v *Validator) ValidateLevel(level string) error {
	err := v.validate.Var(level, fmt.Sprintf("required,max=%d", MaxLevelLength))
	if err == nil {
		return nil
	}
	detail := fmt.Sprintf(`"level" must be between 1 and %d characters`, MaxLevelLength)
	return &ValidationError{Message: "Invalid level", Details: []string{detail}}
}

func unknownFields(fields map[string]any) []string {
	var unknown []string
	for name := range fields {
		if !slices.Contains(requiredFields, name) {
			unknown = append(unknown, name)
		}
	}
	slices.Sort(unknown)

	msgs := make([]string, len(unknown))
	for i, name := range unknown {
		msgs[i] = fmt.Sprintf("%q is not allowed", name)
	}
	return msgs
}
