package model

import (
	"errors"
	"fmt"
	"reflect"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"
)

var (
	fieldValidatorOnce sync.Once
	fieldValidatorInst *validator.Validate
)

// Validate reports structural problems in the quiz. All problems are returned
// together via errors.Join; nil means the quiz is renderable by the built-in
// renderers.
func (q Quiz) Validate() error {
	var errs []error
	if len(q.Questions) == 0 {
		errs = append(errs, errors.New("quiz has no questions"))
	}
	if err := fieldValidator().Struct(q); err != nil {
		errs = append(errs, fieldErrors(err)...)
	}

	uids := make(map[string]int, len(q.Questions))
	for i, question := range q.Questions {
		number := q.StartNumber() + i
		if err := question.Validate(); err != nil {
			errs = append(errs, fmt.Errorf("question %d: %w", number, err))
		}
		uid := strings.TrimSpace(question.UID)
		if uid == "" {
			continue
		}
		if prev, ok := uids[uid]; ok {
			errs = append(errs, fmt.Errorf("question %d: uid %q already used by question %d", number, uid, prev))
			continue
		}
		uids[uid] = number
	}
	return errors.Join(errs...)
}

// Validate checks a single question against its variant's rules.
func (q Question) Validate() error {
	kind := q.EffectiveKind()
	if !kind.Known() {
		return fmt.Errorf("unknown kind %q", q.Kind)
	}
	if strings.TrimSpace(q.Text) == "" {
		return errors.New("text is required")
	}
	if err := fieldValidator().Struct(q); err != nil {
		return errors.Join(fieldErrors(err)...)
	}

	switch kind {
	case KindMultipleChoice:
		if len(q.Answers) == 0 {
			return errors.New("multiple-choice question has no answers")
		}
		if n := q.CorrectAnswers(); n != 1 {
			return fmt.Errorf("multiple-choice question needs exactly one correct answer, has %d", n)
		}
	case KindSelectMultiple:
		if len(q.Answers) == 0 {
			return errors.New("select-multiple question has no answers")
		}
		if q.CorrectAnswers() == 0 {
			return errors.New("select-multiple question has no correct answers")
		}
	case KindFillIn:
		if q.CorrectAnswers() == 0 {
			return errors.New("fill-in question has no accepted answers")
		}
	}
	return nil
}

// fieldValidator checks the `validate` struct tags. Field names in messages
// follow the json tags so they match what authors write in quiz files.
func fieldValidator() *validator.Validate {
	fieldValidatorOnce.Do(func() {
		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(func(field reflect.StructField) string {
			name := strings.SplitN(field.Tag.Get("json"), ",", 2)[0]
			switch name {
			case "-":
				return ""
			case "":
				return field.Name
			}
			return name
		})
		fieldValidatorInst = v
	})
	return fieldValidatorInst
}

func fieldErrors(err error) []error {
	var invalid validator.ValidationErrors
	if !errors.As(err, &invalid) {
		return []error{err}
	}
	out := make([]error, 0, len(invalid))
	for _, fe := range invalid {
		out = append(out, errors.New(describeFieldError(fe)))
	}
	return out
}

func describeFieldError(fe validator.FieldError) string {
	name := fe.Namespace()
	if idx := strings.Index(name, "."); idx >= 0 {
		name = name[idx+1:]
	}
	switch fe.Tag() {
	case "required":
		return name + " is required"
	case "gte":
		return fmt.Sprintf("%s must be >= %s", name, fe.Param())
	default:
		return fmt.Sprintf("%s fails %q", name, fe.Tag())
	}
}
