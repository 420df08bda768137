package batch

import (
	"errors"
	"strings"

	"github.com/go-playground/validator/v10"

	"github.com/ytget/yt-batch-downloader/internal/model"
)

// Request is what the user submits with the Download button
type Request struct {
	URLs      []string            `validate:"required,min=1,dive,required"`
	Quality   model.QualityPreset `validate:"required,quality"`
	OutputDir string              `validate:"required"`
}

// fieldErrors maps request fields to user-facing errors, in reporting order
var fieldErrors = []struct {
	field string
	err   error
}{
	{"URLs", ErrNoURLs},
	{"Quality", ErrNoQuality},
	{"OutputDir", ErrNoOutputDir},
}

func newValidator() *validator.Validate {
	v := validator.New(validator.WithRequiredStructEnabled())
	_ = v.RegisterValidation("quality", func(fl validator.FieldLevel) bool {
		q, ok := fl.Field().Interface().(model.QualityPreset)
		return ok && q.IsValid()
	})
	return v
}

func (r Request) normalized() Request {
	r.OutputDir = strings.TrimSpace(r.OutputDir)
	return r
}

// validate returns the first failing field as one of the package errors
func validateRequest(v *validator.Validate, r Request) error {
	err := v.Struct(r)
	if err == nil {
		return nil
	}

	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}

	failed := make(map[string]bool, len(verrs))
	for _, fe := range verrs {
		// dive errors report as URLs[0]
		name := fe.StructField()
		if i := strings.IndexByte(name, '['); i >= 0 {
			name = name[:i]
		}
		failed[name] = true
	}
	for _, fe := range fieldErrors {
		if failed[fe.field] {
			return fe.err
		}
	}
	return err
}
