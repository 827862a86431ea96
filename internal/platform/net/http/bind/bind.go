// Package bind decodes JSON request bodies and validates them with
// go-playground/validator, reporting failures as coded project errors
package bind

import (
	"encoding/json"
	"errors"
	"io"
	"net/http"
	"reflect"
	"strings"
	"sync"

	perr "prlens/internal/platform/errors"
	"prlens/internal/platform/logger"
	pstrings "prlens/internal/platform/strings"

	"github.com/go-playground/locales/en"
	ut "github.com/go-playground/universal-translator"
	"github.com/go-playground/validator/v10"
	en_translations "github.com/go-playground/validator/v10/translations/en"
)

// ValidatorSvc holds the validator and its english translator
type ValidatorSvc struct {
	Validator  *validator.Validate
	Translator ut.Translator
}

var (
	vOnce sync.Once
	vSvc  *ValidatorSvc
)

// Get returns the validator singleton, building it on first use
func Get() *ValidatorSvc {
	vOnce.Do(func() {
		loc := en.New()
		trans, _ := ut.New(loc, loc).GetTranslator("en")

		v := validator.New(validator.WithRequiredStructEnabled())
		v.RegisterTagNameFunc(jsonName)
		_ = en_translations.RegisterDefaultTranslations(v, trans)

		translate(v, trans, "min", "{0} must be at least {1}")
		translate(v, trans, "max", "{0} must be at most {1}")
		_ = v.RegisterValidation("repo_name", repoName)
		translate(v, trans, "repo_name", "{0} must look like owner/name")
		_ = v.RegisterValidation("repo_names", repoNames)
		translate(v, trans, "repo_names", "{0} must be a comma separated list of owner/name")

		vSvc = &ValidatorSvc{Validator: v, Translator: trans}
	})
	return vSvc
}

// jsonName makes validation messages use the json field names clients send
func jsonName(f reflect.StructField) string {
	tag := f.Tag.Get("json")
	if i := strings.IndexByte(tag, ','); i >= 0 {
		tag = tag[:i]
	}
	if tag == "" || tag == "-" {
		return f.Name
	}
	return tag
}

// repoName accepts "owner/name" with both parts non blank
func repoName(fl validator.FieldLevel) bool { return isRepoName(fl.Field().String()) }

// repoNames accepts one or more repo names separated by commas
func repoNames(fl validator.FieldLevel) bool {
	parts := pstrings.SplitCSV(fl.Field().String())
	for _, p := range parts {
		if !isRepoName(p) {
			return false
		}
	}
	return len(parts) > 0
}

func isRepoName(s string) bool {
	owner, name, ok := strings.Cut(strings.TrimSpace(s), "/")
	return ok && owner != "" && name != "" && !strings.Contains(name, "/")
}

// translate registers a message with {0} the field and {1} the tag param
func translate(v *validator.Validate, trans ut.Translator, tag, text string) {
	_ = v.RegisterTranslation(tag, trans,
		func(t ut.Translator) error { return t.Add(tag, text, true) },
		func(t ut.Translator, fe validator.FieldError) string {
			msg, _ := t.T(tag, fe.Field(), fe.Param())
			return msg
		},
	)
}

// JSONOptions controls parsing
type JSONOptions struct {
	MaxBytes        int64 // default 1MB
	DisallowUnknown bool  // default true
	RequireBody     bool  // default false, an empty body decodes to the zero value
}

func defaultJSONOptions() JSONOptions {
	return JSONOptions{MaxBytes: 1 << 20, DisallowUnknown: true}
}

// ParseJSON decodes a T from the body and validates it. Decode failures are
// ErrorCodeJSON, rule failures ErrorCodeValidation with the offending field
func ParseJSON[T any](r *http.Request, opts ...JSONOptions) (T, error) {
	var zero T
	o := defaultJSONOptions()
	if len(opts) > 0 {
		o = opts[0]
	}
	defer func() {
		if err := r.Body.Close(); err != nil {
			logger.C(r.Context()).Warn().Err(err).Msg("close request body")
		}
	}()

	body := io.Reader(r.Body)
	if o.MaxBytes > 0 {
		body = io.LimitReader(r.Body, o.MaxBytes+1)
	}
	raw, err := io.ReadAll(body)
	if err != nil {
		return zero, perr.Wrap(err, perr.ErrorCodeJSON, "read body")
	}
	if o.MaxBytes > 0 && int64(len(raw)) > o.MaxBytes {
		return zero, perr.JSONErrf("body exceeds %d bytes", o.MaxBytes)
	}

	var dst T
	if len(strings.TrimSpace(string(raw))) == 0 {
		if o.RequireBody {
			return zero, perr.JSONErrf("empty body")
		}
	} else {
		dec := json.NewDecoder(strings.NewReader(string(raw)))
		if o.DisallowUnknown {
			dec.DisallowUnknownFields()
		}
		if err := dec.Decode(&dst); err != nil {
			return zero, perr.JSONErrf("invalid JSON: %v", err)
		}
		if dec.More() {
			return zero, perr.JSONErrf("unexpected trailing data")
		}
	}

	if err := Validate(dst); err != nil {
		return zero, err
	}
	return dst, nil
}

// Validate runs struct rules on v; non struct values pass
func Validate(v any) error {
	err := Get().Validator.Struct(v)
	if err == nil {
		return nil
	}
	var inv *validator.InvalidValidationError
	if errors.As(err, &inv) {
		if rv := reflect.ValueOf(v); rv.Kind() != reflect.Struct {
			return nil
		}
		logger.Get().Error().Err(inv).Msg("validator internal error")
		return perr.Internalf("validation error")
	}
	field, msg := FieldAndMessage(err)
	return perr.WithField(perr.Newf(perr.ErrorCodeValidation, "%s", msg), field)
}

// FieldAndMessage returns the first failing field and its translated message
func FieldAndMessage(err error) (field, message string) {
	var verrs validator.ValidationErrors
	if errors.As(err, &verrs) && len(verrs) > 0 {
		return verrs[0].Field(), verrs[0].Translate(Get().Translator)
	}
	if err == nil {
		return "", ""
	}
	return "", err.Error()
}
