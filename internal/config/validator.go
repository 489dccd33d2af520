package config

import (
	"fmt"
	"reflect"
	"regexp"
	"strings"
	"sync"

	"github.com/go-playground/validator/v10"

	"github.com/alexisbeaulieu97/waypoint/internal/layout"
	"github.com/alexisbeaulieu97/waypoint/internal/routes"
	waypointerrors "github.com/alexisbeaulieu97/waypoint/pkg/errors"
)

var (
	validatorOnce sync.Once
	validateInst  *validator.Validate

	semverPattern    = regexp.MustCompile(`^\d+\.\d+(?:\.\d+)?(?:-[0-9A-Za-z-.]+)?(?:\+[0-9A-Za-z-.]+)?$`)
	routeNamePattern = regexp.MustCompile(`^[A-Za-z][A-Za-z0-9_]*$`)
	schemePattern    = regexp.MustCompile(`^[a-z][a-z0-9+.-]*(?::(?://)?)?$`)
)

var tagMessages = map[string]string{
	"required":     "is required",
	"min":          "needs at least one entry",
	"semver":       "must be a semantic version such as 1.0 or 1.2.3",
	"route_name":   "must start with a letter and contain only letters, digits and underscores",
	"path_pattern": "must be a path pattern such as /devices/:deviceId",
	"length":       "must be a length such as 20rem, 80px or 80",
	"url":          "must be an absolute URL",
	"url_scheme":   "must be a URL scheme such as myapp or myapp://",
	"gte":          "is too small",
}

func validatorInstance() *validator.Validate {
	validatorOnce.Do(func() {
		v := validator.New()

		v.RegisterTagNameFunc(func(fld reflect.StructField) string {
			name := strings.SplitN(fld.Tag.Get("yaml"), ",", 2)[0]
			if name == "-" {
				return ""
			}
			return name
		})

		_ = v.RegisterValidation("semver", func(fl validator.FieldLevel) bool {
			return semverPattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("route_name", func(fl validator.FieldLevel) bool {
			return routeNamePattern.MatchString(fl.Field().String())
		})

		_ = v.RegisterValidation("path_pattern", func(fl validator.FieldLevel) bool {
			return routes.ValidatePattern(fl.Field().String()) == nil
		})

		_ = v.RegisterValidation("length", func(fl validator.FieldLevel) bool {
			_, err := layout.ParseLength(fl.Field().String(), layout.DefaultRem)
			return err == nil
		})

		_ = v.RegisterValidation("url_scheme", func(fl validator.FieldLevel) bool {
			return schemePattern.MatchString(fl.Field().String())
		})

		validateInst = v
	})

	return validateInst
}

// ValidateConfig performs schema and cross-field validation on the document.
// Route name uniqueness is left to the route registry.
func ValidateConfig(doc *Document) error {
	if doc == nil {
		return waypointerrors.NewValidationError("config", "configuration is nil", nil)
	}

	if err := validatorInstance().Struct(doc); err != nil {
		return convertValidationError(err)
	}

	for i, prefix := range doc.Prefixes {
		if strings.TrimSpace(prefix) != prefix {
			return waypointerrors.NewValidationError(fmt.Sprintf("prefixes[%d]", i), "must not carry surrounding whitespace", nil)
		}
	}

	return nil
}

func convertValidationError(err error) error {
	if err == nil {
		return nil
	}

	if ves, ok := err.(validator.ValidationErrors); ok {
		ve := ves[0]
		field := yamlishFieldName(ve)
		msg, known := tagMessages[ve.Tag()]
		if !known {
			msg = fmt.Sprintf("failed validation for tag '%s'", ve.Tag())
		}
		return waypointerrors.NewValidationError(field, msg, err)
	}

	return waypointerrors.NewValidationError("config", err.Error(), err)
}

// yamlishFieldName drops the root type from the namespace, leaving paths such
// as "tabs[1].stack[0].path".
func yamlishFieldName(fe validator.FieldError) string {
	ns := fe.Namespace()
	if i := strings.Index(ns, "."); i >= 0 {
		ns = ns[i+1:]
	}
	return ns
}

func fieldFor(list string, index int, field string) string {
	return fmt.Sprintf("%s[%d].%s", list, index, field)
}
