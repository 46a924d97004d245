package request

import (
	"errors"
	"reflect"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/go-playground/validator/v10/non-standard/validators"
	"github.com/shopspring/decimal"

	"github.com/phrazzld/crm-mobile-api/internal/domain"
)

// Validator runs struct rules and renders failures as field messages.
type Validator struct {
	validate *validator.Validate
}

// NewValidator creates a Validator with the CRM custom rules registered.
func NewValidator() *Validator {
	v := validator.New(validator.WithRequiredStructEnabled())

	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name, _, _ := strings.Cut(fld.Tag.Get("json"), ",")
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	// Numeric rules (gt, gte, lte) see decimals as floats.
	v.RegisterCustomTypeFunc(func(field reflect.Value) any {
		if d, ok := field.Interface().(decimal.Decimal); ok {
			f, _ := d.Float64()
			return f
		}
		return nil
	}, decimal.Decimal{})

	mustRegister(v, "model_type", func(fl validator.FieldLevel) bool {
		return domain.ModelType(fl.Field().String()).Valid()
	})
	mustRegister(v, "proposal_model_type", func(fl validator.FieldLevel) bool {
		t := domain.ModelType(fl.Field().String())
		for _, allowed := range domain.ProposalTargets {
			if t == allowed {
				return true
			}
		}
		return false
	})
	mustRegister(v, "date", func(fl validator.FieldLevel) bool {
		_, err := time.Parse(domain.DateLayout, fl.Field().String())
		return err == nil
	})
	mustRegister(v, "timestamp", func(fl validator.FieldLevel) bool {
		_, err := parseTimestamp(fl.Field().String())
		return err == nil
	})
	mustRegister(v, "notblank", validators.NotBlank)

	// Update fields that a client may clear by sending "".
	for tag, rule := range optionalRules {
		mustRegister(v, tag, blankOr(v, rule))
	}

	return &Validator{validate: v}
}

// optionalRules maps each optional_* tag to the rule a non-empty value
// must pass.
var optionalRules = map[string]string{
	"optional_email":      "email",
	"optional_url":        "url",
	"optional_currency":   "len=3,alpha",
	"optional_date":       "date",
	"optional_model_type": "model_type",
}

func blankOr(v *validator.Validate, rule string) validator.Func {
	return func(fl validator.FieldLevel) bool {
		s := fl.Field().String()
		return s == "" || v.Var(s, rule) == nil
	}
}

func mustRegister(v *validator.Validate, tag string, fn validator.Func) {
	if err := v.RegisterValidation(tag, fn); err != nil {
		panic(err)
	}
}

// Struct validates s and returns field messages, or nil when s is valid.
func (v *Validator) Struct(s any) (map[string][]string, error) {
	err := v.validate.Struct(s)
	if err == nil {
		return nil, nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return nil, err
	}
	out := make(map[string][]string, len(verrs))
	for _, fe := range verrs {
		key := fieldKey(fe)
		out[key] = append(out[key], message(fe))
	}
	return out, nil
}

// fieldKey renders a validator namespace without the struct name, so
// "CreateEstimateRequest.items[0].rate" becomes "items.0.rate".
func fieldKey(fe validator.FieldError) string {
	ns := fe.Namespace()
	if _, rest, ok := strings.Cut(ns, "."); ok {
		ns = rest
	}
	r := strings.NewReplacer("[", ".", "]", "")
	return r.Replace(ns)
}
