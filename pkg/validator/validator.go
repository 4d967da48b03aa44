package validator

import (
	"errors"
	"reflect"
	"regexp"
	"strings"
	"time"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

// moneyPattern is a plain unsigned decimal, no exponent or sign
var moneyPattern = regexp.MustCompile(`^\d+(\.\d+)?$`)

// isoLayouts are the accepted ISO-8601 forms for date fields
var isoLayouts = []string{
	time.RFC3339Nano,
	"2006-01-02T15:04:05",
	"2006-01-02",
}

type CustomValidator struct {
	validator *validator.Validate
}

func NewValidator() *CustomValidator {
	v := validator.New(validator.WithRequiredStructEnabled())

	// Report fields by their JSON names so clients can map errors back to inputs
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" {
			return ""
		}
		if name == "" {
			return fld.Name
		}
		return name
	})

	_ = v.RegisterValidation("money", validateMoney)
	_ = v.RegisterValidation("iso8601", validateISO8601)

	return &CustomValidator{
		validator: v,
	}
}

func (cv *CustomValidator) Validate(i interface{}) error {
	return cv.validator.Struct(i)
}

func (cv *CustomValidator) FormatValidationErrors(err error) map[string]string {
	messages := make(map[string]string)

	var validationErrors validator.ValidationErrors
	if errors.As(err, &validationErrors) {
		for _, e := range validationErrors {
			field := e.Field()
			switch e.Tag() {
			case "required":
				messages[field] = field + " is required"
			case "email":
				messages[field] = field + " must be a valid email address"
			case "min":
				messages[field] = field + " must be at least " + e.Param() + " characters"
			case "max":
				messages[field] = field + " must be at most " + e.Param() + " characters"
			case "gte":
				messages[field] = field + " must be greater than or equal to " + e.Param()
			case "lte":
				messages[field] = field + " must be less than or equal to " + e.Param()
			case "oneof":
				messages[field] = field + " must be one of: " + strings.ReplaceAll(e.Param(), " ", ", ")
			case "money":
				messages[field] = field + " must be a positive decimal amount with at most two fraction digits"
			case "iso8601":
				messages[field] = field + " must be an ISO-8601 date"
			default:
				messages[field] = field + " is invalid"
			}
		}
	}

	return messages
}

// ParseMoney parses a positive decimal string with at most two fraction digits
func ParseMoney(s string) (decimal.Decimal, error) {
	s = strings.TrimSpace(s)
	if !moneyPattern.MatchString(s) {
		return decimal.Zero, errors.New("amount must be a decimal number like 125.00")
	}
	d, err := decimal.NewFromString(s)
	if err != nil {
		return decimal.Zero, err
	}
	if !d.IsPositive() {
		return decimal.Zero, errors.New("amount must be positive")
	}
	if d.Exponent() < -2 && !d.Equal(d.Round(2)) {
		return decimal.Zero, errors.New("amount has more than two fraction digits")
	}
	return d, nil
}

// ParseISODate parses an ISO-8601 date or date-time
func ParseISODate(s string) (time.Time, error) {
	var lastErr error
	for _, layout := range isoLayouts {
		t, err := time.Parse(layout, strings.TrimSpace(s))
		if err == nil {
			return t, nil
		}
		lastErr = err
	}
	return time.Time{}, lastErr
}

func validateMoney(fl validator.FieldLevel) bool {
	_, err := ParseMoney(fl.Field().String())
	return err == nil
}

func validateISO8601(fl validator.FieldLevel) bool {
	_, err := ParseISODate(fl.Field().String())
	return err == nil
}
