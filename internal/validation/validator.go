// Package validation holds the request schemas and the rules they enforce.
//
// Create payloads are validated in full. Update payloads use the same schema
// types but only the fields present in the request are checked, so an empty
// update is always valid.
package validation

import (
	"reflect"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"github.com/shopspring/decimal"
)

var validate = newValidator()

func newValidator() *validator.Validate {
	v := validator.New()

	// Field errors report the JSON name the client sent.
	v.RegisterTagNameFunc(func(fld reflect.StructField) string {
		name := strings.SplitN(fld.Tag.Get("json"), ",", 2)[0]
		if name == "-" || name == "" {
			return fld.Name
		}
		return name
	})

	// Numeric tags (gt, gte, ...) see amounts as float64.
	v.RegisterCustomTypeFunc(func(field reflect.Value) interface{} {
		if a, ok := field.Interface().(Amount); ok {
			f, _ := a.Float64()
			return f
		}
		return nil
	}, Amount{})

	_ = v.RegisterValidation("isodate", isISODate)
	_ = v.RegisterValidation("notfuture", isNotFuture)
	_ = v.RegisterValidation("maxdecimals", hasMaxDecimals)
	return v
}

// Struct validates a create payload: every required field must be present.
func Struct(payload interface{}) error {
	return fromValidator(validate.Struct(payload))
}

// Partial validates an update payload: only non-nil fields are checked.
func Partial(payload interface{}) error {
	return fromValidator(validate.StructPartial(payload, presentFields(payload)...))
}

func presentFields(payload interface{}) []string {
	rv := reflect.Indirect(reflect.ValueOf(payload))
	if rv.Kind() != reflect.Struct {
		return nil
	}
	rt := rv.Type()
	names := make([]string, 0, rt.NumField())
	for i := 0; i < rt.NumField(); i++ {
		f := rv.Field(i)
		switch f.Kind() {
		case reflect.Ptr, reflect.Slice, reflect.Map, reflect.Interface:
			if f.IsNil() {
				continue
			}
		}
		names = append(names, rt.Field(i).Name)
	}
	return names
}

// hasMaxDecimals reports whether a number has at most param decimal places.
// Amounts are checked on their exact decimal value, not the float the
// numeric tags compare.
func hasMaxDecimals(fl validator.FieldLevel) bool {
	places, err := strconv.Atoi(fl.Param())
	if err != nil {
		return false
	}
	exp := -int32(places)
	if parent := reflect.Indirect(fl.Parent()); parent.Kind() == reflect.Struct {
		if raw := reflect.Indirect(parent.FieldByName(fl.StructFieldName())); raw.IsValid() {
			if a, ok := raw.Interface().(Amount); ok {
				return a.Exponent() >= exp || a.Equal(a.Truncate(int32(places)))
			}
		}
	}
	field := fl.Field()
	switch field.Kind() {
	case reflect.Float32, reflect.Float64:
		return decimal.NewFromFloat(field.Float()).Exponent() >= exp
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64:
		return true
	}
	return false
}
