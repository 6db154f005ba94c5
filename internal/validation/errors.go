package validation

import (
	"encoding/json"
	"errors"
	"fmt"
	"reflect"
	"strings"

	"github.com/go-playground/validator/v10"
)

const (
	summaryDados  = "Dados inválidos"
	summaryFiltro = "Parâmetro de filtro inválido"
	summaryID     = "ID inválido"
)

// FieldError is one violated rule.
type FieldError struct {
	Campo    string `json:"campo"`
	Mensagem string `json:"mensagem"`
}

// Error aggregates every rule a payload violated.
type Error struct {
	Summary string
	Fields  []FieldError
}

func (e *Error) Error() string {
	msgs := make([]string, len(e.Fields))
	for i, f := range e.Fields {
		msgs[i] = f.Mensagem
	}
	return fmt.Sprintf("%s: %s", e.Summary, strings.Join(msgs, ", "))
}

func newError(summary, campo, mensagem string) *Error {
	return &Error{Summary: summary, Fields: []FieldError{{Campo: campo, Mensagem: mensagem}}}
}

// fromValidator converts validator output into an *Error. Anything that is not
// a ValidationErrors (a programming error such as an unsupported type) is
// returned unchanged.
func fromValidator(err error) error {
	if err == nil {
		return nil
	}
	var verrs validator.ValidationErrors
	if !errors.As(err, &verrs) {
		return err
	}
	out := &Error{Summary: summaryDados, Fields: make([]FieldError, 0, len(verrs))}
	for _, fe := range verrs {
		out.Fields = append(out.Fields, FieldError{Campo: fe.Field(), Mensagem: messageFor(fe)})
	}
	return out
}

// FromDecodeError turns a JSON type mismatch into a field-level *Error.
// It returns nil when err is not a type mismatch (e.g. malformed JSON).
func FromDecodeError(err error) *Error {
	var typeErr *json.UnmarshalTypeError
	if !errors.As(err, &typeErr) {
		return nil
	}
	campo := typeErr.Field
	if campo == "" {
		return &Error{Summary: summaryDados, Fields: []FieldError{{Campo: "", Mensagem: "Corpo deve ser um objeto JSON"}}}
	}

	var esperado string
	switch typeErr.Type.Kind() {
	case reflect.Int, reflect.Int8, reflect.Int16, reflect.Int32, reflect.Int64,
		reflect.Uint, reflect.Uint8, reflect.Uint16, reflect.Uint32, reflect.Uint64:
		esperado = "um número inteiro"
	case reflect.Float32, reflect.Float64, reflect.Struct:
		esperado = "um número"
	case reflect.String:
		esperado = "um texto"
	default:
		esperado = "de outro tipo"
	}
	return newError(summaryDados, campo, fmt.Sprintf("%s deve ser %s", campo, esperado))
}
