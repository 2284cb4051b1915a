// Package form parses and validates the iris measurement form.
package form

import (
	"math"
	"net/url"
	"strconv"
	"strings"

	"github.com/go-playground/validator/v10"
	"golang.org/x/text/language"
	"golang.org/x/text/message"
)

// Field describes one input of the form. Ranges are inclusive.
type Field struct {
	Name  string
	Label string
	Min   int
	Max   int
}

// Fields lists the form inputs in display order.
var Fields = []Field{
	{Name: "SepalLength", Label: "Sepal length (0cm ~ 10cm)", Min: 0, Max: 10},
	{Name: "SepalWidth", Label: "Sepal width (0cm ~ 5cm)", Min: 0, Max: 5},
	{Name: "PetalLength", Label: "Petal length (0cm ~ 10cm)", Min: 0, Max: 10},
	{Name: "PetalWidth", Label: "Petal width (0cm ~ 5cm)", Min: 0, Max: 5},
}

// Measurement is a validated form submission.
type Measurement struct {
	SepalLength float64
	SepalWidth  float64
	PetalLength float64
	PetalWidth  float64
}

// Vector returns the measurements in the order the model was trained on.
func (m Measurement) Vector() []float64 {
	return []float64{m.SepalLength, m.SepalWidth, m.PetalLength, m.PetalWidth}
}

// input carries the parsed values through struct-tag validation. A nil
// pointer means the value was absent or could not be parsed.
type input struct {
	SepalLength *float64 `validate:"required,gte=0,lte=10"`
	SepalWidth  *float64 `validate:"required,gte=0,lte=5"`
	PetalLength *float64 `validate:"required,gte=0,lte=10"`
	PetalWidth  *float64 `validate:"required,gte=0,lte=5"`
}

var validate = validator.New()

type Kind int

const (
	Required Kind = iota
	NotNumeric
	OutOfRange
)

// FieldError reports why a single field was rejected.
type FieldError struct {
	Field Field
	Kind  Kind
}

func (e FieldError) Error() string {
	return e.Field.Name + ": " + e.Message(message.NewPrinter(language.English))
}

// Message renders the error in the printer's language.
func (e FieldError) Message(p *message.Printer) string {
	switch e.Kind {
	case Required:
		return p.Sprintf("This field is required.")
	case NotNumeric:
		return p.Sprintf("Not a valid float value.")
	default:
		return p.Sprintf("Please enter a number between %d and %d.", e.Field.Min, e.Field.Max)
	}
}

// Errors maps a field name to its error. Each field reports at most one.
type Errors map[string]FieldError

// Parse validates the submitted values. Either the returned Errors is empty
// and the Measurement holds all four values, or the Measurement is zero.
func Parse(values url.Values) (Measurement, Errors) {
	errs := make(Errors)
	parsed := make(map[string]*float64, len(Fields))

	for _, field := range Fields {
		raw := strings.TrimSpace(values.Get(field.Name))
		if raw == "" {
			errs[field.Name] = FieldError{Field: field, Kind: Required}
			continue
		}
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil || math.IsNaN(v) || math.IsInf(v, 0) {
			errs[field.Name] = FieldError{Field: field, Kind: NotNumeric}
			continue
		}
		parsed[field.Name] = &v
	}

	in := input{
		SepalLength: parsed["SepalLength"],
		SepalWidth:  parsed["SepalWidth"],
		PetalLength: parsed["PetalLength"],
		PetalWidth:  parsed["PetalWidth"],
	}
	if err := validate.Struct(in); err != nil {
		if verrs, ok := err.(validator.ValidationErrors); ok {
			for _, fe := range verrs {
				if _, seen := errs[fe.Field()]; seen {
					continue
				}
				field, _ := lookup(fe.Field())
				kind := OutOfRange
				if fe.Tag() == "required" {
					kind = Required
				}
				errs[fe.Field()] = FieldError{Field: field, Kind: kind}
			}
		}
	}

	if len(errs) > 0 {
		return Measurement{}, errs
	}
	return Measurement{
		SepalLength: *in.SepalLength,
		SepalWidth:  *in.SepalWidth,
		PetalLength: *in.PetalLength,
		PetalWidth:  *in.PetalWidth,
	}, nil
}

func lookup(name string) (Field, bool) {
	for _, field := range Fields {
		if field.Name == name {
			return field, true
		}
	}
	return Field{Name: name}, false
}
