package form

import (
	"net/url"
	"testing"

	"github.com/google/go-cmp/cmp"
)

func validValues() url.Values {
	return url.Values{
		"SepalLength": {"5.1"},
		"SepalWidth":  {"3.5"},
		"PetalLength": {"1.4"},
		"PetalWidth":  {"0.2"},
	}
}

func TestParseValid(t *testing.T) {
	m, errs := Parse(validValues())
	if len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
	want := Measurement{SepalLength: 5.1, SepalWidth: 3.5, PetalLength: 1.4, PetalWidth: 0.2}
	if diff := cmp.Diff(want, m); diff != "" {
		t.Fatalf("measurement mismatch (-want +got):\n%s", diff)
	}
	if diff := cmp.Diff([]float64{5.1, 3.5, 1.4, 0.2}, m.Vector()); diff != "" {
		t.Fatalf("vector mismatch (-want +got):\n%s", diff)
	}
}

func TestParseBoundsAreInclusive(t *testing.T) {
	values := url.Values{
		"SepalLength": {"10"},
		"SepalWidth":  {"0"},
		"PetalLength": {"0"},
		"PetalWidth":  {"5"},
	}
	if _, errs := Parse(values); len(errs) != 0 {
		t.Fatalf("unexpected errors: %v", errs)
	}
}

func TestParseFieldErrors(t *testing.T) {
	tests := []struct {
		name  string
		field string
		value string
		drop  bool
		want  Kind
	}{
		{name: "sepal length missing", field: "SepalLength", drop: true, want: Required},
		{name: "sepal width missing", field: "SepalWidth", drop: true, want: Required},
		{name: "petal length missing", field: "PetalLength", drop: true, want: Required},
		{name: "petal width missing", field: "PetalWidth", drop: true, want: Required},
		{name: "sepal length blank", field: "SepalLength", value: "   ", want: Required},
		{name: "sepal length too large", field: "SepalLength", value: "15", want: OutOfRange},
		{name: "sepal width too large", field: "SepalWidth", value: "5.01", want: OutOfRange},
		{name: "petal length negative", field: "PetalLength", value: "-0.1", want: OutOfRange},
		{name: "petal width too large", field: "PetalWidth", value: "6", want: OutOfRange},
		{name: "not a number", field: "SepalWidth", value: "abc", want: NotNumeric},
		{name: "nan", field: "PetalWidth", value: "NaN", want: NotNumeric},
		{name: "infinity", field: "PetalLength", value: "+Inf", want: NotNumeric},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			values := validValues()
			if tt.drop {
				values.Del(tt.field)
			} else {
				values.Set(tt.field, tt.value)
			}
			m, errs := Parse(values)
			if len(errs) != 1 {
				t.Fatalf("expected exactly one error, got %v", errs)
			}
			fe, ok := errs[tt.field]
			if !ok {
				t.Fatalf("expected error on %s, got %v", tt.field, errs)
			}
			if fe.Kind != tt.want {
				t.Errorf("kind = %v, want %v", fe.Kind, tt.want)
			}
			if m != (Measurement{}) {
				t.Errorf("expected zero measurement on error, got %+v", m)
			}
		})
	}
}

func TestParseEmptySubmission(t *testing.T) {
	_, errs := Parse(url.Values{})
	got := make(map[string]Kind, len(errs))
	for name, fe := range errs {
		got[name] = fe.Kind
	}
	want := map[string]Kind{
		"SepalLength": Required,
		"SepalWidth":  Required,
		"PetalLength": Required,
		"PetalWidth":  Required,
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("errors mismatch (-want +got):\n%s", diff)
	}
}

func TestFieldErrorMessage(t *testing.T) {
	_, errs := Parse(url.Values{"SepalLength": {"15"}, "SepalWidth": {"x"}})
	want := map[string]string{
		"SepalLength": "SepalLength: Please enter a number between 0 and 10.",
		"SepalWidth":  "SepalWidth: Not a valid float value.",
		"PetalLength": "PetalLength: This field is required.",
		"PetalWidth":  "PetalWidth: This field is required.",
	}
	got := make(map[string]string, len(errs))
	for name, fe := range errs {
		got[name] = fe.Error()
	}
	if diff := cmp.Diff(want, got); diff != "" {
		t.Fatalf("messages mismatch (-want +got):\n%s", diff)
	}
}
