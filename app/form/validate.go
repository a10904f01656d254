package form

import (
	"fmt"
	"slices"
	"strconv"
	"strings"

	"github.com/umputun/empdir/app/enums"
	"github.com/umputun/empdir/app/store"
)

// form field names
const (
	FieldName     = "name"
	FieldContact  = "contact"
	FieldLocation = "location"
	FieldGender   = "gender"
	FieldAge      = "age"
)

// Fields lists form fields in display order
var Fields = []string{FieldName, FieldContact, FieldLocation, FieldGender, FieldAge}

// Values maps form field name to its raw value
type Values map[string]string

// ValuesOf makes form values from employee record, id is not a form field
func ValuesOf(e store.Employee) Values {
	return Values{
		FieldName:     e.Name,
		FieldContact:  e.Contact,
		FieldLocation: e.Location,
		FieldGender:   e.Gender,
		FieldAge:      strconv.Itoa(e.Age),
	}
}

// ValidationError is returned for a form that can't be submitted, Fields maps field name to a message
type ValidationError struct {
	Fields map[string]string
}

// Error lists invalid fields in display order
func (e *ValidationError) Error() string {
	msgs := make([]string, 0, len(e.Fields))
	for _, f := range Fields {
		if msg, ok := e.Fields[f]; ok {
			msgs = append(msgs, f+": "+msg)
		}
	}
	return "invalid employee, " + strings.Join(msgs, ", ")
}

// Validate checks all fields and returns the draft made of them.
// Every invalid field is reported in the returned *ValidationError.
func Validate(v Values) (store.Draft, error) {
	errs := map[string]string{}
	get := func(name string) string { return strings.TrimSpace(v[name]) }

	d := store.Draft{Name: get(FieldName), Contact: get(FieldContact)}
	if d.Name == "" {
		errs[FieldName] = "name is required"
	}
	if d.Contact == "" {
		errs[FieldContact] = "contact number is required"
	}

	switch raw := get(FieldLocation); raw {
	case "":
		errs[FieldLocation] = "location is required"
	default:
		loc, err := enums.ParseLocation(raw)
		if err != nil {
			errs[FieldLocation] = fmt.Sprintf("unknown location %q", raw)
			break
		}
		d.Location = loc.String()
	}

	switch raw := get(FieldGender); raw {
	case "":
		errs[FieldGender] = "gender is required"
	default:
		g, err := enums.ParseGender(raw)
		if err != nil {
			errs[FieldGender] = fmt.Sprintf("unknown gender %q", raw)
			break
		}
		d.Gender = g.String()
	}

	switch raw := get(FieldAge); raw {
	case "":
		errs[FieldAge] = "age is required"
	default:
		age, err := strconv.Atoi(raw)
		if err != nil {
			errs[FieldAge] = "age must be a whole number"
			break
		}
		if age <= 0 {
			errs[FieldAge] = "age must be positive"
			break
		}
		d.Age = age
	}

	if len(errs) > 0 {
		return store.Draft{}, &ValidationError{Fields: errs}
	}
	return d, nil
}

func isField(name string) bool {
	return slices.Contains(Fields, name)
}
