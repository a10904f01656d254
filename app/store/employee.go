package store

import (
	"encoding/json"
	"fmt"
	"strconv"
	"strings"

	log "github.com/go-pkgz/lgr"
)

// Employee is a single record of the directory
type Employee struct {
	ID       int    `json:"id" yaml:"id" jsonschema:"minimum=1,description=unique id assigned on add"`
	Name     string `json:"name" yaml:"name" jsonschema:"minLength=1"`
	Contact  string `json:"contact" yaml:"contact" jsonschema:"minLength=1,description=contact phone number"`
	Location string `json:"location" yaml:"location" jsonschema:"enum=Madurai,enum=Sivakasi,enum=Virudhunagar,enum=Sattur"`
	Gender   string `json:"gender" yaml:"gender" jsonschema:"enum=Male,enum=Female"`
	Age      int    `json:"age" yaml:"age" jsonschema:"minimum=1"`
}

// Draft holds employee fields without the id. The store accepts drafts as is,
// validation happens before a draft gets here.
type Draft struct {
	Name     string
	Contact  string
	Location string
	Gender   string
	Age      int
}

// DraftOf returns the draft part of the employee record
func DraftOf(e Employee) Draft {
	return Draft{Name: e.Name, Contact: e.Contact, Location: e.Location, Gender: e.Gender, Age: e.Age}
}

func (d Draft) employee(id int) Employee {
	return Employee{ID: id, Name: d.Name, Contact: d.Contact, Location: d.Location, Gender: d.Gender, Age: d.Age}
}

// UnmarshalJSON decodes employee record and accepts age as a number or a numeric string,
// older state written by the browser UI kept the raw form value.
func (e *Employee) UnmarshalJSON(data []byte) error {
	type plain Employee
	aux := struct {
		*plain
		Age json.RawMessage `json:"age"`
	}{plain: (*plain)(e)}

	if err := json.Unmarshal(data, &aux); err != nil {
		return err
	}

	e.Age = 0
	raw := strings.TrimSpace(string(aux.Age))
	if raw == "" || raw == "null" {
		return nil
	}

	if strings.HasPrefix(raw, `"`) {
		var s string
		if err := json.Unmarshal(aux.Age, &s); err != nil {
			return fmt.Errorf("invalid age for employee %d: %w", e.ID, err)
		}
		age, err := strconv.Atoi(strings.TrimSpace(s))
		if err != nil {
			log.Printf("[WARN] non-numeric age %q of employee %d, reset to 0", s, e.ID)
			return nil
		}
		e.Age = age
		return nil
	}

	var age json.Number
	if err := json.Unmarshal(aux.Age, &age); err != nil {
		return fmt.Errorf("invalid age for employee %d: %w", e.ID, err)
	}
	v, err := age.Int64()
	if err != nil {
		return fmt.Errorf("invalid age %s for employee %d: %w", age, e.ID, err)
	}
	e.Age = int(v)
	return nil
}

// Search returns employees matching the term in name, contact, location or gender.
// Matching is case-insensitive, empty term returns the input as is.
func Search(employees []Employee, term string) []Employee {
	term = strings.ToLower(strings.TrimSpace(term))
	if term == "" {
		return employees
	}

	res := make([]Employee, 0, len(employees))
	for _, e := range employees {
		if strings.Contains(strings.ToLower(e.Name), term) ||
			strings.Contains(strings.ToLower(e.Contact), term) ||
			strings.Contains(strings.ToLower(e.Location), term) ||
			strings.EqualFold(e.Gender, term) {
			res = append(res, e)
		}
	}
	return res
}
