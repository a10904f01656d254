package web

import (
	"bytes"
	"encoding/json"
	"errors"
	"fmt"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/empdir/app/form"
	"github.com/umputun/empdir/app/store"
)

// APIEmployeeRequest is the JSON body of create and update requests.
// Missing fields are left untouched on update. Age accepts a number or a numeric string.
type APIEmployeeRequest struct {
	Name     *string `json:"name"`
	Contact  *string `json:"contact"`
	Location *string `json:"location"`
	Gender   *string `json:"gender"`
	Age      any     `json:"age"`
}

// APIValidationError is the JSON response for rejected drafts
type APIValidationError struct {
	Error  string            `json:"error"`
	Fields map[string]string `json:"fields"`
}

// values returns form values for fields present in the request
func (req APIEmployeeRequest) values() form.Values {
	res := form.Values{}
	set := func(name string, v *string) {
		if v != nil {
			res[name] = *v
		}
	}
	set(form.FieldName, req.Name)
	set(form.FieldContact, req.Contact)
	set(form.FieldLocation, req.Location)
	set(form.FieldGender, req.Gender)
	if req.Age != nil {
		res[form.FieldAge] = fmt.Sprint(req.Age)
	}
	return res
}

// handleAPIList returns all employees, filtered by optional search query param
func (s *Server) handleAPIList(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load employees: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load employees")
		return
	}
	s.writeJSON(w, http.StatusOK, store.Search(employees, r.URL.Query().Get("search")))
}

// handleAPIGet returns a single employee
func (s *Server) handleAPIGet(w http.ResponseWriter, r *http.Request) {
	emp, ok := s.apiEmployee(w, r)
	if !ok {
		return
	}
	s.writeJSON(w, http.StatusOK, emp)
}

// handleAPICreate adds an employee, responds with the created record
func (s *Server) handleAPICreate(w http.ResponseWriter, r *http.Request) {
	req, ok := s.decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	ctrl := form.NewController(s.store)
	ctrl.OpenAdd()
	employees, ok := s.apiSubmit(w, r, ctrl, req.values())
	if !ok {
		return
	}
	if len(employees) == 0 {
		s.writeJSONError(w, http.StatusInternalServerError, "employee was not added")
		return
	}
	s.writeJSON(w, http.StatusCreated, employees[len(employees)-1])
}

// handleAPIUpdate changes fields of an employee present in the request body
func (s *Server) handleAPIUpdate(w http.ResponseWriter, r *http.Request) {
	emp, ok := s.apiEmployee(w, r)
	if !ok {
		return
	}
	req, ok := s.decodeEmployeeRequest(w, r)
	if !ok {
		return
	}

	ctrl := form.NewController(s.store)
	ctrl.OpenEdit(emp)
	employees, ok := s.apiSubmit(w, r, ctrl, req.values())
	if !ok {
		return
	}
	for _, e := range employees {
		if e.ID == emp.ID {
			s.writeJSON(w, http.StatusOK, e)
			return
		}
	}
	// removed concurrently
	s.writeJSONError(w, http.StatusNotFound, "employee not found")
}

// handleAPIDelete removes an employee
func (s *Server) handleAPIDelete(w http.ResponseWriter, r *http.Request) {
	emp, ok := s.apiEmployee(w, r)
	if !ok {
		return
	}

	ctrl := form.NewController(s.store)
	ctrl.OpenDeleteConfirm(emp.ID)
	if _, err := ctrl.ConfirmDelete(r.Context()); err != nil {
		log.Printf("[ERROR] failed to delete employee %d: %v", emp.ID, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to delete employee")
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleAPISchema returns JSON schema of the employee record
func (s *Server) handleAPISchema(w http.ResponseWriter, _ *http.Request) {
	s.writeJSON(w, http.StatusOK, store.GenerateSchema())
}

// apiEmployee loads the employee by id path value, writes error response and returns false on failure
func (s *Server) apiEmployee(w http.ResponseWriter, r *http.Request) (store.Employee, bool) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid employee ID")
		return store.Employee{}, false
	}
	emp, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get employee %d: %v", id, err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to load employee")
		return store.Employee{}, false
	}
	if !ok {
		s.writeJSONError(w, http.StatusNotFound, "employee not found")
		return store.Employee{}, false
	}
	return emp, true
}

func (s *Server) decodeEmployeeRequest(w http.ResponseWriter, r *http.Request) (APIEmployeeRequest, bool) {
	var req APIEmployeeRequest
	dec := json.NewDecoder(r.Body)
	dec.UseNumber()
	if err := dec.Decode(&req); err != nil {
		s.writeJSONError(w, http.StatusBadRequest, "invalid request body")
		return req, false
	}
	return req, true
}

// apiSubmit sets values on the open controller and submits it.
// Writes 422 for rejected drafts and 500 for store failures.
func (s *Server) apiSubmit(w http.ResponseWriter, r *http.Request, ctrl *form.Controller, values form.Values) ([]store.Employee, bool) {
	for name, v := range values {
		if err := ctrl.SetField(name, v); err != nil {
			s.writeJSONError(w, http.StatusBadRequest, err.Error())
			return nil, false
		}
	}

	employees, err := ctrl.Submit(r.Context())
	if err != nil {
		var verr *form.ValidationError
		if errors.As(err, &verr) {
			s.metrics.submit("invalid")
			s.writeJSON(w, http.StatusUnprocessableEntity, APIValidationError{Error: verr.Error(), Fields: verr.Fields})
			return nil, false
		}
		s.metrics.submit("error")
		log.Printf("[ERROR] failed to save employee: %v", err)
		s.writeJSONError(w, http.StatusInternalServerError, "failed to save employee")
		return nil, false
	}
	s.metrics.submit("ok")
	return employees, true
}

// writeJSON writes a JSON response
func (s *Server) writeJSON(w http.ResponseWriter, status int, data any) {
	buf := new(bytes.Buffer)
	if err := json.NewEncoder(buf).Encode(data); err != nil {
		log.Printf("[WARN] failed to encode JSON response: %v", err)
		http.Error(w, "failed to encode response", http.StatusInternalServerError)
		return
	}
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if _, err := buf.WriteTo(w); err != nil {
		log.Printf("[WARN] failed to write response: %v", err)
	}
}

// writeJSONError writes a JSON error response
func (s *Server) writeJSONError(w http.ResponseWriter, status int, message string) {
	s.writeJSON(w, status, map[string]string{"error": message})
}
