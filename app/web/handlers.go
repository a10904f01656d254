package web

import (
	"errors"
	"net/http"
	"strconv"

	log "github.com/go-pkgz/lgr"

	"github.com/umputun/empdir/app/form"
)

const partialsPage = "partials/employees.html"

// handleDashboard renders the main page, with the form or delete dialog of the session if open
func (s *Server) handleDashboard(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.get(w, r)
	employees, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load employees: %v", err)
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}

	state := ctrl.State()
	data := s.newTemplateData(state, employees, r.URL.Query().Get("search"))
	if state.DeleteOpen {
		for _, e := range employees {
			if e.ID == state.PendingDeleteID {
				data.DeleteTarget = &e
				break
			}
		}
	}
	s.render(w, "base.html", "base", data)
}

// handleEmployeesPartial renders the employees table, filtered by search query param
func (s *Server) handleEmployeesPartial(w http.ResponseWriter, r *http.Request) {
	employees, err := s.store.Load(r.Context())
	if err != nil {
		log.Printf("[ERROR] failed to load employees: %v", err)
		http.Error(w, "Failed to load employees", http.StatusInternalServerError)
		return
	}
	s.render(w, partialsPage, "employees-table", s.newTemplateData(form.State{}, employees, r.FormValue("search")))
}

// handleFormAdd opens an empty form
func (s *Server) handleFormAdd(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.get(w, r)
	ctrl.OpenAdd()
	s.render(w, partialsPage, "employee-form", s.newTemplateData(ctrl.State(), nil, ""))
}

// handleFormEdit opens the form filled with the employee fields
func (s *Server) handleFormEdit(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid employee ID", http.StatusBadRequest)
		return
	}

	ctrl := s.sessions.get(w, r)
	emp, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get employee %d: %v", id, err)
		http.Error(w, "Failed to load employee", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	ctrl.OpenEdit(emp)
	s.render(w, partialsPage, "employee-form", s.newTemplateData(ctrl.State(), nil, ""))
}

// handleFormField stores draft values posted by the form inputs
func (s *Server) handleFormField(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	ctrl := s.sessions.get(w, r)
	if err := applyFields(ctrl, r); err != nil {
		if errors.Is(err, form.ErrNotOpen) {
			http.Error(w, "Form is not open", http.StatusConflict)
			return
		}
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}
	w.WriteHeader(http.StatusNoContent)
}

// handleFormSubmit commits the draft. Validation errors re-render the form in place,
// success re-renders the table and closes the form out-of-band.
func (s *Server) handleFormSubmit(w http.ResponseWriter, r *http.Request) {
	if err := r.ParseForm(); err != nil {
		http.Error(w, "Invalid form data", http.StatusBadRequest)
		return
	}

	ctrl := s.sessions.get(w, r)
	if err := applyFields(ctrl, r); err != nil && !errors.Is(err, form.ErrNotOpen) {
		http.Error(w, err.Error(), http.StatusBadRequest)
		return
	}

	employees, err := ctrl.Submit(r.Context())
	if err != nil {
		var verr *form.ValidationError
		switch {
		case errors.As(err, &verr):
			s.metrics.submit("invalid")
			w.Header().Set("HX-Retarget", "#form-panel")
			w.Header().Set("HX-Reswap", "innerHTML")
			s.render(w, partialsPage, "employee-form", s.newTemplateData(ctrl.State(), nil, ""))
		case errors.Is(err, form.ErrNotOpen):
			http.Error(w, "Form is not open", http.StatusConflict)
		default:
			s.metrics.submit("error")
			log.Printf("[ERROR] failed to submit employee form: %v", err)
			http.Error(w, "Failed to save employee", http.StatusInternalServerError)
		}
		return
	}

	s.metrics.submit("ok")
	data := s.newTemplateData(ctrl.State(), employees, r.FormValue("search"))
	data.CloseForm = true
	s.render(w, partialsPage, "employees-table", data)
}

// handleFormCancel closes the form, response clears the form panel
func (s *Server) handleFormCancel(w http.ResponseWriter, r *http.Request) {
	s.sessions.get(w, r).Cancel()
	w.WriteHeader(http.StatusOK)
}

// handleDeleteOpen shows the delete confirmation for the employee
func (s *Server) handleDeleteOpen(w http.ResponseWriter, r *http.Request) {
	id, err := strconv.Atoi(r.PathValue("id"))
	if err != nil {
		http.Error(w, "Invalid employee ID", http.StatusBadRequest)
		return
	}

	ctrl := s.sessions.get(w, r)
	emp, ok, err := s.store.Get(r.Context(), id)
	if err != nil {
		log.Printf("[ERROR] failed to get employee %d: %v", id, err)
		http.Error(w, "Failed to load employee", http.StatusInternalServerError)
		return
	}
	if !ok {
		http.Error(w, "Employee not found", http.StatusNotFound)
		return
	}

	ctrl.OpenDeleteConfirm(id)
	data := s.newTemplateData(ctrl.State(), nil, "")
	data.DeleteTarget = &emp
	s.render(w, partialsPage, "delete-modal", data)
}

// handleDeleteConfirm removes the pending employee and re-renders the table
func (s *Server) handleDeleteConfirm(w http.ResponseWriter, r *http.Request) {
	ctrl := s.sessions.get(w, r)
	employees, err := ctrl.ConfirmDelete(r.Context())
	if err != nil {
		if errors.Is(err, form.ErrNoPendingDelete) {
			http.Error(w, "No pending delete", http.StatusConflict)
			return
		}
		log.Printf("[ERROR] failed to delete employee: %v", err)
		http.Error(w, "Failed to delete employee", http.StatusInternalServerError)
		return
	}

	data := s.newTemplateData(ctrl.State(), employees, r.FormValue("search"))
	data.CloseModal = true
	s.render(w, partialsPage, "employees-table", data)
}

// handleDeleteCancel closes the delete confirmation
func (s *Server) handleDeleteCancel(w http.ResponseWriter, r *http.Request) {
	s.sessions.get(w, r).CancelDelete()
	w.WriteHeader(http.StatusOK)
}

// applyFields sets draft values for every form field present in the request
func applyFields(ctrl *form.Controller, r *http.Request) error {
	for _, name := range form.Fields {
		vals, ok := r.PostForm[name]
		if !ok || len(vals) == 0 {
			continue
		}
		if err := ctrl.SetField(name, vals[0]); err != nil {
			return err
		}
	}
	return nil
}
