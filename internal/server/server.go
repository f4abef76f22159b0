// Package server exposes the dashboard over HTTP: one embedded HTML page
// driven by a department selector, plus the JSON API it fetches from. All
// handlers read the immutable pipeline context; there is no per-request
// state.
package server

import (
	_ "embed"
	"encoding/json"
	"fmt"
	"html/template"
	"log"
	"net/http"

	"github.com/xuri/excelize/v2"

	"github.com/mesh-intelligence/mortalidash/internal/pipeline"
	"github.com/mesh-intelligence/mortalidash/internal/views"
)

//go:embed index.gohtml
var indexHTML string

// Server serves the dashboard page and its API.
type Server struct {
	ctx *pipeline.Context
	tpl *template.Template
	mux *http.ServeMux
}

// New builds a Server over the given data context.
func New(ctx *pipeline.Context) *Server {
	s := &Server{
		ctx: ctx,
		tpl: template.Must(template.New("index").Parse(indexHTML)),
		mux: http.NewServeMux(),
	}
	s.mux.HandleFunc("/", s.handleIndex)
	s.mux.HandleFunc("/api/departments", s.handleDepartments)
	s.mux.HandleFunc("/api/views", s.handleViews)
	s.mux.HandleFunc("/api/export.xlsx", s.handleExport)
	return s
}

// Handler returns the root handler, for mounting or for tests.
func (s *Server) Handler() http.Handler {
	return s.mux
}

// ListenAndServe blocks serving the dashboard on addr.
func (s *Server) ListenAndServe(addr string) error {
	log.Printf("dashboard listening on %s", addr)
	return http.ListenAndServe(addr, s.mux)
}

func (s *Server) handleIndex(w http.ResponseWriter, r *http.Request) {
	if r.URL.Path != "/" {
		http.NotFound(w, r)
		return
	}
	data := map[string]any{
		"Departments": s.ctx.Departments,
		"FilterAll":   views.FilterAll,
	}
	if err := s.tpl.Execute(w, data); err != nil {
		log.Printf("render index: %v", err)
	}
}

// handleDepartments returns the selector values: the all-departments
// sentinel followed by every distinct department name, sorted.
func (s *Server) handleDepartments(w http.ResponseWriter, r *http.Request) {
	options := append([]string{views.FilterAll}, s.ctx.Departments...)
	writeJSON(w, options)
}

// handleViews recomputes the seven aggregates for the selected department.
// An unknown department is not an error: it yields empty aggregates.
func (s *Server) handleViews(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("departamento")
	if department == "" {
		department = views.FilterAll
	}
	writeJSON(w, views.Compute(s.ctx, department))
}

// handleExport streams the ranked top-causes table as an xlsx workbook.
func (s *Server) handleExport(w http.ResponseWriter, r *http.Request) {
	department := r.URL.Query().Get("departamento")
	if department == "" {
		department = views.FilterAll
	}
	v := views.Compute(s.ctx, department)

	f := excelize.NewFile()
	defer f.Close()
	sheet := f.GetSheetName(0)

	head := []any{"Código", "Nombre de la causa", "Total"}
	if err := f.SetSheetRow(sheet, "A1", &head); err != nil {
		http.Error(w, err.Error(), http.StatusInternalServerError)
		return
	}
	for i, row := range v.TopCauses {
		cells := []any{row.Code, row.Name, row.Total}
		if err := f.SetSheetRow(sheet, fmt.Sprintf("A%d", i+2), &cells); err != nil {
			http.Error(w, err.Error(), http.StatusInternalServerError)
			return
		}
	}

	w.Header().Set("Content-Type", "application/vnd.openxmlformats-officedocument.spreadsheetml.sheet")
	w.Header().Set("Content-Disposition", `attachment; filename="top_causas.xlsx"`)
	if err := f.Write(w); err != nil {
		log.Printf("write xlsx export: %v", err)
	}
}

func writeJSON(w http.ResponseWriter, v any) {
	w.Header().Set("Content-Type", "application/json")
	if err := json.NewEncoder(w).Encode(v); err != nil {
		log.Printf("encode response: %v", err)
	}
}
