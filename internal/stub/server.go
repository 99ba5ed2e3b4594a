package stub

import (
	"errors"
	"fmt"
	"log/slog"
	"net/http"
	"strconv"
	"time"

	"github.com/go-chi/chi/v5"
	"github.com/google/uuid"

	"ssoma/internal/domain"
	"ssoma/internal/jsoncodec"
)

// BasePath is where the API is mounted.
const BasePath = "/api/v1"

type Server struct {
	store *memoryStore
	log   *slog.Logger
	// Now is the clock used for expiry queries.
	Now func() time.Time
}

func New(log *slog.Logger) *Server {
	if log == nil {
		log = slog.Default()
	}
	return &Server{store: newMemoryStore(), log: log, Now: time.Now}
}

// Routes returns a router serving the API under BasePath.
func (s *Server) Routes() chi.Router {
	r := chi.NewRouter()
	r.Route(BasePath, func(r chi.Router) {
		r.Route("/empresas", func(r chi.Router) {
			r.Get("/", s.listEmpresas)
			r.Post("/", s.createEmpresa)
			r.Get("/ruc/{ruc}", s.getEmpresaByRUC)
			r.Get("/{id}", s.getEmpresa)
			r.Put("/{id}", s.updateEmpresa)
			r.Delete("/{id}", s.deleteEmpresa)
		})
		r.Route("/documentos-empresa", func(r chi.Router) {
			r.Post("/", s.createDocumento)
			r.Get("/vencidos", s.documentosVencidos)
			r.Get("/por-vencer", s.documentosPorVencer)
			r.Get("/empresa/{id}", s.listDocumentos)
			r.Get("/{id}", s.getDocumento)
			r.Put("/{id}", s.updateDocumento)
			r.Delete("/{id}", s.deleteDocumento)
		})
	})
	return r
}

func (s *Server) listEmpresas(w http.ResponseWriter, r *http.Request) {
	empresas := s.store.listEmpresas()
	s.ok(w, http.StatusOK, fmt.Sprintf("Se encontraron %d empresas", len(empresas)), empresas)
}

func (s *Server) getEmpresa(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	e, err := s.store.getEmpresa(id)
	if err != nil {
		s.fail(w, err, "Empresa no encontrada con ID: "+id.String())
		return
	}
	s.ok(w, http.StatusOK, "Empresa encontrada", e)
}

func (s *Server) getEmpresaByRUC(w http.ResponseWriter, r *http.Request) {
	ruc := chi.URLParam(r, "ruc")
	e, err := s.store.getEmpresaByRUC(ruc)
	if err != nil {
		s.fail(w, err, "Empresa no encontrada con RUC: "+ruc)
		return
	}
	s.ok(w, http.StatusOK, "Empresa encontrada", e)
}

func (s *Server) createEmpresa(w http.ResponseWriter, r *http.Request) {
	var in domain.Empresa
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.fail(w, err, "")
		return
	}
	e, err := s.store.createEmpresa(in)
	if err != nil {
		s.fail(w, err, "Ya existe una empresa con el RUC: "+in.RUC)
		return
	}
	s.log.Info("empresa created", "id", e.ID(), "razon_social", e.RazonSocial)
	s.ok(w, http.StatusCreated, "Empresa creada exitosamente", e)
}

func (s *Server) updateEmpresa(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var in domain.Empresa
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.fail(w, err, "")
		return
	}
	e, err := s.store.updateEmpresa(id, in)
	if err != nil {
		msg := "Empresa no encontrada con ID: " + id.String()
		if errors.Is(err, errDuplicate) {
			msg = "Ya existe otra empresa con el RUC: " + in.RUC
		}
		s.fail(w, err, msg)
		return
	}
	s.ok(w, http.StatusOK, "Empresa actualizada exitosamente", e)
}

func (s *Server) deleteEmpresa(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.deleteEmpresa(id); err != nil {
		s.fail(w, err, "Empresa no encontrada con ID: "+id.String())
		return
	}
	s.log.Info("empresa deleted", "id", id)
	s.ok(w, http.StatusOK, "Empresa eliminada exitosamente", nil)
}

func (s *Server) listDocumentos(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	docs, err := s.store.listDocumentos(id)
	if err != nil {
		s.fail(w, err, "Empresa no encontrada con ID: "+id.String())
		return
	}
	s.ok(w, http.StatusOK, fmt.Sprintf("Se encontraron %d documentos", len(docs)), docs)
}

func (s *Server) documentosVencidos(w http.ResponseWriter, r *http.Request) {
	docs := s.store.documentosDue(time.Time{}, s.today().AddDate(0, 0, -1))
	s.ok(w, http.StatusOK, fmt.Sprintf("Se encontraron %d documentos vencidos", len(docs)), docs)
}

func (s *Server) documentosPorVencer(w http.ResponseWriter, r *http.Request) {
	dias := 30
	if v := r.URL.Query().Get("diasAnticipacion"); v != "" {
		n, err := strconv.Atoi(v)
		if err != nil || n < 0 {
			s.reply(w, http.StatusBadRequest, domain.Response[any]{Message: "diasAnticipacion inválido: " + v})
			return
		}
		dias = n
	}
	today := s.today()
	docs := s.store.documentosDue(today, today.AddDate(0, 0, dias))
	s.ok(w, http.StatusOK, fmt.Sprintf("Se encontraron %d documentos por vencer en %d días", len(docs), dias), docs)
}

func (s *Server) createDocumento(w http.ResponseWriter, r *http.Request) {
	var in domain.DocumentoEmpresa
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.fail(w, err, "")
		return
	}
	d, err := s.store.createDocumento(in)
	if err != nil {
		s.fail(w, err, "Empresa no encontrada con ID: "+in.EmpresaID.String())
		return
	}
	s.ok(w, http.StatusCreated, "Documento creado exitosamente", d)
}

func (s *Server) getDocumento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	d, err := s.store.getDocumento(id)
	if err != nil {
		s.fail(w, err, "Documento no encontrado con ID: "+id.String())
		return
	}
	s.ok(w, http.StatusOK, "Documento encontrado", d)
}

func (s *Server) updateDocumento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	var in domain.DocumentoEmpresa
	if !s.decode(w, r, &in) {
		return
	}
	if err := in.Validate(); err != nil {
		s.fail(w, err, "")
		return
	}
	d, err := s.store.updateDocumento(id, in)
	if err != nil {
		msg := "Documento no encontrado con ID: " + id.String()
		if errors.Is(err, errEmpresaNotFound) {
			msg = "Empresa no encontrada con ID: " + in.EmpresaID.String()
		}
		s.fail(w, err, msg)
		return
	}
	s.log.Info("documento updated", "id", id)
	s.ok(w, http.StatusOK, "Documento actualizado exitosamente", d)
}

func (s *Server) deleteDocumento(w http.ResponseWriter, r *http.Request) {
	id, ok := s.pathID(w, r)
	if !ok {
		return
	}
	if err := s.store.deleteDocumento(id); err != nil {
		s.fail(w, err, "Documento no encontrado con ID: "+id.String())
		return
	}
	s.ok(w, http.StatusOK, "Documento eliminado exitosamente", nil)
}

func (s *Server) today() time.Time {
	y, m, d := s.Now().Date()
	return time.Date(y, m, d, 0, 0, 0, 0, time.UTC)
}

func (s *Server) pathID(w http.ResponseWriter, r *http.Request) (uuid.UUID, bool) {
	raw := chi.URLParam(r, "id")
	id, err := uuid.Parse(raw)
	if err != nil {
		s.reply(w, http.StatusBadRequest, domain.Response[any]{Message: "ID inválido: " + raw})
		return uuid.Nil, false
	}
	return id, true
}

func (s *Server) decode(w http.ResponseWriter, r *http.Request, out any) bool {
	defer r.Body.Close()
	if err := jsoncodec.Decode(r.Body, out); err != nil {
		s.reply(w, http.StatusBadRequest, domain.Response[any]{Message: "JSON inválido: " + err.Error()})
		return false
	}
	return true
}

func (s *Server) ok(w http.ResponseWriter, status int, msg string, data any) {
	s.reply(w, status, domain.Response[any]{Success: true, Message: msg, Data: data})
}

// fail maps store and validation errors to an error envelope. msg is used
// for not-found and duplicate errors.
func (s *Server) fail(w http.ResponseWriter, err error, msg string) {
	status := http.StatusInternalServerError
	switch {
	case errors.Is(err, errNotFound):
		status = http.StatusNotFound
	case errors.Is(err, errDuplicate):
		status = http.StatusBadRequest
	case errors.Is(err, domain.ErrInvalid):
		status = http.StatusBadRequest
		msg = err.Error()
	default:
		msg = err.Error()
	}
	s.reply(w, status, domain.Response[any]{Message: msg})
}

func (s *Server) reply(w http.ResponseWriter, status int, resp domain.Response[any]) {
	resp.Timestamp = s.Now().Format("2006-01-02T15:04:05.999999")
	w.Header().Set("Content-Type", "application/json")
	w.WriteHeader(status)
	if err := jsoncodec.Encode(w, resp); err != nil {
		s.log.Error("write response", "error", err)
	}
}
