package stub

import (
	"errors"
	"fmt"
	"sort"
	"strings"
	"sync"
	"time"

	"github.com/google/uuid"

	"ssoma/internal/domain"
)

var (
	errNotFound  = errors.New("not found")
	errDuplicate = errors.New("duplicate ruc")

	// errEmpresaNotFound is a not-found on the referenced company.
	errEmpresaNotFound = fmt.Errorf("empresa %w", errNotFound)
)

type memoryStore struct {
	mu         sync.RWMutex
	empresas   map[uuid.UUID]domain.Empresa
	documentos map[uuid.UUID]domain.DocumentoEmpresa
}

func newMemoryStore() *memoryStore {
	return &memoryStore{
		empresas:   make(map[uuid.UUID]domain.Empresa),
		documentos: make(map[uuid.UUID]domain.DocumentoEmpresa),
	}
}

func (s *memoryStore) listEmpresas() []domain.Empresa {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := make([]domain.Empresa, 0, len(s.empresas))
	for _, e := range s.empresas {
		out = append(out, e)
	}
	sort.Slice(out, func(i, j int) bool { return out[i].RazonSocial < out[j].RazonSocial })
	return out
}

// getEmpresa returns the company with its documents attached.
func (s *memoryStore) getEmpresa(id uuid.UUID) (domain.Empresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	e, ok := s.empresas[id]
	if !ok {
		return domain.Empresa{}, errNotFound
	}
	e.Documentos = s.documentosOf(id)
	return e, nil
}

func (s *memoryStore) getEmpresaByRUC(ruc string) (domain.Empresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	for id, e := range s.empresas {
		if e.RUC == ruc {
			e.Documentos = s.documentosOf(id)
			return e, nil
		}
	}
	return domain.Empresa{}, errNotFound
}

func (s *memoryStore) createEmpresa(e domain.Empresa) (domain.Empresa, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if s.rucTaken(e.RUC, uuid.Nil) {
		return domain.Empresa{}, errDuplicate
	}
	id := uuid.New()
	e.EmpresaID = &id
	e.Documentos = nil
	s.empresas[id] = e
	return e, nil
}

func (s *memoryStore) updateEmpresa(id uuid.UUID, e domain.Empresa) (domain.Empresa, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.empresas[id]; !ok {
		return domain.Empresa{}, errNotFound
	}
	if s.rucTaken(e.RUC, id) {
		return domain.Empresa{}, errDuplicate
	}
	e.EmpresaID = &id
	e.Documentos = nil
	s.empresas[id] = e
	return e, nil
}

// deleteEmpresa removes the company and its documents.
func (s *memoryStore) deleteEmpresa(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.empresas[id]; !ok {
		return errNotFound
	}
	delete(s.empresas, id)
	for docID, d := range s.documentos {
		if d.EmpresaID == id {
			delete(s.documentos, docID)
		}
	}
	return nil
}

func (s *memoryStore) createDocumento(d domain.DocumentoEmpresa) (domain.DocumentoEmpresa, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.empresas[d.EmpresaID]; !ok {
		return domain.DocumentoEmpresa{}, errNotFound
	}
	id := uuid.New()
	d.DocumentoEmpresaID = &id
	s.documentos[id] = d
	return d, nil
}

func (s *memoryStore) getDocumento(id uuid.UUID) (domain.DocumentoEmpresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	d, ok := s.documentos[id]
	if !ok {
		return domain.DocumentoEmpresa{}, errNotFound
	}
	return d, nil
}

// updateDocumento replaces a document. The owning company may change but
// must exist.
func (s *memoryStore) updateDocumento(id uuid.UUID, d domain.DocumentoEmpresa) (domain.DocumentoEmpresa, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documentos[id]; !ok {
		return domain.DocumentoEmpresa{}, errNotFound
	}
	if _, ok := s.empresas[d.EmpresaID]; !ok {
		return domain.DocumentoEmpresa{}, errEmpresaNotFound
	}
	d.DocumentoEmpresaID = &id
	s.documentos[id] = d
	return d, nil
}

func (s *memoryStore) deleteDocumento(id uuid.UUID) error {
	s.mu.Lock()
	defer s.mu.Unlock()
	if _, ok := s.documentos[id]; !ok {
		return errNotFound
	}
	delete(s.documentos, id)
	return nil
}

func (s *memoryStore) listDocumentos(empresaID uuid.UUID) ([]domain.DocumentoEmpresa, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if _, ok := s.empresas[empresaID]; !ok {
		return nil, errNotFound
	}
	return s.documentosOf(empresaID), nil
}

// documentosDue returns documents whose expiry falls in [from, to]. A zero
// from means no lower bound.
func (s *memoryStore) documentosDue(from, to time.Time) []domain.DocumentoEmpresa {
	s.mu.RLock()
	defer s.mu.RUnlock()
	out := []domain.DocumentoEmpresa{}
	for _, d := range s.documentos {
		if d.FechaVencimiento == nil || d.FechaVencimiento.IsZero() {
			continue
		}
		f := d.FechaVencimiento.Time
		if (!from.IsZero() && f.Before(from)) || f.After(to) {
			continue
		}
		out = append(out, d)
	}
	sortByExpiry(out)
	return out
}

// documentosOf must be called with s.mu held.
func (s *memoryStore) documentosOf(empresaID uuid.UUID) []domain.DocumentoEmpresa {
	out := []domain.DocumentoEmpresa{}
	for _, d := range s.documentos {
		if d.EmpresaID == empresaID {
			out = append(out, d)
		}
	}
	sortByExpiry(out)
	return out
}

// rucTaken must be called with s.mu held.
func (s *memoryStore) rucTaken(ruc string, except uuid.UUID) bool {
	if strings.TrimSpace(ruc) == "" {
		return false
	}
	for id, e := range s.empresas {
		if id != except && e.RUC == ruc {
			return true
		}
	}
	return false
}

func sortByExpiry(docs []domain.DocumentoEmpresa) {
	sort.Slice(docs, func(i, j int) bool {
		a, b := docs[i].FechaVencimiento, docs[j].FechaVencimiento
		switch {
		case a == nil:
			return false
		case b == nil:
			return true
		}
		if a.Equal(b.Time) {
			return docs[i].NombreDocumento < docs[j].NombreDocumento
		}
		return a.Before(b.Time)
	})
}
