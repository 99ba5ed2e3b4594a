package domain

import (
	"bytes"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// DateLayout is the wire layout of calendar dates.
const DateLayout = "2006-01-02"

// Date is a calendar date without time of day or zone.
type Date struct {
	time.Time
}

// NewDate returns the Date for year, month and day.
func NewDate(year int, month time.Month, day int) Date {
	return Date{time.Date(year, month, day, 0, 0, 0, 0, time.UTC)}
}

// ParseDate parses a YYYY-MM-DD string.
func ParseDate(s string) (Date, error) {
	t, err := time.Parse(DateLayout, s)
	if err != nil {
		return Date{}, fmt.Errorf("parse date %q: %w", s, err)
	}
	return Date{t}, nil
}

// String returns the YYYY-MM-DD form.
func (d Date) String() string { return d.Format(DateLayout) }

func (d Date) MarshalJSON() ([]byte, error) {
	if d.IsZero() {
		return []byte("null"), nil
	}
	return []byte(`"` + d.String() + `"`), nil
}

func (d *Date) UnmarshalJSON(b []byte) error {
	if bytes.Equal(b, []byte("null")) {
		*d = Date{}
		return nil
	}
	if len(b) < 2 || b[0] != '"' || b[len(b)-1] != '"' {
		return fmt.Errorf("date must be a string, got %s", b)
	}
	parsed, err := ParseDate(string(b[1 : len(b)-1]))
	if err != nil {
		return err
	}
	*d = parsed
	return nil
}

// Empresa is a registered company.
type Empresa struct {
	EmpresaID      *uuid.UUID         `json:"empresa_id,omitempty"`
	RUC            string             `json:"ruc,omitempty"`
	RazonSocial    string             `json:"razon_social"`
	Direccion      string             `json:"direccion,omitempty"`
	Sector         string             `json:"sector,omitempty"`
	ScoreSeguridad *int               `json:"score_seguridad,omitempty"`
	Documentos     []DocumentoEmpresa `json:"documentos,omitempty"`
}

// ID returns the server-assigned id, or uuid.Nil before creation.
func (e Empresa) ID() uuid.UUID { return derefID(e.EmpresaID) }

func derefID(id *uuid.UUID) uuid.UUID {
	if id == nil {
		return uuid.Nil
	}
	return *id
}

// DocumentoEmpresa is a compliance document attached to a company.
type DocumentoEmpresa struct {
	DocumentoEmpresaID *uuid.UUID `json:"documento_empresa_id,omitempty"`
	EmpresaID          uuid.UUID  `json:"empresa_id"`
	NombreDocumento    string     `json:"nombre_documento"`
	FechaVencimiento   *Date      `json:"fecha_vencimiento,omitempty"`
	DocumentoURL       string     `json:"documento_url,omitempty"`
}

// ID returns the server-assigned id, or uuid.Nil before creation.
func (d DocumentoEmpresa) ID() uuid.UUID { return derefID(d.DocumentoEmpresaID) }

// Expired reports whether the document expired before on.
func (d DocumentoEmpresa) Expired(on time.Time) bool {
	if d.FechaVencimiento == nil || d.FechaVencimiento.IsZero() {
		return false
	}
	y, m, day := on.Date()
	return d.FechaVencimiento.Before(time.Date(y, m, day, 0, 0, 0, 0, time.UTC))
}

// Response is the envelope every API endpoint answers with.
type Response[T any] struct {
	Success   bool   `json:"success"`
	Message   string `json:"message"`
	Data      T      `json:"data"`
	Timestamp string `json:"timestamp,omitempty"`
}
