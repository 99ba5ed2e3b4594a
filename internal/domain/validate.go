package domain

import (
	"strings"
	"unicode/utf8"

	"github.com/google/uuid"

	"ssoma/internal/validate"
)

// Field limits enforced by the API.
const (
	MaxRUCLen         = 20
	MaxRazonSocialLen = 255
	MaxDireccionLen   = 500
	MaxSectorLen      = 100
	MaxNombreDocLen   = 255
	MaxDocumentoURL   = 500
)

// Validate checks e against the API's constraints. The RUC, when present,
// must also be a well-formed 11-digit tax ID.
func (e Empresa) Validate() error {
	var v ValidationError
	if strings.TrimSpace(e.RazonSocial) == "" {
		v.add("razon_social", "is required")
	}
	checkLen(&v, "razon_social", e.RazonSocial, MaxRazonSocialLen)
	checkLen(&v, "ruc", e.RUC, MaxRUCLen)
	if !validate.TaxID(e.RUC) {
		v.add("ruc", "must be %d digits", validate.TaxIDLength)
	}
	checkLen(&v, "direccion", e.Direccion, MaxDireccionLen)
	checkLen(&v, "sector", e.Sector, MaxSectorLen)
	if e.ScoreSeguridad != nil {
		s := *e.ScoreSeguridad
		if s < validate.MinScore || s > validate.MaxScore {
			v.add("score_seguridad", "must be between %d and %d", validate.MinScore, validate.MaxScore)
		}
	}
	for _, d := range e.Documentos {
		if err := d.validateFields(false); err != nil {
			v.Fields = append(v.Fields, err.Fields...)
		}
	}
	return v.orNil()
}

// Validate checks d against the API's constraints.
func (d DocumentoEmpresa) Validate() error {
	// validateFields returns a typed pointer; avoid a non-nil error holding nil.
	if err := d.validateFields(true); err != nil {
		return err
	}
	return nil
}

func (d DocumentoEmpresa) validateFields(needEmpresa bool) *ValidationError {
	var v ValidationError
	if needEmpresa && d.EmpresaID == uuid.Nil {
		v.add("empresa_id", "is required")
	}
	if strings.TrimSpace(d.NombreDocumento) == "" {
		v.add("nombre_documento", "is required")
	}
	checkLen(&v, "nombre_documento", d.NombreDocumento, MaxNombreDocLen)
	checkLen(&v, "documento_url", d.DocumentoURL, MaxDocumentoURL)
	if len(v.Fields) == 0 {
		return nil
	}
	return &v
}

func checkLen(v *ValidationError, field, s string, limit int) {
	if utf8.RuneCountInString(s) > limit {
		v.add(field, "must be at most %d characters", limit)
	}
}
