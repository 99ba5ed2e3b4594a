package domain_test

import (
	"encoding/json"
	"errors"
	"fmt"
	"strings"
	"testing"
	"time"

	"github.com/google/uuid"
	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"

	"ssoma/internal/domain"
)

func TestDate_JSON(t *testing.T) {
	d := domain.NewDate(2024, time.March, 5)
	b, err := json.Marshal(d)
	require.NoError(t, err)
	assert.Equal(t, `"2024-03-05"`, string(b))

	var got domain.Date
	require.NoError(t, json.Unmarshal([]byte(`"2024-03-05"`), &got))
	assert.True(t, got.Equal(d.Time))

	require.NoError(t, json.Unmarshal([]byte(`null`), &got))
	assert.True(t, got.IsZero())

	assert.Error(t, json.Unmarshal([]byte(`20240305`), &got))
	assert.Error(t, json.Unmarshal([]byte(`"05/03/2024"`), &got))
}

func TestDocumentoEmpresa_Expired(t *testing.T) {
	exp := domain.NewDate(2024, time.March, 5)
	doc := domain.DocumentoEmpresa{FechaVencimiento: &exp}

	assert.False(t, doc.Expired(time.Date(2024, time.March, 5, 23, 0, 0, 0, time.UTC)))
	assert.True(t, doc.Expired(time.Date(2024, time.March, 6, 0, 0, 0, 0, time.UTC)))
	assert.False(t, domain.DocumentoEmpresa{}.Expired(time.Now()))
}

func TestEmpresa_Validate(t *testing.T) {
	score := func(n int) *int { return &n }

	ok := domain.Empresa{RazonSocial: "Acme SAC", RUC: "20123456789", ScoreSeguridad: score(80)}
	assert.NoError(t, ok.Validate())

	bad := domain.Empresa{
		RUC:            "123",
		Sector:         strings.Repeat("x", domain.MaxSectorLen+1),
		ScoreSeguridad: score(101),
		Documentos:     []domain.DocumentoEmpresa{{}},
	}
	err := bad.Validate()
	require.Error(t, err)
	assert.ErrorIs(t, err, domain.ErrInvalid)

	var verr *domain.ValidationError
	require.ErrorAs(t, err, &verr)
	fields := map[string]bool{}
	for _, f := range verr.Fields {
		fields[f.Field] = true
	}
	for _, want := range []string{"razon_social", "ruc", "sector", "score_seguridad", "nombre_documento"} {
		assert.True(t, fields[want], "missing %s in %v", want, verr)
	}
	assert.False(t, fields["empresa_id"], "nested documents inherit the company id")
}

func TestDocumentoEmpresa_Validate(t *testing.T) {
	doc := domain.DocumentoEmpresa{EmpresaID: uuid.New(), NombreDocumento: "SCTR"}
	assert.NoError(t, doc.Validate())

	err := domain.DocumentoEmpresa{NombreDocumento: "SCTR"}.Validate()
	assert.ErrorIs(t, err, domain.ErrInvalid)
	assert.Contains(t, err.Error(), "empresa_id")
}

func TestEmpresa_IDOmittedUntilAssigned(t *testing.T) {
	b, err := json.Marshal(domain.Empresa{RazonSocial: "Acme"})
	require.NoError(t, err)
	assert.NotContains(t, string(b), "empresa_id")

	id := uuid.New()
	e := domain.Empresa{EmpresaID: &id}
	assert.Equal(t, id, e.ID())
	assert.Equal(t, uuid.Nil, domain.Empresa{}.ID())
}

func TestRequestError_Is(t *testing.T) {
	cause := errors.New("connection refused")
	err := fmt.Errorf("wrapped: %w", &domain.RequestError{
		Kind: domain.KindNetwork, Method: "GET", URL: "http://x", Err: cause,
	})

	assert.ErrorIs(t, err, domain.ErrNetwork)
	assert.NotErrorIs(t, err, domain.ErrDecode)
	assert.ErrorIs(t, err, cause)
	assert.Equal(t, "wrapped: GET http://x: network error: connection refused", err.Error())
}

func TestAPIError(t *testing.T) {
	err := &domain.APIError{Status: 404}
	assert.True(t, err.NotFound())
	assert.Equal(t, "api error (404): Not Found", err.Error())

	err = &domain.APIError{Status: 400, Message: "Ya existe una empresa con el RUC: 20123456789"}
	assert.Contains(t, err.Error(), "Ya existe")
}
