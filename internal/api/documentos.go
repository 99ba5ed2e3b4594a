package api

import (
	"context"
	"net/http"
	"strconv"

	"github.com/google/uuid"

	"ssoma/internal/domain"
)

const documentosPath = "/documentos-empresa"

// DefaultDiasAnticipacion is the look-ahead window the API applies when
// none is given.
const DefaultDiasAnticipacion = 30

func (c *Client) ListDocumentos(ctx context.Context, empresaID uuid.UUID) ([]domain.DocumentoEmpresa, error) {
	return call[[]domain.DocumentoEmpresa](ctx, c, http.MethodGet, documentosPath+"/empresa/"+empresaID.String(), nil)
}

func (c *Client) DocumentosVencidos(ctx context.Context) ([]domain.DocumentoEmpresa, error) {
	return call[[]domain.DocumentoEmpresa](ctx, c, http.MethodGet, documentosPath+"/vencidos", nil)
}

// DocumentosPorVencer lists documents expiring within dias days. A
// non-positive dias uses DefaultDiasAnticipacion.
func (c *Client) DocumentosPorVencer(ctx context.Context, dias int) ([]domain.DocumentoEmpresa, error) {
	if dias <= 0 {
		dias = DefaultDiasAnticipacion
	}
	path := documentosPath + "/por-vencer?diasAnticipacion=" + strconv.Itoa(dias)
	return call[[]domain.DocumentoEmpresa](ctx, c, http.MethodGet, path, nil)
}

func (c *Client) GetDocumento(ctx context.Context, id uuid.UUID) (domain.DocumentoEmpresa, error) {
	return call[domain.DocumentoEmpresa](ctx, c, http.MethodGet, documentosPath+"/"+id.String(), nil)
}

func (c *Client) CreateDocumento(ctx context.Context, d domain.DocumentoEmpresa) (domain.DocumentoEmpresa, error) {
	if err := d.Validate(); err != nil {
		return domain.DocumentoEmpresa{}, err
	}
	return call[domain.DocumentoEmpresa](ctx, c, http.MethodPost, documentosPath, d)
}

// UpdateDocumento replaces the document's fields. The server keeps id.
func (c *Client) UpdateDocumento(ctx context.Context, id uuid.UUID, d domain.DocumentoEmpresa) (domain.DocumentoEmpresa, error) {
	if err := d.Validate(); err != nil {
		return domain.DocumentoEmpresa{}, err
	}
	return call[domain.DocumentoEmpresa](ctx, c, http.MethodPut, documentosPath+"/"+id.String(), d)
}

func (c *Client) DeleteDocumento(ctx context.Context, id uuid.UUID) error {
	_, err := call[any](ctx, c, http.MethodDelete, documentosPath+"/"+id.String(), nil)
	return err
}
