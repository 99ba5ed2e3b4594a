package api

import (
	"context"
	"net/http"
	"net/url"

	"github.com/google/uuid"

	"ssoma/internal/domain"
)

func (c *Client) ListEmpresas(ctx context.Context) ([]domain.Empresa, error) {
	return call[[]domain.Empresa](ctx, c, http.MethodGet, "/empresas", nil)
}

func (c *Client) GetEmpresa(ctx context.Context, id uuid.UUID) (domain.Empresa, error) {
	return call[domain.Empresa](ctx, c, http.MethodGet, "/empresas/"+id.String(), nil)
}

func (c *Client) GetEmpresaByRUC(ctx context.Context, ruc string) (domain.Empresa, error) {
	return call[domain.Empresa](ctx, c, http.MethodGet, "/empresas/ruc/"+url.PathEscape(ruc), nil)
}

// CreateEmpresa validates e and posts it. The returned record carries the
// server-assigned id.
func (c *Client) CreateEmpresa(ctx context.Context, e domain.Empresa) (domain.Empresa, error) {
	if err := e.Validate(); err != nil {
		return domain.Empresa{}, err
	}
	return call[domain.Empresa](ctx, c, http.MethodPost, "/empresas", e)
}

func (c *Client) UpdateEmpresa(ctx context.Context, id uuid.UUID, e domain.Empresa) (domain.Empresa, error) {
	if err := e.Validate(); err != nil {
		return domain.Empresa{}, err
	}
	return call[domain.Empresa](ctx, c, http.MethodPut, "/empresas/"+id.String(), e)
}

func (c *Client) DeleteEmpresa(ctx context.Context, id uuid.UUID) error {
	_, err := call[any](ctx, c, http.MethodDelete, "/empresas/"+id.String(), nil)
	return err
}
