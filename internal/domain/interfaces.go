package domain

import (
	"context"

	"github.com/google/uuid"
)

// EmpresaAPI is how we talk to the company endpoints.
type EmpresaAPI interface {
	ListEmpresas(ctx context.Context) ([]Empresa, error)
	GetEmpresa(ctx context.Context, id uuid.UUID) (Empresa, error)
	GetEmpresaByRUC(ctx context.Context, ruc string) (Empresa, error)
	CreateEmpresa(ctx context.Context, e Empresa) (Empresa, error)
	UpdateEmpresa(ctx context.Context, id uuid.UUID, e Empresa) (Empresa, error)
	DeleteEmpresa(ctx context.Context, id uuid.UUID) error
}

// DocumentoAPI is how we talk to the document endpoints.
type DocumentoAPI interface {
	ListDocumentos(ctx context.Context, empresaID uuid.UUID) ([]DocumentoEmpresa, error)
	DocumentosVencidos(ctx context.Context) ([]DocumentoEmpresa, error)
	DocumentosPorVencer(ctx context.Context, dias int) ([]DocumentoEmpresa, error)
	GetDocumento(ctx context.Context, id uuid.UUID) (DocumentoEmpresa, error)
	CreateDocumento(ctx context.Context, d DocumentoEmpresa) (DocumentoEmpresa, error)
	UpdateDocumento(ctx context.Context, id uuid.UUID, d DocumentoEmpresa) (DocumentoEmpresa, error)
	DeleteDocumento(ctx context.Context, id uuid.UUID) error
}
