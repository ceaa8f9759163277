package interfaces

import (
	"context"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
)

// IDocumentExporter renders and stores the order document. It returns where
// the document was written.
type IDocumentExporter interface {
	Export(ctx context.Context, o entities.Order) (string, error)
}

// IExportPrompter asks whether the document of a freshly finalized order
// should be exported.
type IExportPrompter interface {
	ConfirmExport(ctx context.Context, o entities.Order) bool
}
