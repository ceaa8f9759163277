// Package export writes the order document to S3.
package export

import (
	"bytes"
	"context"
	"fmt"
	"strings"
	"text/template"
	"time"

	"github.com/aws/aws-sdk-go-v2/aws"
	"github.com/aws/aws-sdk-go-v2/service/s3"
	"github.com/pkg/errors"
	"github.com/rs/zerolog/log"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/notelog"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"
)

type s3API interface {
	PutObject(ctx context.Context, in *s3.PutObjectInput, optFns ...func(*s3.Options)) (*s3.PutObjectOutput, error)
}

var _ s3API = (*s3.Client)(nil)

var sheet = template.Must(template.New("order").Funcs(template.FuncMap{
	"date": formatDate,
}).Parse(`ORDEN DE SERVICIO {{.Order.ID}}
Estado:      {{.Status}}
Sector:      {{.Order.Sector}}
Prioridad:   {{.Order.Priority}}
Cliente:     {{.Order.CustomerName}}
Servicio:    {{.Order.ServiceKind}}
Técnicos:    {{.Technicians}}
Inicio:      {{date .Order.WorkStart}}
Fin:         {{date .Order.WorkEnd}}

Descripción
{{.Order.Description}}

Materiales
{{if .Order.MaterialsSummary}}{{.Order.MaterialsSummary}}{{else}}-{{end}}

Notas
{{range .Notes}}[{{.Timestamp.Format "2006-01-02 15:04"}}] {{.Author}}: {{.Content}}
{{else}}-
{{end}}`))

type sheetData struct {
	Order       entities.Order
	Status      entities.Status
	Technicians string
	Notes       []entities.Note
}

// S3Exporter renders a plain-text order sheet and stores it under
// <prefix><order id>.txt.
type S3Exporter struct {
	client s3API
	bucket string
	prefix string
}

var _ interfaces.IDocumentExporter = (*S3Exporter)(nil)

func NewS3Exporter(client *s3.Client, bucket, prefix string) *S3Exporter {
	return &S3Exporter{client: client, bucket: bucket, prefix: prefix}
}

func (e *S3Exporter) Export(ctx context.Context, o entities.Order) (string, error) {
	body, err := Render(o)
	if err != nil {
		return "", err
	}

	key := e.prefix + o.ID + ".txt"
	_, err = e.client.PutObject(ctx, &s3.PutObjectInput{
		Bucket:      aws.String(e.bucket),
		Key:         aws.String(key),
		Body:        bytes.NewReader(body),
		ContentType: aws.String("text/plain; charset=utf-8"),
	})
	if err != nil {
		return "", errors.Wrapf(err, "failed to upload document for order %s", o.ID)
	}

	location := fmt.Sprintf("s3://%s/%s", e.bucket, key)
	log.Info().Str("order_id", o.ID).Str("location", location).Msg("order document exported")
	return location, nil
}

// Render produces the order sheet with notes in display order.
func Render(o entities.Order) ([]byte, error) {
	fallback := o.UpdatedAt
	if fallback.IsZero() {
		fallback = o.CreatedAt
	}
	data := sheetData{
		Order:       o,
		Status:      workflow.CanonicalStatus(o),
		Technicians: strings.Join(o.AssignedNames(), ", "),
		Notes:       notelog.SortForDisplay(notelog.Parse(o.Notes, fallback)),
	}
	if data.Technicians == "" {
		data.Technicians = strings.Join(o.AssignedTechnicianIDs(), ", ")
	}

	var buf bytes.Buffer
	if err := sheet.Execute(&buf, data); err != nil {
		return nil, errors.Wrap(err, "failed to render order document")
	}
	return buf.Bytes(), nil
}

func formatDate(t *time.Time) string {
	if t == nil {
		return "-"
	}
	return t.Format("2006-01-02 15:04")
}
