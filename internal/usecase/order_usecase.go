package usecase

import (
	"context"
	"errors"
	"strings"
	"time"

	"github.com/google/uuid"
	"github.com/rs/zerolog/log"

	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/assignment"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/entities"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/filter"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/notelog"
	"github.com/Ivanvillan/front-820hd-sub000/internal/domain/workflow"
	"github.com/Ivanvillan/front-820hd-sub000/internal/usecase/interfaces"
)

var (
	ErrOrderNotFound      = errors.New("order not found")
	ErrOrderNotVisible    = errors.New("order is not visible to this user")
	ErrInvalidOrderID     = errors.New("invalid order id")
	ErrInvalidDescription = errors.New("invalid description")
	ErrInvalidSession     = errors.New("invalid edit session")
)

// OrderDetail is an order prepared for display: canonical status, notes most
// recent first and materials reconciled against the catalog.
type OrderDetail struct {
	Order          entities.Order
	Status         entities.Status
	Notes          []entities.Note
	Materials      []entities.MaterialSelection
	CanTake        bool
	AllowedTargets []entities.Status
}

type CreateOrderInput struct {
	Description  string
	Status       entities.Status
	Sector       entities.Sector
	Priority     entities.Priority
	CustomerID   string
	CustomerName string
	ServiceKind  string
	Responsibles []entities.TechnicianRef
	Materials    []entities.MaterialRef
	Note         string
	// ConfirmExport answers the export prompt if the order is created finalized.
	ConfirmExport bool
}

// SaveResult is a persisted order plus what happened around it. ExportErr is
// set when the export was confirmed and failed; the save itself succeeded.
type SaveResult struct {
	Order          entities.Order
	Previous       entities.Status
	Effects        workflow.Effects
	ExportOffered  bool
	ExportLocation string
	ExportErr      error
}

// IOrderUseCase exposes the order operations behind the list and the edit
// dialog:
//   - list view => ListVisible()
//   - open the edit dialog => OpenEdit(), then SaveEdit() on submit
//   - "take order" button => Take()
//   - note form => AppendNote()
//   - document export => Export()

type IOrderUseCase interface {
	ListVisible(ctx context.Context, viewer entities.Viewer, criteria filter.Criteria) ([]entities.Order, error)
	GetByID(ctx context.Context, viewer entities.Viewer, id string) (OrderDetail, error)
	Create(ctx context.Context, viewer entities.Viewer, in CreateOrderInput) (SaveResult, error)
	OpenEdit(ctx context.Context, viewer entities.Viewer, id string) (*EditSession, error)
	SaveEdit(ctx context.Context, session *EditSession, prompter interfaces.IExportPrompter) (SaveResult, error)
	Take(ctx context.Context, viewer entities.Viewer, id string) (SaveResult, error)
	AppendNote(ctx context.Context, viewer entities.Viewer, id, content string) (entities.Order, error)
	Export(ctx context.Context, viewer entities.Viewer, id string) (string, error)
}

type OrderUseCase struct {
	repo     interfaces.IOrderRepository
	catalog  interfaces.IMaterialCatalog
	exporter interfaces.IDocumentExporter
	clock    func() time.Time
}

var _ IOrderUseCase = (*OrderUseCase)(nil)

func NewOrderUseCase(repo interfaces.IOrderRepository, catalog interfaces.IMaterialCatalog, exporter interfaces.IDocumentExporter) *OrderUseCase {
	return &OrderUseCase{
		repo:     repo,
		catalog:  catalog,
		exporter: exporter,
		clock:    func() time.Time { return time.Now().UTC() },
	}
}

func (u *OrderUseCase) ListVisible(ctx context.Context, viewer entities.Viewer, criteria filter.Criteria) ([]entities.Order, error) {
	all, err := u.repo.List(ctx)
	if err != nil {
		return nil, err
	}
	return filter.Visible(all, viewer, criteria), nil
}

func (u *OrderUseCase) GetByID(ctx context.Context, viewer entities.Viewer, id string) (OrderDetail, error) {
	o, err := u.load(ctx, viewer, id)
	if err != nil {
		return OrderDetail{}, err
	}
	catalog, err := u.catalog.ListMaterials(ctx)
	if err != nil {
		return OrderDetail{}, err
	}

	session := NewEditSession(o, catalog)
	return OrderDetail{
		Order:          o,
		Status:         session.PreviousStatus(),
		Notes:          session.Notes(),
		Materials:      session.Materials().Selections(),
		CanTake:        assignment.CanTake(o),
		AllowedTargets: session.AllowedTargets(),
	}, nil
}

func (u *OrderUseCase) Create(ctx context.Context, viewer entities.Viewer, in CreateOrderInput) (SaveResult, error) {
	in.Description = strings.TrimSpace(in.Description)
	if in.Description == "" {
		return SaveResult{}, ErrInvalidDescription
	}
	if in.Status == "" {
		in.Status = entities.StatusPending
	}

	var catalog []entities.Material
	if len(in.Materials) > 0 {
		var err error
		if catalog, err = u.catalog.ListMaterials(ctx); err != nil {
			return SaveResult{}, err
		}
	}

	now := u.clock()
	session := NewEditSession(entities.Order{
		ID:           uuid.NewString(),
		Status:       in.Status,
		Description:  in.Description,
		Sector:       in.Sector,
		Priority:     in.Priority,
		CustomerID:   strings.TrimSpace(in.CustomerID),
		CustomerName: strings.TrimSpace(in.CustomerName),
		ServiceKind:  strings.TrimSpace(in.ServiceKind),
		CreatedAt:    now,
	}, catalog)
	session.previous = entities.StatusPending
	session.Draft.Status = in.Status
	session.Assign(in.Responsibles)
	if err := session.Materials().Replace(in.Materials); err != nil {
		return SaveResult{}, err
	}
	if strings.TrimSpace(in.Note) != "" {
		if err := session.AddNote(in.Note, viewer.DisplayName); err != nil {
			return SaveResult{}, err
		}
	}

	return u.persist(ctx, session, ExportAnswer(in.ConfirmExport), u.repo.Create)
}

func (u *OrderUseCase) OpenEdit(ctx context.Context, viewer entities.Viewer, id string) (*EditSession, error) {
	o, err := u.load(ctx, viewer, id)
	if err != nil {
		return nil, err
	}
	catalog, err := u.catalog.ListMaterials(ctx)
	if err != nil {
		return nil, err
	}
	return NewEditSession(o, catalog), nil
}

// SaveEdit runs the session through the status workflow and submits the
// whole record. When the order enters Finalizada for the first time the
// prompter is asked about the export; the save goes ahead either way.
func (u *OrderUseCase) SaveEdit(ctx context.Context, session *EditSession, prompter interfaces.IExportPrompter) (SaveResult, error) {
	if session == nil || session.original.ID == "" {
		return SaveResult{}, ErrInvalidSession
	}
	return u.persist(ctx, session, prompter, u.repo.Update)
}

// Take assigns the order to the viewer. The order is fetched again right
// before the guard runs, so an assignment made by someone else since the
// list was loaded is reported as a conflict and nothing is submitted. The
// write itself is a claim that only lands on an unassigned record, which
// covers two takes racing past the guard.
func (u *OrderUseCase) Take(ctx context.Context, viewer entities.Viewer, id string) (SaveResult, error) {
	fresh, err := u.load(ctx, viewer, id)
	if err != nil {
		return SaveResult{}, err
	}

	now := u.clock()
	tech := entities.TechnicianRef{ID: viewer.TechnicianID, Name: viewer.DisplayName}
	out, err := assignment.Take(fresh, tech, now)
	if err != nil {
		return SaveResult{}, err
	}
	out.Order.UpdatedAt = now

	saved, err := u.repo.Claim(ctx, out.Order)
	if err != nil {
		return SaveResult{}, err
	}
	if saved.ID == "" {
		return SaveResult{}, ErrOrderNotFound
	}
	log.Info().Str("order_id", saved.ID).Str("technician_id", tech.ID).Msg("order taken")
	return SaveResult{Order: saved, Previous: out.Previous, Effects: out.Effects}, nil
}

// AppendNote adds one note to the order's log and saves the whole record.
// Legacy plain-text notes are migrated to the structured form on the way.
func (u *OrderUseCase) AppendNote(ctx context.Context, viewer entities.Viewer, id, content string) (entities.Order, error) {
	if strings.TrimSpace(content) == "" {
		return entities.Order{}, notelog.ErrEmptyContent
	}
	o, err := u.load(ctx, viewer, id)
	if err != nil {
		return entities.Order{}, err
	}

	fallback := o.UpdatedAt
	if fallback.IsZero() {
		fallback = o.CreatedAt
	}
	notes, err := notelog.Append(notelog.Parse(o.Notes, fallback), content, viewer.DisplayName)
	if err != nil {
		return entities.Order{}, err
	}

	next := o.Clone()
	next.Notes = notelog.Serialize(notes)
	next.UpdatedAt = u.clock()
	saved, err := u.repo.Update(ctx, next)
	if err != nil {
		return entities.Order{}, err
	}
	if saved.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	return saved, nil
}

func (u *OrderUseCase) Export(ctx context.Context, viewer entities.Viewer, id string) (string, error) {
	o, err := u.load(ctx, viewer, id)
	if err != nil {
		return "", err
	}
	return u.exporter.Export(ctx, o)
}

func (u *OrderUseCase) load(ctx context.Context, viewer entities.Viewer, id string) (entities.Order, error) {
	id = strings.TrimSpace(id)
	if id == "" {
		return entities.Order{}, ErrInvalidOrderID
	}

	o, err := u.repo.GetByID(ctx, id)
	if err != nil {
		return entities.Order{}, err
	}
	if o.ID == "" {
		return entities.Order{}, ErrOrderNotFound
	}
	if !filter.IsVisible(o, viewer) {
		return entities.Order{}, ErrOrderNotVisible
	}
	return o, nil
}

type persistFunc func(ctx context.Context, o entities.Order) (entities.Order, error)

func (u *OrderUseCase) persist(ctx context.Context, session *EditSession, prompter interfaces.IExportPrompter, save persistFunc) (SaveResult, error) {
	now := u.clock()
	out, err := workflow.Apply(session.previous, session.record(), now)
	if err != nil {
		return SaveResult{}, err
	}
	out.Order.UpdatedAt = now

	res := SaveResult{Previous: out.Previous, Effects: out.Effects}

	exportConfirmed := false
	if out.Effects.OfferExport && prompter != nil {
		res.ExportOffered = true
		exportConfirmed = prompter.ConfirmExport(ctx, out.Order)
	}

	saved, err := save(ctx, out.Order)
	if err != nil {
		return SaveResult{}, err
	}
	if saved.ID == "" {
		return SaveResult{}, ErrOrderNotFound
	}
	res.Order = saved

	if exportConfirmed {
		location, err := u.exporter.Export(ctx, saved)
		if err != nil {
			log.Error().Err(err).Str("order_id", saved.ID).Msg("order export failed")
			res.ExportErr = err
		} else {
			res.ExportLocation = location
		}
	}
	return res, nil
}

// ExportAnswer is a prompter whose reply is known up front, e.g. a flag sent
// along with the save request.
type ExportAnswer bool

func (a ExportAnswer) ConfirmExport(context.Context, entities.Order) bool {
	return bool(a)
}

var _ interfaces.IExportPrompter = ExportAnswer(false)
