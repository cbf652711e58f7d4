package usecase

import (
	"context"
	"encoding/json"
	"errors"
	"log"
	"strings"
	"time"

	"buildquote/internal/domain/entities"
	"buildquote/internal/domain/session"
	"buildquote/internal/usecase/interfaces"
)

var (
	ErrInvalidSessionKey = errors.New("invalid session key")
	ErrEmptySnapshot     = errors.New("snapshot has no content")
)

// NoticeSnapshotDiscarded is the non-fatal message surfaced when a stored
// snapshot cannot be parsed and is dropped in favor of a fresh session.
const NoticeSnapshotDiscarded = "Your saved draft could not be restored and was discarded."

// DeferredExport describes the action interrupted by the auth boundary,
// re-armed once restoration completes.
type DeferredExport struct {
	Format entities.ExportFormat `json:"format"`
	Total  float64               `json:"total"`
}

// RestoreResult is the outcome of crossing the auth boundary back into an
// editing session.
type RestoreResult struct {
	Session  *session.EditingSession
	Restored bool
	Deferred *DeferredExport
	Notice   string
}

// ISessionReconciler bridges guest editing state with the authenticated
// session.
//
// State machine:
//
//	Editing(unauthenticated) --Snapshot--> SnapshotPending
//	SnapshotPending --Restore(marker)----> Editing(authenticated, restored)
//	SnapshotPending --Restore(no marker)-> Editing(authenticated, fresh)
//
// The stored snapshot is the single source of truth for the restore
// transition; it is left in place until the deferred action completes
// (Complete), then cleared. Restoration is opt-in via the explicit marker,
// never automatic.
type ISessionReconciler interface {
	Snapshot(ctx context.Context, key string, snap entities.GuestSessionSnapshot) error
	Restore(ctx context.Context, key string, restoreMarker bool) (RestoreResult, error)
	Complete(ctx context.Context, key string) error
}

type SessionReconciler struct {
	store  interfaces.ISnapshotStore
	units  IUnitsUseCase
	labels entities.SectionLabels
}

var _ ISessionReconciler = (*SessionReconciler)(nil)

func NewSessionReconciler(store interfaces.ISnapshotStore, units IUnitsUseCase, labels entities.SectionLabels) *SessionReconciler {
	return &SessionReconciler{store: store, units: units, labels: labels}
}

// Snapshot serializes the guest editing state at the guest→auth boundary.
func (r *SessionReconciler) Snapshot(ctx context.Context, key string, snap entities.GuestSessionSnapshot) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidSessionKey
	}
	if snap.ProjectName == "" && len(snap.LineItems) == 0 {
		return ErrEmptySnapshot
	}
	if snap.CreatedAt.IsZero() {
		snap.CreatedAt = time.Now().UTC()
	}

	payload, err := json.Marshal(snap)
	if err != nil {
		return err
	}
	log.Printf("[session][reconciler] snapshot stored key=%s items=%d format=%s", key, len(snap.LineItems), snap.Format)
	return r.store.Set(ctx, key, payload)
}

// Restore consumes the stored snapshot.
//
// Without the restore marker any stored snapshot is discarded and the caller
// gets a fresh empty session; stale drafts are never resurrected silently.
// A malformed snapshot is likewise discarded, with a non-fatal notice.
// When restoration re-arms a deferred export, the unit catalog must be
// available first; the bounded wait failing surfaces as an error alongside
// the already-restored session so no editing state is lost.
func (r *SessionReconciler) Restore(ctx context.Context, key string, restoreMarker bool) (RestoreResult, error) {
	key = strings.TrimSpace(key)
	if key == "" {
		return RestoreResult{}, ErrInvalidSessionKey
	}

	if !restoreMarker {
		if err := r.store.Remove(ctx, key); err != nil {
			log.Printf("[session][reconciler] discarding stale snapshot failed key=%s err=%v", key, err)
		}
		return RestoreResult{Session: session.New(r.labels)}, nil
	}

	payload, err := r.store.Get(ctx, key)
	if err != nil {
		return RestoreResult{}, err
	}
	if len(payload) == 0 {
		return RestoreResult{Session: session.New(r.labels)}, nil
	}

	var snap entities.GuestSessionSnapshot
	if err := json.Unmarshal(payload, &snap); err != nil {
		log.Printf("[session][reconciler] corrupt snapshot discarded key=%s err=%v", key, err)
		if rmErr := r.store.Remove(ctx, key); rmErr != nil {
			log.Printf("[session][reconciler] removing corrupt snapshot failed key=%s err=%v", key, rmErr)
		}
		return RestoreResult{
			Session: session.New(r.labels),
			Notice:  NoticeSnapshotDiscarded,
		}, nil
	}

	sess := session.New(r.labels)
	sess.ProjectName = snap.ProjectName
	sess.SelectedTrade = snap.SelectedTrade
	sess.Items = snap.LineItems
	if len(snap.TemplateData.Sections) > 0 {
		sess.Template = snap.TemplateData
	}
	sess.Step = stepFor(snap)

	result := RestoreResult{Session: sess, Restored: true}
	if snap.Format != "" {
		// Re-arming the export needs the unit catalog; wait for it rather
		// than producing an estimate with no valid unit mapping.
		if _, err := r.units.WaitForCatalog(ctx); err != nil {
			return result, err
		}
		result.Deferred = &DeferredExport{Format: snap.Format, Total: snap.Total}
	}
	log.Printf("[session][reconciler] restored key=%s step=%s deferred=%v", key, sess.Step, result.Deferred != nil)
	return result, nil
}

// Complete clears the snapshot once the deferred action has succeeded.
func (r *SessionReconciler) Complete(ctx context.Context, key string) error {
	key = strings.TrimSpace(key)
	if key == "" {
		return ErrInvalidSessionKey
	}
	return r.store.Remove(ctx, key)
}

// stepFor advances the wizard to whichever step matches the richness of the
// restored data.
func stepFor(snap entities.GuestSessionSnapshot) session.WizardStep {
	switch {
	case len(snap.LineItems) > 0:
		return session.StepPreview
	case strings.TrimSpace(snap.ProjectName) != "":
		return session.StepItems
	default:
		return session.StepProject
	}
}
