// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package service

import (
	"context"
	"encoding/json"
	"errors"
	"fmt"
	"sync"
	"sync/atomic"
	"time"

	"github.com/MKhiriev/lumina-sync/internal/adapter"
	"github.com/MKhiriev/lumina-sync/internal/logger"
	"github.com/MKhiriev/lumina-sync/internal/parser"
	"github.com/MKhiriev/lumina-sync/internal/reconcile"
	"github.com/MKhiriev/lumina-sync/internal/store"
	"github.com/MKhiriev/lumina-sync/models"
	"golang.org/x/sync/singleflight"
)

// errInFlight reports that a push for the same entity is already running.
// The caller's snapshot stays queued and is replayed later.
var errInFlight = errors.New("entity push already in flight")

// binding connects the generic engine to one entity kind: its local
// repository, its server endpoints and its field layout. T is the local
// entity, R the parsed server representation.
type binding[T, R any] interface {
	kind() models.EntityKind

	clientSideID(e T) string
	serverID(e T) string
	ownerID(e T) string
	withServerID(e T, id string) T
	// prepare fills the identity and timestamps of an entity about to be
	// saved and canonicalizes its subject.
	prepare(e T, clientSideID, ownerID string, now time.Time) T

	remoteID(r R) string
	merge(local T, remote R) T
	fromRemote(clientSideID string, remote R) T
	// prunes reports whether FetchAll deletes local entities the server
	// no longer lists.
	prunes() bool

	getLocal(ctx context.Context, clientSideID string) (T, error)
	getLocalByServerID(ctx context.Context, id string) (T, error)
	listLocal(ctx context.Context) ([]T, error)
	saveLocal(ctx context.Context, e T) error
	deleteLocal(ctx context.Context, clientSideID string) error

	create(ctx context.Context, e T) (R, error)
	update(ctx context.Context, e T) (R, error)
	deleteRemote(ctx context.Context, id string) error
	list(ctx context.Context) (parser.List[R], error)
}

// entitySync implements save, delete, fetch and replay for one entity kind
// on top of a binding.
type entitySync[T, R any] struct {
	b            binding[T, R]
	pending      *pendingQueue
	cache        *confirmedCache[T]
	sessions     SessionProvider
	connectivity ConnectivityStatus

	flight singleflight.Group

	inflightMu sync.Mutex
	inflight   map[string]struct{}
	// creating counts pushes that sent a create and have not confirmed it
	// locally yet.
	creating atomic.Int64

	now    func() time.Time
	newID  func() string
	logger *logger.Logger
}

func newEntitySync[T, R any](
	b binding[T, R],
	pendingRepo store.PendingOperationRepository,
	sessions SessionProvider,
	connectivity ConnectivityStatus,
	idGenerator func() string,
	logger *logger.Logger,
) *entitySync[T, R] {
	return &entitySync[T, R]{
		b:            b,
		pending:      newPendingQueue(b.kind(), pendingRepo, logger),
		cache:        newConfirmedCache(b.clientSideID),
		sessions:     sessions,
		connectivity: connectivity,
		inflight:     make(map[string]struct{}),
		now:          time.Now,
		newID:        idGenerator,
		logger:       logger,
	}
}

func (s *entitySync[T, R]) session() (models.Session, error) {
	if s.sessions == nil {
		return models.Session{}, ErrAuthRequired
	}
	sess, ok := s.sessions.Session()
	if !ok || sess.Token == "" || sess.UserID == "" {
		return models.Session{}, ErrAuthRequired
	}
	return sess, nil
}

func (s *entitySync[T, R]) online() bool {
	return s.connectivity == nil || s.connectivity.Online()
}

func (s *entitySync[T, R]) claim(clientSideID string) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	if _, busy := s.inflight[clientSideID]; busy {
		return false
	}
	s.inflight[clientSideID] = struct{}{}
	return true
}

func (s *entitySync[T, R]) release(clientSideID string) {
	s.inflightMu.Lock()
	delete(s.inflight, clientSideID)
	s.inflightMu.Unlock()
}

// beginCreate marks a create as running until the returned func is called.
func (s *entitySync[T, R]) beginCreate() func() {
	s.creating.Add(1)
	return func() { s.creating.Add(-1) }
}

func (s *entitySync[T, R]) isInFlight(clientSideID string) bool {
	s.inflightMu.Lock()
	defer s.inflightMu.Unlock()
	_, busy := s.inflight[clientSideID]
	return busy
}

// Restore loads the operations queued by a previous run.
func (s *entitySync[T, R]) Restore(ctx context.Context) error {
	return s.pending.Restore(ctx)
}

// PendingCount returns the number of queued operations.
func (s *entitySync[T, R]) PendingCount() int {
	return s.pending.Len()
}

// List returns the local entities.
func (s *entitySync[T, R]) List(ctx context.Context) ([]T, error) {
	items, err := s.b.listLocal(ctx)
	if err != nil {
		return nil, fmt.Errorf("list local %ss: %w", s.b.kind(), err)
	}
	return items, nil
}

// Confirmed returns the entities the server last confirmed.
func (s *entitySync[T, R]) Confirmed() []T {
	return s.cache.List()
}

// Save writes entity locally, queues it and pushes it when online.
func (s *entitySync[T, R]) Save(ctx context.Context, entity T) (T, error) {
	log := logger.FromContextOr(ctx, s.logger)

	sess, err := s.session()
	if err != nil {
		return entity, err
	}

	owner := reconcile.NormalizeID(s.b.ownerID(entity))
	if owner != "" && owner != reconcile.NormalizeID(sess.UserID) {
		return entity, fmt.Errorf("%w: %s belongs to user %s", ErrForbidden, s.b.kind(), owner)
	}

	clientSideID := s.b.clientSideID(entity)
	if clientSideID == "" {
		clientSideID = s.newID()
	} else if s.b.serverID(entity) == "" {
		if current, getErr := s.b.getLocal(ctx, clientSideID); getErr == nil {
			entity = s.b.withServerID(entity, s.b.serverID(current))
		}
	}
	entity = s.b.prepare(entity, clientSideID, reconcile.NormalizeID(sess.UserID), s.now())

	if err = s.b.saveLocal(ctx, entity); err != nil {
		return entity, fmt.Errorf("save %s locally: %w", s.b.kind(), err)
	}

	gen, err := s.pending.Put(ctx, clientSideID, models.OperationSave, entity)
	if err != nil {
		return entity, err
	}

	if !s.online() {
		log.Info().
			Str("func", "entitySync.Save").
			Str("kind", string(s.b.kind())).
			Str("client_side_id", clientSideID).
			Msg("offline, save queued")
		return entity, nil
	}

	merged, err := s.push(ctx, clientSideID, entity, gen)
	switch {
	case err == nil:
		return merged, nil
	case errors.Is(err, errInFlight):
		return entity, nil
	}

	s.pending.MarkFailed(ctx, clientSideID, gen, err)
	if errors.Is(err, ErrNetworkUnavailable) {
		log.Warn().Err(err).
			Str("func", "entitySync.Save").
			Str("kind", string(s.b.kind())).
			Str("client_side_id", clientSideID).
			Msg("server unreachable, save queued")
		return entity, nil
	}

	return entity, err
}

// push sends one save to the server and applies the confirmed result.
// Returned errors are already mapped to the service taxonomy.
func (s *entitySync[T, R]) push(ctx context.Context, clientSideID string, entity T, gen uint64) (T, error) {
	if !s.claim(clientSideID) {
		return entity, errInFlight
	}
	defer s.release(clientSideID)

	log := logger.FromContextOr(ctx, s.logger)

	// a previous create may have finished after this snapshot was queued
	if s.b.serverID(entity) == "" {
		if current, err := s.b.getLocal(ctx, clientSideID); err == nil && s.b.serverID(current) != "" {
			entity = s.b.withServerID(entity, s.b.serverID(current))
		}
	}

	var (
		remote  R
		err     error
		created func()
	)
	defer func() {
		if created != nil {
			created()
		}
	}()
	if s.b.serverID(entity) == "" {
		created = s.beginCreate()
		remote, err = s.b.create(ctx, entity)
	} else {
		remote, err = s.b.update(ctx, entity)
		if errors.Is(err, adapter.ErrNotFound) {
			log.Info().
				Str("func", "entitySync.push").
				Str("kind", string(s.b.kind())).
				Str("id", s.b.serverID(entity)).
				Msg("entity is gone on the server, creating it again")
			entity = s.b.withServerID(entity, "")
			created = s.beginCreate()
			remote, err = s.b.create(ctx, entity)
		}
	}
	if err != nil {
		mapped := mapAdapterError(err)
		if created != nil && errors.Is(mapped, ErrParse) {
			s.pauseCreate(ctx, clientSideID, gen, mapped)
		}
		return entity, mapped
	}

	merged := s.b.merge(entity, remote)
	if s.b.serverID(merged) == "" {
		err = fmt.Errorf("%w: %s response carries no id", ErrParse, s.b.kind())
		s.pauseCreate(ctx, clientSideID, gen, err)
		return entity, err
	}

	if err = s.confirm(ctx, clientSideID, gen, merged); err != nil {
		return entity, err
	}

	log.Debug().
		Str("func", "entitySync.push").
		Str("kind", string(s.b.kind())).
		Str("client_side_id", clientSideID).
		Str("id", s.b.serverID(merged)).
		Msg("entity synced")

	return merged, nil
}

// pauseCreate stops replaying a create the server may have applied without
// telling us its id. Replaying it would add another copy on every run.
func (s *entitySync[T, R]) pauseCreate(ctx context.Context, clientSideID string, gen uint64, cause error) {
	s.pending.Pause(context.WithoutCancel(ctx), clientSideID, gen)

	logger.FromContextOr(ctx, s.logger).Warn().Err(cause).
		Str("func", "entitySync.pauseCreate").
		Str("kind", string(s.b.kind())).
		Str("client_side_id", clientSideID).
		Msg("create response unreadable, replay paused until the next edit")
}

// confirm applies a successful push. The queued operation is completed only
// after the merged entity is stored; when storing fails the entry stays
// queued with the server id patched in, so the replay updates instead of
// creating a duplicate. When a newer operation replaced the pushed snapshot
// meanwhile, only the server id is carried over.
func (s *entitySync[T, R]) confirm(ctx context.Context, clientSideID string, gen uint64, merged T) error {
	log := logger.FromContextOr(ctx, s.logger)
	ctx = context.WithoutCancel(ctx)
	id := s.b.serverID(merged)

	saved := false
	if _, current, queued := s.pending.Get(clientSideID); queued && current == gen {
		s.dropShadow(ctx, clientSideID, id)
		if err := s.b.saveLocal(ctx, merged); err != nil {
			s.patchSnapshotID(ctx, clientSideID, id)
			return fmt.Errorf("store confirmed %s: %w", s.b.kind(), err)
		}
		if s.pending.Complete(ctx, clientSideID, gen) {
			s.cache.Upsert(merged)
			return nil
		}
		saved = true
	}

	op, _, queued := s.pending.Get(clientSideID)
	if queued && op.Operation == models.OperationDelete && saved {
		// the delete came in while the merged row was being written
		if err := s.b.deleteLocal(ctx, clientSideID); err != nil && !errors.Is(err, store.ErrEntityNotFound) {
			log.Err(err).
				Str("func", "entitySync.confirm").
				Str("client_side_id", clientSideID).
				Msg("failed to remove deleted entity")
		}
	}
	if !queued || op.Operation == models.OperationSave {
		if current, err := s.b.getLocal(ctx, clientSideID); err == nil && s.b.serverID(current) == "" {
			if err = s.b.saveLocal(ctx, s.b.withServerID(current, id)); err != nil {
				log.Err(err).
					Str("func", "entitySync.confirm").
					Str("client_side_id", clientSideID).
					Msg("failed to store server id")
			}
		}
	}
	if queued {
		s.patchSnapshotID(ctx, clientSideID, id)
	}
	return nil
}

// dropShadow removes a local copy of server entity id stored under another
// client side id, which a refresh racing the create may have written.
func (s *entitySync[T, R]) dropShadow(ctx context.Context, clientSideID, id string) {
	other, err := s.b.getLocalByServerID(ctx, id)
	if err != nil || s.b.clientSideID(other) == clientSideID {
		return
	}
	if _, _, queued := s.pending.Get(s.b.clientSideID(other)); queued {
		return
	}
	if err = s.b.deleteLocal(ctx, s.b.clientSideID(other)); err != nil {
		logger.FromContextOr(ctx, s.logger).Err(err).
			Str("func", "entitySync.dropShadow").
			Str("kind", string(s.b.kind())).
			Str("id", id).
			Msg("failed to remove duplicate local entity")
		return
	}
	s.cache.Remove(s.b.clientSideID(other))
}

// patchSnapshotID writes id into the queued snapshot if it has none.
func (s *entitySync[T, R]) patchSnapshotID(ctx context.Context, clientSideID, id string) {
	s.pending.Patch(ctx, clientSideID, func(op *models.PendingOperation) bool {
		var snapshot T
		if err := json.Unmarshal(op.Snapshot, &snapshot); err != nil || s.b.serverID(snapshot) != "" {
			return false
		}
		raw, err := json.Marshal(s.b.withServerID(snapshot, id))
		if err != nil {
			return false
		}
		op.Snapshot = raw
		return true
	})
}

// resolve finds a local entity by client side id or by server id.
func (s *entitySync[T, R]) resolve(ctx context.Context, key string) (T, bool, error) {
	entity, err := s.b.getLocal(ctx, key)
	if err == nil {
		return entity, true, nil
	}
	if !errors.Is(err, store.ErrEntityNotFound) {
		return entity, false, fmt.Errorf("get local %s: %w", s.b.kind(), err)
	}

	id := reconcile.NormalizeID(key)
	if id == "" {
		return entity, false, nil
	}
	entity, err = s.b.getLocalByServerID(ctx, id)
	if err == nil {
		return entity, true, nil
	}
	if !errors.Is(err, store.ErrEntityNotFound) {
		return entity, false, fmt.Errorf("get local %s by server id: %w", s.b.kind(), err)
	}
	return entity, false, nil
}

// Delete removes the entity locally first and then on the server. The
// local removal stands whatever the server answers.
func (s *entitySync[T, R]) Delete(ctx context.Context, key string) error {
	log := logger.FromContextOr(ctx, s.logger)

	sess, err := s.session()
	if err != nil {
		return err
	}

	entity, found, err := s.resolve(ctx, key)
	if err != nil {
		return err
	}
	if !found {
		id := reconcile.NormalizeID(key)
		if id == "" {
			return fmt.Errorf("%w: empty %s id", ErrNotFound, s.b.kind())
		}
		if !s.online() {
			return fmt.Errorf("%w: %s %s is not stored locally", ErrNetworkUnavailable, s.b.kind(), id)
		}
		err = s.b.deleteRemote(ctx, id)
		if err == nil || errors.Is(err, adapter.ErrNotFound) {
			return nil
		}
		return mapAdapterError(err)
	}

	owner := reconcile.NormalizeID(s.b.ownerID(entity))
	if owner != "" && owner != reconcile.NormalizeID(sess.UserID) {
		return fmt.Errorf("%w: %s belongs to user %s", ErrForbidden, s.b.kind(), owner)
	}

	clientSideID := s.b.clientSideID(entity)
	if err = s.b.deleteLocal(ctx, clientSideID); err != nil {
		return fmt.Errorf("delete local %s: %w", s.b.kind(), err)
	}
	s.cache.Remove(clientSideID)

	id := s.b.serverID(entity)
	if id == "" {
		if s.isInFlight(clientSideID) {
			// the running create patches its id into this snapshot
			_, err = s.pending.Put(ctx, clientSideID, models.OperationDelete, entity)
			return err
		}
		s.pending.Drop(ctx, clientSideID)
		return nil
	}

	gen, err := s.pending.Put(ctx, clientSideID, models.OperationDelete, entity)
	if err != nil {
		return err
	}
	if !s.online() || s.isInFlight(clientSideID) {
		log.Info().
			Str("func", "entitySync.Delete").
			Str("kind", string(s.b.kind())).
			Str("id", id).
			Msg("delete queued")
		return nil
	}

	err = s.pushDelete(ctx, clientSideID, id, gen)
	if errors.Is(err, ErrNetworkUnavailable) || errors.Is(err, errInFlight) {
		return nil
	}
	return err
}

// pushDelete sends a queued delete. A 404 means the server already forgot
// the entity, which is the state the user asked for.
func (s *entitySync[T, R]) pushDelete(ctx context.Context, clientSideID, id string, gen uint64) error {
	if !s.claim(clientSideID) {
		return errInFlight
	}
	defer s.release(clientSideID)

	err := s.b.deleteRemote(ctx, id)
	if err == nil || errors.Is(err, adapter.ErrNotFound) {
		s.pending.Complete(ctx, clientSideID, gen)
		return nil
	}

	mapped := mapAdapterError(err)
	if isRetryable(mapped) {
		s.pending.MarkFailed(ctx, clientSideID, gen, mapped)
	} else {
		s.pending.Complete(ctx, clientSideID, gen)
	}

	logger.FromContextOr(ctx, s.logger).Warn().Err(mapped).
		Str("func", "entitySync.pushDelete").
		Str("kind", string(s.b.kind())).
		Str("id", id).
		Bool("kept", isRetryable(mapped)).
		Msg("server delete failed")

	return mapped
}

// FetchAll refreshes the confirmed cache and the local store from the
// server. Concurrent calls share one request.
func (s *entitySync[T, R]) FetchAll(ctx context.Context) (models.SyncReport, error) {
	v, err, _ := s.flight.Do("fetch", func() (any, error) {
		return s.fetchAll(ctx)
	})
	report, _ := v.(models.SyncReport)
	return report, err
}

func (s *entitySync[T, R]) fetchAll(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContextOr(ctx, s.logger)
	report := models.SyncReport{Kind: s.b.kind(), StartedAt: s.now()}

	if _, err := s.session(); err != nil {
		return report, err
	}

	list, err := s.b.list(ctx)
	if err != nil {
		return report, mapAdapterError(err)
	}
	for _, skipped := range list.Skipped {
		log.Warn().Err(skipped).
			Str("func", "entitySync.fetchAll").
			Str("kind", string(s.b.kind())).
			Msg("skipping unreadable element")
	}
	report.Skipped = len(list.Skipped)

	locals, err := s.b.listLocal(ctx)
	if err != nil {
		return report, fmt.Errorf("list local %ss: %w", s.b.kind(), err)
	}

	byServerID := make(map[string]T, len(locals))
	for _, l := range locals {
		if id := reconcile.NormalizeID(s.b.serverID(l)); id != "" {
			byServerID[id] = l
		}
	}
	deleting := s.pendingDeleteIDs()

	seen := make(map[string]struct{}, len(list.Items))
	confirmed := make([]T, 0, len(list.Items))
	for _, r := range list.Items {
		id := s.b.remoteID(r)
		if id == "" {
			report.Skipped++
			continue
		}
		if _, dup := seen[id]; dup {
			continue
		}
		seen[id] = struct{}{}
		if _, ok := deleting[id]; ok {
			continue
		}

		local, known := byServerID[id]
		if !known {
			if s.creating.Load() > 0 {
				// may be the entity a running create is about to confirm
				continue
			}
			if current, getErr := s.b.getLocalByServerID(ctx, id); getErr == nil {
				local, known = current, true
			}
		}
		if !known {
			confirmed = append(confirmed, s.b.fromRemote(s.newID(), r))
			if err = s.b.saveLocal(ctx, confirmed[len(confirmed)-1]); err != nil {
				report.Failed++
				log.Err(err).Str("func", "entitySync.fetchAll").Str("id", id).Msg("failed to store server entity")
				continue
			}
			report.Synced++
			continue
		}

		merged := s.b.merge(local, r)
		confirmed = append(confirmed, merged)
		if _, _, queued := s.pending.Get(s.b.clientSideID(local)); queued {
			// the queued local edit is newer than what the server has
			continue
		}
		if err = s.b.saveLocal(ctx, merged); err != nil {
			report.Failed++
			log.Err(err).Str("func", "entitySync.fetchAll").Str("id", id).Msg("failed to store server entity")
			continue
		}
		report.Synced++
	}

	if s.b.prunes() {
		for _, l := range locals {
			id := reconcile.NormalizeID(s.b.serverID(l))
			if id == "" {
				continue
			}
			if _, ok := seen[id]; ok {
				continue
			}
			if _, _, queued := s.pending.Get(s.b.clientSideID(l)); queued {
				continue
			}
			if err = s.b.deleteLocal(ctx, s.b.clientSideID(l)); err != nil {
				report.Failed++
				log.Err(err).Str("func", "entitySync.fetchAll").Str("id", id).Msg("failed to prune local entity")
				continue
			}
			report.Deleted++
		}
	}

	s.cache.Replace(confirmed)
	report.FinishedAt = s.now()

	log.Info().
		Str("func", "entitySync.fetchAll").
		Str("kind", string(s.b.kind())).
		Int("synced", report.Synced).
		Int("skipped", report.Skipped).
		Int("deleted", report.Deleted).
		Msg("fetched from server")

	return report, nil
}

// pendingDeleteIDs returns the server ids of entities with a queued delete.
func (s *entitySync[T, R]) pendingDeleteIDs() map[string]struct{} {
	ids := make(map[string]struct{})
	for _, it := range s.pending.List() {
		if it.op.Operation != models.OperationDelete {
			continue
		}
		var snapshot T
		if err := json.Unmarshal(it.op.Snapshot, &snapshot); err != nil {
			continue
		}
		if id := reconcile.NormalizeID(s.b.serverID(snapshot)); id != "" {
			ids[id] = struct{}{}
		}
	}
	return ids
}

// SyncPending replays the queue oldest first. It stops at the first
// network failure; the remaining entries are counted as skipped.
func (s *entitySync[T, R]) SyncPending(ctx context.Context) (models.SyncReport, error) {
	log := logger.FromContextOr(ctx, s.logger)
	report := models.SyncReport{Kind: s.b.kind(), StartedAt: s.now()}

	if _, err := s.session(); err != nil {
		return report, err
	}

	items := s.pending.List()
	if len(items) > 0 && !s.online() {
		report.Skipped = len(items)
		report.FinishedAt = s.now()
		return report, fmt.Errorf("%w: %w", ErrSyncIncomplete, ErrNetworkUnavailable)
	}

	var firstErr error
	for i, it := range items {
		if err := ctx.Err(); err != nil {
			report.Skipped += len(items) - i
			if firstErr == nil {
				firstErr = mapAdapterError(err)
			}
			break
		}
		if it.op.Paused {
			report.Skipped++
			continue
		}

		err := s.replay(ctx, it)
		if err == nil {
			report.Synced++
			continue
		}
		if errors.Is(err, errInFlight) {
			report.Skipped++
			continue
		}

		report.Failed++
		if firstErr == nil {
			firstErr = err
		}
		log.Warn().Err(err).
			Str("func", "entitySync.SyncPending").
			Str("kind", string(s.b.kind())).
			Str("client_side_id", it.op.ClientSideID).
			Str("operation", string(it.op.Operation)).
			Msg("pending operation failed")

		if errors.Is(err, ErrNetworkUnavailable) {
			report.Skipped += len(items) - i - 1
			break
		}
	}

	report.FinishedAt = s.now()
	if firstErr != nil {
		return report, fmt.Errorf("%w: %w", ErrSyncIncomplete, firstErr)
	}
	return report, nil
}

func (s *entitySync[T, R]) replay(ctx context.Context, it pendingItem) error {
	clientSideID := it.op.ClientSideID

	var snapshot T
	if err := json.Unmarshal(it.op.Snapshot, &snapshot); err != nil {
		s.pending.Complete(ctx, clientSideID, it.gen)
		return fmt.Errorf("%w: pending %s snapshot: %w", ErrParse, s.b.kind(), err)
	}

	switch it.op.Operation {
	case models.OperationSave:
		_, err := s.push(ctx, clientSideID, snapshot, it.gen)
		if err != nil && !errors.Is(err, errInFlight) {
			s.pending.MarkFailed(ctx, clientSideID, it.gen, err)
		}
		return err
	case models.OperationDelete:
		id := s.b.serverID(snapshot)
		if id == "" {
			if s.isInFlight(clientSideID) {
				return errInFlight
			}
			s.pending.Complete(ctx, clientSideID, it.gen)
			return nil
		}
		return s.pushDelete(ctx, clientSideID, id, it.gen)
	default:
		s.pending.Complete(ctx, clientSideID, it.gen)
		return fmt.Errorf("unknown pending operation %q", it.op.Operation)
	}
}
