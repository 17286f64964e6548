// SPDX-License-Identifier: Apache-2.0
// Copyright 2026 Rasul Khiriev

package state

import (
	"context"
	"slices"

	"github.com/MKhiriev/donor-records/internal/logger"
	"github.com/MKhiriev/donor-records/internal/service"
	"github.com/MKhiriev/donor-records/models"
)

// Store is the record synchronization store. It is not safe for concurrent
// use: every method except the returned thunks must run on the goroutine
// that owns the store.
type Store struct {
	state TableState

	recordService service.ClientRecordService

	// seq is the last sequence token handed out; applied holds the token of
	// the newest fulfilled mutation per cached record id.
	seq     uint64
	applied map[string]uint64

	logger *logger.Logger
}

// NewStore returns a store in its initial state: no records, no error, not
// loading and the modal closed in create mode.
func NewStore(recordService service.ClientRecordService, logger *logger.Logger) *Store {
	return &Store{
		state:         initialTableState(),
		recordService: recordService,
		applied:       make(map[string]uint64),
		logger:        logger,
	}
}

// State returns a snapshot of the table state. The record slice is shared
// with the store and must not be modified.
func (s *Store) State() TableState {
	return s.state
}

// Visible returns the records shown by the table.
func (s *Store) Visible() []models.Record {
	return s.state.Visible()
}

// FetchAll starts replacing the cache with the server's full record set.
func (s *Store) FetchAll(ctx context.Context) Thunk {
	s.Apply(Action{Op: OpFetchAll, Phase: PhasePending})

	return func() Action {
		res := s.recordService.List(ctx)
		if res.Failed() {
			return Action{Op: OpFetchAll, Phase: PhaseRejected, Error: res.Error}
		}
		return Action{Op: OpFetchAll, Phase: PhaseFulfilled, Records: res.Data}
	}
}

// Create starts storing a new record. On success the record is prepended.
func (s *Store) Create(ctx context.Context, fields models.RecordFields) Thunk {
	s.Apply(Action{Op: OpCreate, Phase: PhasePending})

	return func() Action {
		res := s.recordService.Create(ctx, fields)
		if res.Failed() {
			return Action{Op: OpCreate, Phase: PhaseRejected, Error: res.Error}
		}
		return Action{Op: OpCreate, Phase: PhaseFulfilled, Record: res.Data}
	}
}

// Update starts replacing every editable field of record. On success the
// cached entry is replaced by the server's version.
func (s *Store) Update(ctx context.Context, record models.Record) Thunk {
	seq := s.nextSeq()
	s.Apply(Action{Op: OpUpdate, Phase: PhasePending, ID: record.ID, Seq: seq})

	fields := record.Fields()
	return func() Action {
		res := s.recordService.Update(ctx, record.ID, fields)
		if res.Failed() {
			return Action{Op: OpUpdate, Phase: PhaseRejected, ID: record.ID, Seq: seq, Error: res.Error}
		}
		return Action{Op: OpUpdate, Phase: PhaseFulfilled, ID: record.ID, Seq: seq, Record: res.Data, ctx: ctx}
	}
}

// Delete starts removing the record with id.
func (s *Store) Delete(ctx context.Context, id string) Thunk {
	seq := s.nextSeq()
	s.Apply(Action{Op: OpDelete, Phase: PhasePending, ID: id, Seq: seq})

	return func() Action {
		res := s.recordService.Delete(ctx, id)
		if res.Failed() {
			return Action{Op: OpDelete, Phase: PhaseRejected, ID: id, Seq: seq, Error: res.Error}
		}
		return Action{Op: OpDelete, Phase: PhaseFulfilled, ID: id, Seq: seq}
	}
}

// SetHighlight starts changing the highlight flag of the record with id. It
// does not block the table: the pending phase clears the error but leaves
// the loading flag alone.
func (s *Store) SetHighlight(ctx context.Context, id string, flag bool) Thunk {
	seq := s.nextSeq()
	s.Apply(Action{Op: OpSetHighlight, Phase: PhasePending, ID: id, Seq: seq})

	return func() Action {
		res := s.recordService.SetHighlight(ctx, id, flag)
		if res.Failed() {
			return Action{Op: OpSetHighlight, Phase: PhaseRejected, ID: id, Seq: seq, Error: res.Error}
		}
		return Action{Op: OpSetHighlight, Phase: PhaseFulfilled, ID: id, Seq: seq, Record: res.Data, ctx: ctx}
	}
}

// ToggleHighlight flips the cached highlight flag of the record with id. It
// returns nil when the id is not cached.
func (s *Store) ToggleHighlight(ctx context.Context, id string) Thunk {
	i := s.indexOf(id)
	if i < 0 {
		return nil
	}

	return s.SetHighlight(ctx, id, !s.state.Records[i].IsHighlighted)
}

// Apply reduces a into the state. It returns a follow-up thunk when the
// cache turned out to disagree with the server, nil otherwise.
func (s *Store) Apply(a Action) Thunk {
	switch a.Phase {
	case PhasePending:
		s.state.Error = ""
		if a.Op != OpSetHighlight {
			s.state.Loading = true
		}
		return nil

	case PhaseRejected:
		if a.Op != OpSetHighlight {
			s.state.Loading = false
		}
		s.state.Error = rejectionMessage(a)
		s.logger.Warn().
			Str("func", "Store.Apply").
			Str("op", string(a.Op)).
			Str("id", a.ID).
			Str("error", s.state.Error).
			Msg("record operation rejected")
		return nil

	case PhaseFulfilled:
		if a.Op != OpSetHighlight {
			s.state.Loading = false
		}
		if s.stale(a) {
			s.logger.Info().
				Str("func", "Store.Apply").
				Str("op", string(a.Op)).
				Str("id", a.ID).
				Uint64("seq", a.Seq).
				Uint64("applied", s.applied[a.ID]).
				Msg("discarding response superseded by a newer mutation")
			return nil
		}
		return s.fulfil(a)
	}

	return nil
}

func (s *Store) fulfil(a Action) Thunk {
	switch a.Op {
	case OpFetchAll:
		records := a.Records
		if records == nil {
			records = []models.Record{}
		}
		s.state.Records = records

	case OpCreate:
		s.state.Records = slices.Insert(slices.Clone(s.state.Records), 0, a.Record)

	case OpUpdate, OpSetHighlight:
		i := s.indexOf(a.Record.ID)
		if i < 0 {
			s.logger.Warn().
				Str("func", "Store.Apply").
				Str("op", string(a.Op)).
				Str("id", a.Record.ID).
				Msg("updated record is not cached, re-fetching records")
			return s.FetchAll(a.context())
		}
		records := slices.Clone(s.state.Records)
		records[i] = a.Record
		s.state.Records = records
		s.markApplied(a)

	case OpDelete:
		s.state.Records = slices.DeleteFunc(slices.Clone(s.state.Records), func(r models.Record) bool {
			return r.ID == a.ID
		})
		delete(s.applied, a.ID)
	}

	return nil
}

// SetSearchTerm sets the free-text search of the table.
func (s *Store) SetSearchTerm(term string) {
	s.state.SearchTerm = term
}

// SetFilterStatus sets the status filter. The empty status shows all.
func (s *Store) SetFilterStatus(status models.Status) {
	s.state.FilterStatus = status
}

// OpenModal opens the record form in mode. record is kept as a snapshot and
// is ignored in create mode.
func (s *Store) OpenModal(mode ModalMode, record *models.Record) {
	s.state.IsModalOpen = true
	s.state.ModalMode = mode
	s.state.EditingRecord = nil
	if record != nil && mode != ModalCreate {
		snapshot := *record
		s.state.EditingRecord = &snapshot
	}
}

// CloseModal closes the record form. The mode keeps its last value.
func (s *Store) CloseModal() {
	s.state.IsModalOpen = false
	s.state.EditingRecord = nil
}

// ClearError dismisses the error banner.
func (s *Store) ClearError() {
	s.state.Error = ""
}

func (s *Store) nextSeq() uint64 {
	s.seq++
	return s.seq
}

// stale reports whether a fulfilled mutation was dispatched before one that
// has already been applied to the same record. Rejected mutations never
// advance the applied token.
func (s *Store) stale(a Action) bool {
	if a.Seq == 0 || a.ID == "" {
		return false
	}

	return a.Seq < s.applied[a.ID]
}

func (s *Store) markApplied(a Action) {
	if a.Seq > s.applied[a.ID] {
		s.applied[a.ID] = a.Seq
	}
}

func (s *Store) indexOf(id string) int {
	return slices.IndexFunc(s.state.Records, func(r models.Record) bool {
		return r.ID == id
	})
}
