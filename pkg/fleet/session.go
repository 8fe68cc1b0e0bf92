package fleet

import (
	"context"
	"sync"

	"github.com/samkiyya/SAM-Fleet/models"
	"github.com/samkiyya/SAM-Fleet/pkg/apiclient"
)

// Session ties the API client to the shared state. Every mutation goes over
// the wire first and touches the state only after the server confirms it;
// on failure the state is left exactly as it was. Mutations to the same
// record id are serialized so a double-submit cannot race itself, while
// different records proceed independently.
type Session struct {
	client *apiclient.Client
	state  *State

	mu    sync.Mutex
	locks map[string]*sync.Mutex
}

func NewSession(client *apiclient.Client) *Session {
	return &Session{
		client: client,
		state:  NewState(),
		locks:  make(map[string]*sync.Mutex),
	}
}

// State exposes the shared collection for rendering.
func (s *Session) State() *State {
	return s.state
}

func (s *Session) lockFor(id string) *sync.Mutex {
	s.mu.Lock()
	defer s.mu.Unlock()
	l, ok := s.locks[id]
	if !ok {
		l = &sync.Mutex{}
		s.locks[id] = l
	}
	return l
}

// Load performs the initial bulk fetch. On failure the collection is left
// empty; the caller shows the error inline rather than as a notification.
func (s *Session) Load(ctx context.Context) error {
	vehicles, err := s.client.FetchVehicles(ctx)
	if err != nil {
		s.state.Clear()
		return err
	}
	s.state.ReplaceAll(vehicles)
	return nil
}

// Create submits a draft record and appends the store-populated result.
// The duplicate-append guard in State.Add makes a re-applied response a
// no-op rather than a second row.
func (s *Session) Create(ctx context.Context, draft models.Vehicle) (*models.Vehicle, error) {
	created, err := s.client.AddVehicle(ctx, draft)
	if err != nil {
		return nil, err
	}
	s.state.Add(*created)
	return created, nil
}

// Update submits a full edit and replaces the matching entry with the
// server's copy. The identifier check inside the client runs before any
// network call; on a local rejection the state is untouched.
func (s *Session) Update(ctx context.Context, v models.Vehicle) (*models.Vehicle, error) {
	if !models.IsValidRecordID(v.ID) {
		return nil, apiclient.ErrInvalidVehicleID
	}
	l := s.lockFor(v.ID)
	l.Lock()
	defer l.Unlock()

	updated, err := s.client.UpdateVehicle(ctx, v)
	if err != nil {
		return nil, err
	}
	s.state.ReplaceByID(*updated)
	return updated, nil
}

// SetStatus submits a status-only mutation with the same replacement
// semantics as Update.
func (s *Session) SetStatus(ctx context.Context, id string, status models.VehicleStatus) (*models.Vehicle, error) {
	if !models.IsValidRecordID(id) {
		return nil, apiclient.ErrInvalidVehicleID
	}
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	updated, err := s.client.UpdateVehicleStatus(ctx, id, status)
	if err != nil {
		return nil, err
	}
	s.state.ReplaceByID(*updated)
	return updated, nil
}

// Delete removes the record locally only after the store confirms deletion.
func (s *Session) Delete(ctx context.Context, id string) error {
	if !models.IsValidRecordID(id) {
		return apiclient.ErrInvalidVehicleID
	}
	l := s.lockFor(id)
	l.Lock()
	defer l.Unlock()

	if err := s.client.DeleteVehicle(ctx, id); err != nil {
		return err
	}
	s.state.RemoveByID(id)

	s.mu.Lock()
	delete(s.locks, id)
	s.mu.Unlock()
	return nil
}

// Export downloads the whole collection in the given format.
func (s *Session) Export(ctx context.Context, format string) ([]byte, error) {
	return s.client.ExportVehicles(ctx, format)
}
