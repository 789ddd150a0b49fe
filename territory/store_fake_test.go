package territory

import (
	"context"
	"fmt"
	"sync"
	"time"

	"github.com/turfwars/api-go/models"
)

// fakeStore is an in-memory Store with transactional rollback, used to
// exercise the engine without a database. Transact serializes callers on one
// mutex, mirroring the row-lock serialization the real store gets from
// SELECT ... FOR UPDATE.
type fakeStore struct {
	mu          sync.Mutex
	locations   map[uint]*models.Location
	users       map[uint]*models.User
	memberships map[uint]uint
	teams       map[uint]string
	visits      []models.VisitRecord
	events      []models.CaptureEvent
	nextID      uint

	// failAddPoints simulates a storage failure inside the transaction.
	failAddPoints error
}

func newFakeStore() *fakeStore {
	return &fakeStore{
		locations:   make(map[uint]*models.Location),
		users:       make(map[uint]*models.User),
		memberships: make(map[uint]uint),
		teams:       make(map[uint]string),
	}
}

func (s *fakeStore) addLocation(id uint, lat, lon float64) *models.Location {
	loc := &models.Location{ID: id, Name: "Location", Latitude: lat, Longitude: lon}
	s.locations[id] = loc
	return loc
}

func (s *fakeStore) addUser(id uint, teamID *uint) *models.User {
	u := &models.User{ID: id, Username: "user"}
	s.users[id] = u
	if teamID != nil {
		s.memberships[id] = *teamID
	}
	return u
}

func (s *fakeStore) GetLocation(_ context.Context, id uint) (*models.Location, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	loc, ok := s.locations[id]
	if !ok {
		return nil, nil
	}
	copied := *loc
	return &copied, nil
}

func (s *fakeStore) CurrentTeam(_ context.Context, actorID uint) (*uint, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	teamID, ok := s.memberships[actorID]
	if !ok {
		return nil, nil
	}
	return &teamID, nil
}

func (s *fakeStore) CountActiveTeammates(_ context.Context, actorID, teamID uint, activeSince time.Time) (int64, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var count int64
	for userID, memberTeam := range s.memberships {
		if userID == actorID || memberTeam != teamID {
			continue
		}
		u := s.users[userID]
		if u == nil || u.LastHeartbeat == nil || u.LastLatitude == nil || u.LastLongitude == nil {
			continue
		}
		if !u.LastHeartbeat.Before(activeSince) {
			count++
		}
	}
	return count, nil
}

func (s *fakeStore) RecentCaptures(_ context.Context, limit int) ([]CaptureFeedItem, error) {
	s.mu.Lock()
	defer s.mu.Unlock()
	var feed []CaptureFeedItem
	for i := len(s.events) - 1; i >= 0 && len(feed) < limit; i-- {
		e := s.events[i]
		item := CaptureFeedItem{
			LocationName: s.locations[e.LocationID].Name,
			ActorName:    s.users[e.ActorID].Username,
			OccurredAt:   e.OccurredAt,
		}
		if e.TeamID != nil {
			name := s.teams[*e.TeamID]
			item.TeamName = &name
		}
		feed = append(feed, item)
	}
	return feed, nil
}

func (s *fakeStore) Transact(_ context.Context, fn func(tx TxStore) error) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	snapshot := s.snapshot()
	if err := fn(&fakeTx{s: s}); err != nil {
		s.restore(snapshot)
		return err
	}
	return nil
}

type fakeSnapshot struct {
	locations map[uint]models.Location
	users     map[uint]models.User
	visits    []models.VisitRecord
	events    []models.CaptureEvent
	nextID    uint
}

func (s *fakeStore) snapshot() fakeSnapshot {
	snap := fakeSnapshot{
		locations: make(map[uint]models.Location, len(s.locations)),
		users:     make(map[uint]models.User, len(s.users)),
		visits:    append([]models.VisitRecord(nil), s.visits...),
		events:    append([]models.CaptureEvent(nil), s.events...),
		nextID:    s.nextID,
	}
	for id, loc := range s.locations {
		snap.locations[id] = *loc
	}
	for id, u := range s.users {
		snap.users[id] = *u
	}
	return snap
}

func (s *fakeStore) restore(snap fakeSnapshot) {
	s.visits = snap.visits
	s.events = snap.events
	s.nextID = snap.nextID
	for id := range s.locations {
		loc := snap.locations[id]
		s.locations[id] = &loc
	}
	for id := range s.users {
		u := snap.users[id]
		s.users[id] = &u
	}
}

type fakeTx struct {
	s *fakeStore
}

func (t *fakeTx) LockLocation(id uint) (*models.Location, error) {
	loc, ok := t.s.locations[id]
	if !ok {
		return nil, nil
	}
	copied := *loc
	return &copied, nil
}

func (t *fakeTx) LastVisitSince(locationID, actorID uint, since time.Time) (*time.Time, error) {
	var last *time.Time
	for i := range t.s.visits {
		v := &t.s.visits[i]
		if v.LocationID != locationID || v.ActorID != actorID || v.CreatedAt.Before(since) {
			continue
		}
		if last == nil || v.CreatedAt.After(*last) {
			ts := v.CreatedAt
			last = &ts
		}
	}
	return last, nil
}

func (t *fakeTx) InsertVisit(v *models.VisitRecord) error {
	t.s.nextID++
	v.ID = t.s.nextID
	t.s.visits = append(t.s.visits, *v)
	return nil
}

func (t *fakeTx) IncrementWeeklyVisitCount(locationID uint) error {
	t.s.locations[locationID].WeeklyVisitCount++
	return nil
}

func (t *fakeTx) TeamVisitCounts(locationID uint, since time.Time) ([]TeamVisitCount, error) {
	byTeam := make(map[uint]int64)
	for i := range t.s.visits {
		v := &t.s.visits[i]
		if v.LocationID != locationID || v.TeamID == nil || v.CreatedAt.Before(since) {
			continue
		}
		byTeam[*v.TeamID]++
	}
	counts := make([]TeamVisitCount, 0, len(byTeam))
	for teamID, visits := range byTeam {
		counts = append(counts, TeamVisitCount{TeamID: teamID, Visits: visits})
	}
	return counts, nil
}

func (t *fakeTx) SetOwner(locationID uint, teamID *uint, at time.Time) error {
	loc := t.s.locations[locationID]
	loc.OwnerTeamID = teamID
	changed := at
	loc.LastOwnershipChangeAt = &changed
	return nil
}

func (t *fakeTx) AppendCaptureEvent(locationID, actorID uint, teamID *uint, occurredAt time.Time) error {
	t.s.nextID++
	t.s.events = append(t.s.events, models.CaptureEvent{
		ID:         t.s.nextID,
		LocationID: locationID,
		ActorID:    actorID,
		TeamID:     teamID,
		OccurredAt: occurredAt,
	})
	return nil
}

func (t *fakeTx) AddPoints(actorID uint, r Reward) error {
	if t.s.failAddPoints != nil {
		return t.s.failAddPoints
	}
	u, ok := t.s.users[actorID]
	if !ok {
		return fmt.Errorf("actor %d not found", actorID)
	}
	u.FuelPoints += r.Fuel
	u.RespectPoints += r.Respect
	u.XP += r.XP
	return nil
}

func uintPtr(v uint) *uint { return &v }
