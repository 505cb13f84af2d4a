package gacha

import (
	"context"
	"errors"
	"maps"
	"sync"
	"sync/atomic"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/internal/repository"
)

type ownKey struct{ player, card int64 }

type collectionState struct {
	players   map[int64]domain.Player
	cards     map[domain.ImageKey]domain.Card
	userCards map[ownKey]domain.UserCard
	nextCard  int64
	nextUC    int64
}

func (s collectionState) clone() collectionState {
	return collectionState{
		players:   maps.Clone(s.players),
		cards:     maps.Clone(s.cards),
		userCards: maps.Clone(s.userCards),
		nextCard:  s.nextCard,
		nextUC:    s.nextUC,
	}
}

// fakeCollection is an in-memory repository.Collection. Transactions work on
// a copy of the state that replaces it on commit.
type fakeCollection struct {
	mu       sync.Mutex
	state    collectionState
	grantErr error
}

func newFakeCollection(players ...domain.Player) *fakeCollection {
	f := &fakeCollection{state: collectionState{
		players:   make(map[int64]domain.Player),
		cards:     make(map[domain.ImageKey]domain.Card),
		userCards: make(map[ownKey]domain.UserCard),
	}}
	for _, p := range players {
		f.state.players[p.ID] = p
	}
	return f
}

func (f *fakeCollection) player(id int64) domain.Player {
	f.mu.Lock()
	defer f.mu.Unlock()
	return f.state.players[id]
}

func (f *fakeCollection) ownership() []domain.UserCard {
	f.mu.Lock()
	defer f.mu.Unlock()
	out := make([]domain.UserCard, 0, len(f.state.userCards))
	for _, uc := range f.state.userCards {
		out = append(out, uc)
	}
	return out
}

func (f *fakeCollection) GetPlayer(_ context.Context, id int64) (*domain.Player, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	p, ok := f.state.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (f *fakeCollection) GetOwnedCard(_ context.Context, playerID, userCardID int64) (*domain.OwnedCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	for _, uc := range f.state.userCards {
		if uc.ID != userCardID || uc.PlayerID != playerID {
			continue
		}
		for _, c := range f.state.cards {
			if c.ID == uc.CardID {
				ucCopy := uc
				return &domain.OwnedCard{Card: c, UserCard: &ucCopy}, nil
			}
		}
	}
	return nil, domain.ErrUserCardNotFound
}

func (f *fakeCollection) ListCollection(_ context.Context, playerID int64, includeUnowned bool) ([]domain.OwnedCard, error) {
	f.mu.Lock()
	defer f.mu.Unlock()
	var out []domain.OwnedCard
	for _, c := range f.state.cards {
		if uc, ok := f.state.userCards[ownKey{playerID, c.ID}]; ok {
			ucCopy := uc
			out = append(out, domain.OwnedCard{Card: c, UserCard: &ucCopy})
		} else if includeUnowned {
			out = append(out, domain.OwnedCard{Card: c})
		}
	}
	return out, nil
}

func (f *fakeCollection) ListOwnedKeysWithoutImage(context.Context, int, time.Time) ([]domain.ImageKey, error) {
	return nil, nil
}

// BeginTx refuses a done context the way pgxpool does.
func (f *fakeCollection) BeginTx(ctx context.Context) (repository.CollectionTx, error) {
	if err := ctx.Err(); err != nil {
		return nil, err
	}
	f.mu.Lock()
	defer f.mu.Unlock()
	return &fakeTx{parent: f, state: f.state.clone()}, nil
}

type fakeTx struct {
	parent *fakeCollection
	state  collectionState
	done   bool
}

func (t *fakeTx) Commit(context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	t.parent.mu.Lock()
	defer t.parent.mu.Unlock()
	t.parent.state = t.state
	return nil
}

func (t *fakeTx) Rollback(context.Context) error {
	if t.done {
		return errors.New(domain.ErrMsgTxClosed)
	}
	t.done = true
	return nil
}

func (t *fakeTx) GetPlayerForUpdate(_ context.Context, id int64) (*domain.Player, error) {
	p, ok := t.state.players[id]
	if !ok {
		return nil, domain.ErrPlayerNotFound
	}
	return &p, nil
}

func (t *fakeTx) UpdatePlayerCoins(_ context.Context, id int64, coins int) error {
	p := t.state.players[id]
	p.Coins = coins
	t.state.players[id] = p
	return nil
}

func (t *fakeTx) GetOrCreateCard(_ context.Context, key domain.ImageKey) (*domain.Card, error) {
	if c, ok := t.state.cards[key]; ok {
		return &c, nil
	}
	t.state.nextCard++
	c := domain.Card{ID: t.state.nextCard, VariantID: key.VariantID, RarityID: key.RarityID, StyleID: key.StyleID, ThemeID: key.ThemeID}
	t.state.cards[key] = c
	return &c, nil
}

func (t *fakeTx) GrantCard(_ context.Context, playerID, cardID int64) (*domain.UserCard, bool, error) {
	if t.parent.grantErr != nil {
		return nil, false, t.parent.grantErr
	}
	k := ownKey{playerID, cardID}
	if uc, ok := t.state.userCards[k]; ok {
		uc.Count++
		t.state.userCards[k] = uc
		return &uc, false, nil
	}
	t.state.nextUC++
	uc := domain.UserCard{ID: t.state.nextUC, PlayerID: playerID, CardID: cardID, Count: 1, ObtainedAt: time.Now()}
	t.state.userCards[k] = uc
	return &uc, true, nil
}

// fakeCatalogRepo serves legacy card keys.
type fakeCatalogRepo struct {
	repository.Catalog
	legacy []domain.ImageKey
}

func (f *fakeCatalogRepo) GetLegacyCardKeys(context.Context) ([]domain.ImageKey, error) {
	return f.legacy, nil
}

// staticStore serves a fixed snapshot.
type staticStore struct {
	snap *catalog.Snapshot
	err  error
}

func (s staticStore) Snapshot(context.Context) (*catalog.Snapshot, error) {
	return s.snap, s.err
}

func (s staticStore) Invalidate() {}

// countingEnsurer records requests and reports every key as generated.
type countingEnsurer struct {
	calls atomic.Int32
	reqs  []imagegen.Request
}

func (e *countingEnsurer) EnsureImages(_ context.Context, reqs []imagegen.Request) imagegen.Report {
	e.calls.Add(1)
	e.reqs = append(e.reqs, reqs...)
	report := make(imagegen.Report)
	for _, r := range reqs {
		report[r.Key()] = imagegen.Outcome{Status: imagegen.StatusGenerated}
	}
	return report
}

// cancellingEnsurer cancels the roll's request context while images are
// being produced, as a client disconnect during generation would.
type cancellingEnsurer struct {
	countingEnsurer
	cancel context.CancelFunc
	sawErr error
}

func (e *cancellingEnsurer) EnsureImages(ctx context.Context, reqs []imagegen.Request) imagegen.Report {
	e.cancel()
	e.sawErr = ctx.Err()
	return e.countingEnsurer.EnsureImages(ctx, reqs)
}

// memImages is a minimal repository.Image backing a real coordinator.
type memImages struct {
	repository.Image
	mu     sync.Mutex
	nextID int64
	stored map[domain.ImageKey]int64
}

func (m *memImages) FindCoveredKeys(_ context.Context, keys []domain.ImageKey, _ time.Time) (map[domain.ImageKey]bool, error) {
	m.mu.Lock()
	defer m.mu.Unlock()
	out := make(map[domain.ImageKey]bool)
	for _, k := range keys {
		if _, ok := m.stored[k]; ok {
			out[k] = true
		}
	}
	return out, nil
}

func (m *memImages) CreateImage(_ context.Context, img *domain.GeneratedImage) error {
	m.mu.Lock()
	defer m.mu.Unlock()
	if m.stored == nil {
		m.stored = make(map[domain.ImageKey]int64)
	}
	m.nextID++
	img.ID = m.nextID
	m.stored[img.Key] = img.ID
	return nil
}

// generator fails for the listed variant ids and counts calls per key.
type generator struct {
	mu      sync.Mutex
	failFor map[int64]bool
	perKey  map[domain.ImageKey]int
}

func (g *generator) Generate(_ context.Context, p *imagegen.Payload) (*imagegen.Artifact, error) {
	g.mu.Lock()
	if g.perKey == nil {
		g.perKey = make(map[domain.ImageKey]int)
	}
	g.perKey[domain.ImageKey{VariantID: p.CharacterVariant.ID, RarityID: p.Rarity.ID, StyleID: p.Style.ID, ThemeID: p.Theme.ID}]++
	g.mu.Unlock()
	if g.failFor[p.CharacterVariant.ID] {
		return nil, domain.ErrImageGeneration
	}
	return &imagegen.Artifact{ContentType: "image/png", Data: []byte("png")}, nil
}
