package collection

import (
	"context"
	"fmt"
	"time"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/concurrency"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/gacha"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/repository"
	"github.com/osse101/GatchaLife_Go/internal/utils"
)

// Filter narrows a collection listing. Names match case-insensitively and
// empty fields match everything.
type Filter struct {
	Rarity       string
	Style        string
	Theme        string
	Character    string
	Series       string
	ShowAll      bool
	ShowArchived bool
}

// Artist produces card artwork.
type Artist interface {
	EnsureImages(ctx context.Context, reqs []imagegen.Request) imagegen.Report
	Regenerate(ctx context.Context, req imagegen.Request) imagegen.Outcome
	// PendingCutoff is the creation time before which pending artwork counts
	// as missing.
	PendingCutoff() time.Time
}

// BackfillResult summarizes one backfill pass.
type BackfillResult struct {
	Scanned   int `json:"scanned"`
	Generated int `json:"generated"`
	Pending   int `json:"pending"`
	Failed    int `json:"failed"`
	Skipped   int `json:"skipped"`
}

// Service defines the collection operations
type Service interface {
	Player(ctx context.Context, playerID int64) (*domain.Player, error)
	List(ctx context.Context, playerID int64, filter Filter) ([]UserCardView, error)
	Get(ctx context.Context, playerID, userCardID int64) (*UserCardView, error)
	RerollImage(ctx context.Context, playerID, userCardID int64) (*UserCardView, error)
	CardViews(ctx context.Context, cards []domain.Card) ([]CardView, error)
	Image(ctx context.Context, imageID int64) (*domain.GeneratedImage, error)
	Backfill(ctx context.Context, limit int) (*BackfillResult, error)
}

type service struct {
	repo    repository.Collection
	images  repository.Image
	catalog catalog.Store
	artist  Artist
	rerolls *concurrency.LockManager
	baseURL string
}

// NewService creates a new collection service. baseURL prefixes artwork URLs
// and may be empty for relative URLs.
func NewService(repo repository.Collection, images repository.Image, store catalog.Store, artist Artist, baseURL string) Service {
	return &service{
		repo:    repo,
		images:  images,
		catalog: store,
		artist:  artist,
		rerolls: concurrency.NewLockManager(),
		baseURL: baseURL,
	}
}

// Player returns the player's progression and balance.
func (s *service) Player(ctx context.Context, playerID int64) (*domain.Player, error) {
	return s.repo.GetPlayer(ctx, playerID)
}

// List returns the player's cards, newest first.
func (s *service) List(ctx context.Context, playerID int64, filter Filter) ([]UserCardView, error) {
	if _, err := s.repo.GetPlayer(ctx, playerID); err != nil {
		return nil, err
	}

	owned, err := s.repo.ListCollection(ctx, playerID, filter.ShowAll)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListCollection, err)
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}

	cards := make([]domain.Card, len(owned))
	for i, oc := range owned {
		cards[i] = oc.Card
	}
	active, err := s.activeImages(ctx, cards)
	if err != nil {
		return nil, err
	}

	views := make([]UserCardView, 0, len(owned))
	for _, oc := range owned {
		if !matches(snap, oc.Card, filter) {
			continue
		}
		cv := s.view(snap, oc.Card, active)
		if cv.IsArchived && !filter.ShowArchived {
			continue
		}
		views = append(views, BuildUserCardView(cv, oc.UserCard))
	}
	return views, nil
}

// Get returns one owned card.
func (s *service) Get(ctx context.Context, playerID, userCardID int64) (*UserCardView, error) {
	oc, err := s.repo.GetOwnedCard(ctx, playerID, userCardID)
	if err != nil {
		return nil, err
	}
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	active, err := s.activeImages(ctx, []domain.Card{oc.Card})
	if err != nil {
		return nil, err
	}
	view := BuildUserCardView(s.view(snap, oc.Card, active), oc.UserCard)
	return &view, nil
}

// RerollImage generates a new artwork for an owned card regardless of the
// artwork it already has. Only one reroll per card runs at a time.
func (s *service) RerollImage(ctx context.Context, playerID, userCardID int64) (*UserCardView, error) {
	log := logger.FromContext(ctx)

	oc, err := s.repo.GetOwnedCard(ctx, playerID, userCardID)
	if err != nil {
		return nil, err
	}
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}

	req, err := requestFor(snap, oc.Card)
	if err != nil {
		return nil, err
	}

	key := oc.Card.Key().String()
	unlock, ok := s.rerolls.TryLock(key)
	if !ok {
		return nil, fmt.Errorf("user card %d: %w", userCardID, domain.ErrRerollInProgress)
	}
	defer unlock()

	log.Info(LogMsgRerollRequested, "user_card_id", userCardID, "key", key)
	out := s.artist.Regenerate(ctx, req)
	if out.Err != nil {
		log.Error(LogMsgRerollFailed, "user_card_id", userCardID, "error", out.Err)
		return nil, out.Err
	}

	return s.Get(ctx, playerID, userCardID)
}

// CardViews renders cards with their active artwork.
func (s *service) CardViews(ctx context.Context, cards []domain.Card) ([]CardView, error) {
	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	active, err := s.activeImages(ctx, cards)
	if err != nil {
		return nil, err
	}
	views := make([]CardView, len(cards))
	for i, c := range cards {
		views[i] = s.view(snap, c, active)
	}
	return views, nil
}

// Image returns stored artwork with its bytes.
func (s *service) Image(ctx context.Context, imageID int64) (*domain.GeneratedImage, error) {
	img, err := s.images.GetImage(ctx, imageID)
	if err != nil {
		return nil, err
	}
	if img.Status != domain.ImageStatusReady || len(img.Data) == 0 {
		return nil, domain.ErrImageNotFound
	}
	return img, nil
}

// Backfill generates artwork for owned cards that have none, up to limit
// cards per pass. Cards whose catalog entries are gone are skipped.
func (s *service) Backfill(ctx context.Context, limit int) (*BackfillResult, error) {
	log := logger.FromContext(ctx)

	keys, err := s.repo.ListOwnedKeysWithoutImage(ctx, limit, s.artist.PendingCutoff())
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToListMissingArt, err)
	}
	result := &BackfillResult{Scanned: len(keys)}
	if len(keys) == 0 {
		return result, nil
	}

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}

	reqs := make([]imagegen.Request, 0, len(keys))
	for _, key := range keys {
		req, err := requestFor(snap, domain.Card{
			VariantID: key.VariantID, RarityID: key.RarityID, StyleID: key.StyleID, ThemeID: key.ThemeID,
		})
		if err != nil {
			log.Warn(LogMsgBackfillSkipped, "key", key.String(), "error", err)
			result.Skipped++
			continue
		}
		reqs = append(reqs, req)
	}

	for _, out := range s.artist.EnsureImages(ctx, reqs) {
		switch out.Status {
		case imagegen.StatusGenerated, imagegen.StatusExisting:
			result.Generated++
		case imagegen.StatusPending:
			result.Pending++
		case imagegen.StatusFailed:
			result.Failed++
		default:
			result.Skipped++
		}
	}

	log.Info(LogMsgBackfillCompleted,
		"scanned", result.Scanned,
		"generated", result.Generated,
		"pending", result.Pending,
		"failed", result.Failed,
		"skipped", result.Skipped)
	return result, nil
}

func (s *service) activeImages(ctx context.Context, cards []domain.Card) (map[domain.ImageKey]domain.GeneratedImage, error) {
	if len(cards) == 0 {
		return nil, nil
	}
	keys := make([]domain.ImageKey, len(cards))
	for i, c := range cards {
		keys[i] = c.Key()
	}
	active, err := s.images.GetActiveImages(ctx, keys)
	if err != nil {
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadImages, err)
	}
	return active, nil
}

func (s *service) view(snap *catalog.Snapshot, card domain.Card, active map[domain.ImageKey]domain.GeneratedImage) CardView {
	var image *domain.GeneratedImage
	if img, ok := active[card.Key()]; ok {
		image = &img
	}
	return BuildCardView(snap, card, image, s.baseURL)
}

func matches(snap *catalog.Snapshot, card domain.Card, f Filter) bool {
	if f.Rarity != "" {
		r, ok := snap.Rarity(card.RarityID)
		if !ok || !utils.SameName(r.Name, f.Rarity) {
			return false
		}
	}
	if f.Style != "" {
		st, ok := snap.Style(card.StyleID)
		if !ok || !utils.SameName(st.Name, f.Style) {
			return false
		}
	}
	if f.Theme != "" {
		th, ok := snap.Theme(card.ThemeID)
		if !ok || !utils.SameName(th.Name, f.Theme) {
			return false
		}
	}
	if f.Character == "" && f.Series == "" {
		return true
	}
	v, ok := snap.Variant(card.VariantID)
	if !ok || v.Character == nil {
		return false
	}
	if f.Character != "" && !utils.SameName(v.Character.Name, f.Character) {
		return false
	}
	if f.Series != "" && !utils.SameName(v.Character.SeriesName, f.Series) {
		return false
	}
	return true
}

func requestFor(snap *catalog.Snapshot, card domain.Card) (imagegen.Request, error) {
	variant, okV := snap.Variant(card.VariantID)
	rarity, okR := snap.Rarity(card.RarityID)
	style, okS := snap.Style(card.StyleID)
	theme, okT := snap.Theme(card.ThemeID)
	if !okV || !okR || !okS || !okT {
		return imagegen.Request{}, fmt.Errorf("%w: %s %s", domain.ErrInvalidInput, ErrMsgUnknownCatalogEntry, card.Key())
	}

	req := imagegen.Request{
		Variant: variant,
		Rarity:  *rarity,
		Style:   *style,
		Theme:   *theme,
		Pose:    gacha.PoseFor(variant, *rarity, *style, *theme),
	}
	if cfg := gacha.ConfigurationFor(variant, *rarity, *style, *theme); cfg != nil {
		req.Config = *cfg
	}
	return req, nil
}
