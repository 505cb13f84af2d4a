package gacha

import (
	"context"
	"errors"
	"fmt"

	"github.com/osse101/GatchaLife_Go/internal/catalog"
	"github.com/osse101/GatchaLife_Go/internal/domain"
	"github.com/osse101/GatchaLife_Go/internal/imagegen"
	"github.com/osse101/GatchaLife_Go/internal/logger"
	"github.com/osse101/GatchaLife_Go/internal/metrics"
	"github.com/osse101/GatchaLife_Go/internal/repository"
	"github.com/osse101/GatchaLife_Go/internal/sse"
)

// ImageEnsurer makes sure planned drops have artwork.
type ImageEnsurer interface {
	EnsureImages(ctx context.Context, reqs []imagegen.Request) imagegen.Report
}

// Notifier publishes roll events to live listeners.
type Notifier interface {
	Broadcast(eventType string, payload interface{})
}

type noopNotifier struct{}

func (noopNotifier) Broadcast(string, interface{}) {}

// Config holds the roll economics.
type Config struct {
	RollCost    int
	BatchSize   int
	MaxAttempts int
}

// Drop is one granted card of a roll.
type Drop struct {
	Grant     domain.Grant
	Candidate Candidate
	Image     imagegen.Outcome
}

// Result is the outcome of a roll.
type Result struct {
	Drops          []Drop
	RemainingCoins int
	Requested      int
	Delivered      int
	// Warning is set when the batch delivered fewer drops than requested.
	Warning         string
	ShortfallReason string
}

// Service defines the gacha roll operations
type Service interface {
	Roll(ctx context.Context, playerID int64) (*Result, error)
}

type service struct {
	catalog catalog.Store
	legacy  repository.Catalog
	ledger  *Ledger
	planner *Planner
	images  ImageEnsurer
	events  Notifier
	cfg     Config
}

// NewService creates a new gacha service. events may be nil.
func NewService(store catalog.Store, catalogRepo repository.Catalog, collectionRepo repository.Collection,
	images ImageEnsurer, events Notifier, rng RandomSource, cfg Config) Service {
	if cfg.RollCost < 0 {
		cfg.RollCost = DefaultRollCost
	}
	if cfg.BatchSize <= 0 {
		cfg.BatchSize = DefaultBatchSize
	}
	if events == nil {
		events = noopNotifier{}
	}
	return &service{
		catalog: store,
		legacy:  catalogRepo,
		ledger:  NewLedger(collectionRepo),
		planner: NewPlanner(rng, cfg.MaxAttempts),
		images:  images,
		events:  events,
		cfg:     cfg,
	}
}

// Roll charges the player, plans a batch, makes sure the drops have artwork
// and grants them. The debit stands even when a later step fails.
func (s *service) Roll(ctx context.Context, playerID int64) (*Result, error) {
	log := logger.FromContext(ctx).With("player_id", playerID)
	log.Info(LogMsgRollStarted, "cost", s.cfg.RollCost, "batch", s.cfg.BatchSize)

	snap, err := s.catalog.Snapshot(ctx)
	if err != nil {
		metrics.RollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadCatalog, err)
	}
	if err := snap.Validate(); err != nil {
		metrics.RollsTotal.WithLabelValues(metrics.OutcomeCatalogError).Inc()
		return nil, err
	}

	legacyKeys, err := s.legacy.GetLegacyCardKeys(ctx)
	if err != nil {
		metrics.RollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, fmt.Errorf("%s: %w", ErrMsgFailedToLoadLegacyCards, err)
	}
	legacy := make(map[domain.ImageKey]bool, len(legacyKeys))
	for _, k := range legacyKeys {
		legacy[k] = true
	}

	player, err := s.ledger.Debit(ctx, playerID, s.cfg.RollCost)
	if err != nil {
		if errors.Is(err, domain.ErrInsufficientFunds) {
			metrics.RollsTotal.WithLabelValues(metrics.OutcomeInsufficientFunds).Inc()
		} else {
			metrics.RollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
			log.Error(LogMsgDebitFailed, "error", err)
		}
		return nil, err
	}

	// The player has paid. Generation and the grant run to completion even if
	// the caller goes away; request-scoped values stay attached for logging.
	post := context.WithoutCancel(ctx)

	plan, err := s.planner.Plan(post, snap, legacy, player.Level, s.cfg.BatchSize)
	if err != nil {
		metrics.RollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		return nil, err
	}

	reqs := make([]imagegen.Request, len(plan.Candidates))
	for i, c := range plan.Candidates {
		reqs[i] = c.ImageRequest()
	}
	report := s.images.EnsureImages(post, reqs)

	keys := make([]domain.ImageKey, len(plan.Candidates))
	for i, c := range plan.Candidates {
		keys[i] = c.Key()
	}
	grants, err := s.ledger.Grant(post, player.ID, keys)
	if err != nil {
		metrics.RollsTotal.WithLabelValues(metrics.OutcomeError).Inc()
		log.Error(LogMsgGrantFailed, "error", err, "debited", s.cfg.RollCost)
		return nil, err
	}

	res := &Result{
		Drops:           make([]Drop, len(grants)),
		RemainingCoins:  player.Coins,
		Requested:       plan.Requested,
		Delivered:       len(grants),
		ShortfallReason: plan.ShortfallReason,
	}
	for i, g := range grants {
		cand := plan.Candidates[i]
		out := report[cand.Key()]
		if !out.HasImage() {
			log.Warn(LogMsgImageFailedForDrop, "key", cand.Key().String(), "status", out.Status, "error", out.Err)
		}
		res.Drops[i] = Drop{Grant: g, Candidate: cand, Image: out}
		metrics.DropsTotal.WithLabelValues(cand.Rarity.Name).Inc()
	}

	if plan.ShortfallReason != ShortfallNone {
		res.Warning = shortfallWarning(plan.ShortfallReason)
		metrics.ShortBatchesTotal.WithLabelValues(plan.ShortfallReason).Inc()
		log.Warn(LogMsgShortBatch,
			"requested", plan.Requested,
			"delivered", res.Delivered,
			"attempts", plan.Attempts,
			"legacy_collisions", plan.LegacyCollisions,
			"reason", plan.ShortfallReason)
	}

	metrics.RollsTotal.WithLabelValues(metrics.OutcomeSuccess).Inc()
	log.Info(LogMsgRollCompleted,
		"delivered", res.Delivered,
		"remaining_coins", res.RemainingCoins,
		"failed_images", report.Failed())
	s.events.Broadcast(sse.EventTypeRollCompleted, rollCompleted(player.ID, res))
	return res, nil
}

func rollCompleted(playerID int64, res *Result) sse.RollCompletedPayload {
	payload := sse.RollCompletedPayload{
		PlayerID:       playerID,
		Requested:      res.Requested,
		Delivered:      res.Delivered,
		RemainingCoins: res.RemainingCoins,
		UserCardIDs:    make([]int64, len(res.Drops)),
		Warning:        res.Warning,
	}
	for i, d := range res.Drops {
		payload.UserCardIDs[i] = d.Grant.UserCard.ID
		if d.Grant.IsNew {
			payload.NewCards++
		}
	}
	return payload
}

func shortfallWarning(reason string) string {
	if reason == ShortfallLegacyExhausted {
		return WarnMsgLegacyExhausted
	}
	return WarnMsgAttemptsExhausted
}
