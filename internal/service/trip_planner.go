package service

import (
	"context"
	"errors"
	"fmt"
	"log"
	"strings"
	"time"

	"tripgen/internal/ai"
	"tripgen/internal/maps"
	"tripgen/internal/modules/aiusage"
	"tripgen/internal/modules/prompt"
	"tripgen/internal/modules/tripplan"
	"tripgen/internal/modules/trips"
)

// ErrorKind classifies a failed generation for the transport layer.
type ErrorKind string

const (
	KindBadRequest  ErrorKind = "bad_request"
	KindQuota       ErrorKind = "quota"
	KindOverloaded  ErrorKind = "overloaded"
	KindBackend     ErrorKind = "backend"
	KindInvalidPlan ErrorKind = "invalid_plan"
	KindStorage     ErrorKind = "storage"
)

const (
	msgQuota   = "You have used all of your trip generations for this month."
	msgStorage = "Failed to save trip data"
)

// GenerationError carries a message the client can show as is.
// Reason is set for invalid plans and names the failed check.
type GenerationError struct {
	Kind    ErrorKind
	Message string
	Reason  string
	Err     error
}

func (e *GenerationError) Error() string {
	if e.Reason != "" {
		return e.Message + " (" + e.Reason + ")"
	}
	return e.Message
}

func (e *GenerationError) Unwrap() error { return e.Err }

type Dispatcher interface {
	Send(ctx context.Context, prompt string) ai.DispatchResult
}

type PlanValidator interface {
	Validate(ctx context.Context, raw, destination, placeID string) tripplan.Outcome
}

type PlaceResolver interface {
	Resolve(ctx context.Context, name string) (*maps.Place, error)
}

type QuotaGuard interface {
	Reserve(ctx context.Context, uid string) error
	Refund(ctx context.Context, uid string) error
}

// GenerateInput is one trip submission.
type GenerateInput struct {
	Request   prompt.Request
	PlaceID   string
	Travelers string
}

// TripPlanner orchestrates prompt rendering, dispatch, validation and storage.
type TripPlanner struct {
	dispatcher Dispatcher
	validator  PlanValidator
	store      trips.Store
	places     PlaceResolver
	quota      QuotaGuard
	template   string
	now        func() time.Time
}

// NewTripPlanner creates a TripPlanner. places and quota are optional and may be nil.
func NewTripPlanner(dispatcher Dispatcher, validator PlanValidator, store trips.Store, places PlaceResolver, quota QuotaGuard) *TripPlanner {
	return &TripPlanner{
		dispatcher: dispatcher,
		validator:  validator,
		store:      store,
		places:     places,
		quota:      quota,
		template:   prompt.DefaultTemplate,
		now:        time.Now,
	}
}

// Generate produces, validates and stores a trip for owner. Any failure after
// the quota reservation gives the reserved generation back.
func (p *TripPlanner) Generate(ctx context.Context, owner trips.Owner, in GenerateInput) (*trips.Trip, error) {
	req := in.Request.Normalize()
	if err := req.Validate(); err != nil {
		return nil, &GenerationError{Kind: KindBadRequest, Message: err.Error(), Err: err}
	}

	if p.quota != nil {
		if err := p.quota.Reserve(ctx, owner.UID); err != nil {
			if errors.Is(err, aiusage.ErrQuotaExhausted) {
				return nil, &GenerationError{Kind: KindQuota, Message: msgQuota, Err: err}
			}
			return nil, &GenerationError{Kind: KindStorage, Message: ai.MessageOther, Err: fmt.Errorf("reserve quota: %w", err)}
		}
	}

	trip, err := p.generate(ctx, owner, req, in)
	if err != nil && p.quota != nil {
		if rerr := p.quota.Refund(context.WithoutCancel(ctx), owner.UID); rerr != nil {
			log.Printf("trip planner: refund uid=%s: %v", owner.UID, rerr)
		}
	}
	return trip, err
}

func (p *TripPlanner) generate(ctx context.Context, owner trips.Owner, req prompt.Request, in GenerateInput) (*trips.Trip, error) {
	placeID := strings.TrimSpace(in.PlaceID)
	if placeID == "" && p.places != nil {
		place, err := p.places.Resolve(ctx, req.Destination)
		if err != nil {
			log.Printf("trip planner: resolve destination=%q: %v", req.Destination, err)
		} else {
			placeID = place.PlaceID
		}
	}

	res := p.dispatcher.Send(ctx, prompt.Render(p.template, req))
	if !res.OK {
		kind := KindBackend
		if res.Reason == ai.FailureOverloaded {
			kind = KindOverloaded
		}
		return nil, &GenerationError{Kind: kind, Message: res.Message}
	}

	out := p.validator.Validate(ctx, res.Text, req.Destination, placeID)
	if !out.Valid() {
		log.Printf("trip planner: invalid plan destination=%q reason=%s", req.Destination, out.Reason)
		return nil, &GenerationError{
			Kind:    KindInvalidPlan,
			Message: fmt.Sprintf("Failed to generate a valid trip plan for %s. Please try again.", req.Destination),
			Reason:  out.Reason,
		}
	}

	choice := trips.Choice{Request: req, PlaceID: placeID, Travelers: strings.TrimSpace(in.Travelers)}
	trip := trips.New(owner, choice, out.Trip, p.now())
	if err := p.store.Save(ctx, trip); err != nil {
		return nil, &GenerationError{Kind: KindStorage, Message: msgStorage, Err: fmt.Errorf("save trip: %w", err)}
	}

	log.Printf("trip generated id=%s uid=%s destination=%q attempts=%d images_replaced=%d",
		trip.ID, owner.UID, req.Destination, res.Attempts, out.ImagesReplaced)
	return trip, nil
}

// Get returns one of owner's trips. Trips of other users read as not found.
func (p *TripPlanner) Get(ctx context.Context, owner trips.Owner, id string) (*trips.Trip, error) {
	t, err := p.store.Get(ctx, id)
	if err != nil {
		return nil, err
	}
	if t.UserID != owner.UID {
		return nil, trips.ErrNotFound
	}
	return t, nil
}

// List returns owner's trips, newest first.
func (p *TripPlanner) List(ctx context.Context, owner trips.Owner) ([]*trips.Trip, error) {
	return p.store.ListByUser(ctx, owner.UID)
}
