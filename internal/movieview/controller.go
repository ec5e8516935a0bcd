package movieview

import (
	"context"
	"fmt"
	"log/slog"
	"strings"
	"sync"

	"marquee/internal/catalog"
	"marquee/internal/identity"
	"marquee/internal/logging"
	"marquee/internal/staff"
)

// Recorder observes successful detail loads, e.g. for the recently-viewed
// history. Failures are logged and never affect view state.
type Recorder interface {
	Record(ctx context.Context, movieID, title string) error
}

// Controller owns the view state for one movie detail view. All state lives
// behind one mutex; asynchronous completions re-enter under the lock and are
// applied only when their captured request generation is still current, so a
// late response for a superseded movie or user never overwrites newer state.
type Controller struct {
	client   catalog.API
	provider identity.Provider
	nav      Navigator
	recorder Recorder
	logger   *slog.Logger

	mu          sync.Mutex
	state       ViewState
	snap        identity.Snapshot
	entityGen   uint64
	favoriteGen uint64
	lastSync    syncKey
	subscriber  func(ViewState)

	inflight sync.WaitGroup
}

type syncKey struct {
	movieID string
	userID  string
}

// Option configures a Controller.
type Option func(*Controller)

// WithNavigator sets the navigation collaborator.
func WithNavigator(nav Navigator) Option {
	return func(c *Controller) { c.nav = nav }
}

// WithRecorder sets the history recorder.
func WithRecorder(recorder Recorder) Option {
	return func(c *Controller) { c.recorder = recorder }
}

// WithLogger sets the base logger.
func WithLogger(logger *slog.Logger) Option {
	return func(c *Controller) { c.logger = logger }
}

// New builds a controller over the catalog client and identity provider.
func New(client catalog.API, provider identity.Provider, opts ...Option) *Controller {
	c := &Controller{
		client:   client,
		provider: provider,
		snap:     identity.Snapshot{Loading: true},
	}
	for _, opt := range opts {
		opt(c)
	}
	c.logger = logging.NewComponentLogger(c.logger, "movieview")
	if provider != nil {
		c.snap = provider.Snapshot()
	}
	return c
}

// Subscribe registers a change listener invoked after every state
// transition. The listener receives a snapshot copy and runs outside the
// controller lock.
func (c *Controller) Subscribe(fn func(ViewState)) {
	c.mu.Lock()
	c.subscriber = fn
	c.mu.Unlock()
}

// State returns a snapshot copy of the current view state.
func (c *Controller) State() ViewState {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

// Wait blocks until all in-flight fetch completions have been applied or
// discarded. Intended for one-shot callers; an interactive host would rely
// on Subscribe instead.
func (c *Controller) Wait() {
	c.inflight.Wait()
}

// LocationPath returns the route for the currently shown movie.
func (c *Controller) LocationPath() string {
	c.mu.Lock()
	defer c.mu.Unlock()
	return moviePath(c.state.MovieID)
}

func moviePath(movieID string) string {
	return "/movie/" + movieID
}

// SetMovie points the view at a movie identifier. Each distinct identifier
// triggers exactly one fetch; repeating the current identifier is a no-op.
// The previous in-flight fetch, if any, is not cancelled — its completion
// is discarded by the generation guard.
func (c *Controller) SetMovie(ctx context.Context, movieID string) error {
	movieID = strings.TrimSpace(movieID)
	if movieID == "" {
		return fmt.Errorf("movie id must not be empty")
	}

	c.mu.Lock()
	if c.state.MovieID == movieID {
		c.mu.Unlock()
		return nil
	}
	c.entityGen++
	gen := c.entityGen
	c.state = ViewState{MovieID: movieID, Phase: LoadPending}
	c.maybeSyncFavoriteLocked(ctx)
	notify := c.notifyLocked()
	c.mu.Unlock()
	notify()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		movie, err := c.client.MovieDetails(ctx, movieID)

		c.mu.Lock()
		if gen != c.entityGen {
			c.mu.Unlock()
			c.logger.Debug("discarded stale movie response",
				logging.String(logging.FieldMovieID, movieID),
				logging.String(logging.FieldEventType, "stale_entity_fetch"))
			return
		}
		if err != nil {
			c.state.Phase = LoadFailed
			c.state.LoadErr = err
		} else {
			c.state.Phase = LoadReady
			c.state.Movie = movie
			c.state.LoadErr = nil
			c.state.Staff = staff.Classify(movie.Staff)
		}
		notify := c.notifyLocked()
		c.mu.Unlock()
		notify()

		if err != nil {
			c.logger.Warn("movie fetch failed",
				logging.String(logging.FieldMovieID, movieID),
				logging.Error(err))
			return
		}
		c.logger.Info("movie loaded",
			logging.String(logging.FieldMovieID, movieID),
			logging.Int("staff", len(movie.Staff)))
		c.recordView(ctx, movieID, movie)
	}()
	return nil
}

func (c *Controller) recordView(ctx context.Context, movieID string, movie *catalog.Movie) {
	if c.recorder == nil {
		return
	}
	title := movie.OriginalTitle
	if title == "" {
		title = movie.Title
	}
	if err := c.recorder.Record(ctx, movieID, title); err != nil {
		c.logger.Warn("record view history failed",
			logging.String(logging.FieldMovieID, movieID),
			logging.Error(err))
	}
}

// ApplyIdentity feeds an identity snapshot into the view. Favorite traffic
// stays gated until the snapshot has resolved to an authenticated user.
func (c *Controller) ApplyIdentity(ctx context.Context, snap identity.Snapshot) {
	c.mu.Lock()
	c.snap = snap
	c.maybeSyncFavoriteLocked(ctx)
	c.mu.Unlock()
}

// RefreshIdentity re-reads the provider snapshot and applies it.
func (c *Controller) RefreshIdentity(ctx context.Context) {
	if c.provider == nil {
		return
	}
	c.ApplyIdentity(ctx, c.provider.Snapshot())
}

// maybeSyncFavoriteLocked issues one favorite-status fetch per distinct
// (movie, user) pair once identity has resolved. The result overwrites any
// optimistic value established before resolution. Caller holds c.mu.
func (c *Controller) maybeSyncFavoriteLocked(ctx context.Context) {
	if c.snap.Loading || !c.snap.Authenticated || c.snap.UserID == "" {
		return
	}
	if c.state.MovieID == "" {
		return
	}
	key := syncKey{movieID: c.state.MovieID, userID: c.snap.UserID}
	if key == c.lastSync {
		return
	}
	c.lastSync = key
	c.favoriteGen++
	gen := c.favoriteGen

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		liked, err := c.client.FavoriteStatus(ctx, key.movieID, key.userID)

		c.mu.Lock()
		if gen != c.favoriteGen {
			c.mu.Unlock()
			c.logger.Debug("discarded stale favorite status",
				logging.String(logging.FieldMovieID, key.movieID),
				logging.String(logging.FieldUserID, key.userID),
				logging.String(logging.FieldEventType, "stale_favorite_sync"))
			return
		}
		if err != nil {
			c.state.Favorite.Err = err
			notify := c.notifyLocked()
			c.mu.Unlock()
			notify()
			c.logger.Warn("favorite status fetch failed",
				logging.String(logging.FieldMovieID, key.movieID),
				logging.Error(err))
			return
		}
		c.state.Favorite = FavoriteState{Known: true, Liked: liked}
		notify := c.notifyLocked()
		c.mu.Unlock()
		notify()
	}()
}

// ToggleFavorite handles the favorite interaction. Anonymous users are
// redirected into the login flow with the current location recorded and no
// state change. Authenticated users get an immediate optimistic flip; the
// mutation result reconciles afterwards — a failed request reverts the flip
// and surfaces a retryable error, a successful one trusts the state the
// server acknowledged.
func (c *Controller) ToggleFavorite(ctx context.Context) error {
	c.mu.Lock()
	snap := c.snap
	movieID := c.state.MovieID
	if movieID == "" {
		c.mu.Unlock()
		return fmt.Errorf("no movie loaded")
	}
	if !snap.Authenticated {
		c.mu.Unlock()
		if c.provider == nil {
			return fmt.Errorf("no identity provider configured")
		}
		c.logger.Info("toggle requires login",
			logging.String(logging.FieldMovieID, movieID))
		if err := c.provider.LoginWithRedirect(identity.LoginOptions{ReturnTo: moviePath(movieID)}); err != nil {
			return fmt.Errorf("login redirect: %w", err)
		}
		return nil
	}

	desired := !c.state.Favorite.Liked
	c.state.Favorite = FavoriteState{Known: true, Liked: desired}
	userID := snap.UserID
	notify := c.notifyLocked()
	c.mu.Unlock()
	notify()

	c.inflight.Add(1)
	go func() {
		defer c.inflight.Done()
		acknowledged, err := c.client.SetFavorite(ctx, movieID, userID, desired)

		c.mu.Lock()
		if c.state.MovieID != movieID || c.snap.UserID != userID {
			c.mu.Unlock()
			return
		}
		// A faster subsequent toggle may already have moved local state on;
		// reconcile only while this request's flip is still the latest.
		if c.state.Favorite.Liked == desired {
			if err != nil {
				c.state.Favorite.Liked = !desired
				c.state.Favorite.Err = fmt.Errorf("favorite update failed: %w", err)
			} else {
				c.state.Favorite.Liked = acknowledged
				c.state.Favorite.Err = nil
			}
		}
		notify := c.notifyLocked()
		c.mu.Unlock()
		notify()

		if err != nil {
			c.logger.Warn("favorite update failed",
				logging.String(logging.FieldMovieID, movieID),
				logging.String(logging.FieldUserID, userID),
				logging.Bool("desired", desired),
				logging.Error(err))
			return
		}
		c.logger.Info("favorite updated",
			logging.String(logging.FieldMovieID, movieID),
			logging.Bool("liked", acknowledged))
	}()
	return nil
}

// SelectPerson dispatches navigation for a selected staff member.
func (c *Controller) SelectPerson(personID string) {
	if c.nav == nil {
		return
	}
	c.nav.Navigate("/person-info/" + personID)
}

// notifyLocked captures the subscriber and a state snapshot under the lock
// and returns a closure to invoke after unlocking.
func (c *Controller) notifyLocked() func() {
	fn := c.subscriber
	if fn == nil {
		return func() {}
	}
	snapshot := c.state
	return func() { fn(snapshot) }
}
