package service

import (
	"context"
	"errors"
	"fmt"
	"math/rand"
	"sync"
	"time"

	"github.com/DanRulev/easyflash.git/internal/deck"
	"github.com/DanRulev/easyflash.git/internal/models"
	"github.com/DanRulev/easyflash.git/internal/session"
	"github.com/DanRulev/easyflash.git/internal/storage"
	"go.uber.org/zap"
)

type Options struct {
	LearnedThreshold   int
	DifficultThreshold int
	// Rand orders difficult drills; nil seeds one from the clock.
	Rand *rand.Rand
	Now  func() time.Time
}

// Controller owns the per-user view state on top of the shared deck: the
// selected category, the current drill and the last finished accuracy.
// Calls for the same user are serialised.
type Controller struct {
	deck    DeckI
	store   StoreI
	history HistoryRI
	streak  StreakAPII
	log     *zap.Logger

	learnedThreshold   int
	difficultThreshold int
	now                func() time.Time

	rngMu sync.Mutex
	rng   *rand.Rand

	locks sync.Map
}

// NewController accepts a nil history, in which case finished sessions are
// not recorded and History reports empty stats.
func NewController(d DeckI, store StoreI, history HistoryRI, streak StreakAPII, log *zap.Logger, opts Options) *Controller {
	c := &Controller{
		deck:               d,
		store:              store,
		history:            history,
		streak:             streak,
		log:                log,
		learnedThreshold:   opts.LearnedThreshold,
		difficultThreshold: opts.DifficultThreshold,
		now:                opts.Now,
		rng:                opts.Rand,
	}
	if c.learnedThreshold <= 0 {
		c.learnedThreshold = defaultLearned
	}
	if c.difficultThreshold <= 0 {
		c.difficultThreshold = defaultDifficult
	}
	if c.now == nil {
		c.now = time.Now
	}
	if c.rng == nil {
		c.rng = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return c
}

const (
	defaultLearned   = deck.DefaultLearnedThreshold
	defaultDifficult = deck.DefaultDifficultThreshold
)

// View is a read-only snapshot of a user's drill for rendering.
type View struct {
	SessionID string
	Mode      session.Mode
	Phase     session.Phase
	Card      models.Card
	HasCard   bool
	Position  int
	Total     int
	Revealed  bool
	Tally     session.Tally
	Accuracy  int
}

func viewOf(s *session.Session) View {
	card, ok := s.Current()
	return View{
		SessionID: s.ID(),
		Mode:      s.Mode(),
		Phase:     s.Phase(),
		Card:      card,
		HasCard:   ok,
		Position:  s.Position(),
		Total:     s.Len(),
		Revealed:  s.Revealed(),
		Tally:     s.Tally(),
		Accuracy:  s.Accuracy(),
	}
}

func (c *Controller) lock(userID int64) func() {
	mu, _ := c.locks.LoadOrStore(userID, &sync.Mutex{})
	m := mu.(*sync.Mutex)
	m.Lock()
	return m.Unlock
}

// update loads the user's state, lets fn mutate it and saves it back unless
// fn fails.
func (c *Controller) update(ctx context.Context, userID int64, fn func(st *storage.UserState, s *session.Session) error) (*session.Session, error) {
	unlock := c.lock(userID)
	defer unlock()

	st, err := c.store.State(ctx, userID)
	if err != nil {
		return nil, fmt.Errorf("failed to load state: %w", err)
	}

	s := session.Restore(st.Session)
	if err := fn(&st, s); err != nil {
		return s, err
	}

	st.Session = s.State()
	if err := c.store.SetState(ctx, userID, st); err != nil {
		return nil, fmt.Errorf("failed to save state: %w", err)
	}

	return s, nil
}

func (c *Controller) state(ctx context.Context, userID int64) (storage.UserState, error) {
	st, err := c.store.State(ctx, userID)
	if err != nil {
		return storage.UserState{}, fmt.Errorf("failed to load state: %w", err)
	}
	return st, nil
}

func (c *Controller) Load(ctx context.Context) error {
	if err := c.deck.Load(ctx); err != nil {
		c.log.Error("failed to load deck", zap.Error(err))
		return err
	}
	return nil
}

// SelectCategory sets the user's filter. Zero selects every card.
func (c *Controller) SelectCategory(ctx context.Context, userID, categoryID int64) error {
	if categoryID != models.AllCategories {
		if _, ok := c.deck.Category(categoryID); !ok {
			return &models.NotFoundError{Entity: "category", ID: categoryID}
		}
	}

	_, err := c.update(ctx, userID, func(st *storage.UserState, _ *session.Session) error {
		st.CategoryID = categoryID
		return nil
	})
	return err
}

// SelectedCategory reports the user's filter. A filter whose category no
// longer exists reads as zero.
func (c *Controller) SelectedCategory(ctx context.Context, userID int64) (int64, error) {
	st, err := c.state(ctx, userID)
	if err != nil {
		return models.AllCategories, err
	}
	return c.resolveCategory(st.CategoryID), nil
}

func (c *Controller) resolveCategory(id int64) int64 {
	if id == models.AllCategories {
		return id
	}
	if _, ok := c.deck.Category(id); !ok {
		return models.AllCategories
	}
	return id
}

func (c *Controller) Filtered(ctx context.Context, userID int64) ([]models.Card, error) {
	categoryID, err := c.SelectedCategory(ctx, userID)
	if err != nil {
		return nil, err
	}
	return c.deck.Filtered(categoryID), nil
}

// StartDrill starts a session over the user's filtered view.
func (c *Controller) StartDrill(ctx context.Context, userID int64) (View, error) {
	s, err := c.update(ctx, userID, func(st *storage.UserState, s *session.Session) error {
		cards := c.deck.Filtered(c.resolveCategory(st.CategoryID))
		return s.Start(session.ModeNormal, cards)
	})
	return c.result(s, err)
}

// StartDifficult starts a session over every card that is still hard, in
// random order.
func (c *Controller) StartDifficult(ctx context.Context, userID int64) (View, error) {
	s, err := c.update(ctx, userID, func(_ *storage.UserState, s *session.Session) error {
		c.rngMu.Lock()
		cards := deck.Difficult(c.deck.Cards(), c.difficultThreshold, c.rng)
		c.rngMu.Unlock()
		return s.Start(session.ModeDifficult, cards)
	})
	return c.result(s, err)
}

func (c *Controller) result(s *session.Session, err error) (View, error) {
	if s == nil {
		return View{}, err
	}
	return viewOf(s), err
}

func (c *Controller) Reveal(ctx context.Context, userID int64) (View, error) {
	s, err := c.update(ctx, userID, func(_ *storage.UserState, s *session.Session) error {
		s.Reveal()
		return nil
	})
	return c.result(s, err)
}

// Rate applies a rating to the current card. The boolean reports whether the
// rating was accepted; a rejected rating changes nothing.
func (c *Controller) Rate(ctx context.Context, userID int64, rating session.Rating) (View, bool, error) {
	var (
		rated    models.Card
		accepted bool
		finished *models.SessionResult
	)

	s, err := c.update(ctx, userID, func(st *storage.UserState, s *session.Session) error {
		rated, accepted = s.Rate(rating)
		if !accepted {
			return errRejected
		}
		if s.Phase() == session.Complete {
			st.LastAccuracy = s.Accuracy()
			st.HasFinished = true
			finished = c.sessionResult(userID, s)
		}
		return nil
	})
	if errors.Is(err, errRejected) {
		return viewOf(s), false, nil
	}
	if err != nil {
		return View{}, false, err
	}

	if _, err := c.deck.AddProgress(ctx, rated.ID, rating.Points()); err != nil {
		c.log.Warn("progress not recorded", zap.Int64("user_id", userID), zap.Int64("card_id", rated.ID), zap.Error(err))
	}

	if finished != nil {
		c.saveResult(ctx, *finished)
	}

	return viewOf(s), true, nil
}

var errRejected = errors.New("rating rejected")

func (c *Controller) sessionResult(userID int64, s *session.Session) *models.SessionResult {
	tally := s.Tally()
	return &models.SessionResult{
		UserID:     userID,
		SessionID:  s.ID(),
		Mode:       string(s.Mode()),
		CardCount:  s.Len(),
		Weak:       tally.Weak,
		Medium:     tally.Medium,
		Strong:     tally.Strong,
		Accuracy:   tally.Accuracy(),
		FinishedAt: c.now().UTC(),
	}
}

func (c *Controller) saveResult(ctx context.Context, result models.SessionResult) {
	if c.history == nil {
		return
	}
	if err := c.history.AddResult(ctx, result); err != nil {
		c.log.Warn("failed to save session result", zap.Int64("user_id", result.UserID), zap.String("session_id", result.SessionID), zap.Error(err))
	}
}

// Retry replays a finished session over the same cards. The tally carries
// over.
func (c *Controller) Retry(ctx context.Context, userID int64) (View, error) {
	s, err := c.update(ctx, userID, func(_ *storage.UserState, s *session.Session) error {
		return s.Retry()
	})
	return c.result(s, err)
}

func (c *Controller) Abandon(ctx context.Context, userID int64) error {
	_, err := c.update(ctx, userID, func(_ *storage.UserState, s *session.Session) error {
		s.Abandon()
		return nil
	})
	return err
}

func (c *Controller) Current(ctx context.Context, userID int64) (View, error) {
	st, err := c.state(ctx, userID)
	if err != nil {
		return View{}, err
	}
	return viewOf(session.Restore(st.Session)), nil
}

// Accuracy is the running accuracy of the user's session, or that of the
// last finished one when no session is running.
func (c *Controller) Accuracy(ctx context.Context, userID int64) (int, error) {
	st, err := c.state(ctx, userID)
	if err != nil {
		return 0, err
	}

	s := session.Restore(st.Session)
	if s.Phase() != session.Idle {
		return s.Accuracy(), nil
	}
	if st.HasFinished {
		return st.LastAccuracy, nil
	}
	return 0, nil
}

func (c *Controller) LearnedCount() int {
	return c.deck.LearnedCount(c.learnedThreshold)
}

func (c *Controller) Streak(ctx context.Context) (int, error) {
	streak, err := c.streak.Streak(ctx)
	if err != nil {
		c.log.Warn("failed to read streak", zap.Error(err))
		return 0, err
	}
	return streak.Count, nil
}

func (c *Controller) RegisterStreak(ctx context.Context) (int, error) {
	streak, err := c.streak.RegisterStreak(ctx)
	if err != nil {
		c.log.Warn("failed to register streak", zap.Error(err))
		return 0, err
	}
	return streak.Count, nil
}

func (c *Controller) History(ctx context.Context, userID int64) (models.SessionStats, error) {
	if c.history == nil {
		return models.SessionStats{}, nil
	}

	stats, err := c.history.Stats(ctx, userID)
	if err != nil {
		c.log.Warn("failed to get session stats", zap.Int64("user_id", userID), zap.Error(err))
		return models.SessionStats{}, err
	}
	return stats, nil
}

func (c *Controller) Results(ctx context.Context, userID int64, offset int) ([]models.SessionResult, int, error) {
	if c.history == nil {
		return []models.SessionResult{}, 0, nil
	}
	return c.history.Results(ctx, userID, offset)
}

func (c *Controller) RegisterChat(ctx context.Context, chatID int64) error {
	return c.store.AddChat(ctx, chatID)
}

func (c *Controller) Chats(ctx context.Context) ([]int64, error) {
	return c.store.Chats(ctx)
}
