package services

import (
	"context"
	"errors"
	"fmt"
	"log"
	"os"
	"sync"

	"github.com/kerbaras/mangareader/pkg/config"
	"github.com/kerbaras/mangareader/pkg/data"
	"github.com/kerbaras/mangareader/pkg/reader"
	"github.com/kerbaras/mangareader/pkg/sources"
)

const notificationBuffer = 16

// MangaController owns the catalog, the ledger and the navigation state.
// Every user action is a method; failures are returned and also published
// on the notification channel.
type MangaController struct {
	catalog  *data.Catalog
	store    data.Store
	ledger   *Ledger
	redeemer *Redeemer
	prefs    *Preferences
	pages    *PageLoader

	mu            sync.Mutex
	state         reader.State
	notifications chan Notification
}

// NewMangaController wires the core around an already loaded catalog.
func NewMangaController(catalog *data.Catalog, store data.Store) *MangaController {
	return newMangaController(catalog, store, 3)
}

func newMangaController(catalog *data.Catalog, store data.Store, concurrency int) *MangaController {
	ledger := NewLedger(store, catalog)
	prefs := NewPreferences(store)
	return &MangaController{
		catalog:       catalog,
		store:         store,
		ledger:        ledger,
		redeemer:      NewRedeemer(catalog, ledger),
		prefs:         prefs,
		pages:         NewPageLoader(concurrency),
		state:         reader.NewState(prefs.FitMode(), prefs.Direction()),
		notifications: make(chan Notification, notificationBuffer),
	}
}

// NewMangaControllerFromConfig opens the configured store and loads the
// catalog. A catalog that fails to load is replaced by the fallback and
// reported as a notification rather than an error.
func NewMangaControllerFromConfig(ctx context.Context, cfg *config.Config) (*MangaController, error) {
	store, err := data.OpenStore(cfg.Store.Options())
	if err != nil {
		return nil, fmt.Errorf("failed to open store: %w", err)
	}

	catalog, loadErr := sources.LoadOrFallback(ctx, CatalogSource(cfg))
	c := newMangaController(catalog, store, cfg.PageConcurrency)
	if loadErr != nil {
		log.Printf("catalog: %v", loadErr)
		c.notify(ErrorNotification(loadErr))
	}
	return c, nil
}

// CatalogSource picks the source for the configured catalog location.
func CatalogSource(cfg *config.Config) sources.Source {
	location := cfg.Catalog.Location
	info, err := os.Stat(location)
	isDir := err == nil && info.IsDir()
	if isDir && cfg.Catalog.BaseURL != "" {
		return sources.NewDirectorySource(location, cfg.Catalog.BaseURL)
	}
	return sources.FromLocation(location, isDir)
}

func (c *MangaController) Catalog() *data.Catalog {
	return c.catalog
}

func (c *MangaController) Ledger() *Ledger {
	return c.ledger
}

func (c *MangaController) Preferences() *Preferences {
	return c.prefs
}

func (c *MangaController) Pages() *PageLoader {
	return c.pages
}

// Notifications returns the channel user-facing messages are sent on.
func (c *MangaController) Notifications() <-chan Notification {
	return c.notifications
}

// notify never blocks; when nobody is listening the message is dropped.
func (c *MangaController) notify(n Notification) {
	select {
	case c.notifications <- n:
	default:
	}
}

func (c *MangaController) fail(err error) error {
	if err != nil {
		c.notify(ErrorNotification(err))
	}
	return err
}

// State returns a copy of the current navigation state.
func (c *MangaController) State() reader.State {
	c.mu.Lock()
	defer c.mu.Unlock()
	return c.state
}

func (c *MangaController) transition(next func(reader.State) (reader.State, error)) error {
	c.mu.Lock()
	s, err := next(c.state)
	if err == nil {
		c.state = s
	}
	c.mu.Unlock()
	return c.fail(err)
}

func (c *MangaController) apply(next func(reader.State) reader.State) {
	c.mu.Lock()
	c.state = next(c.state)
	c.mu.Unlock()
}

func (c *MangaController) OpenTitle(titleID int) error {
	return c.transition(func(s reader.State) (reader.State, error) {
		return reader.OpenTitle(c.catalog, s, titleID)
	})
}

func (c *MangaController) OpenChapter(chapterID int) error {
	return c.transition(func(s reader.State) (reader.State, error) {
		return reader.OpenChapter(c.catalog, c.ledger, s, chapterID)
	})
}

func (c *MangaController) Back() {
	c.apply(reader.Back)
}

func (c *MangaController) NextChapter() error {
	return c.transition(func(s reader.State) (reader.State, error) {
		return reader.NextChapter(c.catalog, c.ledger, s)
	})
}

func (c *MangaController) PreviousChapter() error {
	return c.transition(func(s reader.State) (reader.State, error) {
		return reader.PreviousChapter(c.catalog, c.ledger, s)
	})
}

func (c *MangaController) NextPage() {
	c.apply(reader.NextPage)
}

func (c *MangaController) PreviousPage() {
	c.apply(reader.PreviousPage)
}

func (c *MangaController) StepPage(a reader.Arrow) {
	c.apply(func(s reader.State) reader.State { return reader.StepPage(s, a) })
}

func (c *MangaController) Zoom(delta float64) {
	c.apply(func(s reader.State) reader.State { return reader.Zoom(s, delta) })
}

func (c *MangaController) ResetZoom() {
	c.apply(reader.ResetZoom)
}

// SetFitMode changes the fit mode of the open chapter and persists it.
// Outside the reader it does nothing.
func (c *MangaController) SetFitMode(m reader.FitMode) error {
	c.mu.Lock()
	if c.state.View != reader.ViewReader {
		c.mu.Unlock()
		return nil
	}
	c.state = reader.SetFit(c.state, m)
	c.mu.Unlock()
	return c.fail(c.prefs.SetFitMode(m))
}

// SetDirection changes the reading direction of the open chapter and
// persists it. Outside the reader it does nothing.
func (c *MangaController) SetDirection(d reader.Direction) error {
	c.mu.Lock()
	if c.state.View != reader.ViewReader {
		c.mu.Unlock()
		return nil
	}
	c.state = reader.SetDirection(c.state, d)
	c.mu.Unlock()
	return c.fail(c.prefs.SetDirection(d))
}

// ToggleDirection flips between left-to-right and right-to-left.
func (c *MangaController) ToggleDirection() error {
	next := reader.RightToLeft
	if c.State().Direction == reader.RightToLeft {
		next = reader.LeftToRight
	}
	return c.SetDirection(next)
}

func (c *MangaController) Theme() Theme {
	return c.prefs.Theme()
}

func (c *MangaController) ToggleTheme() (Theme, error) {
	t, err := c.prefs.ToggleTheme()
	return t, c.fail(err)
}

// Redeem unlocks the chapter matching code and reports the outcome as a
// notification.
func (c *MangaController) Redeem(code string) (RedeemResult, error) {
	res, err := c.redeemer.Redeem(code)
	if err != nil {
		return res, c.fail(err)
	}
	if res.AlreadyUnlocked {
		c.notify(NewNotification(NotifyInfo, fmt.Sprintf("%s is already unlocked", res.Label)))
	} else {
		c.notify(NewNotification(NotifySuccess, fmt.Sprintf("%s unlocked successfully!", res.Label)))
	}
	return res, nil
}

// ShouldAutoOpen is true when the redeemed chapter belongs to the title
// currently on screen.
func (c *MangaController) ShouldAutoOpen(res RedeemResult) bool {
	s := c.State()
	return s.View != reader.ViewCatalog && s.TitleID == res.TitleID
}

// OpenRedeemed jumps to a chapter just unlocked in the current title.
func (c *MangaController) OpenRedeemed(res RedeemResult) error {
	if !c.ShouldAutoOpen(res) {
		return nil
	}
	return c.transition(func(s reader.State) (reader.State, error) {
		if s.View == reader.ViewReader {
			s = reader.Back(s)
		}
		return reader.OpenChapter(c.catalog, c.ledger, s, res.ChapterID)
	})
}

func (c *MangaController) Search(query string) []data.Title {
	return FilterTitles(c.catalog.Titles, query)
}

func (c *MangaController) CurrentTitle() *data.Title {
	s := c.State()
	if s.View == reader.ViewCatalog {
		return nil
	}
	return c.catalog.Title(s.TitleID)
}

func (c *MangaController) CurrentChapter() *data.Chapter {
	s := c.State()
	if s.View != reader.ViewReader {
		return nil
	}
	return c.catalog.Chapter(s.TitleID, s.ChapterID)
}

// CurrentPage returns the key and reference of the page under the cursor.
func (c *MangaController) CurrentPage() (PageKey, string, bool) {
	s := c.State()
	if s.View != reader.ViewReader {
		return PageKey{}, "", false
	}
	ch := c.catalog.Chapter(s.TitleID, s.ChapterID)
	if ch == nil || s.Cursor.Page >= len(ch.Pages) {
		return PageKey{}, "", false
	}
	key := PageKey{TitleID: s.TitleID, ChapterID: s.ChapterID, Page: s.Cursor.Page}
	return key, ch.Pages[s.Cursor.Page], true
}

// LoadCurrentPage starts loading the page under the cursor.
func (c *MangaController) LoadCurrentPage() (PageKey, bool) {
	key, ref, ok := c.CurrentPage()
	if ok {
		c.pages.Load(key, ref)
	}
	return key, ok
}

// RetryCurrentPage reloads the page under the cursor, bypassing the cache.
func (c *MangaController) RetryCurrentPage() (PageKey, bool) {
	key, ref, ok := c.CurrentPage()
	if ok {
		c.pages.Retry(key, ref)
	}
	return key, ok
}

// TitleProgress returns how many chapters of a title are readable.
func (c *MangaController) TitleProgress(titleID int) (unlocked, total int, err error) {
	title := c.catalog.Title(titleID)
	if title == nil {
		return 0, 0, &reader.NotFoundError{TitleID: titleID}
	}
	unlocked, err = c.ledger.CountUnlocked(titleID)
	return unlocked, len(title.Chapters), err
}

// IsUnlocked reports lock state, treating lookup failures as locked.
func (c *MangaController) IsUnlocked(titleID, chapterID int) bool {
	ok, err := c.ledger.IsUnlocked(titleID, chapterID)
	if err != nil {
		var notFound *reader.NotFoundError
		if !errors.As(err, &notFound) {
			log.Printf("lock check %d/%d: %v", titleID, chapterID, err)
		}
		return false
	}
	return ok
}

// Close stops the page loader and closes the store.
func (c *MangaController) Close() error {
	c.pages.Close()
	return c.store.Close()
}
