package console

import (
	"context"
	"slices"
	"sync"

	"github.com/FBurak/Restaurant-Web/internal/client/client"
	"github.com/FBurak/Restaurant-Web/internal/client/editbuffer"
	"github.com/FBurak/Restaurant-Web/internal/client/models"
	"github.com/FBurak/Restaurant-Web/internal/logging"
	pb "github.com/FBurak/Restaurant-Web/internal/proto"
)

// SignOuter ends the signed-in identity.
type SignOuter interface {
	SignOut(ctx context.Context) error
}

type Options struct {
	RestaurantID string
	Policy       editbuffer.Policy
	Logger       logging.Logger
	Notifier     Notifier
	Auth         SignOuter
}

type Session struct {
	client client.Client
	tenant string
	log    logging.Logger
	notify Notifier
	auth   SignOuter
	buf    *editbuffer.Synchronizer

	mu        sync.RWMutex
	open      bool
	starting  bool
	closed    bool
	profile   *models.Profile
	gallery   []models.GalleryItem
	passwords []models.PasswordItem

	cancel    context.CancelFunc
	wg        sync.WaitGroup
	closeOnce sync.Once
	closers   []func()
}

func New(c client.Client, opts Options) *Session {
	s := &Session{
		client: c,
		tenant: opts.RestaurantID,
		log:    opts.Logger,
		notify: opts.Notifier,
		auth:   opts.Auth,
	}
	if s.log == nil {
		s.log = logging.NewDiscard()
	}
	s.log = s.log.With("module", "console", "tenant", s.tenant)
	if s.notify == nil {
		s.notify = discardNotifier{}
	}
	s.buf = editbuffer.New(editbuffer.WriterFunc(s.mergeFields), opts.Policy)
	return s
}

// fail classifies err, logs it and shows it as a notice.
func (s *Session) fail(ctx context.Context, kind Kind, op string, err error) error {
	oe := classify(kind, op, err)
	s.log.Warn(ctx, "operation failed", "kind", oe.Kind.String(), "op", op, "error", err)
	s.notify.Notify(Notice{Level: LevelError, Text: oe.Error(), Err: oe})
	return oe
}

// Open makes sure the restaurant document exists, then starts the three
// subscriptions and the loop that applies their deliveries in order. A
// session opens once; a failed Open may be retried.
func (s *Session) Open(ctx context.Context) error {
	s.mu.Lock()
	switch {
	case s.closed:
		s.mu.Unlock()
		return ErrClosed
	case s.open || s.starting:
		s.mu.Unlock()
		return ErrAlreadyOpen
	}
	s.starting = true
	s.mu.Unlock()
	defer func() {
		s.mu.Lock()
		s.starting = false
		s.mu.Unlock()
	}()

	p, created, err := s.client.EnsureProfile(ctx, s.tenant)
	if err != nil {
		return s.fail(ctx, StoreReadError, "ensure restaurant", err)
	}
	if created {
		s.log.Info(ctx, "restaurant document created with defaults")
	}
	s.applyProfile(*p)

	loopCtx, cancel := context.WithCancel(ctx)

	profiles, err := s.client.SubscribeProfile(loopCtx, s.tenant)
	if err != nil {
		cancel()
		return s.fail(ctx, StoreReadError, "subscribe profile", err)
	}
	gallery, err := s.client.SubscribeGallery(loopCtx, s.tenant)
	if err != nil {
		profiles.Close()
		cancel()
		return s.fail(ctx, StoreReadError, "subscribe gallery", err)
	}
	passwords, err := s.client.SubscribePasswords(loopCtx, s.tenant)
	if err != nil {
		gallery.Close()
		profiles.Close()
		cancel()
		return s.fail(ctx, StoreReadError, "subscribe passwords", err)
	}

	s.mu.Lock()
	s.open = true
	s.cancel = cancel
	s.closers = []func(){profiles.Close, gallery.Close, passwords.Close}
	s.mu.Unlock()

	s.wg.Add(1)
	go func() {
		defer s.wg.Done()
		s.loop(loopCtx, profiles, gallery, passwords)
	}()
	return nil
}

func (s *Session) loop(
	ctx context.Context,
	profiles *client.Subscription[models.Profile],
	gallery *client.Subscription[[]models.GalleryItem],
	passwords *client.Subscription[[]models.PasswordItem],
) {
	pc, gc, wc := profiles.Updates(), gallery.Updates(), passwords.Updates()

	for pc != nil || gc != nil || wc != nil {
		select {
		case <-ctx.Done():
			return

		case p, ok := <-pc:
			if !ok {
				pc = nil
				s.subscriptionEnded(ctx, "profile", profiles.Err())
				continue
			}
			s.applyProfile(p)

		case items, ok := <-gc:
			if !ok {
				gc = nil
				s.subscriptionEnded(ctx, "gallery", gallery.Err())
				continue
			}
			s.mu.Lock()
			s.gallery = items
			s.mu.Unlock()

		case items, ok := <-wc:
			if !ok {
				wc = nil
				s.subscriptionEnded(ctx, "passwords", passwords.Err())
				continue
			}
			s.mu.Lock()
			s.passwords = items
			s.mu.Unlock()
		}
	}
}

func (s *Session) subscriptionEnded(ctx context.Context, name string, err error) {
	if err == nil || ctx.Err() != nil {
		return
	}
	_ = s.fail(ctx, StoreReadError, "subscribe "+name, err)
}

func (s *Session) applyProfile(p models.Profile) {
	s.mu.Lock()
	s.profile = &p
	s.mu.Unlock()

	s.buf.ApplySnapshot(FieldsFromProfile(p))
}

// Close releases the subscriptions and waits for the loop. It is safe to
// call on a session that never opened.
func (s *Session) Close() {
	s.closeOnce.Do(func() {
		s.mu.Lock()
		cancel, closers := s.cancel, s.closers
		s.open = false
		s.closed = true
		s.mu.Unlock()

		if cancel != nil {
			cancel()
		}
		for _, c := range closers {
			c()
		}
		s.wg.Wait()
	})
}

// SignOut closes the session and ends the signed-in identity.
func (s *Session) SignOut(ctx context.Context) error {
	s.Close()
	if s.auth == nil {
		return nil
	}
	if err := s.auth.SignOut(ctx); err != nil {
		return s.fail(ctx, AuthError, "sign out", err)
	}
	return nil
}

func (s *Session) RestaurantID() string { return s.tenant }

// Profile returns the last delivered document, or nil before Open.
func (s *Session) Profile() *models.Profile {
	s.mu.RLock()
	defer s.mu.RUnlock()
	if s.profile == nil {
		return nil
	}
	p := *s.profile
	p.Socials = make(map[string]string, len(s.profile.Socials))
	for k, v := range s.profile.Socials {
		p.Socials[k] = v
	}
	return &p
}

func (s *Session) Gallery() []models.GalleryItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.gallery)
}

func (s *Session) Passwords() []models.PasswordItem {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return slices.Clone(s.passwords)
}

func (s *Session) isOpen() bool {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.open
}

// FieldsFromProfile extracts the buffered form fields from a document.
// Unknown social keys and empty links are dropped.
func FieldsFromProfile(p models.Profile) editbuffer.Fields {
	f := editbuffer.Fields{
		About:     p.AboutHTML,
		VideoURL:  models.Value(p.VideoURL),
		GoogleURL: models.Value(p.GoogleBusinessURL),
		Socials:   editbuffer.Socials{},
	}
	for _, k := range editbuffer.SocialKeys {
		if v := p.Socials[string(k)]; v != "" {
			f.Socials[k] = v
		}
	}
	return f
}

// mergeFields writes the whole form field set. Empty URLs become null and
// every known social key is sent so that cleared links are removed.
func (s *Session) mergeFields(ctx context.Context, f editbuffer.Fields) error {
	socials := make(map[string]string, len(editbuffer.SocialKeys))
	for _, k := range editbuffer.SocialKeys {
		socials[string(k)] = f.Socials[k]
	}
	return s.client.MergeProfile(ctx, s.tenant, models.ProfilePatch{
		Fields:            []string{pb.FieldAboutHTML, pb.FieldVideoURL, pb.FieldGoogleBusinessURL, pb.FieldSocials},
		AboutHTML:         f.About,
		VideoURL:          models.NullIfEmpty(f.VideoURL),
		GoogleBusinessURL: models.NullIfEmpty(f.GoogleURL),
		Socials:           socials,
	})
}
