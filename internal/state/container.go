// internal/state/container.go
package state

import (
	"errors"
	"fmt"
	"sync"

	"github.com/sirupsen/logrus"

	"github.com/seahome/seahome-backend/internal/config"
	"github.com/seahome/seahome-backend/internal/models"
	"github.com/seahome/seahome-backend/internal/seed"
	"github.com/seahome/seahome-backend/internal/storage"
)

var (
	ErrListingNotFound = errors.New("listing not found")
	ErrUserNotFound    = errors.New("user not found")
)

// Container owns the listing and user collections. It is the sole writer:
// every other component receives copies and signals mutations back through
// the methods below. Each mutation replaces the whole stored collection.
type Container struct {
	mtx   sync.Mutex
	store storage.Store

	listingsKey string
	usersKey    string

	listings []models.Listing
	users    []models.User
}

// New loads both collections once at bootstrap, falling back to seed data
// when a key is absent, unparsable or holds an empty collection.
func New(store storage.Store, cfg config.StoreConfig) (*Container, error) {
	c := &Container{
		store:       store,
		listingsKey: cfg.ListingsKey,
		usersKey:    cfg.UsersKey,
	}

	found, err := store.Load(cfg.ListingsKey, &c.listings)
	if err != nil {
		return nil, fmt.Errorf("failed to load listings: %w", err)
	}
	if !found || len(c.listings) == 0 {
		logrus.WithField("key", cfg.ListingsKey).Info("No stored listings, seeding")
		c.listings = seed.Listings()
		if err := store.Save(cfg.ListingsKey, c.listings); err != nil {
			return nil, fmt.Errorf("failed to persist seed listings: %w", err)
		}
	}

	found, err = store.Load(cfg.UsersKey, &c.users)
	if err != nil {
		return nil, fmt.Errorf("failed to load users: %w", err)
	}
	if !found || len(c.users) == 0 {
		logrus.WithField("key", cfg.UsersKey).Info("No stored users, seeding")
		c.users = seed.Users()
		if err := store.Save(cfg.UsersKey, c.users); err != nil {
			return nil, fmt.Errorf("failed to persist seed users: %w", err)
		}
	}

	return c, nil
}

// Listings returns a snapshot copy, newest first.
func (c *Container) Listings() []models.Listing {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	out := make([]models.Listing, 0, len(c.listings))
	for _, l := range c.listings {
		out = append(out, l.Clone())
	}
	return out
}

func (c *Container) ListingByID(id string) (models.Listing, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for _, l := range c.listings {
		if l.ID == id {
			return l.Clone(), nil
		}
	}
	return models.Listing{}, ErrListingNotFound
}

// AddListing prepends the listing so the collection stays ordered
// reverse-chronologically, then persists.
func (c *Container) AddListing(l models.Listing) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.listings = append([]models.Listing{l.Clone()}, c.listings...)
	return c.persistListings()
}

// UpdateListing replaces the stored listing with the same id.
func (c *Container) UpdateListing(l models.Listing) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.listings {
		if c.listings[i].ID == l.ID {
			c.listings[i] = l.Clone()
			return c.persistListings()
		}
	}
	return ErrListingNotFound
}

// MutateListing applies fn to the listing under the container lock, keeping
// read-modify-write cycles single-writer. If fn returns an error the listing
// is left untouched and nothing is persisted.
func (c *Container) MutateListing(id string, fn func(*models.Listing) error) (models.Listing, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.listings {
		if c.listings[i].ID != id {
			continue
		}
		updated := c.listings[i].Clone()
		if err := fn(&updated); err != nil {
			return models.Listing{}, err
		}
		c.listings[i] = updated
		if err := c.persistListings(); err != nil {
			return models.Listing{}, err
		}
		return updated.Clone(), nil
	}
	return models.Listing{}, ErrListingNotFound
}

func (c *Container) DeleteListing(id string) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.listings {
		if c.listings[i].ID == id {
			c.listings = append(c.listings[:i], c.listings[i+1:]...)
			return c.persistListings()
		}
	}
	return ErrListingNotFound
}

func (c *Container) Users() []models.User {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	out := make([]models.User, len(c.users))
	copy(out, c.users)
	return out
}

func (c *Container) UserByID(id string) (models.User, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for _, u := range c.users {
		if u.ID == id {
			return u, nil
		}
	}
	return models.User{}, ErrUserNotFound
}

// UpsertUser registers a user at session bootstrap or replaces the stored
// record. Users are never deleted in-session.
func (c *Container) UpsertUser(u models.User) error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.users {
		if c.users[i].ID == u.ID {
			c.users[i] = u
			return c.persistUsers()
		}
	}
	c.users = append(c.users, u)
	return c.persistUsers()
}

func (c *Container) MutateUser(id string, fn func(*models.User) error) (models.User, error) {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	for i := range c.users {
		if c.users[i].ID != id {
			continue
		}
		updated := c.users[i]
		if err := fn(&updated); err != nil {
			return models.User{}, err
		}
		c.users[i] = updated
		if err := c.persistUsers(); err != nil {
			return models.User{}, err
		}
		return updated, nil
	}
	return models.User{}, ErrUserNotFound
}

// ResetToSeed discards both collections and restores the demo data.
func (c *Container) ResetToSeed() error {
	c.mtx.Lock()
	defer c.mtx.Unlock()

	c.listings = seed.Listings()
	c.users = seed.Users()
	if err := c.persistListings(); err != nil {
		return err
	}
	return c.persistUsers()
}

func (c *Container) persistListings() error {
	if err := c.store.Save(c.listingsKey, c.listings); err != nil {
		return fmt.Errorf("failed to persist listings: %w", err)
	}
	return nil
}

func (c *Container) persistUsers() error {
	if err := c.store.Save(c.usersKey, c.users); err != nil {
		return fmt.Errorf("failed to persist users: %w", err)
	}
	return nil
}
