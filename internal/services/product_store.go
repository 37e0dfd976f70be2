// internal/services/product_store.go
package services

import (
	"sync"

	"github.com/google/uuid"
	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/expiry"
	"github.com/javajoker/shelflife/internal/models"
)

var (
	ErrOutOfRange      = errors.New("index out of range")
	ErrProductNotFound = errors.New("product not found")
)

// ProductRepository persists the ordered product list. Implementations
// receive the full ordered snapshot so positions always match the store.
type ProductRepository interface {
	LoadProducts() ([]models.Product, error)
	SaveProducts(products []models.Product) error
}

// ProductStore keeps products in insertion order. Indices are positional and
// shift on removal; IDs are stable for the lifetime of a record.
type ProductStore struct {
	mu       sync.RWMutex
	products []models.Product
	repo     ProductRepository
	clock    expiry.Clock
	log      logrus.FieldLogger
}

func NewProductStore(repo ProductRepository, clock expiry.Clock, log logrus.FieldLogger) *ProductStore {
	if clock == nil {
		clock = expiry.SystemClock{}
	}
	if log == nil {
		log = logrus.StandardLogger()
	}
	return &ProductStore{repo: repo, clock: clock, log: log}
}

// Load replaces the in-memory list with what the repository holds.
func (s *ProductStore) Load() error {
	if s.repo == nil {
		return nil
	}

	products, err := s.repo.LoadProducts()
	if err != nil {
		return errors.Wrap(err, "failed to load products")
	}

	s.mu.Lock()
	defer s.mu.Unlock()
	s.products = products
	s.reindex()
	return nil
}

// NewProduct builds a record from storage-format text. Unparsable dates fall
// back to today; the returned ParseResult reports when that happened.
func (s *ProductStore) NewProduct(name, expiryText string) (models.Product, expiry.ParseResult) {
	res := expiry.ParseStorageDate(expiryText, s.clock)
	if res.Fallback {
		s.log.WithFields(logrus.Fields{
			"product": name,
			"input":   expiryText,
		}).WithError(res.Err).Warn("Expiry date unparsable, using today")
	}

	now := s.clock.Now().UTC()
	return models.Product{
		BaseModel: models.BaseModel{
			ID:        uuid.New(),
			CreatedAt: now,
			UpdatedAt: now,
		},
		Name:       name,
		ExpiryDate: res.Date,
	}, res
}

// Add appends the product and returns its index.
func (s *ProductStore) Add(product models.Product) (int, error) {
	if product.ID == uuid.Nil {
		product.ID = uuid.New()
	}
	product.ExpiryDate = expiry.Midnight(product.ExpiryDate)

	s.mu.Lock()
	defer s.mu.Unlock()

	product.Position = len(s.products)
	next := append(s.snapshot(), product)
	if err := s.persist(next); err != nil {
		return -1, err
	}
	s.products = next
	return product.Position, nil
}

// RemoveAt deletes the product at index; later products move down by one.
func (s *ProductStore) RemoveAt(index int) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if !s.inRange(index) {
		return models.Product{}, errors.Wrapf(ErrOutOfRange, "remove at %d (count %d)", index, len(s.products))
	}
	return s.removeLocked(index)
}

func (s *ProductStore) RemoveByID(id uuid.UUID) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return models.Product{}, errors.Wrapf(ErrProductNotFound, "id %s", id)
	}
	return s.removeLocked(index)
}

func (s *ProductStore) Get(index int) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.inRange(index) {
		return models.Product{}, errors.Wrapf(ErrOutOfRange, "get at %d (count %d)", index, len(s.products))
	}
	return s.products[index], nil
}

// FindByID returns the product and its current index.
func (s *ProductStore) FindByID(id uuid.UUID) (models.Product, int, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	index := s.indexOfLocked(id)
	if index < 0 {
		return models.Product{}, -1, errors.Wrapf(ErrProductNotFound, "id %s", id)
	}
	return s.products[index], index, nil
}

// IndexOf returns -1 when no product has the id.
func (s *ProductStore) IndexOf(id uuid.UUID) int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.indexOfLocked(id)
}

func (s *ProductStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.products)
}

func (s *ProductStore) List() []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.snapshot()
}

// Replace swaps the whole list, e.g. when reseeding from the sample catalog.
func (s *ProductStore) Replace(products []models.Product) error {
	next := make([]models.Product, len(products))
	copy(next, products)
	for i := range next {
		if next[i].ID == uuid.Nil {
			next[i].ID = uuid.New()
		}
		next[i].ExpiryDate = expiry.Midnight(next[i].ExpiryDate)
		next[i].Position = i
	}

	s.mu.Lock()
	defer s.mu.Unlock()

	if err := s.persist(next); err != nil {
		return err
	}
	s.products = next
	return nil
}

func (s *ProductStore) removeLocked(index int) (models.Product, error) {
	removed := s.products[index]

	next := make([]models.Product, 0, len(s.products)-1)
	next = append(next, s.products[:index]...)
	next = append(next, s.products[index+1:]...)
	for i := index; i < len(next); i++ {
		next[i].Position = i
	}

	if err := s.persist(next); err != nil {
		return models.Product{}, err
	}
	s.products = next
	return removed, nil
}

func (s *ProductStore) persist(next []models.Product) error {
	if s.repo == nil {
		return nil
	}
	if err := s.repo.SaveProducts(next); err != nil {
		return errors.Wrap(err, "failed to save products")
	}
	return nil
}

func (s *ProductStore) inRange(index int) bool {
	return index >= 0 && index < len(s.products)
}

func (s *ProductStore) indexOfLocked(id uuid.UUID) int {
	for i := range s.products {
		if s.products[i].ID == id {
			return i
		}
	}
	return -1
}

func (s *ProductStore) snapshot() []models.Product {
	out := make([]models.Product, len(s.products))
	copy(out, s.products)
	return out
}

func (s *ProductStore) reindex() {
	for i := range s.products {
		s.products[i].Position = i
	}
}
