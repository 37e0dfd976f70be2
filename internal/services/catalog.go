// internal/services/catalog.go
package services

import (
	"math/rand"
	"sync"
	"time"

	"github.com/pkg/errors"
	"github.com/sirupsen/logrus"

	"github.com/javajoker/shelflife/internal/models"
)

type SampleProduct struct {
	Name       string `json:"name"`
	ExpiryDate string `json:"expiry_date"`
}

// Seed list shown on a fresh product list.
var DefaultSeedProducts = []SampleProduct{
	{"🥛 Milk", "2024-12-25"},
	{"🥚 Eggs", "2024-12-20"},
	{"🍞 Bread", "2024-12-30"},
	{"🧀 Cheese", "2025-01-15"},
	{"🍗 Chicken", "2024-12-28"},
	{"🍎 Apples", "2025-01-10"},
	{"☕ Coffee", "2025-03-01"},
	{"🍪 Cookies", "2025-02-14"},
}

// Pool the "add" action picks from.
var DefaultSamplePool = []SampleProduct{
	{"🍌 Banana", "2025-01-05"},
	{"🥦 Broccoli", "2025-01-08"},
	{"🥩 Steak", "2025-01-12"},
	{"🐟 Fish", "2025-01-15"},
	{"🍇 Grapes", "2025-01-20"},
	{"🥑 Avocado", "2025-01-25"},
}

// Catalog feeds sample data into a ProductStore.
type Catalog struct {
	store *ProductStore
	seed  []SampleProduct
	pool  []SampleProduct

	mu  sync.Mutex
	rnd *rand.Rand
}

func NewCatalog(store *ProductStore, seed, pool []SampleProduct, rnd *rand.Rand) *Catalog {
	if rnd == nil {
		rnd = rand.New(rand.NewSource(time.Now().UnixNano()))
	}
	return &Catalog{store: store, seed: seed, pool: pool, rnd: rnd}
}

// Reset replaces the store contents with the seed list.
func (c *Catalog) Reset() error {
	products := make([]models.Product, 0, len(c.seed))
	for _, sample := range c.seed {
		p, _ := c.store.NewProduct(sample.Name, sample.ExpiryDate)
		products = append(products, p)
	}
	if err := c.store.Replace(products); err != nil {
		return errors.Wrap(err, "failed to seed products")
	}
	logrus.WithField("count", len(products)).Info("Product list seeded from sample catalog")
	return nil
}

// SeedIfEmpty seeds only when the store holds nothing yet.
func (c *Catalog) SeedIfEmpty() error {
	if c.store.Count() > 0 {
		return nil
	}
	return c.Reset()
}

// AddRandom appends one product picked at random from the pool.
func (c *Catalog) AddRandom() (models.Product, int, error) {
	if len(c.pool) == 0 {
		return models.Product{}, -1, errors.New("sample pool is empty")
	}

	c.mu.Lock()
	sample := c.pool[c.rnd.Intn(len(c.pool))]
	c.mu.Unlock()

	product, _ := c.store.NewProduct(sample.Name, sample.ExpiryDate)
	index, err := c.store.Add(product)
	if err != nil {
		return models.Product{}, -1, err
	}
	return product, index, nil
}
