package store

import (
	"errors"
	"strconv"
	"strings"
	"sync"
	"time"

	"natalify-backend/internal/models"
)

var ErrProductNotFound = errors.New("product not found")

// ProductFilter narrows a catalog listing. Zero values mean "no filter".
type ProductFilter struct {
	FeaturedOnly bool
	Category     string
	Search       string
	// SearchCategory widens the search match to the category label as well
	// as name and description (the public listing behavior; admin listing
	// and the narrow search endpoint match name and description only).
	SearchCategory bool
}

// ProductStore keeps the catalog in process memory: a map keyed by id for
// lookups plus an id slice preserving insertion order for listings. All
// mutations go through the mutex; ids come from a monotonic counter so a
// delete can never cause a later create to reuse an id.
type ProductStore struct {
	mu   sync.RWMutex
	byID map[string]*models.Product
	ids  []string
	seq  int
}

func NewProductStore(seed []models.Product) *ProductStore {
	s := &ProductStore{byID: make(map[string]*models.Product, len(seed))}
	for i := range seed {
		p := seed[i]
		s.byID[p.ID] = &p
		s.ids = append(s.ids, p.ID)
		if n, err := strconv.Atoi(p.ID); err == nil && n > s.seq {
			s.seq = n
		}
	}
	return s
}

// List returns the products matching filter in insertion order. Filters
// apply in a fixed order: featured, then category, then search.
func (s *ProductStore) List(filter ProductFilter) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	out := make([]models.Product, 0, len(s.ids))
	searchLower := strings.ToLower(strings.TrimSpace(filter.Search))
	category := strings.TrimSpace(filter.Category)

	for _, id := range s.ids {
		p := s.byID[id]

		if filter.FeaturedOnly && !p.IsFeatured {
			continue
		}
		if category != "" && category != "all" && p.Category != category {
			continue
		}
		if searchLower != "" {
			match := strings.Contains(strings.ToLower(p.Name), searchLower) ||
				strings.Contains(strings.ToLower(p.Description), searchLower)
			if filter.SearchCategory {
				match = match || strings.Contains(strings.ToLower(p.Category), searchLower)
			}
			if !match {
				continue
			}
		}

		out = append(out, *p)
	}
	return out
}

func (s *ProductStore) Get(id string) (models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}
	return *p, nil
}

// Related returns up to limit other products sharing the subject's
// category, in insertion order.
func (s *ProductStore) Related(id string, limit int) ([]models.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	subject, ok := s.byID[id]
	if !ok {
		return nil, ErrProductNotFound
	}

	related := make([]models.Product, 0, limit)
	for _, candidateID := range s.ids {
		if len(related) == limit {
			break
		}
		p := s.byID[candidateID]
		if p.ID != subject.ID && p.Category == subject.Category {
			related = append(related, *p)
		}
	}
	return related, nil
}

// Search matches the query case-insensitively against name and description
// only, returning the first limit hits in insertion order.
func (s *ProductStore) Search(query string, limit int) []models.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()

	queryLower := strings.ToLower(query)
	results := make([]models.Product, 0, limit)
	for _, id := range s.ids {
		if len(results) == limit {
			break
		}
		p := s.byID[id]
		if strings.Contains(strings.ToLower(p.Name), queryLower) ||
			strings.Contains(strings.ToLower(p.Description), queryLower) {
			results = append(results, *p)
		}
	}
	return results
}

// Categories returns distinct category labels in first-seen order.
func (s *ProductStore) Categories() []string {
	s.mu.RLock()
	defer s.mu.RUnlock()

	seen := make(map[string]struct{})
	categories := make([]string, 0)
	for _, id := range s.ids {
		category := s.byID[id].Category
		if _, ok := seen[category]; ok {
			continue
		}
		seen[category] = struct{}{}
		categories = append(categories, category)
	}
	return categories
}

// Create assigns the next sequential id and appends the product.
func (s *ProductStore) Create(p models.Product) models.Product {
	s.mu.Lock()
	defer s.mu.Unlock()

	s.seq++
	p.ID = strconv.Itoa(s.seq)
	now := time.Now()
	p.CreatedAt = now
	p.UpdatedAt = now

	s.byID[p.ID] = &p
	s.ids = append(s.ids, p.ID)
	return p
}

// Update applies mutate to the stored product under the write lock and
// refreshes updatedAt. The id and createdAt are pinned afterwards so a
// careless mutation cannot rewrite identity or audit fields.
func (s *ProductStore) Update(id string, mutate func(*models.Product)) (models.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	p, ok := s.byID[id]
	if !ok {
		return models.Product{}, ErrProductNotFound
	}

	createdAt := p.CreatedAt
	mutate(p)
	p.ID = id
	p.CreatedAt = createdAt
	p.UpdatedAt = time.Now()
	return *p, nil
}

func (s *ProductStore) Delete(id string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	if _, ok := s.byID[id]; !ok {
		return ErrProductNotFound
	}
	delete(s.byID, id)
	for i, existing := range s.ids {
		if existing == id {
			s.ids = append(s.ids[:i], s.ids[i+1:]...)
			break
		}
	}
	return nil
}

func (s *ProductStore) Count() int {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return len(s.ids)
}
