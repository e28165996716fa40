package service

import (
	"context"
	"sync"

	"github.com/ikkim/udonggeum-storefront/internal/app/model"
	"github.com/ikkim/udonggeum-storefront/internal/app/repository"
	"github.com/ikkim/udonggeum-storefront/internal/catalog"
	"github.com/ikkim/udonggeum-storefront/pkg/logger"
)

// HomeHighlights is the number of products shown on the home page.
const HomeHighlights = 8

type CatalogService interface {
	// Reload fetches the catalog and publishes it as the new snapshot. On
	// failure the previous snapshot stays in place.
	Reload(ctx context.Context) error
	// Products returns the current snapshot. Callers must not modify it.
	Products() []model.Product
	FindByID(id string) (*model.Product, error)
	Browse(f catalog.FilterState) catalog.Result
	Highlights() []model.Product
	Facets() catalog.Facets
}

type catalogService struct {
	loader   repository.CatalogLoader
	collator *catalog.Collator

	mu       sync.RWMutex
	products []model.Product
	facets   catalog.Facets
	loaded   bool
}

func NewCatalogService(loader repository.CatalogLoader, collator *catalog.Collator) CatalogService {
	return &catalogService{
		loader:   loader,
		collator: collator,
	}
}

func (s *catalogService) Reload(ctx context.Context) error {
	logger.Info("Loading catalog", logger.Fields{
		"source": s.loader.Source(),
	})

	products, err := s.loader.Load(ctx)
	if err != nil {
		logger.Error("Failed to load catalog", err, logger.Fields{
			"source": s.loader.Source(),
		})
		return err
	}

	facets := catalog.CollectFacets(products)

	s.mu.Lock()
	s.products = products
	s.facets = facets
	s.loaded = true
	s.mu.Unlock()

	logger.Info("Catalog loaded successfully", logger.Fields{
		"source": s.loader.Source(),
		"count":  len(products),
	})
	return nil
}

func (s *catalogService) Products() []model.Product {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.products
}

func (s *catalogService) FindByID(id string) (*model.Product, error) {
	s.mu.RLock()
	defer s.mu.RUnlock()

	if !s.loaded {
		return nil, ErrCatalogNotLoaded
	}
	for i := range s.products {
		if s.products[i].ID == id {
			p := s.products[i]
			return &p, nil
		}
	}
	return nil, ErrProductNotFound
}

func (s *catalogService) Browse(f catalog.FilterState) catalog.Result {
	return catalog.Apply(s.Products(), f, s.collator)
}

func (s *catalogService) Highlights() []model.Product {
	products := s.Products()
	if len(products) > HomeHighlights {
		return products[:HomeHighlights]
	}
	return products
}

func (s *catalogService) Facets() catalog.Facets {
	s.mu.RLock()
	defer s.mu.RUnlock()
	return s.facets
}
