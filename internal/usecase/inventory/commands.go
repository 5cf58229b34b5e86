package inventory

import (
	"context"
	"fmt"
	"slices"

	"github.com/Pesokrava/beverage_stock/internal/domain"
)

// InitializeProducts seeds the default catalog when no products exist.
// It reports whether seeding happened.
func (s *Store) InitializeProducts(ctx context.Context) (bool, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	if len(s.cur.products) > 0 {
		return false, nil
	}

	seeded := SeedCatalog(s.now())
	ids := make([]string, len(seeded))
	for i, p := range seeded {
		ids[i] = p.ID
	}

	s.commit(ctx, &state{
		products: seeded,
		sales:    s.cur.sales,
		incoming: s.cur.incoming,
	}, &InventoryEvent{
		EventType:  EventCatalogSeeded,
		ProductIDs: ids,
		Products:   cloneProducts(seeded),
	})

	s.logger.Infof("Seeded default catalog with %d products", len(seeded))
	return true, nil
}

// AddNewProduct appends a product. The id defaults to the slug of the name
// and may not end up empty. Uniqueness of the id is the caller's
// responsibility.
func (s *Store) AddNewProduct(ctx context.Context, product domain.Product) (domain.Product, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	product = product.Clone()
	if product.ID == "" {
		product.ID = domain.Slug(product.Name)
	}
	if product.ID == "" {
		return domain.Product{}, fmt.Errorf("product name %q has no usable id: %w", product.Name, domain.ErrInvalidInput)
	}
	product.LastUpdated = s.now()

	products := append(slices.Clip(s.cur.products), product)

	s.commit(ctx, &state{
		products: products,
		sales:    s.cur.sales,
		incoming: s.cur.incoming,
	}, &InventoryEvent{
		EventType:  EventProductCreated,
		ProductIDs: []string{product.ID},
		Products:   []domain.Product{product.Clone()},
	})

	s.logger.WithFields(map[string]any{
		"product_id": product.ID,
		"variants":   len(product.Variants),
	}).Info("Product added")

	return product.Clone(), nil
}

// AddNewVariant appends a variant to a product
func (s *Store) AddNewVariant(ctx context.Context, productID string, variant domain.ProductVariant) error {
	return s.mutateProduct(ctx, productID, func(p *domain.Product) (string, error) {
		if p.HasVariant(variant.Volume) {
			return "", fmt.Errorf("product %q volume %q: %w", productID, variant.Volume, domain.ErrDuplicateVariant)
		}
		p.Variants = append(p.Variants, variant)
		return EventVariantCreated, nil
	})
}

// UpdateThreshold sets the low-stock trigger of one variant
func (s *Store) UpdateThreshold(ctx context.Context, productID, volume string, threshold int) error {
	return s.mutateProduct(ctx, productID, func(p *domain.Product) (string, error) {
		idx := indexOfVariant(p.Variants, volume)
		if idx < 0 {
			return "", fmt.Errorf("product %q volume %q: %w", productID, volume, domain.ErrNotFound)
		}
		p.Variants[idx].Threshold = threshold
		return EventThresholdUpdated, nil
	})
}

// UpdateProduct merges name and color changes into a product
func (s *Store) UpdateProduct(ctx context.Context, productID string, updates domain.ProductUpdate) error {
	return s.mutateProduct(ctx, productID, func(p *domain.Product) (string, error) {
		if updates.Name != nil {
			p.Name = *updates.Name
		}
		if updates.Color != nil {
			p.Color = *updates.Color
		}
		return EventProductUpdated, nil
	})
}

// UpdateVariant merges a partial update into one variant. Renaming the
// volume onto another existing variant fails with ErrDuplicateVariant.
func (s *Store) UpdateVariant(ctx context.Context, productID, volume string, updates domain.VariantUpdate) error {
	return s.mutateProduct(ctx, productID, func(p *domain.Product) (string, error) {
		idx := indexOfVariant(p.Variants, volume)
		if idx < 0 {
			return "", fmt.Errorf("product %q volume %q: %w", productID, volume, domain.ErrNotFound)
		}

		v := &p.Variants[idx]
		if updates.Volume != nil && *updates.Volume != volume {
			if p.HasVariant(*updates.Volume) {
				return "", fmt.Errorf("product %q volume %q: %w", productID, *updates.Volume, domain.ErrDuplicateVariant)
			}
			v.Volume = *updates.Volume
		}
		if updates.SetSize != nil {
			v.SetSize = *updates.SetSize
		}
		if updates.CurrentSets != nil {
			v.CurrentSets = *updates.CurrentSets
		}
		if updates.Threshold != nil {
			v.Threshold = *updates.Threshold
		}
		return EventVariantUpdated, nil
	})
}

// DeleteVariant removes one variant. Sales and deliveries that reference it are kept.
func (s *Store) DeleteVariant(ctx context.Context, productID, volume string) error {
	return s.mutateProduct(ctx, productID, func(p *domain.Product) (string, error) {
		idx := indexOfVariant(p.Variants, volume)
		if idx < 0 {
			return "", fmt.Errorf("product %q volume %q: %w", productID, volume, domain.ErrNotFound)
		}
		p.Variants = slices.Delete(p.Variants, idx, idx+1)
		return EventVariantDeleted, nil
	})
}

// DeleteProduct removes a product with all its variants.
// History records keep their copied product data.
func (s *Store) DeleteProduct(ctx context.Context, productID string) error {
	s.mu.Lock()
	defer s.mu.Unlock()

	idx := indexOfProduct(s.cur.products, productID)
	if idx < 0 {
		return fmt.Errorf("product %q: %w", productID, domain.ErrNotFound)
	}

	products := slices.Delete(slices.Clone(s.cur.products), idx, idx+1)

	s.commit(ctx, &state{
		products: products,
		sales:    s.cur.sales,
		incoming: s.cur.incoming,
	}, &InventoryEvent{
		EventType:  EventProductDeleted,
		ProductIDs: []string{productID},
	})

	s.logger.WithFields(map[string]any{
		"product_id": productID,
	}).Info("Product deleted")

	return nil
}

// RecordSale stores a sale and decrements every sold variant, floored at
// zero, in one state transition. Stock availability is not checked. Every
// item must reference an existing variant or nothing is applied.
func (s *Store) RecordSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	return s.recordSale(ctx, sale, false)
}

// RecordCheckedSale is RecordSale that also rejects the whole sale with
// domain.ErrInsufficientStock when the items of any variant add up to more
// sets than are on hand. The check and the decrement share one lock.
func (s *Store) RecordCheckedSale(ctx context.Context, sale domain.Sale) (domain.Sale, error) {
	return s.recordSale(ctx, sale, true)
}

func (s *Store) recordSale(ctx context.Context, sale domain.Sale, checkStock bool) (domain.Sale, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	now := s.now()
	sale = sale.Clone()
	sale.ID = s.newID()
	sale.Timestamp = now

	products := slices.Clone(s.cur.products)
	touched := make(map[int]bool)

	for _, item := range sale.Items {
		pi := indexOfProduct(products, item.ProductID)
		if pi < 0 {
			return domain.Sale{}, fmt.Errorf("sale item product %q: %w", item.ProductID, domain.ErrNotFound)
		}
		vi := indexOfVariant(products[pi].Variants, item.Volume)
		if vi < 0 {
			return domain.Sale{}, fmt.Errorf("sale item product %q volume %q: %w", item.ProductID, item.Volume, domain.ErrNotFound)
		}

		if !touched[pi] {
			products[pi] = products[pi].Clone()
			products[pi].LastUpdated = now
			touched[pi] = true
		}
		v := &products[pi].Variants[vi]
		if checkStock && item.SetsSold > v.CurrentSets {
			return domain.Sale{}, fmt.Errorf("%w: only %d sets of %s %s available",
				domain.ErrInsufficientStock, v.CurrentSets, products[pi].Name, v.Volume)
		}
		v.CurrentSets = max(0, v.CurrentSets-item.SetsSold)
	}

	event := &InventoryEvent{EventType: EventSaleRecorded}
	for pi := range products {
		if touched[pi] {
			event.ProductIDs = append(event.ProductIDs, products[pi].ID)
			event.Products = append(event.Products, products[pi].Clone())
		}
	}

	s.commit(ctx, &state{
		products: products,
		sales:    append(slices.Clip(s.cur.sales), sale),
		incoming: s.cur.incoming,
	}, event)

	s.logger.WithFields(map[string]any{
		"sale_id":      sale.ID,
		"customer":     sale.CustomerName,
		"items":        len(sale.Items),
		"total_amount": sale.TotalAmount,
	}).Info("Sale recorded")

	return sale.Clone(), nil
}

// RecordIncoming stores a delivery and adds the received sets to the variant
// in one state transition.
func (s *Store) RecordIncoming(ctx context.Context, entry domain.IncomingEntry) (domain.IncomingEntry, error) {
	s.mu.Lock()
	defer s.mu.Unlock()

	pi := indexOfProduct(s.cur.products, entry.ProductID)
	if pi < 0 {
		return domain.IncomingEntry{}, fmt.Errorf("incoming product %q: %w", entry.ProductID, domain.ErrNotFound)
	}
	vi := indexOfVariant(s.cur.products[pi].Variants, entry.Volume)
	if vi < 0 {
		return domain.IncomingEntry{}, fmt.Errorf("incoming product %q volume %q: %w", entry.ProductID, entry.Volume, domain.ErrNotFound)
	}

	now := s.now()
	entry.ID = s.newID()
	entry.Timestamp = now

	updated := s.cur.products[pi].Clone()
	updated.Variants[vi].CurrentSets += entry.SetsReceived
	updated.LastUpdated = now

	products := slices.Clone(s.cur.products)
	products[pi] = updated

	s.commit(ctx, &state{
		products: products,
		sales:    s.cur.sales,
		incoming: append(slices.Clip(s.cur.incoming), entry),
	}, &InventoryEvent{
		EventType:  EventStockReceived,
		ProductIDs: []string{updated.ID},
		Products:   []domain.Product{updated.Clone()},
	})

	s.logger.WithFields(map[string]any{
		"entry_id":      entry.ID,
		"product_id":    entry.ProductID,
		"volume":        entry.Volume,
		"sets_received": entry.SetsReceived,
	}).Info("Incoming stock recorded")

	return entry, nil
}
