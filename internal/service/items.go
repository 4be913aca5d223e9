package service

import (
	"context"
	"errors"
	"fmt"
	"strings"

	"github.com/Skotchmaster/items_api/internal/events"
	"github.com/Skotchmaster/items_api/internal/logging"
	"github.com/Skotchmaster/items_api/internal/models"
	"github.com/Skotchmaster/items_api/internal/repo"
	"github.com/Skotchmaster/items_api/internal/util"
)

type ItemStore interface {
	CreateItem(ctx context.Context, item *models.Item) error
	ListItemsByOwner(ctx context.Context, ownerID uint) ([]models.Item, error)
	GetItem(ctx context.Context, id uint) (*models.Item, error)
	UpdateItem(ctx context.Context, id uint, ownerID uint, name string, description *string) (bool, error)
	DeleteItem(ctx context.Context, id uint, ownerID uint) (bool, error)
	SearchItems(ctx context.Context, ownerID uint, q string, offset, limit int) (int64, []models.Item, error)
	ItemsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]models.Item, error)
}

// ItemIndex is an optional full-text index kept in sync with the store.
type ItemIndex interface {
	IndexItem(ctx context.Context, item models.Item) error
	DeleteItem(ctx context.Context, id uint) error
	SearchItems(ctx context.Context, ownerID uint, q string, offset, limit int) (int64, []uint, error)
}

type ItemInput struct {
	Name        any
	Description any
}

type SearchResult struct {
	Total int64
	Page  int
	Size  int
	Items []models.Item
}

// ItemService decides, per request, whether the caller may see or change an item.
// Items owned by someone else look absent on read and forbidden on write.
type ItemService struct {
	Items  ItemStore
	Index  ItemIndex
	Events events.Publisher
}

func storageErr(err error) error {
	return fmt.Errorf("%w: %w", ErrStorage, err)
}

func (s *ItemService) Create(ctx context.Context, callerID uint, in ItemInput) (*models.Item, error) {
	name, desc, err := ValidateItem(in.Name, in.Description)
	if err != nil {
		return nil, err
	}

	item := &models.Item{Name: name, Description: desc, UserID: callerID}
	if err := s.Items.CreateItem(ctx, item); err != nil {
		return nil, storageErr(err)
	}

	s.index(ctx, *item)
	publish(ctx, s.Events, events.TopicItem, callerID, events.Event{
		Type:     events.ItemCreated,
		UserID:   callerID,
		ItemID:   item.ID,
		ItemName: item.Name,
	})
	return item, nil
}

func (s *ItemService) List(ctx context.Context, callerID uint) ([]models.Item, error) {
	items, err := s.Items.ListItemsByOwner(ctx, callerID)
	if err != nil {
		return nil, storageErr(err)
	}
	return items, nil
}

func (s *ItemService) fetch(ctx context.Context, rawID string) (uint, *models.Item, error) {
	id, err := ParseItemID(rawID)
	if err != nil {
		return 0, nil, err
	}
	item, err := s.Items.GetItem(ctx, id)
	if err != nil {
		if errors.Is(err, repo.ErrNotFound) {
			return id, nil, ErrNotFound
		}
		return id, nil, storageErr(err)
	}
	return id, item, nil
}

func (s *ItemService) Get(ctx context.Context, callerID uint, rawID string) (*models.Item, error) {
	_, item, err := s.fetch(ctx, rawID)
	if err != nil {
		return nil, err
	}
	if item.UserID != callerID {
		return nil, ErrNotFound
	}
	return item, nil
}

func (s *ItemService) Update(ctx context.Context, callerID uint, rawID string, in ItemInput) error {
	if _, err := ParseItemID(rawID); errors.Is(err, ErrInvalidID) {
		return err
	}
	name, desc, err := ValidateItem(in.Name, in.Description)
	if err != nil {
		return err
	}

	id, item, err := s.fetch(ctx, rawID)
	if err != nil {
		return err
	}
	if item.UserID != callerID {
		return ErrForbidden
	}

	changed, err := s.Items.UpdateItem(ctx, id, callerID, name, desc)
	if err != nil {
		return storageErr(err)
	}
	if !changed {
		return ErrNotFound
	}

	s.index(ctx, models.Item{ID: item.ID, Name: name, Description: desc, UserID: callerID})
	publish(ctx, s.Events, events.TopicItem, callerID, events.Event{
		Type:     events.ItemUpdated,
		UserID:   callerID,
		ItemID:   item.ID,
		ItemName: name,
	})
	return nil
}

func (s *ItemService) Delete(ctx context.Context, callerID uint, rawID string) error {
	id, item, err := s.fetch(ctx, rawID)
	if err != nil {
		return err
	}
	if item.UserID != callerID {
		return ErrForbidden
	}

	changed, err := s.Items.DeleteItem(ctx, id, callerID)
	if err != nil {
		return storageErr(err)
	}
	if !changed {
		return ErrNotFound
	}

	if s.Index != nil {
		if err := s.Index.DeleteItem(ctx, item.ID); err != nil {
			logging.FromContext(ctx).Warn("unindex_item_failed", "item_id", item.ID, "error", err)
		}
	}
	publish(ctx, s.Events, events.TopicItem, callerID, events.Event{
		Type:   events.ItemDeleted,
		UserID: callerID,
		ItemID: item.ID,
	})
	return nil
}

// Search looks through the caller's items only. The index is preferred when
// configured; the store answers when the index is absent or failing.
func (s *ItemService) Search(ctx context.Context, callerID uint, q string, page, size int) (*SearchResult, error) {
	q = strings.TrimSpace(q)
	if q == "" {
		return nil, ErrInvalidSearchQuery
	}
	if page < 1 {
		page = 1
	}
	offset, limit := util.Calculate(page, size)

	if s.Index != nil {
		total, ids, err := s.Index.SearchItems(ctx, callerID, q, offset, limit)
		if err == nil {
			items, err := s.Items.ItemsByIDs(ctx, callerID, ids)
			if err != nil {
				return nil, storageErr(err)
			}
			return &SearchResult{Total: total, Page: page, Size: limit, Items: items}, nil
		}
		logging.FromContext(ctx).Warn("index_search_failed", "fallback", "store", "error", err)
	}

	total, items, err := s.Items.SearchItems(ctx, callerID, q, offset, limit)
	if err != nil {
		return nil, storageErr(err)
	}
	return &SearchResult{Total: total, Page: page, Size: limit, Items: items}, nil
}

func (s *ItemService) index(ctx context.Context, item models.Item) {
	if s.Index == nil {
		return
	}
	if err := s.Index.IndexItem(ctx, item); err != nil {
		logging.FromContext(ctx).Warn("index_item_failed", "item_id", item.ID, "error", err)
	}
}
