package repo

import (
	"context"
	"errors"
	"strings"

	"gorm.io/gorm"

	"github.com/Skotchmaster/items_api/internal/models"
)

func (r *GormRepo) CreateItem(ctx context.Context, item *models.Item) error {
	return r.DB.WithContext(ctx).Create(item).Error
}

func (r *GormRepo) ListItemsByOwner(ctx context.Context, ownerID uint) ([]models.Item, error) {
	items := make([]models.Item, 0)
	if err := r.DB.WithContext(ctx).
		Where("user_id = ?", ownerID).
		Order("id ASC").
		Find(&items).Error; err != nil {
		return nil, err
	}
	return items, nil
}

func (r *GormRepo) GetItem(ctx context.Context, id uint) (*models.Item, error) {
	var item models.Item
	if err := r.DB.WithContext(ctx).Where("id = ?", id).First(&item).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, ErrNotFound
		}
		return nil, err
	}
	return &item, nil
}

// UpdateItem changes the row only while it still belongs to ownerID.
func (r *GormRepo) UpdateItem(ctx context.Context, id uint, ownerID uint, name string, description *string) (bool, error) {
	res := r.DB.WithContext(ctx).
		Model(&models.Item{}).
		Where("id = ? AND user_id = ?", id, ownerID).
		Updates(map[string]any{"name": name, "description": description})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func (r *GormRepo) DeleteItem(ctx context.Context, id uint, ownerID uint) (bool, error) {
	res := r.DB.WithContext(ctx).
		Where("id = ? AND user_id = ?", id, ownerID).
		Delete(&models.Item{})
	if res.Error != nil {
		return false, res.Error
	}
	return res.RowsAffected > 0, nil
}

func escapeLike(q string) string {
	return strings.NewReplacer(`\`, `\\`, `%`, `\%`, `_`, `\_`).Replace(q)
}

// SearchItems matches q case-insensitively against name and description of the owner's items.
func (r *GormRepo) SearchItems(ctx context.Context, ownerID uint, q string, offset, limit int) (int64, []models.Item, error) {
	pattern := "%" + strings.ToLower(escapeLike(q)) + "%"
	where := `user_id = ? AND (LOWER(name) LIKE ? ESCAPE '\' OR LOWER(COALESCE(description, '')) LIKE ? ESCAPE '\')`

	var total int64
	if err := r.DB.WithContext(ctx).
		Model(&models.Item{}).
		Where(where, ownerID, pattern, pattern).
		Count(&total).Error; err != nil {
		return 0, nil, err
	}

	items := make([]models.Item, 0, limit)
	if err := r.DB.WithContext(ctx).
		Model(&models.Item{}).
		Where(where, ownerID, pattern, pattern).
		Order("id ASC").
		Offset(offset).
		Limit(limit).
		Find(&items).Error; err != nil {
		return 0, nil, err
	}

	return total, items, nil
}

// ItemsByIDs returns the owner's items among ids, preserving the order of ids.
func (r *GormRepo) ItemsByIDs(ctx context.Context, ownerID uint, ids []uint) ([]models.Item, error) {
	if len(ids) == 0 {
		return []models.Item{}, nil
	}
	var found []models.Item
	if err := r.DB.WithContext(ctx).
		Where("user_id = ? AND id IN ?", ownerID, ids).
		Find(&found).Error; err != nil {
		return nil, err
	}

	byID := make(map[uint]models.Item, len(found))
	for _, it := range found {
		byID[it.ID] = it
	}
	out := make([]models.Item, 0, len(found))
	for _, id := range ids {
		if it, ok := byID[id]; ok {
			out = append(out, it)
		}
	}
	return out, nil
}
