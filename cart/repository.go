package cart

import (
	"encoding/json"
	"errors"
	"time"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/arielcolab/dishly-api/models"
)

// Repository persists one cart snapshot per shopper. Load returns an empty
// line list for shoppers with no snapshot.
type Repository interface {
	Load(userID string) ([]models.CartLine, error)
	Save(userID string, lines []models.CartLine) error
	Clear(userID string) error
}

// GormRepository keeps each shopper's cart as a single row in
// cart_snapshots, the data column holding the serialized line array.
type GormRepository struct {
	db *gorm.DB
}

func NewGormRepository(db *gorm.DB) *GormRepository {
	return &GormRepository{db: db}
}

func (r *GormRepository) Load(userID string) ([]models.CartLine, error) {
	var snap models.CartSnapshot
	if err := r.db.First(&snap, "user_id = ?", userID).Error; err != nil {
		if errors.Is(err, gorm.ErrRecordNotFound) {
			return nil, nil
		}
		return nil, err
	}
	var lines []models.CartLine
	if err := json.Unmarshal(snap.Data, &lines); err != nil {
		return nil, err
	}
	return lines, nil
}

func (r *GormRepository) Save(userID string, lines []models.CartLine) error {
	data, err := json.Marshal(lines)
	if err != nil {
		return err
	}
	snap := models.CartSnapshot{UserID: userID, Data: data, UpdatedAt: time.Now()}
	return r.db.Clauses(clause.OnConflict{
		Columns:   []clause.Column{{Name: "user_id"}},
		DoUpdates: clause.AssignmentColumns([]string{"data", "updated_at"}),
	}).Create(&snap).Error
}

func (r *GormRepository) Clear(userID string) error {
	return r.db.Delete(&models.CartSnapshot{}, "user_id = ?", userID).Error
}
