// File: /repositories/engagement_repository.go
package repositories

import (
	"time"

	"gorm.io/gorm"
)

// EngagementRepository toggles mark rows (likes, bookmarks, follows) and
// keeps their denormalized counters in step within one transaction.
type EngagementRepository struct {
	db *gorm.DB
}

func NewEngagementRepository(db *gorm.DB) *EngagementRepository {
	return &EngagementRepository{db: db}
}

// CounterRef names one denormalized counter column to adjust alongside a
// toggle. Model must be a pointer to the owning record's struct type.
type CounterRef struct {
	Model  interface{}
	ID     string
	Column string
}

// Toggle flips the mark row identified by cols. When the row exists it is
// deleted and every counter decremented; otherwise it is created and every
// counter incremented. Returns whether the mark is set after the call.
//
// Counters are adjusted with an arithmetic expression rather than read back,
// so concurrent toggles on different marks never clobber each other.
func (r *EngagementRepository) Toggle(mark interface{}, cols map[string]interface{}, counters ...CounterRef) (bool, error) {
	nowOn := false
	err := r.db.Transaction(func(tx *gorm.DB) error {
		var count int64
		if err := tx.Model(mark).Where(cols).Count(&count).Error; err != nil {
			return err
		}

		delta := 1
		if count > 0 {
			if err := tx.Where(cols).Delete(mark).Error; err != nil {
				return err
			}
			delta = -1
		} else {
			record := map[string]interface{}{"created_at": time.Now()}
			for k, v := range cols {
				record[k] = v
			}
			if err := tx.Model(mark).Create(record).Error; err != nil {
				return err
			}
			nowOn = true
		}

		for _, c := range counters {
			err := tx.Model(c.Model).Where("id = ?", c.ID).
				UpdateColumn(c.Column, gorm.Expr(c.Column+" + ?", delta)).Error
			if err != nil {
				return err
			}
		}
		return nil
	})
	return nowOn, err
}

// IsSet reports whether the mark row identified by cols exists.
func (r *EngagementRepository) IsSet(mark interface{}, cols map[string]interface{}) (bool, error) {
	var count int64
	err := r.db.Model(mark).Where(cols).Count(&count).Error
	return count > 0, err
}
