package attributes

import (
	"context"
	"errors"
	"fmt"

	"gorm.io/gorm"
	"gorm.io/gorm/clause"

	"github.com/angelmondragon/vendorpayments-backend/internal/repo"
	"github.com/angelmondragon/vendorpayments-backend/pkg/db/models"
	"github.com/angelmondragon/vendorpayments-backend/pkg/enums"
)

// Attribute keys owned by this service.
const (
	KeyVendorName    = "_vendor_name"
	KeyPurchaseCost  = "_purchase_cost"
	KeyPaymentTerm   = "_payment_term"
	KeyPaymentStatus = "payment_status"
)

// Reader resolves a single attribute. Unset attributes read as "".
type Reader interface {
	Get(ctx context.Context, entity enums.EntityType, id int64, key string) (string, error)
}

// Store reads and writes entity attributes.
type Store interface {
	Reader
	Set(ctx context.Context, entity enums.EntityType, id int64, key, value string) error
}

type repository struct {
	repo.Base
}

// NewRepository returns a gorm-backed attribute store.
func NewRepository(db *gorm.DB) Store {
	return &repository{Base: repo.NewBase(db)}
}

func (r *repository) Get(ctx context.Context, entity enums.EntityType, id int64, key string) (string, error) {
	if err := validate(entity, key); err != nil {
		return "", err
	}

	var attr models.EntityAttribute
	err := r.DB(ctx).
		Where("entity_type = ? AND entity_id = ? AND meta_key = ?", entity, id, key).
		Take(&attr).Error
	if errors.Is(err, gorm.ErrRecordNotFound) {
		return "", nil
	}
	if err != nil {
		return "", fmt.Errorf("get %s %d %s: %w", entity, id, key, err)
	}
	return attr.MetaValue, nil
}

func (r *repository) Set(ctx context.Context, entity enums.EntityType, id int64, key, value string) error {
	if err := validate(entity, key); err != nil {
		return err
	}

	attr := models.EntityAttribute{
		EntityType: entity,
		EntityID:   id,
		MetaKey:    key,
		MetaValue:  value,
	}
	err := r.DB(ctx).
		Clauses(clause.OnConflict{
			Columns:   []clause.Column{{Name: "entity_type"}, {Name: "entity_id"}, {Name: "meta_key"}},
			DoUpdates: clause.AssignmentColumns([]string{"meta_value"}),
		}).
		Create(&attr).Error
	if err != nil {
		return fmt.Errorf("set %s %d %s: %w", entity, id, key, err)
	}
	return nil
}

func validate(entity enums.EntityType, key string) error {
	if !entity.IsValid() {
		return fmt.Errorf("invalid entity type %q", entity)
	}
	if key == "" {
		return errors.New("attribute key is required")
	}
	return nil
}
