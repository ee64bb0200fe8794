package models

import "github.com/angelmondragon/vendorpayments-backend/pkg/enums"

// EntityAttribute is a single key/value attribute attached to a host entity.
type EntityAttribute struct {
	ID         uint64           `gorm:"column:id;primaryKey;autoIncrement"`
	EntityType enums.EntityType `gorm:"column:entity_type;size:20;not null;uniqueIndex:ux_entity_attributes_entity_key"`
	EntityID   int64            `gorm:"column:entity_id;not null;uniqueIndex:ux_entity_attributes_entity_key"`
	MetaKey    string           `gorm:"column:meta_key;size:255;not null;uniqueIndex:ux_entity_attributes_entity_key"`
	MetaValue  string           `gorm:"column:meta_value;type:text;not null;default:''"`
}
