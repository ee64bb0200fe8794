package enums

// EntityType scopes attribute rows to a host entity kind.
type EntityType string

const (
	EntityTypeProduct EntityType = "product"
	EntityTypeOrder   EntityType = "order"
)

// String implements fmt.Stringer.
func (e EntityType) String() string {
	return string(e)
}

// IsValid reports whether the value is a known EntityType.
func (e EntityType) IsValid() bool {
	return e == EntityTypeProduct || e == EntityTypeOrder
}
