package domain

// DiscountType represents how a discount amount is interpreted
type DiscountType string

const (
	DiscountPercentage DiscountType = "PERCENTAGE"
	DiscountFixed      DiscountType = "FIXED_AMOUNT"
)

// Discount is a validated coupon discount descriptor.
// Present only after a successful coupon validation; replaced wholesale
// by the next successful validation (coupons never stack).
type Discount struct {
	Type   DiscountType
	Amount float64
}

// IsValidType returns true if the discount type is known
func (t DiscountType) IsValidType() bool {
	return t == DiscountPercentage || t == DiscountFixed
}
