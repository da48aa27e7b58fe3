package domain

// Quote is the result of a price computation over a draft
type Quote struct {
	Subtotal       float64
	DiscountAmount float64
	FinalPrice     float64
}
