package entity

// CalcPayablePrice computes the price a customer actually pays after the
// discount rule is applied. A percentage discount must be in (0, 100], a
// fixed discount in (0, price]; anything else falls back to the base price.
// Results truncate toward zero to match the integer columns they land in.
func CalcPayablePrice(price float64, discountType DiscountType, discountAmount float64) int {
	switch {
	case discountType == DiscountPercentage && discountAmount > 0 && discountAmount <= 100:
		return int(price * (1 - discountAmount/100))
	case discountType == DiscountFixed && discountAmount > 0 && discountAmount <= price:
		return int(price - discountAmount)
	default:
		return int(price)
	}
}
