package entity

// ProductFilter is a domain-level filter for querying products.
// Used by repository layer to avoid coupling with delivery DTOs.
// String fields match as case-insensitive substrings (ILIKE); the rest are
// exact matches. Conditions combine with AND.
type ProductFilter struct {
	IsActive        *bool
	Name            string
	Description     string
	MetaTitle       string
	MetaDescription string
	DiscountType    string
}
