package handlers

// validateProduct checks the body of a create/update call. requireCode
// is false on updates, where the code comes from the path.
func validateProduct(p ProductRequest, requireCode bool) string {
	if (requireCode && p.Code == nil) || p.Description == nil || p.Stock == nil || p.UnitPrice == nil {
		return "missing one or more required fields"
	}
	if *p.Stock < 0 {
		return "stock cannot be negative"
	}
	if *p.UnitPrice < 0 {
		return "unit price cannot be negative"
	}
	return ""
}

func validateCartItem(c CartItemRequest) string {
	if c.Code == nil || c.Quantity == nil {
		return "missing one or more required fields"
	}
	return ""
}
