package fixtures

// ResolveVariant finds a variant and embeds its owning product. The product is nil when
// the variant points at a product that is not in the catalog.
func (d *Dataset) ResolveVariant(rawID any) (*EnrichedVariant, bool) {
	variant, ok := Resolve(d.Variants, rawID)
	if !ok {
		return nil, false
	}
	return &EnrichedVariant{
		Variant: variant,
		Product: ResolvePtr(d.Products, variant.ProductID),
	}, true
}

// EnrichLine embeds the variant chain into a line item. Lines whose variant is unknown
// are returned unchanged. Enriching an enriched line re-derives the same value.
func (d *Dataset) EnrichLine(line Line) Line {
	id := line.Variant.ID
	if line.Variant.Variant != nil {
		id = line.Variant.Variant.ID
	}
	ev, ok := d.ResolveVariant(id)
	if !ok {
		return line
	}
	out := line
	out.Variant = VariantRef{ID: ev.ID, Variant: ev}
	out.ProductName = unknownProductName
	if ev.Product != nil && ev.Product.ProductName != "" {
		out.ProductName = ev.Product.ProductName
	}
	if line.ProductPrice.IsZero() {
		out.ProductPrice = ev.VariantPrice
	}
	return out
}

func (d *Dataset) EnrichOrderDetail(od OrderDetail) OrderDetail {
	od.Line = d.EnrichLine(od.Line)
	return od
}

// EnrichOrder returns a copy of the order with every detail enriched.
func (d *Dataset) EnrichOrder(o Order) Order {
	details := make([]OrderDetail, len(o.OrderDetails))
	for i, od := range o.OrderDetails {
		details[i] = d.EnrichOrderDetail(od)
	}
	o.OrderDetails = details
	return o
}
