package fixtures

// aliaser is implemented by records that expose display aliases to the dashboard.
type aliaser[T any] interface {
	*T
	applyAliases()
}

// AliasFields copies each record's source fields to the display names the dashboard
// reads. Originals are kept, so applying it twice is harmless.
func AliasFields[T any, PT aliaser[T]](records []T) []T {
	out := make([]T, len(records))
	for i := range records {
		out[i] = records[i]
		PT(&out[i]).applyAliases()
	}
	return out
}

func (c *Category) applyAliases() { c.CatName = c.CategoryName }

func (c *Color) applyAliases() { c.ColorName = c.ProductColorName }

func (s *Size) applyAliases() { s.SizeName = s.ProductSizeName }

func (p *Product) applyAliases() { p.Name = p.ProductName }
