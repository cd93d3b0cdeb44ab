package repo

// InMemoryMetricsRepository computes dashboard metrics from the
// in-memory product and cart repositories.
type InMemoryMetricsRepository struct {
	products *InMemoryProductRepository
	cart     *InMemoryCartRepository
}

// NewInMemoryMetricsRepository creates a new instance of InMemoryMetricsRepository.
func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (r *InMemoryMetricsRepository) SetRepositories(products *InMemoryProductRepository, cart *InMemoryCartRepository) {
	r.products = products
	r.cart = cart
}

func (r *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	var m Metrics

	products, err := r.products.GetAll()
	if err != nil {
		return Metrics{}, err
	}
	m.TotalProducts = len(products)
	for _, p := range products {
		m.TotalStock += p.Stock
		if p.Stock == 0 {
			m.OutOfStockCount++
		}
	}

	lines, err := r.cart.GetAll()
	if err != nil {
		return Metrics{}, err
	}
	m.CartLines = len(lines)
	for _, l := range lines {
		m.CartUnits += l.Quantity
		m.CartValue += float64(l.Quantity) * l.UnitPrice
	}

	return m, nil
}
