package repo

type InMemoryMetricsRepository struct {
	productRepo  ProductRepository
	movementRepo MovementRepository
	orderRepo    OrderRepository
}

func NewInMemoryMetricsRepository() *InMemoryMetricsRepository {
	return &InMemoryMetricsRepository{}
}

func (i *InMemoryMetricsRepository) SetRepositories(
	productRepo ProductRepository,
	movementRepo MovementRepository,
	orderRepo OrderRepository,
) {
	i.productRepo = productRepo
	i.movementRepo = movementRepo
	i.orderRepo = orderRepo
}

// GetDashboardMetrics implements MetricsRepository.
func (i *InMemoryMetricsRepository) GetDashboardMetrics() (Metrics, error) {
	m := Metrics{}

	products, err := i.productRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalProducts = len(products)

	orders, err := i.orderRepo.GetAll()
	if err != nil {
		return m, err
	}
	m.TotalOrders = len(orders)

	for _, product := range products {
		_, count, err := i.movementRepo.GetByProductID(product.ID, MovementFilter{})
		if err != nil {
			return m, err
		}
		m.TotalMovements += count
		if count > m.MostMovedProduct.MovementCount {
			m.MostMovedProduct.Title = product.Title
			m.MostMovedProduct.MovementCount = count
		}
	}

	for _, product := range products {
		if product.Count == 0 {
			m.OutOfStockCount++
		}
	}

	return m, nil
}
