package inventory

import (
	"fmt"
	"time"

	"github.com/shopspring/decimal"
	"go.uber.org/multierr"

	"github.com/angelmondragon/inventory-ledger/pkg/enums"
)

// SeedData is fixture state loaded when the ledger is built.
type SeedData struct {
	Products     []SeedProduct
	Transactions []SeedTransaction
}

// SeedProduct is a fixture product. Key links fixture transactions to it.
type SeedProduct struct {
	Key       string
	Input     ProductInput
	CreatedAt time.Time
}

// SeedTransaction is a historical movement. Its quantity is already reflected in the
// fixture product's stock and is not applied again.
type SeedTransaction struct {
	ProductKey  string
	Type        enums.TransactionType
	Quantity    int
	Price       decimal.Decimal
	Description string
	Date        time.Time
}

// load validates every fixture entry first and inserts nothing if any is invalid.
func (l *ledger) load(seed SeedData) error {
	var errs error
	keys := map[string]int{}
	inputs := make([]ProductInput, len(seed.Products))
	for i, entry := range seed.Products {
		if entry.Key == "" {
			errs = multierr.Append(errs, fmt.Errorf("product %d: key is required", i))
			continue
		}
		if _, dup := keys[entry.Key]; dup {
			errs = multierr.Append(errs, fmt.Errorf("product %q: duplicate key", entry.Key))
			continue
		}
		keys[entry.Key] = i
		inputs[i] = normalizeProductInput(entry.Input)
		if err := validateProductInput(inputs[i]); err != nil {
			errs = multierr.Append(errs, fmt.Errorf("product %q: %w", entry.Key, err))
		}
	}
	for i, entry := range seed.Transactions {
		if _, ok := keys[entry.ProductKey]; !ok {
			errs = multierr.Append(errs, fmt.Errorf("transaction %d: unknown product %q", i, entry.ProductKey))
			continue
		}
		err := validateTransactionInput(TransactionInput{
			Type:      entry.Type,
			Quantity:  entry.Quantity,
			UnitPrice: entry.Price,
		})
		if err != nil {
			errs = multierr.Append(errs, fmt.Errorf("transaction %d: %w", i, err))
		}
	}
	if errs != nil {
		return errs
	}

	l.mu.Lock()
	defer l.mu.Unlock()

	now := l.now()
	ids := make(map[string]Product, len(seed.Products))
	for i, entry := range seed.Products {
		input := inputs[i]
		createdAt := entry.CreatedAt
		if createdAt.IsZero() {
			createdAt = now
		}
		product := Product{
			ID:          l.nextProductID(),
			Name:        input.Name,
			Description: input.Description,
			Category:    input.Category,
			Price:       input.Price,
			Stock:       input.Stock,
			MinStock:    input.MinStock,
			Image:       input.Image,
			CreatedAt:   createdAt,
			UpdatedAt:   createdAt,
		}
		l.products = append(l.products, product)
		ids[entry.Key] = product
	}
	for _, entry := range seed.Transactions {
		date := entry.Date
		if date.IsZero() {
			date = now
		}
		l.transactions = append(l.transactions, Transaction{
			ID:          l.nextTransactionID(),
			ProductID:   ids[entry.ProductKey].ID,
			Type:        entry.Type,
			Quantity:    entry.Quantity,
			Price:       entry.Price,
			Total:       entry.Price.Mul(decimal.NewFromInt(int64(entry.Quantity))),
			Description: entry.Description,
			Date:        date,
		})
	}
	return nil
}

// DefaultSeed is the demo catalog shown on first load.
func DefaultSeed(now time.Time) SeedData {
	image := func(url string) *string { return &url }
	day := 24 * time.Hour
	return SeedData{
		Products: []SeedProduct{
			{
				Key: "laptop",
				Input: ProductInput{
					Name:        "Ноутбук Lenovo IdeaPad",
					Description: "Игровой ноутбук с 16GB RAM и RTX 3060",
					Category:    "Электроника",
					Price:       decimal.NewFromInt(75000),
					Stock:       3,
					MinStock:    2,
					Image:       image("https://images.unsplash.com/photo-1496181133206-80ce9b88a853?w=400"),
				},
				CreatedAt: now,
			},
			{
				Key: "tshirt",
				Input: ProductInput{
					Name:        "Футболка Nike",
					Description: "Спортивная футболка из хлопка",
					Category:    "Одежда",
					Price:       decimal.NewFromInt(2500),
					Stock:       12,
					MinStock:    5,
					Image:       image("https://images.unsplash.com/photo-1521572163474-6864f9cf17ab?w=400"),
				},
				CreatedAt: now,
			},
			{
				Key: "coffee",
				Input: ProductInput{
					Name:        "Кофе арабика",
					Description: "Зерновой кофе премиум класса",
					Category:    "Продукты",
					Price:       decimal.NewFromInt(850),
					Stock:       1,
					MinStock:    3,
					Image:       image("https://images.unsplash.com/photo-1447933601403-0c6688de566e?w=400"),
				},
				CreatedAt: now,
			},
		},
		Transactions: []SeedTransaction{
			{
				ProductKey:  "laptop",
				Type:        enums.TransactionTypeIncoming,
				Quantity:    5,
				Price:       decimal.NewFromInt(70000),
				Description: "Поставка от DNS",
				Date:        now.Add(-2 * day),
			},
			{
				ProductKey:  "laptop",
				Type:        enums.TransactionTypeOutgoing,
				Quantity:    2,
				Price:       decimal.NewFromInt(75000),
				Description: "Продажа клиенту",
				Date:        now.Add(-1 * day),
			},
		},
	}
}
