package constant

type StockChangeType string

const (
	StockChangeIncrease StockChangeType = "increase"
	StockChangeDecrease StockChangeType = "decrease"
)

// Reference types recorded on stock ledger entries.
const (
	StockReferencePurchase         = "purchase"
	StockReferenceOrderConsumption = "order_consumption"
)
