package output

// DefaultAssumptions lists key modeling assumptions rendered in detailed outputs.
var DefaultAssumptions = []string{
	"Annual returns per asset are independent normal draws (no correlation)",
	"Volatility by risk tier: Low 2%, Medium 5%, High 10%",
	"Withdrawals grow with inflation and are taken pro-rata across assets at the start of each year",
	"An asset cannot fall below zero; a depleted portfolio stays depleted",
	"No taxes, fees or rebalancing",
}
