package schema

// Table is the closed set of tables the store manages.
//
// Adding a table means adding a constant here and extending the exhaustive
// switches in Schema, String and Validator; there is no dynamic registration.
type Table uint8

const (
	// TablePrices holds OHLCV price bars.
	TablePrices Table = iota
	// TableFXRates holds currency exchange rates.
	TableFXRates
	// TablePnLSnapshots holds portfolio profit-and-loss snapshots.
	TablePnLSnapshots
	// TableIndicators holds technical indicator values.
	TableIndicators
	// TableFundamentals holds fundamental ratio snapshots.
	TableFundamentals
	// TableFilingItems holds structured filing line items.
	TableFilingItems
	// TableFilingMeta holds filing metadata.
	TableFilingMeta
)

// String returns the on-disk table name.
func (t Table) String() string {
	switch t {
	case TablePrices:
		return "prices"
	case TableFXRates:
		return "fx_rates"
	case TablePnLSnapshots:
		return "pnl_snapshots"
	case TableIndicators:
		return "technical_indicators"
	case TableFundamentals:
		return "fundamental_ratios"
	case TableFilingItems:
		return "filing_line_items"
	case TableFilingMeta:
		return "filing_metadata"
	default:
		return "unknown"
	}
}

// All returns every known table in declaration order.
func All() []Table {
	return []Table{
		TablePrices,
		TableFXRates,
		TablePnLSnapshots,
		TableIndicators,
		TableFundamentals,
		TableFilingItems,
		TableFilingMeta,
	}
}

// Lookup resolves a table name to its Table.
func Lookup(name string) (Table, bool) {
	for _, t := range All() {
		if t.String() == name {
			return t, true
		}
	}
	return 0, false
}

// Schema returns the fixed schema of the table.
func (t Table) Schema() *Schema {
	switch t {
	case TablePrices:
		return pricesSchema
	case TableFXRates:
		return fxRatesSchema
	case TablePnLSnapshots:
		return pnlSnapshotsSchema
	case TableIndicators:
		return indicatorsSchema
	case TableFundamentals:
		return fundamentalsSchema
	case TableFilingItems:
		return filingItemsSchema
	case TableFilingMeta:
		return filingMetaSchema
	default:
		return nil
	}
}

var (
	pricesSchema = &Schema{
		Table: TablePrices,
		Name:  "prices",
		Columns: []Column{
			{Name: "symbol", Type: TypeString, Dict: true},
			{Name: "timestamp", Type: TypeTime},
			{Name: "open", Type: TypeFloat},
			{Name: "high", Type: TypeFloat},
			{Name: "low", Type: TypeFloat},
			{Name: "close", Type: TypeFloat},
			{Name: "volume", Type: TypeInt},
			{Name: "currency", Type: TypeString, Dict: true},
			{Name: "frequency", Type: TypeString, Dict: true},
		},
		KeyColumns:      []string{"symbol", "timestamp"},
		PartitionColumn: "timestamp",
	}

	fxRatesSchema = &Schema{
		Table: TableFXRates,
		Name:  "fx_rates",
		Columns: []Column{
			{Name: "base_currency", Type: TypeString, Dict: true},
			{Name: "quote_currency", Type: TypeString, Dict: true},
			{Name: "timestamp", Type: TypeTime},
			{Name: "rate", Type: TypeFloat},
		},
		KeyColumns:      []string{"base_currency", "quote_currency", "timestamp"},
		PartitionColumn: "timestamp",
	}

	// pnl_snapshots partitions on as_of rather than timestamp; the routing
	// rule is identical.
	pnlSnapshotsSchema = &Schema{
		Table: TablePnLSnapshots,
		Name:  "pnl_snapshots",
		Columns: []Column{
			{Name: "symbol", Type: TypeString, Dict: true},
			{Name: "as_of", Type: TypeTime},
			{Name: "quantity", Type: TypeFloat},
			{Name: "cost_basis", Type: TypeFloat},
			{Name: "market_value", Type: TypeFloat},
			{Name: "unrealized_pnl", Type: TypeFloat},
			{Name: "realized_pnl", Type: TypeFloat},
			{Name: "currency", Type: TypeString, Dict: true},
		},
		KeyColumns:      []string{"symbol", "as_of"},
		PartitionColumn: "as_of",
	}

	indicatorsSchema = &Schema{
		Table: TableIndicators,
		Name:  "technical_indicators",
		Columns: []Column{
			{Name: "symbol", Type: TypeString, Dict: true},
			{Name: "frequency", Type: TypeString, Dict: true},
			{Name: "timestamp", Type: TypeTime},
			{Name: "rsi", Type: TypeFloat},
			{Name: "macd", Type: TypeFloat},
			{Name: "macd_signal", Type: TypeFloat},
			{Name: "sma_20", Type: TypeFloat},
			{Name: "sma_50", Type: TypeFloat},
			{Name: "ema_20", Type: TypeFloat},
			{Name: "bollinger_upper", Type: TypeFloat},
			{Name: "bollinger_lower", Type: TypeFloat},
		},
		KeyColumns:      []string{"symbol", "frequency", "timestamp"},
		PartitionColumn: "timestamp",
	}

	fundamentalsSchema = &Schema{
		Table: TableFundamentals,
		Name:  "fundamental_ratios",
		Columns: []Column{
			{Name: "symbol", Type: TypeString, Dict: true},
			{Name: "timestamp", Type: TypeTime},
			{Name: "sector", Type: TypeString, Dict: true},
			{Name: "pe_ratio", Type: TypeFloat},
			{Name: "pb_ratio", Type: TypeFloat},
			{Name: "debt_to_equity", Type: TypeFloat},
			{Name: "return_on_equity", Type: TypeFloat},
			{Name: "current_ratio", Type: TypeFloat},
			{Name: "gross_margin", Type: TypeFloat},
		},
		KeyColumns:      []string{"symbol", "timestamp"},
		PartitionColumn: "timestamp",
	}

	filingItemsSchema = &Schema{
		Table: TableFilingItems,
		Name:  "filing_line_items",
		Columns: []Column{
			{Name: "ticker", Type: TypeString, Dict: true},
			{Name: "accession_number", Type: TypeString},
			{Name: "timestamp", Type: TypeTime},
			{Name: "tag", Type: TypeString, Dict: true},
			{Name: "value", Type: TypeFloat},
			{Name: "unit", Type: TypeString, Dict: true},
			{Name: "fiscal_period", Type: TypeString, Dict: true},
		},
		KeyColumns:      []string{"ticker", "accession_number"},
		PartitionColumn: "timestamp",
	}

	// filing_metadata partitions on filed_at rather than timestamp.
	filingMetaSchema = &Schema{
		Table: TableFilingMeta,
		Name:  "filing_metadata",
		Columns: []Column{
			{Name: "ticker", Type: TypeString, Dict: true},
			{Name: "accession_number", Type: TypeString},
			{Name: "filing_type", Type: TypeString, Dict: true},
			{Name: "filed_at", Type: TypeTime},
			{Name: "period_of_report", Type: TypeTime},
			{Name: "url", Type: TypeString},
		},
		KeyColumns:      []string{"ticker", "accession_number"},
		PartitionColumn: "filed_at",
	}
)
