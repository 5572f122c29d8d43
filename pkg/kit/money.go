package kit

import "github.com/shopspring/decimal"

// Money goes over the wire as a JSON number from every handler that writes
// through this package.
func init() {
	decimal.MarshalJSONWithoutQuotes = true
}
