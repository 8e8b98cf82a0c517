package model

import "github.com/shopspring/decimal"

// Quote is the exact, unrounded price of a line.
type Quote struct {
	Unit  decimal.Decimal
	Total decimal.Decimal
}

// Review is the counter summary of a selection ready for placement.
type Review struct {
	Selection Selection
	Quote     Quote
}
