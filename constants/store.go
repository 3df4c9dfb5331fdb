package constants

// StoreName is the retailer whose receipt layouts this parser targets.
const StoreName = "Albert Heijn"

// DepositItemName is the canonical name for statiegeld (container
// deposit) lines, which carry no product name of their own.
const DepositItemName = "Statiegeld"
