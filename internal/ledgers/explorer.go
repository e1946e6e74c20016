package ledgers

import "fmt"

// ExplorerURL returns the block explorer URL for a transaction.
// Returns empty string if the ledger has no explorer.
func ExplorerURL(ledger, txHash string) string {
	info := Lookup(ledger)
	if info == nil || info.Explorer == "" {
		return ""
	}
	link := fmt.Sprintf("%s/tx/%s", info.Explorer, txHash)
	if info.ExplorerQuery != "" {
		link += "?" + info.ExplorerQuery
	}
	return link
}

// AddressExplorerURL returns the block explorer URL for an address.
func AddressExplorerURL(ledger, address string) string {
	info := Lookup(ledger)
	if info == nil || info.Explorer == "" {
		return ""
	}
	link := fmt.Sprintf("%s/address/%s", info.Explorer, address)
	if info.ExplorerQuery != "" {
		link += "?" + info.ExplorerQuery
	}
	return link
}

// AuthorizationURL links a validated authorization to the ledger's explorer.
func AuthorizationURL(ledger string, auth *Authorization) string {
	if auth == nil {
		return ""
	}
	switch auth.Kind {
	case KindTransaction:
		return ExplorerURL(ledger, auth.Value)
	case KindAddress:
		return AddressExplorerURL(ledger, auth.Value)
	default:
		return ""
	}
}
