// Package ledgers provides ledger metadata, authorization checks and block explorer URLs.
package ledgers

import (
	"sort"
	"strings"
)

// Family groups ledgers by how their authorizations are encoded.
type Family string

const (
	FamilyNative Family = "native"
	FamilyEVM    Family = "evm"
	FamilySolana Family = "solana"
)

// LedgerInfo contains metadata for a known ledger selector.
type LedgerInfo struct {
	ID        string `json:"id"`
	Name      string `json:"name"`
	Family    Family `json:"family"`
	IsTestnet bool   `json:"testnet"`

	// Explorer is the block explorer base URL, empty for native ledgers.
	Explorer string `json:"explorer,omitempty"`
	// ExplorerQuery is appended to transaction links (e.g. a Solana cluster).
	ExplorerQuery string `json:"-"`
}

// knownLedgers maps lowercase ledger selectors to metadata.
var knownLedgers = map[string]LedgerInfo{
	// Centrapay-managed balances
	"centrapay.nzd.main": {Name: "Centrapay NZD", Family: FamilyNative},
	"centrapay.nzd.test": {Name: "Centrapay NZD (Test)", Family: FamilyNative, IsTestnet: true},
	"centrapay.usd.main": {Name: "Centrapay USD", Family: FamilyNative},
	"centrapay.usd.test": {Name: "Centrapay USD (Test)", Family: FamilyNative, IsTestnet: true},

	// EVM chains
	"ethereum.main":    {Name: "Ethereum Mainnet", Family: FamilyEVM, Explorer: "https://etherscan.io"},
	"ethereum.sepolia": {Name: "Ethereum Sepolia", Family: FamilyEVM, IsTestnet: true, Explorer: "https://sepolia.etherscan.io"},
	"base.main":        {Name: "Base Mainnet", Family: FamilyEVM, Explorer: "https://basescan.org"},
	"base.sepolia":     {Name: "Base Sepolia", Family: FamilyEVM, IsTestnet: true, Explorer: "https://sepolia.basescan.org"},
	"polygon.main":     {Name: "Polygon Mainnet", Family: FamilyEVM, Explorer: "https://polygonscan.com"},

	// Solana clusters
	"solana.main":   {Name: "Solana Mainnet", Family: FamilySolana, Explorer: "https://explorer.solana.com"},
	"solana.devnet": {Name: "Solana Devnet", Family: FamilySolana, IsTestnet: true, Explorer: "https://explorer.solana.com", ExplorerQuery: "cluster=devnet"},
}

// Lookup returns metadata for a ledger selector, or nil if unknown.
// Matching is case-insensitive.
func Lookup(ledger string) *LedgerInfo {
	id := strings.ToLower(strings.TrimSpace(ledger))
	info, ok := knownLedgers[id]
	if !ok {
		return nil
	}
	info.ID = id
	return &info
}

// GetLedgerName returns a human-readable ledger name.
// Falls back to the raw selector if not found.
func GetLedgerName(ledger string) string {
	if info := Lookup(ledger); info != nil {
		return info.Name
	}
	return ledger
}

// List returns all known ledgers ordered by family, then by ID.
func List() []LedgerInfo {
	entries := make([]LedgerInfo, 0, len(knownLedgers))
	for id := range knownLedgers {
		entries = append(entries, *Lookup(id))
	}

	order := map[Family]int{FamilyNative: 0, FamilyEVM: 1, FamilySolana: 2}
	sort.Slice(entries, func(i, j int) bool {
		if entries[i].Family != entries[j].Family {
			return order[entries[i].Family] < order[entries[j].Family]
		}
		return entries[i].ID < entries[j].ID
	})
	return entries
}
