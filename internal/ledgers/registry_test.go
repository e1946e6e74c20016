package ledgers

import (
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLookup_Known(t *testing.T) {
	tests := []struct {
		ledger   string
		name     string
		family   Family
		testnet  bool
		explorer string
	}{
		{"centrapay.nzd.main", "Centrapay NZD", FamilyNative, false, ""},
		{"centrapay.nzd.test", "Centrapay NZD (Test)", FamilyNative, true, ""},
		{"ethereum.main", "Ethereum Mainnet", FamilyEVM, false, "https://etherscan.io"},
		{"base.sepolia", "Base Sepolia", FamilyEVM, true, "https://sepolia.basescan.org"},
		{"solana.devnet", "Solana Devnet", FamilySolana, true, "https://explorer.solana.com"},
	}

	for _, tt := range tests {
		t.Run(tt.ledger, func(t *testing.T) {
			info := Lookup(tt.ledger)
			require.NotNil(t, info)
			assert.Equal(t, tt.ledger, info.ID)
			assert.Equal(t, tt.name, info.Name)
			assert.Equal(t, tt.family, info.Family)
			assert.Equal(t, tt.testnet, info.IsTestnet)
			assert.Equal(t, tt.explorer, info.Explorer)
		})
	}
}

func TestLookup_CaseInsensitive(t *testing.T) {
	info := Lookup("  Ethereum.MAIN ")
	require.NotNil(t, info)
	assert.Equal(t, "ethereum.main", info.ID)
}

func TestLookup_Unknown(t *testing.T) {
	assert.Nil(t, Lookup("bitcoin.main"))
	assert.Nil(t, Lookup(""))
}

func TestGetLedgerName(t *testing.T) {
	assert.Equal(t, "Solana Mainnet", GetLedgerName("solana.main"))
	assert.Equal(t, "my.custom.ledger", GetLedgerName("my.custom.ledger"))
}

func TestList_Ordered(t *testing.T) {
	entries := List()
	require.Len(t, entries, len(knownLedgers))

	// Native ledgers first, then EVM, then Solana
	assert.Equal(t, FamilyNative, entries[0].Family)
	assert.Equal(t, FamilySolana, entries[len(entries)-1].Family)

	for i := 1; i < len(entries); i++ {
		if entries[i-1].Family == entries[i].Family {
			assert.Less(t, entries[i-1].ID, entries[i].ID)
		}
		assert.NotEmpty(t, entries[i].ID)
	}
}
