package commands

import (
	"encoding/json"
	"testing"

	"github.com/stretchr/testify/assert"
	"github.com/stretchr/testify/require"
)

func TestLedgersCommand(t *testing.T) {
	resetFlags(t)

	res := runCLI("ledgers")

	require.Equal(t, ExitOK, res.code, res.stderr)
	assert.Contains(t, res.stdout, "Known Ledgers")
	assert.Contains(t, res.stdout, "centrapay.nzd.main")
	assert.Contains(t, res.stdout, "ethereum.sepolia")
	assert.Contains(t, res.stdout, "https://explorer.solana.com")
	assert.Contains(t, res.stdout, "(testnet)")
}

func TestLedgersCommand_JSON(t *testing.T) {
	resetFlags(t)
	t.Cleanup(func() { resetFlags(t) })

	res := runCLI("ledgers", "--json")

	require.Equal(t, ExitOK, res.code, res.stderr)
	var entries []struct {
		ID     string `json:"id"`
		Family string `json:"family"`
	}
	require.NoError(t, json.Unmarshal([]byte(res.stdout), &entries))
	require.NotEmpty(t, entries)
	assert.Equal(t, "native", entries[0].Family)
}

func TestLedgersCommand_RejectsArgs(t *testing.T) {
	resetFlags(t)

	res := runCLI("ledgers", "extra")

	assert.Equal(t, ExitUsage, res.code)
}

func TestCheckAuthorization(t *testing.T) {
	checks, auth, err := checkAuthorization("centrapay.nzd.main", "tok")
	require.NoError(t, err)
	require.Len(t, checks, 2)
	assert.Equal(t, "pass", string(checks[0].Status))
	assert.Equal(t, "tok", auth.Value)

	checks, _, err = checkAuthorization("base.main", "nope")
	require.Error(t, err)
	assert.Equal(t, "fail", string(checks[1].Status))

	checks, _, err = checkAuthorization("unknown.ledger", "tok")
	require.NoError(t, err)
	assert.Equal(t, "warn", string(checks[0].Status))
}
