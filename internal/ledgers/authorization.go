package ledgers

import (
	"errors"
	"fmt"
	"strings"

	"github.com/ethereum/go-ethereum/common"
	"github.com/ethereum/go-ethereum/common/hexutil"
	"github.com/gagliardetto/solana-go"
	"github.com/mr-tron/base58"
)

// AuthorizationKind describes what an authorization string was recognised as.
type AuthorizationKind string

const (
	KindToken       AuthorizationKind = "token"
	KindTransaction AuthorizationKind = "transaction"
	KindAddress     AuthorizationKind = "address"
)

// ErrEmptyAuthorization is returned for blank authorizations.
var ErrEmptyAuthorization = errors.New("authorization is empty")

// Authorization is a validated authorization.
type Authorization struct {
	// Value is the normalised form used for display and explorer links
	// (checksummed EVM addresses, lowercase EVM hashes, canonical base58).
	Value string            `json:"value"`
	Kind  AuthorizationKind `json:"kind"`
}

// ValidateAuthorization checks that authorization is well-formed for ledger.
// Unknown and native ledgers accept any non-empty opaque token.
func ValidateAuthorization(ledger, authorization string) (*Authorization, error) {
	authorization = strings.TrimSpace(authorization)
	if authorization == "" {
		return nil, ErrEmptyAuthorization
	}

	info := Lookup(ledger)
	if info == nil {
		return &Authorization{Value: authorization, Kind: KindToken}, nil
	}

	switch info.Family {
	case FamilyEVM:
		return validateEVM(info, authorization)
	case FamilySolana:
		return validateSolana(info, authorization)
	default:
		return &Authorization{Value: authorization, Kind: KindToken}, nil
	}
}

// validateEVM accepts a 32-byte transaction hash or a 20-byte account address.
func validateEVM(info *LedgerInfo, authorization string) (*Authorization, error) {
	if common.IsHexAddress(authorization) {
		return &Authorization{
			Value: common.HexToAddress(authorization).Hex(),
			Kind:  KindAddress,
		}, nil
	}

	raw, err := hexutil.Decode(authorization)
	if err != nil {
		return nil, fmt.Errorf("%s authorization must be a 0x transaction hash or address: %w", info.Name, err)
	}
	if len(raw) != common.HashLength {
		return nil, fmt.Errorf("%s transaction hash must be %d bytes, got %d", info.Name, common.HashLength, len(raw))
	}

	return &Authorization{
		Value: common.BytesToHash(raw).Hex(),
		Kind:  KindTransaction,
	}, nil
}

// validateSolana accepts a base58 transaction signature or public key.
func validateSolana(info *LedgerInfo, authorization string) (*Authorization, error) {
	raw, err := base58.Decode(authorization)
	if err != nil {
		return nil, fmt.Errorf("%s authorization must be base58 encoded: %w", info.Name, err)
	}

	switch len(raw) {
	case solana.SignatureLength:
		return &Authorization{
			Value: solana.SignatureFromBytes(raw).String(),
			Kind:  KindTransaction,
		}, nil
	case solana.PublicKeyLength:
		return &Authorization{
			Value: solana.PublicKeyFromBytes(raw).String(),
			Kind:  KindAddress,
		}, nil
	default:
		return nil, fmt.Errorf("%s authorization must be a %d-byte signature or %d-byte public key, got %d bytes",
			info.Name, solana.SignatureLength, solana.PublicKeyLength, len(raw))
	}
}
