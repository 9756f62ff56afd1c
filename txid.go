package btcrpc

import (
	"encoding/json"
	"fmt"

	"github.com/btcsuite/btcd/chaincfg/chainhash"
)

// Txid is a transaction identifier.
//
// Its JSON representation is the hex encoding of the hash in Bitcoin's
// byte-reversed display order.
type Txid chainhash.Hash

// Hash returns t as a chainhash.Hash.
func (t Txid) Hash() chainhash.Hash {
	return chainhash.Hash(t)
}

// String returns the hex encoding of t in display order.
func (t Txid) String() string {
	return chainhash.Hash(t).String()
}

// MarshalJSON returns the JSON representation of t.
func (t Txid) MarshalJSON() ([]byte, error) {
	return json.Marshal(t.String())
}

// UnmarshalJSON sets t to the transaction ID represented by data.
func (t *Txid) UnmarshalJSON(data []byte) error {
	var s string
	if err := json.Unmarshal(data, &s); err != nil {
		return err
	}

	if len(s) != chainhash.MaxHashStringSize {
		return fmt.Errorf(
			"transaction ID must be %d hex characters, got %d",
			chainhash.MaxHashStringSize,
			len(s),
		)
	}

	h, err := chainhash.NewHashFromStr(s)
	if err != nil {
		return fmt.Errorf("invalid transaction ID: %w", err)
	}

	*t = Txid(*h)
	return nil
}
