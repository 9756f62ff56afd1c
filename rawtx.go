package btcrpc

import (
	"bytes"
	"encoding/hex"

	"github.com/btcsuite/btcd/btcutil"
	"github.com/btcsuite/btcd/wire"
)

// RawTx is a transaction that can be passed to the "sendrawtransaction" RPC
// method.
//
// Implementations exist for each of the common representations of a
// transaction, so callers can pass whichever one they already have.
type RawTx interface {
	// RawHex returns the lowercase hex encoding of the serialized transaction.
	RawHex() string
}

// Tx returns a RawTx for a structured transaction.
//
// The transaction is serialized using the consensus encoding, including
// witness data if present.
func Tx(tx *wire.MsgTx) RawTx {
	return msgTx{tx}
}

// UtilTx returns a RawTx for a btcutil transaction.
func UtilTx(tx *btcutil.Tx) RawTx {
	return msgTx{tx.MsgTx()}
}

// Bytes is a RawTx for a transaction that is already serialized.
type Bytes []byte

// RawHex returns the lowercase hex encoding of b.
func (b Bytes) RawHex() string {
	return hex.EncodeToString(b)
}

// Hex is a RawTx for a transaction that is already hex encoded.
//
// It is passed to the server unchanged, so it must already be the lowercase
// hex encoding of the transaction. Otherwise it does not produce the same
// parameter as the other representations of the same transaction.
type Hex string

// RawHex returns h.
func (h Hex) RawHex() string {
	return string(h)
}

type msgTx struct {
	tx *wire.MsgTx
}

func (t msgTx) RawHex() string {
	var buf bytes.Buffer
	buf.Grow(t.tx.SerializeSize())

	if err := t.tx.Serialize(&buf); err != nil {
		// CODE COVERAGE: Serialize only fails if the writer fails, and writes
		// to a bytes.Buffer never fail.
		panic(err)
	}

	return hex.EncodeToString(buf.Bytes())
}
