package rpcclient

import (
	"context"

	"github.com/dogmatiq/btcrpc"
)

// GetBlockCount returns the height of the most-work fully-validated chain.
//
// ok is false if the call fails for any reason. Use Call() with the
// "getblockcount" method to obtain the error.
func (c *Client) GetBlockCount(ctx context.Context) (count uint64, ok bool) {
	if err := c.Call(ctx, "getblockcount", nil, &count); err != nil {
		return 0, false
	}

	return count, true
}

// SendRawTransaction submits a transaction to the node's mempool and relays
// it to the network.
//
// It returns the ID of the transaction. ok is false if the call fails for any
// reason, including the node rejecting the transaction.
func (c *Client) SendRawTransaction(ctx context.Context, tx btcrpc.RawTx) (txid btcrpc.Txid, ok bool) {
	// The second parameter is the optional "maxfeerate", which is always null
	// so that the node applies its default.
	args := []any{tx.RawHex(), nil}

	if err := c.Call(ctx, "sendrawtransaction", args, &txid); err != nil {
		return btcrpc.Txid{}, false
	}

	return txid, true
}
