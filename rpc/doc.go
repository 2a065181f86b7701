/*
RPC implementation in the Lumen node is based on
[github.com/ethereum/go-ethereum/rpc] that follows JSON-RPC 2.0.

# Example

request:

	{"jsonrpc": "2.0", "method": "lumen_getBlockWithTxHashes", "params": ["latest"], "id": 1}

response:

	{"jsonrpc":"2.0","id":1,"result":{"hash":"...","parentHash":"...","stateRoot":"...","transactionsRoot":"...","height":1,"timestamp":0,"gasPrice":1,"status":"ACCEPTED_ON_L2","transactions":["..."]}}

# Request

`method` in request is defined in `{namespace}_{methodName}` format where
  - `namespace` is defined when registering a struct by calling [RegisterName],
    `API List` below shows namespaces and corresponding structs
  - `methodName` is public methods of the struct in uncapitalized form

`params` are the parameters of the public method. A block reference parameter
is either the string "latest" or "pending", or an object with exactly one of
`block_number` and `block_hash`.

# Errors

Methods return a stable (code, message) pair per failure kind, see
[github.com/lumenchain/node/rpcerr]. Internal faults always map to the
reserved internal error code.

# Subscriptions

Subscription is supported in websocket streams.

Method is defined in `{namespace}_subscribe` format. First param is
uncapitalized public method name that returns a
[github.com/ethereum/go-ethereum/rpc.Subscription]

For example:

	{"jsonrpc": "2.0", "method": "lumen_subscribe", "params": ["newHeads"], "id": 1}

will execute [github.com/lumenchain/node/query.SubAPI.NewHeads]

# API List

`lumen`
  - query apis [github.com/lumenchain/node/query.API]
  - subscriptions [github.com/lumenchain/node/query.SubAPI]

`node`
  - [github.com/lumenchain/node/node.API]
*/
package rpc
