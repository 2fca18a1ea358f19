// Package api defines the FinFusion RPC surface: wire messages, procedure
// names, the JSON codec both ends agree on, and a typed client.
//
// Procedures follow the Connect protocol and live under
// /finfusion.v1.<Service>/<Method>. Messages are plain structs with JSON tags;
// no framework types cross into the ledger, settlement or analytics packages.
package api
