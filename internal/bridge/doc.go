// Package bridge defines the typed vocabulary for contract bridge: cards,
// seats, calls, auctions, contracts, deals, and tricks, together with the
// wire encoding shared by every adapter (suits C/D/H/S, ranks 2-9/T/J/Q/K/A,
// seats N/E/S/W, strains C/D/H/S/NT, vulnerability None/NS/EW/Both).
//
// Values are treated as immutable: operations in the engine subpackages
// never mutate their inputs and always return freshly constructed values.
package bridge
