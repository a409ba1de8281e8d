// Package escrow provides the vault side of the settlement domain: custody of
// the value captured for each order and the accounting rules that keep it
// conserved.
//
// The package includes:
//   - Escrow: The aggregate root that holds one order's captured amount and
//     releases it exactly once
//   - Recipient: A closed enumeration of release destinations
//
// Key business rules:
//   - Capture requires an attached payment of at least the order's total
//   - The held amount is released in full, exactly once, to the supplier or
//     back to the buyer
//   - held + released always equals the captured total (conservation)
//   - Escrow balances are never pooled across orders
package escrow
