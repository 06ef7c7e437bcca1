// Package wishlist provides the types and functions for tracking a personal
// wishlist of desired purchases. It is designed to be local-first and
// transparent: all data lives in human-readable files on the user's device,
// and no operation ever reaches the network.
//
// The core functionalities include:
//   - Wish Records: each wish carries a title, a price in the currency it was
//     quoted in, a target purchase date, and optional link, image, and
//     category attributes.
//   - Currency Conversion: a fixed exchange-rate table converts and formats
//     amounts across the supported currencies, so any wish can be displayed
//     in the user's preferred currency.
//   - Data Persistence: wishes, categories, and preferences are stored as
//     independent slots in a plain directory, encoded in JSONL or plain code
//     strings, easy to inspect and version-control.
//   - Export: the full collection serializes to CSV, JSON, or XML for
//     sharing with other tools.
//
// This package serves as the foundational logic for the `wish` command-line
// tool.
package wishlist
