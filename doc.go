// Package fundholdings analyzes a fund's quarterly portfolio-holdings
// snapshots and derives a structured narrative report. It is designed to be
// local-first and auditable: the only input is a directory of snapshot files,
// and the only output is a markdown document.
//
// The core functionalities include:
//   - File Discovery: grouping quarterly snapshot files by the fund
//     identifier encoded in their names.
//   - Schema Normalization: reconciling the observed snapshot column
//     variants into one canonical record shape.
//   - Quarterly Merge: concatenating all of a fund's snapshots into a single
//     chronological holdings table.
//   - Holdings Diff: computing the instruments added and removed between
//     consecutive reporting quarters.
//   - Classification: mapping instrument codes to market-segment, industry
//     and theme labels via fixed lookup tables.
//   - Aggregation: pivoting allocation percentages by year and label, and
//     summing them per quarter as a concentration proxy.
//   - Narration: rule-based commentary on concentration trend and
//     segment-preference shift.
//
// This package serves as the foundational logic for the `fha` command-line
// tool; rendering of report sections lives in the renderer subpackage.
package fundholdings
