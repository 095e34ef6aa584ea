// SPDX-License-Identifier: MIT

// Package dataset turns a header-keyed CSV file into the feature vectors and
// labels consumed by hac and dendrogram.
//
// Pipeline:
//
//	records, _ := dataset.LoadFile("Country-data.csv")   // []Record, file order
//	X, _ := dataset.Features(records, dataset.DefaultFields)
//	X, _ = dataset.Normalize(X, matrix.ZeroVarianceError) // z-score per column
//	labels := dataset.Labels(records, "country")
//
// Every failure names the offending record index and field; the first bad
// record fails the whole load.
package dataset
