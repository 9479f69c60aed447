// Package doublecount removes double-counted flows from a technosphere
// matrix.
//
// Some activities are modeled as explicit scenario variables. Their inputs
// from elsewhere in the technosphere would be counted twice, so for every
// marked activity index idx, Remove zeroes entries with row == idx and
// col != idx and then compacts the storage. The diagonal (the activity's own
// production) is kept.
//
// Marked activities are grouped by region and variable:
//
//	DE:
//	  electricity: {idx: 5}
//	  heat:        {idx: 12}
package doublecount
