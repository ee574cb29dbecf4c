package parser

import (
	"fmt"
	"strings"

	"github.com/ukaji3/faresnap-go/pkg/faresnap/models"
)

// LayoutSpec describes how to find each metric family's columns by header name.
type LayoutSpec struct {
	// TYYear and LYYear are the two-digit year suffixes used in snapshot headers.
	TYYear string
	LYYear string
	// Blocks overrides the derived header names per family.
	Blocks map[models.MetricFamily][]string
	// References names the last-year actual column per family (optional).
	References map[models.MetricFamily]string
}

// DefaultLayoutSpec returns the layout of the Dec'24 fare snapshot workbook.
func DefaultLayoutSpec() LayoutSpec {
	return LayoutSpec{
		TYYear: "24",
		LYYear: "23",
	}
}

// SnapshotHeader returns the header text for an axis label and year suffix,
// e.g. "03-Nov" and "24" give "03Nov'24".
func SnapshotHeader(label, year string) string {
	return strings.ReplaceAll(label, "-", "") + "'" + year
}

// BlockHeaders lists a family's header names from the newest date to the oldest,
// TY before LY at each date.
func BlockHeaders(axis []string, tyYear, lyYear string) []string {
	headers := make([]string, 0, 2*len(axis))
	for i := len(axis) - 1; i >= 0; i-- {
		headers = append(headers, SnapshotHeader(axis[i], tyYear), SnapshotHeader(axis[i], lyYear))
	}
	return headers
}

// ResolveLayout maps header names to column indices once per dataset.
//
// The workbook repeats the same snapshot headers for every family, so families
// claim columns in models.Families order: each name resolves to its first
// occurrence not already claimed by an earlier family. Names that cannot be
// found are dropped, which leaves a short block for the extractor to reject.
func ResolveLayout(header []string, spec LayoutSpec, axis []string) (models.ColumnLayout, error) {
	layout := models.ColumnLayout{
		Blocks:     make(map[models.MetricFamily][]int),
		References: make(map[models.MetricFamily]int),
		Header:     append([]string(nil), header...),
	}

	positions := make(map[string][]int)
	for i, h := range header {
		positions[h] = append(positions[h], i)
	}
	claimed := make(map[int]bool)

	for _, family := range models.Families {
		names := spec.Blocks[family]
		if len(names) == 0 {
			names = BlockHeaders(axis, spec.TYYear, spec.LYYear)
		}
		block := make([]int, 0, len(names))
		for _, name := range names {
			for _, idx := range positions[name] {
				if !claimed[idx] {
					claimed[idx] = true
					block = append(block, idx)
					break
				}
			}
		}
		layout.Blocks[family] = block
	}

	for family, name := range spec.References {
		if name == "" {
			continue
		}
		idx := findColumn(header, name)
		if idx < 0 {
			return models.ColumnLayout{}, fmt.Errorf("reference column %q for %s not found", name, family)
		}
		layout.References[family] = idx
	}

	return layout, nil
}
