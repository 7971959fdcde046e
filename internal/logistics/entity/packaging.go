package entity

import "strings"

// JoinPackaging serializes packaging lines into three parallel
// semicolon-joined columns.
func JoinPackaging(lines []PackagingLine) (types, quantities, descriptions string) {
	if len(lines) == 0 {
		return "", "", ""
	}
	ts := make([]string, len(lines))
	qs := make([]string, len(lines))
	ds := make([]string, len(lines))
	for i, line := range lines {
		ts[i] = line.Type
		qs[i] = line.Quantity
		ds[i] = line.Description
	}
	return strings.Join(ts, "; "), strings.Join(qs, "; "), strings.Join(ds, "; ")
}

// SplitPackaging zips the three parallel columns back into lines. The columns
// are zipped by index and the shortest list wins, so a hand-edited cell with a
// missing element shortens the result instead of misaligning it.
func SplitPackaging(types, quantities, descriptions string) []PackagingLine {
	ts := splitList(types)
	qs := splitList(quantities)
	ds := splitList(descriptions)

	n := len(ts)
	if len(qs) < n {
		n = len(qs)
	}
	if len(ds) < n {
		n = len(ds)
	}
	if n == 0 {
		return nil
	}
	lines := make([]PackagingLine, n)
	for i := 0; i < n; i++ {
		lines[i] = PackagingLine{Type: ts[i], Quantity: qs[i], Description: ds[i]}
	}
	return lines
}

func splitList(cell string) []string {
	if strings.TrimSpace(cell) == "" {
		return nil
	}
	parts := strings.Split(cell, ";")
	for i := range parts {
		parts[i] = strings.TrimSpace(parts[i])
	}
	return parts
}
