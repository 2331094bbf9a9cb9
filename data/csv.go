package data

import (
	"encoding/csv"
	"fmt"
	"io"
	"strconv"
)

// ParseOptions configures ParseCSV.
type ParseOptions struct {
	// ClassFirst, when true (default convention, matching the teacher's
	// parser), treats column 0 as the class label and columns 1..n as
	// features. When false, the class is the last column.
	ClassFirst bool
	// MissingToken is the string (e.g. "?" or "NA") treated as a missing
	// value; any cell matching it is recorded as missing on that attribute.
	MissingToken string
}

// DefaultParseOptions matches the teacher's parser: label in column 0, with
// "?" recognized as the missing-value token.
func DefaultParseOptions() ParseOptions {
	return ParseOptions{ClassFirst: true, MissingToken: "?"}
}

// ParseCSV reads a delimited file into an InstanceSet. The header row is
// detected the way the teacher's parseHeader does: if every non-class cell
// in the first row fails to parse as a float, it's a header; otherwise
// X1..Xn names are synthesized and the first row is parsed as data.
// Nominal vs. numeric is decided per-column: a column is Nominal if any
// cell (other than MissingToken) fails to parse as a float.
func ParseCSV(r io.Reader, opt ParseOptions) (InstanceSet, error) {
	reader := csv.NewReader(r)
	reader.FieldsPerRecord = -1

	var rows [][]string
	for {
		row, err := reader.Read()
		if err == io.EOF {
			break
		}
		if err != nil {
			return InstanceSet{}, fmt.Errorf("furia: parsing csv: %w", err)
		}
		rows = append(rows, row)
	}

	if len(rows) == 0 {
		return InstanceSet{}, fmt.Errorf("furia: %w", ErrEmptyInput)
	}

	nCol := len(rows[0])
	for _, row := range rows {
		if len(row) != nCol {
			return InstanceSet{}, fmt.Errorf("furia: inconsistent column count, want %d got %d", nCol, len(row))
		}
	}

	names, dataRows := splitHeader(rows, opt)

	classCol, featureCols := columnLayout(nCol, opt)

	kinds := make([]AttributeKind, nCol)
	values := make([][]string, nCol)
	valueIDs := make([]map[string]int, nCol)
	for c := 0; c < nCol; c++ {
		kinds[c] = columnKind(dataRows, c, opt.MissingToken)
		if kinds[c] == Nominal {
			valueIDs[c] = make(map[string]int)
		}
	}

	// the class column is always nominal, regardless of whether its labels
	// happen to parse as floats (e.g. integer-coded class labels): it must
	// be interned into valueIDs/values like any other nominal column, not
	// passed through as a raw numeric value.
	kinds[classCol] = Nominal
	if valueIDs[classCol] == nil {
		valueIDs[classCol] = make(map[string]int)
	}

	schema := make([]Attribute, nCol)
	for c := 0; c < nCol; c++ {
		schema[c] = Attribute{Name: names[c], Kind: kinds[c]}
	}

	instances := make([]Instance, 0, len(dataRows))
	for _, row := range dataRows {
		x := make([]float64, len(featureCols))
		missing := make([]bool, len(featureCols))
		classVal := -1

		for i, c := range featureCols {
			v, isMissing, err := codeValue(row[c], kinds[c], opt.MissingToken, valueIDs[c], &values[c])
			if err != nil {
				return InstanceSet{}, fmt.Errorf("furia: row %v, column %d: %w", row, c, err)
			}
			x[i] = v
			missing[i] = isMissing
		}

		cv, isMissing, err := codeValue(row[classCol], kinds[classCol], opt.MissingToken, valueIDs[classCol], &values[classCol])
		if err != nil {
			return InstanceSet{}, fmt.Errorf("furia: row %v, class column: %w", row, err)
		}
		if !isMissing {
			classVal = int(cv)
		}

		instances = append(instances, Instance{X: x, Missing: missing, Weight: 1.0, Class: classVal})
	}

	// remap feature schema indices to 0..len(featureCols)-1, and fill in
	// the nominal value tables collected while coding.
	featureSchema := make([]Attribute, len(featureCols))
	for i, c := range featureCols {
		featureSchema[i] = Attribute{Name: names[c], Kind: kinds[c], Values: values[c]}
	}
	classAttr := Attribute{Name: names[classCol], Kind: Nominal, Values: values[classCol]}

	fullSchema := append(featureSchema, classAttr)
	classAttrIdx := len(featureSchema)

	return InstanceSet{Schema: fullSchema, ClassAttr: classAttrIdx, Instances: instances}, nil
}

// ErrEmptyInput is returned by ParseCSV when the reader yields no rows.
var ErrEmptyInput = fmt.Errorf("empty input")

func splitHeader(rows [][]string, opt ParseOptions) ([]string, [][]string) {
	first := rows[0]
	isHeader := true
	for i, val := range first {
		if i == classColIndex(len(first), opt) {
			continue
		}
		if _, err := strconv.ParseFloat(val, 64); err == nil {
			isHeader = false
			break
		}
	}

	if isHeader {
		return first, rows[1:]
	}

	names := make([]string, len(first))
	for i := range first {
		names[i] = fmt.Sprintf("X%d", i+1)
	}
	return names, rows
}

func classColIndex(nCol int, opt ParseOptions) int {
	if opt.ClassFirst {
		return 0
	}
	return nCol - 1
}

func columnLayout(nCol int, opt ParseOptions) (classCol int, featureCols []int) {
	classCol = classColIndex(nCol, opt)
	for c := 0; c < nCol; c++ {
		if c != classCol {
			featureCols = append(featureCols, c)
		}
	}
	return classCol, featureCols
}

func columnKind(rows [][]string, col int, missingToken string) AttributeKind {
	for _, row := range rows {
		val := row[col]
		if missingToken != "" && val == missingToken {
			continue
		}
		if _, err := strconv.ParseFloat(val, 64); err != nil {
			return Nominal
		}
	}
	return Numeric
}

// codeValue converts a raw cell into its float64-coded representation. For
// Numeric columns this is strconv.ParseFloat; for Nominal columns this
// interns the string into *values, returning its index.
func codeValue(raw string, kind AttributeKind, missingToken string, ids map[string]int, values *[]string) (float64, bool, error) {
	if missingToken != "" && raw == missingToken {
		return 0, true, nil
	}

	if kind == Numeric {
		v, err := strconv.ParseFloat(raw, 64)
		if err != nil {
			return 0, false, err
		}
		return v, false, nil
	}

	id, ok := ids[raw]
	if !ok {
		id = len(*values)
		ids[raw] = id
		*values = append(*values, raw)
	}
	return float64(id), false, nil
}
