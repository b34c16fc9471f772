package utils

import (
	"bytes"
	"fmt"
	"math"
	"sort"

	"github.com/fatih/structs"
)

// Arange returns min, min+step, ... up to and including max.
// It returns nil when step is not positive or max < min.
func Arange(min float64, max float64, step float64) []float64 {
	if step <= 0 || max < min {
		return nil
	}
	n := int(math.Floor((max-min)/step+1e-9)) + 1
	a := make([]float64, n)
	for i := range a {
		a[i] = min + float64(i)*step
	}
	return a
}

func round(num float64) int {
	return int(num + math.Copysign(0.5, num))
}

func ToFixed(num float64, precision int) float64 {
	output := math.Pow(10, float64(precision))
	return float64(round(num*output)) / output
}

func RoundToNearest(num float64, interval float64) float64 {
	return math.Round(num/interval) * interval
}

// CreateKeyValuePairs renders m as "key: value" lines in key order. Struct
// values are expanded with structs.Map and indented.
func CreateKeyValuePairs(m map[string]interface{}) string {
	b := new(bytes.Buffer)
	writeKeyValuePairs(b, m, "")
	return b.String()
}

func writeKeyValuePairs(b *bytes.Buffer, m map[string]interface{}, indent string) {
	keys := make([]string, 0, len(m))
	for key := range m {
		keys = append(keys, key)
	}
	sort.Strings(keys)
	for _, key := range keys {
		value := m[key]
		switch {
		case structs.IsStruct(value):
			fmt.Fprintf(b, "%s%s:\n", indent, key)
			writeKeyValuePairs(b, structs.Map(value), indent+"  ")
		default:
			if nested, ok := value.(map[string]interface{}); ok {
				fmt.Fprintf(b, "%s%s:\n", indent, key)
				writeKeyValuePairs(b, nested, indent+"  ")
				continue
			}
			fmt.Fprintf(b, "%s%s: %v\n", indent, key, value)
		}
	}
}
