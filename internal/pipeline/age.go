// Age-group labeling.
package pipeline

import (
	"strconv"
	"strings"
)

// ageLabels maps the categorical age-group code of the mortality dataset
// to a life-stage label. The key space is fixed by the dataset dictionary.
var ageLabels = map[string]string{
	"0":  "Mortalidad neonatal 0-4",
	"1":  "Mortalidad neonatal 0-4",
	"2":  "Mortalidad neonatal 0-4",
	"3":  "Mortalidad neonatal 0-4",
	"4":  "Mortalidad neonatal 0-4",
	"5":  "Mortalidad infantil 1-11 meses",
	"6":  "Mortalidad infantil 1-11 meses",
	"7":  "Primera infancia 1-4",
	"8":  "Primera infancia 1-4",
	"9":  "Niñez 5-14",
	"10": "Niñez 5-14",
	"11": "Adolescencia 15-19",
	"12": "Juventud 20-29",
	"13": "Juventud 20-29",
	"14": "Adultez temprana 30-44",
	"15": "Adultez temprana 30-44",
	"16": "Adultez temprana 30-44",
	"17": "Adultez intermedia 45-59",
	"18": "Adultez intermedia 45-59",
	"19": "Adultez intermedia 45-59",
	"20": "Vejez 60-84",
	"21": "Vejez 60-84",
	"22": "Vejez 60-84",
	"23": "Vejez 60-84",
	"24": "Vejez 60-84",
	"25": "Longevidad 85+",
	"26": "Longevidad 85+",
	"27": "Longevidad 85+",
	"28": "Longevidad 85+",
	"29": "Edad desconocida / Sin información",
}

// AgeLabel maps an age-group code to its life-stage label. The same code
// arrives as "7", "7.0", or " 7 " across source releases, so the value is
// parsed numerically and truncated first; when that fails the trimmed
// string is looked up as-is. Unknown keys map to the no-info sentinel.
func AgeLabel(code string) string {
	key := strings.TrimSpace(code)
	if f, err := strconv.ParseFloat(key, 64); err == nil {
		key = strconv.Itoa(int(f))
	}
	if label, ok := ageLabels[key]; ok {
		return label
	}
	return AgeNoInfo
}
