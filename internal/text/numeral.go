package text

import (
	"strconv"
	"strings"
)

// Thai number lexicons. Index 0 of thaiOnes is empty on purpose: composite
// constructions carry no explicit ones word, unlike the standalone zero word.
// thaiTens[2] is the irregular ยี่สิบ, never สองสิบ.
var (
	thaiOnes = [...]string{"", "หนึ่ง", "สอง", "สาม", "สี่", "ห้า", "หก", "เจ็ด", "แปด", "เก้า"}
	thaiTens = [...]string{"", "สิบ", "ยี่สิบ", "สามสิบ", "สี่สิบ", "ห้าสิบ", "หกสิบ", "เจ็ดสิบ", "แปดสิบ", "เก้าสิบ"}
)

// thaiDigits transliterates the Thai digits ๐–๙ to ASCII so strconv can
// parse tokens that use them.
var thaiDigits = strings.NewReplacer(
	"๐", "0", "๑", "1", "๒", "2", "๓", "3", "๔", "4",
	"๕", "5", "๖", "6", "๗", "7", "๘", "8", "๙", "9",
)

const (
	thaiZero            = "ศูนย์"
	thaiTrailingOne     = "เอ็ด" // unit digit 1 after a tens position
	thaiMinus           = "ลบ"
	thaiPoint           = "จุด"
	thaiHundred         = "ร้อย"
	thaiThousand        = "พัน"
	thaiTenThousand     = "หมื่น"
	thaiHundredThousand = "แสน"
	thaiMillion         = "ล้าน"
)

// convertUnderHundred spells out 0–99.
func convertUnderHundred(n int) string {
	switch {
	case n == 0:
		return thaiZero
	case n < 10:
		return thaiOnes[n]
	case n == 10:
		return thaiTens[1]
	case n == 11:
		return thaiTens[1] + thaiTrailingOne
	case n < 20:
		return thaiTens[1] + thaiOnes[n%10]
	default:
		result := thaiTens[n/10]
		switch ones := n % 10; {
		case ones == 1:
			result += thaiTrailingOne
		case ones > 1:
			result += thaiOnes[ones]
		}
		return result
	}
}

// convertUnderThousand spells out 0–999.
func convertUnderThousand(n int) string {
	if n < 100 {
		return convertUnderHundred(n)
	}

	var result string
	switch hundreds := n / 100; hundreds {
	case 1:
		result = "หนึ่ง" + thaiHundred
	case 2:
		result = "สอง" + thaiHundred
	default:
		result = thaiOnes[hundreds] + thaiHundred
	}

	if remainder := n % 100; remainder > 0 {
		result += convertUnderHundred(remainder)
	}
	return result
}

// ConvertInteger spells out an integer in Thai. Negative values are prefixed
// with ลบ.
//
// The 10,000–999,999 range peels each magnitude digit by hand instead of
// recursing through the full conversion; only the million tier and above
// recurse. The per-tier peeling matches established reading order and keeps
// the หนึ่ง/สอง casing of the ten-thousands digit a top-tier-only concern.
func ConvertInteger(n int) string {
	switch {
	case n < 0:
		return thaiMinus + ConvertInteger(-n)
	case n == 0:
		return thaiZero
	case n < 1000:
		return convertUnderThousand(n)
	case n < 10_000:
		result := thaiOnes[n/1000] + thaiThousand
		if remainder := n % 1000; remainder > 0 {
			result += convertUnderThousand(remainder)
		}
		return result
	case n < 100_000:
		var result string
		switch tenThousands := n / 10_000; tenThousands {
		case 1:
			result = "หนึ่ง" + thaiTenThousand
		case 2:
			result = "สอง" + thaiTenThousand
		default:
			result = thaiOnes[tenThousands] + thaiTenThousand
		}
		if remainder := n % 10_000; remainder > 0 {
			if thousands := remainder / 1000; thousands > 0 {
				result += thaiOnes[thousands] + thaiThousand
			}
			if remainder %= 1000; remainder > 0 {
				result += convertUnderThousand(remainder)
			}
		}
		return result
	case n < 1_000_000:
		result := thaiOnes[n/100_000] + thaiHundredThousand
		if remainder := n % 100_000; remainder > 0 {
			if tenThousands := remainder / 10_000; tenThousands > 0 {
				result += thaiOnes[tenThousands] + thaiTenThousand
			}
			remainder %= 10_000
			if thousands := remainder / 1000; thousands > 0 {
				result += thaiOnes[thousands] + thaiThousand
			}
			if remainder %= 1000; remainder > 0 {
				result += convertUnderThousand(remainder)
			}
		}
		return result
	case n < 10_000_000:
		result := thaiOnes[n/1_000_000] + thaiMillion
		if remainder := n % 1_000_000; remainder > 0 {
			result += ConvertInteger(remainder)
		}
		return result
	default:
		result := ConvertInteger(n/1_000_000) + thaiMillion
		if remainder := n % 1_000_000; remainder > 0 {
			result += ConvertInteger(remainder)
		}
		return result
	}
}

// ConvertNumberToken converts a numeric token (optional sign, digits,
// optional decimal fraction) into its spoken Thai form. Arabic and Thai
// digits are both accepted. Fractional digits are read one at a time after
// จุด and are never grouped into tens. Input that does not parse under the
// token grammar is returned unchanged; the function never fails.
func ConvertNumberToken(s string) string {
	ascii := thaiDigits.Replace(s)

	if dot := strings.IndexByte(ascii, '.'); dot >= 0 {
		integerPart, fractionPart := ascii[:dot], ascii[dot+1:]

		n, err := strconv.Atoi(integerPart)
		if err != nil || fractionPart == "" {
			return s
		}

		var b strings.Builder
		b.WriteString(ConvertInteger(n))
		b.WriteString(thaiPoint)
		for _, r := range fractionPart {
			if r < '0' || r > '9' {
				return s
			}
			if d := int(r - '0'); d > 0 {
				b.WriteString(thaiOnes[d])
			} else {
				b.WriteString(thaiZero)
			}
		}
		return b.String()
	}

	n, err := strconv.Atoi(ascii)
	if err != nil {
		return s
	}
	return ConvertInteger(n)
}
