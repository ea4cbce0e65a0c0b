package text

import (
	"strings"
	"testing"
)

func TestPreprocess(t *testing.T) {
	tests := []struct {
		name string
		text string
		opts Options
		want string
	}{
		{
			name: "number in sentence",
			text: "ฉันมี 123 บาท",
			opts: DefaultOptions(),
			want: "ฉันมี หนึ่งร้อยยี่สิบสาม บาท",
		},
		{
			name: "repetition mark in sentence",
			text: "ดีๆ",
			opts: DefaultOptions(),
			want: "ดีดี",
		},
		{
			name: "number and repetition mark together",
			text: "มี 5 คนๆ",
			opts: DefaultOptions(),
			want: "มี ห้า คนคน",
		},
		{
			name: "decimal token",
			text: "ราคา 12.5 บาท",
			opts: DefaultOptions(),
			want: "ราคา สิบสองจุดห้า บาท",
		},
		{
			name: "negative token",
			text: "อุณหภูมิ -5 องศา",
			opts: DefaultOptions(),
			want: "อุณหภูมิ ลบห้า องศา",
		},
		{
			name: "numbers disabled keeps digits",
			text: "มี 5 คน",
			opts: Options{ExpandNumbers: false, ExpandMaiYamok: true},
			want: "มี 5 คน",
		},
		{
			name: "mai yamok disabled keeps the mark",
			text: "ดีๆ",
			opts: Options{ExpandNumbers: true, ExpandMaiYamok: false},
			want: "ดีๆ",
		},
		{
			name: "both disabled is identity",
			text: "มี 5 คนๆ",
			opts: Options{},
			want: "มี 5 คนๆ",
		},
		{
			name: "plain thai passes through",
			text: "ภาษาไทย ง่าย มาก",
			opts: DefaultOptions(),
			want: "ภาษาไทย ง่าย มาก",
		},
		{
			name: "empty input",
			text: "",
			opts: DefaultOptions(),
			want: "",
		},
		{
			name: "adjacent tokens convert independently",
			text: "เบอร์ 02 111",
			opts: DefaultOptions(),
			want: "เบอร์ สอง หนึ่งร้อยสิบเอ็ด",
		},
		{
			name: "mark after digits is dropped before conversion",
			text: "รอ 5ๆ นาที",
			opts: DefaultOptions(),
			want: "รอ ห้า นาที",
		},
		{
			name: "thai digit number in sentence",
			text: "มี ๕ คน",
			opts: DefaultOptions(),
			want: "มี ห้า คน",
		},
		{
			name: "thai digit doubled by the mark converts as one token",
			text: "๕ๆ",
			opts: DefaultOptions(),
			want: "ห้าสิบห้า",
		},
		{
			name: "thai digit year",
			text: "ปี ๒๕๖๗",
			opts: DefaultOptions(),
			want: "ปี สองพันห้าร้อยหกสิบเจ็ด",
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			if got := Preprocess(tt.text, tt.opts); got != tt.want {
				t.Errorf("Preprocess(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestPreprocess_outputHasNoDigitsOrMarks(t *testing.T) {
	inputs := []string{
		"ฉันมี 123 บาท",
		"มี 5 คนๆ",
		"ลด -10.25 เปอร์เซ็นต์",
		"ปี 2567 ดีๆ ทั้งปี",
		"ปี ๒๕๖๗",
		"๕ๆ",
	}
	for _, in := range inputs {
		got := Preprocess(in, DefaultOptions())
		if strings.ContainsAny(got, anyDigit) {
			t.Errorf("Preprocess(%q) = %q still contains digits", in, got)
		}
		if strings.ContainsRune(got, maiYamok) {
			t.Errorf("Preprocess(%q) = %q still contains the repetition mark", in, got)
		}
	}
}

func TestPreprocess_idempotentOnNormalizedOutput(t *testing.T) {
	inputs := []string{
		"ฉันมี 123 บาท",
		"มี 5 คนๆ",
		"ดีๆๆ",
		"ภาษาไทย",
		"",
	}
	for _, in := range inputs {
		once := Preprocess(in, DefaultOptions())
		twice := Preprocess(once, DefaultOptions())
		if once != twice {
			t.Errorf("Preprocess is not idempotent for %q: first %q, second %q", in, once, twice)
		}
	}
}
