package dict

import (
	"strings"
	"testing"
)

func TestConvert(t *testing.T) {
	tests := []struct {
		name      string
		input     string
		want      string
		wantCount int
	}{
		{
			name: "stress markers stripped",
			input: `interest IH1 N T R AH0 S T
interest(2) IH1 N T R IH0 S T
`,
			want: `interest IH N T R AH S T
interest(2) IH N T R IH S T
`,
			wantCount: 2,
		},
		{
			name: "distinct pronunciations both kept",
			input: `data D EY1 T AH0
data(2) D AE1 T AH0
`,
			want: `data D EY T AH
data(2) D AE T AH
`,
			wantCount: 2,
		},
		{
			name: "true duplicate collapsed",
			input: `read R EH1 D
read(2) R EH2 D
`,
			want:      "read R EH D\n",
			wantCount: 1,
		},
		{
			name: "output sorted by word",
			input: `zebra Z IY1 B R AH0
apple AE1 P AH0 L
mango M AE1 NG G OW0
`,
			want: `apple AE P AH L
mango M AE NG G OW
zebra Z IY B R AH
`,
			wantCount: 3,
		},
		{
			name: "variant numbers reassigned after dedup",
			input: `word W ER1 D
word(2) W ER2 D
word(3) W AO1 R D
word(4) W AH0 R D
`,
			want: `word W ER D
word(2) W AO R D
word(3) W AH R D
`,
			wantCount: 3,
		},
		{
			name: "comments and blank lines ignored",
			input: `;;; CMUdict header comment

cat K AE1 T

dog D AO1 G # man's best friend
malformed
`,
			want: `cat K AE T
dog D AO G
`,
			wantCount: 2,
		},
		{
			name:      "empty input",
			input:     "",
			want:      "",
			wantCount: 0,
		},
		{
			name:      "comments only",
			input:     ";;; one\n;;; two\n",
			want:      "",
			wantCount: 0,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			var out strings.Builder
			count, err := Convert(strings.NewReader(tt.input), &out)
			if err != nil {
				t.Fatalf("Convert() error = %v", err)
			}
			if count != tt.wantCount {
				t.Errorf("Convert() count = %d, want %d", count, tt.wantCount)
			}
			if out.String() != tt.want {
				t.Errorf("Convert() output = %q, want %q", out.String(), tt.want)
			}
		})
	}
}

func TestConvert_CountMatchesLines(t *testing.T) {
	input := `b B IY1
a EY1
a(2) AH0
c S IY1
c(2) S IY2
`
	var out strings.Builder
	count, err := Convert(strings.NewReader(input), &out)
	if err != nil {
		t.Fatalf("Convert() error = %v", err)
	}

	lines := strings.Count(out.String(), "\n")
	if count != lines {
		t.Errorf("Convert() count = %d, but output has %d lines", count, lines)
	}
}

func TestConvert_Idempotent(t *testing.T) {
	input := `interest IH1 N T R AH0 S T
interest(2) IH1 N T R IH0 S T
read R EH1 D
read(2) R IY1 D
`
	var first strings.Builder
	if _, err := Convert(strings.NewReader(input), &first); err != nil {
		t.Fatalf("first Convert() error = %v", err)
	}

	var second strings.Builder
	if _, err := Convert(strings.NewReader(first.String()), &second); err != nil {
		t.Fatalf("second Convert() error = %v", err)
	}

	if second.String() != first.String() {
		t.Errorf("converting converted output changed it:\nfirst:  %q\nsecond: %q", first.String(), second.String())
	}
}
