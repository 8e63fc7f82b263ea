package ingest

import (
	"reflect"
	"strings"
	"testing"
)

func TestBlocks(t *testing.T) {
	tests := []struct {
		name string
		text string
		want []string
	}{
		{
			name: "blank line separated",
			text: "JOHN SMITH\nDATE OF BIRTH\n\n01/02/2020",
			want: []string{"JOHN SMITH\nDATE OF BIRTH", "01/02/2020"},
		},
		{
			name: "windows line endings",
			text: "JOHN SMITH\r\n\r\n12345678",
			want: []string{"JOHN SMITH", "12345678"},
		},
		{
			name: "whitespace-only parts skipped",
			text: "first\n\n   \n\nsecond",
			want: []string{"first", "second"},
		},
		{
			name: "empty input",
			text: "",
			want: nil,
		},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got := Blocks(tt.text)
			if !reflect.DeepEqual(got, tt.want) {
				t.Errorf("Blocks(%q) = %q, want %q", tt.text, got, tt.want)
			}
		})
	}
}

func TestBlocksFromHTML(t *testing.T) {
	page := `<html><head><style>p{color:red}</style><script>alert(1)</script></head>
<body><h1>Certificate</h1><p>JOHN SMITH</p><p>DOB: <b>01/02/2020</b></p></body></html>`

	got, err := BlocksFromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("BlocksFromHTML: %v", err)
	}

	want := []string{"Certificate", "JOHN SMITH", "DOB: 01/02/2020"}
	if !reflect.DeepEqual(got, want) {
		t.Errorf("BlocksFromHTML = %q, want %q", got, want)
	}
}

func TestBlocksFromHTML_SkipsScriptContent(t *testing.T) {
	page := `<div>visible</div><script>var hidden = "SECRET NAME";</script>`

	got, err := BlocksFromHTML(strings.NewReader(page))
	if err != nil {
		t.Fatalf("BlocksFromHTML: %v", err)
	}
	for _, block := range got {
		if strings.Contains(block, "SECRET") {
			t.Errorf("script content leaked into blocks: %q", got)
		}
	}
}
