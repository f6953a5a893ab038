package htmltext

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestExtract(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "simple document",
			in:   "<html><body><h1>Jobs</h1><p>Apply today.</p></body></html>",
			want: "Jobs Apply today.",
		},
		{
			name: "script content dropped",
			in:   "<body><script>var x = 'payment';</script><p>Contact us</p></body>",
			want: "Contact us",
		},
		{
			name: "style content dropped",
			in:   "<body><style>.fee { color: red }</style>visible</body>",
			want: "visible",
		},
		{
			name: "nested skip elements",
			in:   "<body><noscript><template>hidden</template>also hidden</noscript>shown</body>",
			want: "shown",
		},
		{
			name: "whitespace collapsed",
			in:   "<p>  multiple\n\n  spaces\tand   tabs </p>",
			want: "multiple spaces and tabs",
		},
		{
			name: "empty input",
			in:   "",
			want: "",
		},
		{
			name: "plain text without markup",
			in:   "just plain text",
			want: "just plain text",
		},
		{
			name: "unclosed tags degrade gracefully",
			in:   "<div><p>first<p>second",
			want: "first second",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, Extract([]byte(tt.in)))
		})
	}
}
