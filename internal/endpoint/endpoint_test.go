package endpoint

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestRuntimeURL(t *testing.T) {
	arn := "arn:aws:bedrock-agentcore:us-west-2:123456789012:runtime/my_server-abc123"
	want := "https://bedrock-agentcore.us-west-2.amazonaws.com/runtimes/" +
		"arn%3Aaws%3Abedrock-agentcore%3Aus-west-2%3A123456789012%3Aruntime%2Fmy_server-abc123" +
		"/invocations?qualifier=DEFAULT"

	assert.Equal(t, want, RuntimeURL(arn, "us-west-2"))
}

func TestEncodeRuntimeARN(t *testing.T) {
	tests := []struct {
		name string
		in   string
		want string
	}{
		{
			name: "colons and slashes",
			in:   "arn:aws:x:y/z",
			want: "arn%3Aaws%3Ax%3Ay%2Fz",
		},
		{
			name: "no reserved characters",
			in:   "my_server-abc123",
			want: "my_server-abc123",
		},
		{
			name: "other characters untouched",
			in:   "a b?c&d=e%f",
			want: "a b?c&d=e%f",
		},
		{
			name: "empty",
			in:   "",
			want: "",
		},
	}
	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			assert.Equal(t, tt.want, EncodeRuntimeARN(tt.in))
		})
	}
}

// Encoding only substitutes literal ':' and '/', so applying it twice must
// produce the same string as applying it once.
func TestEncodeRuntimeARNIdempotent(t *testing.T) {
	once := EncodeRuntimeARN("arn:aws:bedrock-agentcore:us-west-2:123456789012:runtime/my_server-abc123")
	assert.Equal(t, once, EncodeRuntimeARN(once))
}
