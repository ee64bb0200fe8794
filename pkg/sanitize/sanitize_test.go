package sanitize

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestTextField(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  string
	}{
		{name: "plain", input: "vendor2", want: "vendor2"},
		{name: "decimal", input: "12.50", want: "12.50"},
		{name: "trims", input: "  monthly \n", want: "monthly"},
		{name: "strips tags", input: "<b>vendor1</b>", want: "vendor1"},
		{name: "drops script body", input: "<script>alert(1)</script>paid", want: "paid"},
		{name: "collapses whitespace", input: "net\t\t30\r\ndays", want: "net 30 days"},
		{name: "removes octets", input: "paid%20%3Cx", want: "paidx"},
		{name: "nested octets", input: "a%2%200b", want: "ab"},
		{name: "lone less-than", input: "1 < 2", want: "1 &lt; 2"},
		{name: "ampersand kept", input: "Smith & Sons", want: "Smith & Sons"},
		{name: "empty", input: "", want: ""},
		{name: "invalid utf8", input: "bad\xff", want: ""},
	}

	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			assert.Equal(t, tc.want, TextField(tc.input))
		})
	}
}
