package vhdl

import (
	"bytes"
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestHex(t *testing.T) {
	assert := assert.New(t)
	assert.Equal(`X"AB"`, Hex("AB"))
	assert.Equal(`X"ffee"`, Hex("ffee"))
	assert.Equal(`X""`, Hex(""))
}

func TestPlaceholderWidths(t *testing.T) {
	assert := assert.New(t)
	// A value plus its wide separator lines up with a placeholder plus a narrow one.
	assert.Equal(len(HighZ8+Narrow), len(Hex("00")+WideByte))
	assert.Equal(len(DontCare8+Narrow), len(Hex("00")+WideByte))
	assert.Equal(len(DontCare16+Narrow), len(Hex("0000")+WideAddr))
}

func TestBitString(t *testing.T) {
	assert := assert.New(t)
	var b bytes.Buffer
	assert.NoError(BitString(&b, nil))
	assert.Equal(`""`, b.String())

	b.Reset()
	assert.NoError(BitString(&b, []bool{true, false, false, true}))
	assert.Equal(`"0110"`, b.String())
}

func TestAggregate(t *testing.T) {
	v := Element{Text: Hex("AB"), Value: true}
	z := Element{Text: HighZ8}
	tests := []struct {
		name  string
		elems []Element
		wide  string
		want  string
	}{
		{
			name: "empty",
			wide: WideByte,
			want: " );\n",
		},
		{
			name:  "single value",
			elems: []Element{v},
			wide:  WideByte,
			want:  "\n    X\"AB\" );\n",
		},
		{
			name:  "mixed",
			elems: []Element{v, z, v},
			wide:  WideByte,
			want:  "\n    X\"AB\",      \"ZZZZZZZZ\", X\"AB\" );\n",
		},
		{
			name:  "wraps at five",
			elems: []Element{z, z, z, z, z, v, z},
			wide:  WideAddr,
			want: "\n    \"ZZZZZZZZ\", \"ZZZZZZZZ\", \"ZZZZZZZZ\", \"ZZZZZZZZ\", \"ZZZZZZZZ\", " +
				"\n    X\"AB\",            \"ZZZZZZZZ\" );\n",
		},
	}
	for _, test := range tests {
		t.Run(test.name, func(t *testing.T) {
			var b bytes.Buffer
			assert.NoError(t, Aggregate(&b, test.elems, test.wide))
			assert.Equal(t, test.want, b.String())
		})
	}
}

func TestTokens(t *testing.T) {
	assert := assert.New(t)
	var b bytes.Buffer
	assert.NoError(Tokens(&b, nil))
	assert.Equal("\n", b.String())

	b.Reset()
	assert.NoError(Tokens(&b, []string{"0001", "0002", "0003", "0004", "0005", "0006"}))
	assert.Equal("\n"+`X"0001", X"0002", X"0003", X"0004", X"0005", `+"\n"+`X"0006", `+"\n", b.String())
}
