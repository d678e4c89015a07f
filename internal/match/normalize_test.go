package match

import (
	"testing"

	"github.com/stretchr/testify/assert"
)

func TestNormalizeIdent(t *testing.T) {
	tests := []struct {
		input    string
		expected string
	}{
		{"", ""},
		{"OrderID", "orderid"},
		{"order_id", "orderid"},
		{"Order-Id", "orderid"},
		{"io.Reader", "ioreader"},
		{"__init__", "init"},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, NormalizeIdent(tt.input))
		})
	}
}

func TestTokens(t *testing.T) {
	tests := []struct {
		input    string
		expected []string
	}{
		{"", nil},
		{"getHTTPResponse", []string{"get", "http", "response"}},
		{"XMLParser", []string{"xml", "parser"}},
		{"OrderID", []string{"order", "id"}},
		{"order_id", []string{"order", "id"}},
		{"Dog", []string{"dog"}},
	}

	for _, tt := range tests {
		t.Run(tt.input, func(t *testing.T) {
			assert.Equal(t, tt.expected, Tokens(tt.input))
		})
	}
}
