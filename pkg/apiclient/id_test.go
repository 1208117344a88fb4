package apiclient_test

import (
	"math/big"
	"testing"

	"github.com/ayxworxfr/go_admin_sdk/pkg/apiclient"
	"github.com/pkg/errors"
	"github.com/stretchr/testify/assert"
)

func TestFormatID(t *testing.T) {
	tests := []struct {
		name    string
		id      any
		want    string
		wantErr bool
	}{
		{name: "string", id: "abc-123", want: "abc-123"},
		{name: "empty_string", id: "", wantErr: true},
		{name: "int", id: 42, want: "42"},
		{name: "int64", id: int64(-7), want: "-7"},
		{name: "uint64", id: uint64(18446744073709551615), want: "18446744073709551615"},
		{name: "big_int", id: big.NewInt(0).Lsh(big.NewInt(1), 70), want: "1180591620717411303424"},
		{name: "nil_big_int", id: (*big.Int)(nil), wantErr: true},
		{name: "float", id: 3.14, wantErr: true},
		{name: "bool", id: true, wantErr: true},
		{name: "nil", id: nil, wantErr: true},
		{name: "struct", id: struct{}{}, wantErr: true},
	}

	for _, tt := range tests {
		t.Run(tt.name, func(t *testing.T) {
			got, err := apiclient.FormatID(tt.id)
			if tt.wantErr {
				assert.Error(t, err)
				assert.True(t, errors.Is(err, apiclient.ErrInvalidID))
				return
			}
			assert.NoError(t, err)
			assert.Equal(t, tt.want, got)
		})
	}
}

func TestCheckCode(t *testing.T) {
	assert.NoError(t, apiclient.CheckCode("D001"))
	assert.ErrorIs(t, apiclient.CheckCode(""), apiclient.ErrInvalidCode)
}
