package types_test

import (
	"encoding/json"
	"strings"
	"testing"

	"github.com/stretchr/testify/require"

	"github.com/lumenchain/node/types"
)

func TestBlockReferenceParsing(t *testing.T) {
	cases := []struct {
		name  string
		input string
		want  types.BlockReference
	}{
		{"latest tag", `"latest"`, types.LatestBlockRef()},
		{"pending tag", `"pending"`, types.PendingBlockRef()},
		{"by number", `{"block_number":123}`, types.NumberBlockRef(123)},
		{"by number zero", `{"block_number":0}`, types.NumberBlockRef(0)},
		{"by hash", `{"block_hash":"0xbeef"}`, types.HashBlockRef(types.Hash{0xbe, 0xef})},
		{"by hash no prefix", `{"block_hash":"beef"}`, types.HashBlockRef(types.Hash{0xbe, 0xef})},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref types.BlockReference
			require.NoError(t, json.Unmarshal([]byte(tc.input), &ref))
			require.Equal(t, tc.want, ref)
		})
	}
}

func TestBlockReferenceParsingRejects(t *testing.T) {
	cases := []struct {
		name  string
		input string
	}{
		{"unknown tag", `"newest"`},
		{"unknown field", `{"block_number":1,"extra":2}`},
		{"both keys", `{"block_number":1,"block_hash":"0xbeef"}`},
		{"empty object", `{}`},
		{"bad hash", `{"block_hash":"0xzz"}`},
		{"hash longer than a digest", `{"block_hash":"0x` + strings.Repeat("ab", 33) + `"}`},
		{"negative number", `{"block_number":-1}`},
	}
	for _, tc := range cases {
		t.Run(tc.name, func(t *testing.T) {
			var ref types.BlockReference
			require.Error(t, json.Unmarshal([]byte(tc.input), &ref))
		})
	}
}

func TestBlockReferenceRoundTrip(t *testing.T) {
	refs := []types.BlockReference{
		types.LatestBlockRef(),
		types.PendingBlockRef(),
		types.NumberBlockRef(42),
		types.HashBlockRef(types.Hash{0xde, 0xad}),
	}
	for _, ref := range refs {
		data, err := json.Marshal(ref)
		require.NoError(t, err)
		var got types.BlockReference
		require.NoError(t, json.Unmarshal(data, &got))
		require.Equal(t, ref, got)
	}
}
