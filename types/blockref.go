package types

import (
	"bytes"
	"encoding/hex"
	"encoding/json"
	"errors"
	"fmt"
	"strings"
)

type refKind uint8

const (
	refLatest refKind = iota
	refPending
	refNumber
	refHash
)

// BlockReference identifies a block by tag ("latest"/"pending"), by height or
// by content hash. It is constructed once from request input and never
// mutated afterwards.
//
// The wire encoding is either a bare tag string or an object with a single
// discriminating key:
//
//	"latest" | "pending" | {"block_number": 123} | {"block_hash": "0x..."}
//
// Unknown keys are rejected.
type BlockReference struct {
	kind   refKind
	number uint64
	hash   Hash
}

func LatestBlockRef() BlockReference  { return BlockReference{kind: refLatest} }
func PendingBlockRef() BlockReference { return BlockReference{kind: refPending} }

func NumberBlockRef(height uint64) BlockReference {
	return BlockReference{kind: refNumber, number: height}
}

func HashBlockRef(hash Hash) BlockReference {
	return BlockReference{kind: refHash, hash: hash}
}

func (r BlockReference) IsPending() bool { return r.kind == refPending }
func (r BlockReference) IsLatest() bool  { return r.kind == refLatest }

// Number returns the referenced height, valid only for by-number references.
func (r BlockReference) Number() (uint64, bool) {
	return r.number, r.kind == refNumber
}

// Hash returns the referenced content hash, valid only for by-hash references.
func (r BlockReference) Hash() (Hash, bool) {
	if r.kind != refHash {
		return nil, false
	}
	return r.hash, true
}

func (r BlockReference) String() string {
	switch r.kind {
	case refPending:
		return "pending"
	case refNumber:
		return fmt.Sprintf("%d", r.number)
	case refHash:
		return "0x" + hex.EncodeToString(r.hash)
	default:
		return "latest"
	}
}

type blockRefJSON struct {
	Number *uint64 `json:"block_number,omitempty"`
	Hash   *string `json:"block_hash,omitempty"`
}

func (r BlockReference) MarshalJSON() ([]byte, error) {
	switch r.kind {
	case refLatest, refPending:
		return json.Marshal(r.String())
	case refNumber:
		return json.Marshal(blockRefJSON{Number: &r.number})
	default:
		s := "0x" + hex.EncodeToString(r.hash)
		return json.Marshal(blockRefJSON{Hash: &s})
	}
}

func (r *BlockReference) UnmarshalJSON(data []byte) error {
	var tag string
	if err := json.Unmarshal(data, &tag); err == nil {
		switch tag {
		case "latest":
			*r = LatestBlockRef()
		case "pending":
			*r = PendingBlockRef()
		default:
			return fmt.Errorf("unknown block tag %q", tag)
		}
		return nil
	}

	var key blockRefJSON
	dec := json.NewDecoder(bytes.NewReader(data))
	dec.DisallowUnknownFields()
	if err := dec.Decode(&key); err != nil {
		return err
	}
	switch {
	case key.Number != nil && key.Hash != nil:
		return errors.New("block reference needs exactly one of block_number and block_hash")
	case key.Number != nil:
		*r = NumberBlockRef(*key.Number)
	case key.Hash != nil:
		hash, err := DecodeHash(*key.Hash)
		if err != nil {
			return err
		}
		*r = HashBlockRef(hash)
	default:
		return errors.New("empty block reference")
	}
	return nil
}

// DecodeHash parses a hex hash string with an optional 0x prefix. Block
// hashes are 32-byte digests; anything longer cannot name a block.
func DecodeHash(s string) (Hash, error) {
	s = strings.TrimPrefix(strings.TrimPrefix(s, "0x"), "0X")
	if len(s)%2 == 1 {
		s = "0" + s
	}
	b, err := hex.DecodeString(s)
	if err != nil {
		return nil, fmt.Errorf("invalid block hash: %w", err)
	}
	if len(b) > HashLength {
		return nil, fmt.Errorf("block hash exceeds %d bytes", HashLength)
	}
	return b, nil
}
