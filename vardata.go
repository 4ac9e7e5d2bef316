package sbewire

import (
	"github.com/rawbytedev/sbewire/internal/common"
)

const (
	// VarDataLengthWidth is the size of the u32 length prefix.
	VarDataLengthWidth = 4
	// VarDataMaxLength caps a single var data field.
	VarDataMaxLength = 1 << 30
)

// PutVarData writes a length-prefixed field at the limit of the scope's
// cursor and moves the limit past it. Nothing is written when it does not fit.
func PutVarData(op string, s Scope, buf WriteBuf, src []byte) error {
	at, err := reserveVarData(op, s, len(src))
	if err != nil {
		return err
	}
	common.Put(buf.data[at:], uint32(len(src)))
	copy(buf.data[at+VarDataLengthWidth:], src)
	return nil
}

// PutVarString is PutVarData for a string source.
func PutVarString(op string, s Scope, buf WriteBuf, src string) error {
	at, err := reserveVarData(op, s, len(src))
	if err != nil {
		return err
	}
	common.Put(buf.data[at:], uint32(len(src)))
	copy(buf.data[at+VarDataLengthWidth:], src)
	return nil
}

func reserveVarData(op string, s Scope, n int) (int, error) {
	if _, err := s.At(op, 0); err != nil {
		return 0, err
	}
	if n > VarDataMaxLength {
		return 0, rangeError(op, ErrCountOutOfRange)
	}
	return s.Cursor().Reserve(op, VarDataLengthWidth+n)
}

// GetVarData reads a length-prefixed field at the limit and moves the limit
// past it. The returned slice aliases buf.
func GetVarData(op string, s Scope, buf ReadBuf) ([]byte, error) {
	if _, err := s.At(op, 0); err != nil {
		return nil, err
	}
	cur := s.Cursor()
	at := cur.Limit()
	if err := buf.Check(op, at, VarDataLengthWidth); err != nil {
		return nil, err
	}
	raw := common.Get[uint32](buf.data[at:])
	if raw > VarDataMaxLength {
		return nil, rangeError(op, ErrCountOutOfRange)
	}
	n := int(raw)
	if _, err := cur.Reserve(op, VarDataLengthWidth+n); err != nil {
		return nil, err
	}
	start := at + VarDataLengthWidth
	return buf.data[start : start+n : start+n], nil
}

// SkipVarData moves the limit past a length-prefixed field and returns its
// length.
func SkipVarData(op string, s Scope, buf ReadBuf) (int, error) {
	b, err := GetVarData(op, s, buf)
	return len(b), err
}
