package cache

import (
	"errors"
	"fmt"

	"github.com/ugorji/go/codec"
)

// msgpackHandle 编码快照使用的handle: struct编码为数组,字符串使用str8类型,无schema解码时整数统一为int64
var msgpackHandle = newMsgpackHandle()

func newMsgpackHandle() *codec.MsgpackHandle {
	h := &codec.MsgpackHandle{}
	h.WriteExt = true
	h.StructToArray = true
	h.RawToString = true
	h.SignedInteger = true
	return h
}

// MsgPackEncodeBytes encode data to bytes use msgpack
func MsgPackEncodeBytes(data interface{}) (bytes []byte, err error) {
	err = codec.NewEncoderBytes(&bytes, msgpackHandle).Encode(data)
	return
}

// MsgPackDecodeBytes decode bytes to dest use msgpack, bytes must hold exactly one value
func MsgPackDecodeBytes(bytes []byte, dest interface{}) error {
	if len(bytes) == 0 {
		return errors.New("nil bytes to decode")
	}
	dec := codec.NewDecoderBytes(bytes, msgpackHandle)
	if err := dec.Decode(dest); err != nil {
		return err
	}
	if n := dec.NumBytesRead(); n != len(bytes) {
		return fmt.Errorf("%d unexpected bytes after msgpack value", len(bytes)-n)
	}
	return nil
}
