package codec

import "google.golang.org/protobuf/proto"

// Protobuf serializes generated message types, the usual choice when other
// runtimes read the same cache entries. T is a pointer type whose zero
// value is nil, so Decode needs a constructor for a fresh message.
// The zero value is NOT ready to use. Construct with NewProtobuf.
type Protobuf[T proto.Message] struct {
	new func() T
}

// NewProtobuf builds a codec for one concrete message type:
//
//	codec.NewProtobuf(func() *mypb.User { return &mypb.User{} })
func NewProtobuf[T proto.Message](ctor func() T) Protobuf[T] {
	return Protobuf[T]{new: ctor}
}

func (c Protobuf[T]) Encode(v T) ([]byte, error) {
	return proto.Marshal(v)
}

func (c Protobuf[T]) Decode(b []byte) (T, error) {
	m := c.new()
	err := proto.Unmarshal(b, m)
	return m, err
}
