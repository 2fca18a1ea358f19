package api

import (
	"encoding/json"

	"connectrpc.com/connect"
)

// CodecName is the Connect codec name, giving the content type application/json.
const CodecName = "json"

// Codec returns the codec used by every FinFusion handler and client.
func Codec() connect.Codec {
	return jsonCodec{}
}

// jsonCodec marshals plain Go structs, replacing Connect's protobuf-only JSON codec.
type jsonCodec struct{}

func (jsonCodec) Name() string {
	return CodecName
}

func (jsonCodec) Marshal(msg any) ([]byte, error) {
	return json.Marshal(msg)
}

func (jsonCodec) Unmarshal(data []byte, msg any) error {
	if len(data) == 0 {
		return nil
	}
	return json.Unmarshal(data, msg)
}
