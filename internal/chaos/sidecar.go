package chaos

import (
	"fmt"

	"github.com/fxamacker/cbor/v2"
	"github.com/klauspost/compress/zstd"
)

// sidecarVersion is bumped whenever the document layout changes.
const sidecarVersion = 1

type sidecar struct {
	Version  int       `cbor:"1,keyasint"`
	Channels []Streams `cbor:"2,keyasint"`
}

// MarshalStreams encodes the per-channel streams as a zstd-compressed CBOR
// document. It is stored next to the encrypted planes.
func MarshalStreams(streams []Streams) ([]byte, error) {
	raw, err := cbor.Marshal(sidecar{Version: sidecarVersion, Channels: streams})
	if err != nil {
		return nil, fmt.Errorf("cbor encode: %w", err)
	}

	enc, err := zstd.NewWriter(nil)
	if err != nil {
		return nil, err
	}
	defer enc.Close()

	return enc.EncodeAll(raw, nil), nil
}

// UnmarshalStreams reverses MarshalStreams.
func UnmarshalStreams(data []byte) ([]Streams, error) {
	dec, err := zstd.NewReader(nil)
	if err != nil {
		return nil, err
	}
	defer dec.Close()

	raw, err := dec.DecodeAll(data, nil)
	if err != nil {
		return nil, fmt.Errorf("zstd decode: %w", err)
	}

	var sc sidecar
	if err := cbor.Unmarshal(raw, &sc); err != nil {
		return nil, fmt.Errorf("cbor decode: %w", err)
	}
	if sc.Version != sidecarVersion {
		return nil, fmt.Errorf("unsupported sidecar version %d", sc.Version)
	}
	return sc.Channels, nil
}
