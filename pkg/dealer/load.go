package dealer

import (
	"bytes"
	_ "embed"
	"encoding/json"
	"fmt"
	"io"
	"io/ioutil"
)

//go:embed data/dealers.json
var defaultDealers []byte

// Default returns the dealer list compiled into the binary.
func Default() (Dealers, error) {
	return Load(bytes.NewReader(defaultDealers))
}

// LoadFile reads a JSON dealer list from disk.
func LoadFile(path string) (Dealers, error) {
	b, err := ioutil.ReadFile(path)
	if err != nil {
		return Dealers{}, fmt.Errorf("could not read dealers file %s: %w", path, err)
	}

	return Load(bytes.NewReader(b))
}

func Load(r io.Reader) (Dealers, error) {
	out := Dealers{}

	if err := json.NewDecoder(r).Decode(&out); err != nil {
		return Dealers{}, fmt.Errorf("could not parse dealers: %w", err)
	}

	if out == nil {
		out = Dealers{}
	}

	return out, nil
}
