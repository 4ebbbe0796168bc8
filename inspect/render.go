package inspect

import (
	"encoding/json"
	"fmt"
	"io"

	"github.com/fxamacker/cbor/v2"
	"github.com/goccy/go-yaml"
	"github.com/signatory-io/keyinfo/core"
)

// Render writes the report in one of core.Format* formats
func Render(w io.Writer, r *Report, format string) error {
	var (
		buf []byte
		err error
	)
	switch format {
	case core.FormatYAML:
		buf, err = yaml.Marshal(r)
	case core.FormatJSON:
		buf, err = json.MarshalIndent(r, "", "  ")
		buf = append(buf, '\n')
	case core.FormatCBOR:
		buf, err = cbor.Marshal(r)
	default:
		return fmt.Errorf("unknown output format: %s", format)
	}
	if err != nil {
		return err
	}
	_, err = w.Write(buf)
	return err
}
