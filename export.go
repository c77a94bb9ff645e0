package cornertable

import (
	"fmt"
	"io"

	"github.com/lmreia/cornertable/codec"
)

func orDefault(c codec.Codec) codec.Codec {
	if c == nil {
		return codec.Default
	}
	return c
}

func marshalRows(c codec.Codec, rows any) ([]byte, error) {
	c = orDefault(c)
	b, err := c.Marshal(rows)
	if err != nil {
		return nil, fmt.Errorf("corner table: %s marshal: %w", c.Name(), err)
	}
	return b, nil
}

func writeRows(w io.Writer, c codec.Codec, rows any) error {
	c = orDefault(c)
	if err := c.Encode(w, rows); err != nil {
		return fmt.Errorf("corner table: %s encode: %w", c.Name(), err)
	}
	return nil
}
