package snapshot

import (
	"fmt"

	"github.com/arloliu/codetable/format"
	"github.com/arloliu/codetable/internal/options"
)

type encoderConfig struct {
	compression format.CompressionType
}

// EncodeOption configures Encode.
type EncodeOption = options.Option[*encoderConfig]

// WithCompression selects the payload compression. The default is Zstd.
func WithCompression(compression format.CompressionType) EncodeOption {
	return options.New(func(c *encoderConfig) error {
		if !compression.Valid() {
			return fmt.Errorf("invalid snapshot compression: 0x%x", uint8(compression))
		}
		c.compression = compression

		return nil
	})
}
