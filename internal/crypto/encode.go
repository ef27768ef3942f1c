package crypto

import (
	"encoding/base64"
	"fmt"
	"strings"
)

// B64 returns standard base64 encoding without newlines.
func B64(b []byte) string { return base64.StdEncoding.EncodeToString(b) }

// CArray formats keys as a C array of 28-byte rows for the tracker firmware:
//
//	static uint8_t public_keys[][28] = {
//	    {0x01, 0x02, ...},
//	};
func CArray(name string, keys ...[]byte) string {
	var sb strings.Builder
	width := 0
	if len(keys) > 0 {
		width = len(keys[0])
	}
	fmt.Fprintf(&sb, "static uint8_t %s[][%d] = {\n", name, width)
	for _, k := range keys {
		sb.WriteString("    {")
		for i, b := range k {
			if i > 0 {
				sb.WriteString(", ")
			}
			fmt.Fprintf(&sb, "0x%02x", b)
		}
		sb.WriteString("},\n")
	}
	sb.WriteString("};")
	return sb.String()
}
