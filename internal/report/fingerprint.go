package report

import (
	"fmt"

	"github.com/ipfs/go-cid"
	"github.com/multiformats/go-multihash"
)

// Fingerprint returns a CIDv1 string using the "raw" multicodec and a
// sha2-256 multihash of data. Equal coins always share a fingerprint.
func Fingerprint(data []byte) (string, error) {
	sum, err := multihash.Sum(data, multihash.SHA2_256, -1)
	if err != nil {
		return "", fmt.Errorf("fingerprint: %w", err)
	}
	return cid.NewCidV1(cid.Raw, sum).String(), nil
}
