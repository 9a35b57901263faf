package internal

import (
	"crypto/md5"
	"encoding/hex"
	"fmt"
	"time"

	"github.com/google/uuid"
)

// GenerateRunID creates a unique ID for a translation run based on timestamp,
// input directory and a random part, so concurrent runs never share an ID.
// Format: epochMillis_md5(inputDir)[:8]_random[:8]
func GenerateRunID(inputDir string) string {
	epochMillis := time.Now().UnixNano() / 1000000

	hash := md5.Sum([]byte(inputDir))
	hashStr := hex.EncodeToString(hash[:])[:8]

	random := uuid.NewString()[:8]

	return fmt.Sprintf("%d_%s_%s", epochMillis, hashStr, random)
}
