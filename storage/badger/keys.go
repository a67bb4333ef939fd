package badger

import (
	"encoding/binary"
	"fmt"
	"time"

	"github.com/poiesic/loadsmith/core"
)

// Key prefixes for different data types
const (
	buildRecordPrefix = "bldrec"
	buildDatePrefix   = "bldrecd"
	buildIDSeq        = "bldrecseq"
)

// makeBuildKey generates a key for a saved build by ID.
func makeBuildKey(id core.ID) []byte {
	return []byte(fmt.Sprintf("%s:%d", buildRecordPrefix, id))
}

// makeBuildDateKey generates a composite key for the date index.
// Format: prefix:timestamp:id
func makeBuildDateKey(timestamp time.Time, id core.ID) []byte {
	prefix := buildDatePrefix + ":"
	prefixBytes := []byte(prefix)
	totalSize := len(prefixBytes) + 16 // 8 bytes for timestamp + 8 bytes for ID
	buf := make([]byte, totalSize)
	offset := copy(buf, prefixBytes)
	// Write in BigEndian order so lexicographic sort works correctly
	binary.BigEndian.PutUint64(buf[offset:], uint64(timestamp.UnixMicro()))
	offset += 8
	binary.BigEndian.PutUint64(buf[offset:], uint64(id))
	return buf
}
